// internal/model/company.go
package model

import "time"

type Company struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	AdminID uint      `gorm:"column:adminId;index;not null" json:"adminId"`
	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (Company) TableName() string { return "companies" }

type CompanyMeta struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uint   `gorm:"column:companyId;index:idx_company_meta,unique;not null" json:"companyId"`
	MetaKey   string `gorm:"column:metaKey;size:64;index:idx_company_meta,unique;not null" json:"metaKey"`
	MetaValue string `gorm:"column:metaValue;size:512" json:"metaValue"`
}

func (CompanyMeta) TableName() string { return "companies_meta" }

// UserCompanyRole binds a user to a company with a role. Lookups assume at
// most one row per user in practice.
type UserCompanyRole struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint `gorm:"column:userId;index;not null" json:"userId"`
	Company uint `gorm:"column:company;index;not null" json:"company"`
	Role    int  `gorm:"column:role;not null" json:"role"`
}

func (UserCompanyRole) TableName() string { return "user_company_role_relationship" }
