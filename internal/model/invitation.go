// internal/model/invitation.go
package model

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

type Invitation struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint             `gorm:"column:userId;index" json:"userId"`
	Sender    uint             `gorm:"column:sender;index;not null" json:"sender"`
	CompanyID uint             `gorm:"column:companyId;index;not null" json:"companyId"`
	Email     string           `gorm:"size:255;not null" json:"email"`
	Role      int              `gorm:"not null" json:"role"`
	Token     string           `gorm:"size:64" json:"-"`
	Status    InvitationStatus `gorm:"size:16;not null;default:'pending'" json:"status"`
	Created   time.Time        `gorm:"column:created;autoCreateTime" json:"created"`
}

func (Invitation) TableName() string { return "invitations" }

type Subscription struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"column:userId;index;not null" json:"userId"`
	CustomerID string    `gorm:"column:customerId;size:255;index" json:"customerId"`
	Plan       string    `gorm:"size:64" json:"plan"`
	Status     string    `gorm:"size:32" json:"status"`
	Created    time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (Subscription) TableName() string { return "subscriptions" }
