// internal/model/settings.go
package model

import "time"

// AdminSetting is one admin-configured limit or flag, e.g. MAX_STORAGE.
type AdminSetting struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Value string `gorm:"size:255" json:"value"`
}

func (AdminSetting) TableName() string { return "admin_settings" }

// UsageStatistic memoizes a closed month's usage rollup so repeat queries are
// a single row read instead of a recomputation.
type UsageStatistic struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StatID  uint      `gorm:"column:statId;index:idx_usage_stat;not null" json:"statId"`
	Month   int       `gorm:"index:idx_usage_stat;not null" json:"month"`
	Year    int       `gorm:"index:idx_usage_stat;not null" json:"year"`
	Type    string    `gorm:"size:16;index:idx_usage_stat;not null" json:"type"`
	Data    string    `gorm:"type:text" json:"data"`
	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (UsageStatistic) TableName() string { return "usage_statistics" }
