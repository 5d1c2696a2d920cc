// internal/model/team.go
package model

import "time"

type Team struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uint      `gorm:"column:companyId;index;not null" json:"companyId"`
	CreatorID uint      `gorm:"column:creatorId;index;not null" json:"creatorId"`
	Alias     string    `gorm:"size:255;not null" json:"alias"`
	UUID      string    `gorm:"column:uuid;size:36;not null" json:"uuid"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	Created   time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated   time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (Team) TableName() string { return "teams" }

// SharedTeam grants a non-member email read access to a team outside normal
// company membership.
type SharedTeam struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID          uint      `gorm:"column:teamId;index;not null" json:"teamId"`
	SharedUserEmail string    `gorm:"column:sharedUserEmail;size:255;index;not null" json:"sharedUserEmail"`
	Created         time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (SharedTeam) TableName() string { return "shared_teams" }
