// internal/model/user.go
package model

import "time"

type UserStatus string

const (
	StatusUnverified UserStatus = "unverified"
	StatusVerified   UserStatus = "verified"
)

type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FirstName string     `gorm:"column:firstname;size:255;not null" json:"firstname"`
	LastName  string     `gorm:"column:lastname;size:255" json:"lastname"`
	Password  string     `gorm:"size:255" json:"-"`
	Status    UserStatus `gorm:"size:32;not null;default:'unverified'" json:"status"`
	Created   time.Time  `gorm:"column:created;autoCreateTime" json:"created"`
	Updated   time.Time  `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (User) TableName() string { return "users" }

// MetaKey identifies a users_meta attribute. Keys are typed constants so call
// sites cannot fan out ad-hoc strings.
type MetaKey string

const (
	MetaQueries           MetaKey = "queries"
	MetaVerifyToken       MetaKey = "verifyToken"
	MetaTwoFactor         MetaKey = "2FA"
	MetaAccountLockStatus MetaKey = "accountLockStatus"
	MetaAccountBlocked    MetaKey = "accountBlocked"
	MetaAvatarURL         MetaKey = "avatarUrl"
	MetaAccountType       MetaKey = "accountType"
	MetaSignUpMethod      MetaKey = "signUpMethod"
	MetaCloudIntegration  MetaKey = "userCloudIntegration"
	MetaGoogleDrive       MetaKey = "GoogleDrive"
	MetaDropbox           MetaKey = "Dropbox"
	MetaOneDrive          MetaKey = "OneDrive"
	MetaSlack             MetaKey = "Slack"
	MetaWordpress         MetaKey = "Wordpress"
)

// UserMeta is one row of the per-user key-value attribute bag. At most one
// row exists per (userId, metaKey); readers treat absence as empty/zero.
type UserMeta struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"column:userId;index:idx_user_meta,unique;not null" json:"userId"`
	MetaKey   MetaKey `gorm:"column:metaKey;size:64;index:idx_user_meta,unique;not null" json:"metaKey"`
	MetaValue string  `gorm:"column:metaValue;size:255" json:"metaValue"`
}

func (UserMeta) TableName() string { return "users_meta" }
