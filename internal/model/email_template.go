// internal/model/email_template.go
package model

import "time"

// Template names the mailer looks up. Rows are seeded by the admin tool and
// edited through the super-admin template endpoints.
const (
	TemplateVerification = "verification"
	TemplateInvitation   = "invitation"
)

// EmailTemplate holds the subject and HTML body for one transactional
// message. Placeholders ({{name}}, {{url}}, {{company}}) are substituted at
// send time.
type EmailTemplate struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Subject  string    `gorm:"size:255;not null" json:"subject"`
	Template string    `gorm:"type:text" json:"template"`
	Created  time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated  time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (EmailTemplate) TableName() string { return "email_templates" }
