// internal/model/chat.go
package model

import "time"

type ChatHistory struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint      `gorm:"column:userId;index;not null" json:"userId"`
	TeamID  uint      `gorm:"column:teamId;index" json:"teamId"`
	Title   string    `gorm:"size:255" json:"title"`
	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (ChatHistory) TableName() string { return "chat_histories" }

// MessageRole distinguishes the two rows stored per exchange: the user's
// question and the assistant's answer.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type ChatMessage struct {
	ID      uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID  uint        `gorm:"column:chatId;index;not null" json:"chatId"`
	Role    MessageRole `gorm:"size:16;not null" json:"role"`
	Content string      `gorm:"type:text" json:"content"`
	Created time.Time   `gorm:"column:created;autoCreateTime" json:"created"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

type TokensUsed struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID           uint      `gorm:"column:chatId;index;not null" json:"chatId"`
	PromptTokens     int       `gorm:"column:promptTokens" json:"promptTokens"`
	CompletionTokens int       `gorm:"column:completionTokens" json:"completionTokens"`
	Created          time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (TokensUsed) TableName() string { return "tokens_used" }

type Recording struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:userId;index;not null" json:"userId"`
	CompanyID uint      `gorm:"column:companyId;index" json:"companyId"`
	Name      string    `gorm:"size:255" json:"name"`
	Created   time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (Recording) TableName() string { return "recordings" }
