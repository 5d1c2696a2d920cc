// internal/model/document.go
package model

import (
	"fmt"
	"strings"
	"time"
)

type DocumentType string

const (
	DocumentFile   DocumentType = "file"
	DocumentFolder DocumentType = "folder"
)

type Document struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID    uint         `gorm:"column:teamId;index;not null" json:"teamId"`
	CreatorID uint         `gorm:"column:creatorId;index;not null" json:"creatorId"`
	ParentID  uint         `gorm:"column:parentId;index" json:"parentId"`
	Name      string       `gorm:"size:512;not null" json:"name"`
	Type      DocumentType `gorm:"size:16;not null" json:"type"`
	Size      string       `gorm:"size:64" json:"size"`
	Source    *string      `gorm:"size:64" json:"source"`
	Created   time.Time    `gorm:"column:created;autoCreateTime" json:"created"`
	Updated   time.Time    `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

func (Document) TableName() string { return "documents" }

// ObjectKey derives the object-storage key for a file document: the document
// id plus the extension of the original name, e.g. "42.pdf".
func (d Document) ObjectKey() string {
	parts := strings.Split(d.Name, ".")
	ext := parts[len(parts)-1]
	return fmt.Sprintf("%d.%s", d.ID, ext)
}

// FileEmbedding is derived per-file index data; it exists only while the file
// document exists.
type FileEmbedding struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FileID uint   `gorm:"column:fileId;index;not null" json:"fileId"`
	Chunk  string `gorm:"type:text" json:"chunk"`
	Vector []byte `gorm:"type:mediumblob" json:"-"`
}

func (FileEmbedding) TableName() string { return "file_embedding" }

type Summary struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID  uint      `gorm:"column:teamId;index;not null" json:"teamId"`
	FileID  uint      `gorm:"column:fileId;index" json:"fileId"`
	Content string    `gorm:"type:text" json:"content"`
	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
}

func (Summary) TableName() string { return "summary" }
