package model

import (
	"time"
)

// TitleMaxLength matches the title limit enforced on requests.
const TitleMaxLength = 512

type DocumentMetadata struct {
	DocumentId  string    `gorm:"type:varchar(1024);primaryKey"`
	AssistantOn bool      `gorm:"not null;default:false"`
	Title       *string   `gorm:"size:512"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (DocumentMetadata) TableName() string {
	return "document_metadata"
}
