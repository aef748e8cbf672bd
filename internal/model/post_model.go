package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PostModel has no TTSGenerated column; it is derived from TTSAudioURL.
type PostModel struct {
	ID              string         `gorm:"type:varchar(36);primary_key"`
	AuthorID        string         `gorm:"type:varchar(36);not null;index"`
	Type            string         `gorm:"type:varchar(50);not null"`
	Title           *string        `gorm:"type:varchar(255)"`
	Content         string         `gorm:"type:text;not null;default:''"`
	Hashtags        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	TTSInstructions *string        `gorm:"column:tts_instructions;type:text"`
	TTSAudioURL     *string        `gorm:"column:tts_audio_url;type:text"`
	Visibility      string         `gorm:"type:varchar(20);not null;default:'public'"`
	IsDraft         bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
