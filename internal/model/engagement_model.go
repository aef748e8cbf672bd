package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string `gorm:"type:varchar(36);primary_key"`
	PostID    string `gorm:"type:varchar(36);not null;index"`
	UserID    string `gorm:"type:varchar(36);not null"`
	Content   string `gorm:"type:varchar(250);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Filled by joins on users.pseudo; never written.
	AuthorPseudo string `gorm:"->;-:migration"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type ReactionModel struct {
	ID        string `gorm:"type:varchar(36);primary_key"`
	PostID    string `gorm:"type:varchar(36);not null;uniqueIndex:uq_reactions_post_user_emoji"`
	UserID    string `gorm:"type:varchar(36);not null;uniqueIndex:uq_reactions_post_user_emoji"`
	Emoji     string `gorm:"type:varchar(16);not null;uniqueIndex:uq_reactions_post_user_emoji"`
	CreatedAt time.Time

	AuthorPseudo string `gorm:"->;-:migration"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}

func (r *ReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type InteractionModel struct {
	ID        string `gorm:"type:varchar(36);primary_key"`
	PostID    string `gorm:"type:varchar(36);not null;index"`
	UserID    string `gorm:"type:varchar(36);not null"`
	Type      string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time

	AuthorPseudo string `gorm:"->;-:migration"`
}

func (InteractionModel) TableName() string {
	return "interactions"
}

func (i *InteractionModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
