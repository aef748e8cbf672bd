package entity

import "time"

const MaxCommentLength = 250

type Comment struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	UserID       string    `json:"userId"`
	Content      string    `json:"content"`
	AuthorPseudo string    `json:"authorPseudo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
