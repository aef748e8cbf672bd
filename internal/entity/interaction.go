package entity

import "time"

type InteractionType string

const InteractionShare InteractionType = "share"

func (t InteractionType) Valid() bool {
	return t == InteractionShare
}

type Interaction struct {
	ID           string          `json:"id"`
	PostID       string          `json:"postId"`
	UserID       string          `json:"userId"`
	Type         InteractionType `json:"type"`
	AuthorPseudo string          `json:"authorPseudo,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type TypeCount struct {
	Type  InteractionType `json:"type"`
	Count int64           `json:"count"`
}
