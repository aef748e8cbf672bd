package entity

import "time"

var AllowedEmojis = []string{"❤️", "👍", "😂", "😮", "😢"}

func IsAllowedEmoji(emoji string) bool {
	for _, e := range AllowedEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}

type Reaction struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	UserID       string    `json:"userId"`
	Emoji        string    `json:"emoji"`
	AuthorPseudo string    `json:"authorPseudo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int64  `json:"count"`
}
