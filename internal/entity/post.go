package entity

import (
	"strings"
	"time"
)

// PostType is an open set; unknown types only need content.
type PostType string

const (
	PostTypeA PostType = "Post A"
	PostTypeB PostType = "Post B"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// TypeRule lists the extra fields a post type requires.
type TypeRule struct {
	RequireTitle bool
}

var typeRules = map[PostType]TypeRule{
	PostTypeA: {},
	PostTypeB: {RequireTitle: true},
}

func RuleFor(t PostType) TypeRule {
	return typeRules[t]
}

type Post struct {
	ID              string     `json:"id"`
	AuthorID        string     `json:"authorId"`
	Type            PostType   `json:"type"`
	Title           string     `json:"title,omitempty"`
	Content         string     `json:"content"`
	Hashtags        []string   `json:"hashtags"`
	TTSInstructions string     `json:"ttsInstructions,omitempty"`
	TTSAudioURL     *string    `json:"ttsAudioUrl"`
	TTSGenerated    bool       `json:"ttsGenerated"`
	Visibility      Visibility `json:"visibility"`
	IsDraft         bool       `json:"isDraft"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// VisibleTo reports whether requesterID may read the post. Drafts and
// private posts belong to their author alone.
func (p *Post) VisibleTo(requesterID string) bool {
	if p.IsDraft || p.Visibility != VisibilityPublic {
		return requesterID != "" && requesterID == p.AuthorID
	}
	return true
}

// PostInput is the caller-supplied part of a post.
type PostInput struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Hashtags        []string `json:"hashtags"`
	TTSInstructions string   `json:"ttsInstructions"`
	Visibility      string   `json:"visibility"`
}

// ValidateForPublish checks the fields a published post needs.
func (in PostInput) ValidateForPublish() error {
	v := &ValidationError{}
	if strings.TrimSpace(in.Content) == "" {
		v.Add("content", "content is required")
	}
	postType := strings.TrimSpace(in.Type)
	if postType == "" {
		v.Add("type", "type is required")
	} else if RuleFor(PostType(postType)).RequireTitle && strings.TrimSpace(in.Title) == "" {
		v.Add("title", "title is required for type "+postType)
	}
	if in.Visibility != "" && !Visibility(in.Visibility).Valid() {
		v.Add("visibility", "visibility must be public or private")
	}
	return v.Err()
}

// ValidateForDraft only rejects values that could never be stored.
func (in PostInput) ValidateForDraft() error {
	if in.Visibility != "" && !Visibility(in.Visibility).Valid() {
		return NewValidationError("visibility", "visibility must be public or private")
	}
	return nil
}

// NormalizeHashtags trims, drops empties and a leading '#', and removes
// duplicates while keeping the first occurrence order.
func NormalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
