package persistent

import (
	"vocal-feed/internal/entity"
	"vocal-feed/internal/model"

	"github.com/lib/pq"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:              m.ID,
		AuthorID:        m.AuthorID,
		Type:            entity.PostType(m.Type),
		Title:           derefString(m.Title),
		Content:         m.Content,
		Hashtags:        []string(m.Hashtags),
		TTSInstructions: derefString(m.TTSInstructions),
		Visibility:      entity.Visibility(m.Visibility),
		IsDraft:         m.IsDraft,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if post.Hashtags == nil {
		post.Hashtags = []string{}
	}
	if m.TTSAudioURL != nil && *m.TTSAudioURL != "" {
		url := *m.TTSAudioURL
		post.TTSAudioURL = &url
		post.TTSGenerated = true
	}

	return post
}

// ToPostModel ignores TTSGenerated; only the URL is persisted.
func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:              e.ID,
		AuthorID:        e.AuthorID,
		Type:            string(e.Type),
		Title:           optionalString(e.Title),
		Content:         e.Content,
		Hashtags:        pq.StringArray(e.Hashtags),
		TTSInstructions: optionalString(e.TTSInstructions),
		Visibility:      string(e.Visibility),
		IsDraft:         e.IsDraft,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if post.Hashtags == nil {
		post.Hashtags = pq.StringArray{}
	}
	if e.TTSAudioURL != nil && *e.TTSAudioURL != "" {
		url := *e.TTSAudioURL
		post.TTSAudioURL = &url
	}

	return post
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Pseudo:       m.Pseudo,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:           e.ID,
		Email:        e.Email,
		Pseudo:       e.Pseudo,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:           m.ID,
		PostID:       m.PostID,
		UserID:       m.UserID,
		Content:      m.Content,
		AuthorPseudo: m.AuthorPseudo,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToReactionEntity(m *model.ReactionModel) *entity.Reaction {
	if m == nil {
		return nil
	}

	return &entity.Reaction{
		ID:           m.ID,
		PostID:       m.PostID,
		UserID:       m.UserID,
		Emoji:        m.Emoji,
		AuthorPseudo: m.AuthorPseudo,
		CreatedAt:    m.CreatedAt,
	}
}

func ToReactionModel(e *entity.Reaction) *model.ReactionModel {
	if e == nil {
		return nil
	}

	return &model.ReactionModel{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		Emoji:     e.Emoji,
		CreatedAt: e.CreatedAt,
	}
}

func ToInteractionEntity(m *model.InteractionModel) *entity.Interaction {
	if m == nil {
		return nil
	}

	return &entity.Interaction{
		ID:           m.ID,
		PostID:       m.PostID,
		UserID:       m.UserID,
		Type:         entity.InteractionType(m.Type),
		AuthorPseudo: m.AuthorPseudo,
		CreatedAt:    m.CreatedAt,
	}
}

func ToInteractionModel(e *entity.Interaction) *model.InteractionModel {
	if e == nil {
		return nil
	}

	return &model.InteractionModel{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		Type:      string(e.Type),
		CreatedAt: e.CreatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
