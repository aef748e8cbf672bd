package http

import (
	"context"
	"io"

	"vocal-feed/internal/audio"
	"vocal-feed/internal/entity"
	"vocal-feed/internal/usecase"
	"vocal-feed/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, authorID string, in entity.PostInput) (*entity.Post, error) {
	args := m.Called(ctx, authorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) SaveDraft(ctx context.Context, authorID string, in entity.PostInput) (*entity.Post, error) {
	args := m.Called(ctx, authorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GenerateAndAttachAudio(ctx context.Context, text, instructions, postID string) (audio.Result, error) {
	args := m.Called(ctx, text, instructions, postID)
	return args.Get(0).(audio.Result), args.Error(1)
}

func (m *MockPostUseCase) EnqueueAudio(ctx context.Context, requesterID, text, instructions, postID string) (audio.Result, bool, error) {
	args := m.Called(ctx, requesterID, text, instructions, postID)
	return args.Get(0).(audio.Result), args.Bool(1), args.Error(2)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, id, requesterID string) error {
	args := m.Called(ctx, id, requesterID)
	return args.Error(0)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, id, requesterID string) (*entity.Post, error) {
	args := m.Called(ctx, id, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, page, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetLatestDraft(ctx context.Context, authorID string) (*entity.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetUserPosts(ctx context.Context, authorID string) ([]*entity.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) SearchPosts(ctx context.Context, query string) ([]*entity.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, email, password, pseudo string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password, pseudo)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdatePseudo(ctx context.Context, userID, pseudo string) (*entity.User, error) {
	args := m.Called(ctx, userID, pseudo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, postID, requesterID string) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, userID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

type MockReactionUseCase struct {
	mock.Mock
}

func (m *MockReactionUseCase) ListReactions(ctx context.Context, postID, requesterID string) ([]*entity.Reaction, error) {
	args := m.Called(ctx, postID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reaction), args.Error(1)
}

func (m *MockReactionUseCase) CountReactions(ctx context.Context, postID, requesterID string) ([]entity.EmojiCount, error) {
	args := m.Called(ctx, postID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmojiCount), args.Error(1)
}

func (m *MockReactionUseCase) AddReaction(ctx context.Context, userID, postID, emoji string) (*entity.Reaction, error) {
	args := m.Called(ctx, userID, postID, emoji)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reaction), args.Error(1)
}

func (m *MockReactionUseCase) RemoveReaction(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockReactionUseCase) RemoveReactionByEmoji(ctx context.Context, userID, postID, emoji string) error {
	args := m.Called(ctx, userID, postID, emoji)
	return args.Error(0)
}

var _ usecase.ReactionUseCase = (*MockReactionUseCase)(nil)

type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) ListInteractions(ctx context.Context, postID, requesterID string) ([]*entity.Interaction, error) {
	args := m.Called(ctx, postID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Interaction), args.Error(1)
}

func (m *MockInteractionUseCase) CountInteractions(ctx context.Context, postID, requesterID string) ([]entity.TypeCount, error) {
	args := m.Called(ctx, postID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TypeCount), args.Error(1)
}

func (m *MockInteractionUseCase) RecordInteraction(ctx context.Context, userID, postID, interactionType string) (*entity.Interaction, error) {
	args := m.Called(ctx, userID, postID, interactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Interaction), args.Error(1)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testLogger() *logger.Logger {
	return logger.NewWithWriters(io.Discard, io.Discard)
}

// asUser stands in for the auth middleware.
func asUser(userID string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		next(c)
	}
}
