package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/pkg/logger"
)

type CommentUseCase interface {
	ListComments(ctx context.Context, postID, requesterID string) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, userID, postID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, postRepo persistent.PostRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) ListComments(ctx context.Context, postID, requesterID string) ([]*entity.Comment, error) {
	if err := requireVisiblePost(ctx, uc.postRepo, postID, requesterID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByPost(ctx, postID)
}

func (uc *commentUseCase) CreateComment(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
	content = sanitizeText(content)

	v := &entity.ValidationError{}
	if postID == "" {
		v.Add("postId", "postId is required")
	}
	if content == "" {
		v.Add("content", "content is required")
	} else if utf8.RuneCountInString(content) > entity.MaxCommentLength {
		v.Add("content", fmt.Sprintf("content must be at most %d characters", entity.MaxCommentLength))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := requireVisiblePost(ctx, uc.postRepo, postID, userID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	uc.logger.Info("Comment %s added to post %s by %s", comment.ID, postID, userID)
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, id, userID string) error {
	ok, err := uc.commentRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
	}
	if !ok {
		return entity.ErrNotFound
	}
	return nil
}
