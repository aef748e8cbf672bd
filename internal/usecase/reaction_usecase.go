package usecase

import (
	"context"
	"errors"
	"fmt"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/pkg/logger"
)

type ReactionUseCase interface {
	ListReactions(ctx context.Context, postID, requesterID string) ([]*entity.Reaction, error)
	CountReactions(ctx context.Context, postID, requesterID string) ([]entity.EmojiCount, error)
	AddReaction(ctx context.Context, userID, postID, emoji string) (*entity.Reaction, error)
	RemoveReaction(ctx context.Context, id, userID string) error
	RemoveReactionByEmoji(ctx context.Context, userID, postID, emoji string) error
}

type reactionUseCase struct {
	reactionRepo persistent.ReactionRepository
	postRepo     persistent.PostRepository
	logger       *logger.Logger
}

func NewReactionUseCase(reactionRepo persistent.ReactionRepository, postRepo persistent.PostRepository, logger *logger.Logger) ReactionUseCase {
	return &reactionUseCase{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

func (uc *reactionUseCase) ListReactions(ctx context.Context, postID, requesterID string) ([]*entity.Reaction, error) {
	if err := requireVisiblePost(ctx, uc.postRepo, postID, requesterID); err != nil {
		return nil, err
	}
	return uc.reactionRepo.ListByPost(ctx, postID)
}

func (uc *reactionUseCase) CountReactions(ctx context.Context, postID, requesterID string) ([]entity.EmojiCount, error) {
	if err := requireVisiblePost(ctx, uc.postRepo, postID, requesterID); err != nil {
		return nil, err
	}
	return uc.reactionRepo.CountByPost(ctx, postID)
}

func (uc *reactionUseCase) AddReaction(ctx context.Context, userID, postID, emoji string) (*entity.Reaction, error) {
	if !entity.IsAllowedEmoji(emoji) {
		return nil, entity.NewValidationError("emoji", "emoji is not allowed")
	}
	if err := requireVisiblePost(ctx, uc.postRepo, postID, userID); err != nil {
		return nil, err
	}

	reaction := &entity.Reaction{
		PostID: postID,
		UserID: userID,
		Emoji:  emoji,
	}
	if err := uc.reactionRepo.Create(ctx, reaction); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, entity.ErrConflict
		}
		return nil, fmt.Errorf("failed to add reaction: %w", err)
	}
	return reaction, nil
}

func (uc *reactionUseCase) RemoveReaction(ctx context.Context, id, userID string) error {
	ok, err := uc.reactionRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to remove reaction %s: %w", id, err)
	}
	if !ok {
		return entity.ErrNotFound
	}
	return nil
}

func (uc *reactionUseCase) RemoveReactionByEmoji(ctx context.Context, userID, postID, emoji string) error {
	v := &entity.ValidationError{}
	if postID == "" {
		v.Add("postId", "postId is required")
	}
	if emoji == "" {
		v.Add("emoji", "emoji is required")
	}
	if err := v.Err(); err != nil {
		return err
	}

	ok, err := uc.reactionRepo.DeleteByEmoji(ctx, postID, userID, emoji)
	if err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}
	if !ok {
		return entity.ErrNotFound
	}
	return nil
}
