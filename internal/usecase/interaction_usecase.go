package usecase

import (
	"context"
	"fmt"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/pkg/logger"
)

type InteractionUseCase interface {
	ListInteractions(ctx context.Context, postID, requesterID string) ([]*entity.Interaction, error)
	CountInteractions(ctx context.Context, postID, requesterID string) ([]entity.TypeCount, error)
	RecordInteraction(ctx context.Context, userID, postID, interactionType string) (*entity.Interaction, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	postRepo        persistent.PostRepository
	logger          *logger.Logger
}

func NewInteractionUseCase(interactionRepo persistent.InteractionRepository, postRepo persistent.PostRepository, logger *logger.Logger) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		logger:          logger,
	}
}

func (uc *interactionUseCase) ListInteractions(ctx context.Context, postID, requesterID string) ([]*entity.Interaction, error) {
	if err := requireVisiblePost(ctx, uc.postRepo, postID, requesterID); err != nil {
		return nil, err
	}
	return uc.interactionRepo.ListByPost(ctx, postID)
}

func (uc *interactionUseCase) CountInteractions(ctx context.Context, postID, requesterID string) ([]entity.TypeCount, error) {
	if err := requireVisiblePost(ctx, uc.postRepo, postID, requesterID); err != nil {
		return nil, err
	}
	return uc.interactionRepo.CountByPost(ctx, postID)
}

func (uc *interactionUseCase) RecordInteraction(ctx context.Context, userID, postID, interactionType string) (*entity.Interaction, error) {
	t := entity.InteractionType(interactionType)
	if !t.Valid() {
		return nil, entity.NewValidationError("type", "type must be share")
	}
	if err := requireVisiblePost(ctx, uc.postRepo, postID, userID); err != nil {
		return nil, err
	}

	interaction := &entity.Interaction{
		PostID: postID,
		UserID: userID,
		Type:   t,
	}
	if err := uc.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}
	uc.logger.Info("Post %s shared by %s", postID, userID)
	return interaction, nil
}
