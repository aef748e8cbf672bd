package persistent

import (
	"context"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
	ListByPost(ctx context.Context, postID string) ([]*entity.Interaction, error)
	CountByPost(ctx context.Context, postID string) ([]entity.TypeCount, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	interactionModel := ToInteractionModel(interaction)
	if err := r.db.WithContext(ctx).Create(interactionModel).Error; err != nil {
		return translate(err)
	}
	*interaction = *ToInteractionEntity(interactionModel)
	return nil
}

func (r *interactionRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Interaction, error) {
	var rows []model.InteractionModel
	err := r.db.WithContext(ctx).
		Table("interactions").
		Select("interactions.*, users.pseudo AS author_pseudo").
		Joins("JOIN users ON users.id = interactions.user_id").
		Where("interactions.post_id = ?", postID).
		Order("interactions.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	interactions := make([]*entity.Interaction, len(rows))
	for i := range rows {
		interactions[i] = ToInteractionEntity(&rows[i])
	}
	return interactions, nil
}

func (r *interactionRepository) CountByPost(ctx context.Context, postID string) ([]entity.TypeCount, error) {
	counts := []entity.TypeCount{}
	err := r.db.WithContext(ctx).
		Model(&model.InteractionModel{}).
		Select("type, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
