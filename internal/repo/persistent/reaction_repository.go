package persistent

import (
	"context"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepository interface {
	Create(ctx context.Context, reaction *entity.Reaction) error
	ListByPost(ctx context.Context, postID string) ([]*entity.Reaction, error)
	CountByPost(ctx context.Context, postID string) ([]entity.EmojiCount, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
	DeleteByEmoji(ctx context.Context, postID, userID, emoji string) (bool, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Create returns entity.ErrConflict when the user already reacted to the
// post with the same emoji.
func (r *reactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	reactionModel := ToReactionModel(reaction)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(reactionModel)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrConflict
	}
	*reaction = *ToReactionEntity(reactionModel)
	return nil
}

func (r *reactionRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Reaction, error) {
	var rows []model.ReactionModel
	err := r.db.WithContext(ctx).
		Table("reactions").
		Select("reactions.*, users.pseudo AS author_pseudo").
		Joins("JOIN users ON users.id = reactions.user_id").
		Where("reactions.post_id = ?", postID).
		Order("reactions.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	reactions := make([]*entity.Reaction, len(rows))
	for i := range rows {
		reactions[i] = ToReactionEntity(&rows[i])
	}
	return reactions, nil
}

func (r *reactionRepository) CountByPost(ctx context.Context, postID string) ([]entity.EmojiCount, error) {
	counts := []entity.EmojiCount{}
	err := r.db.WithContext(ctx).
		Model(&model.ReactionModel{}).
		Select("emoji, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("emoji").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *reactionRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ReactionModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *reactionRepository) DeleteByEmoji(ctx context.Context, postID, userID, emoji string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ? AND emoji = ?", postID, userID, emoji).
		Delete(&model.ReactionModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
