package persistent

import (
	"context"
	"strings"
	"time"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxSearchResults = 50

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	ListPublic(ctx context.Context, page, limit int) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error)
	LatestDraft(ctx context.Context, authorID string) (*entity.Post, error)
	Delete(ctx context.Context, id, requesterID string) (bool, error)
	AttachAudio(ctx context.Context, id, audioURL string) (bool, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if postModel.Visibility == "" {
		postModel.Visibility = string(entity.VisibilityPublic)
	}

	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return translate(err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) ListPublic(ctx context.Context, page, limit int) ([]*entity.Post, error) {
	if page < 1 {
		page = 1
	}

	var postModels []model.PostModel
	err := r.publicScope(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) LatestDraft(ctx context.Context, authorID string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND is_draft = ?", authorID, true).
		Order("updated_at DESC").
		Order("created_at DESC").
		First(&postModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&postModel), nil
}

// Delete removes the post only when requesterID is its author. Comments,
// reactions and interactions go with it through ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, id, requesterID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, requesterID).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AttachAudio is idempotent: re-attaching the same URL still reports true.
func (r *postRepository) AttachAudio(ctx context.Context, id, audioURL string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tts_audio_url": audioURL,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *postRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Post, error) {
	if limit <= 0 || limit > MaxSearchResults {
		limit = MaxSearchResults
	}
	pattern := "%" + escapeLike(query) + "%"

	var postModels []model.PostModel
	err := r.publicScope(r.db.WithContext(ctx)).
		Where("(content ILIKE ? OR COALESCE(title, '') ILIKE ? OR array_to_string(hashtags, ' ') ILIKE ?)", pattern, pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return toPostEntities(postModels), nil
}

func (r *postRepository) publicScope(db *gorm.DB) *gorm.DB {
	return db.Where("visibility = ? AND is_draft = ?", string(entity.VisibilityPublic), false)
}

func toPostEntities(postModels []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
