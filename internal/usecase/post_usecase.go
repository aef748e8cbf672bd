package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vocal-feed/internal/audio"
	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/cache"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/pkg/logger"
	"vocal-feed/pkg/queue"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// AudioCache is the part of audio.Cache the post flow depends on.
type AudioCache interface {
	GetOrCreate(ctx context.Context, text, instructions string) (audio.Result, error)
	URLFor(fingerprint string) string
}

// JobPublisher hands generation work to a background worker.
type JobPublisher interface {
	PublishTTSJob(ctx context.Context, job queue.TTSJob) error
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID string, in entity.PostInput) (*entity.Post, error)
	SaveDraft(ctx context.Context, authorID string, in entity.PostInput) (*entity.Post, error)
	GenerateAndAttachAudio(ctx context.Context, text, instructions, postID string) (audio.Result, error)
	EnqueueAudio(ctx context.Context, requesterID, text, instructions, postID string) (audio.Result, bool, error)
	DeletePost(ctx context.Context, id, requesterID string) error
	GetPost(ctx context.Context, id, requesterID string) (*entity.Post, error)
	ListPosts(ctx context.Context, page, limit int) ([]*entity.Post, error)
	GetLatestDraft(ctx context.Context, authorID string) (*entity.Post, error)
	GetUserPosts(ctx context.Context, authorID string) ([]*entity.Post, error)
	SearchPosts(ctx context.Context, query string) ([]*entity.Post, error)
}

type postUseCase struct {
	postRepo  persistent.PostRepository
	audio     AudioCache
	publisher JobPublisher
	postCache *cache.PostCache
	logger    *logger.Logger
}

// NewPostUseCase accepts a nil publisher; audio requests then run inline.
func NewPostUseCase(
	postRepo persistent.PostRepository,
	audioCache AudioCache,
	publisher JobPublisher,
	postCache *cache.PostCache,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:  postRepo,
		audio:     audioCache,
		publisher: publisher,
		postCache: postCache,
		logger:    logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID string, in entity.PostInput) (*entity.Post, error) {
	if err := in.ValidateForPublish(); err != nil {
		return nil, err
	}

	post := buildPost(authorID, in, false)
	if post.Content == "" {
		return nil, entity.NewValidationError("content", "content is required")
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.logger.Info("Post %s created by %s", post.ID, authorID)
	return post, nil
}

// SaveDraft always inserts a new row; earlier drafts stay reachable by id.
func (uc *postUseCase) SaveDraft(ctx context.Context, authorID string, in entity.PostInput) (*entity.Post, error) {
	if err := in.ValidateForDraft(); err != nil {
		return nil, err
	}

	post := buildPost(authorID, in, true)
	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	uc.logger.Info("Draft %s saved by %s", post.ID, authorID)
	return post, nil
}

func buildPost(authorID string, in entity.PostInput, isDraft bool) *entity.Post {
	visibility := entity.Visibility(in.Visibility)
	if visibility == "" {
		visibility = entity.VisibilityPublic
	}

	return &entity.Post{
		AuthorID:        authorID,
		Type:            entity.PostType(strings.TrimSpace(in.Type)),
		Title:           sanitizeText(in.Title),
		Content:         sanitizeText(in.Content),
		Hashtags:        entity.NormalizeHashtags(in.Hashtags),
		TTSInstructions: strings.TrimSpace(in.TTSInstructions),
		Visibility:      visibility,
		IsDraft:         isDraft,
	}
}

// GenerateAndAttachAudio attaches the artifact URL on both hit and miss;
// attaching is idempotent.
func (uc *postUseCase) GenerateAndAttachAudio(ctx context.Context, text, instructions, postID string) (audio.Result, error) {
	if strings.TrimSpace(text) == "" {
		return audio.Result{}, entity.NewValidationError("text", "text is required")
	}
	if postID != "" {
		if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
			return audio.Result{}, err
		}
	}

	result, err := uc.audio.GetOrCreate(ctx, text, instructions)
	if err != nil {
		uc.logger.Error("Audio generation failed: %v", err)
		return audio.Result{}, err
	}

	if postID != "" {
		if err := uc.attach(ctx, postID, result.URL); err != nil {
			return audio.Result{}, err
		}
	}
	return result, nil
}

func (uc *postUseCase) attach(ctx context.Context, postID, url string) error {
	ok, err := uc.postRepo.AttachAudio(ctx, postID, url)
	if err != nil {
		return fmt.Errorf("failed to attach audio to post %s: %w", postID, err)
	}
	if !ok {
		return entity.ErrNotFound
	}
	if err := uc.postCache.Invalidate(ctx, postID); err != nil {
		uc.logger.Warn("Failed to invalidate cached post %s: %v", postID, err)
	}
	return nil
}

// EnqueueAudio publishes a generation job and returns the URL the artifact
// will be served from. Without a publisher, or when publishing fails, the
// work runs inline. The bool result reports whether the job was queued.
func (uc *postUseCase) EnqueueAudio(ctx context.Context, requesterID, text, instructions, postID string) (audio.Result, bool, error) {
	if uc.publisher == nil {
		result, err := uc.GenerateAndAttachAudio(ctx, text, instructions, postID)
		return result, false, err
	}

	if strings.TrimSpace(text) == "" {
		return audio.Result{}, false, entity.NewValidationError("text", "text is required")
	}
	if postID != "" {
		if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
			return audio.Result{}, false, err
		}
	}

	job := queue.TTSJob{
		Text:         text,
		Instructions: instructions,
		PostID:       postID,
		RequestedBy:  requesterID,
	}
	if err := uc.publisher.PublishTTSJob(ctx, job); err != nil {
		uc.logger.Warn("Falling back to inline generation: %v", err)
		result, err := uc.GenerateAndAttachAudio(ctx, text, instructions, postID)
		return result, false, err
	}

	fp := audio.Fingerprint(text, instructions)
	return audio.Result{URL: uc.audio.URLFor(fp), Fingerprint: fp}, true, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, id, requesterID string) error {
	ok, err := uc.postRepo.Delete(ctx, id, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	if !ok {
		return entity.ErrNotFound
	}

	if err := uc.postCache.Invalidate(ctx, id); err != nil {
		uc.logger.Warn("Failed to invalidate cached post %s: %v", id, err)
	}
	uc.logger.Info("Post %s deleted by %s", id, requesterID)
	return nil
}

// GetPost hides drafts and private posts from everyone but their author.
func (uc *postUseCase) GetPost(ctx context.Context, id, requesterID string) (*entity.Post, error) {
	post, hit := uc.postCache.Get(ctx, id)
	if !hit {
		var err error
		post, err = uc.postRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := uc.postCache.Set(ctx, post); err != nil {
			uc.logger.Warn("Failed to cache post %s: %v", id, err)
		}
	}

	if !post.VisibleTo(requesterID) {
		return nil, entity.ErrNotFound
	}
	return post, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context, page, limit int) ([]*entity.Post, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return uc.postRepo.ListPublic(ctx, page, limit)
}

func (uc *postUseCase) GetLatestDraft(ctx context.Context, authorID string) (*entity.Post, error) {
	post, err := uc.postRepo.LatestDraft(ctx, authorID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest draft: %w", err)
	}
	return post, nil
}

func (uc *postUseCase) GetUserPosts(ctx context.Context, authorID string) ([]*entity.Post, error) {
	return uc.postRepo.ListByAuthor(ctx, authorID)
}

func (uc *postUseCase) SearchPosts(ctx context.Context, query string) ([]*entity.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, entity.NewValidationError("query", "query is required")
	}
	return uc.postRepo.Search(ctx, query, persistent.MaxSearchResults)
}
