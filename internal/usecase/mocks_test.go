package usecase

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"vocal-feed/internal/audio"
	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/pkg/logger"
	"vocal-feed/pkg/queue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logger.Logger {
	return logger.NewWithWriters(io.Discard, io.Discard)
}

// MockPostRepository is a testify mock of persistent.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListPublic(ctx context.Context, page, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) LatestDraft(ctx context.Context, authorID string) (*entity.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id, requesterID string) (bool, error) {
	args := m.Called(ctx, id, requesterID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) AttachAudio(ctx context.Context, id, audioURL string) (bool, error) {
	args := m.Called(ctx, id, audioURL)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockAudioCache is a testify mock of AudioCache.
type MockAudioCache struct {
	mock.Mock
}

func (m *MockAudioCache) GetOrCreate(ctx context.Context, text, instructions string) (audio.Result, error) {
	args := m.Called(ctx, text, instructions)
	return args.Get(0).(audio.Result), args.Error(1)
}

func (m *MockAudioCache) URLFor(fp string) string {
	return "/api/v1/audio/" + fp
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishTTSJob(ctx context.Context, job queue.TTSJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

// memPostRepo is an in-memory PostRepository for lifecycle scenarios.
type memPostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
	clock time.Time
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[string]*entity.Post{}, clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memPostRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func clonePost(p *entity.Post) *entity.Post {
	c := *p
	c.Hashtags = append([]string{}, p.Hashtags...)
	if p.TTSAudioURL != nil {
		url := *p.TTSAudioURL
		c.TTSAudioURL = &url
	}
	c.TTSGenerated = c.TTSAudioURL != nil
	return &c
}

func (r *memPostRepo) Create(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = uuid.New().String()
	now := r.tick()
	post.CreatedAt, post.UpdatedAt = now, now
	r.posts[post.ID] = clonePost(post)
	*post = *clonePost(post)
	return nil
}

func (r *memPostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *memPostRepo) sorted(filter func(*entity.Post) bool, byUpdated bool) []*entity.Post {
	out := []*entity.Post{}
	for _, p := range r.posts {
		if filter(p) {
			out = append(out, clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if byUpdated {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *memPostRepo) ListPublic(_ context.Context, page, limit int) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted(func(p *entity.Post) bool {
		return p.Visibility == entity.VisibilityPublic && !p.IsDraft
	}, false)
	start := (page - 1) * limit
	if start >= len(all) {
		return []*entity.Post{}, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *memPostRepo) ListByAuthor(_ context.Context, authorID string) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(p *entity.Post) bool { return p.AuthorID == authorID }, false), nil
}

func (r *memPostRepo) LatestDraft(_ context.Context, authorID string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drafts := r.sorted(func(p *entity.Post) bool { return p.AuthorID == authorID && p.IsDraft }, true)
	if len(drafts) == 0 {
		return nil, entity.ErrNotFound
	}
	return drafts[0], nil
}

func (r *memPostRepo) Delete(_ context.Context, id, requesterID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || p.AuthorID != requesterID {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

func (r *memPostRepo) AttachAudio(_ context.Context, id, audioURL string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return false, nil
	}
	p.TTSAudioURL = &audioURL
	p.UpdatedAt = r.tick()
	return true, nil
}

func (r *memPostRepo) Search(_ context.Context, query string, limit int) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(query)
	all := r.sorted(func(p *entity.Post) bool {
		if p.Visibility != entity.VisibilityPublic || p.IsDraft {
			return false
		}
		hay := strings.ToLower(p.Content + " " + p.Title + " " + strings.Join(p.Hashtags, " "))
		return strings.Contains(hay, q)
	}, false)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *memPostRepo) all() []*entity.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(*entity.Post) bool { return true }, false)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = uuid.New().String()
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePseudo(ctx context.Context, id, pseudo string) (bool, error) {
	args := m.Called(ctx, id, pseudo)
	return args.Bool(0), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	if args.Error(0) == nil && comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *MockReactionRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Reaction, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reaction), args.Error(1)
}

func (m *MockReactionRepository) CountByPost(ctx context.Context, postID string) ([]entity.EmojiCount, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EmojiCount), args.Error(1)
}

func (m *MockReactionRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReactionRepository) DeleteByEmoji(ctx context.Context, postID, userID, emoji string) (bool, error) {
	args := m.Called(ctx, postID, userID, emoji)
	return args.Bool(0), args.Error(1)
}

var _ persistent.ReactionRepository = (*MockReactionRepository)(nil)

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Interaction, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) CountByPost(ctx context.Context, postID string) ([]entity.TypeCount, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TypeCount), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)
