package persistent

import (
	"testing"
	"time"

	"vocal-feed/internal/entity"
	"vocal-feed/internal/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToPostEntity_DerivesTTSGenerated(t *testing.T) {
	tests := []struct {
		name      string
		url       *string
		generated bool
	}{
		{"no url", nil, false},
		{"empty url", strPtr(""), false},
		{"url set", strPtr("/api/v1/audio/abc"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := ToPostEntity(&model.PostModel{ID: "p1", TTSAudioURL: tt.url})
			require.NotNil(t, post)
			assert.Equal(t, tt.generated, post.TTSGenerated)
			assert.Equal(t, tt.generated, post.TTSAudioURL != nil)
		})
	}
}

func TestToPostEntity_Fields(t *testing.T) {
	now := time.Now()
	m := &model.PostModel{
		ID:              "p1",
		AuthorID:        "u1",
		Type:            "Post B",
		Title:           strPtr("Title"),
		Content:         "body",
		Hashtags:        pq.StringArray{"go", "tts"},
		TTSInstructions: strPtr("calm"),
		Visibility:      "private",
		IsDraft:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	post := ToPostEntity(m)

	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, "u1", post.AuthorID)
	assert.Equal(t, entity.PostTypeB, post.Type)
	assert.Equal(t, "Title", post.Title)
	assert.Equal(t, []string{"go", "tts"}, post.Hashtags)
	assert.Equal(t, "calm", post.TTSInstructions)
	assert.Equal(t, entity.VisibilityPrivate, post.Visibility)
	assert.True(t, post.IsDraft)
	assert.False(t, post.TTSGenerated)
}

func TestToPostEntity_NilHashtagsBecomeEmpty(t *testing.T) {
	post := ToPostEntity(&model.PostModel{ID: "p1"})
	assert.NotNil(t, post.Hashtags)
	assert.Empty(t, post.Hashtags)
}

func TestToPostModel_IgnoresGeneratedFlag(t *testing.T) {
	m := ToPostModel(&entity.Post{ID: "p1", TTSGenerated: true})
	assert.Nil(t, m.TTSAudioURL)
	assert.Nil(t, m.Title)
	assert.NotNil(t, m.Hashtags)

	back := ToPostEntity(m)
	assert.False(t, back.TTSGenerated)
}

func TestMapper_NilInputs(t *testing.T) {
	assert.Nil(t, ToPostEntity(nil))
	assert.Nil(t, ToPostModel(nil))
	assert.Nil(t, ToUserEntity(nil))
	assert.Nil(t, ToCommentEntity(nil))
	assert.Nil(t, ToReactionEntity(nil))
	assert.Nil(t, ToInteractionEntity(nil))
}

func TestToUserEntity_KeepsHash(t *testing.T) {
	u := ToUserEntity(&model.UserModel{ID: "u1", Email: "a@b.c", Pseudo: "alice", PasswordHash: "hash"})
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, "alice", u.Pseudo)
}
