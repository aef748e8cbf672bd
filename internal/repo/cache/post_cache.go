package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vocal-feed/internal/entity"

	"github.com/redis/go-redis/v9"
)

const postTTL = 10 * time.Minute

// PostCache keeps single-post lookups in Redis. A nil client turns every
// call into a miss or a no-op.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPostCache(client *redis.Client) *PostCache {
	return &PostCache{client: client, ttl: postTTL}
}

func postKey(id string) string {
	return fmt.Sprintf("post:%s", id)
}

func (c *PostCache) Get(ctx context.Context, id string) (*entity.Post, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, postKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var post entity.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, false
	}
	return &post, true
}

func (c *PostCache) Set(ctx context.Context, post *entity.Post) error {
	if c == nil || c.client == nil || post == nil {
		return nil
	}
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to marshal post %s: %w", post.ID, err)
	}
	return c.client.Set(ctx, postKey(post.ID), data, c.ttl).Err()
}

func (c *PostCache) Invalidate(ctx context.Context, id string) error {
	if c == nil || c.client == nil {
		return nil
	}
	err := c.client.Del(ctx, postKey(id)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
