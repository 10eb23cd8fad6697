package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

const keyTrending = "project:trending"

// ProjectCache caches the trending projects page in Redis. Any project,
// comment or bookmark write invalidates it.
type ProjectCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProjectCache returns a new ProjectCache.
func NewProjectCache(rdb *redis.Client, ttl time.Duration) *ProjectCache {
	return &ProjectCache{rdb: rdb, ttl: ttl}
}

// GetTrending returns the cached trending list or nil if miss.
func (c *ProjectCache) GetTrending(ctx context.Context) ([]dom.ProjectWithMeta, error) {
	b, err := c.rdb.Get(ctx, keyTrending).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.ProjectWithMeta
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetTrending stores the trending list in cache.
func (c *ProjectCache) SetTrending(ctx context.Context, list []dom.ProjectWithMeta) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyTrending, b, c.ttl).Err()
}

// Invalidate drops the trending key (cache invalidation on write).
func (c *ProjectCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyTrending).Err()
}
