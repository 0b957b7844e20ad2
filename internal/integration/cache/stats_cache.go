// Package cache implements the statistics cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// statsKeyPattern matches every cached statistics payload. Keys are built by
// the statistics use cases under the "stats:" prefix.
const statsKeyPattern = "stats:*"

// statsCache implements the adapter.StatsCache interface on a Redis client.
type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new Redis-backed statistics cache.
func NewStatsCache(client *redis.Client) adapter.StatsCache {
	return &statsCache{
		client: client,
	}
}

// Get retrieves a cached payload. A missing key is a cache miss, not an error.
func (c *statsCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache key %q: %w", key, err)
	}
	return payload, nil
}

// Set stores a payload under the given key with a time-to-live.
func (c *statsCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %q: %w", key, err)
	}
	return nil
}

// Invalidate removes every cached statistics payload.
func (c *statsCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, statsKeyPattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}
