package adapter

import (
	"context"
	"time"
)

// StatsCache defines a read-through cache for statistics reports. Statistics
// use cases treat it as optional: a nil StatsCache disables caching entirely.
type StatsCache interface {
	// Get retrieves a cached payload. A cache miss returns (nil, nil).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a payload under the given key with a time-to-live.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate drops every cached statistics payload. Called after any
	// transaction or category mutation.
	Invalidate(ctx context.Context) error
}
