// Package statistics contains read-only statistics use cases.
package statistics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// statsCacheTTL bounds how stale a cached report can get if an invalidation
// is lost (for example when Redis restarts between a write and a read).
const statsCacheTTL = 60 * time.Second

// dateRangeKey builds a cache key for an operation filtered by an optional
// date range.
func dateRangeKey(operation string, start, end *time.Time) string {
	format := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("stats:%s:%s:%s", operation, format(start), format(end))
}

// loadCached unmarshals a cached payload into out. Returns false on a miss or
// any cache failure; cache failures never fail the request.
func loadCached(ctx context.Context, cache adapter.StatsCache, key string, out any) bool {
	if cache == nil {
		return false
	}
	payload, err := cache.Get(ctx, key)
	if err != nil || payload == nil {
		return false
	}
	return json.Unmarshal(payload, out) == nil
}

// storeCached writes a computed report back to the cache. Failures are ignored.
func storeCached(ctx context.Context, cache adapter.StatsCache, key string, out any) {
	if cache == nil {
		return
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return
	}
	_ = cache.Set(ctx, key, payload, statsCacheTTL)
}
