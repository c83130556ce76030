// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// TimelineCache caches fully computed timelines keyed by window and version
// stamp. The stamp encodes the latest modification across the user's rules
// and persisted events, so any edit produces a new key and stale entries are
// simply never read again. A cache error or miss must fall through to fresh
// computation; the cache is never authoritative.
type TimelineCache interface {
	// Get returns the cached timeline for the key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*entity.Timeline, error)

	// Set stores the timeline under the key with the given TTL.
	Set(ctx context.Context, key string, timeline *entity.Timeline, ttl time.Duration) error
}
