// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cashflowd/backend/internal/application/adapter"
	"github.com/cashflowd/backend/internal/domain/entity"
)

// redisTimelineCache implements the adapter.TimelineCache interface on Redis.
// Entries are JSON-encoded timelines keyed by window and version stamp; keys
// for outdated stamps are never read again and simply expire.
type redisTimelineCache struct {
	client *redis.Client
}

// NewTimelineCache creates a new Redis-backed timeline cache.
func NewTimelineCache(client *redis.Client) adapter.TimelineCache {
	return &redisTimelineCache{
		client: client,
	}
}

// Get returns the cached timeline for the key, or (nil, nil) on a miss.
func (c *redisTimelineCache) Get(ctx context.Context, key string) (*entity.Timeline, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read timeline cache: %w", err)
	}

	var timeline entity.Timeline
	if err := json.Unmarshal(payload, &timeline); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes.
		return nil, nil
	}
	return &timeline, nil
}

// Set stores the timeline under the key with the given TTL.
func (c *redisTimelineCache) Set(ctx context.Context, key string, timeline *entity.Timeline, ttl time.Duration) error {
	payload, err := json.Marshal(timeline)
	if err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
