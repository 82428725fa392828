package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventhub/booking-system/internal/api/metrics"
	"github.com/eventhub/booking-system/internal/core/domain"
)

const eventListKey = "events:list"

const defaultCacheTTL = 5 * time.Minute

// EventCache caches the public event list as a JSON blob with a TTL.
// Mutations invalidate the key; a stale window up to the TTL is accepted.
type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEventCache creates an EventCache wrapping the given Redis client.
func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &EventCache{client: client, ttl: ttl}
}

// GetList returns the cached list, or (nil, nil) on a miss.
func (c *EventCache) GetList(ctx context.Context) ([]*domain.Event, error) {
	raw, err := c.client.Get(ctx, eventListKey).Bytes()
	if err == redis.Nil {
		metrics.EventCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("event cache get: %w", err)
	}

	var events []*domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		// treat a corrupt entry as a miss; the next SetList overwrites it
		metrics.EventCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.EventCacheTotal.WithLabelValues("hit").Inc()
	return events, nil
}

// SetList stores the list with the configured TTL.
func (c *EventCache) SetList(ctx context.Context, events []*domain.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("event cache marshal: %w", err)
	}
	return c.client.Set(ctx, eventListKey, raw, c.ttl).Err()
}

// Invalidate drops the cached list after an event mutation.
func (c *EventCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, eventListKey).Err()
}
