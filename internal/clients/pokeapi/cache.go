package pokeapi

import (
	"context"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/pokeview/pokedex-api/internal/metrics"
	"github.com/pokeview/pokedex-api/internal/pkg/clock"
)

// responseCache is the keyed cache in front of the upstream API. Entries are
// fresh for the staleness window; a stale entry is still served while a
// single background refresh runs. In-flight fetches are deduplicated per key,
// and writes are idempotent since upstream content for a key never changes.
type responseCache struct {
	ttl     time.Duration
	entries *lru.Cache[string, cacheEntry]
	group   singleflight.Group
	clock   clock.Clock
}

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

func newResponseCache(size int, ttl time.Duration) (*responseCache, error) {
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &responseCache{
		ttl:     ttl,
		entries: entries,
		clock:   clock.New(),
	}, nil
}

type fetchFunc func(ctx context.Context) (any, error)

// get returns the cached value for key, fetching on a miss. A stale hit is
// served immediately and refreshed in the background; a failed refresh keeps
// the stale value.
func (c *responseCache) get(ctx context.Context, resource, key string, fetch fetchFunc) (any, error) {
	if entry, ok := c.entries.Get(key); ok {
		metrics.CacheHits.WithLabelValues(resource).Inc()
		if c.clock.Now().Sub(entry.fetchedAt) >= c.ttl {
			go c.refresh(resource, key, fetch)
		}
		return entry.value, nil
	}

	metrics.CacheMisses.WithLabelValues(resource).Inc()
	value, err, _ := c.group.Do(key, func() (any, error) {
		if entry, ok := c.entries.Get(key); ok {
			// Another caller filled the key while we waited.
			return entry.value, nil
		}
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, cacheEntry{value: value, fetchedAt: c.clock.Now()})
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// refresh refetches a stale key. Deduplicated through the same singleflight
// group, so concurrent stale hits trigger one upstream request.
func (c *responseCache) refresh(resource, key string, fetch fetchFunc) {
	_, err, _ := c.group.Do(key, func() (any, error) {
		value, err := fetch(context.Background())
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, cacheEntry{value: value, fetchedAt: c.clock.Now()})
		return value, nil
	})
	if err != nil {
		slog.Warn("background refresh failed, keeping stale entry",
			"resource", resource,
			"key", key,
			"error", err)
	}
}
