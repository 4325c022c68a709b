// Package cache provides a process-wide TTL memoization store for computed
// ranking and bundling results. Entries expire lazily on read; a janitor
// sweep keeps memory bounded for keys that are written and never read again.
// There is no stampede protection: everything this cache fronts is cheap,
// CPU-bound work, so concurrent recomputation on a miss is acceptable.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a mutex-guarded TTL memo keyed by opaque strings. The zero value
// is not usable; construct with New.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]

	cacheTotal *prometheus.CounterVec // label "result": hit/miss, may be nil
	now        func() time.Time
}

// New creates an empty cache. cacheTotal is an optional counter vec with a
// "result" label, passed explicitly (no init() registration).
func New[V any](cacheTotal *prometheus.CounterVec) *Cache[V] {
	return &Cache[V]{
		entries:    make(map[string]entry[V]),
		cacheTotal: cacheTotal,
		now:        time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (c *Cache[V]) WithClock(now func() time.Time) *Cache[V] {
	c.now = now
	return c
}

// Get returns the cached value for key if present and unexpired. An expired
// entry is evicted on the spot.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().Before(e.expiresAt) {
		c.inc("hit")
		return e.value, true
	}

	if ok {
		// Lazy eviction. Re-check under the write lock: a concurrent Set may
		// have replaced the entry since the read.
		c.mu.Lock()
		if cur, still := c.entries[key]; still && !c.now().Before(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}

	c.inc("miss")
	var zero V
	return zero, false
}

// Set stores value under key for ttl. An existing entry and its expiry are
// replaced; entries are immutable once written.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes all expired entries and reports how many were evicted.
func (c *Cache[V]) Sweep() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			evicted++
		}
	}
	return evicted
}

// Janitor sweeps on the given interval until ctx is cancelled. Run it in a
// goroutine from the composition root.
func (c *Cache[V]) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

func (c *Cache[V]) inc(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
