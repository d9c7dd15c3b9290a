// Package cache provides a keyed in-memory store with time-based expiry.
// It is a best-effort accelerator, never a source of truth: expired entries
// behave as misses and are replaced, not patched, on refetch.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache stores values for at most TTL after Set. Expiry is lazy: entries are
// overwritten on the next Set rather than evicted in the background, so the
// map grows with the key space. That is acceptable here (symbols x range
// tokens), but callers with unbounded keys should not reuse this as-is.
type Cache[V any] struct {
	TTL time.Duration

	// Now is the clock; tests override it. Defaults to time.Now.
	Now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
}

func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{TTL: ttl, entries: make(map[string]entry[V])}
}

func (c *Cache[V]) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Get returns the stored value when now-storedAt < TTL, otherwise a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(e.storedAt) >= c.TTL {
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the current timestamp, replacing any prior
// entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string]entry[V])
	}
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
	c.mu.Unlock()
}
