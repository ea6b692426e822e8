// Package cache provides a small generic TTL cache with least-recently-used
// eviction, used to keep remote catalog lookups off the hot path.
package cache

import (
	"sync"
	"time"
)

// LRU is a TTL cache bounded by entry count. Recency is tracked with a
// monotonic use counter per entry; eviction scans for the smallest counter,
// which holds up fine at the handful-of-entries sizes this cache runs at.
type LRU[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	uses    uint64
	entries map[string]*entry[T]
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
	lastUsed  uint64
}

// NewLRU creates a cache holding at most maxSize entries, each valid for
// ttl after being set.
func NewLRU[T any](maxSize int, ttl time.Duration) *LRU[T] {
	return &LRU[T]{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]*entry[T], maxSize),
	}
}

// Get returns the cached value and whether it was present and fresh.
// Expired entries are dropped on access.
func (c *LRU[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}
	c.uses++
	e.lastUsed = c.uses
	return e.value, true
}

// Set stores a value, refreshing its TTL and evicting the least recently
// used entry when over capacity.
func (c *LRU[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.uses++
	c.entries[key] = &entry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
		lastUsed:  c.uses,
	}
	if len(c.entries) > c.maxSize {
		c.evictColdest()
	}
}

// Delete removes a key.
func (c *LRU[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Size returns the current entry count, expired entries included.
func (c *LRU[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictColdest drops the entry with the oldest use counter. Expired entries
// count as coldest regardless, so they go first. Caller holds the lock.
func (c *LRU[T]) evictColdest() {
	now := time.Now()
	var victim string
	var victimUsed uint64
	found := false
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			victim = key
			found = true
			break
		}
		if !found || e.lastUsed < victimUsed {
			victim, victimUsed = key, e.lastUsed
			found = true
		}
	}
	if found {
		delete(c.entries, victim)
	}
}
