// Package cache keeps per-owner filter engines in a bounded, expiring LRU.
package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

// LRU is a thread-safe, size-bounded cache evicting the least recently used entry.
// Entries also expire ttl after they were added.
type LRU[K comparable, V any] struct {
	// mu makes GetOrAdd atomic; expirable has no PeekOrAdd.
	mu    sync.Mutex
	inner *expirable.LRU[K, V]
}

// NewLRU creates a cache holding at most size entries. A ttl of zero or less
// disables expiry. onEvict, when set, runs for every entry dropped to make room,
// expired, or removed explicitly.
func NewLRU[K comparable, V any](size int, ttl time.Duration, onEvict func(key K, value V)) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, errors.Errorf("failed to create LRU cache of size %d: size must be positive", size)
	}

	return &LRU[K, V]{inner: expirable.NewLRU[K, V](size, onEvict, ttl)}, nil
}

// Get returns the value for key and marks it as recently used. Expired entries are missing.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	return c.inner.Get(key)
}

// GetOrAdd returns the live value for key, or stores and returns value when absent
// or expired. loaded reports whether an existing value was returned.
func (c *LRU[K, V]) GetOrAdd(key K, value V) (actual V, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.inner.Get(key); ok {
		return existing, true
	}
	c.inner.Add(key, value)

	return value, false
}

// Peek returns the value for key without updating its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	return c.inner.Peek(key)
}

// Remove drops key from the cache.
func (c *LRU[K, V]) Remove(key K) bool {
	return c.inner.Remove(key)
}

// Len returns the number of cached entries, including expired ones not yet cleaned up.
func (c *LRU[K, V]) Len() int {
	return c.inner.Len()
}

// Purge drops every entry.
func (c *LRU[K, V]) Purge() {
	c.inner.Purge()
}
