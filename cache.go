package wungo

import (
	"sync"
	"time"
)

// InMemoryCache is a simple in-memory cache implementation keyed by request
// signature. Entries expire lazily: staleness is checked when a key is read
// and stale entries are evicted then, nothing sweeps the map in the
// background. Safe for concurrent use.
type InMemoryCache struct {
	mu    sync.Mutex
	store map[string]*CacheEntry
}

// NewInMemoryCache creates a new in-memory cache
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		store: make(map[string]*CacheEntry),
	}
}

// Get retrieves a cached entry if present and not expired. Eviction of a
// stale entry happens under the same lock as the read.
func (c *InMemoryCache) Get(key string) (*CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		delete(c.store, key)
		return nil, false
	}

	return entry, true
}

// Set stores a cache entry, overwriting any existing entry for the key. The
// expiry is stamped from the entry's StoredAt time, which defaults to now.
func (c *InMemoryCache) Set(key string, entry *CacheEntry, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.StoredAt.IsZero() {
		entry.StoredAt = time.Now()
	}
	entry.ExpiresAt = entry.StoredAt.Add(ttl)
	c.store[key] = entry
}

// Delete removes a cache entry
func (c *InMemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.store, key)
}

// Clear removes all cache entries
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// Len reports the number of entries currently stored, expired or not.
func (c *InMemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.store)
}
