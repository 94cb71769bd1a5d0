package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pricescope/client/internal/domain"
)

// cacheItem represents a single cached result set with expiration
type cacheItem struct {
	Results    []domain.ComparisonResult
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory cache of normalized comparison
// results keyed by cleaned query. Entries are copied on read and write so a
// cached result set is never shared with callers; each session gets a fresh
// slice regardless of cache hits.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory result cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Remove expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a result set from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.ComparisonResult, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	return copyResults(item.Results), nil
}

// Set stores a result set in the cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, results []domain.ComparisonResult, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		Results:    copyResults(results),
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a result set from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(item.Expiration) {
		return false, nil
	}

	return true, nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of cached queries (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}

// copyResults shallow-copies the slice; the records themselves are immutable
// once mapped.
func copyResults(results []domain.ComparisonResult) []domain.ComparisonResult {
	out := make([]domain.ComparisonResult, len(results))
	copy(out, results)
	return out
}
