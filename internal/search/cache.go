package search

import (
	"context"
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	results   []SearchResult
	expiresAt time.Time
}

// Cache is a TTL decorator around a Searcher, keyed on the normalized query
// string. It trades provider call volume for slightly stale results; the
// pipeline itself stays cache-free.
type Cache struct {
	inner   Searcher
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewCache(inner Searcher, ttl time.Duration) *Cache {
	c := &Cache{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
	go c.sweep()
	return c
}

func (c *Cache) Search(ctx context.Context, query string) ([]SearchResult, error) {
	key := normalizeCacheKey(query)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.results, nil
	}

	results, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{
		results:   results,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()

	return results, nil
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.entries {
			if now.After(entry.expiresAt) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}

// normalizeCacheKey folds case and collapses whitespace so trivially
// different spellings of the same query share an entry.
func normalizeCacheKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
