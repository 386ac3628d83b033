package middleware

import (
	"sync"
	"time"
)

// IdempotencyCache stores replayable responses keyed by request identity.
// Entries expire after ttl; when full, the oldest entry is evicted.
type IdempotencyCache struct {
	mu         sync.RWMutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewIdempotencyCache creates a cache and starts its cleanup loop.
func NewIdempotencyCache(ttl time.Duration, maxEntries int) *IdempotencyCache {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	if maxEntries <= 0 {
		maxEntries = defaultIdempotencyEntries
	}
	c := &IdempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached response that has not expired.
func (c *IdempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a response, evicting the oldest entry if the cache is full.
func (c *IdempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.evictOldestLocked()
	}
	resp.Timestamp = time.Now()
	c.items[key] = resp
}

// Len returns the number of cached entries, expired ones included.
func (c *IdempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup loop.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *IdempotencyCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, resp := range c.items {
		if oldestKey == "" || resp.Timestamp.Before(oldest) {
			oldestKey, oldest = key, resp.Timestamp
		}
	}
	delete(c.items, oldestKey)
}

func (c *IdempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes expired entries.
func (c *IdempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
