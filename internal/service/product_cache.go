package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/service/cache"
)

// ShardedProductCache spreads products over several LRU shards keyed by
// product id to reduce lock contention.
type ShardedProductCache struct {
	shards    []*productCache
	shardMask int
}

// NewShardedProductCache creates a cache holding up to capacity products for
// ttl each. numShards is rounded up to a power of two.
func NewShardedProductCache(capacity int, ttl time.Duration, numShards int) *ShardedProductCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShard := capacity / numShards
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*productCache, numShards)
	for i := range shards {
		shards[i] = newProductCache(perShard, ttl)
	}
	return &ShardedProductCache{
		shards:    shards,
		shardMask: numShards - 1,
	}
}

func (sc *ShardedProductCache) shard(productID int) *productCache {
	return sc.shards[productID&sc.shardMask]
}

// Get returns the cached product.
func (sc *ShardedProductCache) Get(productID int) (model.Product, bool) {
	return sc.shard(productID).Get(productID)
}

// Set caches product under productID.
func (sc *ShardedProductCache) Set(productID int, product model.Product) {
	sc.shard(productID).Set(productID, product)
	m := sc.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)
}

// Invalidate drops productID from the cache.
func (sc *ShardedProductCache) Invalidate(productID int) {
	sc.shard(productID).Invalidate(productID)
}

// Clear empties every shard.
func (sc *ShardedProductCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
	m := sc.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)
}

// Stop shuts down the shard cleanup goroutines.
func (sc *ShardedProductCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedProductCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// productCache is an LRU list with per-entry expiry.
type productCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[int]*productEntry
	head      *productEntry
	tail      *productEntry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type productEntry struct {
	key       int
	value     model.Product
	expiresAt time.Time
	prev      *productEntry
	next      *productEntry
}

func newProductCache(capacity int, ttl time.Duration) *productCache {
	c := &productCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int]*productEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop(time.Minute)
	return c
}

func (c *productCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *productCache) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *productCache) Get(key int) (model.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.Product{}, false
	}
	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.Product{}, false
	}

	c.moveToFront(entry)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

func (c *productCache) Set(key int, value model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &productEntry{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (c *productCache) Invalidate(key int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

func (c *productCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int]*productEntry, c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	metrics.RecordCacheOperation("clear", "success")
}

func (c *productCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *productCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := time.Now()
	for _, entry := range c.items {
		if current.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *productCache) removeEntry(entry *productEntry) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *productCache) moveToFront(entry *productEntry) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *productCache) addToFront(entry *productEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *productCache) unlink(entry *productEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}
