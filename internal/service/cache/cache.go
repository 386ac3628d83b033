// Package cache defines the product cache the catalog service reads through.
package cache

import "github.com/guttosm/storefront-cart/internal/domain/model"

// Cache holds catalog products by id. Implementations must be safe for
// concurrent use; Stop releases any background goroutines.
type Cache interface {
	Get(productID int) (model.Product, bool)
	Set(productID int, product model.Product)
	Invalidate(productID int)
	Clear()
	Stop()
}

// Metrics is a point-in-time view of cache usage.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits over lookups, or 0 before the first lookup.
func (m Metrics) HitRatio() float64 {
	lookups := m.Hits + m.Misses
	if lookups == 0 {
		return 0
	}
	return float64(m.Hits) / float64(lookups)
}
