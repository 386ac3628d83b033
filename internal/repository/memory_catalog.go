package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/guttosm/storefront-cart/internal/domain/model"
)

// MemoryCatalogRepository serves the catalog from memory. It backs the
// storefront when MongoDB is disabled.
type MemoryCatalogRepository struct {
	mu       sync.RWMutex
	products map[int]model.Product
}

// NewMemoryCatalogRepository creates a catalog holding products.
func NewMemoryCatalogRepository(products ...model.Product) *MemoryCatalogRepository {
	r := &MemoryCatalogRepository{products: make(map[int]model.Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

// LoadCatalogSeed reads a JSON array of products from path.
func LoadCatalogSeed(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog seed %s: %w", path, err)
	}
	for i, p := range products {
		if p.ID == 0 {
			return nil, fmt.Errorf("catalog seed %s: entry %d has no id", path, i)
		}
	}
	return products, nil
}

// GetByID returns the product with id, or nil when it does not exist.
func (r *MemoryCatalogRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByIDs returns the products found among ids, in the order requested.
func (r *MemoryCatalogRepository) GetByIDs(ctx context.Context, ids []int) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// List returns products ordered by id.
func (r *MemoryCatalogRepository) List(ctx context.Context, categoryID int, limit int) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if categoryID > 0 && p.CategoryID != categoryID {
			continue
		}
		products = append(products, p)
	}
	r.mu.RUnlock()

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// Upsert inserts or replaces products by id.
func (r *MemoryCatalogRepository) Upsert(ctx context.Context, products []model.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.products[p.ID] = p
	}
	return nil
}
