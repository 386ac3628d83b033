package repository

import (
	"context"
	"errors"

	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
	"github.com/guttosm/storefront-cart/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps a catalog repository with circuit
// breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           CatalogRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo CatalogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByID returns a product with circuit breaker protection. Callers see
// circuitbreaker.ErrCircuitOpen while the catalog is unavailable.
func (r *CatalogRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id int) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// GetByIDs returns products with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetByIDs(ctx context.Context, ids []int) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByIDs(ctx, ids)
		return cbErr
	})
	return result, err
}

// List returns products with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) List(ctx context.Context, categoryID int, limit int) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, categoryID, limit)
		return cbErr
	})
	return result, err
}

// Upsert writes products with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Upsert(ctx context.Context, products []model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, products)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// SlotStoreWithCircuitBreaker wraps a slot store with circuit breaker
// protection so a failing disk does not stall every cart mutation.
type SlotStoreWithCircuitBreaker struct {
	store          SlotStoreInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSlotStoreWithCircuitBreaker creates a new slot store wrapper with circuit breaker.
func NewSlotStoreWithCircuitBreaker(store SlotStoreInterface, cb *circuitbreaker.CircuitBreaker) *SlotStoreWithCircuitBreaker {
	return &SlotStoreWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// Get reads a slot with circuit breaker protection. A missing slot is a
// normal outcome and does not count as a failure.
func (s *SlotStoreWithCircuitBreaker) Get(ctx context.Context, key string) ([]byte, error) {
	var result []byte
	notFound := false
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = s.store.Get(ctx, key)
		if errors.Is(cbErr, ErrSlotNotFound) {
			notFound = true
			return nil
		}
		return cbErr
	})
	if notFound {
		return nil, ErrSlotNotFound
	}
	return result, err
}

// Put writes a slot with circuit breaker protection.
func (s *SlotStoreWithCircuitBreaker) Put(ctx context.Context, key string, value []byte) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Put(ctx, key, value)
	})
}

// Delete removes a slot with circuit breaker protection.
func (s *SlotStoreWithCircuitBreaker) Delete(ctx context.Context, key string) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Delete(ctx, key)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (s *SlotStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.circuitBreaker
}
