package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/repository"
	"github.com/guttosm/storefront-cart/internal/service/cache"
)

var (
	// ErrProductNotFound is returned when a product id is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrCatalogUnavailable is returned when the catalog backend cannot be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// Selection identifies a product and its customization by catalog ids.
// Customized is false when the shopper did not customize the product at
// all, which is different from an empty customization.
type Selection struct {
	ProductID  int
	Customized bool
	Size       string
	FlavorIDs  []int
	CrustID    *int
	ExtraIDs   []int
}

// CatalogServiceInterface resolves catalog ids into products.
type CatalogServiceInterface interface {
	GetProduct(ctx context.Context, id int) (model.Product, error)
	GetProducts(ctx context.Context, ids []int) ([]model.Product, error)
	Resolve(ctx context.Context, sel Selection) (model.Product, *model.Composition, error)
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithProductCache puts c in front of the repository.
func WithProductCache(c cache.Cache) CatalogOption {
	return func(s *CatalogService) {
		s.cache = c
	}
}

// WithCatalogTimeout bounds each repository call.
func WithCatalogTimeout(d time.Duration) CatalogOption {
	return func(s *CatalogService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// CatalogService reads products through an optional cache.
type CatalogService struct {
	repo    repository.CatalogRepositoryInterface
	cache   cache.Cache
	timeout time.Duration
}

// NewCatalogService creates a catalog service over repo.
func NewCatalogService(repo repository.CatalogRepositoryInterface, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		repo:    repo,
		timeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetProduct returns the product with id.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (model.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(id); ok {
			return p, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	p, err := s.repo.GetByID(ctx, id)
	metrics.RecordCatalogLookup(time.Since(start))
	if err != nil {
		return model.Product{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if p == nil {
		return model.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}

	if s.cache != nil {
		s.cache.Set(id, *p)
	}
	return *p, nil
}

// GetProducts returns the products for ids in the same order. Every id must
// exist; repeated ids yield repeated products.
func (s *CatalogService) GetProducts(ctx context.Context, ids []int) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found := make(map[int]model.Product, len(ids))
	var missing []int
	for _, id := range ids {
		if _, seen := found[id]; seen {
			continue
		}
		if s.cache != nil {
			if p, ok := s.cache.Get(id); ok {
				found[id] = p
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		start := time.Now()
		products, err := s.repo.GetByIDs(ctx, uniqueIDs(missing))
		metrics.RecordCatalogLookup(time.Since(start))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
		}
		for _, p := range products {
			found[p.ID] = p
			if s.cache != nil {
				s.cache.Set(p.ID, p)
			}
		}
	}

	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		out = append(out, p)
	}
	return out, nil
}

// Resolve turns a selection into the product and composition the cart
// stores. Flavor and extra order is preserved.
func (s *CatalogService) Resolve(ctx context.Context, sel Selection) (model.Product, *model.Composition, error) {
	product, err := s.GetProduct(ctx, sel.ProductID)
	if err != nil {
		return model.Product{}, nil, err
	}
	if !sel.Customized {
		return product, nil, nil
	}

	comp := &model.Composition{}
	if sel.Size != "" {
		size, err := model.ParseSize(sel.Size)
		if err != nil {
			return model.Product{}, nil, err
		}
		comp.Size = &size
	}
	if comp.Flavors, err = s.GetProducts(ctx, sel.FlavorIDs); err != nil {
		return model.Product{}, nil, err
	}
	if sel.CrustID != nil {
		crust, err := s.GetProduct(ctx, *sel.CrustID)
		if err != nil {
			return model.Product{}, nil, err
		}
		comp.Crust = &crust
	}
	if comp.Extras, err = s.GetProducts(ctx, sel.ExtraIDs); err != nil {
		return model.Product{}, nil, err
	}
	return product, comp, nil
}

// Seed writes products to the catalog and drops them from the cache.
func (s *CatalogService) Seed(ctx context.Context, products []model.Product) error {
	if err := s.repo.Upsert(ctx, products); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if s.cache != nil {
		for _, p := range products {
			s.cache.Invalidate(p.ID)
		}
	}
	log := logger.Component("catalog")
	log.Info().Int("products", len(products)).Msg("Catalog seeded")
	return nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
