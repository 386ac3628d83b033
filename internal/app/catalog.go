package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/repository"
	"github.com/guttosm/storefront-cart/internal/service"
	"github.com/rs/zerolog/log"
)

// CatalogComponents holds the catalog service and its cache.
type CatalogComponents struct {
	Service *service.CatalogService
	Cache   *service.ShardedProductCache
}

// InitializeCatalog builds the catalog over MongoDB when db is set, or over an
// in-memory repository otherwise. The seed file, when configured, is loaded
// into whichever backend is used.
func InitializeCatalog(cfg config.CatalogConfig, db *DatabaseComponents) (*CatalogComponents, error) {
	var seed []model.Product
	if cfg.SeedFile != "" {
		products, err := repository.LoadCatalogSeed(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = products
	}

	var repo repository.CatalogRepositoryInterface
	if db != nil {
		repo = db.CatalogRepo
	} else {
		repo = repository.NewMemoryCatalogRepository(seed...)
	}

	opts := []service.CatalogOption{service.WithCatalogTimeout(cfg.Timeout)}
	var productCache *service.ShardedProductCache
	if cfg.CacheSize > 0 {
		productCache = service.NewShardedProductCache(cfg.CacheSize, cfg.CacheTTL, 0)
		opts = append(opts, service.WithProductCache(productCache))
	}
	catalog := service.NewCatalogService(repo, opts...)

	if db != nil && len(seed) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := catalog.Seed(ctx, seed); err != nil {
			if productCache != nil {
				productCache.Stop()
			}
			return nil, fmt.Errorf("seed mongodb catalog: %w", err)
		}
	}

	log.Info().
		Bool("mongodb", db != nil).
		Int("seeded", len(seed)).
		Int("cache_size", cfg.CacheSize).
		Msg("Catalog ready")

	return &CatalogComponents{Service: catalog, Cache: productCache}, nil
}

// Close stops the product cache cleanup loops.
func (c *CatalogComponents) Close() {
	if c == nil || c.Cache == nil {
		return
	}
	m := c.Cache.Metrics()
	log.Info().
		Int64("hits", m.Hits).
		Int64("misses", m.Misses).
		Float64("hit_ratio", m.HitRatio()).
		Int64("evictions", m.Evictions).
		Msg("Product cache stopped")
	c.Cache.Stop()
}
