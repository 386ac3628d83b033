// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
	"github.com/guttosm/storefront-cart/internal/repository"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	CatalogRepo           repository.CatalogRepositoryInterface
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the catalog repository.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory catalog")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	catalogCB := newCircuitBreaker("mongodb-catalog", cfg)
	catalogRepo := repository.NewCatalogRepositoryWithCircuitBreaker(repository.NewCatalogRepository(db), catalogCB)

	return &DatabaseComponents{
		DB:                    db,
		CatalogRepo:           catalogRepo,
		CatalogCircuitBreaker: catalogCB,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close MongoDB connection")
		return
	}
	log.Info().Msg("MongoDB connection closed")
}
