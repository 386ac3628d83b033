// Package app provides router configuration.
package app

import (
	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/http"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/guttosm/storefront-cart/internal/service"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and the router configuration
// from the initialized components.
func InitializeRouter(
	services *ServiceComponents,
	catalog *CatalogComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	healthHandler.RegisterChecker("cart_slot", http.HealthCheckFunc(services.SlotHealthCheck(cfg.Cart.StorageKey)))
	healthHandler.RegisterCircuitBreaker("cart_slot", services.SlotCircuitBreaker)

	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    middleware.DefaultRequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		IdempotencyCache:  middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL, 0),
		Cart:              services.Cart,
		Catalog:           catalog.Service,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	if sessions := initializeSessions(cfg.Session); sessions != nil {
		routerCfg.Sessions = sessions
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Close stops the cleanup loops of the rate limiter and the idempotency cache.
func (r *RouterComponents) Close() {
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	if r.Config.IdempotencyCache != nil {
		r.Config.IdempotencyCache.Stop()
	}
}

// initializeSessions returns nil when sessions are disabled or misconfigured.
func initializeSessions(cfg config.SessionConfig) *service.SessionService {
	if !cfg.Enabled {
		return nil
	}
	sessions, err := service.NewSessionService(service.SessionConfig{
		Secret: cfg.Secret,
		Issuer: cfg.Issuer,
		TTL:    cfg.TTL,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize sessions - continuing without session support")
		return nil
	}
	return sessions
}
