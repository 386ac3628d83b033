package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/guttosm/storefront-cart/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string

	// RateLimiter and IdempotencyCache are built by NewRouter when nil.
	// Pass them in to stop their cleanup loops on shutdown.
	RateLimiter      *middleware.RateLimiter
	IdempotencyCache *middleware.IdempotencyCache

	Cart     service.CartServiceInterface
	Catalog  service.CatalogServiceInterface
	Sessions service.SessionServiceInterface
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultRequestTimeout,
		EnableIdempotency: true,
	}
}

// NewRouter creates and configures the Gin router for the storefront cart.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range routeGroups(&cfg) {
		group.RegisterRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		if cfg.RateLimiter == nil {
			cfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		}
		router.Use(cfg.RateLimiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. The session
// runs before idempotency so replayed responses stay scoped to the shopper.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	api.Use(middleware.OptionalSession(cfg.Sessions))

	if cfg.EnableIdempotency {
		if cfg.IdempotencyCache == nil {
			cfg.IdempotencyCache = middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL, 0)
		}
		api.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Cache:   cfg.IdempotencyCache,
			Enabled: true,
		}))
	}
}

// routeGroups returns the API route groups the configured services support.
func routeGroups(cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if cfg.Cart != nil && cfg.Catalog != nil {
		groups = append(groups, NewCartRoutes(NewCartHandler(cfg.Cart, cfg.Catalog)))
	}
	if cfg.Cart != nil {
		groups = append(groups, NewSessionRoutes(NewSessionHandler(cfg.Sessions, cfg.Cart)))
	}
	if cfg.Catalog != nil {
		groups = append(groups, NewCatalogRoutes(NewCatalogHandler(cfg.Catalog)))
	}
	return groups
}
