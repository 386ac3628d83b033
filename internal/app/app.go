// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired storefront cart.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	catalog  *CatalogComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	// Logger first, the other components log while they start.
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	catalogComponents, err := InitializeCatalog(cfg.Catalog, dbComponents)
	if err != nil {
		dbComponents.Close(context.Background())
		return nil, err
	}

	serviceComponents := InitializeServices(cfg.Cart, cfg.Database)
	routerComponents := InitializeRouter(serviceComponents, catalogComponents, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		catalog:  catalogComponents,
		database: dbComponents,
		router:   routerComponents,
	}, nil
}

// Close releases background workers and connections. Pending cart writes
// are flushed before the database is closed.
func (a *App) Close(ctx context.Context) {
	a.router.Close()
	a.services.Close()
	a.catalog.Close()
	a.database.Close(ctx)
	log.Info().Msg("Application resources released")
}
