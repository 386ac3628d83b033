// Package main is the entry point for the storefront cart service.
//
// @title           Storefront Cart API
// @version         1.0.0
// @description     Shopping cart for a pizza storefront: line items with size, flavors, crust and extras,
// @description     priced by a size x tier table and persisted to a durable slot after every change.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/storefront-cart
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Optional shopper session token, "Bearer <token>".
//
// @tag.name        Cart
// @tag.description Cart line items and lifecycle
//
// @tag.name        Catalog
// @tag.description Product lookup
//
// @tag.name        Session
// @tag.description Shopper session and logout
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/storefront-cart/docs" // swagger docs

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(context.Background()); err != nil {
		application.Close(context.Background())
		log.Fatal().Err(err).Msg("Server error")
	}
}
