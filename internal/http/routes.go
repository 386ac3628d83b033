package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered on the API group.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// CartRoutes registers the cart and checkout endpoints.
type CartRoutes struct {
	handler *CartHandler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(handler *CartHandler) *CartRoutes {
	return &CartRoutes{handler: handler}
}

// RegisterRoutes registers the cart routes.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.GET("", r.handler.GetCart)
	cart.DELETE("", r.handler.ClearCart)
	cart.POST("/items", r.handler.AddItem)
	cart.PUT("/items/:productId", r.handler.SetQuantity)
	cart.DELETE("/items/:productId", r.handler.RemoveItem)
	cart.POST("/open", r.handler.OpenCart)
	cart.POST("/close", r.handler.CloseCart)

	rg.POST("/checkout/complete", r.handler.CompleteCheckout)
}

// SessionRoutes registers the session endpoints.
type SessionRoutes struct {
	handler *SessionHandler
}

// NewSessionRoutes creates a new SessionRoutes instance.
func NewSessionRoutes(handler *SessionHandler) *SessionRoutes {
	return &SessionRoutes{handler: handler}
}

// RegisterRoutes registers the session routes.
func (r *SessionRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", r.handler.GetSession)
	rg.POST("/session/logout", r.handler.Logout)
}

// CatalogRoutes registers the catalog lookup endpoint.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(handler *CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterRoutes registers the catalog routes.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/products/:id", r.handler.GetProduct)
}
