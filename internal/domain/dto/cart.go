package dto

import (
	"time"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/shopspring/decimal"
)

// CartLineView is one priced cart line.
// @Description Cart line with its unit price and line total
type CartLineView struct {
	Product     model.Product      `json:"product"`
	Quantity    int                `json:"quantity" example:"2"`
	Composition *model.Composition `json:"composition,omitempty"`
	// Tier is the pricing tier the line falls into
	Tier string `json:"tier" enums:"classic,special" example:"classic"`
	// UnitPrice is the price of one unit including crust and extras
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"48.90"`
	// LineTotal is UnitPrice times Quantity
	LineTotal decimal.Decimal `json:"line_total" swaggertype:"string" example:"97.80"`
} // @name CartLineView

// CartView is the priced cart returned by every cart endpoint.
// @Description Priced cart in line order
type CartView struct {
	Items     []CartLineView  `json:"items"`
	ItemCount int             `json:"item_count" example:"3"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"138.70"`
	IsOpen    bool            `json:"is_open" example:"false"`
} // @name CartView

// CartActionView acknowledges a lifecycle action that emptied the cart.
// @Description Lifecycle action result
type CartActionView struct {
	Message string   `json:"message" example:"Cart cleared"`
	Cart    CartView `json:"cart"`
} // @name CartActionView

// SessionView reports the session capability.
// @Description Shopper session status
type SessionView struct {
	Authenticated bool       `json:"authenticated" example:"true"`
	Subject       string     `json:"subject,omitempty" example:"customer-42"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty" example:"2026-01-28T10:00:00Z"`
} // @name SessionView
