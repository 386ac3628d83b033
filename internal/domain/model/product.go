// Package model defines the core domain entities for the storefront cart.
package model

import "github.com/shopspring/decimal"

// Product is a catalog entry referenced read-only by the cart.
//
// @Description Catalog product as stored inside a cart line
// @Example {"id": 42, "category_id": 8, "name": "Calabresa", "price": "20.00", "price_offer": null}
type Product struct {
	// ID is the unique catalog identifier
	ID int `json:"id" example:"42"`
	// CategoryID classifies the product (pizza tiers, drinks, add-ons, ...)
	CategoryID int `json:"category_id" example:"8"`
	// Name is the display name
	Name string `json:"name,omitempty" example:"Calabresa"`
	// Price is the base price
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"20.00"`
	// PriceOffer is the discounted price, when the product is on offer
	PriceOffer decimal.NullDecimal `json:"price_offer" swaggertype:"string" example:"18.90"`
}

// EffectivePrice returns the offer price when present, otherwise the base price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.PriceOffer.Valid {
		return p.PriceOffer.Decimal
	}
	return p.Price
}

// Equal reports whether two product records are identical field by field.
// Prices compare by numeric value, so "20" and "20.00" are equal.
func (p Product) Equal(other Product) bool {
	if p.ID != other.ID || p.CategoryID != other.CategoryID || p.Name != other.Name {
		return false
	}
	if !p.Price.Equal(other.Price) {
		return false
	}
	if p.PriceOffer.Valid != other.PriceOffer.Valid {
		return false
	}
	return !p.PriceOffer.Valid || p.PriceOffer.Decimal.Equal(other.PriceOffer.Decimal)
}

// NewOffer wraps an offer price for Product.PriceOffer.
func NewOffer(price decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: price, Valid: true}
}
