package service

import (
	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Tier is the pricing bucket a size-customizable product falls into.
type Tier string

const (
	// TierClassic prices pizzas made only of regular flavors.
	TierClassic Tier = "classic"
	// TierSpecial prices pizzas with at least one premium flavor.
	TierSpecial Tier = "special"
)

// PricingTable maps tier and size to the unit price of a customizable product.
type PricingTable map[Tier]map[model.Size]decimal.Decimal

// DefaultPricingTable returns the storefront's standard size x tier matrix.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		TierClassic: {
			model.SizeSmall:  decimal.RequireFromString("32.90"),
			model.SizeMedium: decimal.RequireFromString("40.90"),
			model.SizeLarge:  decimal.RequireFromString("48.90"),
		},
		TierSpecial: {
			model.SizeSmall:  decimal.RequireFromString("38.90"),
			model.SizeMedium: decimal.RequireFromString("46.90"),
			model.SizeLarge:  decimal.RequireFromString("54.90"),
		},
	}
}

// Lookup returns the price for tier and size, if the table has one.
func (t PricingTable) Lookup(tier Tier, size model.Size) (decimal.Decimal, bool) {
	sizes, ok := t[tier]
	if !ok {
		return decimal.Decimal{}, false
	}
	price, ok := sizes[size]
	return price, ok
}

// Clone returns a copy that can be modified without affecting t.
func (t PricingTable) Clone() PricingTable {
	out := make(PricingTable, len(t))
	for tier, sizes := range t {
		row := make(map[model.Size]decimal.Decimal, len(sizes))
		for size, price := range sizes {
			row[size] = price
		}
		out[tier] = row
	}
	return out
}
