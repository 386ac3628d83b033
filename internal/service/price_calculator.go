package service

import (
	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	// DefaultSizedCategories are the category ids whose price depends on the
	// selected size (sweet, classic and special pizzas).
	DefaultSizedCategories = []int{7, 8, 9}
	// DefaultSpecialCategory is the category id of premium flavors.
	DefaultSpecialCategory = 9
)

// PriceCalculator defines the pricing operations used by the cart.
type PriceCalculator interface {
	// UnitPrice returns the price of one unit of the line, add-ons included.
	UnitPrice(item model.LineItem) decimal.Decimal
	// LineTotal returns UnitPrice multiplied by the line quantity.
	LineTotal(item model.LineItem) decimal.Decimal
	// CartTotal returns the sum of LineTotal over all lines.
	CartTotal(items []model.LineItem) decimal.Decimal
	// Tier returns the pricing tier the line would be priced with.
	Tier(item model.LineItem) Tier
}

// PriceOption configures a PriceCalculatorService.
type PriceOption func(*PriceCalculatorService)

// PriceCalculatorService derives line and cart totals from products, their
// composition and a PricingTable. Results are never cached.
type PriceCalculatorService struct {
	table           PricingTable
	sizedCategories map[int]struct{}
	specialCategory int
}

// NewPriceCalculatorService creates a calculator with the default table and
// categories, modified by opts.
func NewPriceCalculatorService(opts ...PriceOption) *PriceCalculatorService {
	s := &PriceCalculatorService{
		table:           DefaultPricingTable(),
		specialCategory: DefaultSpecialCategory,
	}
	WithSizedCategories(DefaultSizedCategories)(s)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPricingTable replaces the size x tier price matrix.
func WithPricingTable(table PricingTable) PriceOption {
	return func(s *PriceCalculatorService) {
		if len(table) > 0 {
			s.table = table.Clone()
		}
	}
}

// WithSizedCategories sets the categories priced by size.
func WithSizedCategories(categories []int) PriceOption {
	return func(s *PriceCalculatorService) {
		if len(categories) == 0 {
			return
		}
		s.sizedCategories = make(map[int]struct{}, len(categories))
		for _, id := range categories {
			s.sizedCategories[id] = struct{}{}
		}
	}
}

// WithSpecialCategory sets the category id that selects the special tier.
func WithSpecialCategory(categoryID int) PriceOption {
	return func(s *PriceCalculatorService) {
		if categoryID > 0 {
			s.specialCategory = categoryID
		}
	}
}

// Tier returns TierSpecial when the product itself or any of its flavors
// belongs to the special category.
func (s *PriceCalculatorService) Tier(item model.LineItem) Tier {
	if item.Product.CategoryID == s.specialCategory {
		return TierSpecial
	}
	if item.Composition != nil {
		for _, flavor := range item.Composition.Flavors {
			if flavor.CategoryID == s.specialCategory {
				return TierSpecial
			}
		}
	}
	return TierClassic
}

// UnitPrice returns the base (or table) price plus crust and extras.
func (s *PriceCalculatorService) UnitPrice(item model.LineItem) decimal.Decimal {
	return s.basePrice(item).Add(addOnPrice(item.Composition))
}

// LineTotal returns the unit price multiplied by the quantity.
func (s *PriceCalculatorService) LineTotal(item model.LineItem) decimal.Decimal {
	return s.UnitPrice(item).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// CartTotal sums the line totals in cart order.
func (s *PriceCalculatorService) CartTotal(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(s.LineTotal(item))
	}
	return total
}

// basePrice applies the size override for sized categories. The table price
// replaces the product price; it is not added to it.
func (s *PriceCalculatorService) basePrice(item model.LineItem) decimal.Decimal {
	price := item.Product.EffectivePrice()

	if _, sized := s.sizedCategories[item.Product.CategoryID]; !sized || !item.Composition.HasSize() {
		return price
	}
	if tablePrice, ok := s.table.Lookup(s.Tier(item), *item.Composition.Size); ok {
		return tablePrice
	}
	return price
}

// addOnPrice sums the crust and every extra at their effective prices.
func addOnPrice(c *model.Composition) decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	if c.Crust != nil {
		total = total.Add(c.Crust.EffectivePrice())
	}
	for _, extra := range c.Extras {
		total = total.Add(extra.EffectivePrice())
	}
	return total
}
