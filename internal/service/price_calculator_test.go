package service

import (
	"testing"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestPriceCalculatorService_LineTotal(t *testing.T) {
	calc := NewPriceCalculatorService()

	tests := []struct {
		name string
		item model.LineItem
		want string
	}{
		{
			name: "classic tier replaces base price",
			item: model.LineItem{
				Product:     testProduct(1, 8, "20.00"),
				Quantity:    1,
				Composition: &model.Composition{Size: model.SizePtr(model.SizeMedium)},
			},
			want: "40.90",
		},
		{
			name: "special flavor selects special tier",
			item: model.LineItem{
				Product:  testProduct(1, 8, "20.00"),
				Quantity: 1,
				Composition: &model.Composition{
					Size:    model.SizePtr(model.SizeLarge),
					Flavors: []model.Product{testProduct(2, 8, "0"), testProduct(3, 9, "0")},
				},
			},
			want: "54.90",
		},
		{
			name: "special product category selects special tier",
			item: model.LineItem{
				Product:     testProduct(1, 9, "20.00"),
				Quantity:    1,
				Composition: &model.Composition{Size: model.SizePtr(model.SizeSmall)},
			},
			want: "38.90",
		},
		{
			name: "add-ons accumulate on unsized category",
			item: model.LineItem{
				Product:  offerProduct(1, 3, "40.00", "32.90"),
				Quantity: 2,
				Composition: &model.Composition{
					Size:   model.SizePtr(model.SizeSmall),
					Crust:  &model.Product{ID: 10, CategoryID: 12, Price: dec("8.00")},
					Extras: []model.Product{testProduct(11, 13, "5.00"), testProduct(12, 13, "3.00")},
				},
			},
			want: "97.80",
		},
		{
			name: "add-ons use offer prices",
			item: model.LineItem{
				Product:  testProduct(1, 8, "20.00"),
				Quantity: 1,
				Composition: &model.Composition{
					Size:   model.SizePtr(model.SizeMedium),
					Extras: []model.Product{offerProduct(11, 13, "5.00", "4.50")},
				},
			},
			want: "45.40",
		},
		{
			name: "sized category without size keeps base price",
			item: model.LineItem{
				Product:     testProduct(1, 8, "20.00"),
				Quantity:    3,
				Composition: &model.Composition{},
			},
			want: "60.00",
		},
		{
			name: "no composition uses offer price",
			item: model.LineItem{Product: offerProduct(1, 2, "7.00", "5.99"), Quantity: 2},
			want: "11.98",
		},
		{
			name: "no composition uses base price",
			item: model.LineItem{Product: testProduct(1, 2, "7.00"), Quantity: 1},
			want: "7.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.LineTotal(tt.item)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestPriceCalculatorService_UnitPrice(t *testing.T) {
	calc := NewPriceCalculatorService()
	item := model.LineItem{
		Product:  offerProduct(1, 3, "40.00", "32.90"),
		Quantity: 2,
		Composition: &model.Composition{
			Crust:  &model.Product{ID: 10, Price: dec("8.00")},
			Extras: []model.Product{testProduct(11, 13, "5.00"), testProduct(12, 13, "3.00")},
		},
	}

	assert.True(t, calc.UnitPrice(item).Equal(dec("48.90")))
}

func TestPriceCalculatorService_CartTotal(t *testing.T) {
	calc := NewPriceCalculatorService()

	items := []model.LineItem{
		{Product: testProduct(1, 8, "20.00"), Quantity: 1, Composition: &model.Composition{Size: model.SizePtr(model.SizeMedium)}},
		{Product: testProduct(2, 2, "0.10"), Quantity: 3},
	}

	assert.True(t, calc.CartTotal(items).Equal(dec("41.20")))
	assert.True(t, calc.CartTotal(nil).IsZero())
}

func TestPriceCalculatorService_Tier(t *testing.T) {
	calc := NewPriceCalculatorService()

	tests := []struct {
		name string
		item model.LineItem
		want Tier
	}{
		{"no composition", model.LineItem{Product: testProduct(1, 8, "1")}, TierClassic},
		{"empty flavors", model.LineItem{Product: testProduct(1, 8, "1"), Composition: &model.Composition{}}, TierClassic},
		{"special product", model.LineItem{Product: testProduct(1, 9, "1")}, TierSpecial},
		{"special flavor", model.LineItem{
			Product:     testProduct(1, 7, "1"),
			Composition: &model.Composition{Flavors: []model.Product{testProduct(2, 9, "0")}},
		}, TierSpecial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Tier(tt.item))
		})
	}
}

func TestPriceCalculatorService_Options(t *testing.T) {
	table := PricingTable{
		TierClassic: {model.SizeMedium: dec("10.00")},
	}
	calc := NewPriceCalculatorService(
		WithPricingTable(table),
		WithSizedCategories([]int{100, 101}),
		WithSpecialCategory(101),
	)

	t.Run("custom table and category", func(t *testing.T) {
		item := model.LineItem{Product: testProduct(1, 100, "50"), Quantity: 1, Composition: &model.Composition{Size: model.SizePtr(model.SizeMedium)}}
		assert.True(t, calc.LineTotal(item).Equal(dec("10.00")))
	})

	t.Run("default sized category no longer sized", func(t *testing.T) {
		item := model.LineItem{Product: testProduct(1, 8, "20"), Quantity: 1, Composition: &model.Composition{Size: model.SizePtr(model.SizeMedium)}}
		assert.True(t, calc.LineTotal(item).Equal(dec("20")))
	})

	t.Run("size missing from table keeps base price", func(t *testing.T) {
		item := model.LineItem{Product: testProduct(1, 100, "50"), Quantity: 1, Composition: &model.Composition{Size: model.SizePtr(model.SizeLarge)}}
		assert.True(t, calc.LineTotal(item).Equal(dec("50")))
	})

	t.Run("tier missing from table keeps base price", func(t *testing.T) {
		item := model.LineItem{Product: testProduct(1, 101, "50"), Quantity: 1}
		assert.Equal(t, TierSpecial, calc.Tier(item))
		item.Composition = &model.Composition{Size: model.SizePtr(model.SizeMedium)}
		assert.True(t, calc.LineTotal(item).Equal(dec("50")))
	})

	t.Run("table is copied", func(t *testing.T) {
		table[TierClassic][model.SizeMedium] = dec("99")
		item := model.LineItem{Product: testProduct(1, 100, "50"), Quantity: 1, Composition: &model.Composition{Size: model.SizePtr(model.SizeMedium)}}
		assert.True(t, calc.LineTotal(item).Equal(dec("10.00")))
	})
}

func TestPricingTable(t *testing.T) {
	table := DefaultPricingTable()

	tests := []struct {
		tier Tier
		size model.Size
		want string
	}{
		{TierClassic, model.SizeSmall, "32.90"},
		{TierClassic, model.SizeMedium, "40.90"},
		{TierClassic, model.SizeLarge, "48.90"},
		{TierSpecial, model.SizeSmall, "38.90"},
		{TierSpecial, model.SizeMedium, "46.90"},
		{TierSpecial, model.SizeLarge, "54.90"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier)+"/"+string(tt.size), func(t *testing.T) {
			got, ok := table.Lookup(tt.tier, tt.size)
			assert.True(t, ok)
			assert.True(t, got.Equal(dec(tt.want)))
		})
	}

	_, ok := table.Lookup(Tier("gold"), model.SizeSmall)
	assert.False(t, ok)

	clone := table.Clone()
	clone[TierClassic][model.SizeSmall] = dec("1")
	got, _ := table.Lookup(TierClassic, model.SizeSmall)
	assert.True(t, got.Equal(dec("32.90")))
}
