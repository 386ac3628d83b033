package http

import (
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/service"
)

// newCartView prices a cart snapshot line by line in cart order.
func newCartView(calc service.PriceCalculator, state model.CartState) dto.CartView {
	view := dto.CartView{
		Items:     make([]dto.CartLineView, 0, len(state.Items)),
		ItemCount: service.ItemCount(state.Items),
		Total:     calc.CartTotal(state.Items),
		IsOpen:    state.IsOpen,
	}
	for _, item := range state.Items {
		view.Items = append(view.Items, dto.CartLineView{
			Product:     item.Product,
			Quantity:    item.Quantity,
			Composition: item.Composition,
			Tier:        string(calc.Tier(item)),
			UnitPrice:   calc.UnitPrice(item),
			LineTotal:   calc.LineTotal(item),
		})
	}
	return view
}

// toSelection maps an add request onto catalog ids.
func toSelection(req *dto.AddItemRequest) service.Selection {
	sel := service.Selection{ProductID: req.ProductID}
	if req.Composition != nil {
		sel.Customized = true
		sel.Size = req.Composition.Size
		sel.FlavorIDs = req.Composition.FlavorIDs
		sel.CrustID = req.Composition.CrustID
		sel.ExtraIDs = req.Composition.ExtraIDs
	}
	return sel
}
