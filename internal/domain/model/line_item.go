package model

import "errors"

var (
	// ErrMissingProduct is returned when a line item has no product id.
	ErrMissingProduct = errors.New("line item has no product")
	// ErrInvalidQuantity is returned when a line item quantity is below one.
	ErrInvalidQuantity = errors.New("line item quantity must be at least 1")
)

// LineItem is one row in the cart: a product, a quantity and an optional
// composition.
//
// @Description Cart line: product, quantity and optional customization
type LineItem struct {
	Product     Product      `json:"product"`
	Quantity    int          `json:"quantity" example:"1" minimum:"1"`
	Composition *Composition `json:"composition,omitempty"`
}

// SameLine reports whether the item represents the given selection.
func (li LineItem) SameLine(product Product, composition *Composition) bool {
	return li.Product.ID == product.ID && CompositionsEqual(li.Composition, composition)
}

// Equal reports whether two line items hold the same product, quantity and
// composition.
func (li LineItem) Equal(other LineItem) bool {
	return li.Quantity == other.Quantity &&
		li.Product.Equal(other.Product) &&
		CompositionsEqual(li.Composition, other.Composition)
}

// Clone returns a deep copy of the line item.
func (li LineItem) Clone() LineItem {
	li.Composition = li.Composition.Clone()
	return li
}

// Validate checks the invariants a stored line item must satisfy.
func (li LineItem) Validate() error {
	if li.Product.ID == 0 {
		return ErrMissingProduct
	}
	if li.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return li.Composition.Validate()
}

// CloneLineItems deep-copies a line item sequence.
func CloneLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// LineItemsEqual compares two line item sequences in order.
func LineItemsEqual(a, b []LineItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// CartState is an immutable snapshot of the cart handed to observers.
type CartState struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}
