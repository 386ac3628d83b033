package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a size code is not one of P, M or G.
var ErrInvalidSize = errors.New("invalid size")

// Size is the closed set of sizes a customizable product can be ordered in.
type Size string

const (
	// SizeSmall is the small ("pequena") size.
	SizeSmall Size = "P"
	// SizeMedium is the medium ("média") size.
	SizeMedium Size = "M"
	// SizeLarge is the large ("grande") size.
	SizeLarge Size = "G"
)

// Sizes lists every valid size in display order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// Valid reports whether s is a known size.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// ParseSize converts a size code into a Size.
func ParseSize(code string) (Size, error) {
	s := Size(code)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, code)
	}
	return s, nil
}

// SizePtr returns a pointer to s, for use in Composition literals.
func SizePtr(s Size) *Size {
	return &s
}

// Composition describes the customization choices attached to a cart line.
//
// Size and Crust are optional and compared by presence and value. Flavors and
// Extras are ordered: the same extras in a different order form a different
// composition. A nil and an empty slice both mean "no entries".
type Composition struct {
	Size    *Size     `json:"size,omitempty" swaggertype:"string" enums:"P,M,G"`
	Flavors []Product `json:"flavors,omitempty"`
	Crust   *Product  `json:"crust,omitempty"`
	Extras  []Product `json:"extras,omitempty"`
}

// HasSize reports whether a size was selected.
func (c *Composition) HasSize() bool {
	return c != nil && c.Size != nil
}

// Clone returns a deep copy of the composition. A nil composition clones to nil.
func (c *Composition) Clone() *Composition {
	if c == nil {
		return nil
	}
	out := &Composition{}
	if c.Size != nil {
		out.Size = SizePtr(*c.Size)
	}
	if len(c.Flavors) > 0 {
		out.Flavors = append([]Product(nil), c.Flavors...)
	}
	if c.Crust != nil {
		crust := *c.Crust
		out.Crust = &crust
	}
	if len(c.Extras) > 0 {
		out.Extras = append([]Product(nil), c.Extras...)
	}
	return out
}

// Validate checks that the composition only references known sizes.
func (c *Composition) Validate() error {
	if c == nil || c.Size == nil {
		return nil
	}
	if !c.Size.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSize, string(*c.Size))
	}
	return nil
}

// CompositionsEqual is the structural equality used to decide whether two
// selections belong to the same cart line.
//
// An absent composition only equals another absent composition: a present but
// empty composition is a different selection.
func CompositionsEqual(a, b *Composition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if (a.Size == nil) != (b.Size == nil) {
		return false
	}
	if a.Size != nil && *a.Size != *b.Size {
		return false
	}
	if (a.Crust == nil) != (b.Crust == nil) {
		return false
	}
	if a.Crust != nil && !a.Crust.Equal(*b.Crust) {
		return false
	}
	return productsEqual(a.Flavors, b.Flavors) && productsEqual(a.Extras, b.Extras)
}

// productsEqual compares two product sequences element-wise, order included.
func productsEqual(a, b []Product) bool {
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
