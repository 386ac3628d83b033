// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/guttosm/storefront-cart/internal/domain/model"

// CompositionRequest carries the customization of a product by catalog ids.
//
// @Description Product customization: size, split flavors, crust and extras
// @Example {"size": "G", "flavor_ids": [20, 21], "crust_id": 30, "extra_ids": [31, 32]}
type CompositionRequest struct {
	// Size is one of P, M or G
	Size string `json:"size,omitempty" enums:"P,M,G" example:"G"`
	// FlavorIDs lists the flavors in the order they were picked
	FlavorIDs []int `json:"flavor_ids,omitempty" example:"20,21"`
	// CrustID is the selected crust, if any
	CrustID *int `json:"crust_id,omitempty" example:"30"`
	// ExtraIDs lists the extras in the order they were picked
	ExtraIDs []int `json:"extra_ids,omitempty" example:"31,32"`
} // @name CompositionRequest

// AddItemRequest represents the JSON request body for adding to the cart.
//
// Quantity defaults to 1 when omitted or zero. A negative quantity takes
// units away from an existing line. Omitting composition is a different
// selection from sending an empty one.
//
// @Description Request to add a product selection to the cart
// @Example {"product_id": 1, "quantity": 2, "composition": {"size": "M"}}
type AddItemRequest struct {
	ProductID   int                 `json:"product_id" binding:"required,gt=0" example:"1" minimum:"1"`
	Quantity    int                 `json:"quantity" example:"1"`
	Composition *CompositionRequest `json:"composition,omitempty"`
} // @name AddItemRequest

// SetQuantityRequest represents the JSON request body for setting a line's
// quantity. Zero or less removes the line.
//
// @Description Request to set the quantity of a product's first cart line
// @Example {"quantity": 3}
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"3"`
} // @name SetQuantityRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidProductID is returned when product_id is missing or not positive.
	ErrInvalidProductID = &ValidationError{
		Field:   "product_id",
		Message: "must be a positive integer",
	}
	// ErrInvalidSize is returned when the composition size is not P, M or G.
	ErrInvalidSize = &ValidationError{
		Field:   "composition.size",
		Message: "must be one of P, M or G",
	}
	// ErrInvalidCompositionID is returned when a flavor, crust or extra id is not positive.
	ErrInvalidCompositionID = &ValidationError{
		Field:   "composition",
		Message: "ids must be positive integers",
	}
	// ErrMissingQuantity is returned when quantity is absent.
	ErrMissingQuantity = &ValidationError{
		Field:   "quantity",
		Message: "is required",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if r.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if r.Composition == nil {
		return nil
	}
	if r.Composition.Size != "" && !model.Size(r.Composition.Size).Valid() {
		return ErrInvalidSize
	}
	if r.Composition.CrustID != nil && *r.Composition.CrustID <= 0 {
		return ErrInvalidCompositionID
	}
	for _, ids := range [][]int{r.Composition.FlavorIDs, r.Composition.ExtraIDs} {
		for _, id := range ids {
			if id <= 0 {
				return ErrInvalidCompositionID
			}
		}
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *SetQuantityRequest) Validate() error {
	if r.Quantity == nil {
		return ErrMissingQuantity
	}
	return nil
}
