package service

import "github.com/guttosm/storefront-cart/internal/domain/model"

// FindLine returns the index of the line that holds the same selection as
// product and composition. Lines match when the product ids are equal and the
// compositions are structurally equal, flavor and extra order included.
func FindLine(items []model.LineItem, product model.Product, composition *model.Composition) (int, bool) {
	for i, item := range items {
		if item.SameLine(product, composition) {
			return i, true
		}
	}
	return -1, false
}

// findFirstByProductID returns the first line for productID regardless of its
// composition.
func findFirstByProductID(items []model.LineItem, productID int) (int, bool) {
	for i, item := range items {
		if item.Product.ID == productID {
			return i, true
		}
	}
	return -1, false
}
