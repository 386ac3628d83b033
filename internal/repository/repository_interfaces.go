// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/storefront-cart/internal/domain/model"
)

var (
	// ErrSlotNotFound is returned by a slot store when nothing was ever written
	// under the key.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrInvalidKey is returned for keys a slot store cannot address.
	ErrInvalidKey = errors.New("invalid slot key")
)

// SlotStoreInterface is a durable key/value slot holding opaque text.
// Each Put overwrites the whole value stored under key.
type SlotStoreInterface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CatalogRepositoryInterface defines the product catalog read/seed operations.
// GetByID returns (nil, nil) when the product does not exist.
type CatalogRepositoryInterface interface {
	GetByID(ctx context.Context, id int) (*model.Product, error)
	GetByIDs(ctx context.Context, ids []int) ([]model.Product, error)
	List(ctx context.Context, categoryID int, limit int) ([]model.Product, error)
	Upsert(ctx context.Context, products []model.Product) error
}
