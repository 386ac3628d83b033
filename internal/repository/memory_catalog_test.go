//go:build !integration

package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogProduct(id, category int, name, price string) model.Product {
	return model.Product{
		ID:         id,
		CategoryID: category,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	}
}

func TestMemoryCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCatalogRepository(
		catalogProduct(3, 8, "Calabresa", "20.00"),
		catalogProduct(1, 9, "Camarão", "30.00"),
		catalogProduct(2, 8, "Mussarela", "18.00"),
	)

	t.Run("get by id", func(t *testing.T) {
		p, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Calabresa", p.Name)
	})

	t.Run("missing id returns nil", func(t *testing.T) {
		p, err := repo.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("get by ids keeps request order", func(t *testing.T) {
		products, err := repo.GetByIDs(ctx, []int{2, 99, 1})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, 2, products[0].ID)
		assert.Equal(t, 1, products[1].ID)
	})

	t.Run("list by category sorted by id", func(t *testing.T) {
		products, err := repo.List(ctx, 8, 0)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, 2, products[0].ID)
		assert.Equal(t, 3, products[1].ID)
	})

	t.Run("list with limit", func(t *testing.T) {
		products, err := repo.List(ctx, 0, 1)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 1, products[0].ID)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		updated := catalogProduct(2, 8, "Mussarela", "19.50")
		updated.PriceOffer = model.NewOffer(decimal.RequireFromString("17.00"))
		require.NoError(t, repo.Upsert(ctx, []model.Product{updated}))

		p, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.True(t, p.Equal(updated))
	})
}

func TestLoadCatalogSeed(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid seed", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{"id": 42, "category_id": 8, "name": "Calabresa", "price": "20.00", "price_offer": null},
			{"id": 7, "category_id": 12, "name": "Borda Catupiry", "price": 8, "price_offer": "6.50"}
		]`), 0o600))

		products, err := LoadCatalogSeed(path)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.True(t, products[0].Price.Equal(decimal.RequireFromString("20")))
		assert.False(t, products[0].PriceOffer.Valid)
		assert.True(t, products[1].EffectivePrice().Equal(decimal.RequireFromString("6.50")))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalogSeed(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("not an array", func(t *testing.T) {
		path := filepath.Join(dir, "object.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id": 1}`), 0o600))

		_, err := LoadCatalogSeed(path)
		assert.Error(t, err)
	})

	t.Run("entry without id", func(t *testing.T) {
		path := filepath.Join(dir, "noid.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"name": "ghost", "price": "1"}]`), 0o600))

		_, err := LoadCatalogSeed(path)
		assert.ErrorContains(t, err, "has no id")
	})
}
