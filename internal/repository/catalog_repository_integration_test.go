//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestMongoDB(t)
	repo := NewCatalogRepository(db)

	onOffer := catalogProduct(3, 12, "Borda Catupiry", "8.00")
	onOffer.PriceOffer = model.NewOffer(decimal.RequireFromString("6.50"))
	seed := []model.Product{
		catalogProduct(2, 8, "Calabresa", "20.00"),
		catalogProduct(1, 9, "Camarão", "32.90"),
		onOffer,
	}
	require.NoError(t, repo.Upsert(ctx, seed))

	t.Run("get by id keeps exact prices", func(t *testing.T) {
		p, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.True(t, p.Equal(onOffer), "got %+v", p)
	})

	t.Run("missing id", func(t *testing.T) {
		p, err := repo.GetByID(ctx, 404)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("get by ids", func(t *testing.T) {
		products, err := repo.GetByIDs(ctx, []int{1, 2, 404})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("list filters by category", func(t *testing.T) {
		products, err := repo.List(ctx, 8, 0)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Calabresa", products[0].Name)
	})

	t.Run("list sorted with limit", func(t *testing.T) {
		products, err := repo.List(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, 1, products[0].ID)
		assert.Equal(t, 2, products[1].ID)
	})

	t.Run("upsert replaces existing product", func(t *testing.T) {
		updated := catalogProduct(2, 8, "Calabresa", "21.50")
		require.NoError(t, repo.Upsert(ctx, []model.Product{updated}))

		p, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("21.5")))
		assert.False(t, p.PriceOffer.Valid)
	})
}
