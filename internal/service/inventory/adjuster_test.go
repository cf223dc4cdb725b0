package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/service/inventory"
	"github.com/tranndt/purchaseportal/internal/storage/memory"
)

func seedProduct(t *testing.T, store *memory.Store, id string, stock int32) {
	t.Helper()
	repo := memory.NewProductRepository(store)
	require.NoError(t, repo.Create(domain.Product{
		ID:            id,
		Name:          "Laptop",
		PriceMinor:    2000,
		StockQuantity: stock,
		IsActive:      true,
	}))
}

func TestAdjuster_ReserveStock(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	seedProduct(t, store, "product-1", 10)

	adj := inventory.NewAdjuster(products, nil)

	require.NoError(t, adj.ReserveStock("product-1", 6))

	stored, err := products.Get("product-1")
	require.NoError(t, err)
	require.EqualValues(t, 4, stored.StockQuantity)

	err = adj.ReserveStock("product-1", 6)
	require.True(t, domain.IsInsufficientStock(err))

	// Отказ не трогает сток.
	stored, err = products.Get("product-1")
	require.NoError(t, err)
	require.EqualValues(t, 4, stored.StockQuantity)
}

func TestAdjuster_ReleaseStock(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	seedProduct(t, store, "product-1", 2)

	adj := inventory.NewAdjuster(products, nil)

	require.NoError(t, adj.ReleaseStock("product-1", 3))

	stored, err := products.Get("product-1")
	require.NoError(t, err)
	require.EqualValues(t, 5, stored.StockQuantity)
}
