package cart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/service/cart"
	"github.com/tranndt/purchaseportal/internal/storage/memory"
)

type cartFixture struct {
	service  *cart.Service
	products domain.ProductRepository
	carts    domain.CartRepository
}

func newFixture(t *testing.T) *cartFixture {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	carts := memory.NewCartRepository(store)
	return &cartFixture{
		service:  cart.NewService(products, carts, nil),
		products: products,
		carts:    carts,
	}
}

func (f *cartFixture) seedProduct(t *testing.T, id string, priceMinor int64, stock int32, active bool) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, f.products.Create(domain.Product{
		ID:            id,
		Name:          "Product " + id,
		PriceMinor:    priceMinor,
		StockQuantity: stock,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}))
}

func TestAddItem_CreatesAndIncrements(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "product-1", 2000, 10, true)

	item, err := f.service.AddItem("customer-1", "product-1", 2)
	require.NoError(t, err)
	require.EqualValues(t, 2, item.Quantity)

	// Повторное добавление того же товара увеличивает количество.
	item, err = f.service.AddItem("customer-1", "product-1", 3)
	require.NoError(t, err)
	require.EqualValues(t, 5, item.Quantity)

	items, err := f.carts.ListByCustomer("customer-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "product-1", 2000, 10, true)

	_, err := f.service.AddItem("customer-1", "product-1", 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// Позиция не создана.
	items, err := f.carts.ListByCustomer("customer-1")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAddItem_InactiveProduct(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "product-1", 2000, 10, false)

	_, err := f.service.AddItem("customer-1", "product-1", 1)
	require.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.AddItem("customer-1", "missing", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddItem_CumulativeStockCheck(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "product-1", 2000, 5, true)

	_, err := f.service.AddItem("customer-1", "product-1", 3)
	require.NoError(t, err)

	// 3 уже в корзине, ещё 3 превышают сток 5.
	_, err = f.service.AddItem("customer-1", "product-1", 3)
	require.True(t, domain.IsInsufficientStock(err))

	items, err := f.carts.ListByCustomer("customer-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.EqualValues(t, 3, items[0].Quantity)
}

func TestUpdateItem(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "product-1", 2000, 10, true)

	item, err := f.service.AddItem("customer-1", "product-1", 2)
	require.NoError(t, err)

	updated, err := f.service.UpdateItem("customer-1", item.ID, 7)
	require.NoError(t, err)
	require.EqualValues(t, 7, updated.Quantity)

	_, err = f.service.UpdateItem("customer-1", item.ID, 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.service.UpdateItem("customer-1", item.ID, 11)
	require.True(t, domain.IsInsufficientStock(err))

	_, err = f.service.UpdateItem("customer-1", "missing", 1)
	require.ErrorIs(t, err, domain.ErrCartItemNotFound)

	// Чужой клиент не видит позицию.
	_, err = f.service.UpdateItem("customer-2", item.ID, 1)
	require.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "product-1", 2000, 10, true)

	item, err := f.service.AddItem("customer-1", "product-1", 2)
	require.NoError(t, err)

	require.NoError(t, f.service.RemoveItem("customer-1", item.ID))
	require.ErrorIs(t, f.service.RemoveItem("customer-1", item.ID), domain.ErrCartItemNotFound)
}

func TestGetCart_Totals(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "product-1", 2000, 10, true)
	f.seedProduct(t, "product-2", 500, 10, true)

	_, err := f.service.AddItem("customer-1", "product-1", 2)
	require.NoError(t, err)
	_, err = f.service.AddItem("customer-1", "product-2", 3)
	require.NoError(t, err)

	view, err := f.service.GetCart("customer-1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	require.EqualValues(t, 4000+1500, view.TotalMinor)

	for _, line := range view.Lines {
		require.EqualValues(t, int64(line.Item.Quantity)*line.Product.PriceMinor, line.LineTotalMinor)
	}

	empty, err := f.service.GetCart("customer-2")
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}
