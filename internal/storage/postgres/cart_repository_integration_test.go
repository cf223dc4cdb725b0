package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tranndt/purchaseportal/internal/domain"
)

func insertCartItemForIntegrationTest(t *testing.T, store *Store, customerID, productID string, qty int32) domain.CartItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	saved, err := NewCartRepository(store).Upsert(domain.CartItem{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   qty,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
	return saved
}

func TestCartRepositoryIntegration_UpsertAndGet(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCartRepository(store)
	product := insertProductForIntegrationTest(t, store, 10)

	item := insertCartItemForIntegrationTest(t, store, "alice", product.ID, 2)

	got, err := repo.GetItem("alice", item.ID)
	require.NoError(t, err)
	require.Equal(t, int32(2), got.Quantity)

	// Чужая позиция неотличима от отсутствующей.
	_, err = repo.GetItem("bob", item.ID)
	require.ErrorIs(t, err, domain.ErrCartItemNotFound)

	found, err := repo.FindByProduct("alice", product.ID)
	require.NoError(t, err)
	require.Equal(t, item.ID, found.ID)
}

// Повторный Upsert той же пары (customer, product) перезаписывает количество,
// сохраняя id существующей позиции.
func TestCartRepositoryIntegration_UpsertConflict(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCartRepository(store)
	product := insertProductForIntegrationTest(t, store, 10)

	first := insertCartItemForIntegrationTest(t, store, "alice", product.ID, 2)

	now := time.Now().UTC().Truncate(time.Microsecond)
	second, err := repo.Upsert(domain.CartItem{
		ID:         uuid.NewString(),
		CustomerID: "alice",
		ProductID:  product.ID,
		Quantity:   5,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, int32(5), second.Quantity)

	items, err := repo.ListByCustomer("alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCartRepositoryIntegration_Delete(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCartRepository(store)
	product := insertProductForIntegrationTest(t, store, 10)
	item := insertCartItemForIntegrationTest(t, store, "alice", product.ID, 2)

	require.ErrorIs(t, repo.Delete("bob", item.ID), domain.ErrCartItemNotFound)
	require.NoError(t, repo.Delete("alice", item.ID))
	require.ErrorIs(t, repo.Delete("alice", item.ID), domain.ErrCartItemNotFound)
}

func TestCheckoutStoreIntegration_CommitClearsCart(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	carts := NewCartRepository(store)
	orders := NewOrderRepository(store)
	product := insertProductForIntegrationTest(t, store, 10)

	insertCartItemForIntegrationTest(t, store, "alice", product.ID, 2)
	foreign := insertCartItemForIntegrationTest(t, store, "bob", product.ID, 1)

	order := insertPendingOrderForIntegrationTest(t, store, "alice", product.ID, 2)

	// Корзина клиента очищена, чужая не тронута.
	mine, err := carts.ListByCustomer("alice")
	require.NoError(t, err)
	require.Empty(t, mine)

	got, err := carts.GetItem("bob", foreign.ID)
	require.NoError(t, err)
	require.Equal(t, int32(1), got.Quantity)

	persisted, err := orders.Get(order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, persisted.Status)
}

// Дубликат id заказа откатывает всю группу: ни заказов, ни очистки корзины.
func TestCheckoutStoreIntegration_DuplicateRollsBack(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	carts := NewCartRepository(store)
	orders := NewOrderRepository(store)
	product := insertProductForIntegrationTest(t, store, 10)

	insertCartItemForIntegrationTest(t, store, "alice", product.ID, 2)
	existing := insertPendingOrderForIntegrationTest(t, store, "bob", product.ID, 1)

	now := time.Now().UTC().Truncate(time.Microsecond)
	fresh := domain.Order{
		ID:             uuid.NewString(),
		CustomerID:     "alice",
		ProductID:      product.ID,
		Quantity:       2,
		UnitPriceMinor: 9999,
		TotalMinor:     2 * 9999,
		TransactionID:  "TXN-20260101000000-alice-cafef00d",
		Status:         domain.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	duplicate := fresh
	duplicate.ID = existing.ID

	err := NewCheckoutStore(store).CommitCheckout("alice", []domain.Order{fresh, duplicate})
	require.Error(t, err)

	_, err = orders.Get(fresh.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	items, err := carts.ListByCustomer("alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
}
