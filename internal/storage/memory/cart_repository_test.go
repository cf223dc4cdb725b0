package memory_test

import (
	"errors"
	"testing"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/storage/memory"
)

func TestCartRepository_UpsertGet(t *testing.T) {
	repo := memory.NewCartRepository(memory.NewStore())
	item := newCartItem("item-1", "customer-1", "product-1", 2)

	if _, err := repo.Upsert(item); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	stored, err := repo.GetItem("customer-1", "item-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", stored.Quantity)
	}

	// Чужая позиция выглядит как отсутствующая.
	if _, err := repo.GetItem("customer-2", "item-1"); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartRepository_FindByProduct(t *testing.T) {
	repo := memory.NewCartRepository(memory.NewStore())
	item := newCartItem("item-1", "customer-1", "product-1", 2)
	if _, err := repo.Upsert(item); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	found, err := repo.FindByProduct("customer-1", "product-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != "item-1" {
		t.Fatalf("expected item-1, got %s", found.ID)
	}

	if _, err := repo.FindByProduct("customer-1", "product-2"); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartRepository_ListByCustomer(t *testing.T) {
	repo := memory.NewCartRepository(memory.NewStore())
	items := []domain.CartItem{
		newCartItem("item-1", "customer-1", "product-1", 1),
		newCartItem("item-2", "customer-1", "product-2", 2),
		newCartItem("item-3", "customer-2", "product-1", 3),
	}
	for _, item := range items {
		if _, err := repo.Upsert(item); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	listed, err := repo.ListByCustomer("customer-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 items, got %d", len(listed))
	}
}

func TestCartRepository_Delete(t *testing.T) {
	repo := memory.NewCartRepository(memory.NewStore())
	item := newCartItem("item-1", "customer-1", "product-1", 2)
	if _, err := repo.Upsert(item); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := repo.Delete("customer-1", "item-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete("customer-1", "item-1"); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCheckoutStore_CommitClearsCart(t *testing.T) {
	store := memory.NewStore()
	carts := memory.NewCartRepository(store)
	orders := memory.NewOrderRepository(store)
	checkout := memory.NewCheckoutStore(store)

	if _, err := carts.Upsert(newCartItem("item-1", "customer-1", "product-1", 2)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := carts.Upsert(newCartItem("item-2", "customer-2", "product-1", 1)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	order := newOrder("order-1", "customer-1", "product-1", 2)
	if err := checkout.CommitCheckout("customer-1", []domain.Order{order}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	// Корзина клиента очищена, чужая корзина не тронута.
	mine, err := carts.ListByCustomer("customer-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(mine))
	}
	other, err := carts.ListByCustomer("customer-2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("expected untouched foreign cart, got %d items", len(other))
	}

	stored, err := orders.Get("order-1")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if stored.Status != domain.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", stored.Status)
	}
}
