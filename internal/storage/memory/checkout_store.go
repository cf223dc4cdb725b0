package memory

import (
	"fmt"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// checkoutStore — in-memory реализация CheckoutStore поверх Store.
type checkoutStore struct {
	store *Store
}

// NewCheckoutStore возвращает in-memory фиксацию checkout.
func NewCheckoutStore(store *Store) domain.CheckoutStore {
	return &checkoutStore{store: store}
}

// CommitCheckout атомарно вставляет заказы транзакционной группы и очищает
// корзину клиента. Под одним мьютексом: либо сохраняется вся группа и корзина
// пустеет, либо не меняется ничего.
func (c *checkoutStore) CommitCheckout(customerID string, orders []domain.Order) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	for _, order := range orders {
		if _, exists := c.store.orders[order.ID]; exists {
			return fmt.Errorf("order %s already exists", order.ID)
		}
	}

	for _, order := range orders {
		c.store.orders[order.ID] = order
	}

	for id, item := range c.store.cartItems {
		if item.CustomerID == customerID {
			delete(c.store.cartItems, id)
		}
	}

	return nil
}

var _ domain.CheckoutStore = (*checkoutStore)(nil)
