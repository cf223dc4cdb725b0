package memory

import (
	"sort"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// cartRepository — in-memory реализация CartRepository поверх Store.
type cartRepository struct {
	store *Store
}

// NewCartRepository возвращает in-memory репозиторий корзин.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{store: store}
}

// GetItem возвращает позицию корзины клиента или ErrCartItemNotFound.
// Чужая позиция для клиента неотличима от отсутствующей.
func (r *cartRepository) GetItem(customerID, itemID string) (domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.cartItems[itemID]
	if !ok || item.CustomerID != customerID {
		return domain.CartItem{}, domain.ErrCartItemNotFound
	}
	return item, nil
}

// FindByProduct ищет позицию клиента по товару.
func (r *cartRepository) FindByProduct(customerID, productID string) (domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.cartItems {
		if item.CustomerID == customerID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, domain.ErrCartItemNotFound
}

// ListByCustomer возвращает позиции корзины клиента, старые первыми.
func (r *cartRepository) ListByCustomer(customerID string) ([]domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.CartItem, 0)
	for _, item := range r.store.cartItems {
		if item.CustomerID == customerID {
			result = append(result, item)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Upsert создаёт позицию или перезаписывает существующую целиком.
// Корзина не является источником истины по стоку, поэтому конкурирующие
// записи одного клиента разрешаются по принципу last write wins.
func (r *cartRepository) Upsert(item domain.CartItem) (domain.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.cartItems[item.ID] = item
	return item, nil
}

// Delete удаляет позицию клиента; отсутствие — ErrCartItemNotFound.
func (r *cartRepository) Delete(customerID, itemID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.cartItems[itemID]
	if !ok || item.CustomerID != customerID {
		return domain.ErrCartItemNotFound
	}
	delete(r.store.cartItems, itemID)
	return nil
}

var _ domain.CartRepository = (*cartRepository)(nil)
