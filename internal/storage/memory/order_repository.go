package memory

import (
	"sort"
	"time"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// orderRepository — in-memory реализация OrderRepository поверх Store.
type orderRepository struct {
	store *Store
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{store: store}
}

// Get возвращает заказ или ErrOrderNotFound.
func (r *orderRepository) Get(id string) (domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListByCustomer возвращает заказы клиента, новые первыми, ограничивая limit (если >0).
func (r *orderRepository) ListByCustomer(customerID string, limit int) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.store.orders {
		if order.CustomerID == customerID {
			result = append(result, order)
		}
	}

	sortOrdersDesc(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// ListByTransaction возвращает заказы клиента из одной checkout-группы.
func (r *orderRepository) ListByTransaction(customerID, transactionID string) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.store.orders {
		if order.CustomerID == customerID && order.TransactionID == transactionID {
			result = append(result, order)
		}
	}

	sortOrdersDesc(result)
	return result, nil
}

// List возвращает заказы по фильтру, новые первыми.
func (r *orderRepository) List(filter domain.OrderFilter) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.store.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && order.CustomerID != filter.CustomerID {
			continue
		}
		if filter.ProductID != "" && order.ProductID != filter.ProductID {
			continue
		}
		result = append(result, order)
	}

	sortOrdersDesc(result)
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}

	return result, nil
}

// PendingTotals возвращает суммы pending-количеств по товарам.
func (r *orderRepository) PendingTotals() ([]domain.PendingTotal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sums := make(map[string]int32)
	for _, order := range r.store.orders {
		if order.Status == domain.OrderStatusPending {
			sums[order.ProductID] += order.Quantity
		}
	}

	result := make([]domain.PendingTotal, 0, len(sums))
	for productID, qty := range sums {
		result = append(result, domain.PendingTotal{ProductID: productID, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })

	return result, nil
}

// MarkProcessed условно переводит pending-заказ в терминальный статус.
// Проверка статуса и запись происходят под одним мьютексом: два конкурирующих
// процессинга одного заказа не пройдут оба.
func (r *orderRepository) MarkProcessed(orderID string, status domain.OrderStatus, processedBy string, processedAt time.Time, notes string) (domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order, ok := r.store.orders[orderID]
	if !ok || order.Status != domain.OrderStatusPending {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	order.Status = status
	order.ProcessedBy = processedBy
	order.ProcessedAt = &processedAt
	order.Notes = notes
	order.UpdatedAt = processedAt
	r.store.orders[orderID] = order

	return order, nil
}

func sortOrdersDesc(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}

var _ domain.OrderRepository = (*orderRepository)(nil)
