package domain

import "time"

// ProductRepository описывает требования к хранилищу каталога.
// Реализации сами управляют таймаутами обращений к хранилищу.
type ProductRepository interface {
	// Create сохраняет товар (сидирование и админ-операции).
	Create(product Product) error
	// Get возвращает товар или ErrProductNotFound.
	Get(id string) (Product, error)
	// List возвращает все товары каталога в стабильном порядке.
	List() ([]Product, error)
	// DecrementStock выполняет атомарный условный декремент: проверка
	// достаточности и запись — один неделимый шаг на уровне хранилища.
	// Возвращает InsufficientStockError, если стока не хватает.
	DecrementStock(id string, qty int32) error
	// IncrementStock возвращает сток (компенсация проигранного approve-гонки).
	IncrementStock(id string, qty int32) error
}

// CartRepository описывает хранилище позиций корзины.
type CartRepository interface {
	// GetItem возвращает позицию клиента или ErrCartItemNotFound.
	GetItem(customerID, itemID string) (CartItem, error)
	// FindByProduct ищет позицию клиента по товару (для инкремента при повторном add).
	FindByProduct(customerID, productID string) (CartItem, error)
	// ListByCustomer возвращает все позиции корзины клиента.
	ListByCustomer(customerID string) ([]CartItem, error)
	// Upsert создаёт позицию или перезаписывает количество существующей.
	Upsert(item CartItem) (CartItem, error)
	// Delete удаляет позицию клиента; отсутствие — ErrCartItemNotFound.
	Delete(customerID, itemID string) error
}

// OrderRepository описывает хранилище заказов и их жизненного цикла.
type OrderRepository interface {
	// Get возвращает заказ по идентификатору или ErrOrderNotFound.
	Get(id string) (Order, error)
	// ListByCustomer возвращает заказы клиента, новые первыми.
	ListByCustomer(customerID string, limit int) ([]Order, error)
	// ListByTransaction возвращает заказы клиента из одной checkout-группы.
	ListByTransaction(customerID, transactionID string) ([]Order, error)
	// List возвращает заказы по фильтру для менеджерских отчётов.
	List(filter OrderFilter) ([]Order, error)
	// PendingTotals возвращает суммы pending-количеств по товарам.
	PendingTotals() ([]PendingTotal, error)
	// MarkProcessed переводит pending-заказ в терминальный статус условной
	// записью (только если заказ всё ещё pending) и заполняет аудит-поля.
	// Если pending-заказа с таким id нет — ErrOrderNotFound; повторная
	// обработка уже решённого заказа различима для клиента.
	MarkProcessed(orderID string, status OrderStatus, processedBy string, processedAt time.Time, notes string) (Order, error)
}

// CheckoutStore атомарно фиксирует checkout: вставляет все заказы
// транзакционной группы и очищает корзину клиента. Либо сохраняется вся
// группа и корзина пустеет, либо не меняется ничего.
type CheckoutStore interface {
	CommitCheckout(customerID string, orders []Order) error
}

// StockAdjuster — единственный компонент, которому позволено менять сток.
type StockAdjuster interface {
	// ReserveStock атомарно проверяет и списывает qty единиц товара.
	ReserveStock(productID string, qty int32) error
	// ReleaseStock возвращает qty единиц (компенсация).
	ReleaseStock(productID string, qty int32) error
}
