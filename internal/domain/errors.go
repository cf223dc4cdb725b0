package domain

import (
	"errors"
	"fmt"
)

var (
	// Ошибка некорректного количества в запросе к корзине (qty <= 0).
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// Ошибка добавления неактивного товара.
	ErrProductUnavailable = errors.New("product is unavailable")
	// Ошибка недостатка стока; обычно оборачивается в InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
	// Ошибка checkout пустой корзины.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCartItemNotFound возвращается, если позиция корзины не найдена у клиента.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrOrderNotFound возвращается, если pending-заказ не найден. Сюда же
	// попадает повторная обработка уже approved/rejected заказа: терминальный
	// статус делает заказ невидимым для processOrder.
	ErrOrderNotFound = errors.New("order not found")
	// ErrProductNotFound возвращается, если товар отсутствует в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrForbidden возвращается при нехватке прав на операцию.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidAction возвращается при неизвестном действии над заказом.
	ErrInvalidAction = errors.New("invalid process action")

	// Ошибки инвариантов заказа.
	ErrCustomerRequired    = errors.New("customer_id is required")
	ErrProductRequired     = errors.New("product_id is required")
	ErrTransactionRequired = errors.New("transaction_id is required")
	ErrQuantityInvalid     = errors.New("order quantity must be greater than zero")
	ErrPriceInvalid        = errors.New("order unit price must be non-negative")
	ErrTotalMismatch       = errors.New("order total does not match quantity * unit price")
)

// InsufficientStockError уточняет, какому товару не хватило стока.
// Совместима с errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ProductID string
	Requested int32
	Available int32
}

// Error форматирует сообщение с контекстом товара.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Unwrap позволяет сопоставлять ошибку с ErrInsufficientStock.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// IsInsufficientStock проверяет, является ли ошибка нехваткой стока.
func IsInsufficientStock(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsNotFound проверяет, относится ли ошибка к отсутствующей сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrCartItemNotFound) ||
		errors.Is(err, ErrProductNotFound)
}
