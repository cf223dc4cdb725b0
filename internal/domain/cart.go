package domain

import "time"

// CartItem — позиция корзины клиента. Пара (CustomerID, ProductID) уникальна;
// повторное добавление товара увеличивает Quantity существующей позиции.
type CartItem struct {
	ID         string
	CustomerID string
	ProductID  string
	Quantity   int32
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate проверяет базовые поля позиции корзины.
func (c *CartItem) Validate() []error {
	var errs []error

	if c.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if c.ProductID == "" {
		errs = append(errs, ErrProductRequired)
	}
	if c.Quantity <= 0 {
		errs = append(errs, ErrQuantityInvalid)
	}

	return errs
}

// CartLine — позиция корзины вместе с товаром и посчитанной суммой строки.
type CartLine struct {
	Item           CartItem
	Product        Product
	LineTotalMinor int64
}

// CartView — корзина целиком: строки и итоговая сумма. Значения считаются
// от текущих цен каталога, корзина цен не фиксирует.
type CartView struct {
	CustomerID string
	Lines      []CartLine
	TotalMinor int64
}

// IsEmpty сообщает, пуста ли корзина.
func (v *CartView) IsEmpty() bool {
	return len(v.Lines) == 0
}
