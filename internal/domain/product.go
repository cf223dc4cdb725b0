package domain

import "time"

// Product — товар каталога. Ядро читает цену/сток и меняет StockQuantity
// единственным разрешённым путём — через условный декремент при approve.
type Product struct {
	ID            string
	Name          string
	Category      string
	PriceMinor    int64
	StockQuantity int32
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InStock сообщает, можно ли покрыть qty текущим стоком.
func (p *Product) InStock(qty int32) bool {
	return p.StockQuantity >= qty
}

// Validate проверяет, корректно ли заполнены ключевые поля товара.
func (p *Product) Validate() []error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, ErrProductRequired)
	}
	if p.PriceMinor < 0 {
		errs = append(errs, ErrPriceInvalid)
	}
	if p.StockQuantity < 0 {
		errs = append(errs, ErrQuantityInvalid)
	}

	return errs
}

// StockOverview — строка складского отчёта: текущий сток, сумма pending-заказов
// и неавторитетный прогноз остатка после их подтверждения.
type StockOverview struct {
	Product               Product
	PendingQuantity       int32
	AvailableAfterPending int32
}
