package domain

import "time"

// OrderStatus описывает жизненный цикл заказа в портале закупок.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан на checkout и ждёт решения менеджера.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusApproved — менеджер подтвердил заказ, сток списан.
	OrderStatusApproved OrderStatus = "approved"
	// OrderStatusRejected — менеджер отклонил заказ, сток не менялся.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusFulfilled — заказ доставлен клиенту (логистика, вне ядра).
	OrderStatusFulfilled OrderStatus = "fulfilled"
	// OrderStatusCancelled — подтверждённый заказ отменён логистикой (вне ядра).
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ProcessAction — действие менеджера над pending-заказом.
type ProcessAction string

const (
	ProcessActionApprove ProcessAction = "approve"
	ProcessActionReject  ProcessAction = "reject"
)

// Valid сообщает, поддерживается ли действие.
func (a ProcessAction) Valid() bool {
	return a == ProcessActionApprove || a == ProcessActionReject
}

// Order — ценовой снимок намерения купить Quantity единиц одного товара.
// После ухода из pending заказ неизменяем, кроме логистических статусов.
type Order struct {
	ID             string
	CustomerID     string
	ProductID      string
	Quantity       int32
	UnitPriceMinor int64
	TotalMinor     int64
	TransactionID  string
	Status         OrderStatus
	ProcessedBy    string
	ProcessedAt    *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPending сообщает, ждёт ли заказ решения менеджера.
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// CanTransition проверяет допустимость перехода статуса:
// pending → approved|rejected; approved → fulfilled|cancelled.
// Из терминальных статусов переходов нет.
func (o *Order) CanTransition(to OrderStatus) bool {
	switch o.Status {
	case OrderStatusPending:
		return to == OrderStatusApproved || to == OrderStatusRejected
	case OrderStatusApproved:
		return to == OrderStatusFulfilled || to == OrderStatusCancelled
	default:
		return false
	}
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if o.ProductID == "" {
		errs = append(errs, ErrProductRequired)
	}
	if o.TransactionID == "" {
		errs = append(errs, ErrTransactionRequired)
	}
	if o.Quantity <= 0 {
		errs = append(errs, ErrQuantityInvalid)
	}
	if o.UnitPriceMinor < 0 {
		errs = append(errs, ErrPriceInvalid)
	}
	// Сумма всегда считается от снимка цены, не от текущей цены каталога.
	if o.TotalMinor != int64(o.Quantity)*o.UnitPriceMinor {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}

// OrderFilter описывает параметры выборки заказов для менеджерских отчётов.
type OrderFilter struct {
	Status     OrderStatus
	CustomerID string
	ProductID  string
	Limit      int
}

// PendingTotal — суммарное pending-количество по одному товару.
type PendingTotal struct {
	ProductID string
	Quantity  int32
}
