package inventory

import "github.com/tranndt/purchaseportal/internal/domain"

// MockAdjuster — конфигурируемая заглушка StockAdjuster для тестов ledger.
type MockAdjuster struct {
	ReserveErr error
	ReleaseErr error

	ReserveCalls int
	ReleaseCalls int
}

// NewMockAdjuster возвращает mock с успешным сценарием по умолчанию.
func NewMockAdjuster() *MockAdjuster {
	return &MockAdjuster{}
}

// ReserveStock возвращает заранее настроенную ошибку и считает вызовы.
func (m *MockAdjuster) ReserveStock(productID string, qty int32) error {
	m.ReserveCalls++
	return m.ReserveErr
}

// ReleaseStock возвращает заранее настроенную ошибку и считает вызовы.
func (m *MockAdjuster) ReleaseStock(productID string, qty int32) error {
	m.ReleaseCalls++
	return m.ReleaseErr
}

var _ domain.StockAdjuster = (*MockAdjuster)(nil)
