package inventory

import (
	log "github.com/sirupsen/logrus"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// adjuster — единственный код, которому позволено менять сток каталога.
// Вся атомарность живёт в ProductRepository.DecrementStock: условная запись
// «проверить и списать» выполняется одним неделимым шагом хранилища, без
// критической секции приложения поверх чтения и последующей записи.
type adjuster struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewAdjuster возвращает рабочую реализацию StockAdjuster.
func NewAdjuster(products domain.ProductRepository, logger *log.Entry) domain.StockAdjuster {
	if logger == nil {
		logger = log.New().WithField("component", "inventory")
	}
	return &adjuster{products: products, logger: logger}
}

// ReserveStock атомарно проверяет и списывает qty единиц товара.
// Нехватка стока — не фатальная ошибка: ledger оставляет заказ pending.
func (a *adjuster) ReserveStock(productID string, qty int32) error {
	if err := a.products.DecrementStock(productID, qty); err != nil {
		if domain.IsInsufficientStock(err) {
			a.logger.WithFields(log.Fields{
				"product_id": productID,
				"qty":        qty,
			}).Warn("insufficient stock for reservation")
		}
		return err
	}

	a.logger.WithFields(log.Fields{
		"product_id": productID,
		"qty":        qty,
	}).Debug("stock reserved")
	return nil
}

// ReleaseStock возвращает qty единиц на сток (компенсация проигранной гонки
// за pending-заказ после успешного списания).
func (a *adjuster) ReleaseStock(productID string, qty int32) error {
	if err := a.products.IncrementStock(productID, qty); err != nil {
		a.logger.WithError(err).WithField("product_id", productID).Error("stock release failed")
		return err
	}

	a.logger.WithFields(log.Fields{
		"product_id": productID,
		"qty":        qty,
	}).Info("stock released")
	return nil
}

var _ domain.StockAdjuster = (*adjuster)(nil)
