package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/messaging/kafka"
	"github.com/tranndt/purchaseportal/internal/metrics"
)

// Processor конвертирует корзину клиента в группу pending-заказов.
// Checkout не списывает сток: заказ — намерение, не резерв. Авторитетное
// списание происходит при approve (известный trade-off: pending-заказы могут
// накапливаться сверх стока, решает менеджер).
type Processor struct {
	products domain.ProductRepository
	carts    domain.CartRepository
	store    domain.CheckoutStore
	logger   *log.Entry
	metrics  *metrics.FulfillmentMetrics
	producer *kafka.Producer // опциональный Kafka producer
}

// Receipt — результат успешного checkout: одна транзакционная группа.
type Receipt struct {
	TransactionID string
	Orders        []domain.Order
	TotalMinor    int64
}

// NewProcessor создаёт рабочий экземпляр процессора.
func NewProcessor(
	products domain.ProductRepository,
	carts domain.CartRepository,
	store domain.CheckoutStore,
	logger *log.Entry,
) *Processor {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &Processor{
		products: products,
		carts:    carts,
		store:    store,
		logger:   logger,
		metrics:  metrics.NewFulfillmentMetrics(),
	}
}

// NewProcessorWithKafka создаёт процессор, публикующий события в Kafka.
func NewProcessorWithKafka(
	products domain.ProductRepository,
	carts domain.CartRepository,
	store domain.CheckoutStore,
	producer *kafka.Producer,
	logger *log.Entry,
) *Processor {
	p := NewProcessor(products, carts, store, logger)
	p.producer = producer
	return p
}

// NewProcessorWithoutMetrics создаёт процессор без метрик (для тестов).
func NewProcessorWithoutMetrics(
	products domain.ProductRepository,
	carts domain.CartRepository,
	store domain.CheckoutStore,
	logger *log.Entry,
) *Processor {
	p := NewProcessor(products, carts, store, logger)
	p.metrics = nil
	return p
}

// Checkout превращает всю корзину клиента в pending-заказы одной
// транзакционной группы. Либо сохраняется вся группа и корзина пустеет,
// либо при любой ошибке валидации не меняется ничего.
func (p *Processor) Checkout(customerID string) (Receipt, error) {
	start := time.Now()
	defer func() {
		if p.metrics != nil {
			p.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	items, err := p.carts.ListByCustomer(customerID)
	if err != nil {
		return Receipt{}, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return Receipt{}, domain.ErrEmptyCart
	}

	// Перечитываем каталог и валидируем каждую строку против текущего стока.
	// Любой отказ прерывает checkout целиком: частичных групп не бывает.
	now := time.Now().UTC()
	transactionID := newTransactionID(customerID, now)
	orders := make([]domain.Order, 0, len(items))
	var totalMinor int64

	for _, item := range items {
		product, err := p.products.Get(item.ProductID)
		if err != nil {
			p.recordFailure()
			return Receipt{}, err
		}
		if !product.IsActive {
			p.recordFailure()
			return Receipt{}, fmt.Errorf("product %s: %w", product.ID, domain.ErrProductUnavailable)
		}
		if !product.InStock(item.Quantity) {
			p.recordFailure()
			return Receipt{}, &domain.InsufficientStockError{
				ProductID: product.ID,
				Requested: item.Quantity,
				Available: product.StockQuantity,
			}
		}

		order := domain.Order{
			ID:             uuid.NewString(),
			CustomerID:     customerID,
			ProductID:      product.ID,
			Quantity:       item.Quantity,
			UnitPriceMinor: product.PriceMinor,
			TotalMinor:     int64(item.Quantity) * product.PriceMinor,
			TransactionID:  transactionID,
			Status:         domain.OrderStatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if errs := order.ValidateInvariants(); len(errs) > 0 {
			p.recordFailure()
			return Receipt{}, fmt.Errorf("order invariants: %v", errs)
		}

		orders = append(orders, order)
		totalMinor += order.TotalMinor
	}

	if err := p.store.CommitCheckout(customerID, orders); err != nil {
		p.logger.WithError(err).WithField("customer_id", customerID).Error("failed to commit checkout")
		return Receipt{}, fmt.Errorf("commit checkout: %w", err)
	}

	if p.metrics != nil {
		p.metrics.RecordCheckoutCompleted()
		p.metrics.RecordOrdersCreated(len(orders))
	}

	p.logger.WithFields(log.Fields{
		"customer_id":    customerID,
		"transaction_id": transactionID,
		"orders":         len(orders),
		"total_minor":    totalMinor,
	}).Info("checkout completed")

	p.publishEvents(transactionID, customerID, orders, totalMinor)

	return Receipt{
		TransactionID: transactionID,
		Orders:        orders,
		TotalMinor:    totalMinor,
	}, nil
}

func (p *Processor) recordFailure() {
	if p.metrics != nil {
		p.metrics.RecordCheckoutFailed()
	}
}

// publishEvents отправляет события группы в Kafka (если producer настроен).
// Ошибки публикации не откатывают checkout: Kafka опциональна.
func (p *Processor) publishEvents(transactionID, customerID string, orders []domain.Order, totalMinor int64) {
	if p.producer == nil {
		return
	}

	event := kafka.NewOrderEvent(kafka.EventTypeCheckoutCompleted, "", transactionID, customerID, map[string]interface{}{
		"orders":      len(orders),
		"total_minor": totalMinor,
	})
	if err := p.producer.PublishEvent(kafka.TopicOrderEvents, transactionID, event); err != nil {
		p.logger.WithError(err).WithField("transaction_id", transactionID).Warn("failed to publish checkout event")
	}

	for _, order := range orders {
		orderEvent := kafka.NewOrderEvent(kafka.EventTypeOrderCreated, order.ID, transactionID, customerID, map[string]interface{}{
			"product_id":  order.ProductID,
			"qty":         order.Quantity,
			"total_minor": order.TotalMinor,
		})
		if err := p.producer.PublishEvent(kafka.TopicOrderEvents, order.ID, orderEvent); err != nil {
			p.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
		}
	}
}

// newTransactionID формирует сортируемый и трассируемый идентификатор группы:
// метка времени, клиент и короткий случайный суффикс против коллизий.
func newTransactionID(customerID string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("TXN-%s-%s-%s", now.Format("20060102150405"), customerID, suffix)
}
