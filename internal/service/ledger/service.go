package ledger

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/messaging/kafka"
	"github.com/tranndt/purchaseportal/internal/metrics"
	"github.com/tranndt/purchaseportal/internal/redisx"
)

// Service — книга заказов: менеджерская обработка pending-заказов и отчёты.
// Approve списывает сток через StockAdjuster до смены статуса; при проигрыше
// гонки за заказ списание компенсируется обратным инкрементом.
type Service struct {
	orders   domain.OrderRepository
	products domain.ProductRepository
	adjuster domain.StockAdjuster
	logger   *log.Entry
	metrics  *metrics.FulfillmentMetrics
	producer *kafka.Producer       // опциональный Kafka producer
	cache    *redisx.InventoryCache // опциональный кэш сводки инвентаря
}

// NewService создаёт рабочий экземпляр книги заказов.
func NewService(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	adjuster domain.StockAdjuster,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "ledger")
	}
	return &Service{
		orders:   orders,
		products: products,
		adjuster: adjuster,
		logger:   logger,
		metrics:  metrics.NewFulfillmentMetrics(),
	}
}

// NewServiceWithKafka создаёт книгу заказов, публикующую события в Kafka.
func NewServiceWithKafka(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	adjuster domain.StockAdjuster,
	producer *kafka.Producer,
	logger *log.Entry,
) *Service {
	s := NewService(orders, products, adjuster, logger)
	s.producer = producer
	return s
}

// NewServiceWithoutMetrics создаёт книгу заказов без метрик (для тестов).
func NewServiceWithoutMetrics(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	adjuster domain.StockAdjuster,
	logger *log.Entry,
) *Service {
	s := NewService(orders, products, adjuster, logger)
	s.metrics = nil
	return s
}

// WithInventoryCache подключает кэш сводки инвентаря.
func (s *Service) WithInventoryCache(cache *redisx.InventoryCache) *Service {
	s.cache = cache
	return s
}

// ProcessOrder выполняет решение менеджера по pending-заказу.
//
// Approve: сначала атомарное списание стока, затем условный перевод заказа
// из pending в approved. Если заказ уже обработан конкурентом между этими
// шагами, списание компенсируется и возвращается ErrOrderNotFound. Порядок
// намеренный: сток никогда не уходит в минус, а компенсация дешевле, чем
// заказ approved без списания.
//
// Reject переводит заказ в rejected, сток не трогается.
func (s *Service) ProcessOrder(actor domain.User, orderID string, action domain.ProcessAction, notes string) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordProcessDuration(string(action), time.Since(start))
		}
	}()

	if !actor.Role.CanManageOrders() {
		return domain.Order{}, domain.ErrForbidden
	}
	if !action.Valid() {
		return domain.Order{}, fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}

	order, err := s.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.IsPending() {
		// Повторная обработка решённого заказа неотличима от отсутствующего.
		return domain.Order{}, domain.ErrOrderNotFound
	}

	switch action {
	case domain.ProcessActionApprove:
		return s.approve(actor, order, notes)
	default:
		return s.reject(actor, order, notes)
	}
}

func (s *Service) approve(actor domain.User, order domain.Order, notes string) (domain.Order, error) {
	if err := s.adjuster.ReserveStock(order.ProductID, order.Quantity); err != nil {
		if domain.IsInsufficientStock(err) {
			// Заказ остаётся pending: менеджер может подождать поставку
			// или отклонить явно.
			if s.metrics != nil {
				s.metrics.RecordApprovalInsufficientStock()
			}
			s.logger.WithFields(log.Fields{
				"order_id":   order.ID,
				"product_id": order.ProductID,
			}).Warn("approve blocked by insufficient stock")
		}
		return domain.Order{}, err
	}

	processed, err := s.orders.MarkProcessed(order.ID, domain.OrderStatusApproved, actor.ID, time.Now().UTC(), notes)
	if err != nil {
		// Конкурент успел обработать заказ первым: возвращаем списанное.
		if releaseErr := s.adjuster.ReleaseStock(order.ProductID, order.Quantity); releaseErr != nil {
			s.logger.WithError(releaseErr).WithFields(log.Fields{
				"order_id":   order.ID,
				"product_id": order.ProductID,
				"qty":        order.Quantity,
			}).Error("failed to release stock after lost approve race")
		}
		return domain.Order{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderApproved()
	}
	s.logger.WithFields(log.Fields{
		"order_id":     processed.ID,
		"product_id":   processed.ProductID,
		"qty":          processed.Quantity,
		"processed_by": actor.ID,
	}).Info("order approved")

	s.afterProcess(kafka.EventTypeOrderApproved, processed)
	return processed, nil
}

func (s *Service) reject(actor domain.User, order domain.Order, notes string) (domain.Order, error) {
	processed, err := s.orders.MarkProcessed(order.ID, domain.OrderStatusRejected, actor.ID, time.Now().UTC(), notes)
	if err != nil {
		return domain.Order{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderRejected()
	}
	s.logger.WithFields(log.Fields{
		"order_id":     processed.ID,
		"processed_by": actor.ID,
	}).Info("order rejected")

	s.afterProcess(kafka.EventTypeOrderRejected, processed)
	return processed, nil
}

// afterProcess публикует событие и сбрасывает кэш сводки инвентаря.
func (s *Service) afterProcess(eventType kafka.EventType, order domain.Order) {
	s.cache.Invalidate(context.Background())

	if s.producer == nil {
		return
	}
	event := kafka.NewOrderEvent(eventType, order.ID, order.TransactionID, order.CustomerID, map[string]interface{}{
		"product_id":   order.ProductID,
		"qty":          order.Quantity,
		"processed_by": order.ProcessedBy,
	})
	if err := s.producer.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish process event")
	}
}

// ListPending возвращает заказы, ждущие решения менеджера.
func (s *Service) ListPending(actor domain.User) ([]domain.Order, error) {
	if !actor.Role.CanManageOrders() {
		return nil, domain.ErrForbidden
	}
	return s.orders.List(domain.OrderFilter{Status: domain.OrderStatusPending})
}

// ListOrders возвращает заказы по фильтру для менеджерских отчётов.
func (s *Service) ListOrders(actor domain.User, filter domain.OrderFilter) ([]domain.Order, error) {
	if !actor.Role.CanManageOrders() {
		return nil, domain.ErrForbidden
	}
	return s.orders.List(filter)
}

// InventoryOverview собирает складской отчёт: текущий сток, сумма pending
// и прогноз остатка после подтверждения всех pending-заказов. Прогноз
// неавторитетен: реальное списание делает только approve. Результат может
// отдаваться из кэша.
func (s *Service) InventoryOverview(actor domain.User) ([]domain.StockOverview, error) {
	if !actor.Role.CanManageOrders() {
		return nil, domain.ErrForbidden
	}

	if cached, ok := s.cache.Get(context.Background()); ok {
		return cached, nil
	}

	products, err := s.products.List()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	totals, err := s.orders.PendingTotals()
	if err != nil {
		return nil, fmt.Errorf("pending totals: %w", err)
	}

	pendingByProduct := make(map[string]int32, len(totals))
	for _, t := range totals {
		pendingByProduct[t.ProductID] = t.Quantity
	}

	overview := make([]domain.StockOverview, 0, len(products))
	for _, p := range products {
		pending := pendingByProduct[p.ID]
		overview = append(overview, domain.StockOverview{
			Product:               p,
			PendingQuantity:       pending,
			AvailableAfterPending: p.StockQuantity - pending,
		})
	}

	s.cache.Set(context.Background(), overview)
	return overview, nil
}

// ListCustomerOrders возвращает историю заказов клиента, новые первыми.
func (s *Service) ListCustomerOrders(customerID string, limit int) ([]domain.Order, error) {
	return s.orders.ListByCustomer(customerID, limit)
}

// FindByTransaction возвращает заказы клиента из одной checkout-группы.
func (s *Service) FindByTransaction(customerID, transactionID string) ([]domain.Order, error) {
	return s.orders.ListByTransaction(customerID, transactionID)
}
