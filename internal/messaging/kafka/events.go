package kafka

import "time"

// EventType определяет тип события конвейера закупок.
type EventType string

const (
	// Checkout события
	EventTypeCheckoutCompleted EventType = "checkout.completed"

	// Order события
	EventTypeOrderCreated  EventType = "order.created"
	EventTypeOrderApproved EventType = "order.approved"
	EventTypeOrderRejected EventType = "order.rejected"
)

// Topics для Kafka
const (
	TopicOrderEvents = "portal.order.events"
)

// OrderEvent — событие жизненного цикла заказа для внешних потребителей
// (логистика, нотификации).
type OrderEvent struct {
	EventType     EventType              `json:"event_type"`
	OrderID       string                 `json:"order_id,omitempty"`
	TransactionID string                 `json:"transaction_id,omitempty"`
	CustomerID    string                 `json:"customer_id"`
	Timestamp     time.Time              `json:"timestamp"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// NewOrderEvent создаёт событие заказа с текущим временем.
func NewOrderEvent(eventType EventType, orderID, transactionID, customerID string, metadata map[string]interface{}) *OrderEvent {
	return &OrderEvent{
		EventType:     eventType,
		OrderID:       orderID,
		TransactionID: transactionID,
		CustomerID:    customerID,
		Timestamp:     time.Now().UTC(),
		Metadata:      metadata,
	}
}
