package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FulfillmentMetrics содержит метрики конвейера checkout → approve/reject.
type FulfillmentMetrics struct {
	// Счётчики операций
	checkoutCompleted prometheus.Counter
	checkoutFailed    prometheus.Counter
	ordersCreated     prometheus.Counter
	ordersApproved    prometheus.Counter
	ordersRejected    prometheus.Counter
	approvalNoStock   prometheus.Counter

	// Гистограммы времени выполнения
	checkoutDuration prometheus.Histogram
	processDuration  *prometheus.HistogramVec
}

// NewFulfillmentMetrics создаёт метрики с DefaultRegisterer.
func NewFulfillmentMetrics() *FulfillmentMetrics {
	return newFulfillmentMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newFulfillmentMetricsWithRegisterer(registerer prometheus.Registerer) *FulfillmentMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &FulfillmentMetrics{
		checkoutCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "portal_checkout_completed_total",
			Help: "Total number of successful checkouts",
		}),
		checkoutFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "portal_checkout_failed_total",
			Help: "Total number of checkouts aborted by validation",
		}),
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "portal_orders_created_total",
			Help: "Total number of pending orders created",
		}),
		ordersApproved: registerCounter(registerer, prometheus.CounterOpts{
			Name: "portal_orders_approved_total",
			Help: "Total number of orders approved by managers",
		}),
		ordersRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "portal_orders_rejected_total",
			Help: "Total number of orders rejected by managers",
		}),
		approvalNoStock: registerCounter(registerer, prometheus.CounterOpts{
			Name: "portal_approval_insufficient_stock_total",
			Help: "Total number of approvals that failed on stock reservation",
		}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "portal_checkout_duration_seconds",
			Help:    "Duration of checkout processing in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		processDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "portal_order_process_duration_seconds",
			Help:    "Duration of order processing grouped by action",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"action"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordCheckoutCompleted увеличивает счётчик успешных checkout.
func (m *FulfillmentMetrics) RecordCheckoutCompleted() {
	m.checkoutCompleted.Inc()
}

// RecordCheckoutFailed увеличивает счётчик отклонённых checkout.
func (m *FulfillmentMetrics) RecordCheckoutFailed() {
	m.checkoutFailed.Inc()
}

// RecordOrdersCreated увеличивает счётчик созданных pending-заказов.
func (m *FulfillmentMetrics) RecordOrdersCreated(count int) {
	m.ordersCreated.Add(float64(count))
}

// RecordOrderApproved увеличивает счётчик подтверждённых заказов.
func (m *FulfillmentMetrics) RecordOrderApproved() {
	m.ordersApproved.Inc()
}

// RecordOrderRejected увеличивает счётчик отклонённых заказов.
func (m *FulfillmentMetrics) RecordOrderRejected() {
	m.ordersRejected.Inc()
}

// RecordApprovalInsufficientStock увеличивает счётчик approve, упавших на стоке.
func (m *FulfillmentMetrics) RecordApprovalInsufficientStock() {
	m.approvalNoStock.Inc()
}

// RecordCheckoutDuration записывает время обработки checkout.
func (m *FulfillmentMetrics) RecordCheckoutDuration(duration time.Duration) {
	m.checkoutDuration.Observe(duration.Seconds())
}

// RecordProcessDuration записывает время обработки заказа по действию.
func (m *FulfillmentMetrics) RecordProcessDuration(action string, duration time.Duration) {
	m.processDuration.WithLabelValues(action).Observe(duration.Seconds())
}
