package app

import (
	"github.com/tranndt/purchaseportal/internal/messaging/kafka"
	"github.com/tranndt/purchaseportal/internal/redisx"
	"github.com/tranndt/purchaseportal/internal/service/cart"
	"github.com/tranndt/purchaseportal/internal/service/checkout"
	"github.com/tranndt/purchaseportal/internal/service/inventory"
	"github.com/tranndt/purchaseportal/internal/service/ledger"
)

// Services — прикладной слой портала.
type Services struct {
	Cart     *cart.Service
	Checkout *checkout.Processor
	Ledger   *ledger.Service
}

// buildServices собирает сервисы с или без Kafka в зависимости от наличия
// producer. Кэш сводки инвентаря подключается, если есть Redis.
func buildServices(deps *Dependencies, producer *kafka.Producer) *Services {
	adjuster := inventory.NewAdjuster(deps.Products, deps.Logger.WithField("component", "inventory"))

	var processor *checkout.Processor
	var book *ledger.Service
	if producer != nil {
		processor = checkout.NewProcessorWithKafka(
			deps.Products, deps.Carts, deps.Checkout, producer,
			deps.Logger.WithField("component", "checkout"),
		)
		book = ledger.NewServiceWithKafka(
			deps.Orders, deps.Products, adjuster, producer,
			deps.Logger.WithField("component", "ledger"),
		)
	} else {
		processor = checkout.NewProcessor(
			deps.Products, deps.Carts, deps.Checkout,
			deps.Logger.WithField("component", "checkout"),
		)
		book = ledger.NewService(
			deps.Orders, deps.Products, adjuster,
			deps.Logger.WithField("component", "ledger"),
		)
	}

	if deps.Redis != nil {
		book.WithInventoryCache(redisx.NewInventoryCache(
			deps.Redis, deps.Logger.WithField("component", "inventory-cache"),
		))
	}

	return &Services{
		Cart:     cart.NewService(deps.Products, deps.Carts, deps.Logger.WithField("component", "cart")),
		Checkout: processor,
		Ledger:   book,
	}
}
