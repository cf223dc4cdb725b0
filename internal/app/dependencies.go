package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/redisx"
	"github.com/tranndt/purchaseportal/internal/storage/memory"
	"github.com/tranndt/purchaseportal/internal/storage/postgres"
)

// Dependencies содержит хранилища и внешние подключения приложения.
type Dependencies struct {
	Products domain.ProductRepository
	Carts    domain.CartRepository
	Orders   domain.OrderRepository
	Checkout domain.CheckoutStore

	// PostgresStore непустой только при postgres-хранилище.
	PostgresStore *postgres.Store
	// Redis непустой, если настроен кэш сводки инвентаря.
	Redis *redis.Client

	Logger *log.Entry
}

// NewDependencies собирает хранилища согласно конфигурации.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{Logger: logger}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
		}
		deps.PostgresStore = store
		deps.Products = postgres.NewProductRepository(store)
		deps.Carts = postgres.NewCartRepository(store)
		deps.Orders = postgres.NewOrderRepository(store)
		deps.Checkout = postgres.NewCheckoutStore(store)
		logger.Info("postgres storage initialized")

	case StorageDriverMemory, "":
		store := memory.NewStore()
		deps.Products = memory.NewProductRepository(store)
		deps.Carts = memory.NewCartRepository(store)
		deps.Orders = memory.NewOrderRepository(store)
		deps.Checkout = memory.NewCheckoutStore(store)
		if cfg.SeedDemoData {
			products, err := memory.SeedDemoProducts(deps.Products)
			if err != nil {
				return nil, fmt.Errorf("seed demo products: %w", err)
			}
			logger.WithField("products", len(products)).Info("demo catalog seeded")
		}
		logger.Info("in-memory storage initialized")

	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}

	if cfg.RedisAddr != "" {
		client, err := redisx.New(cfg.RedisAddr)
		if err != nil {
			// Кэш опционален: без Redis сводка считается на каждый запрос.
			logger.WithError(err).Warn("redis unavailable, inventory cache disabled")
		} else {
			deps.Redis = client
			logger.WithField("addr", cfg.RedisAddr).Info("redis connected")
		}
	}

	return deps, nil
}

// Close освобождает внешние подключения.
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close redis client")
		}
	}
	if d.PostgresStore != nil {
		if err := d.PostgresStore.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
