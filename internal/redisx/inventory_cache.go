package redisx

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// InventoryCache кэширует сводку инвентаря (сток + pending по каждому товару).
// Сводка собирается агрегацией по всем pending-заказам и дорогá на больших
// объёмах, поэтому короткий TTL плюс явная инвалидация при обработке заказа.
// Nil-безопасен: без Redis все методы вырождаются в промах.
type InventoryCache struct {
	client *redis.Client
	logger *log.Entry
}

// NewInventoryCache создаёт кэш поверх готового клиента.
func NewInventoryCache(client *redis.Client, logger *log.Entry) *InventoryCache {
	if logger == nil {
		logger = log.New().WithField("component", "inventory-cache")
	}
	return &InventoryCache{client: client, logger: logger}
}

// Get возвращает кэшированную сводку; второй результат false при промахе.
// Ошибки Redis трактуются как промах: кэш не должен ломать чтение.
func (c *InventoryCache) Get(ctx context.Context) ([]domain.StockOverview, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, KeyInventoryOverview).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WithError(err).Warn("inventory cache read failed")
		}
		return nil, false
	}

	var overview []domain.StockOverview
	if err := json.Unmarshal(raw, &overview); err != nil {
		c.logger.WithError(err).Warn("inventory cache payload corrupted")
		return nil, false
	}
	return overview, true
}

// Set сохраняет сводку с TTL.
func (c *InventoryCache) Set(ctx context.Context, overview []domain.StockOverview) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(overview)
	if err != nil {
		c.logger.WithError(err).Warn("inventory cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, KeyInventoryOverview, raw, TTLInventoryOverview).Err(); err != nil {
		c.logger.WithError(err).Warn("inventory cache write failed")
	}
}

// Invalidate сбрасывает сводку; вызывается после approve/reject и checkout,
// когда pending-количества изменились.
func (c *InventoryCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, KeyInventoryOverview).Err(); err != nil {
		c.logger.WithError(err).Warn("inventory cache invalidate failed")
	}
}
