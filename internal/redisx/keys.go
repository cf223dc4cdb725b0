package redisx

import "time"

const (
	// Cache сводки инвентаря для менеджерской панели:
	// portal:inventory:overview -> JSON-массив StockOverview
	KeyInventoryOverview = "portal:inventory:overview"
)

var (
	TTLInventoryOverview = 30 * time.Second
)
