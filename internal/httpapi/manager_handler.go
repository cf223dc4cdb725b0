package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/service/ledger"
)

// ManagerHandler обслуживает менеджерскую панель: очередь pending-заказов,
// их обработку и складской отчёт.
type ManagerHandler struct {
	ledger *ledger.Service
}

// NewManagerHandler создаёт обработчик менеджерской панели.
func NewManagerHandler(svc *ledger.Service) *ManagerHandler {
	return &ManagerHandler{ledger: svc}
}

type processOrderRequest struct {
	OrderID string `json:"order_id"`
	Action  string `json:"action"`
	Notes   string `json:"notes"`
}

type stockOverviewResponse struct {
	ProductID             string `json:"product_id"`
	Name                  string `json:"name"`
	Category              string `json:"category"`
	PriceMinor            int64  `json:"price_minor"`
	StockQuantity         int32  `json:"stock_quantity"`
	IsActive              bool   `json:"is_active"`
	PendingQuantity       int32  `json:"pending_quantity"`
	AvailableAfterPending int32  `json:"available_after_pending"`
}

func (h *ManagerHandler) listPending(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ledger.ListPending(userFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrderList(w, orders)
}

func (h *ManagerHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OrderFilter{
		Status:     domain.OrderStatus(q.Get("status")),
		CustomerID: q.Get("customer_id"),
		ProductID:  q.Get("product_id"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		filter.Limit = limit
	}

	orders, err := h.ledger.ListOrders(userFrom(r), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrderList(w, orders)
}

func (h *ManagerHandler) processOrder(w http.ResponseWriter, r *http.Request) {
	var req processOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}
	if req.OrderID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "order_id is required"})
		return
	}

	order, err := h.ledger.ProcessOrder(userFrom(r), req.OrderID, domain.ProcessAction(req.Action), req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *ManagerHandler) inventoryOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.ledger.InventoryOverview(userFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	rows := make([]stockOverviewResponse, 0, len(overview))
	for _, row := range overview {
		rows = append(rows, stockOverviewResponse{
			ProductID:             row.Product.ID,
			Name:                  row.Product.Name,
			Category:              row.Product.Category,
			PriceMinor:            row.Product.PriceMinor,
			StockQuantity:         row.Product.StockQuantity,
			IsActive:              row.Product.IsActive,
			PendingQuantity:       row.PendingQuantity,
			AvailableAfterPending: row.AvailableAfterPending,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"inventory": rows})
}

func writeOrderList(w http.ResponseWriter, orders []domain.Order) {
	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": resp})
}
