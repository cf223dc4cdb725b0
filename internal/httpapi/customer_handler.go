package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tranndt/purchaseportal/internal/service/ledger"
)

// CustomerHandler обслуживает историю заказов клиента.
type CustomerHandler struct {
	ledger *ledger.Service
}

// NewCustomerHandler создаёт обработчик клиентских запросов.
func NewCustomerHandler(svc *ledger.Service) *CustomerHandler {
	return &CustomerHandler{ledger: svc}
}

func (h *CustomerHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	orders, err := h.ledger.ListCustomerOrders(userFrom(r).ID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrderList(w, orders)
}

func (h *CustomerHandler) ordersByTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transaction_id")
	if transactionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing transaction_id"})
		return
	}

	orders, err := h.ledger.FindByTransaction(userFrom(r).ID, transactionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOrderList(w, orders)
}
