package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/tranndt/purchaseportal/internal/domain"
	"github.com/tranndt/purchaseportal/internal/service/cart"
	"github.com/tranndt/purchaseportal/internal/service/checkout"
)

// CartHandler обслуживает корзину клиента и checkout.
type CartHandler struct {
	carts    *cart.Service
	checkout *checkout.Processor
}

// NewCartHandler создаёт обработчик корзины.
func NewCartHandler(carts *cart.Service, processor *checkout.Processor) *CartHandler {
	return &CartHandler{carts: carts, checkout: processor}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type updateItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int32  `json:"quantity"`
}

type removeItemRequest struct {
	ItemID string `json:"item_id"`
}

type cartItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type cartLineResponse struct {
	Item           cartItemResponse `json:"item"`
	ProductName    string           `json:"product_name"`
	UnitPriceMinor int64            `json:"unit_price_minor"`
	LineTotalMinor int64            `json:"line_total_minor"`
}

type cartResponse struct {
	CustomerID string             `json:"customer_id"`
	Lines      []cartLineResponse `json:"lines"`
	TotalMinor int64              `json:"total_minor"`
}

type orderResponse struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	ProductID      string `json:"product_id"`
	Quantity       int32  `json:"quantity"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	TotalMinor     int64  `json:"total_minor"`
	TransactionID  string `json:"transaction_id"`
	Status         string `json:"status"`
	ProcessedBy    string `json:"processed_by,omitempty"`
	ProcessedAt    string `json:"processed_at,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type checkoutResponse struct {
	TransactionID string          `json:"transaction_id"`
	Orders        []orderResponse `json:"orders"`
	TotalMinor    int64           `json:"total_minor"`
}

func toOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		ProductID:      o.ProductID,
		Quantity:       o.Quantity,
		UnitPriceMinor: o.UnitPriceMinor,
		TotalMinor:     o.TotalMinor,
		TransactionID:  o.TransactionID,
		Status:         string(o.Status),
		ProcessedBy:    o.ProcessedBy,
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt.Format(timeFormat),
	}
	if o.ProcessedAt != nil {
		resp.ProcessedAt = o.ProcessedAt.Format(timeFormat)
	}
	return resp
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "product_id is required"})
		return
	}

	item, err := h.carts.AddItem(userFrom(r).ID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})
}

func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}
	if req.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "item_id is required"})
		return
	}

	item, err := h.carts.UpdateItem(userFrom(r).ID, req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}
	if req.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "item_id is required"})
		return
	}

	if err := h.carts.RemoveItem(userFrom(r).ID, req.ItemID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.GetCart(userFrom(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	lines := make([]cartLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, cartLineResponse{
			Item: cartItemResponse{
				ID:        line.Item.ID,
				ProductID: line.Item.ProductID,
				Quantity:  line.Item.Quantity,
			},
			ProductName:    line.Product.Name,
			UnitPriceMinor: line.Product.PriceMinor,
			LineTotalMinor: line.LineTotalMinor,
		})
	}

	writeJSON(w, http.StatusOK, cartResponse{
		CustomerID: view.CustomerID,
		Lines:      lines,
		TotalMinor: view.TotalMinor,
	})
}

func (h *CartHandler) doCheckout(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.checkout.Checkout(userFrom(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	orders := make([]orderResponse, 0, len(receipt.Orders))
	for _, o := range receipt.Orders {
		orders = append(orders, toOrderResponse(o))
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		TransactionID: receipt.TransactionID,
		Orders:        orders,
		TotalMinor:    receipt.TotalMinor,
	})
}
