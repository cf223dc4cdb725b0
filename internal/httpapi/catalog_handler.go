package httpapi

import (
	"net/http"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// CatalogHandler отдаёт каталог товаров витрине.
type CatalogHandler struct {
	products domain.ProductRepository
}

// NewCatalogHandler создаёт обработчик каталога.
func NewCatalogHandler(products domain.ProductRepository) *CatalogHandler {
	return &CatalogHandler{products: products}
}

type productResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	PriceMinor    int64  `json:"price_minor"`
	StockQuantity int32  `json:"stock_quantity"`
}

// listProducts возвращает активные товары; снятые с продажи витрине не видны.
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		resp = append(resp, productResponse{
			ID:            p.ID,
			Name:          p.Name,
			Category:      p.Category,
			PriceMinor:    p.PriceMinor,
			StockQuantity: p.StockQuantity,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"products": resp})
}
