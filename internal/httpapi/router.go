package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает HTTP-маршруты портала. Маршруты под /api требуют
// identity-заголовков; проверка прав менеджера живёт глубже, в сервисах.
func NewRouter(catalog *CatalogHandler, cart *CartHandler, manager *ManagerHandler, customer *CustomerHandler, healthz http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	if healthz != nil {
		r.Get("/healthz", healthz)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(identityMiddleware)

		api.Get("/products", catalog.listProducts)

		api.Route("/cart", func(cr chi.Router) {
			cr.Get("/", cart.getCart)
			cr.Post("/add", cart.addItem)
			cr.Put("/update", cart.updateItem)
			cr.Delete("/remove", cart.removeItem)
			cr.Post("/checkout", cart.doCheckout)
		})

		api.Route("/manager", func(mr chi.Router) {
			mr.Get("/orders/pending", manager.listPending)
			mr.Get("/orders", manager.listOrders)
			mr.Post("/orders/process", manager.processOrder)
			mr.Get("/inventory", manager.inventoryOverview)
		})

		api.Get("/customer/orders", customer.listOrders)
		api.Get("/orders/transaction/{transaction_id}", customer.ordersByTransaction)
	})

	return r
}
