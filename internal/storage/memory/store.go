package memory

import (
	"sync"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// Store держит данные in-memory реализации всех хранилищ ядра: каталог,
// корзины и заказы под одним мьютексом. Репозитории-обёртки разделяют этот
// Store, поэтому межсущностные операции (checkout, условный декремент стока)
// выполняются как единые критические секции — эквивалент SQL-транзакций
// postgres-реализации.
type Store struct {
	mu        sync.RWMutex
	products  map[string]domain.Product
	cartItems map[string]domain.CartItem
	orders    map[string]domain.Order
}

// NewStore возвращает пустое in-memory хранилище.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]domain.Product),
		cartItems: make(map[string]domain.CartItem),
		orders:    make(map[string]domain.Order),
	}
}
