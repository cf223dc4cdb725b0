package memory

import (
	"sort"
	"time"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// productRepository — in-memory реализация ProductRepository поверх Store.
type productRepository struct {
	store *Store
}

// NewProductRepository возвращает in-memory репозиторий каталога.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{store: store}
}

// Create сохраняет товар каталога. Повторное сохранение перезаписывает запись.
func (r *productRepository) Create(product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.store.products[product.ID] = product
	return nil
}

// Get возвращает товар или ErrProductNotFound.
func (r *productRepository) Get(id string) (domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	product, ok := r.store.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// List возвращает каталог, отсортированный по имени и идентификатору.
func (r *productRepository) List() ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		result = append(result, product)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// DecrementStock атомарно проверяет и списывает qty единиц: проверка и запись
// происходят под одним мьютексом, чужая запись между ними невозможна.
func (r *productRepository) DecrementStock(id string, qty int32) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if product.StockQuantity < qty {
		return &domain.InsufficientStockError{
			ProductID: id,
			Requested: qty,
			Available: product.StockQuantity,
		}
	}

	product.StockQuantity -= qty
	product.UpdatedAt = time.Now().UTC()
	r.store.products[id] = product
	return nil
}

// IncrementStock возвращает qty единиц товара на сток.
func (r *productRepository) IncrementStock(id string, qty int32) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}

	product.StockQuantity += qty
	product.UpdatedAt = time.Now().UTC()
	r.store.products[id] = product
	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
