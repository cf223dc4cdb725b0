package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// demoProduct — строка демо-каталога.
type demoProduct struct {
	name       string
	category   string
	priceMinor int64
	stock      int32
}

// Демо-каталог для локальной разработки без Postgres.
var demoProducts = []demoProduct{
	{"Laptop", "Electronics", 99999, 15},
	{"Phone", "Electronics", 69999, 25},
	{"Headphones", "Audio", 19999, 50},
	{"Monitor", "Electronics", 29999, 20},
	{"Keyboard", "Accessories", 8999, 30},
}

// SeedDemoProducts наполняет каталог демо-товарами и возвращает их.
func SeedDemoProducts(repo domain.ProductRepository) ([]domain.Product, error) {
	now := time.Now().UTC()
	seeded := make([]domain.Product, 0, len(demoProducts))

	for _, p := range demoProducts {
		product := domain.Product{
			ID:            uuid.NewString(),
			Name:          p.name,
			Category:      p.category,
			PriceMinor:    p.priceMinor,
			StockQuantity: p.stock,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repo.Create(product); err != nil {
			return nil, err
		}
		seeded = append(seeded, product)
	}

	return seeded, nil
}
