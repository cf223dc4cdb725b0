package postgres

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tranndt/purchaseportal/internal/domain"
)

func TestProductRepositoryIntegration_CreateGetList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	product := insertProductForIntegrationTest(t, store, 10)

	got, err := repo.Get(product.ID)
	require.NoError(t, err)
	require.Equal(t, product.Name, got.Name)
	require.Equal(t, int32(10), got.StockQuantity)
	require.True(t, got.IsActive)

	_, err = repo.Get(uuid.NewString())
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	insertProductForIntegrationTest(t, store, 5)
	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 2)
}

func TestProductRepositoryIntegration_DecrementStock(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)
	product := insertProductForIntegrationTest(t, store, 5)

	require.NoError(t, repo.DecrementStock(product.ID, 3))

	got, err := repo.Get(product.ID)
	require.NoError(t, err)
	require.Equal(t, int32(2), got.StockQuantity)

	err = repo.DecrementStock(product.ID, 3)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, int32(3), stockErr.Requested)
	require.Equal(t, int32(2), stockErr.Available)

	require.ErrorIs(t, repo.DecrementStock(uuid.NewString(), 1), domain.ErrProductNotFound)
}

// Конкурентные декременты не уводят сток в минус: условный UPDATE
// сериализуется строковой блокировкой Postgres.
func TestProductRepositoryIntegration_DecrementStock_Concurrent(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)
	product := insertProductForIntegrationTest(t, store, 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.DecrementStock(product.ID, 5)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.True(t, domain.IsInsufficientStock(err))
		}
	}
	require.Equal(t, 1, succeeded)

	got, err := repo.Get(product.ID)
	require.NoError(t, err)
	require.Equal(t, int32(0), got.StockQuantity)
}

func TestProductRepositoryIntegration_IncrementStock(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)
	product := insertProductForIntegrationTest(t, store, 2)

	require.NoError(t, repo.IncrementStock(product.ID, 4))

	got, err := repo.Get(product.ID)
	require.NoError(t, err)
	require.Equal(t, int32(6), got.StockQuantity)

	require.ErrorIs(t, repo.IncrementStock(uuid.NewString(), 1), domain.ErrProductNotFound)
}
