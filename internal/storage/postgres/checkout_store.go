package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tranndt/purchaseportal/internal/domain"
)

type checkoutStore struct {
	db *sql.DB
}

// NewCheckoutStore создаёт PostgreSQL-реализацию CheckoutStore.
func NewCheckoutStore(store *Store) domain.CheckoutStore {
	return &checkoutStore{db: store.DB()}
}

// CommitCheckout фиксирует checkout одной SQL-транзакцией: вставка всех
// заказов группы и очистка корзины клиента. Откат любой части откатывает всё.
func (s *checkoutStore) CommitCheckout(customerID string, orders []domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, order := range orders {
		var processedAt any
		if order.ProcessedAt != nil {
			processedAt = *order.ProcessedAt
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO orders (
				id, customer_id, product_id, quantity, unit_price_minor, total_minor,
				transaction_id, status, processed_by, processed_at, notes, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		`,
			order.ID, order.CustomerID, order.ProductID, order.Quantity,
			order.UnitPriceMinor, order.TotalMinor, order.TransactionID,
			string(order.Status), order.ProcessedBy, processedAt, order.Notes,
			order.CreatedAt, order.UpdatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("order %s already exists: %w", order.ID, err)
			}
			return fmt.Errorf("insert order: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM cart_items WHERE customer_id = $1
	`, customerID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit checkout: %w", err)
	}

	return nil
}

var _ domain.CheckoutStore = (*checkoutStore)(nil)
