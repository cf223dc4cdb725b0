package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tranndt/purchaseportal/internal/domain"
)

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository создаёт PostgreSQL-реализацию CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{db: store.DB()}
}

const cartItemColumns = `id, customer_id, product_id, quantity, created_at, updated_at`

func (r *cartRepository) GetItem(customerID, itemID string) (domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	// customer_id в WHERE: чужая позиция неотличима от отсутствующей.
	var item domain.CartItem
	err := r.db.QueryRowContext(ctx, `
		SELECT `+cartItemColumns+`
		FROM cart_items
		WHERE id = $1 AND customer_id = $2
	`, itemID, customerID).Scan(
		&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartItem{}, domain.ErrCartItemNotFound
		}
		return domain.CartItem{}, fmt.Errorf("select cart item: %w", err)
	}

	return item, nil
}

func (r *cartRepository) FindByProduct(customerID, productID string) (domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var item domain.CartItem
	err := r.db.QueryRowContext(ctx, `
		SELECT `+cartItemColumns+`
		FROM cart_items
		WHERE customer_id = $1 AND product_id = $2
	`, customerID, productID).Scan(
		&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartItem{}, domain.ErrCartItemNotFound
		}
		return domain.CartItem{}, fmt.Errorf("find cart item by product: %w", err)
	}

	return item, nil
}

func (r *cartRepository) ListByCustomer(customerID string) ([]domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cartItemColumns+`
		FROM cart_items
		WHERE customer_id = $1
		ORDER BY created_at ASC, id ASC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart item rows: %w", err)
	}

	return items, nil
}

// Upsert опирается на UNIQUE (customer_id, product_id): конфликт по паре
// перезаписывает количество существующей позиции, сохраняя её id.
func (r *cartRepository) Upsert(item domain.CartItem) (domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var saved domain.CartItem
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (id, customer_id, product_id, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (customer_id, product_id) DO UPDATE
		SET quantity = EXCLUDED.quantity,
		    updated_at = EXCLUDED.updated_at
		RETURNING `+cartItemColumns+`
	`,
		item.ID, item.CustomerID, item.ProductID, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	).Scan(
		&saved.ID, &saved.CustomerID, &saved.ProductID, &saved.Quantity,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("upsert cart item: %w", err)
	}

	return saved, nil
}

func (r *cartRepository) Delete(customerID, itemID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1 AND customer_id = $2
	`, itemID, customerID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCartItemNotFound
	}

	return nil
}

var _ domain.CartRepository = (*cartRepository)(nil)
