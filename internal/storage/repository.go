package storage

import (
	"context"
	"database/sql"

	"github.com/joao-fontenele/order-intake/internal/domain"
)

// OrderRepository is the persistence gateway for created orders. It
// writes through a pooled *sql.DB shared across calls; each Save is a
// single parameter-bound INSERT. Errors are returned to the caller,
// which decides whether to suppress them.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save writes one order and reports the number of affected rows.
// Order ids come from a random source and are not unique by contract,
// so the table carries no primary key constraint on id.
func (r *OrderRepository) Save(ctx context.Context, order domain.Order) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, product_name, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, order.ID, order.CustomerName, order.ProductName, order.Quantity, order.UnitPrice, order.CreatedAt)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// CountByOrderID reports how many rows exist for an order id. Used by
// the audit worker to detect events whose best-effort save was dropped.
func (r *OrderRepository) CountByOrderID(ctx context.Context, orderID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders WHERE id = $1
	`, orderID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
