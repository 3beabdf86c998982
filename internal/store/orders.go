package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
)

const orderColumns = `id, customer, item, status, created_at`

// CreateOrder inserts a Pending order for customer, copying the current name of
// the part. It returns ErrNotFound when the part does not exist.
func (s *Store) CreateOrder(ctx context.Context, customer string, partID int64) (*models.Order, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO orders (customer, item, status, created_at)
		SELECT ?, name, ?, ? FROM pc_parts WHERE id = ?
		RETURNING id, item
	`
	o := models.Order{Customer: customer, Status: models.StatusPending, CreatedAt: now}
	err := s.DB.QueryRowContext(ctx, query, customer, string(models.StatusPending), now, partID).Scan(&o.ID, &o.Item)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("create order", err)
	}
	return &o, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.queryOrders(ctx, "list orders", `SELECT `+orderColumns+` FROM orders ORDER BY id`)
}

func (s *Store) ListOrdersByCustomer(ctx context.Context, customer string) ([]models.Order, error) {
	return s.queryOrders(ctx, "list customer orders",
		`SELECT `+orderColumns+` FROM orders WHERE customer = ? ORDER BY id`, customer)
}

// UpdateOrderStatus sets status unconditionally; a missing id is not an error.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`
	if _, err := s.DB.ExecContext(ctx, query, string(status), id); err != nil {
		return wrap("update order status", err)
	}
	return nil
}

func (s *Store) queryOrders(ctx context.Context, op, query string, args ...any) ([]models.Order, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var created sql.NullTime
		if err := rows.Scan(&o.ID, &o.Customer, &o.Item, &o.Status, &created); err != nil {
			return nil, wrap(op, err)
		}
		o.CreatedAt = created.Time
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return orders, nil
}
