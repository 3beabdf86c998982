package service

import (
	"context"
	"log/slog"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/metrics"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/store"
)

type OrderStore interface {
	CreateOrder(ctx context.Context, customer string, partID int64) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customer string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error
	GetDashboardStats(ctx context.Context) (*store.DashboardStats, error)
}

type Orders struct {
	store OrderStore
}

func NewOrders(store OrderStore) *Orders {
	return &Orders{store: store}
}

// CreateOrder places a Pending order for the named part. A missing part yields
// ErrNotFound and writes nothing.
func (o *Orders) CreateOrder(ctx context.Context, customer, partID string) (*models.Order, error) {
	if customer == "" {
		return nil, &ValidationError{Fields: map[string]string{"customer": "Customer is required."}}
	}
	id, err := parseID(partID)
	if err != nil {
		return nil, err
	}
	order, err := o.store.CreateOrder(ctx, customer, id)
	if err != nil {
		return nil, err
	}
	metrics.OrderCreated()
	slog.Info("Order created", "order_id", order.ID, "customer", customer, "item", order.Item)
	return order, nil
}

func (o *Orders) ListAll(ctx context.Context) ([]models.Order, error) {
	return o.store.ListOrders(ctx)
}

func (o *Orders) ListForCustomer(ctx context.Context, username string) ([]models.Order, error) {
	return o.store.ListOrdersByCustomer(ctx, username)
}

// SetStatus records an admin decision. Decisions may be revised between
// Completed and Rejected but an order never returns to Pending.
// Unknown order ids succeed without effect.
func (o *Orders) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if status != models.StatusCompleted && status != models.StatusRejected {
		return &ValidationError{Fields: map[string]string{"status": "Invalid status."}}
	}
	id, err := parseID(orderID)
	if err != nil {
		return err
	}
	if err := o.store.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}
	metrics.OrderDecision(status)
	slog.Info("Order status updated", "order_id", id, "status", status)
	return nil
}

func (o *Orders) Approve(ctx context.Context, orderID string) error {
	return o.SetStatus(ctx, orderID, models.StatusCompleted)
}

func (o *Orders) Reject(ctx context.Context, orderID string) error {
	return o.SetStatus(ctx, orderID, models.StatusRejected)
}

func (o *Orders) Stats(ctx context.Context) (*store.DashboardStats, error) {
	return o.store.GetDashboardStats(ctx)
}
