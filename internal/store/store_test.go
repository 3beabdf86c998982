package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func getOrder(t *testing.T, s *Store, id int64) (*models.Order, error) {
	t.Helper()
	orders, err := s.queryOrders(context.Background(), "get order", `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNotFound
	}
	return &orders[0], nil
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))

	parts, err := s.ListParts(ctx)
	require.NoError(t, err)
	require.Len(t, parts, len(SeedParts))
	for i, p := range parts {
		assert.Equal(t, SeedParts[i].Name, p.Name)
		assert.Equal(t, SeedParts[i].Category, p.Category)
		assert.True(t, SeedParts[i].Price.Equal(p.Price), "price of %s", p.Name)
		assert.Equal(t, 1, p.Version)
	}

	var applied int
	require.NoError(t, s.DB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 3, applied)
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeletePart(ctx, 1))
	require.NoError(t, s.Seed(ctx))

	parts, err := s.ListParts(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, len(SeedParts)-1)
}

func TestPartLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	part := &models.Part{Name: "X", Category: "Y", Price: decimal.NewFromInt(100)}
	id, err := s.CreatePart(ctx, part)
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)

	parts, err := s.ListParts(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, 6)

	require.NoError(t, s.UpdatePart(ctx, &models.Part{ID: id, Name: "X2", Category: "Y", Price: decimal.NewFromInt(150)}))
	got, err := s.GetPart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "X2", got.Name)
	assert.True(t, decimal.NewFromInt(150).Equal(got.Price))
	assert.Equal(t, 2, got.Version)

	require.NoError(t, s.DeletePart(ctx, id))
	_, err = s.GetPart(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	parts, err = s.ListParts(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, 5)

	// Deleting again is a no-op.
	assert.NoError(t, s.DeletePart(ctx, id))
}

func TestUpdatePartVersionCheck(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.GetPart(ctx, 1)
	require.NoError(t, err)

	first := *p
	first.Name = "first"
	require.NoError(t, s.UpdatePart(ctx, &first))

	stale := *p
	stale.Name = "stale"
	assert.ErrorIs(t, s.UpdatePart(ctx, &stale), ErrConflict)

	got, err := s.GetPart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	missing := models.Part{ID: 999, Name: "n", Category: "c", Price: decimal.Zero}
	assert.ErrorIs(t, s.UpdatePart(ctx, &missing), ErrNotFound)
}

func TestCreateOrderCopiesPartName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, "alice", 3)
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA RTX 3060 12GB", o.Item)
	assert.Equal(t, models.StatusPending, o.Status)

	// Renaming the part leaves the order untouched.
	require.NoError(t, s.UpdatePart(ctx, &models.Part{ID: 3, Name: "renamed", Category: "GPU", Price: decimal.NewFromInt(1)}))
	got, err := getOrder(t, s, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA RTX 3060 12GB", got.Item)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateOrderMissingPart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, "alice", 42)
	assert.ErrorIs(t, err, ErrNotFound)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderStatusAndListing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.CreateOrder(ctx, "alice", 1)
	require.NoError(t, err)
	b, err := s.CreateOrder(ctx, "alice", 2)
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, "bob", 1)
	require.NoError(t, err)

	require.NoError(t, s.UpdateOrderStatus(ctx, a.ID, models.StatusCompleted))
	require.NoError(t, s.UpdateOrderStatus(ctx, 999, models.StatusRejected))

	mine, err := s.ListOrdersByCustomer(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, models.StatusCompleted, mine[0].Status)
	assert.Equal(t, b.ID, mine[1].ID)
	assert.Equal(t, models.StatusPending, mine[1].Status)

	all, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	stats, err := s.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalParts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.OrdersByStatus["Completed"])
	assert.Equal(t, 2, stats.OrdersByStatus["Pending"])
}

func TestCreateUserUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "alice", "hash", models.RoleCustomer)
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, "alice", "other", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	n, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	u, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, u.Role)
	assert.Equal(t, "hash", u.Password)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorageErrorsAreNotEmptyResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	s := &Store{DB: db}

	boom := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT id, name, category, price, version FROM pc_parts").WillReturnError(boom)
	mock.ExpectQuery("SELECT id, customer, item, status, created_at FROM orders").WillReturnError(boom)
	mock.ExpectExec("UPDATE orders SET status").WillReturnError(boom)

	parts, err := s.ListParts(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, parts)

	orders, err := s.ListOrders(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, orders)

	err = s.UpdateOrderStatus(context.Background(), 1, models.StatusCompleted)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
