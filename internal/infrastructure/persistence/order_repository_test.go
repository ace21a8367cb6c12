package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fashionstop/storefront/internal/domain/order"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, id string, createdAt time.Time, prices ...int64) *order.Order {
	t.Helper()
	items := make([]order.Item, len(prices))
	for i, p := range prices {
		items[i] = order.Item{
			ProductID: "p" + string(rune('1'+i)),
			Name:      "Shoe",
			Brand:     "Nike",
			Price:     decimal.NewFromInt(p),
			Quantity:  1,
			Size:      "9",
		}
	}
	o, err := order.NewOrder(id, order.Customer{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Address: "12 MG Road",
		City:    "Pune",
		Pincode: "411001",
	}, items)
	require.NoError(t, err)
	o.CreatedAt = createdAt
	o.UpdatedAt = createdAt
	return o
}

func TestGormOrderRepository_SaveAndFind(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))
	ctx := context.Background()

	id := repo.NextID()
	assert.True(t, strings.HasPrefix(id, "ORD-"))
	assert.Len(t, id, len("ORD-")+shared.OrderIDLength)

	o := newTestOrder(t, id, time.Now(), 1999, 2499)
	require.NoError(t, repo.Save(ctx, o))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, o.Customer, found.Customer)
	assert.Equal(t, order.StatusPending, found.Status)
	assert.Equal(t, order.PaymentMethodCOD, found.PaymentMethod)
	assert.True(t, found.Total.Equal(decimal.NewFromInt(4498)))
	require.Len(t, found.Items, 2)
	assert.Equal(t, "p1", found.Items[0].ProductID)
	assert.Equal(t, "p2", found.Items[1].ProductID)
	assert.Equal(t, "9", found.Items[0].Size)
}

func TestGormOrderRepository_SaveStatusKeepsItems(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))
	ctx := context.Background()

	o := newTestOrder(t, "ORD-aaaaaaaa", time.Now(), 1999, 2499)
	require.NoError(t, repo.Save(ctx, o))

	require.NoError(t, o.SetStatus(order.StatusShipped))
	require.NoError(t, repo.Save(ctx, o))

	found, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, found.Status)
	assert.Len(t, found.Items, 2)
}

func TestGormOrderRepository_FindByID_NotFound(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "ORD-missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormOrderRepository_FindRecent(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"ORD-00000001", "ORD-00000002", "ORD-00000003"} {
		require.NoError(t, repo.Save(ctx, newTestOrder(t, id, base.Add(time.Duration(i)*time.Hour), 100)))
	}

	orders, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-00000003", orders[0].ID)
	assert.Equal(t, "ORD-00000002", orders[1].ID)
	assert.Len(t, orders[0].Items, 1)

	all, err := repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGormOrderRepository_Stats(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))
	ctx := context.Background()

	revenue, err := repo.SumRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())

	now := time.Now()
	pending := newTestOrder(t, "ORD-00000001", now, 1999)
	delivered := newTestOrder(t, "ORD-00000002", now, 2499, 1000)
	require.NoError(t, delivered.SetStatus(order.StatusDelivered))
	cancelled := newTestOrder(t, "ORD-00000003", now, 5000)
	require.NoError(t, cancelled.SetStatus(order.StatusCancelled))
	for _, o := range []*order.Order{pending, delivered, cancelled} {
		require.NoError(t, repo.Save(ctx, o))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	pendingCount, err := repo.CountByStatus(ctx, order.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pendingCount)

	revenue, err = repo.SumRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(5498)), revenue.String())
}
