package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Restaurant), args.Error(1)
}

func (m *MockCatalogReader) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *MockCatalogReader) ListRestaurantIDsByOwner(ctx context.Context, ownerID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetUser(ctx context.Context, id kernel.UUID) (ports.UserProfile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.UserProfile), args.Error(1)
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func actorWithID(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func newRestaurant(t *testing.T, owner kernel.UUID) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(kernel.NewUUID(), owner, "Noodle Bar", "555-0100", "1 Main St",
		kernel.MustMoney("2.99"), true)
	require.NoError(t, err)
	return r
}

func newMenuItem(t *testing.T, restaurantID kernel.UUID, name, price string) *catalog.MenuItem {
	t.Helper()
	m, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, name, kernel.MustMoney(price), true)
	require.NoError(t, err)
	return m
}

// storedOrder restores an order holding one of each item. With no items it
// holds a single line for a menu item the tests never resolve.
func storedOrder(
	t *testing.T,
	customerID, restaurantID kernel.UUID,
	items []*catalog.MenuItem,
	status order.Status,
	driver *kernel.UUID,
) *order.Order {
	t.Helper()
	lines := make([]order.LineItem, 0, len(items))
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		line, err := order.NewLineItem(item.ID(), 1, item.Price())
		require.NoError(t, err)
		lines = append(lines, line)
		subtotal = subtotal.Add(line.Amount())
	}
	if len(lines) == 0 {
		line, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("9.99"))
		require.NoError(t, err)
		lines = append(lines, line)
		subtotal = line.Amount()
	}
	totals, err := order.NewTotals(subtotal, kernel.MustMoney("2.99"), subtotal.MulRate(kernel.MustMoney("0.10").Amount()))
	require.NoError(t, err)
	address, err := kernel.NewAddress("42 Elm St", "Portland", "OR", "97201", "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:            kernel.NewUUID(),
		CustomerID:    customerID,
		RestaurantID:  restaurantID,
		Items:         lines,
		Totals:        totals,
		Address:       address,
		PaymentMethod: order.PaymentMethodPayPal,
		PaymentStatus: order.PaymentStatusPending,
		Status:        status,
		DriverID:      driver,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	})
	require.NoError(t, err)
	return o
}
