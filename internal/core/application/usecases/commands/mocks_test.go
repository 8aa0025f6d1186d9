package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
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

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("42 Elm St", "Portland", "OR", "97201", "leave at door")
	require.NoError(t, err)
	return a
}

func newRestaurant(t *testing.T, owner kernel.UUID) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(kernel.NewUUID(), owner, "Taco Stand", "555-0199", "9 Market St",
		kernel.MustMoney("2.99"), true)
	require.NoError(t, err)
	return r
}

func newMenuItem(t *testing.T, restaurantID kernel.UUID, price string) *catalog.MenuItem {
	t.Helper()
	m, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "Taco", kernel.MustMoney(price), true)
	require.NoError(t, err)
	return m
}

func storedOrder(t *testing.T, restaurantID kernel.UUID, status order.Status, driver *kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 2, kernel.MustMoney("4.50"))
	require.NoError(t, err)
	totals, err := order.NewTotals(kernel.MustMoney("9.00"), kernel.MustMoney("2.99"), kernel.MustMoney("0.90"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:            kernel.NewUUID(),
		CustomerID:    kernel.NewUUID(),
		RestaurantID:  restaurantID,
		Items:         []order.LineItem{item},
		Totals:        totals,
		Address:       newAddress(t),
		PaymentMethod: order.PaymentMethodCreditCard,
		PaymentStatus: order.PaymentStatusPending,
		Status:        status,
		DriverID:      driver,
		CreatedAt:     testNow.Add(-time.Hour),
		UpdatedAt:     testNow.Add(-time.Hour),
	})
	require.NoError(t, err)
	return o
}

// reloaded returns a fresh instance of src as a repository would load it
// after another writer changed its status and driver.
func reloaded(t *testing.T, src *order.Order, status order.Status, driver *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:                    src.ID(),
		CustomerID:            src.CustomerID(),
		RestaurantID:          src.RestaurantID(),
		Items:                 src.Items(),
		Totals:                src.Totals(),
		Address:               src.Address(),
		PaymentMethod:         src.PaymentMethod(),
		PaymentStatus:         src.PaymentStatus(),
		Status:                status,
		DriverID:              driver,
		EstimatedDeliveryTime: src.EstimatedDeliveryTime(),
		CreatedAt:             src.CreatedAt(),
		UpdatedAt:             src.UpdatedAt(),
	})
	require.NoError(t, err)
	return o
}
