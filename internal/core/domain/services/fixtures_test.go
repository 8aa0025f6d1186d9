package services_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 10, 18, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

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

func newRestaurant(t *testing.T, owner kernel.UUID, fee string) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(kernel.NewUUID(), owner, "Pasta Place", "555-0100", "1 Main St",
		kernel.MustMoney(fee), true)
	require.NoError(t, err)
	return r
}

func newMenuItem(t *testing.T, restaurantID kernel.UUID, price string, available bool) *catalog.MenuItem {
	t.Helper()
	m, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "Dish "+price, kernel.MustMoney(price), available)
	require.NoError(t, err)
	return m
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "")
	require.NoError(t, err)
	return a
}

// newOrderIn builds an order for customer in the given status.
func newOrderIn(t *testing.T, customer kernel.UUID, status order.Status, driver *kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 1, kernel.MustMoney("9.50"))
	require.NoError(t, err)
	totals, err := order.NewTotals(kernel.MustMoney("9.50"), kernel.MustMoney("2.99"), kernel.MustMoney("0.95"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:            kernel.NewUUID(),
		CustomerID:    customer,
		RestaurantID:  kernel.NewUUID(),
		Items:         []order.LineItem{item},
		Totals:        totals,
		Address:       newAddress(t),
		PaymentMethod: order.PaymentMethodPayPal,
		PaymentStatus: order.PaymentStatusPending,
		Status:        status,
		DriverID:      driver,
		CreatedAt:     fixedNow.Add(-time.Hour),
		UpdatedAt:     fixedNow.Add(-time.Hour),
	})
	require.NoError(t, err)
	return o
}

func newInactiveRestaurant(t *testing.T) (*catalog.Restaurant, error) {
	t.Helper()
	return catalog.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Closed Diner", "", "",
		kernel.MustMoney("2.00"), false)
}
