package http_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

// sampleOrder is two portions at 12.50 with the default fee and 10% tax.
func sampleOrder(t *testing.T, customerID, restaurantID kernel.UUID, status order.Status, driver *kernel.UUID) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), 2, kernel.MustMoney("12.50"))
	require.NoError(t, err)
	totals, err := order.NewTotals(line.Amount(), kernel.MustMoney("2.99"), kernel.MustMoney("2.50"))
	require.NoError(t, err)
	address, err := kernel.NewAddress("42 Elm St", "Portland", "OR", "97201", "leave at door")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:            kernel.NewUUID(),
		CustomerID:    customerID,
		RestaurantID:  restaurantID,
		Items:         []order.LineItem{line},
		Totals:        totals,
		Address:       address,
		PaymentMethod: order.PaymentMethodMpesa,
		PaymentStatus: order.PaymentStatusPending,
		Status:        status,
		DriverID:      driver,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	})
	require.NoError(t, err)
	return o
}
