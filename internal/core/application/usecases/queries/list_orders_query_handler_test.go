package queries_test

import (
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("customer is scoped to own orders", func(t *testing.T) {
		ctx := t.Context()
		repo, reader := new(MockOrderRepository), new(MockCatalogReader)
		handler := queries.NewListOrdersQueryHandler(repo, reader, services.NewAccessPolicy())
		customer := newActor(t, kernel.RoleCustomer)
		mine := storedOrder(t, customer.ID(), restaurantID, nil, order.Pending, nil)

		repo.On("List", ctx, mock.MatchedBy(func(f ports.OrderFilter) bool {
			return f.CustomerID != nil && f.CustomerID.IsEqual(customer.ID()) &&
				f.DriverID == nil && f.RestaurantIDs == nil && f.Status == nil
		})).Return([]*order.Order{mine}, nil).Once()

		q, err := queries.NewListOrdersQuery(customer, nil, nil, nil)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, []*order.Order{mine}, result)
		reader.AssertNotCalled(t, "ListRestaurantIDsByOwner", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("owner is scoped to owned restaurants", func(t *testing.T) {
		ctx := t.Context()
		repo, reader := new(MockOrderRepository), new(MockCatalogReader)
		handler := queries.NewListOrdersQueryHandler(repo, reader, services.NewAccessPolicy())
		owner := newActor(t, kernel.RoleRestaurantOwner)
		owned := []kernel.UUID{restaurantID, kernel.NewUUID()}

		reader.On("ListRestaurantIDsByOwner", ctx, owner.ID()).Return(owned, nil).Once()
		repo.On("List", ctx, ports.OrderFilter{RestaurantIDs: owned}).Return([]*order.Order{}, nil).Once()

		q, err := queries.NewListOrdersQuery(owner, nil, nil, nil)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.Empty(t, result)
		repo.AssertExpectations(t)
		reader.AssertExpectations(t)
	})

	t.Run("owner without restaurants matches nothing", func(t *testing.T) {
		ctx := t.Context()
		repo, reader := new(MockOrderRepository), new(MockCatalogReader)
		handler := queries.NewListOrdersQueryHandler(repo, reader, services.NewAccessPolicy())
		owner := newActor(t, kernel.RoleRestaurantOwner)

		reader.On("ListRestaurantIDsByOwner", ctx, owner.ID()).Return(nil, nil).Once()
		repo.On("List", ctx, mock.MatchedBy(func(f ports.OrderFilter) bool {
			return f.RestaurantIDs != nil && len(f.RestaurantIDs) == 0
		})).Return(nil, nil).Once()

		q, err := queries.NewListOrdersQuery(owner, nil, nil, nil)
		require.NoError(t, err)

		result, err := handler.Handle(ctx, q)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("driver is scoped to assigned orders", func(t *testing.T) {
		ctx := t.Context()
		repo, reader := new(MockOrderRepository), new(MockCatalogReader)
		handler := queries.NewListOrdersQueryHandler(repo, reader, services.NewAccessPolicy())
		driver := newActor(t, kernel.RoleDriver)
		driverID := driver.ID()

		repo.On("List", ctx, ports.OrderFilter{DriverID: &driverID}).Return([]*order.Order{}, nil).Once()

		q, err := queries.NewListOrdersQuery(driver, nil, nil, nil)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, q)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("admin filters pass through", func(t *testing.T) {
		ctx := t.Context()
		repo, reader := new(MockOrderRepository), new(MockCatalogReader)
		handler := queries.NewListOrdersQueryHandler(repo, reader, services.NewAccessPolicy())
		status := order.Delivered
		from := testNow.Add(-24 * time.Hour)

		repo.On("List", ctx, ports.OrderFilter{Status: &status, CreatedFrom: &from}).
			Return([]*order.Order{}, nil).Once()

		q, err := queries.NewListOrdersQuery(newActor(t, kernel.RoleAdmin), &status, &from, nil)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, q)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("catalog failure", func(t *testing.T) {
		ctx := t.Context()
		repo, reader := new(MockOrderRepository), new(MockCatalogReader)
		handler := queries.NewListOrdersQueryHandler(repo, reader, services.NewAccessPolicy())
		owner := newActor(t, kernel.RoleRestaurantOwner)
		boom := errors.New("catalog unavailable")

		reader.On("ListRestaurantIDsByOwner", ctx, owner.ID()).Return(nil, boom).Once()

		q, err := queries.NewListOrdersQuery(owner, nil, nil, nil)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, q)

		require.ErrorIs(t, err, boom)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("not constructed", func(t *testing.T) {
		handler := queries.NewListOrdersQueryHandler(new(MockOrderRepository), new(MockCatalogReader), services.NewAccessPolicy())

		_, err := handler.Handle(t.Context(), queries.ListOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
		assert.NotErrorIs(t, err, errs.ErrAccessDenied)
	})
}
