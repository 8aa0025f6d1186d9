package catalog_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		r, err := catalog.NewRestaurant(kernel.NewUUID(), owner, "Pasta Place", "555-0100", "1 Main St",
			kernel.MustMoney("3.50"), true)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsOwnedBy(owner))
		assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
		assert.Equal(t, "3.5", r.DeliveryFee().String())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := catalog.NewRestaurant(kernel.NewUUID(), owner, " ", "", "", kernel.ZeroMoney(), true)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("ids are required", func(t *testing.T) {
		_, err := catalog.NewRestaurant(kernel.UUID{}, kernel.UUID{}, "x", "", "", kernel.ZeroMoney(), true)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("nil restaurant is not constructed", func(t *testing.T) {
		var r *catalog.Restaurant
		assert.Equal(t, catalog.ErrRestaurantIsNotConstructed, r.Validate())
	})
}

func TestNewMenuItem(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		m, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "Lasagna", kernel.MustMoney("10.99"), true)

		require.NoError(t, err)
		assert.True(t, m.BelongsTo(restaurantID))
		assert.False(t, m.BelongsTo(kernel.NewUUID()))
		assert.True(t, m.IsAvailable())
	})

	t.Run("price must be constructed", func(t *testing.T) {
		_, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "Lasagna", kernel.Money{}, true)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}
