package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range order.AllStatuses() {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
	assert.Equal(t, "unknown", order.Status(99).String())
	for _, s := range order.AllStatuses() {
		require.NoError(t, s.Validate())
	}
}

func TestStatus_AllowedTargets(t *testing.T) {
	full := map[order.Status][]order.Status{
		order.Pending:    {order.Accepted, order.Cancelled},
		order.Accepted:   {order.Preparing, order.Cancelled},
		order.Preparing:  {order.Ready, order.Cancelled},
		order.Ready:      {order.OnDelivery},
		order.OnDelivery: {order.Delivered},
		order.Delivered:  nil,
		order.Cancelled:  nil,
	}

	t.Run("acting roles share the full table", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleAdmin, kernel.RoleRestaurantOwner, kernel.RoleDriver} {
			for from, want := range full {
				assert.ElementsMatch(t, want, from.AllowedTargets(role), "%s from %s", role, from)
			}
		}
	})

	t.Run("customer and unknown roles get nothing", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			assert.Empty(t, s.AllowedTargets(kernel.RoleCustomer))
			assert.Empty(t, s.AllowedTargets(kernel.RoleUnknown))
		}
	})

	t.Run("returned slice does not alias the table", func(t *testing.T) {
		targets := order.Pending.AllowedTargets(kernel.RoleAdmin)
		targets[0] = order.Delivered

		assert.Equal(t, order.Accepted, order.Pending.AllowedTargets(kernel.RoleAdmin)[0])
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allowed move", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(kernel.RoleRestaurantOwner, order.Accepted)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)
	})

	t.Run("self transitions are rejected", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			_, err := s.TransitionTo(kernel.RoleAdmin, s)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			assert.True(t, terminal.IsTerminal())
			for _, target := range order.AllStatuses() {
				_, err := terminal.TransitionTo(kernel.RoleAdmin, target)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	})

	t.Run("ready cannot be cancelled", func(t *testing.T) {
		_, err := order.Ready.TransitionTo(kernel.RoleAdmin, order.Cancelled)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "ready -> cancelled")
	})

	t.Run("customer cannot accept", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(kernel.RoleCustomer, order.Accepted)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown target is invalid value", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(kernel.RoleAdmin, order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
