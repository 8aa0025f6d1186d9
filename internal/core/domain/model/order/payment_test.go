package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	for name, want := range map[string]order.PaymentMethod{
		"credit_card": order.PaymentMethodCreditCard,
		"paypal":      order.PaymentMethodPayPal,
		"mpesa":       order.PaymentMethodMpesa,
	} {
		got, err := order.ParsePaymentMethod(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := order.ParsePaymentMethod("cash")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", order.PaymentMethodUnknown.String())
}

func TestParsePaymentStatus(t *testing.T) {
	for _, want := range []order.PaymentStatus{
		order.PaymentStatusPending,
		order.PaymentStatusCompleted,
		order.PaymentStatusFailed,
	} {
		got, err := order.ParsePaymentStatus(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := order.ParsePaymentStatus("refunded")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, order.PaymentStatusUnknown.Validate())
}
