package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("row locked")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("orderId", "42"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 42",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("orderId", "42", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: orderId, ID is: 42 (cause: row locked)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("paymentMethod"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: paymentMethod",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("from", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: from (cause: row locked)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 100",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("taxRate", "1.5", 0, 1, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 1.5 is taxRate, min value is 0, max value is 1 (cause: row locked)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("items"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: items",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("street", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: street (cause: row locked)",
		},
		{
			name:     "access denied",
			err:      errs.NewAccessDeniedError("read", "order"),
			sentinel: errs.ErrAccessDenied,
			message:  "access denied: cannot read order",
		},
		{
			name:     "access denied with cause",
			err:      errs.NewAccessDeniedErrorWithCause("update", "order status", cause),
			sentinel: errs.ErrAccessDenied,
			message:  "access denied: cannot update order status (cause: row locked)",
		},
		{
			name:     "invalid transition",
			err:      errs.NewInvalidTransitionError("pending", "delivered"),
			sentinel: errs.ErrInvalidTransition,
			message:  "transition is not allowed: pending -> delivered",
		},
		{
			name:     "invalid transition with cause",
			err:      errs.NewInvalidTransitionErrorWithCause("cancelled", "accepted", cause),
			sentinel: errs.ErrInvalidTransition,
			message:  "transition is not allowed: cancelled -> accepted (cause: row locked)",
		},
		{
			name:     "conflict",
			err:      errs.NewConcurrencyConflictError("order", "42"),
			sentinel: errs.ErrConcurrencyConflict,
			message:  "concurrent modification: order 42",
		},
		{
			name:     "conflict with cause",
			err:      errs.NewConcurrencyConflictErrorWithCause("order", "42", cause),
			sentinel: errs.ErrConcurrencyConflict,
			message:  "concurrent modification: order 42 (cause: row locked)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("handler: %w", tt.err), tt.sentinel)
		})
	}
}

func TestErrorFields(t *testing.T) {
	cause := errors.New("status changed")

	conflict := errs.NewConcurrencyConflictErrorWithCause("order", "42", cause)
	assert.Equal(t, "order", conflict.ParamName)
	assert.Equal(t, "42", conflict.ID)
	assert.Equal(t, cause, conflict.Cause)

	transition := errs.NewInvalidTransitionError("ready", "cancelled")
	assert.Equal(t, "ready", transition.From)
	assert.Equal(t, "cancelled", transition.To)
	require.NoError(t, transition.Cause)

	denied := errs.NewAccessDeniedError("read", "order")
	assert.Equal(t, "read", denied.Action)
	assert.Equal(t, "order", denied.Resource)
}

func TestOutOfRange_FlattensNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("instructions", "ring\ntwice", 0, 10)

	assert.Contains(t, err.Error(), "ring twice")
	assert.NotContains(t, err.Error(), "\n")
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrAccessDenied,
		errs.ErrInvalidTransition,
		errs.ErrConcurrencyConflict,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
