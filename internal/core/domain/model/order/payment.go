package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay. Settlement happens outside
// this service; the order only records the choice.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	// This value (0) helps catch uninitialized PaymentMethod values.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCreditCard is a card payment, wire name "credit_card".
	PaymentMethodCreditCard

	// PaymentMethodPayPal is a PayPal payment, wire name "paypal".
	PaymentMethodPayPal

	// PaymentMethodMpesa is an M-Pesa mobile money payment, wire name "mpesa".
	PaymentMethodMpesa
)

var paymentMethodNames = map[PaymentMethod]string{
	PaymentMethodCreditCard: "credit_card",
	PaymentMethodPayPal:     "paypal",
	PaymentMethodMpesa:      "mpesa",
}

// ParsePaymentMethod maps the wire name of a payment method onto
// PaymentMethod.
//
// Returns:
//   - the PaymentMethod for "credit_card", "paypal" and "mpesa"
//   - (PaymentMethodUnknown, errs.ErrValueIsInvalid) for anything else
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, name := range paymentMethodNames {
		if name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a supported payment method", s),
	)
}

// String returns the wire name, or "unknown" for invalid values.
func (m PaymentMethod) String() string {
	if s, ok := paymentMethodNames[m]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects PaymentMethodUnknown and out-of-range values.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus tracks settlement independently of the fulfilment Status.
// New orders start at PaymentStatusPending, and no status transition
// changes it.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusPending means the payment has not settled yet.
	PaymentStatusPending

	// PaymentStatusCompleted means the payment settled.
	PaymentStatusCompleted

	// PaymentStatusFailed means the payment was declined or reversed.
	PaymentStatusFailed
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentStatusPending:   "pending",
	PaymentStatusCompleted: "completed",
	PaymentStatusFailed:    "failed",
}

// ParsePaymentStatus maps the stored name of a payment status onto PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusNames {
		if name == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the stored name, or "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := paymentStatusNames[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects PaymentStatusUnknown and out-of-range values.
func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
