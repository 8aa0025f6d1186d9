package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Totals are the price components of an order. Subtotal, delivery fee and
// tax are kept exact; only the total is rounded, half-up to cents.
//
// Invariant: total == round_half_up(subtotal + deliveryFee + tax, 2).
// NewTotals establishes it and RestoreTotals checks it, so no other
// combination of components can exist.
//
// Example:
//
//	totals, _ := order.NewTotals(
//	    kernel.MustMoney("21.97"), // subtotal
//	    kernel.MustMoney("2.99"),  // delivery fee
//	    kernel.MustMoney("2.197"), // tax
//	)
//	fmt.Println(totals.Total()) // 27.16
type Totals struct {
	subtotal    kernel.Money
	deliveryFee kernel.Money
	tax         kernel.Money
	total       kernel.Money
}

// NewTotals computes the total from its components.
//
// Returns:
//   - the Totals on success
//   - the joined validation errors of any component that is not constructed
func NewTotals(subtotal, deliveryFee, tax kernel.Money) (Totals, error) {
	if err := errors.Join(subtotal.Validate(), deliveryFee.Validate(), tax.Validate()); err != nil {
		return Totals{}, err
	}
	return Totals{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		tax:         tax,
		total:       subtotal.Add(deliveryFee).Add(tax).RoundToCents(),
	}, nil
}

// RestoreTotals rebuilds persisted totals and rejects a stored total that
// disagrees with its components.
func RestoreTotals(subtotal, deliveryFee, tax, total kernel.Money) (Totals, error) {
	t, err := NewTotals(subtotal, deliveryFee, tax)
	if err != nil {
		return Totals{}, err
	}
	if !t.total.IsEqual(total) {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("stored %s does not match computed %s", total, t.total),
		)
	}
	return t, nil
}

func (t Totals) Subtotal() kernel.Money    { return t.subtotal }
func (t Totals) DeliveryFee() kernel.Money { return t.deliveryFee }
func (t Totals) Tax() kernel.Money         { return t.tax }
func (t Totals) Total() kernel.Money       { return t.total }
