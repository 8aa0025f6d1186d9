package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// LineItem is one menu item on an order with the unit price captured when
// the order was placed. It is never repriced: a later change of the menu
// price does not touch orders that already exist.
//
// The menu item itself is a weak reference. Only its identifier is stored,
// and its display name is resolved when the order is viewed.
//
// Example usage:
//
//	line, err := order.NewLineItem(item.ID(), 2, item.Price())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(line.Amount()) // 17.98 for a price of 8.99
type LineItem struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
}

// NewLineItem captures quantity units of a menu item at unitPrice.
//
// Returns:
//   - the LineItem on success
//   - the joined identifier and price validation errors
//   - errs.ValueIsInvalidError if quantity is less than 1
func NewLineItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	if err := errors.Join(menuItemID.Validate(), unitPrice.Validate()); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	return LineItem{menuItemID: menuItemID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (l LineItem) MenuItemID() kernel.UUID { return l.menuItemID }
func (l LineItem) Quantity() int           { return l.quantity }
func (l LineItem) UnitPrice() kernel.Money { return l.unitPrice }

// Amount is unit price times quantity, unrounded.
func (l LineItem) Amount() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
