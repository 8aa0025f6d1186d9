package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

// ErrUpdateOrderStatusCommandIsNotConstructed is returned by Validate for a
// zero value.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand asks to move an order to a new status.
// Whether the actor may do so is decided by the handler, not here.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand checks that every field is set and that target
// is a valid status. The errors of all failing fields are joined.
func NewUpdateOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	target order.Status,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		target.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		actor:   actor,
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() kernel.Actor  { return c.actor }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Target() order.Status { return c.target }
