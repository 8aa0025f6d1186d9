package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned by Validate for a zero value.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a customer's request to place an order with one
// restaurant. It carries no prices: those come from the catalog.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	restaurantID  kernel.UUID
	lines         []services.LineRequest
	address       kernel.Address
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the shape of the request. Catalog checks
// (existence, ownership, availability) happen in the handler.
func NewCreateOrderCommand(
	actor kernel.Actor,
	restaurantID kernel.UUID,
	lines []services.LineRequest,
	address kernel.Address,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setAddress(address),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor                { return c.actor }
func (c CreateOrderCommand) RestaurantID() kernel.UUID          { return c.restaurantID }
func (c CreateOrderCommand) Address() kernel.Address            { return c.address }
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

func (c CreateOrderCommand) Lines() []services.LineRequest {
	out := make([]services.LineRequest, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.LineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("menuItemId", fmt.Errorf("line %d: %w", i, err))
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("line %d: %d is less than 1", i, line.Quantity),
			)
		}
	}
	c.lines = make([]services.LineRequest, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
