package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler runs read, validate, conditional write for a
// status change. The write only lands if the stored status is still the one
// that was read; on a lost race the whole cycle is retried once.
//
// If the retry fails validation because the winner of the race already moved
// the order, the caller is told it lost the race (errs.ErrConcurrencyConflict)
// rather than receiving the validation error.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(driver, orderID, order.OnDelivery)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConcurrencyConflict) {
//	    // another driver claimed the order first
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
	machine    services.StatusMachine
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates the handler. catalog resolves the
// owner of the order's restaurant for the access check.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	machine services.StatusMachine,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		machine:    machine,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle applies the transition and returns the stored order.
//
// Errors:
//   - errs.ErrObjectNotFound for an unknown order
//   - errs.ErrAccessDenied when the actor has no capacity on the order
//   - errs.ErrInvalidTransition when the table forbids the move
//   - errs.ErrConcurrencyConflict when the retry also lost, or found the move
//     no longer possible
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.attempt(ctx, cmd)
	if err == nil || !errors.Is(err, errs.ErrConcurrencyConflict) {
		return updated, err
	}

	h.logger.InfoContext(ctx, "status update lost a race, retrying",
		"order_id", cmd.OrderID().String(),
		"target", cmd.Target().String(),
	)

	updated, err = h.attempt(ctx, cmd)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, errs.ErrAccessDenied), errors.Is(err, errs.ErrInvalidTransition):
		return nil, errs.NewConcurrencyConflictErrorWithCause("order", cmd.OrderID().String(), err)
	default:
		return nil, err
	}
}

func (h *UpdateOrderStatusCommandHandler) attempt(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	expected := current.Status()

	owner, err := h.restaurantOwner(ctx, current.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = h.machine.Apply(cmd.Actor(), current, owner, cmd.Target()); err != nil {
		return nil, err
	}

	if err = repo.UpdateIfStatus(ctx, current, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", current.ID().String(),
		"from", expected.String(),
		"to", current.Status().String(),
		"actor_role", cmd.Actor().Role().String(),
	)
	return current, nil
}

// restaurantOwner resolves the owner of a restaurant. A restaurant that no
// longer exists yields nil, so only admins and drivers can still act.
func (h *UpdateOrderStatusCommandHandler) restaurantOwner(ctx context.Context, restaurantID kernel.UUID) (*kernel.UUID, error) {
	restaurant, err := h.catalog.GetRestaurant(ctx, restaurantID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // a dangling reference is not a failure
	}
	if err != nil {
		return nil, err
	}
	owner := restaurant.OwnerID()
	return &owner, nil
}
