package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler prices and persists a new order.
// Only customers place orders. Either the fully priced order is stored or
// nothing is.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, factory, logger)
//	cmd, err := NewCreateOrderCommand(customer, restaurantID, lines, address, order.PaymentMethodMpesa)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	factory    *services.OrderFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler that stores orders built by
// factory through a fresh unit of work per call.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	factory *services.OrderFactory,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle prices the order against the catalog, then stores it in one
// transaction. Pricing happens before the transaction opens.
//
// Returns the stored order, errs.ErrAccessDenied for anyone but a customer,
// or the first pricing, validation or storage error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(kernel.RoleCustomer) {
		return nil, errs.NewAccessDeniedError("create", "order")
	}

	created, err := h.factory.Create(
		ctx,
		cmd.Actor().ID(),
		cmd.RestaurantID(),
		cmd.Lines(),
		cmd.Address(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", created.ID().String(),
		"restaurant_id", created.RestaurantID().String(),
		"total", created.Totals().Total().String(),
	)
	return created, nil
}
