package services

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// LineRequest is a menu item id and quantity as submitted by a customer.
// Client-side prices are never part of a request.
type LineRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// OrderFactory turns a validated order request into a pending Order priced
// by the PricingEngine against live catalog data.
//
// OrderFactory is safe for concurrent use; it keeps no per-call state.
type OrderFactory struct {
	catalog  ports.CatalogReader
	pricing  PricingEngine
	workflow WorkflowConfig
	now      func() time.Time
}

// NewOrderFactory wires the factory. now defaults to time.Now.
//
// Returns:
//   - the factory on success
//   - errs.ErrValueIsRequired for a nil catalog
//   - the joined validation errors of pricing and workflow configuration
func NewOrderFactory(
	catalog ports.CatalogReader,
	pricing PricingEngine,
	workflow WorkflowConfig,
	now func() time.Time,
) (*OrderFactory, error) {
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	if err := errors.Join(pricing.config.Validate(), workflow.Validate()); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &OrderFactory{catalog: catalog, pricing: pricing, workflow: workflow, now: now}, nil
}

// Create resolves the restaurant and every menu item, prices the order, and
// returns it in pending state. Nothing is persisted here.
//
// Errors:
//   - errs.ErrObjectNotFound for an unknown restaurant or menu item
//   - errs.ErrValueIsInvalid / errs.ErrValueIsRequired for bad lines
func (f *OrderFactory) Create(
	ctx context.Context,
	customerID, restaurantID kernel.UUID,
	lines []LineRequest,
	address kernel.Address,
	paymentMethod order.PaymentMethod,
) (*order.Order, error) {
	restaurant, err := f.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	resolved := make([]QuoteLine, 0, len(lines))
	for _, line := range lines {
		item, itemErr := f.catalog.GetMenuItem(ctx, line.MenuItemID)
		if itemErr != nil {
			return nil, itemErr
		}
		resolved = append(resolved, QuoteLine{Item: item, Quantity: line.Quantity})
	}

	quote, err := f.pricing.Quote(restaurant, resolved)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		kernel.NewUUID(),
		customerID,
		restaurant.ID(),
		quote.Items,
		quote.Totals,
		address,
		paymentMethod,
		f.now().UTC(),
		f.workflow.DeliveryWindow(),
	)
}
