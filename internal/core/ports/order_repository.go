// Package ports defines the contracts between the order lifecycle core and
// its infrastructure: persistence, catalog and user lookups, transactions,
// and event publication.
package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. Adding an existing id fails with
	// errs.ErrConcurrencyConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateIfStatus writes the mutable fields of aggregate (status, driver,
	// estimate, updatedAt) only if the stored status still equals expected.
	// When no row matches it fails with errs.ErrConcurrencyConflict, or with
	// errs.ErrObjectNotFound if the order does not exist at all.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// List returns the orders matching filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}

// OrderFilter narrows List. Nil fields do not restrict.
// A non-nil but empty RestaurantIDs matches nothing.
type OrderFilter struct {
	CustomerID    *kernel.UUID
	DriverID      *kernel.UUID
	RestaurantIDs []kernel.UUID
	Status        *order.Status
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}
