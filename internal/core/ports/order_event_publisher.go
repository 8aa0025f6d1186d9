package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other services.
//
// Implementations are called after the transaction that changed the order
// has committed. A failed publish is logged by the caller and never undoes
// the change.
type OrderEventPublisher interface {
	// PublishOrderChanged sends the current state of aggregate, keyed by its
	// id so that events of one order stay in order.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
