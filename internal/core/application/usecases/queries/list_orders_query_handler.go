package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// ListOrdersQueryHandler resolves the actor's scope and reads the matching
// orders. Restaurant owners are scoped to the restaurants the catalog lists
// for them; an owner with no restaurants sees nothing.
type ListOrdersQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogReader
	policy  services.AccessPolicy
}

func NewListOrdersQueryHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogReader,
	policy services.AccessPolicy,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orders:  orders,
		catalog: catalog,
		policy:  policy,
	}
}

// Handle returns the orders in scope, newest first. Filters other than the
// scope are applied only for administrators.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var owned []kernel.UUID
	if query.Actor().Is(kernel.RoleRestaurantOwner) {
		var err error
		owned, err = h.catalog.ListRestaurantIDsByOwner(ctx, query.Actor().ID())
		if err != nil {
			return nil, err
		}
	}

	filter, err := h.policy.ListFilter(query.Actor(), owned)
	if err != nil {
		return nil, err
	}
	filter.Status = query.Status()
	filter.CreatedFrom = query.From()
	filter.CreatedTo = query.To()

	orders, err := h.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
