package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// GetOrderQueryHandler loads an order, checks that the actor may read it,
// and resolves restaurant, customer, driver, and menu item names.
//
// A reference that no longer resolves is shown as UnknownName. Any other
// lookup failure is returned to the caller.
type GetOrderQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogReader
	users   ports.UserDirectory
	policy  services.AccessPolicy
}

func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	catalog ports.CatalogReader,
	users ports.UserDirectory,
	policy services.AccessPolicy,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:  orders,
		catalog: catalog,
		users:   users,
		policy:  policy,
	}
}

// Handle returns the resolved view.
//
// Errors:
//   - errs.ErrObjectNotFound for an unknown order
//   - errs.ErrAccessDenied when the actor may not read the order
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	restaurant, err := h.restaurant(ctx, o.RestaurantID())
	if err != nil {
		return OrderView{}, err
	}

	var owner *kernel.UUID
	if restaurant != nil {
		owner = restaurant.OwnerID().Ptr()
	}
	if !h.policy.CanRead(query.Actor(), o, owner) {
		return OrderView{}, errs.NewAccessDeniedError("read", "order "+o.ID().String())
	}

	view := OrderView{
		ID:                    o.ID(),
		Status:                o.Status(),
		PaymentMethod:         o.PaymentMethod(),
		PaymentStatus:         o.PaymentStatus(),
		Restaurant:            unknownRestaurant(o.RestaurantID()),
		Subtotal:              o.Totals().Subtotal(),
		DeliveryFee:           o.Totals().DeliveryFee(),
		Tax:                   o.Totals().Tax(),
		Total:                 o.Totals().Total(),
		DeliveryAddress:       o.Address(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
	if restaurant != nil {
		view.Restaurant = RestaurantView{
			ID:      restaurant.ID(),
			Name:    restaurant.Name(),
			Phone:   restaurant.Phone(),
			Address: restaurant.Address(),
		}
	}

	if view.Customer, err = h.party(ctx, o.CustomerID()); err != nil {
		return OrderView{}, err
	}

	if driverID := o.Driver(); driverID != nil {
		driver, partyErr := h.party(ctx, *driverID)
		if partyErr != nil {
			return OrderView{}, partyErr
		}
		view.Driver = &driver
	}

	if view.Items, err = h.items(ctx, o.Items()); err != nil {
		return OrderView{}, err
	}

	return view, nil
}

func (h GetOrderQueryHandler) restaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	restaurant, err := h.catalog.GetRestaurant(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // dangling reference
	}
	return restaurant, err
}

func (h GetOrderQueryHandler) party(ctx context.Context, id kernel.UUID) (PartyView, error) {
	profile, err := h.users.GetUser(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return unknownParty(id), nil
	}
	if err != nil {
		return PartyView{}, err
	}
	return PartyView{ID: id, Name: profile.Name, Phone: profile.Phone}, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, lines []order.LineItem) ([]LineItemView, error) {
	views := make([]LineItemView, 0, len(lines))
	for _, line := range lines {
		name := UnknownName
		item, err := h.catalog.GetMenuItem(ctx, line.MenuItemID())
		switch {
		case err == nil:
			name = item.Name()
		case !errors.Is(err, errs.ErrObjectNotFound):
			return nil, err
		}

		views = append(views, LineItemView{
			MenuItemID: line.MenuItemID(),
			Name:       name,
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
			Amount:     line.Amount(),
		})
	}
	return views, nil
}
