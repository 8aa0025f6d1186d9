package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// AccessPolicy decides who may read and who may advance an order.
//
// Restaurant ownership is passed in as the owner's identity (nil when the
// restaurant can no longer be resolved) so that the policy itself stays free
// of I/O.
//
// AccessPolicy has no state and is safe for concurrent use.
//
// Example usage:
//
//	policy := services.NewAccessPolicy()
//	if !policy.CanRead(actor, o, restaurant.OwnerID().Ptr()) {
//	    return errs.NewAccessDeniedError("read", "order")
//	}
type AccessPolicy struct{}

// NewAccessPolicy returns the policy. It exists so that wiring code reads the
// same as for the other domain services.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanRead grants administrators, the ordering customer, the owner of the
// order's restaurant, and the assigned driver.
//
// Returns:
//   - true if actor may see o
//   - false otherwise; callers report this as access denied
func (AccessPolicy) CanRead(actor kernel.Actor, o *order.Order, restaurantOwner *kernel.UUID) bool {
	id := actor.ID()
	switch {
	case actor.Is(kernel.RoleAdmin):
		return true
	case o.CustomerID().IsEqual(id):
		return true
	case restaurantOwner != nil && restaurantOwner.IsEqual(id):
		return true
	default:
		return o.HasDriver(id)
	}
}

// TransitionCapacity reports the role whose transition table row applies
// when actor asks to move o to target, and whether the actor may act at all.
//
//   - administrators act as admin
//   - the restaurant owner acts as restaurant_owner
//   - the assigned driver acts as driver
//   - a driver may claim a ready order with no driver by requesting
//     on_delivery
//
// Everyone else, customers included, has no capacity.
//
// Returns:
//   - (role, true) where role selects the transition table row to consult
//   - (kernel.RoleUnknown, false) when the actor may not act on o at all
//
// Example:
//
//	role, ok := policy.TransitionCapacity(driver, readyOrder, nil, order.OnDelivery)
//	// role == kernel.RoleDriver, ok == true
func (AccessPolicy) TransitionCapacity(
	actor kernel.Actor,
	o *order.Order,
	restaurantOwner *kernel.UUID,
	target order.Status,
) (kernel.Role, bool) {
	id := actor.ID()
	switch {
	case actor.Is(kernel.RoleAdmin):
		return kernel.RoleAdmin, true
	case restaurantOwner != nil && restaurantOwner.IsEqual(id):
		return kernel.RoleRestaurantOwner, true
	case o.HasDriver(id):
		return kernel.RoleDriver, true
	case actor.Is(kernel.RoleDriver) && o.Driver() == nil &&
		o.Status() == order.Ready && target == order.OnDelivery:
		return kernel.RoleDriver, true
	default:
		return kernel.RoleUnknown, false
	}
}

// ListFilter converts the actor into the scope of orders it may list.
// ownedRestaurants is consulted only for restaurant owners.
//
// Returns:
//   - customers: their own orders
//   - restaurant owners: orders of the restaurants in ownedRestaurants;
//     an empty slice yields an empty listing
//   - drivers: orders assigned to them
//   - admins: an empty filter, i.e. every order
//   - errs.ErrAccessDenied for any other role
func (AccessPolicy) ListFilter(actor kernel.Actor, ownedRestaurants []kernel.UUID) (ports.OrderFilter, error) {
	id := actor.ID()

	//nolint:exhaustive // unknown roles are denied below
	switch actor.Role() {
	case kernel.RoleCustomer:
		return ports.OrderFilter{CustomerID: &id}, nil
	case kernel.RoleRestaurantOwner:
		owned := make([]kernel.UUID, len(ownedRestaurants))
		copy(owned, ownedRestaurants)
		return ports.OrderFilter{RestaurantIDs: owned}, nil
	case kernel.RoleDriver:
		return ports.OrderFilter{DriverID: &id}, nil
	case kernel.RoleAdmin:
		return ports.OrderFilter{}, nil
	}
	return ports.OrderFilter{}, errs.NewAccessDeniedError("list", "orders")
}
