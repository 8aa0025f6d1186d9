package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order lifecycle. It holds what the
// customer bought at which price, where it goes, and how far fulfilment has
// progressed.
//
// Invariants:
//   - identity, customer, restaurant, items, totals, address, and payment
//     method never change after creation
//   - at least one line item
//   - total equals the half-up cent rounding of subtotal + delivery fee + tax
//   - status only moves along the lifecycle table (see Status)
//   - updatedAt is refreshed on every successful mutation
//
// Restaurant, customer, driver and menu items are weak references: the
// order stores their identifiers only. Nothing here checks that they still
// exist; the query layer resolves them for display.
//
// Order is not safe for concurrent mutation. Concurrent writers are
// serialised by the repository's compare-and-swap on status.
//
// Example usage:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID,
//	    lines, totals, address, order.PaymentMethodPayPal, now, 45*time.Minute)
//	if err != nil {
//	    return err
//	}
//
//	// later, on behalf of the restaurant owner
//	if err := o.ApplyTransition(kernel.RoleRestaurantOwner, ownerID, order.Accepted, now, window); err != nil {
//	    return err
//	}
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []LineItem
	totals       Totals
	address      kernel.Address

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	status        Status

	driverID              *kernel.UUID
	estimatedDeliveryTime *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order with a pending payment. When
// deliveryWindow is positive the estimated delivery time is set to
// now + deliveryWindow. createdAt and updatedAt are both now.
//
// Pricing is not done here: totals come from the pricing engine and are
// stored as given.
//
// Returns:
//   - the new Order on success
//   - the errors.Join of every failing field: a missing identifier,
//     no line items, unconstructed totals or address, or an invalid
//     payment method
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	items []LineItem,
	totals Totals,
	address kernel.Address,
	paymentMethod PaymentMethod,
	now time.Time,
	deliveryWindow time.Duration,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentStatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setRestaurant(restaurantID),
		o.setItems(items),
		o.setTotals(totals),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if deliveryWindow > 0 {
		o.setEstimatedDeliveryTime(now.Add(deliveryWindow))
	}

	return o, nil
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	Items                 []LineItem
	Totals                Totals
	Address               kernel.Address
	PaymentMethod         PaymentMethod
	PaymentStatus         PaymentStatus
	Status                Status
	DriverID              *kernel.UUID
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RestoreOrder reconstructs an order from storage in any lifecycle state.
// It applies the same field checks as NewOrder and also validates the
// persisted status, payment status and driver.
//
// Returns:
//   - the restored Order on success
//   - the joined validation errors otherwise
//
// This function is intended for repositories only. Use NewOrder for new
// orders.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomer(p.CustomerID),
		o.setRestaurant(p.RestaurantID),
		o.setItems(p.Items),
		o.setTotals(p.Totals),
		o.setAddress(p.Address),
		o.setPaymentMethod(p.PaymentMethod),
		p.PaymentStatus.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.paymentStatus = p.PaymentStatus
	o.status = p.Status

	if p.DriverID != nil {
		if err := p.DriverID.Validate(); err != nil {
			return nil, err
		}
		driver := *p.DriverID
		o.driverID = &driver
	}
	if p.EstimatedDeliveryTime != nil {
		o.setEstimatedDeliveryTime(*p.EstimatedDeliveryTime)
	}

	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for a nil order or one not built
// through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares identity only, as for any aggregate root.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Accessors. Slices and pointers are returned as copies.

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID    { return o.restaurantID }
func (o *Order) Totals() Totals               { return o.totals }
func (o *Order) Address() kernel.Address      { return o.address }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// Items returns a copy of the line items in order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Driver returns the assigned driver, or nil.
func (o *Order) Driver() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

// EstimatedDeliveryTime returns the current estimate, or nil.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	if o.estimatedDeliveryTime == nil {
		return nil
	}
	t := *o.estimatedDeliveryTime
	return &t
}

// HasDriver reports whether id is the assigned driver.
func (o *Order) HasDriver(id kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(id)
}

// ApplyTransition moves the order to target on behalf of actorID acting in
// role, and applies the transition's side effects:
//
//   - entering accepted sets the estimated delivery time to now + deliveryWindow
//   - entering on_delivery as a driver with no driver assigned assigns actorID
//   - updatedAt becomes now
//
// Authorisation of the actor is the caller's concern; this method enforces
// only the lifecycle table for the role.
//
// Returns:
//   - nil when the order moved
//   - errs.ErrInvalidTransition when the table has no such move; the order
//     is left untouched
//   - errs.ErrValueIsInvalid for an invalid target
//
// Example:
//
//	err := o.ApplyTransition(kernel.RoleDriver, driverID, order.OnDelivery, now, window)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order was not ready
//	}
func (o *Order) ApplyTransition(
	role kernel.Role,
	actorID kernel.UUID,
	target Status,
	now time.Time,
	deliveryWindow time.Duration,
) error {
	next, err := o.status.TransitionTo(role, target)
	if err != nil {
		return err
	}

	//nolint:exhaustive // only two targets carry side effects
	switch next {
	case Accepted:
		o.setEstimatedDeliveryTime(now.Add(deliveryWindow))
	case OnDelivery:
		if o.driverID == nil && role == kernel.RoleDriver {
			if err = actorID.Validate(); err != nil {
				return err
			}
			driver := actorID
			o.driverID = &driver
		}
	}

	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurant(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.menuItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("line %d: %w", i, err))
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.total.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("totals", err)
	}
	o.totals = totals
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setEstimatedDeliveryTime(t time.Time) {
	o.estimatedDeliveryTime = &t
}
