package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// UnknownName is shown in place of a referenced record that no longer exists.
const UnknownName = "unknown"

// OrderView is an order with its weak references resolved for display.
type OrderView struct {
	ID            kernel.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	PaymentStatus order.PaymentStatus

	Restaurant RestaurantView
	Customer   PartyView
	// Driver is nil until a driver is assigned.
	Driver *PartyView

	Items           []LineItemView
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Tax             kernel.Money
	Total           kernel.Money
	DeliveryAddress kernel.Address

	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RestaurantView is the restaurant an order was placed with, as shown to
// readers of the order.
type RestaurantView struct {
	ID      kernel.UUID
	Name    string
	Phone   string
	Address string
}

// PartyView is a person taking part in the order: the customer or the driver.
type PartyView struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// LineItemView is one priced line. UnitPrice is the price stored at order
// time, not the current menu price; Name is resolved from the catalog and
// is UnknownName once the menu item is gone.
type LineItemView struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
	Amount     kernel.Money
}

func unknownParty(id kernel.UUID) PartyView {
	return PartyView{ID: id, Name: UnknownName, Phone: UnknownName}
}

func unknownRestaurant(id kernel.UUID) RestaurantView {
	return RestaurantView{ID: id, Name: UnknownName, Phone: UnknownName, Address: UnknownName}
}
