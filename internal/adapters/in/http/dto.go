package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	Street       string `json:"street"                 validate:"required"`
	City         string `json:"city"                   validate:"required"`
	State        string `json:"state"                  validate:"required"`
	PostalCode   string `json:"postalCode"             validate:"required"`
	Instructions string `json:"instructions,omitempty"`
}

type NewOrderItem struct {
	MenuItemID openapi_types.UUID `json:"menuItemId" validate:"required"`
	Quantity   int                `json:"quantity"   validate:"required,min=1"`
}

type NewOrder struct {
	RestaurantID    openapi_types.UUID `json:"restaurantId"    validate:"required"`
	Items           []NewOrderItem     `json:"items"           validate:"required,min=1,dive"`
	DeliveryAddress Address            `json:"deliveryAddress"`
	PaymentMethod   string             `json:"paymentMethod"   validate:"required,oneof=credit_card paypal mpesa"`
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

// ListOrdersParams are the optional query parameters of GET /orders.
type ListOrdersParams struct {
	Status *string    `form:"status" json:"status,omitempty"`
	From   *time.Time `form:"from"   json:"from,omitempty"`
	To     *time.Time `form:"to"     json:"to,omitempty"`
}

type OrderItem struct {
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Quantity   int                `json:"quantity"`
	UnitPrice  string             `json:"unitPrice"`
}

type Order struct {
	ID                    openapi_types.UUID  `json:"id"`
	CustomerID            openapi_types.UUID  `json:"customerId"`
	RestaurantID          openapi_types.UUID  `json:"restaurantId"`
	DriverID              *openapi_types.UUID `json:"driverId,omitempty"`
	Items                 []OrderItem         `json:"items"`
	Subtotal              string              `json:"subtotal"`
	DeliveryFee           string              `json:"deliveryFee"`
	Tax                   string              `json:"tax"`
	Total                 string              `json:"total"`
	DeliveryAddress       Address             `json:"deliveryAddress"`
	PaymentMethod         string              `json:"paymentMethod"`
	PaymentStatus         string              `json:"paymentStatus"`
	Status                string              `json:"status"`
	EstimatedDeliveryTime *time.Time          `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}

type Party struct {
	ID    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Phone string             `json:"phone"`
}

type RestaurantSummary struct {
	ID      openapi_types.UUID `json:"id"`
	Name    string             `json:"name"`
	Phone   string             `json:"phone"`
	Address string             `json:"address"`
}

type OrderViewItem struct {
	MenuItemID openapi_types.UUID `json:"menuItemId"`
	Name       string             `json:"name"`
	Quantity   int                `json:"quantity"`
	UnitPrice  string             `json:"unitPrice"`
	Amount     string             `json:"amount"`
}

type OrderView struct {
	ID                    openapi_types.UUID `json:"id"`
	Status                string             `json:"status"`
	PaymentMethod         string             `json:"paymentMethod"`
	PaymentStatus         string             `json:"paymentStatus"`
	Restaurant            RestaurantSummary  `json:"restaurant"`
	Customer              Party              `json:"customer"`
	Driver                *Party             `json:"driver,omitempty"`
	Items                 []OrderViewItem    `json:"items"`
	Subtotal              string             `json:"subtotal"`
	DeliveryFee           string             `json:"deliveryFee"`
	Tax                   string             `json:"tax"`
	Total                 string             `json:"total"`
	DeliveryAddress       Address            `json:"deliveryAddress"`
	EstimatedDeliveryTime *time.Time         `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

func toAddress(a kernel.Address) Address {
	return Address{
		Street:       a.Street(),
		City:         a.City(),
		State:        a.State(),
		PostalCode:   a.PostalCode(),
		Instructions: a.Instructions(),
	}
}

func toOrder(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  formatMoney(item.UnitPrice()),
		})
	}

	var driverID *openapi_types.UUID
	if driver := o.Driver(); driver != nil {
		id := driver.Bytes()
		driverID = &id
	}

	totals := o.Totals()
	return Order{
		ID:                    o.ID().Bytes(),
		CustomerID:            o.CustomerID().Bytes(),
		RestaurantID:          o.RestaurantID().Bytes(),
		DriverID:              driverID,
		Items:                 items,
		Subtotal:              formatMoney(totals.Subtotal()),
		DeliveryFee:           formatMoney(totals.DeliveryFee()),
		Tax:                   formatMoney(totals.Tax()),
		Total:                 formatMoney(totals.Total()),
		DeliveryAddress:       toAddress(o.Address()),
		PaymentMethod:         o.PaymentMethod().String(),
		PaymentStatus:         o.PaymentStatus().String(),
		Status:                o.Status().String(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toParty(p queries.PartyView) Party {
	return Party{ID: p.ID.Bytes(), Name: p.Name, Phone: p.Phone}
}

func toOrderView(v queries.OrderView) OrderView {
	items := make([]OrderViewItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderViewItem{
			MenuItemID: item.MenuItemID.Bytes(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  formatMoney(item.UnitPrice),
			Amount:     formatMoney(item.Amount),
		})
	}

	var driver *Party
	if v.Driver != nil {
		p := toParty(*v.Driver)
		driver = &p
	}

	return OrderView{
		ID:            v.ID.Bytes(),
		Status:        v.Status.String(),
		PaymentMethod: v.PaymentMethod.String(),
		PaymentStatus: v.PaymentStatus.String(),
		Restaurant: RestaurantSummary{
			ID:      v.Restaurant.ID.Bytes(),
			Name:    v.Restaurant.Name,
			Phone:   v.Restaurant.Phone,
			Address: v.Restaurant.Address,
		},
		Customer:              toParty(v.Customer),
		Driver:                driver,
		Items:                 items,
		Subtotal:              formatMoney(v.Subtotal),
		DeliveryFee:           formatMoney(v.DeliveryFee),
		Tax:                   formatMoney(v.Tax),
		Total:                 formatMoney(v.Total),
		DeliveryAddress:       toAddress(v.DeliveryAddress),
		EstimatedDeliveryTime: v.EstimatedDeliveryTime,
		CreatedAt:             v.CreatedAt,
		UpdatedAt:             v.UpdatedAt,
	}
}

// formatMoney prints whole cents with two decimals and keeps finer amounts,
// such as an unrounded tax, exact.
func formatMoney(m kernel.Money) string {
	d := m.Amount()
	if d.Equal(d.Round(2)) {
		return d.StringFixed(2)
	}
	return d.String()
}
