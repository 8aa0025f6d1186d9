// Package orderrepo persists order aggregates with GORM. An order is stored
// as one orders row plus one order_items row per line, in line order.
package orderrepo

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Status and payment enums are stored by name so
// the table stays readable from psql and other services.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`

	Subtotal    decimal.Decimal `gorm:"type:numeric"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric"`
	Tax         decimal.Decimal `gorm:"type:numeric"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`

	Delivery AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	PaymentMethod string
	PaymentStatus string
	Status        string `gorm:"index"`

	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime:false"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is embedded into the orders row with the delivery_ prefix.
type AddressDTO struct {
	Street       string
	City         string
	State        string
	PostalCode   string
	Instructions string
}

// OrderItemDTO is one order_items row. Position keeps the line order stable.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2)"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	orderID := aggregate.ID().Bytes()
	lines := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(lines))
	for i, line := range lines {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Amount(),
		})
	}

	totals := aggregate.Totals()
	address := aggregate.Address()

	return OrderDTO{
		ID:           orderID,
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		DriverID:     driverID,
		Subtotal:     totals.Subtotal().Amount(),
		DeliveryFee:  totals.DeliveryFee().Amount(),
		Tax:          totals.Tax().Amount(),
		Total:        totals.Total().Amount(),
		Delivery: AddressDTO{
			Street:       address.Street(),
			City:         address.City(),
			State:        address.State(),
			PostalCode:   address.PostalCode(),
			Instructions: address.Instructions(),
		},
		PaymentMethod:         aggregate.PaymentMethod().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		Status:                aggregate.Status().String(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Delivery.Street,
		dto.Delivery.City,
		dto.Delivery.State,
		dto.Delivery.PostalCode,
		dto.Delivery.Instructions,
	)
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		id, idErr := kernel.UUIDFromBytes(dto.DriverID[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &id
	}

	var eta *time.Time
	if dto.EstimatedDeliveryTime != nil {
		t := dto.EstimatedDeliveryTime.UTC()
		eta = &t
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                    kernel.UUIDFromGoogle(dto.ID),
		CustomerID:            kernel.UUIDFromGoogle(dto.CustomerID),
		RestaurantID:          kernel.UUIDFromGoogle(dto.RestaurantID),
		Items:                 items,
		Totals:                totals,
		Address:               address,
		PaymentMethod:         method,
		PaymentStatus:         paymentStatus,
		Status:                status,
		DriverID:              driverID,
		EstimatedDeliveryTime: eta,
		CreatedAt:             dto.CreatedAt.UTC(),
		UpdatedAt:             dto.UpdatedAt.UTC(),
	})
}

func itemsToDomain(dtos []OrderItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		price, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(kernel.UUIDFromGoogle(dto.MenuItemID), dto.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func totalsToDomain(dto OrderDTO) (order.Totals, error) {
	subtotal, subErr := kernel.NewMoney(dto.Subtotal)
	fee, feeErr := kernel.NewMoney(dto.DeliveryFee)
	tax, taxErr := kernel.NewMoney(dto.Tax)
	total, totalErr := kernel.NewMoney(dto.Total)
	if err := errors.Join(subErr, feeErr, taxErr, totalErr); err != nil {
		return order.Totals{}, err
	}
	return order.RestoreTotals(subtotal, fee, tax, total)
}
