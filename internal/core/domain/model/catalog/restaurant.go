package catalog

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned by Restaurant.Validate for values
// not built through NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant")

// Restaurant is the order service's read-only view of a restaurant owned by
// the menu/restaurant service. The order service never writes it.
type Restaurant struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	name        string
	phone       string
	address     string
	deliveryFee kernel.Money
	isActive    bool

	isConstructed bool
}

// NewRestaurant validates identity and fee; display fields are free text.
// A zero delivery fee means the restaurant did not set one.
func NewRestaurant(
	id, ownerID kernel.UUID,
	name, phone, address string,
	deliveryFee kernel.Money,
	isActive bool,
) (*Restaurant, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		deliveryFee.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Restaurant{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		phone:         phone,
		address:       address,
		deliveryFee:   deliveryFee,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate reports ErrRestaurantIsNotConstructed for nil and zero values.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID           { return r.id }
func (r *Restaurant) OwnerID() kernel.UUID      { return r.ownerID }
func (r *Restaurant) Name() string              { return r.name }
func (r *Restaurant) Phone() string             { return r.phone }
func (r *Restaurant) Address() string           { return r.address }
func (r *Restaurant) DeliveryFee() kernel.Money { return r.deliveryFee }
func (r *Restaurant) IsActive() bool            { return r.isActive }

// IsOwnedBy reports whether the identity owns the restaurant.
func (r *Restaurant) IsOwnedBy(id kernel.UUID) bool {
	return r.ownerID.IsEqual(id)
}
