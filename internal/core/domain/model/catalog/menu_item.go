package catalog

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned by MenuItem.Validate for values not
// built through NewMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem")

// MenuItem is a read-only snapshot of a sellable dish and its current price.
//
// The price is what the pricing engine charges at order time. Later price
// changes in the catalog never reach an order that already exists, because
// each line item copies the unit price it was charged.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	isAvailable  bool

	isConstructed bool
}

// NewMenuItem validates identity, price and name.
//
// Returns:
//   - the MenuItem on success
//   - the joined identity and price errors, or errs.ValueIsRequiredError
//     for a blank name
func NewMenuItem(id, restaurantID kernel.UUID, name string, price kernel.Money, isAvailable bool) (*MenuItem, error) {
	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isAvailable:   isAvailable,
		isConstructed: true,
	}, nil
}

// Validate reports ErrMenuItemIsNotConstructed for nil and zero values.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID           { return m.id }
func (m *MenuItem) RestaurantID() kernel.UUID { return m.restaurantID }
func (m *MenuItem) Name() string              { return m.name }
func (m *MenuItem) Price() kernel.Money       { return m.price }
func (m *MenuItem) IsAvailable() bool         { return m.isAvailable }

// BelongsTo reports whether the item is sold by the given restaurant.
func (m *MenuItem) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}
