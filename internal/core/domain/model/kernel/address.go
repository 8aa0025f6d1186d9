package kernel

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned by Address.Validate for zero values.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a delivery destination. Street, city, state and postal code
// are mandatory; instructions are free text for the driver.
//
// Address is a value object: two addresses with the same fields are the same
// address, and nothing changes one after construction. Every field is stored
// with surrounding whitespace trimmed.
//
// Example usage:
//
//	address, err := kernel.NewAddress("42 Elm St", "Portland", "OR", "97201", "ring twice")
//	if err != nil {
//	    return err // one errs.ValueIsRequiredError per blank field
//	}
type Address struct {
	street       string
	city         string
	state        string
	postalCode   string
	instructions string
	guard        guard.ConstructorGuard
}

// NewAddress validates and builds an Address.
//
// Returns:
//   - the Address on success
//   - the errors.Join of one errs.ValueIsRequiredError per blank mandatory
//     field; instructions may be empty
func NewAddress(street, city, state, postalCode, instructions string) (Address, error) {
	if err := errors.Join(
		requireText("street", street),
		requireText("city", city),
		requireText("state", state),
		requireText("postalCode", postalCode),
	); err != nil {
		return Address{}, err
	}

	return Address{
		street:       strings.TrimSpace(street),
		city:         strings.TrimSpace(city),
		state:        strings.TrimSpace(state),
		postalCode:   strings.TrimSpace(postalCode),
		instructions: strings.TrimSpace(instructions),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Street() string       { return a.street }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
func (a Address) PostalCode() string   { return a.postalCode }
func (a Address) Instructions() string { return a.instructions }

// IsEqual compares every field, instructions included.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.instructions == other.instructions
}

// Validate reports ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func requireText(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
