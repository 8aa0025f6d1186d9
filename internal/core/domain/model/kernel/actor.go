package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Role is the coarse capability an identity carries, as asserted by the
// account service in the token's role claim.
//
// A role alone grants nothing on a particular order. Read and transition
// rights also depend on the actor's relation to the order: its customer,
// its restaurant's owner or its driver. Only RoleAdmin is unconditional.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and reads its own orders.
	RoleCustomer

	// RoleRestaurantOwner reads and advances orders placed against the
	// restaurants it owns.
	RoleRestaurantOwner

	// RoleDriver claims ready orders and delivers them.
	RoleDriver

	// RoleAdmin reads and transitions any order.
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleCustomer:        "customer",
	RoleRestaurantOwner: "restaurant_owner",
	RoleDriver:          "driver",
	RoleAdmin:           "admin",
}

// ParseRole maps the account-service role claim onto Role.
//
// Returns:
//   - the Role for "customer", "restaurant_owner", "driver" and "admin"
//   - (RoleUnknown, errs.ErrValueIsInvalid) for anything else
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String returns the claim name of the role, or "unknown".
func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed is returned by Actor.Validate for zero values.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor")

// Actor is the authenticated identity making a request. The HTTP adapter
// builds it from a verified token; the core never sees credentials.
//
// Example usage:
//
//	actor, err := kernel.NewActor(userID, kernel.RoleDriver)
//	if err != nil {
//	    return err
//	}
//	if actor.Is(kernel.RoleAdmin) {
//	    // unconditional access
//	}
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor pairs an identity with its role.
//
// Returns:
//   - the Actor on success
//   - ErrUUIDIsNotConstructed for a missing id
//   - errs.ValueIsInvalidError for an invalid role
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) ID() UUID   { return a.id }
func (a Actor) Role() Role { return a.role }

// Is reports whether the actor carries role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// Validate reports ErrActorIsNotConstructed for the zero value.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
