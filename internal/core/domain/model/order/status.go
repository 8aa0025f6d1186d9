package order

import (
	"fmt"
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Status represents the fulfilment state of an order.
// It implements a state machine with a fixed transition table so that
// every order follows the same workflow from placement to delivery.
//
// State transitions:
//
//	pending ──> accepted ──> preparing ──> ready ──> on_delivery ──> delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled
//
// delivered and cancelled are terminal. Self-transitions are never allowed.
//
// Status is a value object; its wire and storage form is the lower-case name
// returned by String.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly placed order.
	// The restaurant has not looked at it yet.
	Pending

	// Accepted means the restaurant took the order. Entering it sets the
	// estimated delivery time.
	Accepted

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the food waits for pickup. It can no longer be cancelled.
	Ready

	// OnDelivery means a driver has picked the order up. A driver entering
	// this status on an unassigned order becomes its driver.
	OnDelivery

	// Delivered is a final state with no further transitions allowed.
	Delivered

	// Cancelled is a final state with no further transitions allowed.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Accepted:   "accepted",
	Preparing:  "preparing",
	Ready:      "ready",
	OnDelivery: "on_delivery",
	Delivered:  "delivered",
	Cancelled:  "cancelled",
}

// transitions is the full lifecycle table. Rows missing here have no exits.
//
//nolint:exhaustive // terminal states intentionally have no row
var transitions = map[Status][]Status{
	Pending:    {Accepted, Cancelled},
	Accepted:   {Preparing, Cancelled},
	Preparing:  {Ready, Cancelled},
	Ready:      {OnDelivery},
	OnDelivery: {Delivered},
}

// ParseStatus maps the wire name of a status onto Status.
//
// Returns:
//   - the matching Status for "pending", "accepted", "preparing", "ready",
//     "on_delivery", "delivered" and "cancelled"
//   - (Unknown, errs.ErrValueIsInvalid) for anything else, "unknown" included
//
// Example:
//
//	status, err := order.ParseStatus("on_delivery")
//	if err != nil {
//	    return err
//	}
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Preparing, Ready, OnDelivery, Delivered, Cancelled}
}

// String returns the wire name of the status.
//
// Returns:
//   - the lower-case name for valid statuses, e.g. "on_delivery"
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
//
// Example:
//
//	fmt.Println(o.Status()) // Output: "preparing"
func (s Status) String() string {
	if str, ok := statusNames[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is one of the seven lifecycle states.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - errs.ValueIsInvalidError if it is not
//
// Used to check Status values coming from storage or the API before use.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedTargets returns the states reachable from s by an actor acting in
// the given role. It is total: every (status, role) pair yields a set,
// possibly empty.
//
// Roles:
//   - admin, restaurant_owner, driver: the full table row
//   - customer, unknown: nothing
//
// Whether an actor may act in a role on a particular order is decided by the
// access policy before the table is consulted.
//
// The returned slice is a copy and may be modified by the caller.
func (s Status) AllowedTargets(role kernel.Role) []Status {
	//nolint:exhaustive // remaining roles fall through to the empty set
	switch role {
	case kernel.RoleAdmin, kernel.RoleRestaurantOwner, kernel.RoleDriver:
		return slices.Clone(transitions[s])
	default:
		return nil
	}
}

// CanTransitionTo reports whether target is in AllowedTargets(role).
func (s Status) CanTransitionTo(role kernel.Role, target Status) bool {
	return slices.Contains(s.AllowedTargets(role), target)
}

// TransitionTo validates a move from s to target for an actor in role.
//
// Returns:
//   - (target, nil) when the table allows the move
//   - (Unknown, errs.ErrValueIsInvalid) when target is not a valid status
//   - (Unknown, errs.ErrInvalidTransition) for every other move, including
//     self-transitions and moves out of terminal states
//
// This method is used by Order.ApplyTransition to enforce the lifecycle.
//
// Example:
//
//	next, err := order.Ready.TransitionTo(kernel.RoleDriver, order.OnDelivery)
//	if err != nil {
//	    // the move is not in the table
//	}
func (s Status) TransitionTo(role kernel.Role, target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(role, target) {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(),
			target.String(),
			fmt.Errorf("not allowed for role %s", role),
		)
	}
	return target, nil
}
