package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one
// of the constructor functions. Validate returns it for the zero value and for
// the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object used for orders and for the weak
// references an order holds: customer, restaurant, driver and menu items.
// It wraps github.com/google/uuid so that the rest of the domain never
// touches the library type directly.
//
// The zero value of UUID is invalid and must be constructed using one of the
// factory functions: NewUUID, UUIDFromString, UUIDFromBytes or
// UUIDFromGoogle.
//
// UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Identify a new order
//	id := kernel.NewUUID()
//
//	// Parse an identifier supplied by a caller
//	id, err := kernel.UUIDFromString(raw)
//	if err != nil {
//	    return err // classifies as errs.ErrValueIsInvalid
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is the primary way to create identifiers for new orders.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	fmt.Println(orderID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts every format uuid.Parse does, including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns:
//   - the parsed UUID on success
//   - errs.ValueIsInvalidError for a malformed string, so identifiers
//     supplied by callers classify as invalid input
//
// Example:
//
//	id, err := kernel.UUIDFromString(claims.Subject)
//	if err != nil {
//	    return err
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form.
//
// Returns:
//   - the UUID on success
//   - errs.ValueIsInvalidError if b is not exactly 16 bytes long
//   - ErrUUIDIsNotConstructed if b is all zeros
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// UUIDFromGoogle adapts a library UUID, e.g. one scanned by a persistence
// layer. The result is not validated; callers that may receive uuid.Nil
// should call Validate.
func UUIDFromGoogle(id uuid.UUID) UUID {
	return UUID{id: id}
}

// String returns the canonical hyphenated form, e.g.
// "550e8400-e29b-41d4-a716-446655440000". It implements fmt.Stringer.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying library value (a copy). Persistence adapters
// use it as the column value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether u and other identify the same entity.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Ptr returns a pointer to a copy of u, handy for optional references such
// as an order's driver.
func (u UUID) Ptr() *UUID {
	return &u
}

// Validate checks that u was constructed and is not the nil UUID.
//
// Returns:
//   - nil for a usable identifier
//   - ErrUUIDIsNotConstructed otherwise
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
