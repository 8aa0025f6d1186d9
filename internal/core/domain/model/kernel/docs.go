// Package kernel provides the value objects shared by every aggregate of the
// order service.
//
// The package includes:
//   - UUID: identifiers for orders and for the weak references they hold
//   - Money: exact, non-negative decimal amounts with half-up cent rounding
//   - Address: a delivery destination with optional driver instructions
//   - Role and Actor: the authenticated identity making a request
//
// All values are immutable and validated at construction; their zero values
// fail Validate. Errors classify through the sentinels of the errs package.
package kernel
