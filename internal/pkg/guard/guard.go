// Package guard marks domain values, commands and queries as built through
// their constructors so that zero values can be rejected at use sites.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a field in types whose zero value is not usable.
// A value built through its constructor carries a guard created by
// NewConstructorGuard; a zero value carries a zero guard and fails Validate.
//
//	type PricingConfig struct {
//	    taxRate kernel.Money
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c PricingConfig) Validate() error {
//	    return c.guard.Validate(ErrPricingConfigIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
