package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned by Money.Validate for zero values.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromString")

// Money is a non-negative decimal currency amount.
//
// Arithmetic is exact; rounding happens only when RoundToCents is called.
// Prices, fees and totals all use this type so that no binary floating
// point ever enters a price computation. A tax of 10% on 21.97 is therefore
// exactly 2.197, and only the order total is rounded.
//
// The zero value of Money is invalid. Use NewMoney, MoneyFromString,
// MustMoney or ZeroMoney.
//
// Money is immutable; every operation returns a new value.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("8.99")
//	if err != nil {
//	    return err
//	}
//	line := price.Times(2)                                // 17.98
//	tax := line.MulRate(decimal.RequireFromString("0.1")) // 1.798
//	total := line.Add(tax).RoundToCents()                 // 19.78
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps amount after checking that it is not negative.
//
// Returns:
//   - the Money value on success
//   - errs.ValueIsInvalidError if amount is negative
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal literal such as "12.50".
//
// Returns:
//   - the Money value on success
//   - errs.ValueIsInvalidError if s is not a decimal number or is negative
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid.
// It panics on invalid input and is meant for constants and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a valid amount of zero, the starting point of a sum.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the exact decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other without rounding.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Times multiplies by a non-negative integer quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// MulRate multiplies by a non-negative rate such as a tax rate.
// The result keeps every decimal place of the product.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate), guard: guard.NewConstructorGuard()}
}

// RoundToCents rounds half-up to two decimal places. Money is never negative,
// so decimal's half-away-from-zero rounding is half-up here.
//
// Example:
//
//	kernel.MustMoney("27.157").RoundToCents() // 27.16
//	kernel.MustMoney("0.005").RoundToCents()  // 0.01
func (m Money) RoundToCents() Money {
	return Money{amount: m.amount.Round(2), guard: guard.NewConstructorGuard()}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares numerically, so 2.5 equals 2.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the shortest exact representation, e.g. "2.5" or "2.197".
// Wire formats that need two decimals format Amount themselves.
func (m Money) String() string {
	return m.amount.String()
}

// Validate reports ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
