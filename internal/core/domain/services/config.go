package services

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrPricingConfigIsNotConstructed is returned by PricingConfig.Validate
	// for a zero value.
	ErrPricingConfigIsNotConstructed  = errors.New("PricingConfig must be created via NewPricingConfig")

	// ErrWorkflowConfigIsNotConstructed is returned by WorkflowConfig.Validate
	// for a zero value.
	ErrWorkflowConfigIsNotConstructed = errors.New("WorkflowConfig must be created via NewWorkflowConfig")
)

// PricingConfig holds the tunable inputs of the pricing engine.
//
// The zero value is invalid. Use NewPricingConfig or DefaultPricingConfig.
// The values are loaded from the "pricing" section of the configuration file
// at startup and never change while the service runs.
//
// Example usage:
//
//	cfg, err := services.NewPricingConfig(decimal.RequireFromString("0.16"), kernel.MustMoney("1.50"))
//	if err != nil {
//	    return err
//	}
//	engine, err := services.NewPricingEngine(cfg)
type PricingConfig struct {
	taxRate            decimal.Decimal
	defaultDeliveryFee kernel.Money
	guard              guard.ConstructorGuard
}

// NewPricingConfig accepts a tax rate in [0, 1] and the delivery fee charged
// when a restaurant has none configured.
//
// Returns:
//   - the PricingConfig on success
//   - errs.ValueIsOutOfRangeError if taxRate is outside [0, 1]
//   - errs.ValueIsRequiredError if defaultDeliveryFee was not constructed
func NewPricingConfig(taxRate decimal.Decimal, defaultDeliveryFee kernel.Money) (PricingConfig, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return PricingConfig{}, errs.NewValueIsOutOfRangeError("taxRate", taxRate.String(), 0, 1)
	}
	if err := defaultDeliveryFee.Validate(); err != nil {
		return PricingConfig{}, errs.NewValueIsRequiredErrorWithCause("defaultDeliveryFee", err)
	}
	return PricingConfig{
		taxRate:            taxRate,
		defaultDeliveryFee: defaultDeliveryFee,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// DefaultPricingConfig is 10% tax and a 2.99 fallback delivery fee.
func DefaultPricingConfig() PricingConfig {
	cfg, _ := NewPricingConfig(decimal.RequireFromString("0.10"), kernel.MustMoney("2.99"))
	return cfg
}

// Accessors.

func (c PricingConfig) TaxRate() decimal.Decimal         { return c.taxRate }
func (c PricingConfig) DefaultDeliveryFee() kernel.Money { return c.defaultDeliveryFee }

// Validate reports ErrPricingConfigIsNotConstructed for the zero value.
func (c PricingConfig) Validate() error {
	return c.guard.Validate(ErrPricingConfigIsNotConstructed)
}

// WorkflowConfig holds the tunable inputs of the status machine.
// The zero value is invalid. Use NewWorkflowConfig or DefaultWorkflowConfig.
type WorkflowConfig struct {
	deliveryWindow time.Duration
	guard          guard.ConstructorGuard
}

// NewWorkflowConfig accepts the positive interval added to "now" when an
// order is created or accepted to estimate its delivery time.
//
// Returns:
//   - the WorkflowConfig on success
//   - errs.ValueIsInvalidError if deliveryWindow is zero or negative
func NewWorkflowConfig(deliveryWindow time.Duration) (WorkflowConfig, error) {
	if deliveryWindow <= 0 {
		return WorkflowConfig{}, errs.NewValueIsInvalidErrorWithCause(
			"deliveryWindow",
			fmt.Errorf("%s is not positive", deliveryWindow),
		)
	}
	return WorkflowConfig{deliveryWindow: deliveryWindow, guard: guard.NewConstructorGuard()}, nil
}

// DefaultWorkflowConfig uses a 45 minute delivery window.
func DefaultWorkflowConfig() WorkflowConfig {
	cfg, _ := NewWorkflowConfig(45 * time.Minute)
	return cfg
}

// DeliveryWindow is the interval added to "now" for delivery estimates.
func (c WorkflowConfig) DeliveryWindow() time.Duration { return c.deliveryWindow }

// Validate reports ErrWorkflowConfigIsNotConstructed for the zero value.
func (c WorkflowConfig) Validate() error {
	return c.guard.Validate(ErrWorkflowConfigIsNotConstructed)
}
