package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// QuoteLine is a resolved menu item and the quantity requested.
// Item must come from the catalog; the engine takes its price from there.
type QuoteLine struct {
	Item     *catalog.MenuItem
	Quantity int
}

// Quote is the authoritative price of an order-to-be. Items are in request
// order and Totals satisfies the totals invariant of order.Totals.
type Quote struct {
	Items  []order.LineItem
	Totals order.Totals
}

// PricingEngine computes order prices from a snapshot of catalog data.
// It performs no I/O and never trusts a client-supplied price.
//
// Rules:
//   - each line needs quantity >= 1 and an available item of the restaurant
//   - subtotal = Σ price × quantity, exact
//   - delivery fee = restaurant fee, or the configured default when zero
//   - tax = subtotal × tax rate, exact
//   - total = subtotal + fee + tax, rounded half-up to cents
//
// Only the total is rounded. Subtotal and tax keep every decimal place of
// the computation.
//
// Example usage:
//
//	engine, _ := services.NewPricingEngine(services.DefaultPricingConfig())
//	quote, err := engine.Quote(restaurant, []services.QuoteLine{
//	    {Item: burger, Quantity: 2}, // 8.99 each
//	    {Item: fries, Quantity: 1},  // 3.99
//	})
//	// quote.Totals: subtotal 21.97, fee 2.99, tax 2.197, total 27.16
type PricingEngine struct {
	config PricingConfig
}

// NewPricingEngine returns an engine for config, or config's validation error.
func NewPricingEngine(config PricingConfig) (PricingEngine, error) {
	if err := config.Validate(); err != nil {
		return PricingEngine{}, err
	}
	return PricingEngine{config: config}, nil
}

// Quote prices lines against restaurant.
//
// Returns:
//   - the Quote on success
//   - errs.ErrValueIsRequired when lines is empty
//   - errs.ErrValueIsInvalid for a quantity below 1, an item of another
//     restaurant, or an unavailable item; the message names the line
//   - the restaurant's or an item's validation error if either was not
//     constructed
func (e PricingEngine) Quote(restaurant *catalog.Restaurant, lines []QuoteLine) (Quote, error) {
	if err := restaurant.Validate(); err != nil {
		return Quote{}, err
	}
	if len(lines) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]order.LineItem, 0, len(lines))
	subtotal := kernel.ZeroMoney()
	for i, line := range lines {
		item, err := e.priceLine(restaurant, i, line)
		if err != nil {
			return Quote{}, err
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Amount())
	}

	totals, err := order.NewTotals(
		subtotal,
		e.deliveryFee(restaurant),
		subtotal.MulRate(e.config.TaxRate()),
	)
	if err != nil {
		return Quote{}, err
	}

	return Quote{Items: items, Totals: totals}, nil
}

func (e PricingEngine) priceLine(restaurant *catalog.Restaurant, i int, line QuoteLine) (order.LineItem, error) {
	if line.Quantity < 1 {
		return order.LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("line %d: %d is less than 1", i, line.Quantity),
		)
	}
	if err := line.Item.Validate(); err != nil {
		return order.LineItem{}, err
	}
	if !line.Item.BelongsTo(restaurant.ID()) {
		return order.LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"menuItem",
			fmt.Errorf("%s is not sold by restaurant %s", line.Item.ID(), restaurant.ID()),
		)
	}
	if !line.Item.IsAvailable() {
		return order.LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"menuItem",
			fmt.Errorf("%s is not available", line.Item.ID()),
		)
	}
	return order.NewLineItem(line.Item.ID(), line.Quantity, line.Item.Price())
}

func (e PricingEngine) deliveryFee(restaurant *catalog.Restaurant) kernel.Money {
	fee := restaurant.DeliveryFee()
	if fee.IsZero() {
		return e.config.DefaultDeliveryFee()
	}
	return fee
}
