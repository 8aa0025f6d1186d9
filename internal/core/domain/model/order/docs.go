// Package order implements the Order aggregate of the food-delivery service:
// line items priced at order time, immutable totals, and the fulfilment
// status machine with its transition table.
//
// The package includes:
//   - Order: the aggregate root with construction, restoration, and transitions
//   - Status: the lifecycle enum and its transition table
//   - LineItem and Totals: the priced contents of an order
//   - PaymentMethod and PaymentStatus: closed enums for payment data
//
// Who may act on an order is decided in the services package; this package
// only knows which moves the table permits. Admins, restaurant owners and
// drivers share the full table; customers never transition an order.
package order
