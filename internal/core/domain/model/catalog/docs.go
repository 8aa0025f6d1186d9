// Package catalog models the restaurant and menu data that the order service
// reads from the menu/restaurant service. These are weak references: an order
// stores only their identifiers and copies the price it was charged.
package catalog
