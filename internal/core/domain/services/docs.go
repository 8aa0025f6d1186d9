// Package services holds the domain services of the order lifecycle:
//   - PricingEngine: authoritative price computation from catalog data
//   - OrderFactory: builds pending orders from customer requests
//   - AccessPolicy: read, transition, and listing rights per actor
//   - StatusMachine: authorised, side-effecting status transitions
//
// Configuration (tax rate, default fee, delivery window) is passed in at
// construction through PricingConfig and WorkflowConfig.
package services
