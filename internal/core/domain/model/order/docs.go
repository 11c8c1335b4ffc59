// Package order provides the Order aggregate: the consistency boundary of
// the order-management core.
//
// The package includes:
//   - Order: the aggregate root owning line items and a delivery
//   - LineItem: an item reference with a unit-price snapshot and quantity
//   - Delivery: the shipping record exclusively owned by one order
//   - Status and DeliveryStatus: state machines for the two lifecycles
//
// Key business rules:
//   - NewOrder is the only construction path; it wires every bidirectional
//     link (member<->order, order<->line-item, order<->delivery) before the
//     aggregate is visible, so a half-wired graph is never observable
//   - Creating a line item reserves stock on its item; a failed reservation
//     produces no line item and no partial decrement
//   - Cancel flips Placed -> Cancelled exactly once and releases each line
//     item's stock exactly once; a completed delivery blocks cancellation
//   - Total price is the sum of unit-price-snapshot times quantity over all
//     line items
//
// The aggregate is mutated in memory; the application layer persists it as
// one unit of work so all changes commit or roll back together.
package order
