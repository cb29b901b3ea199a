// Package order provides the Order aggregate for the food ordering service.
//
// The package includes:
//   - Order: the aggregate root holding a customer's lines, status and derived total
//   - Line: one menu item with a requested quantity and its subtotal
//   - Status: the Pending <-> Delivered state machine
//   - Snapshot: an immutable copy of an order handed to callers, sinks and the bill renderer
//   - SelectLines: deterministic line selection from a catalog and requested quantities
//
// Key business rules:
//   - Orders have a positive identifier, a non-empty customer name and at least one line
//   - Lines have a positive quantity and reference an item that was available when ordered
//   - The total always equals the sum of line subtotals; it is never set directly
//   - Lines are fixed at creation; only the status changes afterwards
//   - Status follows Pending -> Delivered -> Pending, cycling any number of times
package order
