// Package fulfillment provides the two order holding structures of the fulfillment
// pipeline:
//   - PendingQueue: FIFO of orders waiting to be delivered
//   - DeliveryHistory: LIFO of delivered orders, the top being the next undo candidate
//
// Both structures own the orders they hold until they are removed, at which point
// ownership passes to the caller. Removing from an empty structure reports absence
// through a boolean instead of returning a placeholder order.
//
// Neither structure synchronizes access; the lifecycle orchestrator serializes every
// mutation together with identifier allocation.
package fulfillment
