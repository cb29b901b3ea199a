// Package services provides domain services that coordinate several domain objects.
//
// OrderLifecycle is the orchestrator of the fulfillment pipeline. It composes the menu
// catalog, the pending queue and the delivery history, allocates order identifiers, and
// implements the three transitions:
//
//	Place:        new order -> Pending, rear of the pending queue
//	FulfillNext:  front of the pending queue -> Delivered, top of the delivery history
//	UndoLast:     top of the delivery history -> Pending, rear of the pending queue
//
// Every transition, including identifier allocation, runs under one mutex, so concurrent
// callers observe a single serial order of transitions. Results are returned as
// order.Snapshot values; callers never hold a reference to a live order.
package services
