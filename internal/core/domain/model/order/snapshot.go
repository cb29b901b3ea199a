package order

import "foodorder/internal/core/domain/model/kernel"

// Snapshot is a point-in-time copy of an Order. It is what the lifecycle hands to
// callers, persistence sinks and the bill renderer, so none of them can reach the
// live aggregate.
type Snapshot struct {
	ID           ID
	CustomerName string
	Lines        []Line
	Total        kernel.Money
	Status       Status
}
