// Package ports defines the contracts between the order lifecycle core and its
// infrastructure: where committed transitions are recorded and where the menu lives.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventSink records committed order transitions. It is append-only: one record per
// placed or delivered order, never rewritten and never read back by the core.
//
// Recording is best effort. The transition has already committed when Append is called,
// so a failure is reported to the caller as a warning and never rolls anything back.
type OrderEventSink interface {
	// Append records the order as it was right after the transition.
	// snapshot.Status tells which transition happened (Pending = placed, Delivered = delivered).
	Append(ctx context.Context, snapshot order.Snapshot) error
}
