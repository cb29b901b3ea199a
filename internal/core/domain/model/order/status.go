package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──Deliver──> Delivered
//	   ^                    │
//	   └──ReturnToPending───┘
//
// There is no terminal state: an order may be delivered, returned and delivered again.
type Status int

const (
	// Unknown represents an invalid or uninitialized status.
	Unknown Status = iota

	// Pending orders wait in the pending queue for fulfillment.
	Pending

	// Delivered orders sit in the delivery history until undone.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// Validate checks that the status is Pending or Delivered.
func (s Status) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "Pending", "Delivered" or "Unknown".
// The value is also the status token written to the order log.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver transitions Pending -> Delivered.
//
// Returns:
//   - (Delivered, nil) on a valid transition
//   - (0, error) from any other status
func (s Status) Deliver() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// ReturnToPending transitions Delivered -> Pending, undoing a delivery.
//
// Returns:
//   - (Pending, nil) on a valid transition
//   - (0, error) from any other status
func (s Status) ReturnToPending() (Status, error) {
	if s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to return to pending", s.String()),
		)
	}
	return Pending, nil
}
