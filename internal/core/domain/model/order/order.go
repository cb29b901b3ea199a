package order

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ID identifies an order. Identifiers are positive and assigned in increasing order by
// the lifecycle orchestrator.
type ID int64

// Order represents one customer's food order. It is the aggregate root that owns the
// ordered lines and tracks the order through the pending/delivered lifecycle.
//
// Order follows these invariants:
//   - Must have a positive identifier and a non-empty customer name
//   - Must have at least one line; lines never change after creation
//   - Total always equals the sum of line subtotals
//   - Status transitions follow Status rules
//   - Can only be created through NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique, monotonically assigned order number
	id ID

	// customerName is the name the order was placed under
	customerName string

	// lines are the ordered items in catalog order
	lines []Line

	// status represents the current state in the order lifecycle
	status Status

	// total is derived from lines by recalculateTotal
	total kernel.Money

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a Pending order from validated lines.
//
// Parameters:
//   - id: positive order identifier
//   - customerName: name of the customer, must not be blank
//   - lines: at least one line built by NewLine or SelectLines
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: all validation errors joined together
//
// Example:
//
//	lines := order.SelectLines(catalog, map[menu.ItemID]int{1: 2})
//	o, err := order.NewOrder(1, "Alice", lines)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id ID, customerName string, lines []Line) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	order.recalculateTotal()
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order identifier.
func (o *Order) ID() ID {
	return o.id
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Lines returns a copy of the order lines in catalog order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total, the sum of all line subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CalculateTotal sums the line subtotals without changing the order.
// It always agrees with Total.
func (o *Order) CalculateTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Deliver marks a Pending order as Delivered.
//
// Returns:
//   - nil on success
//   - error if the order is not Pending
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReturnToPending undoes a delivery, moving a Delivered order back to Pending.
//
// Returns:
//   - nil on success
//   - error if the order is not Delivered
func (o *Order) ReturnToPending() error {
	newStatus, err := o.status.ReturnToPending()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Snapshot returns an immutable copy of the order's current state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		CustomerName: o.customerName,
		Lines:        o.Lines(),
		Total:        o.total,
		Status:       o.status,
	}
}

func (o *Order) recalculateTotal() {
	o.total = o.CalculateTotal()
}

func (o *Order) setID(id ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
