package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyDisplayPlaces is the number of fraction digits used when money is rendered.
const MoneyDisplayPlaces = 2

// ErrMoneyIsNotConstructed is returned when validating a Money that was not built by a constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is an immutable, non-negative monetary amount backed by an arbitrary-precision
// decimal. Arithmetic never passes through binary floating point, so repeated subtotal and
// total computations cannot drift by a cent.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("5.00")
//	subtotal := price.Multiply(2)
//	fmt.Println(subtotal) // 10.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps amount after checking it is not negative.
//
// Returns:
//   - Money: the validated amount
//   - error: ValueIsInvalidError when amount < 0
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal literal such as "5", "2.50" or "12.999".
// Exponent and float-like inputs are accepted as long as they describe a non-negative value.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns an amount of zero, the neutral element for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount exposes the underlying decimal for adapters that need to persist or serialize it.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Multiply returns the amount scaled by a non-negative quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares the numeric values, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with MoneyDisplayPlaces fraction digits, e.g. "10.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyDisplayPlaces)
}

// Plain renders the amount without trailing zero padding, e.g. "2.5".
// It is the representation written back to the menu file.
func (m Money) Plain() string {
	return m.amount.String()
}
