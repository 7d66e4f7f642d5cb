package money

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is matched by [*InvalidAmountError].
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrCurrencyMismatch is returned when an operation combines amounts
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidOperand is returned by [Apply] when an operand has a type
	// the operator does not accept.
	ErrInvalidOperand = errors.New("invalid operand types for operation")

	// ErrDivideByZero is returned when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrUnknownCurrency is returned by the [Registry] for a currency
	// that has no entry.
	ErrUnknownCurrency = errors.New("unknown currency")

	errAmountOverflow = errors.New("amount overflow")
)

// InvalidAmountError is returned by constructors in [Strict] mode when
// the amount has more precision than its currency allows.
type InvalidAmountError struct {
	Amount string // amount as given by the caller
	Curr   Currency
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("'%s' is an invalid amount for currency %v", e.Amount, e.Curr)
}

// Is reports whether target is [ErrInvalidAmount].
func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}
