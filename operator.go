package money

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Operator is a binary operator accepted by [Apply].
type Operator int

const (
	OpAdd    Operator = iota // +
	OpSub                    // -
	OpMul                    // *
	OpQuo                    // /
	OpQuoInt                 // //
	OpRem                    // %
	OpEq                     // ==
	OpNe                     // !=
	OpLt                     // <
	OpLe                     // <=
	OpGt                     // >
	OpGe                     // >=
)

var opSymbols = [...]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpQuo:    "/",
	OpQuoInt: "//",
	OpRem:    "%",
	OpEq:     "==",
	OpNe:     "!=",
	OpLt:     "<",
	OpLe:     "<=",
	OpGt:     ">",
	OpGe:     ">=",
}

// ParseOperator converts an operator symbol, such as "+" or "<=", to an operator.
func ParseOperator(s string) (Operator, error) {
	for op, sym := range opSymbols {
		if sym == s {
			return Operator(op), nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return opSymbols[op]
}

// IsComparison returns true for ==, !=, <, <=, > and >=.
func (op Operator) IsComparison() bool {
	return op >= OpEq && op <= OpGe
}

// Apply evaluates x op y for operands whose types are known only at run time.
// An operand is either a [Money] value or a scalar of one of the types
// decimal.Decimal, int, int64, float64 or string (a decimal literal).
// Floats are converted through their shortest decimal representation.
//
// Apply enforces the following operand rules:
//   - comparisons, + and - require two Money operands in the same currency;
//     in particular, Money is never compared with or added to a plain number,
//     in either operand order;
//   - * requires exactly one Money operand, which may be on either side;
//   - /, // and % require a Money dividend; the divisor is either Money in
//     the same currency, giving a plain decimal ratio, or a scalar,
//     giving Money.
//
// The result is a [Money], a decimal.Decimal or a bool.
// Apply returns [ErrInvalidOperand] if the operand types are not accepted
// by the operator, [ErrCurrencyMismatch] if Money operands have different
// currencies, and [ErrDivideByZero] if the divisor is zero.
func Apply(op Operator, x, y any) (any, error) {
	r, err := apply(op, x, y)
	if err != nil {
		return nil, fmt.Errorf("applying [%v %v %v]: %w", x, op, y, err)
	}
	return r, nil
}

func apply(op Operator, x, y any) (any, error) {
	a, xIsMoney := x.(Money)
	b, yIsMoney := y.(Money)

	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		if !xIsMoney || !yIsMoney {
			return nil, ErrInvalidOperand
		}
		c, err := a.Cmp(b)
		if err != nil {
			return nil, err
		}
		return compare(op, c), nil

	case OpAdd, OpSub:
		if !xIsMoney || !yIsMoney {
			return nil, ErrInvalidOperand
		}
		if op == OpAdd {
			return a.Add(b)
		}
		return a.Sub(b)

	case OpMul:
		switch {
		case xIsMoney && yIsMoney:
			return nil, ErrInvalidOperand
		case xIsMoney:
			e, err := scalar(y)
			if err != nil {
				return nil, err
			}
			return a.Mul(e)
		case yIsMoney:
			e, err := scalar(x)
			if err != nil {
				return nil, err
			}
			return b.Mul(e)
		}
		return nil, ErrInvalidOperand

	case OpQuo, OpQuoInt, OpRem:
		if !xIsMoney {
			return nil, ErrInvalidOperand
		}
		if yIsMoney {
			switch op {
			case OpQuo:
				return a.Rat(b)
			case OpQuoInt:
				return a.RatInt(b)
			default:
				return a.RatRem(b)
			}
		}
		e, err := scalar(y)
		if err != nil {
			return nil, err
		}
		switch op {
		case OpQuo:
			return a.Quo(e)
		case OpQuoInt:
			return a.QuoInt(e)
		default:
			return a.Rem(e)
		}
	}
	return nil, fmt.Errorf("unsupported operator %v", op)
}

func compare(op Operator, c int) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	default:
		return c >= 0
	}
}

// scalar converts a plain number to a decimal.
func scalar(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, nil
	case int:
		return decimal.New(int64(v), 0)
	case int64:
		return decimal.New(v, 0)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, fmt.Errorf("%w: special value %v", ErrInvalidOperand, v)
		}
		d, err := decimal.Parse(strconv.FormatFloat(v, 'f', -1, 64))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
		}
		return d, nil
	case string:
		d, err := decimal.Parse(v)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
		}
		return d, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %T", ErrInvalidOperand, v)
}
