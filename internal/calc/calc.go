// Package calc parses and evaluates one-line money expressions such as
//
//	USD:3.30 + USD:1.25
//	:9.95 // 0.24
//	neg JPY:5
//
// An operand is money, written as CODE:AMOUNT or as :AMOUNT for the default
// currency, or a plain decimal number.
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/exactmoney/money"
	"github.com/govalues/decimal"
)

// ErrUsage is returned by [Parse] for a malformed expression.
var ErrUsage = errors.New("expected OPERAND OP OPERAND or neg|abs|pos OPERAND")

// Unary operators.
const (
	Neg = "neg"
	Abs = "abs"
	Pos = "pos"
)

// Expr is a parsed expression.
// If Unary is set, the expression is Unary(X) and Op and Y are ignored;
// otherwise it is X Op Y.
type Expr struct {
	Unary string
	Op    money.Operator
	X, Y  any
}

func (e Expr) String() string {
	if e.Unary != "" {
		return fmt.Sprintf("%v(%v)", e.Unary, e.X)
	}
	return fmt.Sprintf("%v %v %v", e.X, e.Op, e.Y)
}

// ParseOperand converts a token to [money.Money] or, if the token has no
// currency part, to a decimal.Decimal.
// The currency part may be empty, as in ":3.30", to select def.
// Amounts of money are constructed according to the policy p.
func ParseOperand(tok string, def money.Currency, p money.Policy) (any, error) {
	code, amount, ok := strings.Cut(tok, ":")
	if !ok {
		d, err := decimal.Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("parsing operand %q: %w", tok, err)
		}
		return d, nil
	}
	if code == "" {
		code = def.Code()
	}
	m, err := money.ParseMoney(code, amount, p)
	if err != nil {
		return nil, fmt.Errorf("parsing operand %q: %w", tok, err)
	}
	return m, nil
}

// Parse converts command-line arguments to an expression.
func Parse(args []string, def money.Currency, p money.Policy) (Expr, error) {
	switch len(args) {
	case 2:
		switch args[0] {
		case Neg, Abs, Pos:
		default:
			return Expr{}, fmt.Errorf("unknown unary operator %q: %w", args[0], ErrUsage)
		}
		x, err := ParseOperand(args[1], def, p)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Unary: args[0], X: x}, nil

	case 3:
		op, err := money.ParseOperator(args[1])
		if err != nil {
			return Expr{}, fmt.Errorf("%w: %w", err, ErrUsage)
		}
		x, err := ParseOperand(args[0], def, p)
		if err != nil {
			return Expr{}, err
		}
		y, err := ParseOperand(args[2], def, p)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Op: op, X: x, Y: y}, nil
	}
	return Expr{}, fmt.Errorf("%d arguments: %w", len(args), ErrUsage)
}

// Evaluator evaluates expressions.
type Evaluator interface {
	Eval(e Expr) (any, error)
}

type evaluator struct{}

// NewEvaluator returns an evaluator that applies the operators of the
// money package.
func NewEvaluator() Evaluator {
	return evaluator{}
}

func (evaluator) Eval(e Expr) (any, error) {
	if e.Unary == "" {
		return money.Apply(e.Op, e.X, e.Y)
	}
	m, ok := e.X.(money.Money)
	if !ok {
		return nil, fmt.Errorf("applying %v: %w", e, money.ErrInvalidOperand)
	}
	switch e.Unary {
	case Neg:
		return m.Neg(), nil
	case Abs:
		return m.Abs(), nil
	case Pos:
		return m.Pos(), nil
	}
	return nil, fmt.Errorf("unknown unary operator %q", e.Unary)
}
