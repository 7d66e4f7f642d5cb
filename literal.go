package money

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// literal is a decimal string split into its digits, with any exponent
// already applied. intPart has no leading zeros and fracPart has no
// trailing zeros.
type literal struct {
	neg      bool
	intPart  string
	fracPart string
}

// Limits of [decimal.Parse].
const (
	maxLen = 330
	maxExp = 330
)

// splitLiteral splits s using the grammar of [decimal.Parse].
// It reports false if s is not a valid decimal string.
func splitLiteral(s string) (literal, bool) {
	var lit literal
	if len(s) > maxLen {
		return literal{}, false
	}
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		lit.neg = s[0] == '-'
		s = s[1:]
	}

	// Exponent
	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e := s[i+1:]
		s = s[:i]
		eneg := false
		if len(e) > 0 && (e[0] == '-' || e[0] == '+') {
			eneg = e[0] == '-'
			e = e[1:]
		}
		if e == "" || !isDigits(e) {
			return literal{}, false
		}
		for _, r := range e {
			exp = exp*10 + int(r-'0')
			if exp > maxExp {
				return literal{}, false
			}
		}
		if eneg {
			exp = -exp
		}
	}

	// Significand
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart+fracPart == "" || !isDigits(intPart) || !isDigits(fracPart) {
		return literal{}, false
	}

	// Move the decimal point by the exponent.
	digits := intPart + fracPart
	point := len(intPart) + exp
	switch {
	case point < 0:
		digits = strings.Repeat("0", -point) + digits
		point = 0
	case point > len(digits):
		digits += strings.Repeat("0", point-len(digits))
	}
	lit.intPart = strings.TrimLeft(digits[:point], "0")
	lit.fracPart = strings.TrimRight(digits[point:], "0")
	return lit, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// prec returns the number of digits a decimal needs to hold the literal
// exactly.
func (l literal) prec() int {
	return len(l.intPart) + len(l.fracPart)
}

// roundToCurr rounds the literal like [RoundToCurr] without first
// converting it to a decimal, so digits that do not fit into
// [decimal.MaxPrec] still take part in rounding.
// Only the fraction is rounded; the integer part is added afterwards.
func (l literal) roundToCurr(reg Registry, c Currency) (decimal.Decimal, error) {
	div, err := reg.SubunitDivisor(c)
	if err != nil {
		return decimal.Decimal{}, err
	}
	step, err := divisorScale(div)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("currency %v: %w", c, err)
	}

	// Only the digit after the sub-unit step decides the first rounding.
	frac := l.fracPart
	if n := min(step+1, decimal.MaxScale); len(frac) > n {
		frac = frac[:n]
	}
	f := decimal.Zero
	if frac != "" {
		f, err = decimal.Parse("0." + frac)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	f, err = roundToCurr(reg, c, f)
	if err != nil {
		return decimal.Decimal{}, err
	}

	i := decimal.Zero
	if l.intPart != "" {
		i, err = decimal.Parse(l.intPart)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	d, err := i.Add(f)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if l.neg {
		d = d.Neg()
	}
	return d, nil
}
