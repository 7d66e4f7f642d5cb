package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// registry is consulted by every constructor and arithmetic operation.
var registry Registry = isoRegistry{}

// RoundToCurr returns decimal d rounded to the canonical precision of
// currency c. Rounding is done in two stages, both using
// [rounding half away from zero]:
//
//  1. d is rounded to the sub-unit step of the currency, 1 / [Currency.SubunitDivisor];
//  2. the result is rounded to [Currency.Precision] digits after the decimal point.
//
// Both stages always run, so rounding an already rounded decimal
// does not change it.
// The result is zero-padded to exactly [Currency.Precision] digits after
// the decimal point.
//
// RoundToCurr returns an error if:
//   - the currency has no entry in the registry;
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Precision]) digits.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func RoundToCurr(c Currency, d decimal.Decimal) (decimal.Decimal, error) {
	return roundToCurr(registry, c, d)
}

func roundToCurr(reg Registry, c Currency, d decimal.Decimal) (decimal.Decimal, error) {
	div, err := reg.SubunitDivisor(c)
	if err != nil {
		return decimal.Decimal{}, err
	}
	prec, err := reg.DisplayPrecision(c)
	if err != nil {
		return decimal.Decimal{}, err
	}
	step, err := divisorScale(div)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("currency %v: %w", c, err)
	}

	// Sub-units
	d, err = roundHalfUp(d, step)
	if err != nil {
		return decimal.Decimal{}, err
	}

	// Display precision
	d, err = roundHalfUp(d, prec)
	if err != nil {
		return decimal.Decimal{}, err
	}

	// Canonical scale
	if d.Scale() < prec {
		d = d.Pad(prec)
		if d.Scale() < prec {
			return decimal.Decimal{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return d, nil
}

// roundHalfUp returns d rounded to the given number of digits after the
// decimal point, ties are rounded away from zero.
func roundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		return d, nil
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err = d.Add(half.CopySign(d))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Trunc(scale), nil
}

// divisorScale returns log10(div).
func divisorScale(div int64) (int, error) {
	if div < 1 {
		return 0, fmt.Errorf("sub-unit divisor %v is not positive", div)
	}
	scale := 0
	for ; div%10 == 0; div /= 10 {
		scale++
	}
	if div != 1 {
		return 0, fmt.Errorf("sub-unit divisor is not a power of ten")
	}
	if scale > decimal.MaxScale {
		return 0, fmt.Errorf("sub-unit divisor has more than %v zeros", decimal.MaxScale)
	}
	return scale, nil
}
