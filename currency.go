package money

import (
	"fmt"
	"strconv"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates that no currency is involved.
//
// Currency is implemented as an integer index into in-memory arrays that
// store properties defined by [ISO 4217], such as code and name, together
// with two rounding facts used by [Money]:
//   - the sub-unit divisor, the number of the smallest tradable fractions
//     in one unit (100 cents in a US Dollar);
//   - the display precision, the number of digits after the decimal point
//     in the canonical representation of an amount.
//
// Usually the sub-unit divisor is 10^precision, but some currencies have
// sub-units that are no longer displayed.
// For example, the Guinean Franc is divided into 100 centimes, yet its
// amounts are shown without fractional digits.
//
// This design ensures safe concurrency for multiple goroutines accessing
// the same Currency value.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// DefaultCurrency is used by [ParseMoney] when no currency code is given.
const DefaultCurrency = USD

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a valid currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w %q", ErrUnknownCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// valid reports whether the currency has an entry in the lookup tables.
func (c Currency) valid() bool {
	return int(c) < len(codeLookup)
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	if !c.valid() {
		return "Currency(" + strconv.Itoa(int(c)) + ")"
	}
	return c.Code()
}

// Precision returns the number of digits after the decimal point in the
// canonical representation of an amount.
// The currently supported currencies use precisions of 0, 2, 3, or 4:
//   - A precision of 0 indicates currencies whose amounts are shown without
//     fractional digits, for example the [Japanese Yen].
//   - A precision of 2 is the most common one, for example the [US Dollar]
//     shows its minor unit, 1 cent, as 0.01 dollars.
//   - A precision of 3 is used by a few currencies, for instance the minor
//     unit of the [Kuwaiti Dinar], 1 fils, is shown as 0.001 dinars.
//
// Precision returns 0 for a currency without an entry.
// See also [Registry.DisplayPrecision].
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Kuwaiti Dinar]: https://en.wikipedia.org/wiki/Kuwaiti_dinar
func (c Currency) Precision() int {
	if !c.valid() {
		return 0
	}
	return int(precisionLookup[c])
}

// SubunitDivisor returns the number of sub-units in one unit of the currency.
// It is always a positive power of ten.
// SubunitDivisor returns 1 for a currency without an entry.
// See also [Registry.SubunitDivisor].
func (c Currency) SubunitDivisor() int64 {
	if !c.valid() {
		return 1
	}
	return subunitLookup[c]
}

// SubunitScale returns the number of digits after the decimal point required
// for representing one sub-unit, that is log10 of [Currency.SubunitDivisor].
func (c Currency) SubunitScale() int {
	scale := 0
	for n := c.SubunitDivisor(); n > 1; n /= 10 {
		scale++
	}
	return scale
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if !c.valid() {
		return ""
	}
	return numLookup[c]
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// This code is a unique identifier of the currency and is used in
// international finance and commerce.
// Code returns an empty string for a currency without an entry.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if !c.valid() {
		return ""
	}
	return codeLookup[c]
}

// Name returns the English name of the currency.
func (c Currency) Name() string {
	if !c.valid() {
		return ""
	}
	return nameLookup[c]
}
