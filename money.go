package money

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Policy controls how constructors treat amounts that carry more
// precision than their currency allows.
type Policy int

const (
	// Strict rejects such amounts with [*InvalidAmountError].
	Strict Policy = iota
	// Round silently rounds them using [RoundToCurr].
	Round
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Round:
		return "round"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// Money type represents a monetary amount denominated in a currency.
// Its zero value corresponds to "XXX 0", where [XXX] indicates that no
// currency is involved.
//
// The amount of a Money value always has exactly [Currency.Precision] digits
// after the decimal point and is the result of [RoundToCurr].
// As a consequence, two Money values of the same currency are numerically
// equal if and only if they are equal according to the == operator.
//
// Money is immutable and safe for concurrent use by multiple goroutines.
type Money struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newMoneyUnsafe creates money without rounding.
// Use it only if you are absolutely sure that the amount is canonical.
func newMoneyUnsafe(c Currency, d decimal.Decimal) Money {
	return Money{curr: c, value: d}
}

// newMoneyRounded creates money from the result of an arithmetic operation.
// Such results are always rounded and never fail the strict check.
func newMoneyRounded(c Currency, d decimal.Decimal) (Money, error) {
	d, err := roundToCurr(registry, c, d)
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(c, d), nil
}

// NewMoney returns money with the specified currency and amount.
//
// In [Strict] mode NewMoney returns [*InvalidAmountError] if the amount is
// not already exactly representable at the canonical precision of the
// currency, for example "3.956" US Dollars or "10.2" Korean Won.
// In [Round] mode such amounts are rounded using [RoundToCurr].
//
// NewMoney also returns an error if:
//   - the currency has no entry in the registry;
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Precision]) digits.
func NewMoney(curr Currency, amount decimal.Decimal, p Policy) (Money, error) {
	d, err := roundToCurr(registry, curr, amount)
	if err != nil {
		return Money{}, fmt.Errorf("rounding amount: %w", err)
	}
	if p == Strict && d.Cmp(amount) != 0 {
		return Money{}, &InvalidAmountError{Amount: amount.String(), Curr: curr}
	}
	return newMoneyUnsafe(curr, d), nil
}

// MustNewMoney is like [NewMoney] in [Strict] mode but panics if the money
// cannot be constructed.
func MustNewMoney(curr Currency, amount decimal.Decimal) Money {
	m, err := NewMoney(curr, amount, Strict)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%v, %v) failed: %v", curr, amount, err))
	}
	return m
}

// ParseMoney converts currency and decimal strings to money.
// An empty currency string selects [DefaultCurrency].
// The amount is rounded only once, even when it has more digits than
// [decimal.MaxPrec]; in [Strict] mode such amounts are rejected.
// See also constructors [ParseCurr], [NewMoney] and [decimal.Parse].
func ParseMoney(curr, amount string, p Policy) (Money, error) {
	// Currency
	c := DefaultCurrency
	if curr != "" {
		var err error
		c, err = ParseCurr(curr)
		if err != nil {
			return Money{}, fmt.Errorf("parsing currency: %w", err)
		}
	}
	return parseMoney(c, amount, p)
}

func parseMoney(c Currency, amount string, p Policy) (Money, error) {
	// Literals longer than decimal.MaxPrec would be rounded half to even by
	// decimal.Parse, so they are checked and rounded digit by digit.
	if lit, ok := splitLiteral(amount); ok && lit.prec() > decimal.MaxPrec {
		prec, err := registry.DisplayPrecision(c)
		if err != nil {
			return Money{}, fmt.Errorf("rounding amount: %w", err)
		}
		if len(lit.intPart)+prec > decimal.MaxPrec {
			return Money{}, fmt.Errorf("parsing amount %q: %w", amount, errAmountOverflow)
		}
		if p == Strict {
			return Money{}, &InvalidAmountError{Amount: amount, Curr: c}
		}
		d, err := lit.roundToCurr(registry, c)
		if err != nil {
			return Money{}, fmt.Errorf("rounding amount: %w", err)
		}
		return NewMoney(c, d, Round)
	}

	// Decimal
	d, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	// Money
	m, err := NewMoney(c, d, p)
	if e := (*InvalidAmountError)(nil); errors.As(err, &e) {
		e.Amount = amount
	}
	return m, err
}

// MustParseMoney is like [ParseMoney] in [Strict] mode but panics if any of
// the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding money.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount, Strict)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// NewMoneyFromInt64 converts a number of whole units to money.
//
// NewMoneyFromInt64 returns an error if the integer part of the result has
// more than ([decimal.MaxPrec] - [Currency.Precision]) digits.
func NewMoneyFromInt64(curr Currency, units int64) (Money, error) {
	d, err := decimal.New(units, 0)
	if err != nil {
		return Money{}, fmt.Errorf("converting integer: %w", err)
	}
	return NewMoney(curr, d, Strict)
}

// NewMoneyFromFloat64 converts a float to money.
// The float is first converted to the shortest decimal string that
// represents it, so 3.95 becomes "3.95" and not the binary approximation
// 3.95000000000000017763568394002504646778106689453125.
//
// NewMoneyFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - in [Strict] mode, the amount is not representable at the canonical
//     precision of the currency;
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Precision]) digits.
func NewMoneyFromFloat64(curr Currency, amount float64, p Policy) (Money, error) {
	// Float
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("converting float: special value %v", amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	// Money
	m, err := parseMoney(curr, s, p)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return m, nil
}

// NewMoneyFromSubUnits converts an integer, representing sub-units of
// currency (e.g. cents, pennies, fils), to money equal to
// units / [Currency.SubunitDivisor].
// See also method [Money.SubUnits].
//
// For most currencies every number of sub-units is representable.
// For currencies whose display precision is coarser than their sub-unit,
// such as the Guinean Franc, NewMoneyFromSubUnits returns
// [*InvalidAmountError] unless the sub-units add up to a displayable amount.
func NewMoneyFromSubUnits(curr Currency, units int64) (Money, error) {
	div, err := registry.SubunitDivisor(curr)
	if err != nil {
		return Money{}, fmt.Errorf("converting sub-units: %w", err)
	}
	step, err := divisorScale(div)
	if err != nil {
		return Money{}, fmt.Errorf("converting sub-units: %w", err)
	}
	d, err := decimal.New(units, step)
	if err != nil {
		return Money{}, fmt.Errorf("converting sub-units: %w", err)
	}
	return NewMoney(curr, d, Strict)
}

// SubUnits returns the amount in sub-units of currency (e.g. cents, pennies,
// fils), that is amount * [Currency.SubunitDivisor] truncated toward zero.
// Since every amount is a multiple of the sub-unit step, truncation never
// discards anything.
// See also constructor [NewMoneyFromSubUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (m Money) SubUnits() (units int64, ok bool) {
	div, err := registry.SubunitDivisor(m.Currency())
	if err != nil {
		return 0, false
	}
	e, err := decimal.New(div, 0)
	if err != nil {
		return 0, false
	}
	d, err := m.Amount().Mul(e)
	if err != nil {
		return 0, false
	}
	units, _, ok = d.Trunc(0).Int64(0)
	return units, ok
}

// Currency returns the currency of the money.
func (m Money) Currency() Currency {
	return m.curr
}

// Amount returns the decimal representation of the money.
func (m Money) Amount() decimal.Decimal {
	return m.value
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.Amount().Sign()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.Amount().IsNeg()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.Amount().IsPos()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.Amount().IsZero()
}

// Abs returns the absolute value of the money.
func (m Money) Abs() Money {
	return newMoneyUnsafe(m.Currency(), m.Amount().Abs())
}

// Neg returns money with the opposite sign.
func (m Money) Neg() Money {
	return newMoneyUnsafe(m.Currency(), m.Amount().Neg())
}

// Pos returns the money unchanged.
// It is the counterpart of [Money.Neg] for unary plus.
func (m Money) Pos() Money {
	return m
}

// Add returns the sum of m and b.
//
// Add returns an error if:
//   - money is denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Precision]) digits.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	d, err := m.Amount().Add(b.Amount())
	if err != nil {
		return Money{}, err
	}
	return newMoneyRounded(m.Currency(), d)
}

// Sub returns the difference between m and b.
//
// Sub returns an error if:
//   - money is denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Precision]) digits.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	d, err := m.Amount().Sub(b.Amount())
	if err != nil {
		return Money{}, err
	}
	return newMoneyRounded(m.Currency(), d)
}

// Mul returns the product of m and factor e rounded using [RoundToCurr].
// For example, 3 Yen multiplied by 1.4995 is 4 Yen, while 3 Guinean Francs
// multiplied by the same factor is 5 Francs, because the product is first
// rounded to centimes.
//
// Mul returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Precision]) digits.
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	c, err := m.mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) mul(e decimal.Decimal) (Money, error) {
	d, err := m.Amount().Mul(e)
	if err != nil {
		return Money{}, err
	}
	return newMoneyRounded(m.Currency(), d)
}

// Quo returns the quotient of m and divisor e rounded using [RoundToCurr].
// See also methods [Money.QuoInt], [Money.Rem], [Money.Rat] and [Money.Split].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Precision]) digits.
func (m Money) Quo(e decimal.Decimal) (Money, error) {
	c, err := m.quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) quo(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, ErrDivideByZero
	}
	d, err := m.Amount().Quo(e)
	if err != nil {
		return Money{}, err
	}
	return newMoneyRounded(m.Currency(), d)
}

// QuoInt returns the integer part of the quotient of m and divisor e.
// The quotient is truncated toward zero.
//
// QuoInt returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Precision]) digits.
func (m Money) QuoInt(e decimal.Decimal) (Money, error) {
	q, _, err := m.quoRem(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v div %v]: %w", m, e, err)
	}
	return q, nil
}

// Rem returns the remainder of the division of m by e, such that
// m = e * [Money.QuoInt] + r.
// The sign of the remainder is the same as the sign of m.
//
// Rem returns an error if the divisor is 0.
func (m Money) Rem(e decimal.Decimal) (Money, error) {
	_, r, err := m.quoRem(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v mod %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) quoRem(e decimal.Decimal) (q, r Money, err error) {
	if e.IsZero() {
		return Money{}, Money{}, ErrDivideByZero
	}
	d, f, err := m.Amount().QuoRem(e)
	if err != nil {
		return Money{}, Money{}, err
	}
	q, err = newMoneyRounded(m.Currency(), d)
	if err != nil {
		return Money{}, Money{}, err
	}
	r, err = newMoneyRounded(m.Currency(), f)
	if err != nil {
		return Money{}, Money{}, err
	}
	return q, r, nil
}

// Rat returns the (possibly rounded) ratio between m and b.
// This method is particularly useful for determining percentages.
// See also methods [Money.RatInt] and [Money.RatRem].
//
// Rat returns an error if:
//   - money is denominated in different currencies;
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (m Money) Rat(b Money) (decimal.Decimal, error) {
	d, err := m.rat(b)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return d, nil
}

func (m Money) rat(b Money) (decimal.Decimal, error) {
	if !m.SameCurr(b) {
		return decimal.Decimal{}, ErrCurrencyMismatch
	}
	if b.IsZero() {
		return decimal.Decimal{}, ErrDivideByZero
	}
	return m.Amount().Quo(b.Amount())
}

// RatInt returns the integer part of the ratio between m and b.
// The ratio is truncated toward zero.
//
// RatInt returns an error if:
//   - money is denominated in different currencies;
//   - the divisor is 0.
func (m Money) RatInt(b Money) (decimal.Decimal, error) {
	q, _, err := m.ratRem(b)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v div %v]: %w", m, b, err)
	}
	return q, nil
}

// RatRem returns the remainder of the division of m by b, such that
// m = b * [Money.RatInt] + r.
// The sign of the remainder is the same as the sign of m.
//
// RatRem returns an error if:
//   - money is denominated in different currencies;
//   - the divisor is 0.
func (m Money) RatRem(b Money) (decimal.Decimal, error) {
	_, r, err := m.ratRem(b)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v mod %v]: %w", m, b, err)
	}
	return r, nil
}

func (m Money) ratRem(b Money) (q, r decimal.Decimal, err error) {
	if !m.SameCurr(b) {
		return decimal.Decimal{}, decimal.Decimal{}, ErrCurrencyMismatch
	}
	if b.IsZero() {
		return decimal.Decimal{}, decimal.Decimal{}, ErrDivideByZero
	}
	return m.Amount().QuoRem(b.Amount())
}

// Split returns a slice of money values that sum up to the original one,
// ensuring the parts are as equal as possible.
// If the money cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one unit of the last displayed digit at a time.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	// Parts
	if parts < 1 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}

	// Quotient
	c, d := m.Currency(), m.Amount()
	quo, err := d.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(d.Scale()).Pad(d.Scale())

	// Reminder
	rem, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = d.Sub(rem)
	if err != nil {
		return nil, err
	}
	ulp, err := decimal.New(1, d.Scale())
	if err != nil {
		return nil, err
	}
	ulp = ulp.CopySign(rem)

	res := make([]Money, parts)
	for i := range res {
		part := quo
		// Reminder distribution
		if !rem.IsZero() {
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, err
			}
			part, err = part.Add(ulp)
			if err != nil {
				return nil, err
			}
		}
		res[i], err = newMoneyRounded(c, part)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// SameCurr returns true if money is denominated in the same currency.
// See also method [Money.Currency].
func (m Money) SameCurr(b Money) bool {
	return m.Currency() == b.Currency()
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of money, the currency code followed by the amount,
// for example "USD 1.20".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Currency().String() + " " + m.Amount().String()
}

// Hash returns a hash of the money.
// Equal money values always have equal hashes.
func (m Money) Hash() uint64 {
	d := m.Amount()
	h := fnv.New64a()
	h.Write([]byte(m.Currency().String())) //nolint:errcheck
	var buf [10]byte
	coef := d.Coef()
	for i := 0; i < 8; i++ {
		buf[i] = byte(coef >> (56 - 8*i))
	}
	buf[8] = byte(d.Scale())
	if d.IsNeg() {
		buf[9] = 1
	}
	h.Write(buf[:]) //nolint:errcheck
	return h.Sum64()
}

// Cmp compares money and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// See also method [Money.CmpAbs].
//
// Cmp returns an error if money is denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	d, e := m.Amount(), b.Amount()
	return d.Cmp(e), nil
}

// CmpAbs compares absolute values of money and returns:
//
//	-1 if |m| < |b|
//	 0 if |m| = |b|
//	+1 if |m| > |b|
//
// See also method [Money.Cmp].
//
// CmpAbs returns an error if money is denominated in different currencies.
func (m Money) CmpAbs(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [abs(%v)] and [abs(%v)]: %w", m, b, ErrCurrencyMismatch)
	}
	d, e := m.Amount(), b.Amount()
	return d.CmpAbs(e), nil
}

// Equal returns true if m = b.
// Equal returns an error if money is denominated in different currencies.
func (m Money) Equal(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c == 0, err
}

// Less returns true if m < b.
// Less returns an error if money is denominated in different currencies.
func (m Money) Less(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c < 0, err
}

// LessOrEqual returns true if m <= b.
// LessOrEqual returns an error if money is denominated in different currencies.
func (m Money) LessOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c <= 0, err
}

// Greater returns true if m > b.
// Greater returns an error if money is denominated in different currencies.
func (m Money) Greater(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c > 0, err
}

// GreaterOrEqual returns true if m >= b.
// GreaterOrEqual returns an error if money is denominated in different currencies.
func (m Money) GreaterOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c >= 0, err
}

// Min returns the smaller money value.
// See also method [Money.Cmp].
//
// Min returns an error if money is denominated in different currencies.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0: // m <= b
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger money value.
// See also method [Money.Cmp].
//
// Max returns an error if money is denominated in different currencies.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0: // m >= b
		return m, nil
	default:
		return b, nil
	}
}
