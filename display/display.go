// Package display renders monetary values for humans.
//
// A [Formatter] is bound to a locale, which supplies the currency symbols,
// the digits and the separators, and to a pattern, which arranges the
// currency and the number.
// Amounts are always shown with exactly as many fractional digits as the
// display precision of their currency, and are never converted to binary
// floating point.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exactmoney/money"
	"github.com/govalues/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used by [Format].
const DefaultLocale = "en_US"

// Value is an amount denominated in a currency, such as [money.Money].
type Value interface {
	Amount() decimal.Decimal
	Currency() money.Currency
}

// Style selects how the currency is shown.
type Style int

const (
	Symbol  Style = iota // $3.24
	ISOCode              // USD 3.24
	Name                 // 3.24 US Dollar
	Pattern              // set by WithPattern
)

var styleNames = [...]string{
	Symbol:  "symbol",
	ISOCode: "code",
	Name:    "name",
	Pattern: "pattern",
}

var defaultPatterns = [...]string{
	Symbol:  "¤#,##0.00",
	ISOCode: "¤¤ #,##0.00",
	Name:    "#,##0.00 ¤¤¤",
}

// ParseStyle converts "symbol", "code", "name" or "pattern" to a style.
func ParseStyle(s string) (Style, error) {
	for i, n := range styleNames {
		if n == s {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("unknown style %q", s)
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
	return styleNames[s]
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithStyle selects one of the predefined patterns.
func WithStyle(s Style) Option {
	return func(f *Formatter) {
		f.style = s
	}
}

// WithPattern sets a custom pattern and selects the [Pattern] style.
// In a pattern, "¤" stands for the currency symbol, "¤¤" for the ISO code,
// "¤¤¤" for the name, and a run of the characters "#0,." for the number.
// The number is grouped if its section contains ",".
// The number of fractional digits always equals the display precision of the
// currency, regardless of the section.
// Any other character is copied to the output.
func WithPattern(p string) Option {
	return func(f *Formatter) {
		f.style = Pattern
		f.pattern = p
	}
}

// Formatter renders monetary values for a locale.
// It is immutable and safe for concurrent use by multiple goroutines.
type Formatter struct {
	tag     language.Tag
	style   Style
	pattern string
	tokens  []token
	decimal string // decimal separator of the locale
}

// New returns a formatter for the locale, given as a BCP 47 tag such as
// "en-US" or in the underscore form "en_US".
// The default style is [Symbol].
func New(locale string, opts ...Option) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	f := &Formatter{tag: tag, style: Symbol}
	for _, opt := range opts {
		opt(f)
	}
	switch {
	case f.style == Pattern:
	case f.style >= 0 && int(f.style) < len(defaultPatterns):
		f.pattern = defaultPatterns[f.style]
	default:
		return nil, fmt.Errorf("unknown style %v", f.style)
	}
	f.tokens, err = parsePattern(f.pattern)
	if err != nil {
		return nil, fmt.Errorf("parsing pattern: %w", err)
	}
	f.decimal = decimalSeparator(f.printer())
	return f, nil
}

// Locale returns the language tag of the formatter.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Style returns the style of the formatter.
func (f *Formatter) Style() Style {
	return f.style
}

func (f *Formatter) printer() *message.Printer {
	return message.NewPrinter(f.tag)
}

// Format returns the localized representation of v.
// The amount is rounded to the display precision of its currency first,
// which does not change values of type [money.Money].
func (f *Formatter) Format(v Value) (string, error) {
	c := v.Currency()
	d, err := money.RoundToCurr(c, v.Amount())
	if err != nil {
		return "", fmt.Errorf("formatting %v %v: %w", c, v.Amount(), err)
	}

	p := f.printer()
	var b strings.Builder
	if d.IsNeg() {
		b.WriteByte('-')
	}
	for _, t := range f.tokens {
		switch t.kind {
		case tokLiteral:
			b.WriteString(t.text)
		case tokSymbol:
			b.WriteString(currencySymbol(p, c))
		case tokCode:
			b.WriteString(c.Code())
		case tokName:
			b.WriteString(c.Name())
		case tokNumber:
			b.WriteString(f.number(p, d, t.grouping))
		}
	}
	return b.String(), nil
}

// number renders the absolute value of d with exactly d.Scale() fractional
// digits. The integer and fractional parts are formatted separately as
// integers, so that no digit is lost to floating point.
func (f *Formatter) number(p *message.Printer, d decimal.Decimal, grouping bool) string {
	scale := d.Scale()
	pow := uint64(1)
	for i := 0; i < scale; i++ {
		pow *= 10
	}
	coef := d.Coef()
	whole, frac := coef/pow, coef%pow

	opts := []number.Option{number.Scale(0)}
	if !grouping {
		opts = append(opts, number.NoSeparator())
	}
	s := p.Sprint(number.Decimal(whole, opts...))
	if scale == 0 {
		return s
	}
	return s + f.decimal + p.Sprint(number.Decimal(frac,
		number.Scale(0),
		number.NoSeparator(),
		number.MinIntegerDigits(scale),
	))
}

// decimalSeparator returns the decimal separator used by the printer,
// for example "." in English and "," in French.
func decimalSeparator(p *message.Printer) string {
	rs := []rune(p.Sprint(number.Decimal(0.5, number.Scale(1))))
	if len(rs) < 3 {
		return "."
	}
	return string(rs[1 : len(rs)-1])
}

// currencySymbol returns the symbol of c in the language of the printer.
// Currencies unknown to the CLDR tables are shown by their ISO code.
func currencySymbol(p *message.Printer, c money.Currency) string {
	u, err := currency.ParseISO(c.Code())
	if err != nil {
		return c.Code()
	}
	return p.Sprint(currency.Symbol(u))
}

// Format formats v in the [DefaultLocale] using the [Symbol] style,
// for example "$3.24".
func Format(v Value) (string, error) {
	f, err := New(DefaultLocale)
	if err != nil {
		return "", err
	}
	return f.Format(v)
}
