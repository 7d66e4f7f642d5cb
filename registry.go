package money

import "fmt"

// Registry provides the rounding facts of currencies.
// Both lookups are pure and return [ErrUnknownCurrency] for a currency
// that has no entry.
type Registry interface {
	// SubunitDivisor returns the number of sub-units in one unit,
	// a positive power of ten.
	SubunitDivisor(c Currency) (int64, error)
	// DisplayPrecision returns the number of digits after the decimal point
	// in the canonical representation of an amount.
	DisplayPrecision(c Currency) (int, error)
}

// isoRegistry is backed by the generated ISO 4217 tables.
type isoRegistry struct{}

func (isoRegistry) SubunitDivisor(c Currency) (int64, error) {
	if !c.valid() {
		return 0, fmt.Errorf("looking up sub-units of %v: %w", c, ErrUnknownCurrency)
	}
	return c.SubunitDivisor(), nil
}

func (isoRegistry) DisplayPrecision(c Currency) (int, error) {
	if !c.valid() {
		return 0, fmt.Errorf("looking up precision of %v: %w", c, ErrUnknownCurrency)
	}
	return c.Precision(), nil
}

// DefaultRegistry returns the registry of all ISO 4217 currencies known to
// this package. It is read-only and safe for concurrent use.
func DefaultRegistry() Registry {
	return isoRegistry{}
}

// Currencies returns all currencies known to the default registry, ordered
// by their index.
func Currencies() []Currency {
	currs := make([]Currency, len(codeLookup))
	for i := range currs {
		currs[i] = Currency(i)
	}
	return currs
}
