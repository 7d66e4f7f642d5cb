package money

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestMoney_ZeroValue(t *testing.T) {
	got := Money{}
	want := MustParseMoney("XXX", "0")
	if got != want {
		t.Errorf("Money{} = %q, want %q", got, want)
	}
}

func TestMoney_Interfaces(t *testing.T) {
	var i any = Money{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
}

func TestPolicy_String(t *testing.T) {
	tests := []struct {
		p    Policy
		want string
	}{
		{Strict, "strict"},
		{Round, "round"},
		{Policy(7), "Policy(7)"},
	}
	for _, tt := range tests {
		got := tt.p.String()
		if got != tt.want {
			t.Errorf("Policy(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestParseMoney(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			want         string
		}{
			{"", "3.95", "USD 3.95"},
			{"USD", "1", "USD 1.00"},
			{"USD", "-1.5", "USD -1.50"},
			{"USD", "3.950", "USD 3.95"},
			{"JPY", "199", "JPY 199"},
			{"KWD", "192.325", "KWD 192.325"},
			{"GNF", "3", "GNF 3"},
			{"CLF", "1.2345", "CLF 1.2345"},
			{"usd", "0", "USD 0.00"},
			{"840", "0.01", "USD 0.01"},
			{"USD", "1.00000000000000000000000", "USD 1.00"},
			{"USD", "0.0000000000000000000000e5", "USD 0.00"},
			{"JPY", "12e3", "JPY 12000"},
		}
		for _, tt := range tests {
			got, err := ParseMoney(tt.curr, tt.amount, Strict)
			if err != nil {
				t.Errorf("ParseMoney(%q, %q, Strict) failed: %v", tt.curr, tt.amount, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseMoney(%q, %q, Strict) = %q, want %q", tt.curr, tt.amount, got, tt.want)
			}
		}
	})

	t.Run("round", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			want         string
		}{
			{"", "3.956", "USD 3.96"},
			{"USD", "3.955", "USD 3.96"},
			{"USD", "-3.955", "USD -3.96"},
			{"USD", "3.954999", "USD 3.95"},
			{"KRW", "10.2", "KRW 10"},
			{"JPY", "5.5", "JPY 6"},
			{"JPY", "-5.5", "JPY -6"},
			{"JPY", "4.4985", "JPY 4"},
			{"GNF", "4.4985", "GNF 5"},
			{"GNF", "4.494", "GNF 4"},
			{"KWD", "0.0005", "KWD 0.001"},
			{"USD", "0.004", "USD 0.00"},
			{"USD", "1.0049999999999999999", "USD 1.00"},
			{"USD", "-1.0049999999999999999", "USD -1.00"},
			{"USD", "1.0050000000000000001", "USD 1.01"},
			{"USD", "999999999999999.99499999", "USD 999999999999999.99"},
			{"USD", "100.49999999999999999999e-2", "USD 1.00"},
			{"USD", "0.00000000000000000000001", "USD 0.00"},
			{"GNF", "4.49850000000000000001", "GNF 5"},
		}
		for _, tt := range tests {
			got, err := ParseMoney(tt.curr, tt.amount, Round)
			if err != nil {
				t.Errorf("ParseMoney(%q, %q, Round) failed: %v", tt.curr, tt.amount, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseMoney(%q, %q, Round) = %q, want %q", tt.curr, tt.amount, got, tt.want)
			}
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		tests := []struct {
			curr, amount string
		}{
			{"USD", "3.956"},
			{"KRW", "10.2"},
			{"JPY", "5.5"},
			{"GNF", "1.01"},
			{"KWD", "192.3251"},
			{"USD", "1.0000000000000000001"},
			{"USD", "1.0049999999999999999"},
			{"USD", "-0.00000000000000000000001"},
			{"USD", "+3.9560"},
			{"USD", "1.0000000000000000001e1"},
		}
		for _, tt := range tests {
			_, err := ParseMoney(tt.curr, tt.amount, Strict)
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseMoney(%q, %q, Strict) = %v, want %v", tt.curr, tt.amount, err, ErrInvalidAmount)
				continue
			}
			var e *InvalidAmountError
			if !errors.As(err, &e) {
				t.Errorf("ParseMoney(%q, %q, Strict) error is not %T", tt.curr, tt.amount, e)
				continue
			}
			if e.Curr != MustParseCurr(tt.curr) || e.Amount != tt.amount {
				t.Errorf("ParseMoney(%q, %q, Strict) error = %+v", tt.curr, tt.amount, *e)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr, amount string
		}{
			"currency 1": {"UUU", "0"},
			"currency 2": {"US", "0"},
			"amount 1":   {"USD", ""},
			"amount 2":   {"USD", "1.2.3"},
			"amount 3":   {"USD", "abc"},
			"overflow 1": {"USD", "99999999999999999999"},
			"overflow 2": {"USD", "999999999999999999.9"},
			"overflow 3": {"KWD", "9999999999999999999"},
			"overflow 4": {"USD", "99999999999999999.999"},
			"overflow 5": {"USD", "1e40"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				for _, p := range []Policy{Strict, Round} {
					_, err := ParseMoney(tt.curr, tt.amount, p)
					if err == nil {
						t.Errorf("ParseMoney(%q, %q, %v) did not fail", tt.curr, tt.amount, p)
					}
				}
			})
		}
	})
}

func TestInvalidAmountError_Error(t *testing.T) {
	_, err := ParseMoney("USD", "3.956", Strict)
	if err == nil {
		t.Fatalf("ParseMoney(\"USD\", \"3.956\", Strict) did not fail")
	}
	want := "'3.956' is an invalid amount for currency USD"
	if err.Error() != want {
		t.Errorf("err.Error() = %q, want %q", err.Error(), want)
	}
}

func TestMustParseMoney(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseMoney(\"USD\", \"3.956\") did not panic")
			}
		}()
		MustParseMoney("USD", "3.956")
	})
}

func TestNewMoney(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr   Currency
			amount string
			p      Policy
			want   string
		}{
			{USD, "3.95", Strict, "3.95"},
			{USD, "3.956", Round, "3.96"},
			{KRW, "10.2", Round, "10"},
			{JPY, "5.5", Round, "6"},
			{KWD, "192.325", Strict, "192.325"},
		}
		for _, tt := range tests {
			got, err := NewMoney(tt.curr, decimal.MustParse(tt.amount), tt.p)
			if err != nil {
				t.Errorf("NewMoney(%v, %v, %v) failed: %v", tt.curr, tt.amount, tt.p, err)
				continue
			}
			want := MustParseMoney(tt.curr.Code(), tt.want)
			if got != want {
				t.Errorf("NewMoney(%v, %v, %v) = %q, want %q", tt.curr, tt.amount, tt.p, got, want)
			}
		}
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := NewMoney(Currency(255), decimal.One, Round)
		if !errors.Is(err, ErrUnknownCurrency) {
			t.Errorf("NewMoney(Currency(255), 1, Round) = %v, want %v", err, ErrUnknownCurrency)
		}
	})
}

func TestMustNewMoney(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewMoney(KRW, 10.2) did not panic")
			}
		}()
		MustNewMoney(KRW, decimal.MustParse("10.2"))
	})
}

func TestNewMoneyFromInt64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr  Currency
			units int64
			want  string
		}{
			{USD, 1, "1.00"},
			{JPY, 199, "199"},
			{KWD, -7, "-7.000"},
			{JPY, math.MaxInt64, "9223372036854775807"},
		}
		for _, tt := range tests {
			got, err := NewMoneyFromInt64(tt.curr, tt.units)
			if err != nil {
				t.Errorf("NewMoneyFromInt64(%v, %v) failed: %v", tt.curr, tt.units, err)
				continue
			}
			want := MustParseMoney(tt.curr.Code(), tt.want)
			if got != want {
				t.Errorf("NewMoneyFromInt64(%v, %v) = %q, want %q", tt.curr, tt.units, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewMoneyFromInt64(USD, math.MaxInt64)
		if err == nil {
			t.Errorf("NewMoneyFromInt64(USD, math.MaxInt64) did not fail")
		}
	})
}

func TestNewMoneyFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr   Currency
			amount float64
			p      Policy
			want   string
		}{
			{USD, 3.95, Strict, "3.95"},
			{KWD, 192.325, Strict, "192.325"},
			{USD, 1.01, Strict, "1.01"},
			{USD, 0.1 + 0.2, Round, "0.30"},
			{USD, 3.956, Round, "3.96"},
			{JPY, 5.5, Round, "6"},
		}
		for _, tt := range tests {
			got, err := NewMoneyFromFloat64(tt.curr, tt.amount, tt.p)
			if err != nil {
				t.Errorf("NewMoneyFromFloat64(%v, %v, %v) failed: %v", tt.curr, tt.amount, tt.p, err)
				continue
			}
			want := MustParseMoney(tt.curr.Code(), tt.want)
			if got != want {
				t.Errorf("NewMoneyFromFloat64(%v, %v, %v) = %q, want %q", tt.curr, tt.amount, tt.p, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr   Currency
			amount float64
		}{
			"invalid 1": {USD, 3.956},
			"invalid 2": {KRW, 10.2},
			"invalid 3": {USD, 0.1 + 0.2},
			"special 1": {USD, math.NaN()},
			"special 2": {USD, math.Inf(1)},
			"special 3": {USD, math.Inf(-1)},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewMoneyFromFloat64(tt.curr, tt.amount, Strict)
				if err == nil {
					t.Errorf("NewMoneyFromFloat64(%v, %v, Strict) did not fail", tt.curr, tt.amount)
				}
			})
		}
	})
}

func TestNewMoneyFromSubUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr  Currency
			units int64
			want  string
		}{
			{USD, 101, "1.01"},
			{USD, -101, "-1.01"},
			{USD, 0, "0.00"},
			{JPY, 5, "5"},
			{KWD, 192325, "192.325"},
			{GNF, 300, "3"},
			{VND, 120, "12"},
			{CLF, 12345, "1.2345"},
		}
		for _, tt := range tests {
			got, err := NewMoneyFromSubUnits(tt.curr, tt.units)
			if err != nil {
				t.Errorf("NewMoneyFromSubUnits(%v, %v) failed: %v", tt.curr, tt.units, err)
				continue
			}
			want := MustParseMoney(tt.curr.Code(), tt.want)
			if got != want {
				t.Errorf("NewMoneyFromSubUnits(%v, %v) = %q, want %q", tt.curr, tt.units, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr  Currency
			units int64
		}{
			"not displayable 1": {GNF, 101},
			"not displayable 2": {VND, 125},
			"unknown currency":  {Currency(200), 1},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewMoneyFromSubUnits(tt.curr, tt.units)
				if err == nil {
					t.Errorf("NewMoneyFromSubUnits(%v, %v) did not fail", tt.curr, tt.units)
				}
			})
		}
	})
}

func TestMoney_SubUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			want         int64
		}{
			{"USD", "1.01", 101},
			{"USD", "-1.01", -101},
			{"USD", "0", 0},
			{"JPY", "88", 88},
			{"KWD", "192.325", 192325},
			{"GNF", "3", 300},
			{"VND", "12", 120},
			{"USD", "92233720368547758.07", math.MaxInt64},
		}
		for _, tt := range tests {
			m := MustParseMoney(tt.curr, tt.amount)
			got, ok := m.SubUnits()
			if !ok {
				t.Errorf("%q.SubUnits() failed", m)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.SubUnits() = %v, want %v", m, got, tt.want)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := []struct {
			curr, amount string
		}{
			{"USD", "92233720368547758.08"},
			{"GNF", "9999999999999999999"},
		}
		for _, tt := range tests {
			m := MustParseMoney(tt.curr, tt.amount)
			_, ok := m.SubUnits()
			if ok {
				t.Errorf("%q.SubUnits() did not fail", m)
			}
		}
	})
}

// TestMoney_SubUnitsRoundTrip checks that converting sub-units to money and
// back is lossless, and that truncating in SubUnits agrees with rounding.
func TestMoney_SubUnitsRoundTrip(t *testing.T) {
	units := []int64{0, 1, 5, 99, 100, 101, 1000, 12345, 987654321}
	for _, c := range Currencies() {
		// Counts that are not displayable are rejected, see NewMoneyFromSubUnits.
		step := int64(1)
		for i := c.Precision(); i < c.SubunitScale(); i++ {
			step *= 10
		}
		for _, u := range units {
			n := u * step
			m, err := NewMoneyFromSubUnits(c, n)
			if err != nil {
				t.Errorf("NewMoneyFromSubUnits(%v, %v) failed: %v", c, n, err)
				continue
			}
			got, ok := m.SubUnits()
			if !ok || got != n {
				t.Errorf("NewMoneyFromSubUnits(%v, %v).SubUnits() = %v, %v, want %v, true", c, n, got, ok, n)
			}
			div, err := decimal.New(c.SubunitDivisor(), 0)
			if err != nil {
				t.Fatal(err)
			}
			d, err := m.Amount().Mul(div)
			if err != nil {
				t.Fatal(err)
			}
			if !d.IsInt() {
				t.Errorf("%q is not a multiple of the sub-unit step", m)
			}
		}
	}
}

func TestMoney_Hash(t *testing.T) {
	tests := []struct {
		a, b Money
		want bool
	}{
		{MustParseMoney("USD", "1.2"), MustParseMoney("", "1.20"), true},
		{MustParseMoney("USD", "1.2"), MustParseMoney("USD", "1.2"), true},
		{MustParseMoney("USD", "-1.2"), MustParseMoney("USD", "-1.20"), true},
		{MustParseMoney("USD", "9.3"), MustParseMoney("USD", "1.5"), false},
		{MustParseMoney("USD", "99.3"), MustParseMoney("CHF", "99.3"), false},
		{MustParseMoney("USD", "1.5"), MustParseMoney("USD", "-1.5"), false},
	}
	for _, tt := range tests {
		got := tt.a.Hash() == tt.b.Hash()
		if got != tt.want {
			t.Errorf("%q.Hash() == %q.Hash() = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMoney_IsZero(t *testing.T) {
	tests := []struct {
		curr, amount string
		want         bool
	}{
		{"USD", "3.62", false},
		{"USD", "-0.01", false},
		{"USD", "0.00", true},
		{"JPY", "0", true},
	}
	for _, tt := range tests {
		m := MustParseMoney(tt.curr, tt.amount)
		got := m.IsZero()
		if got != tt.want {
			t.Errorf("%q.IsZero() = %v, want %v", m, got, tt.want)
		}
	}
}

func TestMoney_Sign(t *testing.T) {
	tests := []struct {
		amount string
		want   int
	}{
		{"-1", -1},
		{"0", 0},
		{"1", 1},
	}
	for _, tt := range tests {
		m := MustParseMoney("USD", tt.amount)
		if got := m.Sign(); got != tt.want {
			t.Errorf("%q.Sign() = %v, want %v", m, got, tt.want)
		}
		if got := m.IsNeg(); got != (tt.want < 0) {
			t.Errorf("%q.IsNeg() = %v", m, got)
		}
		if got := m.IsPos(); got != (tt.want > 0) {
			t.Errorf("%q.IsPos() = %v", m, got)
		}
	}
}

func TestMoney_Unary(t *testing.T) {
	tests := []struct {
		amount        string
		neg, pos, abs string
	}{
		{"5.23", "-5.23", "5.23", "5.23"},
		{"-1.35", "1.35", "-1.35", "1.35"},
		{"0", "0", "0", "0"},
	}
	for _, tt := range tests {
		m := MustParseMoney("USD", tt.amount)
		if got, want := m.Neg(), MustParseMoney("USD", tt.neg); got != want {
			t.Errorf("%q.Neg() = %q, want %q", m, got, want)
		}
		if got, want := m.Pos(), MustParseMoney("USD", tt.pos); got != want {
			t.Errorf("%q.Pos() = %q, want %q", m, got, want)
		}
		if got, want := m.Abs(), MustParseMoney("USD", tt.abs); got != want {
			t.Errorf("%q.Abs() = %q, want %q", m, got, want)
		}
	}
}

func TestMoney_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, a, b, want string
		}{
			{"USD", "3.5", "1.25", "4.75"},
			{"USD", "-3.5", "1.25", "-2.25"},
			{"JPY", "1", "2", "3"},
			{"KWD", "0.001", "0.002", "0.003"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.a)
			b := MustParseMoney(tt.curr, tt.b)
			got, err := a.Add(b)
			if err != nil {
				t.Errorf("%q.Add(%q) failed: %v", a, b, err)
				continue
			}
			want := MustParseMoney(tt.curr, tt.want)
			if got != want {
				t.Errorf("%q.Add(%q) = %q, want %q", a, b, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b Money
			err  error
		}{
			"mismatch": {MustParseMoney("EUR", "3.5"), MustParseMoney("GBP", "23"), ErrCurrencyMismatch},
			"overflow": {MustParseMoney("USD", "99999999999999999"), MustParseMoney("USD", "1"), nil},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.a.Add(tt.b)
				if err == nil {
					t.Errorf("%q.Add(%q) did not fail", tt.a, tt.b)
					return
				}
				if tt.err != nil && !errors.Is(err, tt.err) {
					t.Errorf("%q.Add(%q) = %v, want %v", tt.a, tt.b, err, tt.err)
				}
			})
		}
	})
}

func TestMoney_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, a, b, want string
		}{
			{"USD", "3.5", "1.25", "2.25"},
			{"USD", "4", "5.5", "-1.5"},
			{"JPY", "1", "2", "-1"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.a)
			b := MustParseMoney(tt.curr, tt.b)
			got, err := a.Sub(b)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", a, b, err)
				continue
			}
			want := MustParseMoney(tt.curr, tt.want)
			if got != want {
				t.Errorf("%q.Sub(%q) = %q, want %q", a, b, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParseMoney("EUR", "3.5")
		b := MustParseMoney("GBP", "1.8")
		_, err := a.Sub(b)
		if !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%q.Sub(%q) = %v, want %v", a, b, err, ErrCurrencyMismatch)
		}
	})
}

func TestMoney_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, a, e, want string
		}{
			{"USD", "3.2", "3", "9.6"},
			{"USD", "9.95", "0.15", "1.49"},
			{"USD", "-9.95", "0.15", "-1.49"},
			{"USD", "0.05", "0.5", "0.03"},
			{"JPY", "3", "0.2", "1"},
			{"KRW", "3", "1.5", "5"},
			{"JPY", "3", "1.4995", "4"},
			{"GNF", "3", "1.4995", "5"},
			{"KWD", "1.000", "0.0005", "0.001"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.a)
			e := decimal.MustParse(tt.e)
			got, err := a.Mul(e)
			if err != nil {
				t.Errorf("%q.Mul(%v) failed: %v", a, e, err)
				continue
			}
			want := MustParseMoney(tt.curr, tt.want)
			if got != want {
				t.Errorf("%q.Mul(%v) = %q, want %q", a, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParseMoney("USD", "99999999999999999")
		e := decimal.MustParse("10")
		_, err := a.Mul(e)
		if err == nil {
			t.Errorf("%q.Mul(%v) did not fail", a, e)
		}
	})
}

func TestMoney_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, a, e, want string
		}{
			{"USD", "3.3", "3", "1.1"},
			{"USD", "9.95", "0.24", "41.46"},
			{"USD", "1", "3", "0.33"},
			{"USD", "2", "3", "0.67"},
			{"USD", "-2", "3", "-0.67"},
			{"JPY", "3", "1.6", "2"},
			{"GNF", "3", "2", "2"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.a)
			e := decimal.MustParse(tt.e)
			got, err := a.Quo(e)
			if err != nil {
				t.Errorf("%q.Quo(%v) failed: %v", a, e, err)
				continue
			}
			want := MustParseMoney(tt.curr, tt.want)
			if got != want {
				t.Errorf("%q.Quo(%v) = %q, want %q", a, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"0", "0.0", "-0.00"}
		a := MustParseMoney("USD", "3.3")
		for _, tt := range tests {
			e := decimal.MustParse(tt)
			_, err := a.Quo(e)
			if !errors.Is(err, ErrDivideByZero) {
				t.Errorf("%q.Quo(%v) = %v, want %v", a, e, err, ErrDivideByZero)
			}
		}
	})
}

func TestMoney_QuoInt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, a, e, want string
		}{
			{"USD", "3.3", "3", "1"},
			{"USD", "9.95", "0.24", "41"},
			{"USD", "-3.3", "3", "-1"},
			{"JPY", "3", "1.6", "1"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.a)
			e := decimal.MustParse(tt.e)
			got, err := a.QuoInt(e)
			if err != nil {
				t.Errorf("%q.QuoInt(%v) failed: %v", a, e, err)
				continue
			}
			want := MustParseMoney(tt.curr, tt.want)
			if got != want {
				t.Errorf("%q.QuoInt(%v) = %q, want %q", a, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParseMoney("USD", "3")
		_, err := a.QuoInt(decimal.Zero)
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("%q.QuoInt(0) = %v, want %v", a, err, ErrDivideByZero)
		}
	})
}

func TestMoney_Rem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, a, e, want string
		}{
			{"USD", "3.3", "3", "0.3"},
			{"USD", "-3.3", "3", "-0.3"},
			{"USD", "9.95", "0.24", "0.11"},
			{"JPY", "3", "2", "1"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.a)
			e := decimal.MustParse(tt.e)
			got, err := a.Rem(e)
			if err != nil {
				t.Errorf("%q.Rem(%v) failed: %v", a, e, err)
				continue
			}
			want := MustParseMoney(tt.curr, tt.want)
			if got != want {
				t.Errorf("%q.Rem(%v) = %q, want %q", a, e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParseMoney("USD", "3.3")
		_, err := a.Rem(decimal.MustParse("0.0"))
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("%q.Rem(0.0) = %v, want %v", a, err, ErrDivideByZero)
		}
	})
}

func TestMoney_Rat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, a, b string
			rat        string
			ratInt     string
			ratRem     string
		}{
			{"USD", "3.6", "2.5", "1.44", "1", "1.1"},
			{"USD", "3", "2", "1.5", "1", "1"},
			{"JPY", "-7", "2", "-3.5", "-3", "-1"},
			{"USD", "1", "3", "0.3333333333333333333", "0", "1"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.a)
			b := MustParseMoney(tt.curr, tt.b)

			got, err := a.Rat(b)
			if err != nil {
				t.Errorf("%q.Rat(%q) failed: %v", a, b, err)
			} else if want := decimal.MustParse(tt.rat); got.Cmp(want) != 0 {
				t.Errorf("%q.Rat(%q) = %v, want %v", a, b, got, want)
			}

			got, err = a.RatInt(b)
			if err != nil {
				t.Errorf("%q.RatInt(%q) failed: %v", a, b, err)
			} else if want := decimal.MustParse(tt.ratInt); got.Cmp(want) != 0 {
				t.Errorf("%q.RatInt(%q) = %v, want %v", a, b, got, want)
			}

			got, err = a.RatRem(b)
			if err != nil {
				t.Errorf("%q.RatRem(%q) failed: %v", a, b, err)
			} else if want := decimal.MustParse(tt.ratRem); got.Cmp(want) != 0 {
				t.Errorf("%q.RatRem(%q) = %v, want %v", a, b, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b Money
			err  error
		}{
			"zero":     {MustParseMoney("USD", "3.3"), MustParseMoney("USD", "0"), ErrDivideByZero},
			"mismatch": {MustParseMoney("EUR", "3.5"), MustParseMoney("GBP", "1.8"), ErrCurrencyMismatch},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := tt.a.Rat(tt.b); !errors.Is(err, tt.err) {
					t.Errorf("%q.Rat(%q) = %v, want %v", tt.a, tt.b, err, tt.err)
				}
				if _, err := tt.a.RatInt(tt.b); !errors.Is(err, tt.err) {
					t.Errorf("%q.RatInt(%q) = %v, want %v", tt.a, tt.b, err, tt.err)
				}
				if _, err := tt.a.RatRem(tt.b); !errors.Is(err, tt.err) {
					t.Errorf("%q.RatRem(%q) = %v, want %v", tt.a, tt.b, err, tt.err)
				}
			})
		}
	})
}

func mustParseMoneySlice(curr string, amounts []string) []Money {
	res := make([]Money, len(amounts))
	for i := range amounts {
		res[i] = MustParseMoney(curr, amounts[i])
	}
	return res
}

func TestMoney_Split(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, m string
			parts   int
			want    []string
		}{
			{"USD", "1", 1, []string{"1"}},
			{"USD", "1", 3, []string{"0.34", "0.33", "0.33"}},
			{"USD", "2", 3, []string{"0.67", "0.67", "0.66"}},
			{"USD", "-1", 3, []string{"-0.34", "-0.33", "-0.33"}},
			{"USD", "0.01", 2, []string{"0.01", "0.00"}},
			{"JPY", "10", 4, []string{"3", "3", "2", "2"}},
			{"KWD", "1", 3, []string{"0.334", "0.333", "0.333"}},
		}
		for _, tt := range tests {
			m := MustParseMoney(tt.curr, tt.m)
			got, err := m.Split(tt.parts)
			if err != nil {
				t.Errorf("%q.Split(%v) failed: %v", m, tt.parts, err)
				continue
			}
			want := mustParseMoneySlice(tt.curr, tt.want)
			if len(got) != len(want) {
				t.Errorf("%q.Split(%v) = %v, want %v", m, tt.parts, got, want)
				continue
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("%q.Split(%v) = %v, want %v", m, tt.parts, got, want)
					break
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		m := MustParseMoney("USD", "1")
		for _, parts := range []int{0, -1} {
			_, err := m.Split(parts)
			if err == nil {
				t.Errorf("%q.Split(%v) did not fail", m, parts)
			}
		}
	})
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{MustParseMoney("USD", "1.2"), "USD 1.20"},
		{MustParseMoney("CHF", "3.6"), "CHF 3.60"},
		{MustParseMoney("JPY", "88"), "JPY 88"},
		{MustParseMoney("CAD", "1"), "CAD 1.00"},
		{MustParseMoney("KWD", "192.325"), "KWD 192.325"},
		{MustParseMoney("USD", "-0.01"), "USD -0.01"},
		{Money{}, "XXX 0"},
	}
	for _, tt := range tests {
		got := tt.m.String()
		if got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.m.Amount(), got, tt.want)
		}
	}
}

func TestMoney_Cmp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b string
			want int
		}{
			{"1.2", "3.5", -1},
			{"104.2", "5.13", 1},
			{"2.2", "2.2", 0},
			{"2.2", "2.20", 0},
			{"-1", "1", -1},
		}
		for _, tt := range tests {
			a := MustParseMoney("USD", tt.a)
			b := MustParseMoney("USD", tt.b)
			got, err := a.Cmp(b)
			if err != nil {
				t.Errorf("%q.Cmp(%q) failed: %v", a, b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", a, b, got, tt.want)
			}
			checks := []struct {
				name string
				fn   func(Money) (bool, error)
				want bool
			}{
				{"Equal", a.Equal, tt.want == 0},
				{"Less", a.Less, tt.want < 0},
				{"LessOrEqual", a.LessOrEqual, tt.want <= 0},
				{"Greater", a.Greater, tt.want > 0},
				{"GreaterOrEqual", a.GreaterOrEqual, tt.want >= 0},
			}
			for _, c := range checks {
				got, err := c.fn(b)
				if err != nil {
					t.Errorf("%q.%v(%q) failed: %v", a, c.name, b, err)
					continue
				}
				if got != c.want {
					t.Errorf("%q.%v(%q) = %v, want %v", a, c.name, b, got, c.want)
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParseMoney("GBP", "1.2")
		b := MustParseMoney("EUR", "3.5")
		if _, err := a.Cmp(b); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%q.Cmp(%q) = %v, want %v", a, b, err, ErrCurrencyMismatch)
		}
		for name, fn := range map[string]func(Money) (bool, error){
			"Equal":          a.Equal,
			"Less":           a.Less,
			"LessOrEqual":    a.LessOrEqual,
			"Greater":        a.Greater,
			"GreaterOrEqual": a.GreaterOrEqual,
		} {
			got, err := fn(b)
			if !errors.Is(err, ErrCurrencyMismatch) {
				t.Errorf("%q.%v(%q) = %v, want %v", a, name, b, err, ErrCurrencyMismatch)
			}
			if got {
				t.Errorf("%q.%v(%q) = true on error", a, name, b)
			}
		}
	})
}

func TestMoney_CmpAbs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"-3", "2", 1},
		{"-2", "2", 0},
		{"1", "-2", -1},
	}
	for _, tt := range tests {
		a := MustParseMoney("USD", tt.a)
		b := MustParseMoney("USD", tt.b)
		got, err := a.CmpAbs(b)
		if err != nil {
			t.Errorf("%q.CmpAbs(%q) failed: %v", a, b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.CmpAbs(%q) = %v, want %v", a, b, got, tt.want)
		}
	}
	_, err := MustParseMoney("USD", "1").CmpAbs(MustParseMoney("EUR", "1"))
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("CmpAbs across currencies = %v, want %v", err, ErrCurrencyMismatch)
	}
}

func TestMoney_MinMax(t *testing.T) {
	a := MustParseMoney("USD", "1.5")
	b := MustParseMoney("USD", "-2")
	if got, err := a.Min(b); err != nil || got != b {
		t.Errorf("%q.Min(%q) = %q, %v, want %q", a, b, got, err, b)
	}
	if got, err := a.Max(b); err != nil || got != a {
		t.Errorf("%q.Max(%q) = %q, %v, want %q", a, b, got, err, a)
	}
	c := MustParseMoney("EUR", "1")
	if _, err := a.Min(c); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("%q.Min(%q) = %v, want %v", a, c, err, ErrCurrencyMismatch)
	}
	if _, err := a.Max(c); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("%q.Max(%q) = %v, want %v", a, c, err, ErrCurrencyMismatch)
	}
}

// TestMoney_CurrencyMismatch checks that every comparison and additive
// operation fails for every pair of distinct currencies.
func TestMoney_CurrencyMismatch(t *testing.T) {
	currs := []Currency{USD, EUR, GBP, JPY, KWD, GNF, XXX}
	for _, x := range currs {
		for _, y := range currs {
			if x == y {
				continue
			}
			a, err := NewMoneyFromInt64(x, 1)
			if err != nil {
				t.Fatal(err)
			}
			b, err := NewMoneyFromInt64(y, 1)
			if err != nil {
				t.Fatal(err)
			}
			for _, op := range []Operator{OpAdd, OpSub, OpEq, OpNe, OpLt, OpLe, OpGt, OpGe} {
				_, err := Apply(op, a, b)
				if !errors.Is(err, ErrCurrencyMismatch) {
					t.Errorf("Apply(%v, %q, %q) = %v, want %v", op, a, b, err, ErrCurrencyMismatch)
				}
			}
		}
	}
}
