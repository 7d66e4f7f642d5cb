package money

import (
	"strings"
	"testing"
)

func TestSplitLiteral(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want literal
			prec int
		}{
			{"0", literal{}, 0},
			{"1.5", literal{false, "1", "5"}, 2},
			{"-00012.3400", literal{true, "12", "34"}, 4},
			{"+.5", literal{false, "", "5"}, 1},
			{"5.", literal{false, "5", ""}, 1},
			{"1.83e5", literal{false, "183000", ""}, 6},
			{"0.22e-9", literal{false, "", "00000000022"}, 11},
			{"12E+2", literal{false, "1200", ""}, 4},
			{"1.0049999999999999999", literal{false, "1", "0049999999999999999"}, 20},
			{"-0.000", literal{true, "", ""}, 0},
		}
		for _, tt := range tests {
			got, ok := splitLiteral(tt.s)
			if !ok {
				t.Errorf("splitLiteral(%q) failed", tt.s)
				continue
			}
			if got != tt.want || got.prec() != tt.prec {
				t.Errorf("splitLiteral(%q) = %+v, prec %v, want %+v, prec %v", tt.s, got, got.prec(), tt.want, tt.prec)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"0." + strings.Repeat("1", 329),
			"",
			"-",
			".",
			"1e",
			"1e+",
			"e5",
			"1.2.3",
			"1e331",
			"abc",
			" 1",
			"1_000",
			"--1",
			"1e5e5",
			"-0.000e-400",
		}
		for _, tt := range tests {
			if got, ok := splitLiteral(tt); ok {
				t.Errorf("splitLiteral(%q) = %+v, want failure", tt, got)
			}
		}
	})
}
