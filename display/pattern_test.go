package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			pattern string
			want    []token
		}{
			{"¤#,##0.00", []token{{kind: tokSymbol}, {kind: tokNumber, grouping: true}}},
			{"¤¤ #,##0.00", []token{{kind: tokCode}, {kind: tokLiteral, text: " "}, {kind: tokNumber, grouping: true}}},
			{"#,##0.00 ¤¤¤", []token{{kind: tokNumber, grouping: true}, {kind: tokLiteral, text: " "}, {kind: tokName}}},
			{"0.00", []token{{kind: tokNumber}}},
			{"¤¤ ", []token{{kind: tokCode}, {kind: tokLiteral, text: " "}, {kind: tokNumber, grouping: true}}},
			{"Total: #0, ¤", []token{
				{kind: tokLiteral, text: "Total: "},
				{kind: tokNumber, grouping: true},
				{kind: tokLiteral, text: " "},
				{kind: tokSymbol},
			}},
			{"¤ . #0", []token{{kind: tokSymbol}, {kind: tokLiteral, text: " . "}, {kind: tokNumber}}},
		}
		for _, tt := range tests {
			got, err := parsePattern(tt.pattern)
			require.NoError(t, err, "parsePattern(%q)", tt.pattern)
			assert.Equal(t, tt.want, got, "parsePattern(%q)", tt.pattern)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "¤¤¤¤", "#0 #0"}
		for _, tt := range tests {
			_, err := parsePattern(tt)
			assert.Error(t, err, "parsePattern(%q)", tt)
		}
	})
}
