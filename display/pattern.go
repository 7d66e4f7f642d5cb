package display

import (
	"errors"
	"fmt"
	"strings"
)

const currencySign = '¤'

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokSymbol
	tokCode
	tokName
	tokNumber
)

type token struct {
	kind     tokenKind
	text     string // literal text
	grouping bool   // number section contains ','
}

var errEmptyPattern = errors.New("empty pattern")

// parsePattern splits a pattern into tokens.
// A run of 1, 2 or 3 currency signs stands for the symbol, the ISO code or
// the name of the currency, a run of the characters "#0,." stands for the
// number, and everything else is copied as is.
// A pattern without a number section gets one appended at the end.
func parsePattern(p string) ([]token, error) {
	if p == "" {
		return nil, errEmptyPattern
	}
	var toks []token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, token{kind: tokLiteral, text: lit.String()})
			lit.Reset()
		}
	}
	seenNumber := false
	rs := []rune(p)
	for i := 0; i < len(rs); {
		switch r := rs[i]; {
		case r == currencySign:
			j := i
			for j < len(rs) && rs[j] == currencySign {
				j++
			}
			var kind tokenKind
			switch j - i {
			case 1:
				kind = tokSymbol
			case 2:
				kind = tokCode
			case 3:
				kind = tokName
			default:
				return nil, fmt.Errorf("pattern %q: %d consecutive currency signs", p, j-i)
			}
			flush()
			toks = append(toks, token{kind: kind})
			i = j

		case isNumberRune(r):
			j := i
			for j < len(rs) && isNumberRune(rs[j]) {
				j++
			}
			sec := string(rs[i:j])
			i = j
			if !strings.ContainsAny(sec, "#0") {
				// A lone separator is text.
				lit.WriteString(sec)
				continue
			}
			if seenNumber {
				return nil, fmt.Errorf("pattern %q: more than one number section", p)
			}
			seenNumber = true
			flush()
			toks = append(toks, token{kind: tokNumber, grouping: strings.ContainsRune(sec, ',')})

		default:
			lit.WriteRune(r)
			i++
		}
	}
	flush()
	if !seenNumber {
		toks = append(toks, token{kind: tokNumber, grouping: true})
	}
	return toks, nil
}

func isNumberRune(r rune) bool {
	return r == '#' || r == '0' || r == ',' || r == '.'
}
