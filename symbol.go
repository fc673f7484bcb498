package pcfg

import (
	"regexp"
)

// Symbol is a grammar symbol, terminal or non-terminal. Non-terminal labels
// never contain '|', '^', '<', '>', ',', whitespace, '(' or ')'; those are
// reserved for the binarized-label and s-expression textual forms (see
// BinarizedLabel, sexp.go).
type Symbol string

var reservedSymbolChars = regexp.MustCompile(`[|^<>,()\s]`)

// Valid reports whether s can be used as a bare grammar symbol, i.e. it is
// non-empty and contains none of the reserved characters listed above.
func (s Symbol) Valid() bool {
	return len(s) > 0 && !reservedSymbolChars.MatchString(string(s))
}
