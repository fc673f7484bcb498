package pcfg

import (
	"strings"

	"github.com/pkg/errors"
)

// LabelKind tags a BinarizedLabel as either a plain, unannotated label or one
// carrying Markovization context.
type LabelKind int

const (
	BareLabel LabelKind = iota
	MarkovizedLabel
)

// BinarizedLabel is the node label alphabet produced by Markovize: either a
// bare non-terminal symbol, or one annotated with retained sibling labels
// (marking a synthetic binarization node) and/or retained ancestor labels
// (vertical context). A label is markovized, in the sense that matters for
// Debinarize, iff it carries at least one sibling.
type BinarizedLabel struct {
	Kind      LabelKind
	Label     Symbol
	Siblings  []Symbol
	Ancestors []Symbol
}

// Bare builds an unannotated label.
func Bare(label Symbol) BinarizedLabel {
	return BinarizedLabel{Kind: BareLabel, Label: label}
}

// Markovized builds an annotated label. siblings/ancestors may be nil.
func Markovized(label Symbol, siblings, ancestors []Symbol) BinarizedLabel {
	return BinarizedLabel{Kind: MarkovizedLabel, Label: label, Siblings: siblings, Ancestors: ancestors}
}

// IsMarkovized reports whether this label carries retained siblings, which is
// the predicate Debinarize uses to decide whether a node is a synthetic
// binarization spine node that should be spliced back into its parent.
func (b BinarizedLabel) IsMarkovized() bool {
	return len(b.Siblings) > 0
}

// String renders the label in the form LABEL[|<s1,s2,...>][^<a1,a2,...>].
// Empty bracketed sections are omitted entirely.
func (b BinarizedLabel) String() string {
	var sb strings.Builder
	sb.WriteString(string(b.Label))
	if len(b.Siblings) > 0 {
		sb.WriteString("|<")
		writeSymbolList(&sb, b.Siblings)
		sb.WriteByte('>')
	}
	if len(b.Ancestors) > 0 {
		sb.WriteString("^<")
		writeSymbolList(&sb, b.Ancestors)
		sb.WriteByte('>')
	}
	return sb.String()
}

func writeSymbolList(sb *strings.Builder, symbols []Symbol) {
	for i, s := range symbols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(s))
	}
}

// ParseBinarizedLabel parses the textual form produced by String.
func ParseBinarizedLabel(text string) (BinarizedLabel, error) {
	rest := text
	idx := strings.IndexAny(rest, "|^")
	label := rest
	var siblings, ancestors []Symbol
	if idx >= 0 {
		label = rest[:idx]
		rest = rest[idx:]

		if strings.HasPrefix(rest, "|") {
			inner, tail, err := takeBracket(rest, '|')
			if err != nil {
				return BinarizedLabel{}, errors.Wrapf(err, "parsing binarized label %q", text)
			}
			siblings = splitSymbolList(inner)
			rest = tail
		}

		if strings.HasPrefix(rest, "^") {
			inner, tail, err := takeBracket(rest, '^')
			if err != nil {
				return BinarizedLabel{}, errors.Wrapf(err, "parsing binarized label %q", text)
			}
			ancestors = splitSymbolList(inner)
			rest = tail
		}

		if rest != "" {
			return BinarizedLabel{}, errors.Errorf("parsing binarized label %q: unexpected trailing %q", text, rest)
		}
	}

	if label == "" {
		return BinarizedLabel{}, errors.Errorf("parsing binarized label %q: empty label", text)
	}

	if len(siblings) == 0 && len(ancestors) == 0 {
		return Bare(Symbol(label)), nil
	}
	return Markovized(Symbol(label), siblings, ancestors), nil
}

// takeBracket consumes a "<marker><...>" prefix and returns the bracket's
// inner text and the remainder of s after the closing '>'.
func takeBracket(s string, marker byte) (inner, rest string, err error) {
	if len(s) < 2 || s[0] != marker || s[1] != '<' {
		return "", "", errors.Errorf("expected %q< after %q", marker, s)
	}
	closeIdx := strings.IndexByte(s, '>')
	if closeIdx < 0 {
		return "", "", errors.Errorf("unterminated bracket in %q", s)
	}
	return s[2:closeIdx], s[closeIdx+1:], nil
}

func splitSymbolList(inner string) []Symbol {
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	out := make([]Symbol, len(parts))
	for i, p := range parts {
		out[i] = Symbol(p)
	}
	return out
}
