package pcfg

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RuleKind tags a Rule as rewriting to a single terminal (Lexical) or to a
// sequence of non-terminals (NonLexical).
type RuleKind int

const (
	LexicalRule RuleKind = iota
	NonLexicalRule
)

// Rule is a single PCFG production, LHS -> RHS, without its weight. Lexical
// rules rewrite to one terminal string; non-lexical rules rewrite to a
// sequence of non-terminal symbols (arbitrary arity before binarization, 1 or
// 2 once a grammar is binarized for decoding).
type Rule struct {
	Kind       RuleKind
	LHS        Symbol
	RHSSymbols []Symbol
	RHSText    string
}

// Lexical builds a lexical rule lhs -> text.
func Lexical(lhs Symbol, text string) Rule {
	return Rule{Kind: LexicalRule, LHS: lhs, RHSText: text}
}

// NonLexical builds a non-lexical rule lhs -> rhs.
func NonLexical(lhs Symbol, rhs []Symbol) Rule {
	return Rule{Kind: NonLexicalRule, LHS: lhs, RHSSymbols: rhs}
}

func (r Rule) IsLexical() bool {
	return r.Kind == LexicalRule
}

func (r Rule) IsUnary() bool {
	return r.Kind == NonLexicalRule && len(r.RHSSymbols) == 1
}

func (r Rule) IsBinary() bool {
	return r.Kind == NonLexicalRule && len(r.RHSSymbols) == 2
}

// key returns a string uniquely identifying this rule's LHS/RHS shape, for
// use as a map key (Rule itself is not comparable: RHSSymbols is a slice).
func (r Rule) key() string {
	if r.Kind == LexicalRule {
		return "L\x00" + string(r.LHS) + "\x00" + r.RHSText
	}
	var sb strings.Builder
	sb.WriteString("N\x00")
	sb.WriteString(string(r.LHS))
	for _, s := range r.RHSSymbols {
		sb.WriteByte(0)
		sb.WriteString(string(s))
	}
	return sb.String()
}

// WeightedRule is a Rule together with its PCFG weight.
type WeightedRule struct {
	Rule   Rule
	Weight float64
}

// String renders a weighted rule in the file format described by
// ParseGrammarLine: "LHS -> R1 R2 ... Rk WEIGHT" for non-lexical rules,
// "LHS TERMINAL WEIGHT" for lexical ones.
func (wr WeightedRule) String() string {
	weight := strconv.FormatFloat(wr.Weight, 'g', -1, 64)
	if wr.Rule.IsLexical() {
		return wr.Rule.LHS.String() + " " + wr.Rule.RHSText + " " + weight
	}
	symbols := make([]string, len(wr.Rule.RHSSymbols))
	for i, s := range wr.Rule.RHSSymbols {
		symbols[i] = string(s)
	}
	return string(wr.Rule.LHS) + " -> " + strings.Join(symbols, " ") + " " + weight
}

func (s Symbol) String() string {
	return string(s)
}

// ParseGrammarLine parses one line of a .rules or .lexicon file. Non-lexical
// lines have the shape "LHS -> R1 R2 ... Rk WEIGHT"; any other well-formed
// line of exactly three whitespace-separated tokens is lexical, "LHS
// TERMINAL WEIGHT". A first token equal to "->" indicates a missing LHS.
func ParseGrammarLine(line string) (WeightedRule, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return WeightedRule{}, errors.New("empty rule line")
	}
	if tokens[0] == "->" {
		return WeightedRule{}, errors.Errorf("rule line missing left-hand side: %q", line)
	}

	if len(tokens) >= 2 && tokens[1] == "->" {
		if len(tokens) < 4 {
			return WeightedRule{}, errors.Errorf("non-lexical rule line missing rhs or weight: %q", line)
		}
		rhsTokens := tokens[2 : len(tokens)-1]
		weight, err := strconv.ParseFloat(tokens[len(tokens)-1], 64)
		if err != nil {
			return WeightedRule{}, errors.Wrapf(err, "invalid weight in rule line %q", line)
		}
		rhs := make([]Symbol, len(rhsTokens))
		for i, t := range rhsTokens {
			rhs[i] = Symbol(t)
		}
		return WeightedRule{Rule: NonLexical(Symbol(tokens[0]), rhs), Weight: weight}, nil
	}

	if len(tokens) != 3 {
		return WeightedRule{}, errors.Errorf("lexical rule line must have exactly 3 tokens, got %d: %q", len(tokens), line)
	}
	weight, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return WeightedRule{}, errors.Wrapf(err, "invalid weight in rule line %q", line)
	}
	return WeightedRule{Rule: Lexical(Symbol(tokens[0]), tokens[1]), Weight: weight}, nil
}
