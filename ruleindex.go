package pcfg

import "github.com/pkg/errors"

// WeightedNonterminal pairs a non-terminal id with a rule weight.
type WeightedNonterminal struct {
	ID     uint32
	Weight float64
}

// BinaryRuleEntry is one binary production's right-hand side, interned.
type BinaryRuleEntry struct {
	Left, Right uint32
	Weight      float64
}

// RuleIndex is a binarized grammar indexed for CYK decoding: lexical rules
// keyed by surface terminal, unary ("chain") rules keyed by their RHS
// non-terminal id, and binary rules keyed by their LHS non-terminal id.
type RuleIndex struct {
	Symbols *SymbolTable
	Lexical map[string][]WeightedNonterminal
	Chain   map[uint32][]WeightedNonterminal
	Binary  map[uint32][]BinaryRuleEntry
}

// NewRuleIndex returns an empty index with initial set as the grammar's
// start symbol.
func NewRuleIndex(initial Symbol) *RuleIndex {
	st := NewSymbolTable()
	st.SetInitial(initial)
	return &RuleIndex{
		Symbols: st,
		Lexical: map[string][]WeightedNonterminal{},
		Chain:   map[uint32][]WeightedNonterminal{},
		Binary:  map[uint32][]BinaryRuleEntry{},
	}
}

// InsertRule interns the rule's symbols and files it under the appropriate
// map. A non-lexical rule whose RHS is neither arity 1 nor 2 is a programmer
// error: the grammar handed to the decoder must already be binarized.
func (idx *RuleIndex) InsertRule(wr WeightedRule) {
	r := wr.Rule
	if r.IsLexical() {
		lhs := idx.Symbols.Intern(r.LHS)
		idx.Lexical[r.RHSText] = append(idx.Lexical[r.RHSText], WeightedNonterminal{ID: lhs, Weight: wr.Weight})
		return
	}

	lhs := idx.Symbols.Intern(r.LHS)
	switch len(r.RHSSymbols) {
	case 1:
		rhs := idx.Symbols.Intern(r.RHSSymbols[0])
		idx.Chain[rhs] = append(idx.Chain[rhs], WeightedNonterminal{ID: lhs, Weight: wr.Weight})
	case 2:
		left := idx.Symbols.Intern(r.RHSSymbols[0])
		right := idx.Symbols.Intern(r.RHSSymbols[1])
		idx.Binary[lhs] = append(idx.Binary[lhs], BinaryRuleEntry{Left: left, Right: right, Weight: wr.Weight})
	default:
		assert(false, errors.Errorf("pcfg: CYK decoder requires a binarized grammar (rhs arity 1 or 2), got arity %d for %s", len(r.RHSSymbols), wr.String()))
	}
}

// Build interns every rule of g into a fresh RuleIndex rooted at initial.
func Build(g *PCFG, initial Symbol) *RuleIndex {
	idx := NewRuleIndex(initial)
	for _, wr := range g.Rules {
		idx.InsertRule(wr)
	}
	return idx
}
