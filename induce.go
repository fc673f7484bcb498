package pcfg

// RuleCounts accumulates raw occurrence counts for rules observed while
// inducing a grammar from a treebank.
type RuleCounts struct {
	counts map[string]int
	rules  map[string]Rule
}

// NewRuleCounts returns an empty accumulator.
func NewRuleCounts() *RuleCounts {
	return &RuleCounts{counts: map[string]int{}, rules: map[string]Rule{}}
}

// Add records one more occurrence of r.
func (rc *RuleCounts) Add(r Rule) {
	k := r.key()
	rc.counts[k]++
	if _, ok := rc.rules[k]; !ok {
		rc.rules[k] = r
	}
}

// Merge returns a new RuleCounts holding the sum of rc and other, absorbing
// counts for rules seen in either.
func (rc *RuleCounts) Merge(other *RuleCounts) *RuleCounts {
	result := NewRuleCounts()
	for k, c := range rc.counts {
		result.counts[k] = c
		result.rules[k] = rc.rules[k]
	}
	for k, c := range other.counts {
		result.counts[k] += c
		if _, ok := result.rules[k]; !ok {
			result.rules[k] = other.rules[k]
		}
	}
	return result
}

// RuleCount pairs a rule with its observed count.
type RuleCount struct {
	Rule  Rule
	Count int
}

// Entries returns every accumulated (rule, count) pair, in no particular
// order.
func (rc *RuleCounts) Entries() []RuleCount {
	out := make([]RuleCount, 0, len(rc.counts))
	for k, c := range rc.counts {
		out = append(out, RuleCount{Rule: rc.rules[k], Count: c})
	}
	return out
}

// InduceTree walks a (binarized or bare) constituent tree and records every
// production it exhibits into counts: a preterminal (single leaf child)
// yields a lexical rule, anything else yields a non-lexical rule over the
// children's symbols.
func InduceTree(tree *Tree, counts *RuleCounts) {
	induceNode(tree.Node, counts)
}

func induceNode(node *Node, counts *RuleCounts) {
	switch len(node.Children) {
	case 0:
		return
	case 1:
		child := node.Children[0]
		if child.Children == nil {
			counts.Add(Lexical(node.Symbol, string(child.Symbol)))
		} else {
			counts.Add(NonLexical(node.Symbol, []Symbol{child.Symbol}))
		}
	default:
		rhs := make([]Symbol, len(node.Children))
		for i, c := range node.Children {
			rhs[i] = c.Symbol
		}
		counts.Add(NonLexical(node.Symbol, rhs))
	}
	for _, c := range node.Children {
		induceNode(c, counts)
	}
}

// PCFG is a normalized probabilistic grammar: a flat list of weighted rules.
type PCFG struct {
	Rules []WeightedRule
}

// Normalize converts raw counts into a PCFG by dividing each rule's count by
// the total count of all rules sharing its LHS.
func Normalize(counts *RuleCounts) *PCFG {
	lhsTotals := map[Symbol]int{}
	for _, e := range counts.Entries() {
		lhsTotals[e.Rule.LHS] += e.Count
	}

	entries := counts.Entries()
	rules := make([]WeightedRule, 0, len(entries))
	for _, e := range entries {
		weight := float64(e.Count) / float64(lhsTotals[e.Rule.LHS])
		rules = append(rules, WeightedRule{Rule: e.Rule, Weight: weight})
	}
	return &PCFG{Rules: rules}
}
