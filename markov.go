package pcfg

// Markovize binarizes tree into a right-branching spine, annotating
// synthetic nodes with up to h retained sibling labels (horizontal context)
// and every node that is not a preterminal or a leaf, synthetic nodes
// included, with up to v-1 retained ancestor labels (vertical context).
// Preterminals and their leaves keep bare labels. v <= 1 disables ancestor
// annotation entirely.
func Markovize(tree *Tree, v, h int) *BinarizedTree {
	return &BinarizedTree{BinarizedNode: markovizeNode(tree.Node, v, h, nil)}
}

func markovizeNode(node *Node, v, h int, parents []Symbol) *BinarizedNode {
	if allLeaves(node.Children) {
		children := make([]*BinarizedNode, len(node.Children))
		for i, c := range node.Children {
			children[i] = &BinarizedNode{Label: Bare(c.Symbol)}
		}
		return &BinarizedNode{Label: Bare(node.Symbol), Children: children}
	}

	// node.Symbol may already carry siblings if this node is itself a
	// synthetic tail produced one level up; recover that before reapplying
	// the current ancestor list.
	parsed, err := ParseBinarizedLabel(string(node.Symbol))
	checkAndFatal(err)

	label := withAncestors(parsed, parents)

	if len(node.Children) <= 2 {
		childParents := shift(parents, parsed.Label, v)
		children := make([]*BinarizedNode, len(node.Children))
		for i, c := range node.Children {
			children[i] = markovizeNode(c, v, h, childParents)
		}
		return &BinarizedNode{Label: label, Children: children}
	}

	// Large-arity case: split into (first child, synthetic tail) and
	// recurse, producing a right-branching spine.
	firstChildParents := shift(parents, parsed.Label, v)
	firstChild := markovizeNode(node.Children[0], v, h, firstChildParents)

	remaining := node.Children[1:]
	siblingCount := h
	if siblingCount > len(remaining) {
		siblingCount = len(remaining)
	}
	siblings := make([]Symbol, siblingCount)
	for i := 0; i < siblingCount; i++ {
		siblings[i] = remaining[i].Symbol
	}

	tailLabel := Markovized(parsed.Label, siblings, nil)
	tailNode := &Node{Symbol: Symbol(tailLabel.String()), Children: remaining}
	// The synthetic tail represents the same constituent as node, not a
	// deeper one, so it keeps node's own (unaugmented) ancestor list.
	tailChild := markovizeNode(tailNode, v, h, parents)

	return &BinarizedNode{Label: label, Children: []*BinarizedNode{firstChild, tailChild}}
}

func allLeaves(children []*Node) bool {
	for _, c := range children {
		if c.Children != nil {
			return false
		}
	}
	return true
}

func withAncestors(parsed BinarizedLabel, ancestors []Symbol) BinarizedLabel {
	if len(ancestors) == 0 {
		if len(parsed.Siblings) == 0 {
			return Bare(parsed.Label)
		}
		return Markovized(parsed.Label, parsed.Siblings, nil)
	}
	return Markovized(parsed.Label, parsed.Siblings, ancestors)
}

// shift computes the ancestor list passed down to a child one level deeper:
// prepend augmenter to parents and truncate to v-1 entries, most-recent
// first. v <= 1 always yields no annotation.
func shift(parents []Symbol, augmenter Symbol, v int) []Symbol {
	if v <= 1 {
		return nil
	}
	out := make([]Symbol, 0, v-1)
	out = append(out, augmenter)
	out = append(out, parents...)
	if len(out) > v-1 {
		out = out[:v-1]
	}
	return out
}

// Debinarize is the inverse of Markovize: it splices synthetic binarization
// nodes (a last child whose label carries retained siblings and which has
// exactly two children) back into their parent's child list, recovering the
// original flat-arity tree.
func Debinarize(tree *BinarizedTree) *Tree {
	return &Tree{Node: debinarizeNode(tree.BinarizedNode)}
}

func debinarizeNode(node *BinarizedNode) *Node {
	children := node.Children
	for len(children) > 0 {
		last := children[len(children)-1]
		if !last.Label.IsMarkovized() || len(last.Children) != 2 {
			break
		}
		children = append(append([]*BinarizedNode{}, children[:len(children)-1]...), last.Children...)
	}

	out := make([]*Node, len(children))
	for i, c := range children {
		out[i] = debinarizeNode(c)
	}
	if len(out) == 0 {
		out = nil
	}
	return &Node{Symbol: node.Label.Label, Children: out}
}
