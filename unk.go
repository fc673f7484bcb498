package pcfg

import (
	"strings"
	"unicode"
)

// Signature maps an out-of-vocabulary word (and its position in the
// sentence) to a synthetic open-class token that still carries some of its
// orthographic features.
type Signature func(word string, position int) string

// DefaultSignature buckets a word by capitalization, digit content, presence
// of a hyphen, and its last two characters.
func DefaultSignature(word string, position int) string {
	var sb strings.Builder
	sb.WriteString("UNK")

	hasDigit, hasUpper, hasHyphen := false, false, false
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case r == '-':
			hasHyphen = true
		}
	}

	if hasUpper {
		if position == 0 {
			sb.WriteString("-CAPS-INIT")
		} else {
			sb.WriteString("-CAPS")
		}
	}
	if hasDigit {
		sb.WriteString("-NUM")
	}
	if hasHyphen {
		sb.WriteString("-HYPH")
	}
	if n := len([]rune(word)); n >= 2 {
		runes := []rune(word)
		sb.WriteString("-")
		sb.WriteString(string(runes[n-2:]))
	}
	return sb.String()
}

// Unkify replaces every token of sentence that idx has no lexical rule for
// with the literal token "UNK", returning the rewritten sentence and a map
// from position to the original word, for later Deunkify.
func Unkify(sentence []string, idx *RuleIndex) (out []string, overwritten map[int]string) {
	out = make([]string, len(sentence))
	overwritten = map[int]string{}
	copy(out, sentence)
	for i, w := range sentence {
		if _, ok := idx.Lexical[w]; !ok {
			overwritten[i] = w
			out[i] = "UNK"
		}
	}
	return out, overwritten
}

// Smooth is like Unkify but replaces an OOV token with sig's signature of it
// instead of the bare literal "UNK".
func Smooth(sentence []string, idx *RuleIndex, sig Signature) (out []string, overwritten map[int]string) {
	out = make([]string, len(sentence))
	overwritten = map[int]string{}
	copy(out, sentence)
	for i, w := range sentence {
		if _, ok := idx.Lexical[w]; !ok {
			overwritten[i] = w
			out[i] = sig(w, i)
		}
	}
	return out, overwritten
}

// Deunkify restores a decoded tree's leaves to their original surface forms
// wherever Unkify/Smooth substituted one, matching by left-to-right
// position.
func Deunkify(tree *DecodedNode, overwritten map[int]string) {
	leaves := tree.Leaves()
	for i, leaf := range leaves {
		if orig, ok := overwritten[i]; ok {
			leaf.Type.Terminal = orig
		}
	}
}

// CountLeaves tallies how many times each terminal appears as a leaf of
// tree.
func CountLeaves(tree *Tree) map[string]int {
	counts := map[string]int{}
	countLeavesNode(tree.Node, counts)
	return counts
}

func countLeavesNode(node *Node, counts map[string]int) {
	if node.Children == nil {
		counts[string(node.Symbol)]++
		return
	}
	for _, c := range node.Children {
		countLeavesNode(c, counts)
	}
}

// KeepWords returns the set of words whose count in counts is strictly above
// threshold, i.e. the words a corpus-level unkify/smooth pass should leave
// alone.
func KeepWords(counts map[string]int, threshold int) map[string]bool {
	keep := map[string]bool{}
	for w, c := range counts {
		if c > threshold {
			keep[w] = true
		}
	}
	return keep
}

// UnkifyTree replaces every leaf of tree not in keep with the literal "UNK".
func UnkifyTree(tree *Tree, keep map[string]bool) *Tree {
	return &Tree{Node: unkifyNode(tree.Node, keep)}
}

func unkifyNode(node *Node, keep map[string]bool) *Node {
	if node.Children == nil {
		if keep[string(node.Symbol)] {
			return &Node{Symbol: node.Symbol}
		}
		return &Node{Symbol: "UNK"}
	}
	children := make([]*Node, len(node.Children))
	for i, c := range node.Children {
		children[i] = unkifyNode(c, keep)
	}
	return &Node{Symbol: node.Symbol, Children: children}
}

// SmoothTree replaces every leaf of tree not in keep with sig's signature of
// it, using the leaf's left-to-right position within the whole tree.
func SmoothTree(tree *Tree, keep map[string]bool, sig Signature) *Tree {
	position := 0
	var rec func(node *Node) *Node
	rec = func(node *Node) *Node {
		if node.Children == nil {
			pos := position
			position++
			if keep[string(node.Symbol)] {
				return &Node{Symbol: node.Symbol}
			}
			return &Node{Symbol: Symbol(sig(string(node.Symbol), pos))}
		}
		children := make([]*Node, len(node.Children))
		for i, c := range node.Children {
			children[i] = rec(c)
		}
		return &Node{Symbol: node.Symbol, Children: children}
	}
	return &Tree{Node: rec(tree.Node)}
}
