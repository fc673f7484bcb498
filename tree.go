package pcfg

import (
	"fmt"
	"strings"
)

// Node represents a single node in a parsing tree. A leaf (Children == nil)
// holds a terminal; an internal node holds a non-terminal.
type Node struct {
	// Children nodes
	Children []*Node

	// Symbol in current node
	Symbol Symbol
}

// Tree represents the parsing tree
type Tree struct {
	*Node
}

// Convert the node to string
func (n *Node) String() string {
	return n.repr(0)
}

// Repr get the string representation of the node recursively
func (n *Node) repr(level int) string {
	// Don't wrap with parentheses when it's a leaf node
	prefix := strings.Repeat(" ", level*2)
	if level != 0 {
		prefix = "\n" + prefix
	}

	if n.Children == nil {
		return prefix + string(n.Symbol)
	}

	childrenReprs := []string{}
	for _, child := range n.Children {
		childrenReprs = append(childrenReprs, child.repr(level+1))
	}

	return fmt.Sprintf(
		"%s(%s %s)",
		prefix,
		n.Symbol,
		strings.Join(childrenReprs, " "))
}

// Leaves returns the terminal symbols of the tree in left-to-right order.
func (n *Node) Leaves() []Symbol {
	if n.Children == nil {
		return []Symbol{n.Symbol}
	}
	var out []Symbol
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// NodeTypeKind tags a NodeType as carrying a terminal or a non-terminal.
type NodeTypeKind int

const (
	TerminalNode NodeTypeKind = iota
	NonTerminalNode
)

// NodeType is a tagged union over the two kinds of labels a decoded parse
// tree node carries: a non-terminal symbol for internal nodes, or the raw
// surface token for leaves.
type NodeType struct {
	Kind        NodeTypeKind
	Terminal    string
	NonTerminal Symbol
}

func Terminal(text string) NodeType {
	return NodeType{Kind: TerminalNode, Terminal: text}
}

func NonTerminal(symbol Symbol) NodeType {
	return NodeType{Kind: NonTerminalNode, NonTerminal: symbol}
}
