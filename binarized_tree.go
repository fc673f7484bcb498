package pcfg

import (
	"fmt"
	"strings"
)

// BinarizedNode mirrors Node but labels nodes with BinarizedLabel instead of
// a bare Symbol; it is the output of Markovize and the input of Debinarize.
type BinarizedNode struct {
	Children []*BinarizedNode
	Label    BinarizedLabel
}

// BinarizedTree is a binarized/Markovized parsing tree.
type BinarizedTree struct {
	*BinarizedNode
}

func (n *BinarizedNode) String() string {
	return n.repr(0)
}

func (n *BinarizedNode) repr(level int) string {
	prefix := strings.Repeat(" ", level*2)
	if level != 0 {
		prefix = "\n" + prefix
	}

	if n.Children == nil {
		return prefix + n.Label.String()
	}

	childrenReprs := []string{}
	for _, child := range n.Children {
		childrenReprs = append(childrenReprs, child.repr(level+1))
	}

	return fmt.Sprintf(
		"%s(%s %s)",
		prefix,
		n.Label.String(),
		strings.Join(childrenReprs, " "))
}
