package pcfg

import (
	"container/heap"
	"sort"
)

// PruneOptions controls the beam pruning applied to every chart cell right
// after its unary closure. Threshold and Rank compose as threshold-then-rank
// when both are set; either left nil disables that stage.
type PruneOptions struct {
	Threshold *float64
	Rank      *int
}

// heapItem is a candidate (weight, non-terminal, derivation) waiting to be
// relaxed into a cell during unary closure.
type heapItem struct {
	weight float64
	nt     uint32
	bp     Backpointer
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].weight > h[j].weight }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// unaryClosure resolves chains of unary rules within a single cell to a
// fixed point: every non-terminal reachable from the cell's seed entries via
// zero or more chain rules ends up holding its best weight and derivation.
// It relies on PCFG weights lying in (0, 1], so repeated relaxation strictly
// decreases (or leaves unchanged) any weight along a chain, which rules out
// infinite improvement cycles without needing separate cycle detection.
func unaryClosure(cell []ChartEntry, idx *RuleIndex) {
	h := &nodeHeap{}
	for nt := range cell {
		if cell[nt].HasBP {
			heap.Push(h, heapItem{weight: cell[nt].Weight, nt: uint32(nt), bp: cell[nt].BP})
		}
	}
	for i := range cell {
		cell[i] = ChartEntry{}
	}

	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)
		if item.weight <= cell[item.nt].Weight {
			continue
		}
		cell[item.nt] = ChartEntry{Weight: item.weight, BP: item.bp, HasBP: true}
		for _, chain := range idx.Chain[item.nt] {
			heap.Push(h, heapItem{
				weight: item.weight * chain.Weight,
				nt:     chain.ID,
				bp:     Backpointer{Kind: BPChain, Other: item.nt},
			})
		}
	}
}

func pruneCell(cell []ChartEntry, opts PruneOptions) {
	if opts.Threshold != nil {
		pruneThreshold(cell, *opts.Threshold)
	}
	if opts.Rank != nil {
		pruneRank(cell, *opts.Rank)
	}
}

// pruneThreshold zeroes any entry whose weight is less than t times the
// cell's maximum weight. t == 0 is a no-op; t == 1 retains only the argmax.
func pruneThreshold(cell []ChartEntry, t float64) {
	var maxWeight float64
	for _, e := range cell {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	cutoff := maxWeight * t
	for i := range cell {
		if cell[i].Weight < cutoff {
			cell[i] = ChartEntry{}
		}
	}
}

// pruneRank keeps only the top k entries by weight (ties kept), zeroing
// the rest.
func pruneRank(cell []ChartEntry, k int) {
	if k <= 0 {
		return
	}
	weights := make([]float64, len(cell))
	for i, e := range cell {
		weights[i] = e.Weight
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))
	idx := k - 1
	if idx >= len(weights) {
		idx = len(weights) - 1
	}
	cutoff := weights[idx]
	for i := range cell {
		if cell[i].Weight < cutoff {
			cell[i] = ChartEntry{}
		}
	}
}

// Decode runs weighted CYK over sentence against idx, returning the best
// parse rooted at idx's initial symbol, or nil if no parse was found
// (NOPARSE).
func Decode(idx *RuleIndex, sentence []string, prune PruneOptions) *DecodedNode {
	n := len(sentence)
	if n == 0 {
		return nil
	}
	numNT := idx.Symbols.Len()
	chart := NewChart(n, numNT)

	for i := 0; i < n; i++ {
		cell := chart.Cell(i, 1)
		for _, wn := range idx.Lexical[sentence[i]] {
			cell[wn.ID] = ChartEntry{Weight: wn.Weight, BP: Backpointer{Kind: BPTerm, Pos: i}, HasBP: true}
		}
		unaryClosure(cell, idx)
		pruneCell(cell, prune)
	}

	for span := 2; span <= n; span++ {
		for start := 0; start+span <= n; start++ {
			cell := chart.Cell(start, span)
			for mid := start + 1; mid < start+span; mid++ {
				leftBase := chart.CellStart(start, mid-start)
				rightBase := chart.CellStart(mid, start+span-mid)
				leftCell := chart.entries[leftBase : leftBase+numNT]
				rightCell := chart.entries[rightBase : rightBase+numNT]

				for a := 0; a < numNT; a++ {
					for _, br := range idx.Binary[uint32(a)] {
						lw := leftCell[br.Left].Weight
						rw := rightCell[br.Right].Weight
						if lw == 0 || rw == 0 {
							continue
						}
						candidate := br.Weight * lw * rw
						if candidate > cell[a].Weight {
							cell[a] = ChartEntry{
								Weight: candidate,
								BP: Backpointer{
									Kind:  BPBinary,
									Left:  leftBase + int(br.Left),
									Right: rightBase + int(br.Right),
								},
								HasBP: true,
							}
						}
					}
				}
			}
			unaryClosure(cell, idx)
			pruneCell(cell, prune)
		}
	}

	root := chart.Cell(0, n)
	if !root[idx.Symbols.Initial].HasBP {
		return nil
	}
	return reconstruct(chart, idx, sentence, chart.CellStart(0, n)+int(idx.Symbols.Initial))
}

// DecodedNode is a node of a decoded parse tree: internal nodes carry
// non-terminal symbols, leaves carry surface tokens.
type DecodedNode struct {
	Type     NodeType
	Children []*DecodedNode
}

func reconstruct(chart *Chart, idx *RuleIndex, sentence []string, flatIndex int) *DecodedNode {
	entry := chart.At(flatIndex)
	if !entry.HasBP {
		return nil
	}
	nt := flatIndex % idx.Symbols.Len()
	symbol := idx.Symbols.Symbol(uint32(nt))

	switch entry.BP.Kind {
	case BPTerm:
		leaf := &DecodedNode{Type: Terminal(sentence[entry.BP.Pos])}
		return &DecodedNode{Type: NonTerminal(symbol), Children: []*DecodedNode{leaf}}
	case BPChain:
		childIndex := flatIndex - nt + int(entry.BP.Other)
		child := reconstruct(chart, idx, sentence, childIndex)
		if child == nil {
			return nil
		}
		return &DecodedNode{Type: NonTerminal(symbol), Children: []*DecodedNode{child}}
	case BPBinary:
		left := reconstruct(chart, idx, sentence, entry.BP.Left)
		right := reconstruct(chart, idx, sentence, entry.BP.Right)
		if left == nil || right == nil {
			return nil
		}
		return &DecodedNode{Type: NonTerminal(symbol), Children: []*DecodedNode{left, right}}
	default:
		return nil
	}
}

// Leaves returns the decoded tree's terminal nodes in left-to-right order.
func (n *DecodedNode) Leaves() []*DecodedNode {
	if len(n.Children) == 0 {
		return []*DecodedNode{n}
	}
	var out []*DecodedNode
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// ToTree converts a decoded parse tree into a bare Tree for printing,
// discarding the terminal/non-terminal tag (terminals are always leaves).
func ToTree(n *DecodedNode) *Tree {
	return &Tree{Node: toNode(n)}
}

func toNode(n *DecodedNode) *Node {
	if n.Type.Kind == TerminalNode {
		return &Node{Symbol: Symbol(n.Type.Terminal)}
	}
	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = toNode(c)
	}
	return &Node{Symbol: n.Type.NonTerminal, Children: children}
}
