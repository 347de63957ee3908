package dom

import "sort"

// Hierarchy stores the tree structure of a document as parallel arrays
// indexed by NodeId.
type Hierarchy struct {
	Parent      []NodeId
	FirstChild  []NodeId
	LastChild   []NodeId
	NextSibling []NodeId
	PrevSibling []NodeId
}

// NewHierarchy allocates an unlinked hierarchy for n nodes.
func NewHierarchy(n int) *Hierarchy {
	h := &Hierarchy{
		Parent:      make([]NodeId, n),
		FirstChild:  make([]NodeId, n),
		LastChild:   make([]NodeId, n),
		NextSibling: make([]NodeId, n),
		PrevSibling: make([]NodeId, n),
	}
	for i := 0; i < n; i++ {
		h.Parent[i] = NilNode
		h.FirstChild[i] = NilNode
		h.LastChild[i] = NilNode
		h.NextSibling[i] = NilNode
		h.PrevSibling[i] = NilNode
	}
	return h
}

func (h *Hierarchy) Len() int { return len(h.Parent) }

// AppendChild links child as the last child of parent.
func (h *Hierarchy) AppendChild(parent, child NodeId) {
	h.Parent[child] = parent
	if h.FirstChild[parent] == NilNode {
		h.FirstChild[parent] = child
		h.LastChild[parent] = child
		return
	}
	prev := h.LastChild[parent]
	h.NextSibling[prev] = child
	h.PrevSibling[child] = prev
	h.LastChild[parent] = child
}

// Children returns the child list of n in document order.
func (h *Hierarchy) Children(n NodeId) []NodeId {
	var out []NodeId
	for c := h.FirstChild[n]; c != NilNode; c = h.NextSibling[c] {
		out = append(out, c)
	}
	return out
}

// Ancestors returns the parent chain of n, nearest first.
func (h *Hierarchy) Ancestors(n NodeId) []NodeId {
	var out []NodeId
	for p := h.Parent[n]; p != NilNode; p = h.Parent[p] {
		out = append(out, p)
	}
	return out
}

// ParentChain returns the ancestor chain of n ordered root to leaf, as
// recorded in tag mappings.
func (h *Hierarchy) ParentChain(n NodeId) []NodeId {
	out := h.Ancestors(n)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Depth returns the number of ancestors of n.
func (h *Hierarchy) Depth(n NodeId) int {
	d := 0
	for p := h.Parent[n]; p != NilNode; p = h.Parent[p] {
		d++
	}
	return d
}

// DepthEntry is one non-leaf node with its depth.
type DepthEntry struct {
	Depth int
	Node  NodeId
}

// NonLeafDepths lists every node that has children, ordered by
// ascending depth. Iterating it drives inheritance parents before
// children.
func (h *Hierarchy) NonLeafDepths() []DepthEntry {
	var out []DepthEntry
	for i := range h.Parent {
		n := NodeId(i)
		if h.FirstChild[n] == NilNode {
			continue
		}
		out = append(out, DepthEntry{Depth: h.Depth(n), Node: n})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// CascadeInfo is the precomputed matching hint of one node: its index
// among the element children of its parent, and whether it closes the
// child list. Text nodes do not count as siblings.
type CascadeInfo struct {
	IndexInParent uint32
	IsLastChild   bool
}

// BuildCascadeInfo computes the matching hints for every node.
func BuildCascadeInfo(nodes []NodeData, h *Hierarchy) []CascadeInfo {
	out := make([]CascadeInfo, len(nodes))
	for i := range nodes {
		n := NodeId(i)
		if h.FirstChild[n] == NilNode {
			continue
		}
		var lastElement NodeId = NilNode
		index := uint32(0)
		for c := h.FirstChild[n]; c != NilNode; c = h.NextSibling[c] {
			if nodes[c].IsText() {
				continue
			}
			out[c].IndexInParent = index
			index++
			lastElement = c
		}
		if lastElement != NilNode {
			out[lastElement].IsLastChild = true
		}
	}
	return out
}

// Document bundles the node array with its hierarchy.
type Document struct {
	Nodes []NodeData
	Tree  *Hierarchy
	Style string // concatenated text of the style elements
}

// Root returns the first parentless node, usually 0.
func (d *Document) Root() NodeId {
	for i := range d.Nodes {
		if d.Tree.Parent[i] == NilNode {
			return NodeId(i)
		}
	}
	return NilNode
}
