package styled

import (
	sel "github.com/retainedui/cascade/css/selector"
	"github.com/retainedui/cascade/dom"
)

// matchesPath reports whether the selector path selects the node.
// Matching walks the compound groups right to left: the rightmost group
// must match the node itself, then each combinator moves the anchor
// through the tree. Interactive pseudo-classes are consumed by the
// state bucket of the path and only legal in the rightmost group.
func matchesPath(path sel.Path, nodes []dom.NodeData, tree *dom.Hierarchy, infos []dom.CascadeInfo, id dom.NodeId) bool {
	groups := path.Groups()
	if len(groups) == 0 {
		return false
	}
	if !matchesGroup(groups[0], &nodes[id], infos[id], true) {
		return false
	}
	cur := id
	for gi := 0; gi+1 < len(groups); gi++ {
		next := groups[gi+1]
		switch groups[gi].LinkLeft {
		case sel.Descendant:
			found := dom.NilNode
			for p := tree.Parent[cur]; p != dom.NilNode; p = tree.Parent[p] {
				if matchesGroup(next, &nodes[p], infos[p], false) {
					found = p
					break
				}
			}
			if found == dom.NilNode {
				return false
			}
			cur = found
		case sel.Child:
			p := tree.Parent[cur]
			if p == dom.NilNode || !matchesGroup(next, &nodes[p], infos[p], false) {
				return false
			}
			cur = p
		case sel.AdjacentSibling:
			s := prevElementSibling(nodes, tree, cur)
			if s == dom.NilNode || !matchesGroup(next, &nodes[s], infos[s], false) {
				return false
			}
			cur = s
		case sel.GeneralSibling:
			found := dom.NilNode
			for s := prevElementSibling(nodes, tree, cur); s != dom.NilNode; s = prevElementSibling(nodes, tree, s) {
				if matchesGroup(next, &nodes[s], infos[s], false) {
					found = s
					break
				}
			}
			if found == dom.NilNode {
				return false
			}
			cur = found
		}
	}
	return true
}

// prevElementSibling skips text siblings, which have no place in the
// sibling combinators.
func prevElementSibling(nodes []dom.NodeData, tree *dom.Hierarchy, id dom.NodeId) dom.NodeId {
	for s := tree.PrevSibling[id]; s != dom.NilNode; s = tree.PrevSibling[s] {
		if !nodes[s].IsText() {
			return s
		}
	}
	return dom.NilNode
}

// matchesGroup checks one compound selector against one node. last
// marks the rightmost group of the path.
func matchesGroup(g sel.Group, node *dom.NodeData, info dom.CascadeInfo, last bool) bool {
	for _, it := range g.Items {
		switch v := it.(type) {
		case sel.Universal:
			// matches anything
		case sel.Tag:
			if node.IsText() || node.Tag() != v.Name {
				return false
			}
		case sel.Class:
			if !node.HasClass(v.Name) {
				return false
			}
		case sel.Id:
			if !node.HasId(v.Name) {
				return false
			}
		case sel.Pseudo:
			if v.IsInteractive() {
				// consumed by the state bucket on the rightmost group
				if !last {
					return false
				}
				continue
			}
			switch v.Kind {
			case sel.PseudoFirst:
				if info.IndexInParent != 0 {
					return false
				}
			case sel.PseudoLast:
				if !info.IsLastChild {
					return false
				}
			case sel.PseudoNthChild:
				if !v.Nth.Matches(int(info.IndexInParent) + 1) {
					return false
				}
			}
		}
	}
	return true
}
