package styled

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/retainedui/cascade/css/compact"
	"github.com/retainedui/cascade/css/parser"
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
	"github.com/retainedui/cascade/logger"
	"github.com/retainedui/cascade/utils"
)

// TagId identifies a hit-testable node across restyles. Ids are drawn
// from a process-wide counter and never reused.
type TagId uint64

var tagCounter uint64

func newTagId() TagId { return TagId(atomic.AddUint64(&tagCounter, 1)) }

// TagMapping links a tag to the node it was generated for, with the
// data hit testing needs.
type TagMapping struct {
	Tag         TagId
	Node        dom.NodeId
	TabIndex    *dom.TabIndex
	ParentChain []dom.NodeId // root first
}

// Restyle rebuilds the cache from a stylesheet and a document: it
// matches every rule against every node, propagates inheritable
// declarations down the tree, refreshes the packed lanes and generates
// the hit-testing tags. User overrides are preserved.
//
// The stylesheet is sorted in place. On a shape mismatch between the
// collaborators the previous cache content is left untouched.
func (c *CssPropertyCache) Restyle(css *parser.Stylesheet, nodes []dom.NodeData, tree *dom.Hierarchy, nonLeaf []dom.DepthEntry, infos []dom.CascadeInfo) ([]TagMapping, error) {
	n := len(nodes)
	if n != c.nodeCount || tree.Len() != n || len(infos) != n {
		return nil, ErrShapeMismatch
	}

	css.SortRules()

	var author, cascaded [pr.NbStates][]propMap
	for s := 0; s < pr.NbStates; s++ {
		author[s] = make([]propMap, n)
		cascaded[s] = make([]propMap, n)
	}

	matchRules(css, nodes, tree, infos, &author)
	inherit(nodes, tree, nonLeaf, &author, &cascaded)

	c.author = author
	c.cascaded = cascaded
	c.nodes = nodes

	if c.compactEnabled {
		c.compact = compact.NewCache(n)
		for i := range nodes {
			c.packNode(&nodes[i], dom.NodeId(i))
		}
	} else {
		c.compact = nil
	}

	return c.generateTags(nodes, tree), nil
}

// RestyleDocument is Restyle with the document collaborators computed
// on the fly.
func (c *CssPropertyCache) RestyleDocument(css *parser.Stylesheet, doc *dom.Document) ([]TagMapping, error) {
	infos := dom.BuildCascadeInfo(doc.Nodes, doc.Tree)
	return c.Restyle(css, doc.Nodes, doc.Tree, doc.Tree.NonLeafDepths(), infos)
}

// matchRules applies every rule, in ascending cascade order, to every
// node it selects. Nodes are partitioned over workers; each node is
// only ever written by one goroutine.
func matchRules(css *parser.Stylesheet, nodes []dom.NodeData, tree *dom.Hierarchy, infos []dom.CascadeInfo, author *[pr.NbStates][]propMap) {
	n := len(nodes)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		return
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, utils.MinInt((w+1)*chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for id := lo; id < hi; id++ {
				matchNode(css, nodes, tree, infos, dom.NodeId(id), author)
			}
		}(lo, hi)
	}
	wg.Wait()
}

func matchNode(css *parser.Stylesheet, nodes []dom.NodeData, tree *dom.Hierarchy, infos []dom.CascadeInfo, id dom.NodeId, author *[pr.NbStates][]propMap) {
	for _, rule := range css.Rules {
		if !matchesPath(rule.Path, nodes, tree, infos, id) {
			continue
		}
		bucket := rule.Path.StateBucket()
		for _, decl := range rule.Declarations {
			if decl.IsDynamic {
				logger.WarningLogger.Printf("ignored dynamic declaration var(%s) on %s", decl.Variable, rule.Path)
				continue
			}
			author[bucket][id].set(decl.Type, decl.Value)
		}
	}
}

// inherit walks the parents in ascending depth order and copies their
// inheritable declarations into the children that do not declare the
// property themselves. Parent sources rank inline style above matched
// rules above values the parent itself inherited.
func inherit(nodes []dom.NodeData, tree *dom.Hierarchy, nonLeaf []dom.DepthEntry, author, cascaded *[pr.NbStates][]propMap) {
	for _, entry := range nonLeaf {
		p := entry.Node
		parent := &nodes[p]
		for s := pr.PseudoState(0); s < pr.PseudoState(pr.NbStates); s++ {
			children := tree.Children(p)
			if len(children) == 0 {
				continue
			}
			for _, child := range children {
				dst := &cascaded[s][child]
				for i := len(parent.InlineProps) - 1; i >= 0; i-- {
					ip := parent.InlineProps[i]
					if ip.State == s && ip.Type.IsInheritable() {
						dst.setIfAbsent(ip.Type, ip.Value)
					}
				}
				for _, e := range author[s][p] {
					if e.Type.IsInheritable() {
						dst.setIfAbsent(e.Type, e.Value)
					}
				}
				for _, e := range cascaded[s][p] {
					if e.Type.IsInheritable() {
						dst.setIfAbsent(e.Type, e.Value)
					}
				}
			}
		}
	}
}

// generateTags assigns a fresh tag to every node that hit testing must
// be able to find: interactive callbacks, keyboard focus, context
// menus, state-dependent styling or a non-default cursor. Nodes styled
// display none never get tags, nor do their descendants.
func (c *CssPropertyCache) generateTags(nodes []dom.NodeData, tree *dom.Hierarchy) []TagMapping {
	hidden := make([]bool, len(nodes))
	for i := range nodes {
		display := pr.As[pr.Display](c.getSlow(&nodes[i], dom.NodeId(i), NodeState{}, pr.PDisplay))
		hidden[i] = display.IsExact() && display.V == pr.DisplayNone
	}

	var out []TagMapping
	for i := range nodes {
		id := dom.NodeId(i)
		node := &nodes[i]

		inHiddenSubtree := false
		for p := id; p != dom.NilNode; p = tree.Parent[p] {
			if hidden[p] {
				inHiddenSubtree = true
				break
			}
		}
		if inHiddenSubtree {
			continue
		}
		if !c.nodeNeedsTag(node, id) {
			continue
		}

		tabIndex := node.TabIndex
		if tabIndex == nil && node.HasFocusCallback() {
			tabIndex = &dom.TabIndex{Kind: dom.TabIndexAuto}
		}
		out = append(out, TagMapping{
			Tag:         newTagId(),
			Node:        id,
			TabIndex:    tabIndex,
			ParentChain: tree.ParentChain(id),
		})
	}
	return out
}

func (c *CssPropertyCache) nodeNeedsTag(node *dom.NodeData, id dom.NodeId) bool {
	if node.HasInteractiveCallback() || node.HasNonWindowCallback() {
		return true
	}
	if node.TabIndex != nil || node.HasFocusCallback() {
		return true
	}
	if node.ContextMenu != nil {
		return true
	}
	if node.HasInlineState() {
		return true
	}
	// only the node's own state declarations count: inherited copies in
	// the cascaded buckets do not make a child hit-testable
	for _, s := range []pr.PseudoState{pr.StateHover, pr.StateActive, pr.StateFocus} {
		if len(c.author[s][id]) > 0 {
			return true
		}
	}
	cursor := pr.As[pr.Cursor](c.getSlow(node, id, NodeState{}, pr.PCursor))
	return cursor.IsExact() && cursor.V != pr.CursorDefault
}
