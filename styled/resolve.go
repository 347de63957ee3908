package styled

import (
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
	"github.com/retainedui/cascade/matrix"
)

// fontSizeDeclared returns the font size declared on the node itself
// (override, matched rules, inline style), skipping the inherited
// bucket: an inherited font size is already accounted for by the
// parent's computed value, and resolving its relative units twice
// would compound them.
func (c *CssPropertyCache) fontSizeDeclared(node *dom.NodeData, id dom.NodeId, state NodeState) (pr.AnyValue, bool) {
	if v, ok := c.userOverrides[id].get(pr.PFontSize); ok {
		return v, true
	}
	for _, bucket := range state.order() {
		if v, ok := c.getAuthor(bucket, id, pr.PFontSize); ok {
			return v, true
		}
		if v, ok := node.InlineProperty(bucket, pr.PFontSize); ok {
			return v, true
		}
	}
	return uaDefault(node.Type, pr.PFontSize)
}

// ResolvedFontSize computes the pixel font size of a node, walking the
// parent chain from the root so that em and percent sizes resolve
// against the parent's computed size, and rem sizes against the root.
func (c *CssPropertyCache) ResolvedFontSize(nodes []dom.NodeData, tree *dom.Hierarchy, id dom.NodeId, state NodeState) pr.Fl {
	if !c.validNode(id) || int(id) >= len(nodes) {
		return pr.DefaultFontSize
	}
	chain := append(tree.ParentChain(id), id)

	parent := pr.DefaultFontSize
	root := pr.DefaultFontSize
	size := pr.DefaultFontSize
	for i, n := range chain {
		size = parent
		if decl, ok := c.fontSizeDeclared(&nodes[n], n, state); ok {
			v := pr.As[pr.PixelValue](decl)
			if v.IsExact() {
				ctx := pr.ResolutionContext{
					ParentFontSize: parent,
					RootFontSize:   root,
					Viewport:       pr.Size{},
				}
				size = pr.ResolvePixels(v.V, ctx, pr.PcFontSize)
			}
		}
		if i == 0 {
			root = size
		}
		parent = size
	}
	return size
}

// ResolveLength computes the pixel value of a length property,
// resolving relative units against the node's computed font size, the
// viewport and the containing block. The keyword cases pass through
// unresolved.
func (c *CssPropertyCache) ResolveLength(nodes []dom.NodeData, tree *dom.Hierarchy, id dom.NodeId, state NodeState,
	p pr.PropertyType, viewport pr.Size, containingBlock pr.Size, elementSize *pr.Size) pr.Value[pr.Fl] {

	if !c.validNode(id) || int(id) >= len(nodes) {
		return pr.MakeInitial[pr.Fl]()
	}
	v := pr.As[pr.PixelValue](c.GetProperty(&nodes[id], id, state, p))
	if !v.IsExact() {
		return pr.Value[pr.Fl]{Kind: v.Kind}
	}

	fontSize := c.ResolvedFontSize(nodes, tree, id, state)
	parentFontSize := pr.DefaultFontSize
	rootFontSize := pr.DefaultFontSize
	if parent := tree.Parent[id]; parent != dom.NilNode {
		parentFontSize = c.ResolvedFontSize(nodes, tree, parent, state)
	}
	if root := rootOf(tree, id); root != dom.NilNode {
		rootFontSize = c.ResolvedFontSize(nodes, tree, root, state)
	}

	ctx := pr.ResolutionContext{
		ElementSize:     elementSize,
		ElementFontSize: fontSize,
		ParentFontSize:  parentFontSize,
		RootFontSize:    rootFontSize,
		Viewport:        viewport,
		ContainingBlock: containingBlock,
	}
	return pr.MakeExact(pr.ResolvePixels(v.V, ctx, pr.ContextFor(p)))
}

// GetTransformMatrix compiles the transform list of a node into a
// single 2D matrix, pivoted on the transform origin. The box is the
// node's border box; percentages of the transform functions and of the
// origin resolve against it. It reports false when the node has no
// transform.
func (c *CssPropertyCache) GetTransformMatrix(nodes []dom.NodeData, tree *dom.Hierarchy, id dom.NodeId, state NodeState,
	viewport pr.Size, box pr.Size) (matrix.Transform, bool) {

	if !c.validNode(id) || int(id) >= len(nodes) {
		return matrix.Identity(), false
	}
	n := &nodes[id]
	v := c.GetTransform(n, id, state)
	if !v.IsExact() || len(v.V) == 0 {
		return matrix.Identity(), false
	}

	ctx := pr.ResolutionContext{
		ElementFontSize: c.ResolvedFontSize(nodes, tree, id, state),
		RootFontSize:    pr.DefaultFontSize,
		Viewport:        viewport,
		ContainingBlock: box,
	}
	m := matrix.FromTransforms(v.V, ctx)

	// the default pivot is the box center
	ox, oy := box.Width/2, box.Height/2
	if origin := c.GetTransformOrigin(n, id, state); origin.IsExact() {
		ox = pr.ResolvePixels(origin.V.X, ctx, pr.PcHorizontal)
		oy = pr.ResolvePixels(origin.V.Y, ctx, pr.PcVertical)
	}
	return matrix.AroundOrigin(m, ox, oy), true
}

func rootOf(tree *dom.Hierarchy, id dom.NodeId) dom.NodeId {
	for p := tree.Parent[id]; p != dom.NilNode; p = tree.Parent[id] {
		id = p
	}
	return id
}
