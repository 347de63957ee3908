package styled

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
)

// GetComputedCssStyleString formats every set property of a node as CSS
// declarations, one per line, in property declaration order. Properties
// resolving to their initial value are omitted.
func (c *CssPropertyCache) GetComputedCssStyleString(n *dom.NodeData, id dom.NodeId, s NodeState) string {
	var b strings.Builder
	for p := pr.PropertyType(1); p < pr.NbProperties; p++ {
		v := c.GetProperty(n, id, s, p)
		switch v.Kind {
		case pr.Initial:
			continue
		case pr.Auto:
			fmt.Fprintf(&b, "%s: auto;\n", p)
		case pr.Inherit:
			fmt.Fprintf(&b, "%s: inherit;\n", p)
		case pr.Exact:
			fmt.Fprintf(&b, "%s: %v;\n", p, v.Prop)
		}
	}
	return b.String()
}

// DebugTree renders the document as an indented tree, each node
// labelled with its tag and a short style summary.
func (c *CssPropertyCache) DebugTree(doc *dom.Document, s NodeState) string {
	tree := treeprint.New()
	root := doc.Root()
	if root == dom.NilNode {
		return tree.String()
	}
	c.debugNode(doc, root, s, tree)
	return tree.String()
}

func (c *CssPropertyCache) debugNode(doc *dom.Document, id dom.NodeId, s NodeState, branch treeprint.Tree) {
	node := &doc.Nodes[id]
	child := branch.AddBranch(c.debugLabel(node, id, s))
	for _, cid := range doc.Tree.Children(id) {
		c.debugNode(doc, cid, s, child)
	}
}

func (c *CssPropertyCache) debugLabel(node *dom.NodeData, id dom.NodeId, s NodeState) string {
	label := node.Tag()
	if node.IsText() {
		text := node.Text
		if len(text) > 20 {
			text = text[:20] + "..."
		}
		label = fmt.Sprintf("%q", text)
	}
	for _, cid := range node.Ids {
		label += "#" + cid
	}
	for _, class := range node.Classes {
		label += "." + class
	}

	var details []string
	if d := c.GetDisplay(node, id, s); d.IsExact() {
		details = append(details, "display: "+d.V.String())
	}
	if col := c.GetTextColor(node, id, s); col.IsExact() {
		details = append(details, "color: "+col.V.String())
	}
	if fs := c.GetFontSize(node, id, s); fs.IsExact() {
		details = append(details, "font-size: "+fs.V.String())
	}
	if len(details) == 0 {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, strings.Join(details, "; "))
}
