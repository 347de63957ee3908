package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/retainedui/cascade/css/properties"
)

func TestHierarchy(t *testing.T) {
	h := NewHierarchy(5)
	h.AppendChild(0, 1)
	h.AppendChild(0, 2)
	h.AppendChild(2, 3)
	h.AppendChild(2, 4)

	assert.Equal(t, []NodeId{1, 2}, h.Children(0))
	assert.Equal(t, []NodeId{3, 4}, h.Children(2))
	assert.Equal(t, NodeId(1), h.PrevSibling[2])
	assert.Equal(t, NodeId(4), h.LastChild[2])

	assert.Equal(t, []NodeId{2, 0}, h.Ancestors(4))
	assert.Equal(t, []NodeId{0, 2}, h.ParentChain(4))
	assert.Equal(t, 2, h.Depth(4))
	assert.Equal(t, 0, h.Depth(0))

	depths := h.NonLeafDepths()
	require.Len(t, depths, 2)
	assert.Equal(t, DepthEntry{Depth: 0, Node: 0}, depths[0])
	assert.Equal(t, DepthEntry{Depth: 1, Node: 2}, depths[1])
}

func TestBuildCascadeInfo(t *testing.T) {
	nodes := []NodeData{
		{Type: NtDiv},
		{Type: NtP},
		{Type: NtText, Text: "hi"},
		{Type: NtP},
	}
	h := NewHierarchy(4)
	h.AppendChild(0, 1)
	h.AppendChild(0, 2)
	h.AppendChild(0, 3)

	infos := BuildCascadeInfo(nodes, h)
	assert.Equal(t, uint32(0), infos[1].IndexInParent)
	assert.False(t, infos[1].IsLastChild)
	// the text node does not count as a sibling
	assert.Equal(t, uint32(1), infos[3].IndexInParent)
	assert.True(t, infos[3].IsLastChild)
}

const sampleHTML = `<!doctype html>
<html>
<head>
	<title>demo</title>
	<style>div { color: red }</style>
</head>
<body>
	<div id="main" class="wrapper dark" style="margin-left: 10px">
		<p tabindex="2">hello</p>
		<img src="logo.png">
		<custom-widget></custom-widget>
	</div>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	doc, err := FromHTML(strings.NewReader(sampleHTML))
	require.NoError(t, err)

	// html, body, div, p, #text, img, custom-widget
	require.Len(t, doc.Nodes, 7)
	assert.Equal(t, NodeId(0), doc.Root())
	assert.Equal(t, NtHtml, doc.Nodes[0].Type)
	assert.Equal(t, NtBody, doc.Nodes[1].Type)
	assert.Equal(t, "div { color: red }", strings.TrimSpace(doc.Style))

	div := doc.Nodes[2]
	assert.Equal(t, NtDiv, div.Type)
	assert.True(t, div.HasId("main"))
	assert.True(t, div.HasClass("wrapper"))
	assert.True(t, div.HasClass("dark"))
	require.Len(t, div.InlineProps, 1)
	assert.Equal(t, InlineProperty{
		State: pr.StateNormal,
		Type:  pr.PMarginLeft,
		Value: pr.AnyExact(pr.PxValue(10)),
	}, div.InlineProps[0])

	p := doc.Nodes[3]
	assert.Equal(t, NtP, p.Type)
	require.NotNil(t, p.TabIndex)
	assert.Equal(t, TabIndex{Kind: TabIndexOverrideInParent, Index: 2}, *p.TabIndex)

	text := doc.Nodes[4]
	assert.True(t, text.IsText())
	assert.Equal(t, "hello", text.Text)

	img := doc.Nodes[5]
	assert.Equal(t, NtImage, img.Type)
	assert.Equal(t, "logo.png", img.ImageSource)

	widget := doc.Nodes[6]
	assert.Equal(t, NtUnknown, widget.Type)
	assert.Equal(t, "custom-widget", widget.Tag())

	assert.Equal(t, NodeId(1), doc.Tree.Parent[2])
	assert.Equal(t, []NodeId{3, 4, 5, 6}, doc.Tree.Children(2))
}

func TestInlineProperty(t *testing.T) {
	n := NodeData{InlineProps: []InlineProperty{
		{State: pr.StateNormal, Type: pr.PTextColor, Value: pr.AnyExact(pr.ColorBlack)},
		{State: pr.StateHover, Type: pr.PTextColor, Value: pr.AnyExact(pr.ColorWhite)},
		{State: pr.StateNormal, Type: pr.PTextColor, Value: pr.AnyExact(pr.ColorU{R: 255, A: 255})},
	}}

	// the later normal declaration wins
	v, ok := n.InlineProperty(pr.StateNormal, pr.PTextColor)
	require.True(t, ok)
	assert.Equal(t, pr.AnyExact(pr.ColorU{R: 255, A: 255}), v)

	v, ok = n.InlineProperty(pr.StateHover, pr.PTextColor)
	require.True(t, ok)
	assert.Equal(t, pr.AnyExact(pr.ColorWhite), v)

	_, ok = n.InlineProperty(pr.StateFocus, pr.PTextColor)
	assert.False(t, ok)

	assert.True(t, n.HasInlineState())
}

func TestCallbackPredicates(t *testing.T) {
	n := NodeData{Callbacks: []Callback{{Event: "resize", Filter: FilterWindow}}}
	assert.False(t, n.HasInteractiveCallback())
	assert.False(t, n.HasNonWindowCallback())

	n.Callbacks = append(n.Callbacks, Callback{Event: "click", Filter: FilterHover})
	assert.True(t, n.HasInteractiveCallback())
	assert.True(t, n.HasNonWindowCallback())
	assert.False(t, n.HasFocusCallback())

	n.Callbacks = append(n.Callbacks, Callback{Event: "keydown", Filter: FilterFocus})
	assert.True(t, n.HasFocusCallback())
}
