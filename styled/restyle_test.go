package styled

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retainedui/cascade/css/parser"
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
)

func mustDocument(t *testing.T, src string) *dom.Document {
	t.Helper()
	doc, err := dom.FromHTML(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func mustRestyle(t *testing.T, doc *dom.Document, css string) (*CssPropertyCache, []TagMapping) {
	t.Helper()
	sheet, err := parser.ParseStylesheet(css)
	require.NoError(t, err)
	cache := Empty(len(doc.Nodes))
	tags, err := cache.RestyleDocument(sheet, doc)
	require.NoError(t, err)
	return cache, tags
}

func findTag(doc *dom.Document, tag string) dom.NodeId {
	for i := range doc.Nodes {
		if doc.Nodes[i].Tag() == tag {
			return dom.NodeId(i)
		}
	}
	return dom.NilNode
}

func findText(doc *dom.Document) dom.NodeId {
	for i := range doc.Nodes {
		if doc.Nodes[i].IsText() {
			return dom.NodeId(i)
		}
	}
	return dom.NilNode
}

var colorRed = pr.ColorU{R: 255, A: 255}

func TestInheritanceDownTheTree(t *testing.T) {
	doc := mustDocument(t, `<html><body><div><p>hello</p></div></body></html>`)
	cache, _ := mustRestyle(t, doc, `div { color: red; }`)

	div := findTag(doc, "div")
	p := findTag(doc, "p")
	text := findText(doc)
	require.True(t, div != dom.NilNode && p != dom.NilNode && text != dom.NilNode)

	assert.Equal(t, pr.MakeExact(colorRed), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))
	// color is inheritable: p and its text get it through the cascade
	assert.Equal(t, pr.MakeExact(colorRed), cache.GetTextColor(&doc.Nodes[p], p, NodeState{}))
	assert.Equal(t, pr.MakeExact(colorRed), cache.GetTextColor(&doc.Nodes[text], text, NodeState{}))

	// margin is not inheritable
	cache2, _ := mustRestyle(t, doc, `div { margin-left: 10px; }`)
	assert.True(t, cache2.GetMarginLeft(&doc.Nodes[p], p, NodeState{}).IsInitial())
}

func TestHoverOverridesNormal(t *testing.T) {
	doc := mustDocument(t, `<html><body><div>hey</div></body></html>`)
	cache, _ := mustRestyle(t, doc, `
		div { color: black; }
		div:hover { color: red; }
	`)
	div := findTag(doc, "div")

	assert.Equal(t, pr.MakeExact(pr.ColorBlack), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))
	assert.Equal(t, pr.MakeExact(colorRed), cache.GetTextColor(&doc.Nodes[div], div, NodeState{Hovered: true}))
	// a hovered node still falls back to the normal bucket for
	// properties the hover rule does not set
	cache2, _ := mustRestyle(t, doc, `div { color: black; } div:hover { opacity: 0.5; }`)
	assert.Equal(t, pr.MakeExact(pr.ColorBlack), cache2.GetTextColor(&doc.Nodes[div], div, NodeState{Hovered: true}))
}

func TestMarginAutoIsNotUnset(t *testing.T) {
	doc := mustDocument(t, `<html><body><div>x</div></body></html>`)
	cache, _ := mustRestyle(t, doc, `div { margin-left: auto; }`)
	div := findTag(doc, "div")

	left := cache.GetMarginLeft(&doc.Nodes[div], div, NodeState{})
	right := cache.GetMarginRight(&doc.Nodes[div], div, NodeState{})
	assert.True(t, left.IsAuto())
	assert.True(t, right.IsInitial())
	assert.NotEqual(t, left.Kind, right.Kind)
}

func TestBackgroundPropagatesFromBodyToHtml(t *testing.T) {
	doc := mustDocument(t, `<html><body><div>x</div></body></html>`)
	cache, _ := mustRestyle(t, doc, `body { background: #ccc; }`)
	html := findTag(doc, "html")
	div := findTag(doc, "div")

	grey := pr.ColorU{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	got := cache.GetBackgroundColor(doc.Nodes, doc.Tree, html, NodeState{})
	assert.Equal(t, pr.MakeExact(grey), got)
	// the rule does not turn other descendants into donors
	assert.False(t, cache.GetBackgroundColor(doc.Nodes, doc.Tree, div, NodeState{}).IsExact())

	// an own html background wins
	cache2, _ := mustRestyle(t, doc, `html { background: red; } body { background: #ccc; }`)
	got2 := cache2.GetBackgroundColor(doc.Nodes, doc.Tree, html, NodeState{})
	assert.Equal(t, pr.MakeExact(colorRed), got2)
}

func TestEmFontSizeChain(t *testing.T) {
	doc := mustDocument(t, `<html><body><div><p>x</p></div></body></html>`)
	cache, _ := mustRestyle(t, doc, `
		html { font-size: 20px; }
		div  { font-size: 2em; }
		p    { font-size: 0.5em; }
	`)
	div := findTag(doc, "div")
	p := findTag(doc, "p")

	assert.Equal(t, pr.Fl(40), cache.ResolvedFontSize(doc.Nodes, doc.Tree, div, NodeState{}))
	assert.Equal(t, pr.Fl(20), cache.ResolvedFontSize(doc.Nodes, doc.Tree, p, NodeState{}))

	// an undeclared node keeps the parent computed size instead of
	// re-applying the relative factor
	body := findTag(doc, "body")
	assert.Equal(t, pr.Fl(20), cache.ResolvedFontSize(doc.Nodes, doc.Tree, body, NodeState{}))
}

func TestSpecificityOrdering(t *testing.T) {
	doc := mustDocument(t, `<html><body><div class="fancy">x</div></body></html>`)
	cache, _ := mustRestyle(t, doc, `
		.fancy { color: red; }
		div { color: black; }
	`)
	div := findTag(doc, "div")
	// the class selector outranks the type selector regardless of
	// source order
	assert.Equal(t, pr.MakeExact(colorRed), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))

	// equal specificity: the later rule wins
	cache2, _ := mustRestyle(t, doc, `div { color: red; } div { color: black; }`)
	assert.Equal(t, pr.MakeExact(pr.ColorBlack), cache2.GetTextColor(&doc.Nodes[div], div, NodeState{}))
}

func TestAuthorBeatsInlineBeatsCascaded(t *testing.T) {
	doc := mustDocument(t, `<html><body><div style="color: blue">x</div></body></html>`)
	div := findTag(doc, "div")

	// inline only
	cache, _ := mustRestyle(t, doc, ``)
	blue := pr.ColorU{B: 255, A: 255}
	assert.Equal(t, pr.MakeExact(blue), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))

	// a matched rule shadows the inline declaration
	cache2, _ := mustRestyle(t, doc, `div { color: red; }`)
	assert.Equal(t, pr.MakeExact(colorRed), cache2.GetTextColor(&doc.Nodes[div], div, NodeState{}))

	// and the inline declaration shadows an inherited value
	cache3, _ := mustRestyle(t, doc, `body { color: red; }`)
	assert.Equal(t, pr.MakeExact(blue), cache3.GetTextColor(&doc.Nodes[div], div, NodeState{}))
}

func TestUserOverrideBeatsEverything(t *testing.T) {
	doc := mustDocument(t, `<html><body><div style="color: blue">x</div></body></html>`)
	cache, _ := mustRestyle(t, doc, `div { color: red; }`)
	div := findTag(doc, "div")

	require.NoError(t, cache.SetUserOverride(div, pr.PTextColor, pr.AnyExact(pr.ColorWhite)))
	assert.Equal(t, pr.MakeExact(pr.ColorWhite), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))

	// overrides survive a restyle
	sheet, err := parser.ParseStylesheet(`div { color: black; }`)
	require.NoError(t, err)
	_, err = cache.RestyleDocument(sheet, doc)
	require.NoError(t, err)
	assert.Equal(t, pr.MakeExact(pr.ColorWhite), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))

	// and are gone once cleared
	require.NoError(t, cache.ClearUserOverrides(div))
	assert.Equal(t, pr.MakeExact(pr.ColorBlack), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))

	assert.ErrorIs(t, cache.SetUserOverride(dom.NodeId(99), pr.PTextColor, pr.AnyAuto), ErrInvalidNodeId)
}

func TestUserAgentDefaults(t *testing.T) {
	doc := mustDocument(t, `<html><body><div>x</div><em>y</em></body></html>`)
	cache, _ := mustRestyle(t, doc, ``)
	body := findTag(doc, "body")
	div := findTag(doc, "div")

	assert.Equal(t, pr.MakeExact(pr.PxValue(8)), cache.GetMarginTop(&doc.Nodes[body], body, NodeState{}))
	assert.Equal(t, pr.MakeExact(pr.DisplayBlock), cache.GetDisplay(&doc.Nodes[div], div, NodeState{}))

	// a stylesheet declaration shadows the user agent value
	cache2, _ := mustRestyle(t, doc, `body { margin: 0; }`)
	assert.Equal(t, pr.MakeExact(pr.PxValue(0)), cache2.GetMarginTop(&doc.Nodes[body], body, NodeState{}))
}

func TestTagGeneration(t *testing.T) {
	doc := mustDocument(t, `<html><body>
		<div class="hot">a</div>
		<div class="hidden hot">b</div>
		<div>c</div>
	</body></html>`)
	_, tags := mustRestyle(t, doc, `
		.hot:hover { color: red; }
		.hidden { display: none; }
	`)

	// only the visible hover-sensitive div gets a tag
	require.Len(t, tags, 1)
	got := tags[0]
	assert.Equal(t, "div", doc.Nodes[got.Node].Tag())
	assert.True(t, doc.Nodes[got.Node].HasClass("hot"))
	assert.False(t, doc.Nodes[got.Node].HasClass("hidden"))
	assert.NotZero(t, got.Tag)
	// the parent chain starts at the root
	require.NotEmpty(t, got.ParentChain)
	assert.Equal(t, doc.Root(), got.ParentChain[0])
}

func TestHiddenSubtreeSuppressesTags(t *testing.T) {
	doc := mustDocument(t, `<html><body><div class="hidden"><p class="hot">x</p></div></body></html>`)
	_, tags := mustRestyle(t, doc, `
		.hidden { display: none; }
		.hot:hover { color: red; }
	`)
	// descendants of a hidden node are unreachable by hit testing
	assert.Empty(t, tags)
}

func TestInheritedStateDoesNotTagChildren(t *testing.T) {
	doc := mustDocument(t, `<html><body><div class="hot"><p>x</p></div></body></html>`)
	_, tags := mustRestyle(t, doc, `.hot:hover { color: red; }`)
	require.Len(t, tags, 1)
	assert.Equal(t, findTag(doc, "div"), tags[0].Node)
}

func TestTagsForFocusAndMenus(t *testing.T) {
	doc := mustDocument(t, `<html><body><div tabindex="3">x</div></body></html>`)
	_, tags := mustRestyle(t, doc, ``)
	require.Len(t, tags, 1)
	require.NotNil(t, tags[0].TabIndex)
	assert.Equal(t, dom.TabIndexOverrideInParent, tags[0].TabIndex.Kind)
	assert.Equal(t, int32(3), tags[0].TabIndex.Index)

	doc2 := mustDocument(t, `<html><body><div>x</div></body></html>`)
	div := findTag(doc2, "div")
	doc2.Nodes[div].ContextMenu = &dom.ContextMenu{}
	_, tags2 := mustRestyle(t, doc2, ``)
	require.Len(t, tags2, 1)
	assert.Equal(t, div, tags2[0].Node)
}

func TestTagIdsAreNeverReused(t *testing.T) {
	doc := mustDocument(t, `<html><body><div tabindex="1">x</div></body></html>`)
	cache, tags := mustRestyle(t, doc, ``)
	require.Len(t, tags, 1)

	sheet, err := parser.ParseStylesheet(``)
	require.NoError(t, err)
	tags2, err := cache.RestyleDocument(sheet, doc)
	require.NoError(t, err)
	require.Len(t, tags2, 1)

	assert.Equal(t, tags[0].Node, tags2[0].Node)
	assert.NotEqual(t, tags[0].Tag, tags2[0].Tag)
}

func TestRestyleShapeMismatch(t *testing.T) {
	doc := mustDocument(t, `<html><body><div>x</div></body></html>`)
	cache, _ := mustRestyle(t, doc, `div { color: red; }`)
	div := findTag(doc, "div")

	small := Empty(2)
	sheet, err := parser.ParseStylesheet(`div { color: black; }`)
	require.NoError(t, err)
	_, err = small.RestyleDocument(sheet, doc)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// the properly sized cache is untouched by the failed restyle
	assert.Equal(t, pr.MakeExact(colorRed), cache.GetTextColor(&doc.Nodes[div], div, NodeState{}))
}

func TestRestyleIsIdempotent(t *testing.T) {
	doc := mustDocument(t, `<html><body><div class="a"><p>x</p></div></body></html>`)
	css := `
		html { font-size: 20px; }
		.a { color: red; margin: 1px 2px; }
		.a:hover { color: black; }
		p { font-size: 0.5em; }
	`
	cache, _ := mustRestyle(t, doc, css)

	before := make([]string, len(doc.Nodes))
	for i := range doc.Nodes {
		before[i] = cache.GetComputedCssStyleString(&doc.Nodes[i], dom.NodeId(i), NodeState{Hovered: true})
	}

	sheet, err := parser.ParseStylesheet(css)
	require.NoError(t, err)
	_, err = cache.RestyleDocument(sheet, doc)
	require.NoError(t, err)

	for i := range doc.Nodes {
		assert.Equal(t, before[i], cache.GetComputedCssStyleString(&doc.Nodes[i], dom.NodeId(i), NodeState{Hovered: true}))
	}
}

func TestRemoveAllProperties(t *testing.T) {
	doc := mustDocument(t, `<html><body><div>x</div></body></html>`)
	cache, _ := mustRestyle(t, doc, `div { color: red; margin-left: 4px; }`)
	div := findTag(doc, "div")

	require.NoError(t, cache.RemoveAllProperties(div))
	assert.True(t, cache.GetTextColor(&doc.Nodes[div], div, NodeState{}).IsInitial())
	assert.True(t, cache.GetMarginLeft(&doc.Nodes[div], div, NodeState{}).IsInitial())
	// the user agent layer is not part of the removed origins
	assert.Equal(t, pr.MakeExact(pr.DisplayBlock), cache.GetDisplay(&doc.Nodes[div], div, NodeState{}))
}

func TestEmptyDocument(t *testing.T) {
	cache := Empty(0)
	assert.Equal(t, 0, cache.NodeCount())

	sheet, err := parser.ParseStylesheet(`div { color: red; }`)
	require.NoError(t, err)
	tags, err := cache.Restyle(sheet, nil, dom.NewHierarchy(0), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestAppendShiftsNodes(t *testing.T) {
	docA := mustDocument(t, `<html><body><div>a</div></body></html>`)
	docB := mustDocument(t, `<html><body><p>b</p></body></html>`)
	cacheA, _ := mustRestyle(t, docA, `div { color: red; }`)
	cacheB, _ := mustRestyle(t, docB, `p { color: black; }`)

	div := findTag(docA, "div")
	p := findTag(docB, "p")
	shift := dom.NodeId(cacheA.NodeCount())

	cacheA.Append(cacheB)
	assert.Equal(t, len(docA.Nodes)+len(docB.Nodes), cacheA.NodeCount())

	assert.Equal(t, pr.MakeExact(colorRed), cacheA.GetTextColor(&docA.Nodes[div], div, NodeState{}))
	assert.Equal(t, pr.MakeExact(pr.ColorBlack), cacheA.GetTextColor(&docB.Nodes[p], p+shift, NodeState{}))
}

func TestAppendIsAssociative(t *testing.T) {
	build := func() (*CssPropertyCache, *dom.Document, *CssPropertyCache, *dom.Document, *CssPropertyCache, *dom.Document) {
		docA := mustDocument(t, `<html><body><div>a</div></body></html>`)
		docB := mustDocument(t, `<html><body><p>b</p></body></html>`)
		docC := mustDocument(t, `<html><body><span>c</span></body></html>`)
		cacheA, _ := mustRestyle(t, docA, `div { color: red; }`)
		cacheB, _ := mustRestyle(t, docB, `p { margin-left: 3px; }`)
		cacheC, _ := mustRestyle(t, docC, `span { color: black; }`)
		return cacheA, docA, cacheB, docB, cacheC, docC
	}

	// (a + b) + c
	left, docA, lb, docB, lc, docC := build()
	left.Append(lb)
	left.Append(lc)

	// a + (b + c)
	right, _, rb, _, rc, _ := build()
	rb.Append(rc)
	right.Append(rb)

	require.Equal(t, left.NodeCount(), right.NodeCount())

	shiftB := dom.NodeId(len(docA.Nodes))
	shiftC := shiftB + dom.NodeId(len(docB.Nodes))
	div := findTag(docA, "div")
	p := findTag(docB, "p") + shiftB
	span := findTag(docC, "span") + shiftC

	for _, c := range []*CssPropertyCache{left, right} {
		assert.Equal(t, pr.MakeExact(colorRed), c.GetTextColor(&docA.Nodes[div], div, NodeState{}))
		assert.Equal(t, pr.MakeExact(pr.PxValue(3)), c.GetMarginLeft(&docB.Nodes[p-shiftB], p, NodeState{}))
		assert.Equal(t, pr.MakeExact(pr.ColorBlack), c.GetTextColor(&docC.Nodes[span-shiftC], span, NodeState{}))
	}
}

func TestRootEmUsesDefaultFontSize(t *testing.T) {
	doc := mustDocument(t, `<html><body></body></html>`)
	cache, _ := mustRestyle(t, doc, `html { font-size: 2em; }`)

	html := findTag(doc, "html")
	// the root has no parent to inherit from, so em resolves against
	// the 16px default
	assert.Equal(t, pr.Fl(32), cache.ResolvedFontSize(doc.Nodes, doc.Tree, html, NodeState{}))
}
