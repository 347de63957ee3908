package parser

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/utils/testutils"
)

func TestParseStylesheet(t *testing.T) {
	sheet, err := ParseStylesheet(`
		div { color: red; margin: 10px }
		div:hover { color: blue }
		#main > p { font-size: 1.5em }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)

	r := sheet.Rules[0]
	assert.Equal(t, cascadia.Specificity{0, 0, 1}, r.Specificity)
	assert.Equal(t, 0, r.SourceIndex)
	// margin expands to four declarations
	require.Len(t, r.Declarations, 5)
	assert.Equal(t, pr.PTextColor, r.Declarations[0].Type)
	assert.Equal(t, pr.AnyExact(pr.ColorU{R: 255, A: 255}), r.Declarations[0].Value)
	assert.Equal(t, pr.PMarginTop, r.Declarations[1].Type)
	assert.Equal(t, pr.AnyExact(pr.PxValue(10)), r.Declarations[1].Value)

	assert.Equal(t, pr.StateHover, sheet.Rules[1].Path.StateBucket())
	assert.Equal(t, cascadia.Specificity{1, 0, 1}, sheet.Rules[2].Specificity)
}

func TestParseStylesheetSkipsBrokenRules(t *testing.T) {
	logs, restore := testutils.CaptureLogs()
	defer restore()

	sheet, err := ParseStylesheet(`
		div::before { color: red }
		p { colour: red; width: 10px }
		@media screen { div { color: red } }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, pr.PWidth, sheet.Rules[0].Declarations[0].Type)
	assert.NotEmpty(t, logs.String())
}

func TestSortRules(t *testing.T) {
	sheet, err := ParseStylesheet(`
		#x { color: red }
		div { color: green }
		p.a { color: blue }
		span { color: white }
	`)
	require.NoError(t, err)
	sheet.SortRules()

	var order []int
	for _, r := range sheet.Rules {
		order = append(order, r.SourceIndex)
	}
	// types first (source order kept), then the class, then the id
	assert.Equal(t, []int{1, 3, 2, 0}, order)
}

func TestParseInlineStyle(t *testing.T) {
	decls := ParseInlineStyle("color: #aabbcc; display: flex")
	require.Len(t, decls, 2)
	assert.Equal(t, pr.PTextColor, decls[0].Type)
	assert.Equal(t, pr.AnyExact(pr.ColorU{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}), decls[0].Value)
	assert.Equal(t, pr.AnyExact(pr.DisplayFlex), decls[1].Value)

	// the terminating semicolon is optional
	assert.Equal(t, decls, ParseInlineStyle("color: #aabbcc; display: flex;"))
	assert.Empty(t, ParseInlineStyle("  "))
}

func TestDynamicDeclarations(t *testing.T) {
	decls := ParseInlineStyle("color: var(--accent)")
	require.Len(t, decls, 1)
	assert.True(t, decls[0].IsDynamic)
	assert.Equal(t, "--accent", decls[0].Variable)
}

func TestShorthands(t *testing.T) {
	decls := ParseInlineStyle("padding: 1px 2px 3px")
	require.Len(t, decls, 4)
	testutils.AssertEqual(t, decls[0], Declaration{Type: pr.PPaddingTop, Value: pr.AnyExact(pr.PxValue(1))})
	testutils.AssertEqual(t, decls[1], Declaration{Type: pr.PPaddingRight, Value: pr.AnyExact(pr.PxValue(2))})
	testutils.AssertEqual(t, decls[2], Declaration{Type: pr.PPaddingBottom, Value: pr.AnyExact(pr.PxValue(3))})
	testutils.AssertEqual(t, decls[3], Declaration{Type: pr.PPaddingLeft, Value: pr.AnyExact(pr.PxValue(2))})

	decls = ParseInlineStyle("border: 1px solid black")
	require.Len(t, decls, 12)

	decls = ParseInlineStyle("overflow: hidden")
	require.Len(t, decls, 2)
	assert.Equal(t, pr.POverflowX, decls[0].Type)
	assert.Equal(t, pr.POverflowY, decls[1].Type)
	assert.Equal(t, pr.AnyExact(pr.OverflowHidden), decls[0].Value)

	decls = ParseInlineStyle("flex: 2 1 auto")
	require.Len(t, decls, 3)
	assert.Equal(t, pr.AnyExact(pr.FloatValue{Value: 2}), decls[0].Value)
	assert.Equal(t, pr.AnyExact(pr.FloatValue{Value: 1}), decls[1].Value)
	assert.Equal(t, pr.AnyAuto, decls[2].Value)

	// an empty shorthand value is discarded like any other bad
	// declaration
	sheet, err := ParseStylesheet("div { flex: ; }")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
	assert.Empty(t, ParseInlineStyle("flex:"))
}

func TestGlobalKeywords(t *testing.T) {
	v, err := ParseValue(pr.PMarginLeft, "auto")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyAuto, v)

	v, err = ParseValue(pr.PWidth, "initial")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyInitial, v)

	v, err = ParseValue(pr.PTextColor, "inherit")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyInherit, v)

	// unset inherits for inherited properties only
	v, err = ParseValue(pr.PTextColor, "unset")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyInherit, v)
	v, err = ParseValue(pr.PWidth, "unset")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyInitial, v)
}
