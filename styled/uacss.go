package styled

import (
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
)

// The user agent table mirrors the conventional browser defaults for
// the supported tags: block layout for structural elements, the 8px
// body margin, heading scales, list indentation. It sits below every
// stylesheet origin and above the initial values.

func uaDisplay(d pr.Display) pr.AnyValue   { return pr.AnyExact(d) }
func uaPx(v pr.Fl) pr.AnyValue             { return pr.AnyExact(pr.PxValue(v)) }
func uaEm(v pr.Fl) pr.AnyValue             { return pr.AnyExact(pr.EmValue(v)) }
func uaWeight(w pr.FontWeight) pr.AnyValue { return pr.AnyExact(w) }

var uaDefaults = map[dom.NodeType]map[pr.PropertyType]pr.AnyValue{
	dom.NtHtml: {
		pr.PDisplay: uaDisplay(pr.DisplayBlock),
	},
	dom.NtBody: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PMarginTop:    uaPx(8),
		pr.PMarginRight:  uaPx(8),
		pr.PMarginBottom: uaPx(8),
		pr.PMarginLeft:   uaPx(8),
	},
	dom.NtDiv: {
		pr.PDisplay: uaDisplay(pr.DisplayBlock),
	},
	dom.NtP: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PMarginTop:    uaEm(1),
		pr.PMarginBottom: uaEm(1),
	},
	dom.NtUl: {
		pr.PDisplay:       uaDisplay(pr.DisplayBlock),
		pr.PMarginTop:     uaEm(1),
		pr.PMarginBottom:  uaEm(1),
		pr.PPaddingLeft:   uaPx(40),
		pr.PListStyleType: pr.AnyExact(pr.ListStyleTypeDisc),
	},
	dom.NtOl: {
		pr.PDisplay:       uaDisplay(pr.DisplayBlock),
		pr.PMarginTop:     uaEm(1),
		pr.PMarginBottom:  uaEm(1),
		pr.PPaddingLeft:   uaPx(40),
		pr.PListStyleType: pr.AnyExact(pr.ListStyleTypeDecimal),
	},
	dom.NtLi: {
		pr.PDisplay: uaDisplay(pr.DisplayListItem),
	},
	dom.NtH1: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PFontSize:     uaEm(2),
		pr.PFontWeight:   uaWeight(pr.FontWeightBold),
		pr.PMarginTop:    uaEm(0.67),
		pr.PMarginBottom: uaEm(0.67),
	},
	dom.NtH2: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PFontSize:     uaEm(1.5),
		pr.PFontWeight:   uaWeight(pr.FontWeightBold),
		pr.PMarginTop:    uaEm(0.83),
		pr.PMarginBottom: uaEm(0.83),
	},
	dom.NtH3: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PFontSize:     uaEm(1.17),
		pr.PFontWeight:   uaWeight(pr.FontWeightBold),
		pr.PMarginTop:    uaEm(1),
		pr.PMarginBottom: uaEm(1),
	},
	dom.NtH4: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PFontWeight:   uaWeight(pr.FontWeightBold),
		pr.PMarginTop:    uaEm(1.33),
		pr.PMarginBottom: uaEm(1.33),
	},
	dom.NtH5: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PFontSize:     uaEm(0.83),
		pr.PFontWeight:   uaWeight(pr.FontWeightBold),
		pr.PMarginTop:    uaEm(1.67),
		pr.PMarginBottom: uaEm(1.67),
	},
	dom.NtH6: {
		pr.PDisplay:      uaDisplay(pr.DisplayBlock),
		pr.PFontSize:     uaEm(0.67),
		pr.PFontWeight:   uaWeight(pr.FontWeightBold),
		pr.PMarginTop:    uaEm(2.33),
		pr.PMarginBottom: uaEm(2.33),
	},
	dom.NtA: {
		pr.PTextColor:      pr.AnyExact(pr.ColorU{B: 0xEE, A: 0xFF}),
		pr.PTextDecoration: pr.AnyExact(pr.TextDecorationUnderline),
		pr.PCursor:         pr.AnyExact(pr.CursorPointer),
	},
	dom.NtButton: {
		pr.PDisplay:   uaDisplay(pr.DisplayInlineBlock),
		pr.PTextAlign: pr.AnyExact(pr.TextAlignCenter),
		pr.PCursor:    pr.AnyExact(pr.CursorDefault),
	},
	dom.NtImage: {
		pr.PDisplay: uaDisplay(pr.DisplayInlineBlock),
	},
	dom.NtIFrame: {
		pr.PDisplay:           uaDisplay(pr.DisplayInlineBlock),
		pr.PBorderTopWidth:    uaPx(2),
		pr.PBorderRightWidth:  uaPx(2),
		pr.PBorderBottomWidth: uaPx(2),
		pr.PBorderLeftWidth:   uaPx(2),
		pr.PBorderTopStyle:    pr.AnyExact(pr.BorderStyleInset),
		pr.PBorderRightStyle:  pr.AnyExact(pr.BorderStyleInset),
		pr.PBorderBottomStyle: pr.AnyExact(pr.BorderStyleInset),
		pr.PBorderLeftStyle:   pr.AnyExact(pr.BorderStyleInset),
	},
	dom.NtBr: {
		pr.PDisplay: uaDisplay(pr.DisplayBlock),
	},
}

// uaDefault returns the user agent default of a property for the given
// tag, if any.
func uaDefault(nt dom.NodeType, p pr.PropertyType) (pr.AnyValue, bool) {
	m, ok := uaDefaults[nt]
	if !ok {
		return pr.AnyValue{}, false
	}
	v, ok := m[p]
	return v, ok
}
