// Package properties defines the typed representation of every CSS value
// recognized by the cascade engine, the four-case value sum
// (Auto / Initial / Inherit / Exact), and length resolution against a
// resolution context.
package properties

// PropertyType identifies one recognized CSS property.
// The zero value is invalid. The declaration order below defines the
// total ordering used by the cascade storage.
type PropertyType uint8

const (
	_ PropertyType = iota // invalid

	// text and other inherited properties
	PTextColor
	PFontSize
	PFontFamily
	PFontStyle
	PFontWeight
	PTextAlign
	PVerticalAlign
	PLetterSpacing
	PWordSpacing
	PLineHeight
	PTabWidth
	PTextIndent
	PWhiteSpace
	PWordBreak
	POverflowWrap
	PDirection
	PHyphens
	PTextDecoration
	PTextTransform
	PTextOverflow
	PListStyleType
	PListStylePosition
	PCursor
	PCaretColor
	PSelectionColor
	PSelectionBackgroundColor

	// box generation and positioning
	PDisplay
	PFloat
	PClear
	PBoxSizing
	PVisibility
	PPosition
	PTop
	PRight
	PBottom
	PLeft
	PZIndex

	// sizing
	PWidth
	PHeight
	PMinWidth
	PMinHeight
	PMaxWidth
	PMaxHeight
	PAspectRatio

	// flex container and items
	PFlexDirection
	PFlexWrap
	PFlexGrow
	PFlexShrink
	PFlexBasis
	PJustifyContent
	PAlignItems
	PAlignContent
	PAlignSelf
	POrder
	PRowGap
	PColumnGap

	// overflow
	POverflowX
	POverflowY

	// margins and paddings
	PMarginTop
	PMarginRight
	PMarginBottom
	PMarginLeft
	PPaddingTop
	PPaddingRight
	PPaddingBottom
	PPaddingLeft

	// borders
	PBorderTopWidth
	PBorderRightWidth
	PBorderBottomWidth
	PBorderLeftWidth
	PBorderTopStyle
	PBorderRightStyle
	PBorderBottomStyle
	PBorderLeftStyle
	PBorderTopColor
	PBorderRightColor
	PBorderBottomColor
	PBorderLeftColor
	PBorderTopLeftRadius
	PBorderTopRightRadius
	PBorderBottomLeftRadius
	PBorderBottomRightRadius

	// backgrounds
	PBackgroundContent
	PBackgroundPosition
	PBackgroundSize
	PBackgroundRepeat

	// shadows
	PBoxShadowLeft
	PBoxShadowRight
	PBoxShadowTop
	PBoxShadowBottom
	PTextShadow

	// visual effects
	POpacity
	PTransform
	PTransformOrigin
	PPerspectiveOrigin
	PBackfaceVisibility
	PMixBlendMode
	PFilter
	PBackdropFilter

	// widget styling
	PScrollbarStyle

	NbProperties // used for array sizing, not a property
)

var propertyNames = [NbProperties]string{
	PTextColor:                "color",
	PFontSize:                 "font-size",
	PFontFamily:               "font-family",
	PFontStyle:                "font-style",
	PFontWeight:               "font-weight",
	PTextAlign:                "text-align",
	PVerticalAlign:            "vertical-align",
	PLetterSpacing:            "letter-spacing",
	PWordSpacing:              "word-spacing",
	PLineHeight:               "line-height",
	PTabWidth:                 "tab-size",
	PTextIndent:               "text-indent",
	PWhiteSpace:               "white-space",
	PWordBreak:                "word-break",
	POverflowWrap:             "overflow-wrap",
	PDirection:                "direction",
	PHyphens:                  "hyphens",
	PTextDecoration:           "text-decoration",
	PTextTransform:            "text-transform",
	PTextOverflow:             "text-overflow",
	PListStyleType:            "list-style-type",
	PListStylePosition:        "list-style-position",
	PCursor:                   "cursor",
	PCaretColor:               "caret-color",
	PSelectionColor:           "selection-color",
	PSelectionBackgroundColor: "selection-background-color",
	PDisplay:                  "display",
	PFloat:                    "float",
	PClear:                    "clear",
	PBoxSizing:                "box-sizing",
	PVisibility:               "visibility",
	PPosition:                 "position",
	PTop:                      "top",
	PRight:                    "right",
	PBottom:                   "bottom",
	PLeft:                     "left",
	PZIndex:                   "z-index",
	PWidth:                    "width",
	PHeight:                   "height",
	PMinWidth:                 "min-width",
	PMinHeight:                "min-height",
	PMaxWidth:                 "max-width",
	PMaxHeight:                "max-height",
	PAspectRatio:              "aspect-ratio",
	PFlexDirection:            "flex-direction",
	PFlexWrap:                 "flex-wrap",
	PFlexGrow:                 "flex-grow",
	PFlexShrink:               "flex-shrink",
	PFlexBasis:                "flex-basis",
	PJustifyContent:           "justify-content",
	PAlignItems:               "align-items",
	PAlignContent:             "align-content",
	PAlignSelf:                "align-self",
	POrder:                    "order",
	PRowGap:                   "row-gap",
	PColumnGap:                "column-gap",
	POverflowX:                "overflow-x",
	POverflowY:                "overflow-y",
	PMarginTop:                "margin-top",
	PMarginRight:              "margin-right",
	PMarginBottom:             "margin-bottom",
	PMarginLeft:               "margin-left",
	PPaddingTop:               "padding-top",
	PPaddingRight:             "padding-right",
	PPaddingBottom:            "padding-bottom",
	PPaddingLeft:              "padding-left",
	PBorderTopWidth:           "border-top-width",
	PBorderRightWidth:         "border-right-width",
	PBorderBottomWidth:        "border-bottom-width",
	PBorderLeftWidth:          "border-left-width",
	PBorderTopStyle:           "border-top-style",
	PBorderRightStyle:         "border-right-style",
	PBorderBottomStyle:        "border-bottom-style",
	PBorderLeftStyle:          "border-left-style",
	PBorderTopColor:           "border-top-color",
	PBorderRightColor:         "border-right-color",
	PBorderBottomColor:        "border-bottom-color",
	PBorderLeftColor:          "border-left-color",
	PBorderTopLeftRadius:      "border-top-left-radius",
	PBorderTopRightRadius:     "border-top-right-radius",
	PBorderBottomLeftRadius:   "border-bottom-left-radius",
	PBorderBottomRightRadius:  "border-bottom-right-radius",
	PBackgroundContent:        "background",
	PBackgroundPosition:       "background-position",
	PBackgroundSize:           "background-size",
	PBackgroundRepeat:         "background-repeat",
	PBoxShadowLeft:            "box-shadow-left",
	PBoxShadowRight:           "box-shadow-right",
	PBoxShadowTop:             "box-shadow-top",
	PBoxShadowBottom:          "box-shadow-bottom",
	PTextShadow:               "text-shadow",
	POpacity:                  "opacity",
	PTransform:                "transform",
	PTransformOrigin:          "transform-origin",
	PPerspectiveOrigin:        "perspective-origin",
	PBackfaceVisibility:       "backface-visibility",
	PMixBlendMode:             "mix-blend-mode",
	PFilter:                   "filter",
	PBackdropFilter:           "backdrop-filter",
	PScrollbarStyle:           "scrollbar-style",
}

// PropertyByName maps the CSS name of a property back to its tag.
var PropertyByName = map[string]PropertyType{}

func init() {
	for p, name := range propertyNames {
		if name != "" {
			PropertyByName[name] = PropertyType(p)
		}
	}
}

func (p PropertyType) String() string {
	if int(p) < len(propertyNames) && propertyNames[p] != "" {
		return propertyNames[p]
	}
	return "<invalid property>"
}

// IsInheritable reports whether the computed value of p, when not set on
// an element, is taken from the parent.
func (p PropertyType) IsInheritable() bool {
	_, in := inheritedProperties[p]
	return in
}
