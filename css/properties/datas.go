package properties

// inheritedProperties lists the properties whose computed value
// propagates from parent to child when unset.
var inheritedProperties = map[PropertyType]struct{}{
	PTextColor:                {},
	PFontSize:                 {},
	PFontFamily:               {},
	PFontStyle:                {},
	PFontWeight:               {},
	PTextAlign:                {},
	PLetterSpacing:            {},
	PWordSpacing:              {},
	PLineHeight:               {},
	PTabWidth:                 {},
	PTextIndent:               {},
	PWhiteSpace:               {},
	PWordBreak:                {},
	POverflowWrap:             {},
	PDirection:                {},
	PHyphens:                  {},
	PTextTransform:            {},
	PListStyleType:            {},
	PListStylePosition:        {},
	PCursor:                   {},
	PCaretColor:               {},
	PSelectionColor:           {},
	PSelectionBackgroundColor: {},
	PVisibility:               {},
}

// InitialValues gives the concrete value a property assumes when the
// cascade yields Initial, for properties where a concrete default is
// meaningful. Length properties default to zero and are omitted.
var InitialValues = map[PropertyType]CssProperty{
	PTextColor:          ColorBlack,
	PFontSize:           PixelValue{Value: DefaultFontSize, Unit: Px},
	PFontStyle:          FontStyleNormal,
	PFontWeight:         FontWeightNormal,
	PTextAlign:          TextAlignLeft,
	PVerticalAlign:      VerticalAlignBaseline,
	PLineHeight:         RatioValue{Value: 1.2},
	PTabWidth:           PixelValue{Value: 8, Unit: Em},
	PWhiteSpace:         WhiteSpaceNormal,
	PWordBreak:          WordBreakNormal,
	POverflowWrap:       OverflowWrapNormal,
	PDirection:          DirectionLtr,
	PHyphens:            HyphensManual,
	PTextDecoration:     TextDecorationNone,
	PTextTransform:      TextTransformNone,
	PTextOverflow:       TextOverflowClip,
	PListStyleType:      ListStyleTypeDisc,
	PListStylePosition:  ListStylePositionOutside,
	PCursor:             CursorDefault,
	PDisplay:            DisplayInline,
	PFloat:              FloatNone,
	PClear:              ClearNone,
	PBoxSizing:          BoxSizingContentBox,
	PVisibility:         VisibilityVisible,
	PPosition:           PositionStatic,
	PFlexDirection:      FlexDirectionRow,
	PFlexWrap:           FlexWrapNoWrap,
	PFlexGrow:           FloatValue{Value: 0},
	PFlexShrink:         FloatValue{Value: 1},
	PJustifyContent:     JustifyContentStart,
	PAlignItems:         AlignItemsStretch,
	PAlignContent:       AlignContentStretch,
	PAlignSelf:          AlignSelfAuto,
	POverflowX:          OverflowVisible,
	POverflowY:          OverflowVisible,
	PBorderTopStyle:     BorderStyleNone,
	PBorderRightStyle:   BorderStyleNone,
	PBorderBottomStyle:  BorderStyleNone,
	PBorderLeftStyle:    BorderStyleNone,
	PBackgroundRepeat:   BackgroundRepeatRepeat,
	POpacity:            FloatValue{Value: 1},
	PBackfaceVisibility: BackfaceVisible,
	PMixBlendMode:       MixBlendModeNormal,
	PFontFamily:         FontFamilies{{Name: "sans-serif"}},
}

// InitialOf returns the concrete initial value of p as a T, or the
// zero T when no concrete default is recorded for it.
func InitialOf[T CssProperty](p PropertyType) T {
	v, _ := InitialValues[p].(T)
	return v
}

// FontSizeKeywords maps the CSS absolute size keywords to pixel values,
// following the common desktop scale for a 16px medium.
var FontSizeKeywords = map[string]Fl{
	"xx-small": 16 * 3 / 5,
	"x-small":  16 * 3 / 4,
	"small":    16 * 8 / 9,
	"medium":   16,
	"large":    16 * 6 / 5,
	"x-large":  16 * 3 / 2,
	"xx-large": 16 * 2,
}

// BorderWidthKeywords maps the border width keywords to pixel values.
var BorderWidthKeywords = map[string]Fl{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}
