package properties

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "<invalid keyword>"
}

func nameMap[T ~uint8](names []string) map[string]T {
	m := make(map[string]T, len(names))
	for i, n := range names {
		m[n] = T(i)
	}
	return m
}

// EnumFromU8 converts a raw byte back to an enum variant, rejecting
// out-of-range values. numVariants is the variant count of T.
func EnumFromU8[T ~uint8](v, numVariants uint8) (T, bool) {
	if v >= numVariants {
		return 0, false
	}
	return T(v), true
}

// Display is the CSS display property.
type Display uint8

func (Display) isCssProperty() {}

const (
	DisplayInline Display = iota
	DisplayBlock
	DisplayInlineBlock
	DisplayFlex
	DisplayInlineFlex
	DisplayGrid
	DisplayInlineGrid
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayListItem
	DisplayRunIn
	DisplayMarker
	DisplayFlowRoot
	DisplayNone

	NbDisplay uint8 = iota
)

var displayNames = []string{
	"inline", "block", "inline-block", "flex", "inline-flex", "grid",
	"inline-grid", "table", "inline-table", "table-row-group",
	"table-header-group", "table-footer-group", "table-row",
	"table-column-group", "table-column", "table-cell", "table-caption",
	"list-item", "run-in", "marker", "flow-root", "none",
}

var DisplayByName = nameMap[Display](displayNames)

func (d Display) String() string { return enumName(displayNames, uint8(d)) }

// Position is the CSS position property.
type Position uint8

func (Position) isCssProperty() {}

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky

	NbPosition uint8 = iota
)

var positionNames = []string{"static", "relative", "absolute", "fixed", "sticky"}

var PositionByName = nameMap[Position](positionNames)

func (p Position) String() string { return enumName(positionNames, uint8(p)) }

// Overflow is the per-axis overflow behaviour.
type Overflow uint8

func (Overflow) isCssProperty() {}

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
	OverflowClip

	NbOverflow uint8 = iota
)

var overflowNames = []string{"visible", "hidden", "scroll", "auto", "clip"}

var OverflowByName = nameMap[Overflow](overflowNames)

func (o Overflow) String() string { return enumName(overflowNames, uint8(o)) }

// IsClipped reports whether content outside the box is cut off or
// scrollable, i.e. anything but visible.
func (o Overflow) IsClipped() bool { return o != OverflowVisible }

func (o Overflow) IsVisible() bool { return o == OverflowVisible }

// Float is the CSS float property.
type Float uint8

func (Float) isCssProperty() {}

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight

	NbFloat uint8 = iota
)

var floatNames = []string{"none", "left", "right"}

var FloatByName = nameMap[Float](floatNames)

func (f Float) String() string { return enumName(floatNames, uint8(f)) }

// Clear is the CSS clear property.
type Clear uint8

func (Clear) isCssProperty() {}

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth

	NbClear uint8 = iota
)

var clearNames = []string{"none", "left", "right", "both"}

var ClearByName = nameMap[Clear](clearNames)

func (c Clear) String() string { return enumName(clearNames, uint8(c)) }

// FlexDirection is the main axis direction of a flex container.
type FlexDirection uint8

func (FlexDirection) isCssProperty() {}

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionRowReverse
	FlexDirectionColumn
	FlexDirectionColumnReverse

	NbFlexDirection uint8 = iota
)

var flexDirectionNames = []string{"row", "row-reverse", "column", "column-reverse"}

var FlexDirectionByName = nameMap[FlexDirection](flexDirectionNames)

func (f FlexDirection) String() string { return enumName(flexDirectionNames, uint8(f)) }

// IsRow reports a horizontal main axis.
func (f FlexDirection) IsRow() bool {
	return f == FlexDirectionRow || f == FlexDirectionRowReverse
}

// FlexWrap is the CSS flex-wrap property.
type FlexWrap uint8

func (FlexWrap) isCssProperty() {}

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse

	NbFlexWrap uint8 = iota
)

var flexWrapNames = []string{"nowrap", "wrap", "wrap-reverse"}

var FlexWrapByName = nameMap[FlexWrap](flexWrapNames)

func (f FlexWrap) String() string { return enumName(flexWrapNames, uint8(f)) }

// JustifyContent distributes free space on the main axis.
type JustifyContent uint8

func (JustifyContent) isCssProperty() {}

const (
	JustifyContentStart JustifyContent = iota
	JustifyContentEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly

	NbJustifyContent uint8 = iota
)

var justifyContentNames = []string{
	"flex-start", "flex-end", "center", "space-between", "space-around",
	"space-evenly",
}

var JustifyContentByName = nameMap[JustifyContent](justifyContentNames)

func (j JustifyContent) String() string { return enumName(justifyContentNames, uint8(j)) }

// AlignItems aligns flex items on the cross axis.
type AlignItems uint8

func (AlignItems) isCssProperty() {}

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline

	NbAlignItems uint8 = iota
)

var alignItemsNames = []string{"stretch", "flex-start", "flex-end", "center", "baseline"}

var AlignItemsByName = nameMap[AlignItems](alignItemsNames)

func (a AlignItems) String() string { return enumName(alignItemsNames, uint8(a)) }

// AlignContent distributes cross-axis space of a multi-line container.
type AlignContent uint8

func (AlignContent) isCssProperty() {}

const (
	AlignContentStretch AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround

	NbAlignContent uint8 = iota
)

var alignContentNames = []string{
	"stretch", "flex-start", "flex-end", "center", "space-between",
	"space-around",
}

var AlignContentByName = nameMap[AlignContent](alignContentNames)

func (a AlignContent) String() string { return enumName(alignContentNames, uint8(a)) }

// AlignSelf overrides align-items for one item.
type AlignSelf uint8

func (AlignSelf) isCssProperty() {}

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStretch
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline

	NbAlignSelf uint8 = iota
)

var alignSelfNames = []string{
	"auto", "stretch", "flex-start", "flex-end", "center", "baseline",
}

var AlignSelfByName = nameMap[AlignSelf](alignSelfNames)

func (a AlignSelf) String() string { return enumName(alignSelfNames, uint8(a)) }

// BoxSizing selects the box model used for width/height.
type BoxSizing uint8

func (BoxSizing) isCssProperty() {}

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox

	NbBoxSizing uint8 = iota
)

var boxSizingNames = []string{"content-box", "border-box"}

var BoxSizingByName = nameMap[BoxSizing](boxSizingNames)

func (b BoxSizing) String() string { return enumName(boxSizingNames, uint8(b)) }

// Visibility is the CSS visibility property.
type Visibility uint8

func (Visibility) isCssProperty() {}

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
	VisibilityCollapse

	NbVisibility uint8 = iota
)

var visibilityNames = []string{"visible", "hidden", "collapse"}

var VisibilityByName = nameMap[Visibility](visibilityNames)

func (v Visibility) String() string { return enumName(visibilityNames, uint8(v)) }

// WhiteSpace controls collapsing and wrapping of whitespace.
type WhiteSpace uint8

func (WhiteSpace) isCssProperty() {}

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNoWrap
	WhiteSpacePreWrap
	WhiteSpacePreLine

	NbWhiteSpace uint8 = iota
)

var whiteSpaceNames = []string{"normal", "pre", "nowrap", "pre-wrap", "pre-line"}

var WhiteSpaceByName = nameMap[WhiteSpace](whiteSpaceNames)

func (w WhiteSpace) String() string { return enumName(whiteSpaceNames, uint8(w)) }

// Direction is the inline base direction.
type Direction uint8

func (Direction) isCssProperty() {}

const (
	DirectionLtr Direction = iota
	DirectionRtl

	NbDirection uint8 = iota
)

var directionNames = []string{"ltr", "rtl"}

var DirectionByName = nameMap[Direction](directionNames)

func (d Direction) String() string { return enumName(directionNames, uint8(d)) }

// TextAlign is the CSS text-align property.
type TextAlign uint8

func (TextAlign) isCssProperty() {}

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify

	NbTextAlign uint8 = iota
)

var textAlignNames = []string{"left", "center", "right", "justify"}

var TextAlignByName = nameMap[TextAlign](textAlignNames)

func (t TextAlign) String() string { return enumName(textAlignNames, uint8(t)) }

// VerticalAlign is the CSS vertical-align property (keyword values only).
type VerticalAlign uint8

func (VerticalAlign) isCssProperty() {}

const (
	VerticalAlignBaseline VerticalAlign = iota
	VerticalAlignTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTextTop
	VerticalAlignTextBottom

	NbVerticalAlign uint8 = iota
)

var verticalAlignNames = []string{
	"baseline", "top", "middle", "bottom", "sub", "super", "text-top",
	"text-bottom",
}

var VerticalAlignByName = nameMap[VerticalAlign](verticalAlignNames)

func (v VerticalAlign) String() string { return enumName(verticalAlignNames, uint8(v)) }

// FontStyle is the CSS font-style property.
type FontStyle uint8

func (FontStyle) isCssProperty() {}

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique

	NbFontStyle uint8 = iota
)

var fontStyleNames = []string{"normal", "italic", "oblique"}

var FontStyleByName = nameMap[FontStyle](fontStyleNames)

func (f FontStyle) String() string { return enumName(fontStyleNames, uint8(f)) }

// BorderStyle is the line style of one border side.
type BorderStyle uint8

func (BorderStyle) isCssProperty() {}

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset

	NbBorderStyle uint8 = iota
)

var borderStyleNames = []string{
	"none", "hidden", "solid", "double", "dotted", "dashed", "groove",
	"ridge", "inset", "outset",
}

var BorderStyleByName = nameMap[BorderStyle](borderStyleNames)

func (b BorderStyle) String() string { return enumName(borderStyleNames, uint8(b)) }

// IsVisible reports whether the side paints anything.
func (b BorderStyle) IsVisible() bool {
	return b != BorderStyleNone && b != BorderStyleHidden
}

// Cursor is the mouse cursor shown over the node.
type Cursor uint8

func (Cursor) isCssProperty() {}

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorCrosshair
	CursorHelp
	CursorWait
	CursorProgress
	CursorNotAllowed
	CursorAlias
	CursorAllScroll
	CursorCell
	CursorColResize
	CursorRowResize
	CursorContextMenu
	CursorCopy
	CursorEResize
	CursorNResize
	CursorSResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorVerticalText
	CursorZoomIn
	CursorZoomOut

	NbCursor uint8 = iota
)

var cursorNames = []string{
	"default", "pointer", "text", "move", "grab", "grabbing", "crosshair",
	"help", "wait", "progress", "not-allowed", "alias", "all-scroll",
	"cell", "col-resize", "row-resize", "context-menu", "copy", "e-resize",
	"n-resize", "s-resize", "w-resize", "ew-resize", "ns-resize",
	"nesw-resize", "nwse-resize", "vertical-text", "zoom-in", "zoom-out",
}

var CursorByName = nameMap[Cursor](cursorNames)

func (c Cursor) String() string { return enumName(cursorNames, uint8(c)) }

// MixBlendMode is the CSS mix-blend-mode property.
type MixBlendMode uint8

func (MixBlendMode) isCssProperty() {}

const (
	MixBlendModeNormal MixBlendMode = iota
	MixBlendModeMultiply
	MixBlendModeScreen
	MixBlendModeOverlay
	MixBlendModeDarken
	MixBlendModeLighten
	MixBlendModeColorDodge
	MixBlendModeColorBurn
	MixBlendModeHardLight
	MixBlendModeSoftLight
	MixBlendModeDifference
	MixBlendModeExclusion
	MixBlendModeHue
	MixBlendModeSaturation
	MixBlendModeColor
	MixBlendModeLuminosity

	NbMixBlendMode uint8 = iota
)

var mixBlendModeNames = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity",
}

var MixBlendModeByName = nameMap[MixBlendMode](mixBlendModeNames)

func (m MixBlendMode) String() string { return enumName(mixBlendModeNames, uint8(m)) }

// BackfaceVisibility is the CSS backface-visibility property.
type BackfaceVisibility uint8

func (BackfaceVisibility) isCssProperty() {}

const (
	BackfaceVisible BackfaceVisibility = iota
	BackfaceHidden

	NbBackfaceVisibility uint8 = iota
)

var backfaceVisibilityNames = []string{"visible", "hidden"}

var BackfaceVisibilityByName = nameMap[BackfaceVisibility](backfaceVisibilityNames)

func (b BackfaceVisibility) String() string { return enumName(backfaceVisibilityNames, uint8(b)) }

// TextDecoration is the CSS text-decoration-line property.
type TextDecoration uint8

func (TextDecoration) isCssProperty() {}

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
	TextDecorationOverline
	TextDecorationLineThrough

	NbTextDecoration uint8 = iota
)

var textDecorationNames = []string{"none", "underline", "overline", "line-through"}

var TextDecorationByName = nameMap[TextDecoration](textDecorationNames)

func (t TextDecoration) String() string { return enumName(textDecorationNames, uint8(t)) }

// TextTransform is the CSS text-transform property.
type TextTransform uint8

func (TextTransform) isCssProperty() {}

const (
	TextTransformNone TextTransform = iota
	TextTransformUppercase
	TextTransformLowercase
	TextTransformCapitalize

	NbTextTransform uint8 = iota
)

var textTransformNames = []string{"none", "uppercase", "lowercase", "capitalize"}

var TextTransformByName = nameMap[TextTransform](textTransformNames)

func (t TextTransform) String() string { return enumName(textTransformNames, uint8(t)) }

// TextOverflow is the CSS text-overflow property.
type TextOverflow uint8

func (TextOverflow) isCssProperty() {}

const (
	TextOverflowClip TextOverflow = iota
	TextOverflowEllipsis

	NbTextOverflow uint8 = iota
)

var textOverflowNames = []string{"clip", "ellipsis"}

var TextOverflowByName = nameMap[TextOverflow](textOverflowNames)

func (t TextOverflow) String() string { return enumName(textOverflowNames, uint8(t)) }

// Hyphens is the CSS hyphens property.
type Hyphens uint8

func (Hyphens) isCssProperty() {}

const (
	HyphensManual Hyphens = iota
	HyphensNone
	HyphensAuto

	NbHyphens uint8 = iota
)

var hyphensNames = []string{"manual", "none", "auto"}

var HyphensByName = nameMap[Hyphens](hyphensNames)

func (h Hyphens) String() string { return enumName(hyphensNames, uint8(h)) }

// OverflowWrap is the CSS overflow-wrap property.
type OverflowWrap uint8

func (OverflowWrap) isCssProperty() {}

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapBreakWord
	OverflowWrapAnywhere

	NbOverflowWrap uint8 = iota
)

var overflowWrapNames = []string{"normal", "break-word", "anywhere"}

var OverflowWrapByName = nameMap[OverflowWrap](overflowWrapNames)

func (o OverflowWrap) String() string { return enumName(overflowWrapNames, uint8(o)) }

// WordBreak is the CSS word-break property.
type WordBreak uint8

func (WordBreak) isCssProperty() {}

const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakKeepAll

	NbWordBreak uint8 = iota
)

var wordBreakNames = []string{"normal", "break-all", "keep-all"}

var WordBreakByName = nameMap[WordBreak](wordBreakNames)

func (w WordBreak) String() string { return enumName(wordBreakNames, uint8(w)) }

// ListStyleType is the CSS list-style-type property (common subset).
type ListStyleType uint8

func (ListStyleType) isCssProperty() {}

const (
	ListStyleTypeDisc ListStyleType = iota
	ListStyleTypeCircle
	ListStyleTypeSquare
	ListStyleTypeDecimal
	ListStyleTypeLowerAlpha
	ListStyleTypeUpperAlpha
	ListStyleTypeLowerRoman
	ListStyleTypeUpperRoman
	ListStyleTypeNone

	NbListStyleType uint8 = iota
)

var listStyleTypeNames = []string{
	"disc", "circle", "square", "decimal", "lower-alpha", "upper-alpha",
	"lower-roman", "upper-roman", "none",
}

var ListStyleTypeByName = nameMap[ListStyleType](listStyleTypeNames)

func (l ListStyleType) String() string { return enumName(listStyleTypeNames, uint8(l)) }

// ListStylePosition is the CSS list-style-position property.
type ListStylePosition uint8

func (ListStylePosition) isCssProperty() {}

const (
	ListStylePositionOutside ListStylePosition = iota
	ListStylePositionInside

	NbListStylePosition uint8 = iota
)

var listStylePositionNames = []string{"outside", "inside"}

var ListStylePositionByName = nameMap[ListStylePosition](listStylePositionNames)

func (l ListStylePosition) String() string { return enumName(listStylePositionNames, uint8(l)) }

// BackgroundRepeat is the CSS background-repeat property.
type BackgroundRepeat uint8

func (BackgroundRepeat) isCssProperty() {}

const (
	BackgroundRepeatRepeat BackgroundRepeat = iota
	BackgroundRepeatRepeatX
	BackgroundRepeatRepeatY
	BackgroundRepeatNoRepeat

	NbBackgroundRepeat uint8 = iota
)

var backgroundRepeatNames = []string{"repeat", "repeat-x", "repeat-y", "no-repeat"}

var BackgroundRepeatByName = nameMap[BackgroundRepeat](backgroundRepeatNames)

func (b BackgroundRepeat) String() string { return enumName(backgroundRepeatNames, uint8(b)) }
