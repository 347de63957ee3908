package styled

import (
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
)

func getAs[T pr.CssProperty](c *CssPropertyCache, n *dom.NodeData, id dom.NodeId, s NodeState, p pr.PropertyType) pr.Value[T] {
	return pr.As[T](c.GetProperty(n, id, s, p))
}

// Text and inherited properties.

func (c *CssPropertyCache) GetTextColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PTextColor)
}

func (c *CssPropertyCache) GetFontSize(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PFontSize)
}

func (c *CssPropertyCache) GetFontFamilies(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FontFamilies] {
	return getAs[pr.FontFamilies](c, n, id, s, pr.PFontFamily)
}

func (c *CssPropertyCache) GetFontStyle(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FontStyle] {
	return getAs[pr.FontStyle](c, n, id, s, pr.PFontStyle)
}

func (c *CssPropertyCache) GetFontWeight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FontWeight] {
	return getAs[pr.FontWeight](c, n, id, s, pr.PFontWeight)
}

func (c *CssPropertyCache) GetTextAlign(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.TextAlign] {
	return getAs[pr.TextAlign](c, n, id, s, pr.PTextAlign)
}

func (c *CssPropertyCache) GetVerticalAlign(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.VerticalAlign] {
	return getAs[pr.VerticalAlign](c, n, id, s, pr.PVerticalAlign)
}

func (c *CssPropertyCache) GetLetterSpacing(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PLetterSpacing)
}

func (c *CssPropertyCache) GetWordSpacing(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PWordSpacing)
}

func (c *CssPropertyCache) GetLineHeight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.RatioValue] {
	return getAs[pr.RatioValue](c, n, id, s, pr.PLineHeight)
}

func (c *CssPropertyCache) GetTabWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PTabWidth)
}

func (c *CssPropertyCache) GetTextIndent(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PTextIndent)
}

func (c *CssPropertyCache) GetWhiteSpace(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.WhiteSpace] {
	return getAs[pr.WhiteSpace](c, n, id, s, pr.PWhiteSpace)
}

func (c *CssPropertyCache) GetWordBreak(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.WordBreak] {
	return getAs[pr.WordBreak](c, n, id, s, pr.PWordBreak)
}

func (c *CssPropertyCache) GetOverflowWrap(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.OverflowWrap] {
	return getAs[pr.OverflowWrap](c, n, id, s, pr.POverflowWrap)
}

func (c *CssPropertyCache) GetDirection(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Direction] {
	return getAs[pr.Direction](c, n, id, s, pr.PDirection)
}

func (c *CssPropertyCache) GetHyphens(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Hyphens] {
	return getAs[pr.Hyphens](c, n, id, s, pr.PHyphens)
}

func (c *CssPropertyCache) GetTextDecoration(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.TextDecoration] {
	return getAs[pr.TextDecoration](c, n, id, s, pr.PTextDecoration)
}

func (c *CssPropertyCache) GetTextTransform(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.TextTransform] {
	return getAs[pr.TextTransform](c, n, id, s, pr.PTextTransform)
}

func (c *CssPropertyCache) GetTextOverflow(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.TextOverflow] {
	return getAs[pr.TextOverflow](c, n, id, s, pr.PTextOverflow)
}

func (c *CssPropertyCache) GetListStyleType(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ListStyleType] {
	return getAs[pr.ListStyleType](c, n, id, s, pr.PListStyleType)
}

func (c *CssPropertyCache) GetListStylePosition(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ListStylePosition] {
	return getAs[pr.ListStylePosition](c, n, id, s, pr.PListStylePosition)
}

func (c *CssPropertyCache) GetCursor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Cursor] {
	return getAs[pr.Cursor](c, n, id, s, pr.PCursor)
}

func (c *CssPropertyCache) GetCaretColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PCaretColor)
}

func (c *CssPropertyCache) GetSelectionColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PSelectionColor)
}

func (c *CssPropertyCache) GetSelectionBackgroundColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PSelectionBackgroundColor)
}

// Box generation and positioning.

func (c *CssPropertyCache) GetDisplay(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Display] {
	return getAs[pr.Display](c, n, id, s, pr.PDisplay)
}

func (c *CssPropertyCache) GetFloat(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Float] {
	return getAs[pr.Float](c, n, id, s, pr.PFloat)
}

func (c *CssPropertyCache) GetClear(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Clear] {
	return getAs[pr.Clear](c, n, id, s, pr.PClear)
}

func (c *CssPropertyCache) GetBoxSizing(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BoxSizing] {
	return getAs[pr.BoxSizing](c, n, id, s, pr.PBoxSizing)
}

func (c *CssPropertyCache) GetVisibility(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Visibility] {
	return getAs[pr.Visibility](c, n, id, s, pr.PVisibility)
}

func (c *CssPropertyCache) GetPosition(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Position] {
	return getAs[pr.Position](c, n, id, s, pr.PPosition)
}

func (c *CssPropertyCache) GetTop(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PTop)
}

func (c *CssPropertyCache) GetRight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PRight)
}

func (c *CssPropertyCache) GetBottom(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBottom)
}

func (c *CssPropertyCache) GetLeft(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PLeft)
}

func (c *CssPropertyCache) GetZIndex(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.IntValue] {
	return getAs[pr.IntValue](c, n, id, s, pr.PZIndex)
}

// Sizing.

func (c *CssPropertyCache) GetWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Dimension] {
	return getAs[pr.Dimension](c, n, id, s, pr.PWidth)
}

func (c *CssPropertyCache) GetHeight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Dimension] {
	return getAs[pr.Dimension](c, n, id, s, pr.PHeight)
}

func (c *CssPropertyCache) GetMinWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Dimension] {
	return getAs[pr.Dimension](c, n, id, s, pr.PMinWidth)
}

func (c *CssPropertyCache) GetMinHeight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Dimension] {
	return getAs[pr.Dimension](c, n, id, s, pr.PMinHeight)
}

func (c *CssPropertyCache) GetMaxWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Dimension] {
	return getAs[pr.Dimension](c, n, id, s, pr.PMaxWidth)
}

func (c *CssPropertyCache) GetMaxHeight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Dimension] {
	return getAs[pr.Dimension](c, n, id, s, pr.PMaxHeight)
}

func (c *CssPropertyCache) GetAspectRatio(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.AspectRatio] {
	return getAs[pr.AspectRatio](c, n, id, s, pr.PAspectRatio)
}

// Flex.

func (c *CssPropertyCache) GetFlexDirection(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FlexDirection] {
	return getAs[pr.FlexDirection](c, n, id, s, pr.PFlexDirection)
}

func (c *CssPropertyCache) GetFlexWrap(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FlexWrap] {
	return getAs[pr.FlexWrap](c, n, id, s, pr.PFlexWrap)
}

func (c *CssPropertyCache) GetFlexGrow(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FloatValue] {
	return getAs[pr.FloatValue](c, n, id, s, pr.PFlexGrow)
}

func (c *CssPropertyCache) GetFlexShrink(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FloatValue] {
	return getAs[pr.FloatValue](c, n, id, s, pr.PFlexShrink)
}

func (c *CssPropertyCache) GetFlexBasis(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Dimension] {
	return getAs[pr.Dimension](c, n, id, s, pr.PFlexBasis)
}

func (c *CssPropertyCache) GetJustifyContent(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.JustifyContent] {
	return getAs[pr.JustifyContent](c, n, id, s, pr.PJustifyContent)
}

func (c *CssPropertyCache) GetAlignItems(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.AlignItems] {
	return getAs[pr.AlignItems](c, n, id, s, pr.PAlignItems)
}

func (c *CssPropertyCache) GetAlignContent(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.AlignContent] {
	return getAs[pr.AlignContent](c, n, id, s, pr.PAlignContent)
}

func (c *CssPropertyCache) GetAlignSelf(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.AlignSelf] {
	return getAs[pr.AlignSelf](c, n, id, s, pr.PAlignSelf)
}

func (c *CssPropertyCache) GetOrder(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.IntValue] {
	return getAs[pr.IntValue](c, n, id, s, pr.POrder)
}

func (c *CssPropertyCache) GetRowGap(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PRowGap)
}

func (c *CssPropertyCache) GetColumnGap(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PColumnGap)
}

// Overflow.

func (c *CssPropertyCache) GetOverflowX(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Overflow] {
	return getAs[pr.Overflow](c, n, id, s, pr.POverflowX)
}

func (c *CssPropertyCache) GetOverflowY(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Overflow] {
	return getAs[pr.Overflow](c, n, id, s, pr.POverflowY)
}

// IsHorizontalOverflowVisible reports whether content may paint outside
// the box on the horizontal axis. An absent property means visible.
func (c *CssPropertyCache) IsHorizontalOverflowVisible(n *dom.NodeData, id dom.NodeId, s NodeState) bool {
	v := c.GetOverflowX(n, id, s)
	return !v.IsExact() || !v.V.IsClipped()
}

// IsVerticalOverflowVisible is the vertical counterpart of
// IsHorizontalOverflowVisible.
func (c *CssPropertyCache) IsVerticalOverflowVisible(n *dom.NodeData, id dom.NodeId, s NodeState) bool {
	v := c.GetOverflowY(n, id, s)
	return !v.IsExact() || !v.V.IsClipped()
}

// Margins and paddings.

func (c *CssPropertyCache) GetMarginTop(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PMarginTop)
}

func (c *CssPropertyCache) GetMarginRight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PMarginRight)
}

func (c *CssPropertyCache) GetMarginBottom(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PMarginBottom)
}

func (c *CssPropertyCache) GetMarginLeft(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PMarginLeft)
}

func (c *CssPropertyCache) GetPaddingTop(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PPaddingTop)
}

func (c *CssPropertyCache) GetPaddingRight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PPaddingRight)
}

func (c *CssPropertyCache) GetPaddingBottom(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PPaddingBottom)
}

func (c *CssPropertyCache) GetPaddingLeft(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PPaddingLeft)
}

// Borders.

func (c *CssPropertyCache) GetBorderTopWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderTopWidth)
}

func (c *CssPropertyCache) GetBorderRightWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderRightWidth)
}

func (c *CssPropertyCache) GetBorderBottomWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderBottomWidth)
}

func (c *CssPropertyCache) GetBorderLeftWidth(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderLeftWidth)
}

func (c *CssPropertyCache) GetBorderTopStyle(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BorderStyle] {
	return getAs[pr.BorderStyle](c, n, id, s, pr.PBorderTopStyle)
}

func (c *CssPropertyCache) GetBorderRightStyle(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BorderStyle] {
	return getAs[pr.BorderStyle](c, n, id, s, pr.PBorderRightStyle)
}

func (c *CssPropertyCache) GetBorderBottomStyle(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BorderStyle] {
	return getAs[pr.BorderStyle](c, n, id, s, pr.PBorderBottomStyle)
}

func (c *CssPropertyCache) GetBorderLeftStyle(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BorderStyle] {
	return getAs[pr.BorderStyle](c, n, id, s, pr.PBorderLeftStyle)
}

func (c *CssPropertyCache) GetBorderTopColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PBorderTopColor)
}

func (c *CssPropertyCache) GetBorderRightColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PBorderRightColor)
}

func (c *CssPropertyCache) GetBorderBottomColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PBorderBottomColor)
}

func (c *CssPropertyCache) GetBorderLeftColor(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	return getAs[pr.ColorU](c, n, id, s, pr.PBorderLeftColor)
}

func (c *CssPropertyCache) GetBorderTopLeftRadius(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderTopLeftRadius)
}

func (c *CssPropertyCache) GetBorderTopRightRadius(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderTopRightRadius)
}

func (c *CssPropertyCache) GetBorderBottomLeftRadius(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderBottomLeftRadius)
}

func (c *CssPropertyCache) GetBorderBottomRightRadius(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.PixelValue] {
	return getAs[pr.PixelValue](c, n, id, s, pr.PBorderBottomRightRadius)
}

// BorderInfo bundles the four sides of the border properties.
type BorderInfo struct {
	Widths [4]pr.Value[pr.PixelValue] // top, right, bottom, left
	Styles [4]pr.Value[pr.BorderStyle]
	Colors [4]pr.Value[pr.ColorU]
	Radii  [4]pr.Value[pr.PixelValue] // top-left, top-right, bottom-left, bottom-right
}

// GetBorderInfo gathers every border property of a node in one call.
func (c *CssPropertyCache) GetBorderInfo(n *dom.NodeData, id dom.NodeId, s NodeState) BorderInfo {
	return BorderInfo{
		Widths: [4]pr.Value[pr.PixelValue]{
			c.GetBorderTopWidth(n, id, s), c.GetBorderRightWidth(n, id, s),
			c.GetBorderBottomWidth(n, id, s), c.GetBorderLeftWidth(n, id, s),
		},
		Styles: [4]pr.Value[pr.BorderStyle]{
			c.GetBorderTopStyle(n, id, s), c.GetBorderRightStyle(n, id, s),
			c.GetBorderBottomStyle(n, id, s), c.GetBorderLeftStyle(n, id, s),
		},
		Colors: [4]pr.Value[pr.ColorU]{
			c.GetBorderTopColor(n, id, s), c.GetBorderRightColor(n, id, s),
			c.GetBorderBottomColor(n, id, s), c.GetBorderLeftColor(n, id, s),
		},
		Radii: [4]pr.Value[pr.PixelValue]{
			c.GetBorderTopLeftRadius(n, id, s), c.GetBorderTopRightRadius(n, id, s),
			c.GetBorderBottomLeftRadius(n, id, s), c.GetBorderBottomRightRadius(n, id, s),
		},
	}
}

// HasBorder reports whether any side would paint a border: a set width
// with a visible style.
func (c *CssPropertyCache) HasBorder(n *dom.NodeData, id dom.NodeId, s NodeState) bool {
	info := c.GetBorderInfo(n, id, s)
	for side := 0; side < 4; side++ {
		w := info.Widths[side]
		if !w.IsExact() || w.V.IsZero() {
			continue
		}
		st := info.Styles[side]
		if !st.IsExact() || st.V.IsVisible() {
			return true
		}
	}
	return false
}

// Backgrounds.

func (c *CssPropertyCache) GetBackgroundPosition(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BackgroundPosition] {
	return getAs[pr.BackgroundPosition](c, n, id, s, pr.PBackgroundPosition)
}

func (c *CssPropertyCache) GetBackgroundSize(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BackgroundSize] {
	return getAs[pr.BackgroundSize](c, n, id, s, pr.PBackgroundSize)
}

func (c *CssPropertyCache) GetBackgroundRepeat(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BackgroundRepeat] {
	return getAs[pr.BackgroundRepeat](c, n, id, s, pr.PBackgroundRepeat)
}

// GetBackgroundContents returns the background layers of a node. The
// root background propagates per CSS Backgrounds 3: an html element
// with no background of its own paints the background declared on its
// first body child.
func (c *CssPropertyCache) GetBackgroundContents(nodes []dom.NodeData, tree *dom.Hierarchy, id dom.NodeId, s NodeState) pr.Value[pr.BackgroundContents] {
	n := &nodes[id]
	v := getAs[pr.BackgroundContents](c, n, id, s, pr.PBackgroundContent)
	if v.IsExact() || n.Type != dom.NtHtml {
		return v
	}
	for child := tree.FirstChild[id]; child != dom.NilNode; child = tree.NextSibling[child] {
		if nodes[child].Type == dom.NtBody {
			return getAs[pr.BackgroundContents](c, &nodes[child], child, s, pr.PBackgroundContent)
		}
	}
	return v
}

// GetBackgroundColor returns the color of the bottom solid color layer,
// with the same root propagation as GetBackgroundContents.
func (c *CssPropertyCache) GetBackgroundColor(nodes []dom.NodeData, tree *dom.Hierarchy, id dom.NodeId, s NodeState) pr.Value[pr.ColorU] {
	v := c.GetBackgroundContents(nodes, tree, id, s)
	if !v.IsExact() {
		return pr.Value[pr.ColorU]{Kind: v.Kind}
	}
	for i := len(v.V) - 1; i >= 0; i-- {
		if v.V[i].Kind == pr.BackgroundColor {
			return pr.MakeExact(v.V[i].Color)
		}
	}
	return pr.MakeInitial[pr.ColorU]()
}

// Shadows.

func (c *CssPropertyCache) GetBoxShadowLeft(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BoxShadow] {
	return getAs[pr.BoxShadow](c, n, id, s, pr.PBoxShadowLeft)
}

func (c *CssPropertyCache) GetBoxShadowRight(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BoxShadow] {
	return getAs[pr.BoxShadow](c, n, id, s, pr.PBoxShadowRight)
}

func (c *CssPropertyCache) GetBoxShadowTop(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BoxShadow] {
	return getAs[pr.BoxShadow](c, n, id, s, pr.PBoxShadowTop)
}

func (c *CssPropertyCache) GetBoxShadowBottom(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BoxShadow] {
	return getAs[pr.BoxShadow](c, n, id, s, pr.PBoxShadowBottom)
}

func (c *CssPropertyCache) GetTextShadow(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BoxShadow] {
	return getAs[pr.BoxShadow](c, n, id, s, pr.PTextShadow)
}

// HasBoxShadow reports whether any side declares a shadow.
func (c *CssPropertyCache) HasBoxShadow(n *dom.NodeData, id dom.NodeId, s NodeState) bool {
	return c.GetBoxShadowLeft(n, id, s).IsExact() ||
		c.GetBoxShadowRight(n, id, s).IsExact() ||
		c.GetBoxShadowTop(n, id, s).IsExact() ||
		c.GetBoxShadowBottom(n, id, s).IsExact()
}

// Visual effects.

func (c *CssPropertyCache) GetOpacity(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.FloatValue] {
	return getAs[pr.FloatValue](c, n, id, s, pr.POpacity)
}

func (c *CssPropertyCache) GetTransform(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Transforms] {
	return getAs[pr.Transforms](c, n, id, s, pr.PTransform)
}

func (c *CssPropertyCache) GetTransformOrigin(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.TransformOrigin] {
	return getAs[pr.TransformOrigin](c, n, id, s, pr.PTransformOrigin)
}

func (c *CssPropertyCache) GetPerspectiveOrigin(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.TransformOrigin] {
	return getAs[pr.TransformOrigin](c, n, id, s, pr.PPerspectiveOrigin)
}

func (c *CssPropertyCache) GetBackfaceVisibility(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.BackfaceVisibility] {
	return getAs[pr.BackfaceVisibility](c, n, id, s, pr.PBackfaceVisibility)
}

func (c *CssPropertyCache) GetMixBlendMode(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.MixBlendMode] {
	return getAs[pr.MixBlendMode](c, n, id, s, pr.PMixBlendMode)
}

func (c *CssPropertyCache) GetFilter(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Filters] {
	return getAs[pr.Filters](c, n, id, s, pr.PFilter)
}

func (c *CssPropertyCache) GetBackdropFilter(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.Filters] {
	return getAs[pr.Filters](c, n, id, s, pr.PBackdropFilter)
}

func (c *CssPropertyCache) GetScrollbarStyle(n *dom.NodeData, id dom.NodeId, s NodeState) pr.Value[pr.ScrollbarStyle] {
	return getAs[pr.ScrollbarStyle](c, n, id, s, pr.PScrollbarStyle)
}

// Defaulted convenience getters.

// GetTextColorOrDefault resolves the text color with black as the
// final fallback.
func (c *CssPropertyCache) GetTextColorOrDefault(n *dom.NodeData, id dom.NodeId, s NodeState) pr.ColorU {
	if v := c.GetTextColor(n, id, s); v.IsExact() {
		return v.V
	}
	return pr.InitialOf[pr.ColorU](pr.PTextColor)
}

// GetFontSizeOrDefault resolves the declared font size with the 16px
// medium size as the final fallback. The result may still carry a
// relative unit; ResolvedFontSize computes the device value.
func (c *CssPropertyCache) GetFontSizeOrDefault(n *dom.NodeData, id dom.NodeId, s NodeState) pr.PixelValue {
	if v := c.GetFontSize(n, id, s); v.IsExact() {
		return v.V
	}
	return pr.InitialOf[pr.PixelValue](pr.PFontSize)
}

// GetFontFamiliesOrDefault resolves the font stack with the generic
// sans-serif family as the final fallback.
func (c *CssPropertyCache) GetFontFamiliesOrDefault(n *dom.NodeData, id dom.NodeId, s NodeState) pr.FontFamilies {
	if v := c.GetFontFamilies(n, id, s); v.IsExact() && len(v.V) > 0 {
		return v.V
	}
	return pr.InitialOf[pr.FontFamilies](pr.PFontFamily)
}

// CaretStyle is the resolved text cursor appearance.
type CaretStyle struct {
	Color pr.ColorU
}

// GetCaretStyle resolves the caret color, falling back to the text
// color.
func (c *CssPropertyCache) GetCaretStyle(n *dom.NodeData, id dom.NodeId, s NodeState) CaretStyle {
	if v := c.GetCaretColor(n, id, s); v.IsExact() {
		return CaretStyle{Color: v.V}
	}
	return CaretStyle{Color: c.GetTextColorOrDefault(n, id, s)}
}

// SelectionStyle is the resolved appearance of selected text.
type SelectionStyle struct {
	Color           pr.ColorU
	BackgroundColor pr.ColorU
}

// defaultSelectionBackground is the conventional light blue.
var defaultSelectionBackground = pr.ColorU{R: 0xB4, G: 0xD5, B: 0xFE, A: 0xFF}

// GetSelectionStyle resolves the selection colors.
func (c *CssPropertyCache) GetSelectionStyle(n *dom.NodeData, id dom.NodeId, s NodeState) SelectionStyle {
	out := SelectionStyle{
		Color:           c.GetTextColorOrDefault(n, id, s),
		BackgroundColor: defaultSelectionBackground,
	}
	if v := c.GetSelectionColor(n, id, s); v.IsExact() {
		out.Color = v.V
	}
	if v := c.GetSelectionBackgroundColor(n, id, s); v.IsExact() {
		out.BackgroundColor = v.V
	}
	return out
}

// StyleProperties bundles the text styling of a node, as consumed by a
// text layout pass.
type StyleProperties struct {
	TextColor      pr.ColorU
	FontFamilies   pr.FontFamilies
	FontSize       pr.Value[pr.PixelValue]
	FontWeight     pr.FontWeight
	FontStyle      pr.FontStyle
	LetterSpacing  pr.Value[pr.PixelValue]
	WordSpacing    pr.Value[pr.PixelValue]
	LineHeight     pr.Value[pr.RatioValue]
	TabWidth       pr.Value[pr.PixelValue]
	TextIndent     pr.Value[pr.PixelValue]
	TextAlign      pr.TextAlign
	TextDecoration pr.TextDecoration
	TextTransform  pr.TextTransform
	WhiteSpace     pr.WhiteSpace
	Direction      pr.Direction
	Hyphens        pr.Hyphens
	OverflowWrap   pr.OverflowWrap
	WordBreak      pr.WordBreak
}

// GetStyleProperties gathers the text styling of a node in one call,
// with the usual keyword fallbacks applied to the enum fields.
func (c *CssPropertyCache) GetStyleProperties(n *dom.NodeData, id dom.NodeId, s NodeState) StyleProperties {
	return StyleProperties{
		TextColor:      c.GetTextColorOrDefault(n, id, s),
		FontFamilies:   c.GetFontFamiliesOrDefault(n, id, s),
		FontSize:       c.GetFontSize(n, id, s),
		FontWeight:     c.GetFontWeight(n, id, s).UnwrapOr(pr.InitialOf[pr.FontWeight](pr.PFontWeight)),
		FontStyle:      c.GetFontStyle(n, id, s).UnwrapOr(pr.InitialOf[pr.FontStyle](pr.PFontStyle)),
		LetterSpacing:  c.GetLetterSpacing(n, id, s),
		WordSpacing:    c.GetWordSpacing(n, id, s),
		LineHeight:     c.GetLineHeight(n, id, s),
		TabWidth:       c.GetTabWidth(n, id, s),
		TextIndent:     c.GetTextIndent(n, id, s),
		TextAlign:      c.GetTextAlign(n, id, s).UnwrapOr(pr.InitialOf[pr.TextAlign](pr.PTextAlign)),
		TextDecoration: c.GetTextDecoration(n, id, s).UnwrapOr(pr.InitialOf[pr.TextDecoration](pr.PTextDecoration)),
		TextTransform:  c.GetTextTransform(n, id, s).UnwrapOr(pr.InitialOf[pr.TextTransform](pr.PTextTransform)),
		WhiteSpace:     c.GetWhiteSpace(n, id, s).UnwrapOr(pr.InitialOf[pr.WhiteSpace](pr.PWhiteSpace)),
		Direction:      c.GetDirection(n, id, s).UnwrapOr(pr.InitialOf[pr.Direction](pr.PDirection)),
		Hyphens:        c.GetHyphens(n, id, s).UnwrapOr(pr.InitialOf[pr.Hyphens](pr.PHyphens)),
		OverflowWrap:   c.GetOverflowWrap(n, id, s).UnwrapOr(pr.InitialOf[pr.OverflowWrap](pr.POverflowWrap)),
		WordBreak:      c.GetWordBreak(n, id, s).UnwrapOr(pr.InitialOf[pr.WordBreak](pr.PWordBreak)),
	}
}
