package properties

// DefaultFontSize is the fallback font size, used when no ancestor
// defines one.
const DefaultFontSize Fl = 16

// PtToPx converts typographic points to CSS pixels.
const PtToPx Fl = 4. / 3.

// ResolutionContext carries the ambient sizes needed to turn a relative
// length into device pixels.
type ResolutionContext struct {
	ElementSize *Size // only known for laid-out nodes; nil otherwise

	ElementFontSize Fl
	ParentFontSize  Fl
	RootFontSize    Fl

	Viewport        Size
	ContainingBlock Size
}

// DefaultResolutionContext returns a context suitable for resolving
// styles before layout has run.
func DefaultResolutionContext(viewport Size) ResolutionContext {
	return ResolutionContext{
		ElementFontSize: DefaultFontSize,
		ParentFontSize:  DefaultFontSize,
		RootFontSize:    DefaultFontSize,
		Viewport:        viewport,
		ContainingBlock: viewport,
	}
}

// PropertyContext selects the reference a percentage resolves against.
type PropertyContext uint8

const (
	PcHorizontal   PropertyContext = iota // containing block width
	PcVertical                            // containing block height
	PcFontSize                            // parent font size
	PcLineHeight                          // element font size
	PcBorderRadius                        // element size, falling back to containing block
)

// ContextFor returns the percentage reference of property p.
func ContextFor(p PropertyType) PropertyContext {
	switch p {
	case PFontSize:
		return PcFontSize
	case PLineHeight, PLetterSpacing, PWordSpacing, PTabWidth, PTextIndent:
		return PcLineHeight
	case PBorderTopLeftRadius, PBorderTopRightRadius,
		PBorderBottomLeftRadius, PBorderBottomRightRadius:
		return PcBorderRadius
	case PHeight, PMinHeight, PMaxHeight,
		PMarginTop, PMarginBottom, PPaddingTop, PPaddingBottom,
		PTop, PBottom, PRowGap:
		return PcVertical
	default:
		return PcHorizontal
	}
}

// ResolvePixels turns a parsed length into device pixels.
//
// px is the identity; pt is multiplied by 4/3; em refers to the element
// font size, except that for the font-size property itself it refers to
// the parent font size; rem refers to the root font size; vw and vh are
// hundredths of the viewport. Percentages resolve against the reference
// selected by pctx and keep their sign. ch and ex are approximated as
// half the element font size.
func ResolvePixels(v PixelValue, ctx ResolutionContext, pctx PropertyContext) Fl {
	switch v.Unit {
	case Px:
		return v.Value
	case Pt:
		return v.Value * PtToPx
	case Em:
		if pctx == PcFontSize {
			return v.Value * fontSizeOr(ctx.ParentFontSize)
		}
		return v.Value * fontSizeOr(ctx.ElementFontSize)
	case Rem:
		return v.Value * fontSizeOr(ctx.RootFontSize)
	case Vw:
		return v.Value / 100 * ctx.Viewport.Width
	case Vh:
		return v.Value / 100 * ctx.Viewport.Height
	case Ch, Ex:
		// approximation; implementations may substitute font metrics
		return v.Value * 0.5 * fontSizeOr(ctx.ElementFontSize)
	case Perc:
		return v.Value / 100 * percentReference(ctx, pctx)
	default:
		return v.Value
	}
}

func percentReference(ctx ResolutionContext, pctx PropertyContext) Fl {
	switch pctx {
	case PcFontSize:
		return fontSizeOr(ctx.ParentFontSize)
	case PcLineHeight:
		return fontSizeOr(ctx.ElementFontSize)
	case PcBorderRadius:
		if ctx.ElementSize != nil {
			return minSide(*ctx.ElementSize)
		}
		return minSide(ctx.ContainingBlock)
	case PcVertical:
		return ctx.ContainingBlock.Height
	default:
		return ctx.ContainingBlock.Width
	}
}

func minSide(s Size) Fl {
	if s.Width < s.Height {
		return s.Width
	}
	return s.Height
}

func fontSizeOr(fs Fl) Fl {
	if fs <= 0 {
		return DefaultFontSize
	}
	return fs
}
