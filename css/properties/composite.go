package properties

import (
	"fmt"
	"strings"
)

// GradientStop is one color stop of a gradient, with an optional
// position along the gradient line.
type GradientStop struct {
	Offset    PixelValue // usually Perc; zero value means "evenly spaced"
	Color     ColorU
	HasOffset bool
}

// Gradient is the payload of linear-gradient() and radial-gradient().
type Gradient struct {
	Stops  []GradientStop
	Angle  Fl   // degrees, linear only
	Radial bool // radial-gradient(circle, ...)
}

// BackgroundKind tags a BackgroundContent variant.
type BackgroundKind uint8

const (
	BackgroundColor BackgroundKind = iota
	BackgroundLinearGradient
	BackgroundRadialGradient
	BackgroundImage
)

// BackgroundContent is one layer of the background property: a solid
// color, a gradient, or a reference to a decoded image.
type BackgroundContent struct {
	Image    string // image id or url, BackgroundImage only
	Gradient Gradient
	Color    ColorU
	Kind     BackgroundKind
}

func (b BackgroundContent) String() string {
	switch b.Kind {
	case BackgroundLinearGradient:
		return "linear-gradient(...)"
	case BackgroundRadialGradient:
		return "radial-gradient(...)"
	case BackgroundImage:
		return fmt.Sprintf("url(%s)", b.Image)
	}
	return b.Color.String()
}

// BackgroundContents is the ordered layer list of the background
// property, topmost layer first.
type BackgroundContents []BackgroundContent

func (BackgroundContents) isCssProperty() {}

// BackgroundPosition places the background layer inside the box.
type BackgroundPosition struct {
	Horizontal PixelValue
	Vertical   PixelValue
}

func (BackgroundPosition) isCssProperty() {}

// BackgroundSizeKind tags a BackgroundSize variant.
type BackgroundSizeKind uint8

const (
	BackgroundSizeAuto BackgroundSizeKind = iota
	BackgroundSizeCover
	BackgroundSizeContain
	BackgroundSizeExact
)

// BackgroundSize is the CSS background-size property.
type BackgroundSize struct {
	Width, Height PixelValue // BackgroundSizeExact only
	Kind          BackgroundSizeKind
}

func (BackgroundSize) isCssProperty() {}

// BoxShadowClipMode distinguishes outer from inset shadows.
type BoxShadowClipMode uint8

const (
	BoxShadowOutset BoxShadowClipMode = iota
	BoxShadowInset
)

// BoxShadow is one shadow of the box-shadow property, also reused for
// text-shadow (spread and clip mode unused there).
type BoxShadow struct {
	OffsetX      PixelValue
	OffsetY      PixelValue
	BlurRadius   PixelValue
	SpreadRadius PixelValue
	Color        ColorU
	ClipMode     BoxShadowClipMode
}

func (BoxShadow) isCssProperty() {}

// TransformKind tags one entry of a transform list.
type TransformKind uint8

const (
	TransformTranslate TransformKind = iota
	TransformScale
	TransformRotate
	TransformSkew
)

// TransformOp is one function of the transform property. X and Y are
// lengths for translate, unitless factors for scale (stored as Px), and
// degrees for skew; Angle is degrees for rotate.
type TransformOp struct {
	X, Y  PixelValue
	Angle Fl
	Kind  TransformKind
}

// Transforms is the ordered function list of the transform property.
type Transforms []TransformOp

func (Transforms) isCssProperty() {}

// TransformOrigin is the CSS transform-origin property, also reused for
// perspective-origin.
type TransformOrigin struct {
	X, Y PixelValue
}

func (TransformOrigin) isCssProperty() {}

// FilterKind tags one entry of a filter list.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterInvert
	FilterOpacity
	FilterSaturate
	FilterSepia
	FilterHueRotate
	FilterDropShadow
)

// Filter is one function of the filter / backdrop-filter properties.
type Filter struct {
	Shadow BoxShadow  // FilterDropShadow only
	Length PixelValue // FilterBlur only
	Amount Fl         // factor or degrees for the others
	Kind   FilterKind
}

// Filters is the ordered function list of filter / backdrop-filter.
type Filters []Filter

func (Filters) isCssProperty() {}

// FontSource distinguishes how a font family is resolved.
type FontSource uint8

const (
	FontSourceSystem   FontSource = iota // resolved through the system font index
	FontSourceEmbedded                   // bundled font bytes, bypasses the index
	FontSourceFile                       // explicit font file path
)

// FontFamily is one entry of the font-family stack.
type FontFamily struct {
	Name   string
	Source FontSource
}

// FontFamilies is the ordered font-family fallback stack.
type FontFamilies []FontFamily

func (FontFamilies) isCssProperty() {}

func (f FontFamilies) String() string {
	parts := make([]string, len(f))
	for i, fam := range f {
		parts[i] = fam.Name
	}
	return strings.Join(parts, ", ")
}

// ScrollbarStyle styles the synthetic scrollbars drawn for scrollable
// overflow.
type ScrollbarStyle struct {
	Width      PixelValue
	TrackColor ColorU
	ThumbColor ColorU
}

func (ScrollbarStyle) isCssProperty() {}

// AspectRatio is the CSS aspect-ratio property, width / height.
type AspectRatio struct {
	Ratio Fl
}

func (AspectRatio) isCssProperty() {}
