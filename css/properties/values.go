package properties

import (
	"fmt"

	"github.com/retainedui/cascade/utils"
)

// Fl is the resolved pixel type.
type Fl = utils.Fl

// Unit tags the numeric component of a length.
type Unit uint8

const (
	Px Unit = iota + 1
	Pt
	Em
	Rem
	Perc
	Vw
	Vh
	Ch
	Ex
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Perc:
		return "%"
	case Vw:
		return "vw"
	case Vh:
		return "vh"
	case Ch:
		return "ch"
	case Ex:
		return "ex"
	}
	return "<invalid unit>"
}

// UnitByName maps a CSS unit suffix to its tag. The percent sign is
// included.
var UnitByName = map[string]Unit{
	"px": Px, "pt": Pt, "em": Em, "rem": Rem, "%": Perc,
	"vw": Vw, "vh": Vh, "ch": Ch, "ex": Ex,
}

// PixelValue is a not-yet-resolved length: a number with a unit.
type PixelValue struct {
	Value Fl
	Unit  Unit
}

func (PixelValue) isCssProperty() {}

func PxValue(v Fl) PixelValue   { return PixelValue{Value: v, Unit: Px} }
func EmValue(v Fl) PixelValue   { return PixelValue{Value: v, Unit: Em} }
func PercValue(v Fl) PixelValue { return PixelValue{Value: v, Unit: Perc} }

func (p PixelValue) String() string {
	return fmt.Sprintf("%g%s", p.Value, p.Unit)
}

// IsZero reports a zero-valued length regardless of unit.
func (p PixelValue) IsZero() bool { return p.Value == 0 }

// ColorU is an 8-bit RGBA color.
type ColorU struct {
	R, G, B, A uint8
}

func (ColorU) isCssProperty() {}

var (
	ColorTransparent = ColorU{}
	ColorBlack       = ColorU{A: 255}
	ColorWhite       = ColorU{R: 255, G: 255, B: 255, A: 255}
)

func (c ColorU) IsTransparent() bool { return c.A == 0 }

// String formats as #RRGGBBAA.
func (c ColorU) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// DimensionKeyword distinguishes a concrete length from the sizing
// keywords of width/height properties.
type DimensionKeyword uint8

const (
	DimLength DimensionKeyword = iota
	DimNone
	DimMinContent
	DimMaxContent
)

// Dimension is the payload of the width/height/min-*/max-* properties:
// a length, or one of the sizing keywords.
type Dimension struct {
	Length  PixelValue // valid when Keyword == DimLength
	Keyword DimensionKeyword
}

func (Dimension) isCssProperty() {}

func DimLen(p PixelValue) Dimension { return Dimension{Length: p} }

func (d Dimension) String() string {
	switch d.Keyword {
	case DimNone:
		return "none"
	case DimMinContent:
		return "min-content"
	case DimMaxContent:
		return "max-content"
	}
	return d.Length.String()
}

// FloatValue is a unitless number payload (opacity, flex-grow, ...).
type FloatValue struct {
	Value Fl
}

func (FloatValue) isCssProperty() {}

func (f FloatValue) String() string { return fmt.Sprintf("%g", f.Value) }

// IntValue is a signed integer payload (z-index, order).
type IntValue struct {
	Value int32
}

func (IntValue) isCssProperty() {}

func (i IntValue) String() string { return fmt.Sprintf("%d", i.Value) }

// RatioValue is a normalized ratio payload; line-height: 1.5 and
// line-height: 150% both store 1.5.
type RatioValue struct {
	Value Fl
}

func (RatioValue) isCssProperty() {}

func (r RatioValue) String() string { return fmt.Sprintf("%g", r.Value) }

// FontWeight is the numeric font weight (100..900).
type FontWeight uint16

func (FontWeight) isCssProperty() {}

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

func (w FontWeight) String() string { return fmt.Sprintf("%d", uint16(w)) }

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height Fl
}
