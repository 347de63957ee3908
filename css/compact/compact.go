// Package compact implements the dense fast-path cache: one packed
// array per hot property, indexed by node, holding the resolved
// normal-state value. A slot equals to a sentinel falls through to the
// cascade maps, so the cache can be disabled entirely without changing
// observable results.
package compact

import (
	"math"

	pr "github.com/retainedui/cascade/css/properties"
)

// Sentinels of the i16 length lanes. The remaining i16 range encodes
// pixels times ten, saturating at about 3276 px either way.
const (
	UnsetI16   int16 = math.MinInt16
	AutoI16    int16 = math.MinInt16 + 1
	InitialI16 int16 = math.MinInt16 + 2
	InheritI16 int16 = math.MinInt16 + 3
)

// Sentinels of the u32 dimension lanes. Values below UnsetU32 encode
// a unit tag in the 4 high bits and the value times 1024 in the low 28.
const (
	AutoU32       uint32 = 0xFFFF_FFFF
	InitialU32    uint32 = 0xFFFF_FFFE
	InheritU32    uint32 = 0xFFFF_FFFD
	NoneU32       uint32 = 0xFFFF_FFFC
	MinContentU32 uint32 = 0xFFFF_FFFB
	MaxContentU32 uint32 = 0xFFFF_FFFA
	UnsetU32      uint32 = 0xFFFF_FFF9
)

const (
	maxLengthPx  = 3276
	dimValueBits = 28
	dimValueMax  = 1<<dimValueBits - 1
)

// EncodeLength packs an absolute length. Relative units and lengths
// outside the representable range yield UnsetI16, leaving the lookup to
// the slow path.
func EncodeLength(v pr.AnyValue) int16 {
	switch v.Kind {
	case pr.Auto:
		return AutoI16
	case pr.Initial:
		return InitialI16
	case pr.Inherit:
		return InheritI16
	}
	length, ok := v.Prop.(pr.PixelValue)
	if !ok {
		return UnsetI16
	}
	var px pr.Fl
	switch length.Unit {
	case pr.Px:
		px = length.Value
	case pr.Pt:
		px = length.Value * pr.PtToPx
	default:
		return UnsetI16
	}
	if px < -maxLengthPx || px > maxLengthPx {
		return UnsetI16
	}
	return int16(math.Round(float64(px) * 10))
}

// DecodeLength is the inverse of EncodeLength. found is false for the
// unset sentinel.
func DecodeLength(enc int16) (v pr.Value[pr.PixelValue], found bool) {
	switch enc {
	case AutoI16:
		return pr.MakeAuto[pr.PixelValue](), true
	case InitialI16:
		return pr.MakeInitial[pr.PixelValue](), true
	case InheritI16:
		return pr.MakeInherit[pr.PixelValue](), true
	case UnsetI16:
		return v, false
	}
	return pr.MakeExact(pr.PxValue(pr.Fl(enc) / 10)), true
}

// EncodeDimension packs a width/height style value, keeping its unit in
// the 4 high bits. Negative values do not occur for dimensions and
// yield UnsetU32.
func EncodeDimension(v pr.AnyValue) uint32 {
	switch v.Kind {
	case pr.Auto:
		return AutoU32
	case pr.Initial:
		return InitialU32
	case pr.Inherit:
		return InheritU32
	}
	dim, ok := v.Prop.(pr.Dimension)
	if !ok {
		return UnsetU32
	}
	switch dim.Keyword {
	case pr.DimNone:
		return NoneU32
	case pr.DimMinContent:
		return MinContentU32
	case pr.DimMaxContent:
		return MaxContentU32
	}
	if dim.Length.Unit == 0 || dim.Length.Value < 0 {
		return UnsetU32
	}
	scaled := math.Round(float64(dim.Length.Value) * 1024)
	if scaled > dimValueMax {
		return UnsetU32
	}
	return uint32(dim.Length.Unit)<<dimValueBits | uint32(scaled)
}

// DecodeDimension is the inverse of EncodeDimension. Sentinels are
// checked before the value is unpacked.
func DecodeDimension(enc uint32) (v pr.Value[pr.Dimension], found bool) {
	switch enc {
	case AutoU32:
		return pr.MakeAuto[pr.Dimension](), true
	case InitialU32:
		return pr.MakeInitial[pr.Dimension](), true
	case InheritU32:
		return pr.MakeInherit[pr.Dimension](), true
	case NoneU32:
		return pr.MakeExact(pr.Dimension{Keyword: pr.DimNone}), true
	case MinContentU32:
		return pr.MakeExact(pr.Dimension{Keyword: pr.DimMinContent}), true
	case MaxContentU32:
		return pr.MakeExact(pr.Dimension{Keyword: pr.DimMaxContent}), true
	case UnsetU32:
		return v, false
	}
	unit := pr.Unit(enc >> dimValueBits)
	value := pr.Fl(enc&dimValueMax) / 1024
	return pr.MakeExact(pr.DimLen(pr.PixelValue{Value: value, Unit: unit})), true
}

// EncodeColor packs a color as 0xRRGGBBAA; zero means unset. A fully
// transparent color packs to zero as well and is served by the slow
// path, which keeps it distinguishable from an absent one.
func EncodeColor(v pr.AnyValue) uint32 {
	if v.Kind != pr.Exact {
		return 0
	}
	c, ok := v.Prop.(pr.ColorU)
	if !ok {
		return 0
	}
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// DecodeColor is the inverse of EncodeColor; found is false for zero.
func DecodeColor(enc uint32) (c pr.ColorU, found bool) {
	if enc == 0 {
		return c, false
	}
	return pr.ColorU{
		R: uint8(enc >> 24),
		G: uint8(enc >> 16),
		B: uint8(enc >> 8),
		A: uint8(enc),
	}, true
}

// EncodeLineHeight packs a line height ratio times 1000.
func EncodeLineHeight(v pr.AnyValue) int16 {
	switch v.Kind {
	case pr.Auto:
		return AutoI16
	case pr.Initial:
		return InitialI16
	case pr.Inherit:
		return InheritI16
	}
	r, ok := v.Prop.(pr.RatioValue)
	if !ok {
		return UnsetI16
	}
	scaled := math.Round(float64(r.Value) * 1000)
	if scaled < -maxLengthPx*10 || scaled > maxLengthPx*10 {
		return UnsetI16
	}
	return int16(scaled)
}

// DecodeLineHeight is the inverse of EncodeLineHeight.
func DecodeLineHeight(enc int16) (v pr.Value[pr.RatioValue], found bool) {
	switch enc {
	case AutoI16:
		return pr.MakeAuto[pr.RatioValue](), true
	case InitialI16:
		return pr.MakeInitial[pr.RatioValue](), true
	case InheritI16:
		return pr.MakeInherit[pr.RatioValue](), true
	case UnsetI16:
		return v, false
	}
	return pr.MakeExact(pr.RatioValue{Value: pr.Fl(enc) / 1000}), true
}

// EncodeEnum packs a keyword variant; zero means unset. The keyword
// cases auto / initial / inherit of enum properties stay on the slow
// path.
func EncodeEnum(v pr.AnyValue, variant func(pr.CssProperty) (uint8, bool)) uint8 {
	if v.Kind != pr.Exact {
		return 0
	}
	raw, ok := variant(v.Prop)
	if !ok {
		return 0
	}
	return raw + 1
}

// DecodeEnum is the inverse of EncodeEnum; found is false for zero.
func DecodeEnum(enc uint8) (variant uint8, found bool) {
	if enc == 0 {
		return 0, false
	}
	return enc - 1, true
}
