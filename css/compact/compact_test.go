package compact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/retainedui/cascade/css/properties"
)

func TestLengthRoundTrip(t *testing.T) {
	for _, v := range []pr.AnyValue{
		pr.AnyExact(pr.PxValue(10)),
		pr.AnyExact(pr.PxValue(-32.5)),
		pr.AnyExact(pr.PxValue(0)),
		pr.AnyAuto,
		pr.AnyInitial,
		pr.AnyInherit,
	} {
		enc := EncodeLength(v)
		dec, found := DecodeLength(enc)
		require.True(t, found)
		assert.Equal(t, pr.As[pr.PixelValue](v), dec)
	}
}

func TestLengthSentinelOrder(t *testing.T) {
	// the three keyword sentinels sit just above the unset slot
	assert.Equal(t, UnsetI16+1, AutoI16)
	assert.Equal(t, UnsetI16+2, InitialI16)
	assert.Equal(t, UnsetI16+3, InheritI16)
}

func TestLengthOverflowFallsThrough(t *testing.T) {
	enc := EncodeLength(pr.AnyExact(pr.PxValue(10000)))
	assert.Equal(t, UnsetI16, enc)
	_, found := DecodeLength(enc)
	assert.False(t, found)

	// relative units cannot be packed without context
	enc = EncodeLength(pr.AnyExact(pr.EmValue(2)))
	assert.Equal(t, UnsetI16, enc)
}

func TestLengthPtConversion(t *testing.T) {
	enc := EncodeLength(pr.AnyExact(pr.PixelValue{Value: 12, Unit: pr.Pt}))
	dec, found := DecodeLength(enc)
	require.True(t, found)
	assert.Equal(t, pr.MakeExact(pr.PxValue(16)), dec)
}

func TestDimensionRoundTrip(t *testing.T) {
	for _, v := range []pr.AnyValue{
		pr.AnyExact(pr.DimLen(pr.PxValue(1280))),
		pr.AnyExact(pr.DimLen(pr.PercValue(50))),
		pr.AnyExact(pr.DimLen(pr.EmValue(2.5))),
		pr.AnyExact(pr.Dimension{Keyword: pr.DimNone}),
		pr.AnyExact(pr.Dimension{Keyword: pr.DimMinContent}),
		pr.AnyExact(pr.Dimension{Keyword: pr.DimMaxContent}),
		pr.AnyAuto,
		pr.AnyInitial,
		pr.AnyInherit,
	} {
		enc := EncodeDimension(v)
		dec, found := DecodeDimension(enc)
		require.True(t, found)
		assert.Equal(t, pr.As[pr.Dimension](v), dec)
	}
}

func TestDimensionSentinels(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), EncodeDimension(pr.AnyAuto))
	assert.Equal(t, uint32(0xFFFFFFFE), EncodeDimension(pr.AnyInitial))
	assert.Equal(t, uint32(0xFFFFFFFD), EncodeDimension(pr.AnyInherit))
	assert.Equal(t, uint32(0xFFFFFFFC), EncodeDimension(pr.AnyExact(pr.Dimension{Keyword: pr.DimNone})))
	assert.Equal(t, uint32(0xFFFFFFFB), EncodeDimension(pr.AnyExact(pr.Dimension{Keyword: pr.DimMinContent})))
	assert.Equal(t, uint32(0xFFFFFFFA), EncodeDimension(pr.AnyExact(pr.Dimension{Keyword: pr.DimMaxContent})))

	// negative lengths fall through
	assert.Equal(t, UnsetU32, EncodeDimension(pr.AnyExact(pr.DimLen(pr.PxValue(-1)))))
}

func TestColorLane(t *testing.T) {
	enc := EncodeColor(pr.AnyExact(pr.ColorU{R: 0x11, G: 0x22, B: 0x33, A: 0x44}))
	assert.Equal(t, uint32(0x11223344), enc)
	dec, found := DecodeColor(enc)
	require.True(t, found)
	assert.Equal(t, pr.ColorU{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, dec)

	// fully transparent black is indistinguishable from unset and is
	// served by the slow path
	assert.Equal(t, uint32(0), EncodeColor(pr.AnyExact(pr.ColorTransparent)))
	_, found = DecodeColor(0)
	assert.False(t, found)
}

func TestLineHeightLane(t *testing.T) {
	enc := EncodeLineHeight(pr.AnyExact(pr.RatioValue{Value: 1.5}))
	dec, found := DecodeLineHeight(enc)
	require.True(t, found)
	assert.Equal(t, pr.MakeExact(pr.RatioValue{Value: 1.5}), dec)
}

func TestEnumLane(t *testing.T) {
	variant := EnumProperties[pr.PDisplay]
	enc := EncodeEnum(pr.AnyExact(pr.DisplayNone), variant)
	raw, found := DecodeEnum(enc)
	require.True(t, found)
	d, ok := pr.EnumFromU8[pr.Display](raw, pr.NbDisplay)
	require.True(t, ok)
	assert.Equal(t, pr.DisplayNone, d)

	// the first variant is distinguishable from unset
	enc = EncodeEnum(pr.AnyExact(pr.DisplayInline), variant)
	assert.NotEqual(t, uint8(0), enc)

	_, found = DecodeEnum(0)
	assert.False(t, found)

	// keyword cases stay on the slow path
	assert.Equal(t, uint8(0), EncodeEnum(pr.AnyInherit, variant))
}

func TestCacheLanes(t *testing.T) {
	c := NewCache(3)

	require.True(t, c.Set(pr.PMarginLeft, 1, pr.AnyExact(pr.PxValue(12))))
	v, found := c.GetLength(pr.PMarginLeft, 1)
	require.True(t, found)
	assert.Equal(t, pr.MakeExact(pr.PxValue(12)), v)

	// untouched slots are unset
	_, found = c.GetLength(pr.PMarginLeft, 0)
	assert.False(t, found)
	_, found = c.GetLength(pr.PMarginLeft, 2)
	assert.False(t, found)

	require.True(t, c.Set(pr.PWidth, 0, pr.AnyExact(pr.DimLen(pr.PercValue(50)))))
	d, found := c.GetDimension(pr.PWidth, 0)
	require.True(t, found)
	assert.Equal(t, pr.MakeExact(pr.DimLen(pr.PercValue(50))), d)

	require.True(t, c.Set(pr.PDisplay, 2, pr.AnyExact(pr.DisplayBlock)))
	raw, found := c.GetEnum(pr.PDisplay, 2)
	require.True(t, found)
	assert.Equal(t, uint8(pr.DisplayBlock), raw)

	require.True(t, c.Set(pr.PTextColor, 0, pr.AnyExact(pr.ColorWhite)))
	col, found := c.GetColor(pr.PTextColor, 0)
	require.True(t, found)
	assert.Equal(t, pr.ColorWhite, col)

	// composite properties have no lane
	assert.False(t, c.Set(pr.PBackgroundContent, 0, pr.AnyInitial))
	assert.False(t, c.HasLane(pr.PBackgroundContent))
	assert.True(t, c.HasLane(pr.PLineHeight))

	// out of range nodes are rejected
	assert.False(t, c.Set(pr.PMarginLeft, 3, pr.AnyAuto))
	_, found = c.GetLength(pr.PMarginLeft, -1)
	assert.False(t, found)
}

func TestCacheAppend(t *testing.T) {
	a := NewCache(2)
	b := NewCache(1)
	a.Set(pr.PMarginLeft, 0, pr.AnyExact(pr.PxValue(1)))
	b.Set(pr.PMarginLeft, 0, pr.AnyExact(pr.PxValue(2)))

	a.Append(b)
	assert.Equal(t, 3, a.NodeCount())

	v, found := a.GetLength(pr.PMarginLeft, 0)
	require.True(t, found)
	assert.Equal(t, pr.MakeExact(pr.PxValue(1)), v)

	v, found = a.GetLength(pr.PMarginLeft, 2)
	require.True(t, found)
	assert.Equal(t, pr.MakeExact(pr.PxValue(2)), v)

	_, found = a.GetLength(pr.PMarginLeft, 1)
	assert.False(t, found)
}
