package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resCtx() ResolutionContext {
	return ResolutionContext{
		ElementFontSize: 20,
		ParentFontSize:  10,
		RootFontSize:    16,
		Viewport:        Size{Width: 800, Height: 600},
		ContainingBlock: Size{Width: 400, Height: 200},
	}
}

func TestResolveUnits(t *testing.T) {
	ctx := resCtx()

	assert.Equal(t, Fl(15), ResolvePixels(PxValue(15), ctx, PcHorizontal))
	assert.Equal(t, Fl(16), ResolvePixels(PixelValue{Value: 12, Unit: Pt}, ctx, PcHorizontal))

	// em refers to the element font size...
	assert.Equal(t, Fl(40), ResolvePixels(EmValue(2), ctx, PcHorizontal))
	// ...except for font-size itself, which refers to the parent
	assert.Equal(t, Fl(20), ResolvePixels(EmValue(2), ctx, PcFontSize))

	assert.Equal(t, Fl(32), ResolvePixels(PixelValue{Value: 2, Unit: Rem}, ctx, PcHorizontal))
	assert.Equal(t, Fl(80), ResolvePixels(PixelValue{Value: 10, Unit: Vw}, ctx, PcHorizontal))
	assert.Equal(t, Fl(60), ResolvePixels(PixelValue{Value: 10, Unit: Vh}, ctx, PcHorizontal))

	// ch and ex approximate half the font size
	assert.Equal(t, Fl(20), ResolvePixels(PixelValue{Value: 2, Unit: Ch}, ctx, PcHorizontal))
}

func TestResolvePercent(t *testing.T) {
	ctx := resCtx()

	assert.Equal(t, Fl(200), ResolvePixels(PercValue(50), ctx, PcHorizontal))
	assert.Equal(t, Fl(100), ResolvePixels(PercValue(50), ctx, PcVertical))
	assert.Equal(t, Fl(5), ResolvePixels(PercValue(50), ctx, PcFontSize))
	assert.Equal(t, Fl(10), ResolvePixels(PercValue(50), ctx, PcLineHeight))

	// negative percentages keep their sign
	assert.Equal(t, Fl(-200), ResolvePixels(PercValue(-50), ctx, PcHorizontal))
}

func TestResolveBorderRadiusReference(t *testing.T) {
	ctx := resCtx()

	// without a laid-out element size, fall back to the containing block
	assert.Equal(t, Fl(100), ResolvePixels(PercValue(50), ctx, PcBorderRadius))

	ctx.ElementSize = &Size{Width: 60, Height: 30}
	assert.Equal(t, Fl(15), ResolvePixels(PercValue(50), ctx, PcBorderRadius))
}

func TestResolveMissingFontSize(t *testing.T) {
	var ctx ResolutionContext // all font sizes unset

	assert.Equal(t, Fl(2*DefaultFontSize), ResolvePixels(EmValue(2), ctx, PcHorizontal))
	assert.Equal(t, Fl(DefaultFontSize), ResolvePixels(PixelValue{Value: 1, Unit: Rem}, ctx, PcHorizontal))
}

func TestAutoDistinctFromInitial(t *testing.T) {
	auto := MakeAuto[PixelValue]()
	initial := MakeInitial[PixelValue]()

	assert.True(t, auto.IsAuto())
	assert.True(t, initial.IsInitial())
	assert.NotEqual(t, auto, initial)
}

func TestValuePredicates(t *testing.T) {
	v := MakeExact(PxValue(10))
	assert.True(t, v.IsExact())
	assert.Equal(t, PxValue(10), v.Unwrap())
	assert.Equal(t, PxValue(10), v.UnwrapOr(PxValue(99)))
	assert.Equal(t, PxValue(99), MakeInherit[PixelValue]().UnwrapOr(PxValue(99)))
}

func TestAnyValueConversion(t *testing.T) {
	av := AnyExact(DisplayBlock)
	assert.Equal(t, MakeExact(DisplayBlock), As[Display](av))
	assert.Equal(t, MakeAuto[Display](), As[Display](AnyAuto))

	// mismatched payload degrades to Initial
	assert.Equal(t, MakeInitial[Display](), As[Display](AnyExact(PxValue(1))))
}

func TestOverflowPredicates(t *testing.T) {
	assert.False(t, OverflowVisible.IsClipped())
	for _, o := range []Overflow{OverflowHidden, OverflowScroll, OverflowAuto, OverflowClip} {
		assert.True(t, o.IsClipped(), o.String())
	}
}

func TestPropertyNamesRoundTrip(t *testing.T) {
	for p := PropertyType(1); p < NbProperties; p++ {
		back, in := PropertyByName[p.String()]
		assert.True(t, in, p.String())
		assert.Equal(t, p, back)
	}
}

func TestInheritedSet(t *testing.T) {
	assert.True(t, PTextColor.IsInheritable())
	assert.True(t, PFontSize.IsInheritable())
	assert.False(t, PWidth.IsInheritable())
	assert.False(t, PMarginLeft.IsInheritable())
}

func TestInitialOf(t *testing.T) {
	assert.Equal(t, ColorBlack, InitialOf[ColorU](PTextColor))
	assert.Equal(t, PxValue(DefaultFontSize), InitialOf[PixelValue](PFontSize))
	assert.Equal(t, FontWeightNormal, InitialOf[FontWeight](PFontWeight))
	// a length with no concrete default yields the zero value
	assert.Equal(t, PixelValue{}, InitialOf[PixelValue](PMarginLeft))
}
