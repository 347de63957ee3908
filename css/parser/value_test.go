package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/retainedui/cascade/css/properties"
)

func TestParseColor(t *testing.T) {
	for input, exp := range map[string]pr.ColorU{
		"red":                {R: 255, G: 0, B: 0, A: 255},
		"RED":                {R: 255, G: 0, B: 0, A: 255},
		"transparent":        {},
		"#fff":               {R: 255, G: 255, B: 255, A: 255},
		"#ff0000":            {R: 255, G: 0, B: 0, A: 255},
		"#ff000080":          {R: 255, G: 0, B: 0, A: 128},
		"rgb(1, 2, 3)":       {R: 1, G: 2, B: 3, A: 255},
		"rgba(1, 2, 3, 0.5)": {R: 1, G: 2, B: 3, A: 128},
		"rgb(100%, 0%, 50%)": {R: 255, G: 0, B: 128, A: 255},
	} {
		got, err := ParseColor(input)
		require.NoError(t, err, input)
		assert.Equal(t, exp, got, input)
	}

	for _, bad := range []string{"", "#ff", "#ggg", "rgb(1,2)", "rgb(300,0,0)", "blurple"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseLength(t *testing.T) {
	for input, exp := range map[string]pr.PixelValue{
		"0":     {Value: 0, Unit: pr.Px},
		"10px":  {Value: 10, Unit: pr.Px},
		"-5px":  {Value: -5, Unit: pr.Px},
		"1.5em": {Value: 1.5, Unit: pr.Em},
		"2rem":  {Value: 2, Unit: pr.Rem},
		"50%":   {Value: 50, Unit: pr.Perc},
		"12pt":  {Value: 12, Unit: pr.Pt},
		"10vw":  {Value: 10, Unit: pr.Vw},
		"10vh":  {Value: 10, Unit: pr.Vh},
		"3ch":   {Value: 3, Unit: pr.Ch},
	} {
		got, err := ParseLength(input)
		require.NoError(t, err, input)
		assert.Equal(t, exp, got, input)
	}

	for _, bad := range []string{"", "10", "px", "10 px", "abcpx"} {
		_, err := ParseLength(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDimension(t *testing.T) {
	v, err := ParseValue(pr.PWidth, "50%")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.DimLen(pr.PercValue(50))), v)

	v, err = ParseValue(pr.PMaxWidth, "none")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.Dimension{Keyword: pr.DimNone}), v)

	v, err = ParseValue(pr.PWidth, "min-content")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.Dimension{Keyword: pr.DimMinContent}), v)
}

func TestParseLineHeight(t *testing.T) {
	v, err := ParseValue(pr.PLineHeight, "1.5")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.RatioValue{Value: 1.5}), v)

	v, err = ParseValue(pr.PLineHeight, "150%")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.RatioValue{Value: 1.5}), v)
}

func TestParseFontProperties(t *testing.T) {
	v, err := ParseValue(pr.PFontSize, "medium")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.PxValue(16)), v)

	v, err = ParseValue(pr.PFontWeight, "bold")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.FontWeightBold), v)

	v, err = ParseValue(pr.PFontFamily, `"Segoe UI", embedded:icons, sans-serif`)
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.FontFamilies{
		{Name: "Segoe UI", Source: pr.FontSourceSystem},
		{Name: "icons", Source: pr.FontSourceEmbedded},
		{Name: "sans-serif", Source: pr.FontSourceSystem},
	}), v)
}

func TestParseBackground(t *testing.T) {
	v, err := ParseValue(pr.PBackgroundContent, "#cccccc")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.BackgroundContents{
		{Kind: pr.BackgroundColor, Color: pr.ColorU{R: 204, G: 204, B: 204, A: 255}},
	}), v)

	v, err = ParseValue(pr.PBackgroundContent, "linear-gradient(to right, red, blue 50%)")
	require.NoError(t, err)
	bg := v.Prop.(pr.BackgroundContents)
	require.Len(t, bg, 1)
	assert.Equal(t, pr.BackgroundLinearGradient, bg[0].Kind)
	assert.Equal(t, pr.Fl(90), bg[0].Gradient.Angle)
	require.Len(t, bg[0].Gradient.Stops, 2)
	assert.Equal(t, pr.ColorU{R: 255, G: 0, B: 0, A: 255}, bg[0].Gradient.Stops[0].Color)
	assert.True(t, bg[0].Gradient.Stops[1].HasOffset)

	v, err = ParseValue(pr.PBackgroundContent, `url("textures/bg.png"), #fff`)
	require.NoError(t, err)
	bg = v.Prop.(pr.BackgroundContents)
	require.Len(t, bg, 2)
	assert.Equal(t, pr.BackgroundImage, bg[0].Kind)
	assert.Equal(t, "textures/bg.png", bg[0].Image)
}

func TestParseShadow(t *testing.T) {
	v, err := ParseValue(pr.PTextShadow, "2px 3px 4px rgba(0, 0, 0, 0.5)")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.BoxShadow{
		OffsetX:    pr.PxValue(2),
		OffsetY:    pr.PxValue(3),
		BlurRadius: pr.PxValue(4),
		Color:      pr.ColorU{R: 0, G: 0, B: 0, A: 128},
	}), v)

	v, err = ParseValue(pr.PBoxShadowLeft, "inset 1px 1px")
	require.NoError(t, err)
	shadow := v.Prop.(pr.BoxShadow)
	assert.Equal(t, pr.BoxShadowInset, shadow.ClipMode)
	assert.Equal(t, pr.ColorBlack, shadow.Color)
}

func TestParseTransforms(t *testing.T) {
	v, err := ParseValue(pr.PTransform, "translate(10px, 20px) rotate(45deg) scale(2)")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.Transforms{
		{Kind: pr.TransformTranslate, X: pr.PxValue(10), Y: pr.PxValue(20)},
		{Kind: pr.TransformRotate, Angle: 45},
		{Kind: pr.TransformScale, X: pr.PxValue(2), Y: pr.PxValue(2)},
	}), v)
}

func TestParseFilters(t *testing.T) {
	v, err := ParseValue(pr.PFilter, "blur(4px) brightness(150%)")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.Filters{
		{Kind: pr.FilterBlur, Length: pr.PxValue(4)},
		{Kind: pr.FilterBrightness, Amount: 1.5},
	}), v)
}

func TestParseScrollbarStyle(t *testing.T) {
	v, err := ParseValue(pr.PScrollbarStyle, "12px #eeeeee #888888")
	require.NoError(t, err)
	assert.Equal(t, pr.AnyExact(pr.ScrollbarStyle{
		Width:      pr.PxValue(12),
		TrackColor: pr.ColorU{R: 238, G: 238, B: 238, A: 255},
		ThumbColor: pr.ColorU{R: 136, G: 136, B: 136, A: 255},
	}), v)
}
