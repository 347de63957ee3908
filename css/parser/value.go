package parser

import (
	"fmt"
	"strconv"
	"strings"

	pr "github.com/retainedui/cascade/css/properties"
)

// ParseValue parses the raw text of one declaration into the typed
// value of property p. The global keywords auto / initial / inherit are
// handled here; unset resolves to inherit for inherited properties and
// initial otherwise.
func ParseValue(p pr.PropertyType, raw string) (pr.AnyValue, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "":
		return pr.AnyValue{}, fmt.Errorf("empty value for %s", p)
	case "auto":
		// background-size and a few enums give auto a concrete meaning
		switch p {
		case pr.PBackgroundSize:
			return pr.AnyExact(pr.BackgroundSize{Kind: pr.BackgroundSizeAuto}), nil
		case pr.PAlignSelf:
			return pr.AnyExact(pr.AlignSelfAuto), nil
		case pr.PHyphens:
			return pr.AnyExact(pr.HyphensAuto), nil
		}
		return pr.AnyAuto, nil
	case "initial":
		return pr.AnyInitial, nil
	case "inherit":
		return pr.AnyInherit, nil
	case "unset":
		if p.IsInheritable() {
			return pr.AnyInherit, nil
		}
		return pr.AnyInitial, nil
	}

	lower := strings.ToLower(raw)
	if table, in := enumTables[p]; in {
		if v, ok := table[lower]; ok {
			return pr.AnyExact(v), nil
		}
		return pr.AnyValue{}, fmt.Errorf("unknown keyword %q for %s", raw, p)
	}

	switch p {
	case pr.PTextColor, pr.PCaretColor, pr.PSelectionColor, pr.PSelectionBackgroundColor,
		pr.PBorderTopColor, pr.PBorderRightColor, pr.PBorderBottomColor, pr.PBorderLeftColor:
		c, err := ParseColor(raw)
		if err != nil {
			return pr.AnyValue{}, err
		}
		return pr.AnyExact(c), nil

	case pr.PWidth, pr.PHeight, pr.PMinWidth, pr.PMinHeight, pr.PMaxWidth, pr.PMaxHeight,
		pr.PFlexBasis:
		return parseDimension(lower)

	case pr.PFontSize:
		if px, in := pr.FontSizeKeywords[lower]; in {
			return pr.AnyExact(pr.PxValue(px)), nil
		}
		return parseLengthValue(lower)

	case pr.PBorderTopWidth, pr.PBorderRightWidth, pr.PBorderBottomWidth, pr.PBorderLeftWidth:
		if px, in := pr.BorderWidthKeywords[lower]; in {
			return pr.AnyExact(pr.PxValue(px)), nil
		}
		return parseLengthValue(lower)

	case pr.PTop, pr.PRight, pr.PBottom, pr.PLeft,
		pr.PMarginTop, pr.PMarginRight, pr.PMarginBottom, pr.PMarginLeft,
		pr.PPaddingTop, pr.PPaddingRight, pr.PPaddingBottom, pr.PPaddingLeft,
		pr.PBorderTopLeftRadius, pr.PBorderTopRightRadius,
		pr.PBorderBottomLeftRadius, pr.PBorderBottomRightRadius,
		pr.PLetterSpacing, pr.PWordSpacing, pr.PTextIndent,
		pr.PRowGap, pr.PColumnGap:
		if lower == "normal" && (p == pr.PLetterSpacing || p == pr.PWordSpacing) {
			return pr.AnyExact(pr.PxValue(0)), nil
		}
		return parseLengthValue(lower)

	case pr.PTabWidth:
		if n, err := strconv.ParseFloat(lower, 64); err == nil {
			// a bare number counts in advance widths
			return pr.AnyExact(pr.PixelValue{Value: pr.Fl(n), Unit: pr.Ch}), nil
		}
		return parseLengthValue(lower)

	case pr.PLineHeight:
		return parseLineHeight(lower)

	case pr.POpacity, pr.PFlexGrow, pr.PFlexShrink:
		n, err := strconv.ParseFloat(lower, 64)
		if err != nil {
			return pr.AnyValue{}, fmt.Errorf("invalid number %q for %s", raw, p)
		}
		return pr.AnyExact(pr.FloatValue{Value: pr.Fl(n)}), nil

	case pr.PZIndex, pr.POrder:
		n, err := strconv.Atoi(lower)
		if err != nil {
			return pr.AnyValue{}, fmt.Errorf("invalid integer %q for %s", raw, p)
		}
		return pr.AnyExact(pr.IntValue{Value: int32(n)}), nil

	case pr.PAspectRatio:
		return parseAspectRatio(lower)

	case pr.PFontWeight:
		return parseFontWeight(lower)

	case pr.PFontFamily:
		return parseFontFamilies(raw)

	case pr.PBackgroundContent:
		return parseBackground(raw)

	case pr.PBackgroundPosition:
		return parseBackgroundPosition(lower)

	case pr.PBackgroundSize:
		return parseBackgroundSize(lower)

	case pr.PBoxShadowLeft, pr.PBoxShadowRight, pr.PBoxShadowTop, pr.PBoxShadowBottom,
		pr.PTextShadow:
		return parseShadow(lower)

	case pr.PTransform:
		return parseTransforms(lower)

	case pr.PTransformOrigin, pr.PPerspectiveOrigin:
		return parseTransformOrigin(lower)

	case pr.PFilter, pr.PBackdropFilter:
		return parseFilters(lower)

	case pr.PScrollbarStyle:
		return parseScrollbarStyle(lower)
	}
	return pr.AnyValue{}, fmt.Errorf("cannot parse value %q for %s", raw, p)
}

var enumTables = map[pr.PropertyType]map[string]pr.CssProperty{}

func registerEnum[T pr.CssProperty](p pr.PropertyType, byName map[string]T) {
	table := make(map[string]pr.CssProperty, len(byName))
	for name, v := range byName {
		table[name] = v
	}
	enumTables[p] = table
}

func init() {
	registerEnum(pr.PDisplay, pr.DisplayByName)
	registerEnum(pr.PPosition, pr.PositionByName)
	registerEnum(pr.PFloat, pr.FloatByName)
	registerEnum(pr.PClear, pr.ClearByName)
	registerEnum(pr.PBoxSizing, pr.BoxSizingByName)
	registerEnum(pr.PVisibility, pr.VisibilityByName)
	registerEnum(pr.POverflowX, pr.OverflowByName)
	registerEnum(pr.POverflowY, pr.OverflowByName)
	registerEnum(pr.PFlexDirection, pr.FlexDirectionByName)
	registerEnum(pr.PFlexWrap, pr.FlexWrapByName)
	registerEnum(pr.PJustifyContent, pr.JustifyContentByName)
	registerEnum(pr.PAlignItems, pr.AlignItemsByName)
	registerEnum(pr.PAlignContent, pr.AlignContentByName)
	registerEnum(pr.PAlignSelf, pr.AlignSelfByName)
	registerEnum(pr.PWhiteSpace, pr.WhiteSpaceByName)
	registerEnum(pr.PWordBreak, pr.WordBreakByName)
	registerEnum(pr.POverflowWrap, pr.OverflowWrapByName)
	registerEnum(pr.PDirection, pr.DirectionByName)
	registerEnum(pr.PHyphens, pr.HyphensByName)
	registerEnum(pr.PTextAlign, pr.TextAlignByName)
	registerEnum(pr.PVerticalAlign, pr.VerticalAlignByName)
	registerEnum(pr.PFontStyle, pr.FontStyleByName)
	registerEnum(pr.PTextDecoration, pr.TextDecorationByName)
	registerEnum(pr.PTextTransform, pr.TextTransformByName)
	registerEnum(pr.PTextOverflow, pr.TextOverflowByName)
	registerEnum(pr.PListStyleType, pr.ListStyleTypeByName)
	registerEnum(pr.PListStylePosition, pr.ListStylePositionByName)
	registerEnum(pr.PCursor, pr.CursorByName)
	registerEnum(pr.PMixBlendMode, pr.MixBlendModeByName)
	registerEnum(pr.PBackfaceVisibility, pr.BackfaceVisibilityByName)
	registerEnum(pr.PBackgroundRepeat, pr.BackgroundRepeatByName)
	registerEnum(pr.PBorderTopStyle, pr.BorderStyleByName)
	registerEnum(pr.PBorderRightStyle, pr.BorderStyleByName)
	registerEnum(pr.PBorderBottomStyle, pr.BorderStyleByName)
	registerEnum(pr.PBorderLeftStyle, pr.BorderStyleByName)
}

// ParseLength parses a number with a unit suffix; a bare 0 counts as
// pixels.
func ParseLength(s string) (pr.PixelValue, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "0" {
		return pr.PxValue(0), nil
	}
	for suffix, unit := range pr.UnitByName {
		if strings.HasSuffix(s, suffix) {
			numPart := strings.TrimSuffix(s, suffix)
			// "1em" must not parse as "1e" + "m"
			if suffix != "%" && numPart != "" {
				if last := numPart[len(numPart)-1]; last != '.' && (last < '0' || last > '9') {
					continue
				}
			}
			n, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				continue
			}
			return pr.PixelValue{Value: pr.Fl(n), Unit: unit}, nil
		}
	}
	return pr.PixelValue{}, fmt.Errorf("invalid length %q", s)
}

func parseLengthValue(s string) (pr.AnyValue, error) {
	v, err := ParseLength(s)
	if err != nil {
		return pr.AnyValue{}, err
	}
	return pr.AnyExact(v), nil
}

func parseDimension(s string) (pr.AnyValue, error) {
	switch s {
	case "none":
		return pr.AnyExact(pr.Dimension{Keyword: pr.DimNone}), nil
	case "min-content":
		return pr.AnyExact(pr.Dimension{Keyword: pr.DimMinContent}), nil
	case "max-content":
		return pr.AnyExact(pr.Dimension{Keyword: pr.DimMaxContent}), nil
	}
	v, err := ParseLength(s)
	if err != nil {
		return pr.AnyValue{}, err
	}
	return pr.AnyExact(pr.DimLen(v)), nil
}

func parseLineHeight(s string) (pr.AnyValue, error) {
	if s == "normal" {
		return pr.AnyExact(pr.RatioValue{Value: 1.2}), nil
	}
	if strings.HasSuffix(s, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return pr.AnyValue{}, fmt.Errorf("invalid line-height %q", s)
		}
		return pr.AnyExact(pr.RatioValue{Value: pr.Fl(n) / 100}), nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return pr.AnyValue{}, fmt.Errorf("invalid line-height %q", s)
	}
	return pr.AnyExact(pr.RatioValue{Value: pr.Fl(n)}), nil
}

func parseAspectRatio(s string) (pr.AnyValue, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil || n <= 0 {
			return pr.AnyValue{}, fmt.Errorf("invalid aspect-ratio %q", s)
		}
		return pr.AnyExact(pr.AspectRatio{Ratio: pr.Fl(n)}), nil
	case 2:
		num, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		den, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil || num <= 0 || den <= 0 {
			return pr.AnyValue{}, fmt.Errorf("invalid aspect-ratio %q", s)
		}
		return pr.AnyExact(pr.AspectRatio{Ratio: pr.Fl(num / den)}), nil
	}
	return pr.AnyValue{}, fmt.Errorf("invalid aspect-ratio %q", s)
}

func parseFontWeight(s string) (pr.AnyValue, error) {
	switch s {
	case "normal":
		return pr.AnyExact(pr.FontWeightNormal), nil
	case "bold":
		return pr.AnyExact(pr.FontWeightBold), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 1000 {
		return pr.AnyValue{}, fmt.Errorf("invalid font-weight %q", s)
	}
	return pr.AnyExact(pr.FontWeight(n)), nil
}

func parseFontFamilies(s string) (pr.AnyValue, error) {
	var out pr.FontFamilies
	for _, part := range splitTopLevel(s, ',') {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name == "" {
			continue
		}
		fam := pr.FontFamily{Name: name, Source: pr.FontSourceSystem}
		if rest, ok := strings.CutPrefix(name, "embedded:"); ok {
			fam = pr.FontFamily{Name: rest, Source: pr.FontSourceEmbedded}
		} else if rest, ok := strings.CutPrefix(name, "file:"); ok {
			fam = pr.FontFamily{Name: rest, Source: pr.FontSourceFile}
		}
		out = append(out, fam)
	}
	if len(out) == 0 {
		return pr.AnyValue{}, fmt.Errorf("empty font-family")
	}
	return pr.AnyExact(out), nil
}

func parseBackground(s string) (pr.AnyValue, error) {
	var out pr.BackgroundContents
	for _, layer := range splitTopLevel(s, ',') {
		layer = strings.TrimSpace(layer)
		bg, err := parseBackgroundLayer(layer)
		if err != nil {
			return pr.AnyValue{}, err
		}
		out = append(out, bg)
	}
	if len(out) == 0 {
		return pr.AnyValue{}, fmt.Errorf("empty background")
	}
	return pr.AnyExact(out), nil
}

func parseBackgroundLayer(s string) (pr.BackgroundContent, error) {
	lower := strings.ToLower(s)
	switch {
	case lower == "none":
		return pr.BackgroundContent{Kind: pr.BackgroundColor, Color: pr.ColorTransparent}, nil
	case strings.HasPrefix(lower, "url("):
		if !strings.HasSuffix(s, ")") {
			return pr.BackgroundContent{}, fmt.Errorf("unclosed url() in %q", s)
		}
		ref := strings.Trim(s[4:len(s)-1], `"' `)
		return pr.BackgroundContent{Kind: pr.BackgroundImage, Image: ref}, nil
	case strings.HasPrefix(lower, "linear-gradient("):
		g, err := parseGradient(lower[len("linear-gradient("):], false)
		if err != nil {
			return pr.BackgroundContent{}, err
		}
		return pr.BackgroundContent{Kind: pr.BackgroundLinearGradient, Gradient: g}, nil
	case strings.HasPrefix(lower, "radial-gradient("):
		g, err := parseGradient(lower[len("radial-gradient("):], true)
		if err != nil {
			return pr.BackgroundContent{}, err
		}
		return pr.BackgroundContent{Kind: pr.BackgroundRadialGradient, Gradient: g}, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return pr.BackgroundContent{}, err
	}
	return pr.BackgroundContent{Kind: pr.BackgroundColor, Color: c}, nil
}

// parseGradient parses the inside of <kind>-gradient( ... ), with the
// closing parenthesis still present.
func parseGradient(s string, radial bool) (pr.Gradient, error) {
	if !strings.HasSuffix(s, ")") {
		return pr.Gradient{}, fmt.Errorf("unclosed gradient")
	}
	args := splitTopLevel(s[:len(s)-1], ',')
	g := pr.Gradient{Radial: radial, Angle: 180}
	if len(args) == 0 {
		return pr.Gradient{}, fmt.Errorf("empty gradient")
	}

	first := strings.TrimSpace(args[0])
	consumed := false
	if !radial {
		switch first {
		case "to top":
			g.Angle, consumed = 0, true
		case "to right":
			g.Angle, consumed = 90, true
		case "to bottom":
			g.Angle, consumed = 180, true
		case "to left":
			g.Angle, consumed = 270, true
		default:
			if deg, ok := strings.CutSuffix(first, "deg"); ok {
				n, err := strconv.ParseFloat(deg, 64)
				if err != nil {
					return pr.Gradient{}, fmt.Errorf("invalid gradient angle %q", first)
				}
				g.Angle, consumed = pr.Fl(n), true
			}
		}
	} else if first == "circle" || first == "ellipse" {
		consumed = true
	}
	if consumed {
		args = args[1:]
	}

	if len(args) < 2 {
		return pr.Gradient{}, fmt.Errorf("gradient needs at least two color stops")
	}
	for _, arg := range args {
		stop, err := parseGradientStop(strings.TrimSpace(arg))
		if err != nil {
			return pr.Gradient{}, err
		}
		g.Stops = append(g.Stops, stop)
	}
	return g, nil
}

func parseGradientStop(s string) (pr.GradientStop, error) {
	fields := fieldsTopLevel(s)
	if len(fields) == 0 || len(fields) > 2 {
		return pr.GradientStop{}, fmt.Errorf("invalid gradient stop %q", s)
	}
	c, err := ParseColor(fields[0])
	if err != nil {
		return pr.GradientStop{}, err
	}
	stop := pr.GradientStop{Color: c}
	if len(fields) == 2 {
		off, err := ParseLength(fields[1])
		if err != nil {
			return pr.GradientStop{}, err
		}
		stop.Offset = off
		stop.HasOffset = true
	}
	return stop, nil
}

var backgroundPositionKeywords = map[string]pr.PixelValue{
	"left": pr.PercValue(0), "center": pr.PercValue(50), "right": pr.PercValue(100),
	"top": pr.PercValue(0), "bottom": pr.PercValue(100),
}

func parseBackgroundPosition(s string) (pr.AnyValue, error) {
	fields := fieldsTopLevel(s)
	if len(fields) == 0 || len(fields) > 2 {
		return pr.AnyValue{}, fmt.Errorf("invalid background-position %q", s)
	}
	parseOne := func(f string) (pr.PixelValue, error) {
		if v, in := backgroundPositionKeywords[f]; in {
			return v, nil
		}
		return ParseLength(f)
	}
	h, err := parseOne(fields[0])
	if err != nil {
		return pr.AnyValue{}, err
	}
	v := pr.PercValue(50)
	if len(fields) == 2 {
		if v, err = parseOne(fields[1]); err != nil {
			return pr.AnyValue{}, err
		}
	}
	return pr.AnyExact(pr.BackgroundPosition{Horizontal: h, Vertical: v}), nil
}

func parseBackgroundSize(s string) (pr.AnyValue, error) {
	switch s {
	case "cover":
		return pr.AnyExact(pr.BackgroundSize{Kind: pr.BackgroundSizeCover}), nil
	case "contain":
		return pr.AnyExact(pr.BackgroundSize{Kind: pr.BackgroundSizeContain}), nil
	}
	fields := fieldsTopLevel(s)
	if len(fields) != 2 {
		return pr.AnyValue{}, fmt.Errorf("invalid background-size %q", s)
	}
	w, err := ParseLength(fields[0])
	if err != nil {
		return pr.AnyValue{}, err
	}
	h, err := ParseLength(fields[1])
	if err != nil {
		return pr.AnyValue{}, err
	}
	return pr.AnyExact(pr.BackgroundSize{Kind: pr.BackgroundSizeExact, Width: w, Height: h}), nil
}

func parseShadow(s string) (pr.AnyValue, error) {
	var shadow pr.BoxShadow
	var lengths []pr.PixelValue
	sawColor := false
	for _, f := range fieldsTopLevel(s) {
		if f == "inset" {
			shadow.ClipMode = pr.BoxShadowInset
			continue
		}
		if v, err := ParseLength(f); err == nil {
			lengths = append(lengths, v)
			continue
		}
		c, err := ParseColor(f)
		if err != nil {
			return pr.AnyValue{}, fmt.Errorf("invalid shadow part %q", f)
		}
		shadow.Color = c
		sawColor = true
	}
	if len(lengths) < 2 || len(lengths) > 4 {
		return pr.AnyValue{}, fmt.Errorf("shadow needs 2 to 4 lengths, got %d", len(lengths))
	}
	shadow.OffsetX, shadow.OffsetY = lengths[0], lengths[1]
	if len(lengths) > 2 {
		shadow.BlurRadius = lengths[2]
	}
	if len(lengths) > 3 {
		shadow.SpreadRadius = lengths[3]
	}
	if !sawColor {
		shadow.Color = pr.ColorBlack
	}
	return pr.AnyExact(shadow), nil
}

func parseTransforms(s string) (pr.AnyValue, error) {
	if s == "none" {
		return pr.AnyExact(pr.Transforms(nil)), nil
	}
	var out pr.Transforms
	for _, f := range fieldsTopLevel(s) {
		name, args, err := splitFunction(f)
		if err != nil {
			return pr.AnyValue{}, err
		}
		op, err := parseTransformOp(name, args)
		if err != nil {
			return pr.AnyValue{}, err
		}
		out = append(out, op)
	}
	if len(out) == 0 {
		return pr.AnyValue{}, fmt.Errorf("empty transform")
	}
	return pr.AnyExact(out), nil
}

func parseTransformOp(name string, args []string) (pr.TransformOp, error) {
	switch name {
	case "translate", "translatex", "translatey":
		var x, y pr.PixelValue
		var err error
		if x, err = ParseLength(args[0]); err != nil {
			return pr.TransformOp{}, err
		}
		if name == "translatey" {
			x, y = pr.PxValue(0), x
		} else if name == "translate" && len(args) == 2 {
			if y, err = ParseLength(args[1]); err != nil {
				return pr.TransformOp{}, err
			}
		}
		return pr.TransformOp{Kind: pr.TransformTranslate, X: x, Y: y}, nil
	case "scale", "scalex", "scaley":
		sx, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return pr.TransformOp{}, fmt.Errorf("invalid scale factor %q", args[0])
		}
		x, y := pr.Fl(sx), pr.Fl(sx)
		switch {
		case name == "scalex":
			y = 1
		case name == "scaley":
			x, y = 1, pr.Fl(sx)
		case len(args) == 2:
			sy, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return pr.TransformOp{}, fmt.Errorf("invalid scale factor %q", args[1])
			}
			y = pr.Fl(sy)
		}
		return pr.TransformOp{Kind: pr.TransformScale, X: pr.PxValue(x), Y: pr.PxValue(y)}, nil
	case "rotate":
		deg, ok := strings.CutSuffix(args[0], "deg")
		if !ok {
			return pr.TransformOp{}, fmt.Errorf("invalid rotation %q", args[0])
		}
		n, err := strconv.ParseFloat(deg, 64)
		if err != nil {
			return pr.TransformOp{}, fmt.Errorf("invalid rotation %q", args[0])
		}
		return pr.TransformOp{Kind: pr.TransformRotate, Angle: pr.Fl(n)}, nil
	case "skew", "skewx", "skewy":
		parseDeg := func(a string) (pr.Fl, error) {
			deg, ok := strings.CutSuffix(a, "deg")
			if !ok {
				return 0, fmt.Errorf("invalid skew angle %q", a)
			}
			n, err := strconv.ParseFloat(deg, 64)
			return pr.Fl(n), err
		}
		x, err := parseDeg(args[0])
		if err != nil {
			return pr.TransformOp{}, err
		}
		var y pr.Fl
		if name == "skewy" {
			x, y = 0, x
		} else if name == "skew" && len(args) == 2 {
			if y, err = parseDeg(args[1]); err != nil {
				return pr.TransformOp{}, err
			}
		}
		return pr.TransformOp{Kind: pr.TransformSkew, X: pr.PxValue(x), Y: pr.PxValue(y)}, nil
	}
	return pr.TransformOp{}, fmt.Errorf("unsupported transform function %q", name)
}

func parseTransformOrigin(s string) (pr.AnyValue, error) {
	fields := fieldsTopLevel(s)
	if len(fields) == 0 || len(fields) > 2 {
		return pr.AnyValue{}, fmt.Errorf("invalid origin %q", s)
	}
	parseOne := func(f string) (pr.PixelValue, error) {
		if v, in := backgroundPositionKeywords[f]; in {
			return v, nil
		}
		return ParseLength(f)
	}
	x, err := parseOne(fields[0])
	if err != nil {
		return pr.AnyValue{}, err
	}
	y := pr.PercValue(50)
	if len(fields) == 2 {
		if y, err = parseOne(fields[1]); err != nil {
			return pr.AnyValue{}, err
		}
	}
	return pr.AnyExact(pr.TransformOrigin{X: x, Y: y}), nil
}

func parseFilters(s string) (pr.AnyValue, error) {
	if s == "none" {
		return pr.AnyExact(pr.Filters(nil)), nil
	}
	var out pr.Filters
	for _, f := range fieldsTopLevel(s) {
		name, args, err := splitFunction(f)
		if err != nil {
			return pr.AnyValue{}, err
		}
		filter, err := parseFilterOp(name, strings.Join(args, ","))
		if err != nil {
			return pr.AnyValue{}, err
		}
		out = append(out, filter)
	}
	if len(out) == 0 {
		return pr.AnyValue{}, fmt.Errorf("empty filter")
	}
	return pr.AnyExact(out), nil
}

var filterKinds = map[string]pr.FilterKind{
	"brightness": pr.FilterBrightness,
	"contrast":   pr.FilterContrast,
	"grayscale":  pr.FilterGrayscale,
	"invert":     pr.FilterInvert,
	"opacity":    pr.FilterOpacity,
	"saturate":   pr.FilterSaturate,
	"sepia":      pr.FilterSepia,
}

func parseFilterOp(name, arg string) (pr.Filter, error) {
	switch name {
	case "blur":
		v, err := ParseLength(arg)
		if err != nil {
			return pr.Filter{}, err
		}
		return pr.Filter{Kind: pr.FilterBlur, Length: v}, nil
	case "hue-rotate":
		deg, ok := strings.CutSuffix(arg, "deg")
		if !ok {
			return pr.Filter{}, fmt.Errorf("invalid hue-rotate %q", arg)
		}
		n, err := strconv.ParseFloat(deg, 64)
		if err != nil {
			return pr.Filter{}, fmt.Errorf("invalid hue-rotate %q", arg)
		}
		return pr.Filter{Kind: pr.FilterHueRotate, Amount: pr.Fl(n)}, nil
	case "drop-shadow":
		av, err := parseShadow(arg)
		if err != nil {
			return pr.Filter{}, err
		}
		return pr.Filter{Kind: pr.FilterDropShadow, Shadow: av.Prop.(pr.BoxShadow)}, nil
	}
	kind, in := filterKinds[name]
	if !in {
		return pr.Filter{}, fmt.Errorf("unsupported filter function %q", name)
	}
	amount := 1.0
	if arg != "" {
		var err error
		if pc, ok := strings.CutSuffix(arg, "%"); ok {
			amount, err = strconv.ParseFloat(pc, 64)
			amount /= 100
		} else {
			amount, err = strconv.ParseFloat(arg, 64)
		}
		if err != nil {
			return pr.Filter{}, fmt.Errorf("invalid filter amount %q", arg)
		}
	}
	return pr.Filter{Kind: kind, Amount: pr.Fl(amount)}, nil
}

func parseScrollbarStyle(s string) (pr.AnyValue, error) {
	fields := fieldsTopLevel(s)
	if len(fields) != 3 {
		return pr.AnyValue{}, fmt.Errorf("scrollbar-style expects width, track and thumb, got %q", s)
	}
	w, err := ParseLength(fields[0])
	if err != nil {
		return pr.AnyValue{}, err
	}
	track, err := ParseColor(fields[1])
	if err != nil {
		return pr.AnyValue{}, err
	}
	thumb, err := ParseColor(fields[2])
	if err != nil {
		return pr.AnyValue{}, err
	}
	return pr.AnyExact(pr.ScrollbarStyle{Width: w, TrackColor: track, ThumbColor: thumb}), nil
}

// splitFunction splits "name(a, b)" into its name and arguments.
func splitFunction(s string) (name string, args []string, err error) {
	open := strings.IndexByte(s, '(')
	if open == -1 || !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("expected a function, got %q", s)
	}
	name = strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	for _, a := range splitTopLevel(inner, ',') {
		args = append(args, strings.TrimSpace(a))
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("function %q without argument", name)
	}
	return name, args, nil
}

// splitTopLevel splits on sep, ignoring separators nested in
// parentheses.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// fieldsTopLevel splits on whitespace, keeping function calls whole.
func fieldsTopLevel(s string) []string {
	var out []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case (c == ' ' || c == '\t') && depth == 0:
			if start != -1 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		out = append(out, s[start:])
	}
	return out
}
