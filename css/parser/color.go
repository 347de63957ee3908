package parser

import (
	"fmt"
	"strconv"
	"strings"

	pr "github.com/retainedui/cascade/css/properties"
)

// namedColors covers the CSS basic color keywords plus the extended
// names seen in practice.
var namedColors = map[string]pr.ColorU{
	"transparent":   {},
	"black":         {R: 0, G: 0, B: 0, A: 255},
	"silver":        {R: 192, G: 192, B: 192, A: 255},
	"gray":          {R: 128, G: 128, B: 128, A: 255},
	"grey":          {R: 128, G: 128, B: 128, A: 255},
	"white":         {R: 255, G: 255, B: 255, A: 255},
	"maroon":        {R: 128, G: 0, B: 0, A: 255},
	"red":           {R: 255, G: 0, B: 0, A: 255},
	"purple":        {R: 128, G: 0, B: 128, A: 255},
	"fuchsia":       {R: 255, G: 0, B: 255, A: 255},
	"magenta":       {R: 255, G: 0, B: 255, A: 255},
	"green":         {R: 0, G: 128, B: 0, A: 255},
	"lime":          {R: 0, G: 255, B: 0, A: 255},
	"olive":         {R: 128, G: 128, B: 0, A: 255},
	"yellow":        {R: 255, G: 255, B: 0, A: 255},
	"navy":          {R: 0, G: 0, B: 128, A: 255},
	"blue":          {R: 0, G: 0, B: 255, A: 255},
	"teal":          {R: 0, G: 128, B: 128, A: 255},
	"aqua":          {R: 0, G: 255, B: 255, A: 255},
	"cyan":          {R: 0, G: 255, B: 255, A: 255},
	"orange":        {R: 255, G: 165, B: 0, A: 255},
	"brown":         {R: 165, G: 42, B: 42, A: 255},
	"pink":          {R: 255, G: 192, B: 203, A: 255},
	"gold":          {R: 255, G: 215, B: 0, A: 255},
	"indigo":        {R: 75, G: 0, B: 130, A: 255},
	"violet":        {R: 238, G: 130, B: 238, A: 255},
	"coral":         {R: 255, G: 127, B: 80, A: 255},
	"salmon":        {R: 250, G: 128, B: 114, A: 255},
	"khaki":         {R: 240, G: 230, B: 140, A: 255},
	"crimson":       {R: 220, G: 20, B: 60, A: 255},
	"tomato":        {R: 255, G: 99, B: 71, A: 255},
	"chocolate":     {R: 210, G: 105, B: 30, A: 255},
	"darkgray":      {R: 169, G: 169, B: 169, A: 255},
	"darkgrey":      {R: 169, G: 169, B: 169, A: 255},
	"lightgray":     {R: 211, G: 211, B: 211, A: 255},
	"lightgrey":     {R: 211, G: 211, B: 211, A: 255},
	"darkred":       {R: 139, G: 0, B: 0, A: 255},
	"darkgreen":     {R: 0, G: 100, B: 0, A: 255},
	"darkblue":      {R: 0, G: 0, B: 139, A: 255},
	"lightblue":     {R: 173, G: 216, B: 230, A: 255},
	"lightgreen":    {R: 144, G: 238, B: 144, A: 255},
	"beige":         {R: 245, G: 245, B: 220, A: 255},
	"ivory":         {R: 255, G: 255, B: 240, A: 255},
	"lavender":      {R: 230, G: 230, B: 250, A: 255},
	"plum":          {R: 221, G: 160, B: 221, A: 255},
	"orchid":        {R: 218, G: 112, B: 214, A: 255},
	"turquoise":     {R: 64, G: 224, B: 208, A: 255},
	"slategray":     {R: 112, G: 128, B: 144, A: 255},
	"slategrey":     {R: 112, G: 128, B: 144, A: 255},
	"whitesmoke":    {R: 245, G: 245, B: 245, A: 255},
	"gainsboro":     {R: 220, G: 220, B: 220, A: 255},
	"rebeccapurple": {R: 102, G: 51, B: 153, A: 255},
}

// ParseColor parses a CSS color: hex forms, rgb()/rgba() and the named
// keywords.
func ParseColor(s string) (pr.ColorU, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return pr.ColorU{}, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRgbColor(s)
	}
	if c, in := namedColors[s]; in {
		return c, nil
	}
	return pr.ColorU{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (pr.ColorU, error) {
	// expand the short forms
	switch len(hex) {
	case 3, 4:
		var expanded []byte
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return pr.ColorU{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pr.ColorU{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	return pr.ColorU{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func parseRgbColor(s string) (pr.ColorU, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return pr.ColorU{}, fmt.Errorf("invalid rgb() color %q", s)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return pr.ColorU{}, fmt.Errorf("rgb() expects 3 or 4 arguments, got %d", len(args))
	}
	var channels [3]uint8
	for i, arg := range args[:3] {
		v, err := parseColorChannel(strings.TrimSpace(arg))
		if err != nil {
			return pr.ColorU{}, err
		}
		channels[i] = v
	}
	alpha := uint8(255)
	if len(args) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return pr.ColorU{}, fmt.Errorf("invalid alpha %q", args[3])
		}
		alpha = uint8(a*255 + 0.5)
	}
	return pr.ColorU{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

func parseColorChannel(s string) (uint8, error) {
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || p < 0 || p > 100 {
			return 0, fmt.Errorf("invalid color channel %q", s)
		}
		return uint8(p/100*255 + 0.5), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, fmt.Errorf("invalid color channel %q", s)
	}
	return uint8(v), nil
}
