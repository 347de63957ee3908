package compact

import pr "github.com/retainedui/cascade/css/properties"

// I16Properties lists the properties served by an i16 length lane.
var I16Properties = []pr.PropertyType{
	pr.PTop, pr.PRight, pr.PBottom, pr.PLeft,
	pr.PMarginTop, pr.PMarginRight, pr.PMarginBottom, pr.PMarginLeft,
	pr.PPaddingTop, pr.PPaddingRight, pr.PPaddingBottom, pr.PPaddingLeft,
	pr.PBorderTopWidth, pr.PBorderRightWidth, pr.PBorderBottomWidth, pr.PBorderLeftWidth,
	pr.PLetterSpacing, pr.PWordSpacing, pr.PTextIndent, pr.PTabWidth,
	pr.PRowGap, pr.PColumnGap,
}

// DimensionProperties lists the properties served by a u32 dimension
// lane.
var DimensionProperties = []pr.PropertyType{
	pr.PWidth, pr.PHeight,
	pr.PMinWidth, pr.PMinHeight, pr.PMaxWidth, pr.PMaxHeight,
	pr.PFlexBasis,
}

// ColorProperties lists the properties served by a packed color lane.
var ColorProperties = []pr.PropertyType{
	pr.PTextColor,
	pr.PBorderTopColor, pr.PBorderRightColor, pr.PBorderBottomColor, pr.PBorderLeftColor,
	pr.PCaretColor, pr.PSelectionColor, pr.PSelectionBackgroundColor,
}

// EnumProperties maps each enum-lane property to the conversion of its
// payload into a raw variant byte.
var EnumProperties = map[pr.PropertyType]func(pr.CssProperty) (uint8, bool){
	pr.PDisplay:            enumVariant[pr.Display],
	pr.PPosition:           enumVariant[pr.Position],
	pr.PFloat:              enumVariant[pr.Float],
	pr.PClear:              enumVariant[pr.Clear],
	pr.PBoxSizing:          enumVariant[pr.BoxSizing],
	pr.PVisibility:         enumVariant[pr.Visibility],
	pr.POverflowX:          enumVariant[pr.Overflow],
	pr.POverflowY:          enumVariant[pr.Overflow],
	pr.PFlexDirection:      enumVariant[pr.FlexDirection],
	pr.PFlexWrap:           enumVariant[pr.FlexWrap],
	pr.PJustifyContent:     enumVariant[pr.JustifyContent],
	pr.PAlignItems:         enumVariant[pr.AlignItems],
	pr.PAlignContent:       enumVariant[pr.AlignContent],
	pr.PAlignSelf:          enumVariant[pr.AlignSelf],
	pr.PWhiteSpace:         enumVariant[pr.WhiteSpace],
	pr.PDirection:          enumVariant[pr.Direction],
	pr.PTextAlign:          enumVariant[pr.TextAlign],
	pr.PVerticalAlign:      enumVariant[pr.VerticalAlign],
	pr.PFontStyle:          enumVariant[pr.FontStyle],
	pr.PTextDecoration:     enumVariant[pr.TextDecoration],
	pr.PTextTransform:      enumVariant[pr.TextTransform],
	pr.PCursor:             enumVariant[pr.Cursor],
	pr.PMixBlendMode:       enumVariant[pr.MixBlendMode],
	pr.PBackfaceVisibility: enumVariant[pr.BackfaceVisibility],
	pr.PBorderTopStyle:     enumVariant[pr.BorderStyle],
	pr.PBorderRightStyle:   enumVariant[pr.BorderStyle],
	pr.PBorderBottomStyle:  enumVariant[pr.BorderStyle],
	pr.PBorderLeftStyle:    enumVariant[pr.BorderStyle],
}

func enumVariant[T ~uint8](p pr.CssProperty) (uint8, bool) {
	v, ok := p.(T)
	return uint8(v), ok
}

// Cache owns the per-property lanes of one document. It serves only the
// normal pseudo-state; any other state bypasses it.
type Cache struct {
	i16Lanes    map[pr.PropertyType][]int16
	dimLanes    map[pr.PropertyType][]uint32
	enumLanes   map[pr.PropertyType][]uint8
	colorLanes  map[pr.PropertyType][]uint32
	lineHeights []int16

	nodeCount int
}

// NewCache allocates all lanes for nodeCount nodes, every slot unset.
func NewCache(nodeCount int) *Cache {
	c := &Cache{
		i16Lanes:    make(map[pr.PropertyType][]int16, len(I16Properties)),
		dimLanes:    make(map[pr.PropertyType][]uint32, len(DimensionProperties)),
		enumLanes:   make(map[pr.PropertyType][]uint8, len(EnumProperties)),
		colorLanes:  make(map[pr.PropertyType][]uint32, len(ColorProperties)),
		lineHeights: newI16Lane(nodeCount),
		nodeCount:   nodeCount,
	}
	for _, p := range I16Properties {
		c.i16Lanes[p] = newI16Lane(nodeCount)
	}
	for _, p := range DimensionProperties {
		c.dimLanes[p] = newU32Lane(nodeCount)
	}
	for p := range EnumProperties {
		c.enumLanes[p] = make([]uint8, nodeCount)
	}
	for _, p := range ColorProperties {
		c.colorLanes[p] = make([]uint32, nodeCount)
	}
	return c
}

func newI16Lane(n int) []int16 {
	lane := make([]int16, n)
	for i := range lane {
		lane[i] = UnsetI16
	}
	return lane
}

func newU32Lane(n int) []uint32 {
	lane := make([]uint32, n)
	for i := range lane {
		lane[i] = UnsetU32
	}
	return lane
}

// NodeCount returns the number of node slots per lane.
func (c *Cache) NodeCount() int { return c.nodeCount }

// Set encodes v into the lane of p, if p has one. It reports whether
// the property is lane-backed at all.
func (c *Cache) Set(p pr.PropertyType, node int, v pr.AnyValue) bool {
	if node < 0 || node >= c.nodeCount {
		return false
	}
	if lane, in := c.i16Lanes[p]; in {
		lane[node] = EncodeLength(v)
		return true
	}
	if lane, in := c.dimLanes[p]; in {
		lane[node] = EncodeDimension(v)
		return true
	}
	if variant, in := EnumProperties[p]; in {
		c.enumLanes[p][node] = EncodeEnum(v, variant)
		return true
	}
	if lane, in := c.colorLanes[p]; in {
		lane[node] = EncodeColor(v)
		return true
	}
	if p == pr.PLineHeight {
		c.lineHeights[node] = EncodeLineHeight(v)
		return true
	}
	return false
}

// HasLane reports whether property p is backed by a lane.
func (c *Cache) HasLane(p pr.PropertyType) bool {
	if _, in := c.i16Lanes[p]; in {
		return true
	}
	if _, in := c.dimLanes[p]; in {
		return true
	}
	if _, in := EnumProperties[p]; in {
		return true
	}
	if _, in := c.colorLanes[p]; in {
		return true
	}
	return p == pr.PLineHeight
}

// GetLength reads an i16 length lane.
func (c *Cache) GetLength(p pr.PropertyType, node int) (pr.Value[pr.PixelValue], bool) {
	lane, in := c.i16Lanes[p]
	if !in || node < 0 || node >= c.nodeCount {
		return pr.Value[pr.PixelValue]{}, false
	}
	return DecodeLength(lane[node])
}

// GetDimension reads a u32 dimension lane.
func (c *Cache) GetDimension(p pr.PropertyType, node int) (pr.Value[pr.Dimension], bool) {
	lane, in := c.dimLanes[p]
	if !in || node < 0 || node >= c.nodeCount {
		return pr.Value[pr.Dimension]{}, false
	}
	return DecodeDimension(lane[node])
}

// GetEnum reads an enum lane, returning the raw variant byte.
func (c *Cache) GetEnum(p pr.PropertyType, node int) (uint8, bool) {
	lane, in := c.enumLanes[p]
	if !in || node < 0 || node >= c.nodeCount {
		return 0, false
	}
	return DecodeEnum(lane[node])
}

// GetColor reads a color lane.
func (c *Cache) GetColor(p pr.PropertyType, node int) (pr.ColorU, bool) {
	lane, in := c.colorLanes[p]
	if !in || node < 0 || node >= c.nodeCount {
		return pr.ColorU{}, false
	}
	return DecodeColor(lane[node])
}

// GetLineHeight reads the line height lane.
func (c *Cache) GetLineHeight(node int) (pr.Value[pr.RatioValue], bool) {
	if node < 0 || node >= c.nodeCount {
		return pr.Value[pr.RatioValue]{}, false
	}
	return DecodeLineHeight(c.lineHeights[node])
}

// Append grows every lane of c with the slots of other, which keeps
// ownership of nothing: slices are copied.
func (c *Cache) Append(other *Cache) {
	for p, lane := range c.i16Lanes {
		c.i16Lanes[p] = append(lane, other.i16Lanes[p]...)
	}
	for p, lane := range c.dimLanes {
		c.dimLanes[p] = append(lane, other.dimLanes[p]...)
	}
	for p, lane := range c.enumLanes {
		c.enumLanes[p] = append(lane, other.enumLanes[p]...)
	}
	for p, lane := range c.colorLanes {
		c.colorLanes[p] = append(lane, other.colorLanes[p]...)
	}
	c.lineHeights = append(c.lineHeights, other.lineHeights...)
	c.nodeCount += other.nodeCount
}
