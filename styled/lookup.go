package styled

import (
	"github.com/retainedui/cascade/css/compact"
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
)

// NodeState is the runtime interaction state of a node. A node may be
// in several states at once; precedence between them is focus, then
// active, then hover, with normal as the common fallback.
type NodeState struct {
	Hovered bool
	Active  bool
	Focused bool
}

func (s NodeState) active(st pr.PseudoState) bool {
	switch st {
	case pr.StateHover:
		return s.Hovered
	case pr.StateActive:
		return s.Active
	case pr.StateFocus:
		return s.Focused
	}
	return true
}

// order lists the pseudo-state buckets to probe, strongest first,
// always ending on the normal bucket.
func (s NodeState) order() []pr.PseudoState {
	out := make([]pr.PseudoState, 0, pr.NbStates)
	for _, st := range pr.StatePrecedence {
		if s.active(st) {
			out = append(out, st)
		}
	}
	return out
}

func (s NodeState) isNormal() bool { return !s.Hovered && !s.Active && !s.Focused }

// GetProperty returns the computed value of p for the node, walking the
// origins in priority order: user override, then for each active state
// bucket the matched, inline and inherited declarations, then the user
// agent default, then the initial value.
func (c *CssPropertyCache) GetProperty(node *dom.NodeData, id dom.NodeId, state NodeState, p pr.PropertyType) pr.AnyValue {
	if !c.validNode(id) {
		return pr.AnyInitial
	}
	if state.isNormal() && c.compactEnabled && c.compact != nil {
		if v, ok := c.getCompact(id, p); ok {
			return v
		}
	}
	return c.getSlow(node, id, state, p)
}

func (c *CssPropertyCache) getSlow(node *dom.NodeData, id dom.NodeId, state NodeState, p pr.PropertyType) pr.AnyValue {
	if v, ok := c.userOverrides[id].get(p); ok {
		return v
	}
	for _, bucket := range state.order() {
		if v, ok := c.getAuthor(bucket, id, p); ok {
			return v
		}
		if v, ok := node.InlineProperty(bucket, p); ok {
			return v
		}
		if v, ok := c.getCascaded(bucket, id, p); ok {
			return v
		}
	}
	if v, ok := uaDefault(node.Type, p); ok {
		return v
	}
	return pr.AnyInitial
}

// getCompact reads the packed lane of p, if any. A miss either means p
// has no lane, or the value did not fit the packed encoding; both fall
// back to the slow path.
func (c *CssPropertyCache) getCompact(id dom.NodeId, p pr.PropertyType) (pr.AnyValue, bool) {
	if p == pr.PLineHeight {
		if v, ok := c.compact.GetLineHeight(int(id)); ok {
			return anyOf(v), true
		}
		return pr.AnyValue{}, false
	}
	if v, ok := c.compact.GetLength(p, int(id)); ok {
		return anyOf(v), true
	}
	if v, ok := c.compact.GetDimension(p, int(id)); ok {
		return anyOf(v), true
	}
	if col, ok := c.compact.GetColor(p, int(id)); ok {
		return pr.AnyExact(col), true
	}
	if raw, ok := c.compact.GetEnum(p, int(id)); ok {
		if dec, in := enumDecoders[p]; in {
			if v, valid := dec(raw); valid {
				return pr.AnyExact(v), true
			}
		}
	}
	return pr.AnyValue{}, false
}

// anyOf lifts a typed value back into the heterogeneous form.
func anyOf[T pr.CssProperty](v pr.Value[T]) pr.AnyValue {
	switch v.Kind {
	case pr.Auto:
		return pr.AnyAuto
	case pr.Initial:
		return pr.AnyInitial
	case pr.Inherit:
		return pr.AnyInherit
	}
	return pr.AnyExact(v.V)
}

func enumDecoder[T interface {
	~uint8
	pr.CssProperty
}](numVariants uint8) func(uint8) (pr.CssProperty, bool) {
	return func(raw uint8) (pr.CssProperty, bool) {
		v, ok := pr.EnumFromU8[T](raw, numVariants)
		return v, ok
	}
}

// enumDecoders is the reading counterpart of compact.EnumProperties.
var enumDecoders = map[pr.PropertyType]func(uint8) (pr.CssProperty, bool){
	pr.PDisplay:            enumDecoder[pr.Display](pr.NbDisplay),
	pr.PPosition:           enumDecoder[pr.Position](pr.NbPosition),
	pr.PFloat:              enumDecoder[pr.Float](pr.NbFloat),
	pr.PClear:              enumDecoder[pr.Clear](pr.NbClear),
	pr.PBoxSizing:          enumDecoder[pr.BoxSizing](pr.NbBoxSizing),
	pr.PVisibility:         enumDecoder[pr.Visibility](pr.NbVisibility),
	pr.POverflowX:          enumDecoder[pr.Overflow](pr.NbOverflow),
	pr.POverflowY:          enumDecoder[pr.Overflow](pr.NbOverflow),
	pr.PFlexDirection:      enumDecoder[pr.FlexDirection](pr.NbFlexDirection),
	pr.PFlexWrap:           enumDecoder[pr.FlexWrap](pr.NbFlexWrap),
	pr.PJustifyContent:     enumDecoder[pr.JustifyContent](pr.NbJustifyContent),
	pr.PAlignItems:         enumDecoder[pr.AlignItems](pr.NbAlignItems),
	pr.PAlignContent:       enumDecoder[pr.AlignContent](pr.NbAlignContent),
	pr.PAlignSelf:          enumDecoder[pr.AlignSelf](pr.NbAlignSelf),
	pr.PWhiteSpace:         enumDecoder[pr.WhiteSpace](pr.NbWhiteSpace),
	pr.PDirection:          enumDecoder[pr.Direction](pr.NbDirection),
	pr.PTextAlign:          enumDecoder[pr.TextAlign](pr.NbTextAlign),
	pr.PVerticalAlign:      enumDecoder[pr.VerticalAlign](pr.NbVerticalAlign),
	pr.PFontStyle:          enumDecoder[pr.FontStyle](pr.NbFontStyle),
	pr.PTextDecoration:     enumDecoder[pr.TextDecoration](pr.NbTextDecoration),
	pr.PTextTransform:      enumDecoder[pr.TextTransform](pr.NbTextTransform),
	pr.PCursor:             enumDecoder[pr.Cursor](pr.NbCursor),
	pr.PMixBlendMode:       enumDecoder[pr.MixBlendMode](pr.NbMixBlendMode),
	pr.PBackfaceVisibility: enumDecoder[pr.BackfaceVisibility](pr.NbBackfaceVisibility),
	pr.PBorderTopStyle:     enumDecoder[pr.BorderStyle](pr.NbBorderStyle),
	pr.PBorderRightStyle:   enumDecoder[pr.BorderStyle](pr.NbBorderStyle),
	pr.PBorderBottomStyle:  enumDecoder[pr.BorderStyle](pr.NbBorderStyle),
	pr.PBorderLeftStyle:    enumDecoder[pr.BorderStyle](pr.NbBorderStyle),
}

// lanedProperties lists every property with a packed lane, in pack
// order.
var lanedProperties = buildLanedProperties()

func buildLanedProperties() []pr.PropertyType {
	var out []pr.PropertyType
	out = append(out, compact.I16Properties...)
	out = append(out, compact.DimensionProperties...)
	out = append(out, compact.ColorProperties...)
	for p := range compact.EnumProperties {
		out = append(out, p)
	}
	return append(out, pr.PLineHeight)
}

// packNode refreshes every lane slot of one node from the slow path,
// using the normal interaction state.
func (c *CssPropertyCache) packNode(node *dom.NodeData, id dom.NodeId) {
	for _, p := range lanedProperties {
		c.compact.Set(p, int(id), c.getSlow(node, id, NodeState{}, p))
	}
}

// repackNode refreshes the lanes of a node after an override change.
// Without the node data at hand the fast path cannot be rebuilt, so it
// is dropped until the next restyle.
func (c *CssPropertyCache) repackNode(id dom.NodeId) {
	if c.nodes == nil || int(id) >= len(c.nodes) {
		c.compact = nil
		return
	}
	c.packNode(&c.nodes[id], id)
}
