// Package dom holds the minimal document model the cascade consumes:
// node data with inline styles and callbacks, the parent/child/sibling
// hierarchy, and the per-node hints used by selector matching.
package dom

import (
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/utils"
)

// NodeId is a dense index into the node array of a document.
type NodeId int32

// NilNode marks an absent node reference.
const NilNode NodeId = -1

// NodeType classifies an element. Unrecognized tags keep their name in
// NodeData.TagName and classify as Unknown.
type NodeType uint8

const (
	NtUnknown NodeType = iota
	NtHtml
	NtBody
	NtDiv
	NtSpan
	NtP
	NtBr
	NtText
	NtImage
	NtIFrame
	NtUl
	NtOl
	NtLi
	NtH1
	NtH2
	NtH3
	NtH4
	NtH5
	NtH6
	NtA
	NtButton
)

var nodeTypeNames = map[NodeType]string{
	NtHtml: "html", NtBody: "body", NtDiv: "div", NtSpan: "span",
	NtP: "p", NtBr: "br", NtText: "#text", NtImage: "img",
	NtIFrame: "iframe", NtUl: "ul", NtOl: "ol", NtLi: "li",
	NtH1: "h1", NtH2: "h2", NtH3: "h3", NtH4: "h4", NtH5: "h5",
	NtH6: "h6", NtA: "a", NtButton: "button",
}

// NodeTypeByTag maps a lowercase tag name to its type.
var NodeTypeByTag = map[string]NodeType{}

func init() {
	for t, name := range nodeTypeNames {
		NodeTypeByTag[name] = t
	}
}

func (t NodeType) String() string {
	if name, in := nodeTypeNames[t]; in {
		return name
	}
	return "unknown"
}

// EventFilter classifies a callback by the events it receives.
type EventFilter uint8

const (
	FilterWindow EventFilter = iota // window scope events, never targeted at a node
	FilterHover                     // pointer events targeted by hit test
	FilterFocus                     // keyboard focus events
)

// IsInteractive reports whether the callback needs the node to be hit
// testable.
func (f EventFilter) IsInteractive() bool { return f == FilterHover }

// Callback is one event handler attached to a node. Only the filter
// matters to the cascade; the handler itself lives with the event
// system.
type Callback struct {
	Event  string
	Filter EventFilter
}

// TabIndexKind tags a TabIndex variant.
type TabIndexKind uint8

const (
	TabIndexAuto TabIndexKind = iota
	TabIndexNoKeyboardFocus
	TabIndexOverrideInParent
)

// TabIndex declares how a node takes part in keyboard focus order.
type TabIndex struct {
	Index int32 // TabIndexOverrideInParent only
	Kind  TabIndexKind
}

// ContextMenu is the right-click menu attached to a node.
type ContextMenu struct {
	Entries []string
}

// InlineProperty is one declaration of the inline style of a node,
// tagged with the pseudo-state it applies to.
type InlineProperty struct {
	Value pr.AnyValue
	Type  pr.PropertyType
	State pr.PseudoState
}

// NodeData is everything the cascade needs to know about one node.
type NodeData struct {
	TagName     string // only for NtUnknown elements
	Text        string // NtText only
	ImageSource string // NtImage only

	Ids         []string
	Classes     []string
	InlineProps []InlineProperty
	Callbacks   []Callback

	TabIndex    *TabIndex
	ContextMenu *ContextMenu

	Type NodeType
}

// Tag returns the element tag name used for selector matching.
func (n *NodeData) Tag() string {
	if n.Type == NtUnknown {
		return n.TagName
	}
	return n.Type.String()
}

func (n *NodeData) IsText() bool { return n.Type == NtText }

func (n *NodeData) HasClass(class string) bool { return utils.IsIn(n.Classes, class) }

func (n *NodeData) HasId(id string) bool { return utils.IsIn(n.Ids, id) }

// InlineProperty returns the inline declaration for (state, prop), the
// later declaration winning when several apply.
func (n *NodeData) InlineProperty(state pr.PseudoState, prop pr.PropertyType) (pr.AnyValue, bool) {
	for i := len(n.InlineProps) - 1; i >= 0; i-- {
		ip := n.InlineProps[i]
		if ip.State == state && ip.Type == prop {
			return ip.Value, true
		}
	}
	return pr.AnyValue{}, false
}

// HasInlineState reports whether any inline declaration targets a
// non-normal pseudo-state.
func (n *NodeData) HasInlineState() bool {
	for _, ip := range n.InlineProps {
		if ip.State != pr.StateNormal {
			return true
		}
	}
	return false
}

// HasInteractiveCallback reports a callback requiring hit testing.
func (n *NodeData) HasInteractiveCallback() bool {
	for _, cb := range n.Callbacks {
		if cb.Filter.IsInteractive() {
			return true
		}
	}
	return false
}

// HasFocusCallback reports a callback fed by keyboard focus.
func (n *NodeData) HasFocusCallback() bool {
	for _, cb := range n.Callbacks {
		if cb.Filter == FilterFocus {
			return true
		}
	}
	return false
}

// HasNonWindowCallback reports any callback below window scope.
func (n *NodeData) HasNonWindowCallback() bool {
	for _, cb := range n.Callbacks {
		if cb.Filter != FilterWindow {
			return true
		}
	}
	return false
}
