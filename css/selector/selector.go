// Package selector models parsed CSS selector paths: the compound parts
// (tag, class, id, pseudo-classes) joined by combinators, with their
// specificity and the pseudo-state bucket they contribute to.
//
// Matching a path against a document is the cascade engine's concern;
// this package only describes paths.
package selector

import (
	"github.com/andybalholm/cascadia"

	pr "github.com/retainedui/cascade/css/properties"
)

// Item is one element of a selector path, read left to right.
type Item interface {
	isItem()
}

// Universal is the `*` selector.
type Universal struct{}

// Tag matches an element by tag name.
type Tag struct {
	Name string
}

// Class matches one class of the element class list.
type Class struct {
	Name string
}

// Id matches the element id.
type Id struct {
	Name string
}

// Combinator links two compound selectors.
type Combinator uint8

const (
	Descendant      Combinator = iota // whitespace
	Child                             // >
	AdjacentSibling                   // +
	GeneralSibling                    // ~
)

func (Universal) isItem()  {}
func (Tag) isItem()        {}
func (Class) isItem()      {}
func (Id) isItem()         {}
func (Combinator) isItem() {}
func (Pseudo) isItem()     {}

// PseudoKind enumerates the supported pseudo-classes.
type PseudoKind uint8

const (
	PseudoFirst PseudoKind = iota
	PseudoLast
	PseudoNthChild
	PseudoHover
	PseudoActive
	PseudoFocus
)

// Nth is the An+B argument of :nth-child, matching the 1-based indices
// {A*n + B | n >= 0}. even is (2, 0), odd is (2, 1), a plain number x is
// (0, x).
type Nth struct {
	A, B int
}

// Matches reports whether the 1-based child index is selected.
func (p Nth) Matches(index int) bool {
	if p.A == 0 {
		return index == p.B
	}
	d := index - p.B
	if p.A > 0 {
		return d >= 0 && d%p.A == 0
	}
	return d <= 0 && d%p.A == 0
}

// Pseudo is a pseudo-class selector part.
type Pseudo struct {
	Nth  Nth // PseudoNthChild only
	Kind PseudoKind
}

// IsInteractive reports whether the pseudo-class depends on the runtime
// interaction state rather than on the document structure.
func (p Pseudo) IsInteractive() bool {
	switch p.Kind {
	case PseudoHover, PseudoActive, PseudoFocus:
		return true
	}
	return false
}

// State returns the pseudo-state bucket an interactive pseudo-class
// selects.
func (p Pseudo) State() pr.PseudoState {
	switch p.Kind {
	case PseudoHover:
		return pr.StateHover
	case PseudoActive:
		return pr.StateActive
	case PseudoFocus:
		return pr.StateFocus
	}
	return pr.StateNormal
}

// Path is a full selector, such as `div.wrapper > p:hover`.
type Path struct {
	Items []Item
}

// Specificity computes the (id, class, type) specificity triple.
// Pseudo-classes count as classes.
func (p Path) Specificity() cascadia.Specificity {
	var s cascadia.Specificity
	for _, it := range p.Items {
		switch it.(type) {
		case Id:
			s[0]++
		case Class, Pseudo:
			s[1]++
		case Tag:
			s[2]++
		}
	}
	return s
}

// StateBucket returns the pseudo-state bucket this path feeds: the
// state of a trailing interactive pseudo-class, or normal. Interactive
// pseudo-classes anywhere but in the last compound do not select a
// bucket and make the path unmatchable.
func (p Path) StateBucket() pr.PseudoState {
	if len(p.Items) == 0 {
		return pr.StateNormal
	}
	if ps, ok := p.Items[len(p.Items)-1].(Pseudo); ok && ps.IsInteractive() {
		return ps.State()
	}
	return pr.StateNormal
}

// Groups splits the path into compound selectors, rightmost first, each
// carrying the combinator that links it to the group on its left.
// The leftmost group reports Descendant.
func (p Path) Groups() []Group {
	var out []Group
	end := len(p.Items)
	for i := len(p.Items) - 1; i >= 0; i-- {
		if c, ok := p.Items[i].(Combinator); ok {
			out = append(out, Group{Items: p.Items[i+1 : end], LinkLeft: c, HasLink: true})
			end = i
		}
	}
	out = append(out, Group{Items: p.Items[:end]})
	return out
}

// Group is one compound selector of a path. LinkLeft is the combinator
// between this group and the one to its left in source order; valid
// only when HasLink is set.
type Group struct {
	Items    []Item
	LinkLeft Combinator
	HasLink  bool
}

func (p Path) String() string {
	out := ""
	for _, it := range p.Items {
		switch v := it.(type) {
		case Universal:
			out += "*"
		case Tag:
			out += v.Name
		case Class:
			out += "." + v.Name
		case Id:
			out += "#" + v.Name
		case Combinator:
			switch v {
			case Child:
				out += " > "
			case AdjacentSibling:
				out += " + "
			case GeneralSibling:
				out += " ~ "
			default:
				out += " "
			}
		case Pseudo:
			out += ":" + v.name()
		}
	}
	return out
}

func (p Pseudo) name() string {
	switch p.Kind {
	case PseudoFirst:
		return "first-child"
	case PseudoLast:
		return "last-child"
	case PseudoNthChild:
		return "nth-child(...)"
	case PseudoHover:
		return "hover"
	case PseudoActive:
		return "active"
	case PseudoFocus:
		return "focus"
	}
	return "<invalid pseudo>"
}
