package properties

// PseudoState is the interaction state a declaration applies to.
type PseudoState uint8

const (
	StateNormal PseudoState = iota
	StateHover
	StateActive
	StateFocus

	NbStates = 4
)

// StatePrecedence lists the pseudo-states from strongest to weakest:
// a focus rule beats an active rule beats a hover rule beats a normal
// one, when several states are active at once.
var StatePrecedence = [NbStates]PseudoState{StateFocus, StateActive, StateHover, StateNormal}

func (s PseudoState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHover:
		return "hover"
	case StateActive:
		return "active"
	case StateFocus:
		return "focus"
	}
	return "<invalid pseudo state>"
}
