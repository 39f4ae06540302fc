package automata

// State is one automaton state: an id unique within its automaton plus the
// initial/final marking.
type State struct {
	ID      string
	Initial bool
	Final   bool
}

// Transition is a labeled edge. Symbol may be Epsilon, in which case the
// edge is traversable without consuming input.
type Transition struct {
	From   string
	Symbol Symbol
	To     string
}

// IsEpsilon reports whether the transition consumes no input.
func (t Transition) IsEpsilon() bool {
	return t.Symbol == Epsilon
}
