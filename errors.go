package automata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference reports a transition or snapshot that references a
	// state id or symbol not present in the owning automaton.
	ErrInvalidReference = errors.New("automata: invalid reference")

	// ErrPrecondition reports an operation whose structural precondition
	// (deterministic, complete, no unreachable states) does not hold.
	ErrPrecondition = errors.New("automata: precondition violated")

	// ErrEmptyAutomaton reports an operation that needs at least one initial
	// state on an automaton that has none.
	ErrEmptyAutomaton = errors.New("automata: no initial state")

	// ErrLimitExceeded reports that a bounded construction (determinization
	// work limit, enumeration word cap) ran past its configured limit.
	ErrLimitExceeded = errors.New("automata: limit exceeded")
)

func errDuplicateState(id string) error {
	return fmt.Errorf("%w: duplicate state %q", ErrInvalidReference, id)
}

func errUnknownState(id string) error {
	return fmt.Errorf("%w: unknown state %q", ErrInvalidReference, id)
}

func errUnknownSymbol(s Symbol) error {
	return fmt.Errorf("%w: symbol %q not in alphabet", ErrInvalidReference, s)
}

func errNotDeterministic(op string) error {
	return fmt.Errorf("%w: %s requires a deterministic automaton", ErrPrecondition, op)
}
