package automata

// Complete makes a deterministic automaton total: a synthetic non-final sink
// state absorbs every missing (state, symbol) pair and loops to itself on all
// symbols. The input must be deterministic (ErrPrecondition otherwise); an
// input with no initial state denotes the empty language and yields the
// canonical one-state empty-language DFA. An already-complete input comes
// back as an equivalent copy, making the operation idempotent.
func Complete(a *Automaton) (*Automaton, error) {
	return completeOver(a, a.alphabet)
}

// completeOver completes a against a superset alphabet; the language algebra
// uses it to align both operands on the union alphabet before the product.
func completeOver(a *Automaton, alphabet *Alphabet) (*Automaton, error) {
	if len(a.InitialStates()) == 0 {
		return emptyLanguageDFA(a.Name, alphabet), nil
	}
	if !a.IsDeterministic() {
		return nil, errNotDeterministic("Complete")
	}
	if isCompleteOver(a, alphabet) {
		return a.Clone(), nil
	}

	out := New(a.Name+"_complete", alphabet.Clone())
	for _, s := range a.States() {
		if err := out.AddState(s.ID, s.Initial, s.Final); err != nil {
			return nil, err
		}
	}
	sink := sinkName(a)
	if err := out.AddState(sink, false, false); err != nil {
		return nil, err
	}
	for _, t := range a.Transitions() {
		if err := out.AddTransition(t.From, t.Symbol, t.To); err != nil {
			return nil, err
		}
	}
	for _, s := range a.States() {
		for _, symbol := range alphabet.Symbols() {
			if len(a.NextStates(s.ID, symbol)) == 0 {
				if err := out.AddTransition(s.ID, symbol, sink); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, symbol := range alphabet.Symbols() {
		if err := out.AddTransition(sink, symbol, sink); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// isCompleteOver is IsComplete against an explicit alphabet.
func isCompleteOver(a *Automaton, alphabet *Alphabet) bool {
	if !a.IsDeterministic() {
		return false
	}
	for _, id := range a.Reachable() {
		for _, symbol := range alphabet.Symbols() {
			if len(a.NextStates(id, symbol)) == 0 {
				return false
			}
		}
	}
	return true
}

// sinkName picks the sink id, dodging a user state that is already named
// "sink".
func sinkName(a *Automaton) string {
	name := "sink"
	for {
		if _, ok := a.State(name); !ok {
			return name
		}
		name += "'"
	}
}

// emptyLanguageDFA is the canonical complete DFA accepting nothing: a single
// initial, non-final state looping to itself on every symbol.
func emptyLanguageDFA(name string, alphabet *Alphabet) *Automaton {
	out := New(name+"_complete", alphabet.Clone())
	_ = out.AddState("sink", true, false)
	for _, symbol := range alphabet.Symbols() {
		_ = out.AddTransition("sink", symbol, "sink")
	}
	return out
}
