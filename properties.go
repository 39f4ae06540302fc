package automata

// IsDeterministic reports whether the automaton is a DFA: exactly one initial
// state, no epsilon transitions, and at most one outgoing transition per
// (state, symbol) pair.
func (a *Automaton) IsDeterministic() bool {
	if len(a.InitialStates()) != 1 {
		return false
	}
	seen := make(map[Transition]struct{}, len(a.trans))
	for _, t := range a.trans {
		if t.IsEpsilon() {
			return false
		}
		key := Transition{From: t.From, Symbol: t.Symbol}
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// IsComplete reports whether the automaton is deterministic and every
// reachable state has exactly one outgoing transition for every alphabet
// symbol.
func (a *Automaton) IsComplete() bool {
	if !a.IsDeterministic() {
		return false
	}
	reachable := a.Reachable()
	for _, id := range reachable {
		for _, symbol := range a.alphabet.Symbols() {
			if len(a.NextStates(id, symbol)) == 0 {
				return false
			}
		}
	}
	return true
}

// IsMinimal reports whether the automaton is a minimal complete DFA: it must
// be deterministic and complete, have no unreachable states, and minimizing
// it must not change the state count.
func (a *Automaton) IsMinimal() bool {
	if !a.IsComplete() {
		return false
	}
	if len(a.Reachable()) != a.NumStates() {
		return false
	}
	m, err := Minimize(a)
	if err != nil {
		return false
	}
	return m.NumStates() == a.NumStates()
}
