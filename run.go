package automata

// Result is the outcome of simulating one word: the verdict plus the trace
// of active-state sets, one per consumed prefix starting with the empty
// prefix. The trace is what a step-by-step viewer animates.
type Result struct {
	Accepted bool
	Steps    [][]string
}

// Simulate runs a word against the automaton without assuming determinism:
// the active set starts as the epsilon closure of the initial states and
// advances through the epsilon-closed successor sets, symbol by symbol. The
// word is accepted iff the final active set contains a final state. When the
// active set empties the run stops early, with the empty step kept in the
// trace. A symbol outside the alphabet empties the active set.
func Simulate(a *Automaton, word []Symbol) Result {
	d := a.dense()
	set := d.start()
	res := Result{Steps: [][]string{d.names(set)}}

	for _, symbol := range word {
		if !a.alphabet.Contains(symbol) {
			res.Steps = append(res.Steps, nil)
			return res
		}
		set = d.move(set, symbol)
		res.Steps = append(res.Steps, d.names(set))
		if !set.Any() {
			return res
		}
	}
	res.Accepted = d.accepting(set)
	return res
}

// Accepts reports whether the automaton accepts the word.
func Accepts(a *Automaton, word []Symbol) bool {
	return Simulate(a, word).Accepted
}

// Run is Accepts over a plain string, one symbol per rune.
func Run(a *Automaton, s string) bool {
	return Accepts(a, Word(s))
}

// Word splits a string into single-rune symbols.
func Word(s string) []Symbol {
	var out []Symbol
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}
