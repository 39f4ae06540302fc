package automata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustBuild assembles an automaton, failing the test on any rejected edit.
func mustBuild(t *testing.T, name string, symbols []Symbol, states []State, trans []Transition) *Automaton {
	t.Helper()
	a := New(name, NewAlphabet(symbols...))
	for _, s := range states {
		require.NoError(t, a.AddState(s.ID, s.Initial, s.Final))
	}
	for _, tr := range trans {
		require.NoError(t, a.AddTransition(tr.From, tr.Symbol, tr.To))
	}
	return a
}

// abLang is the running example: alphabet {a,b}, q0 initial, q1 final,
// q0-a->q1, q1-b->q1. Its language is a b*.
func abLang(t *testing.T) *Automaton {
	t.Helper()
	return mustBuild(t, "ab",
		[]Symbol{"a", "b"},
		[]State{{ID: "q0", Initial: true}, {ID: "q1", Final: true}},
		[]Transition{
			{From: "q0", Symbol: "a", To: "q1"},
			{From: "q1", Symbol: "b", To: "q1"},
		})
}

// endsWithA is an NFA over {a,b} accepting words that end in a.
func endsWithA(t *testing.T) *Automaton {
	t.Helper()
	return mustBuild(t, "endsA",
		[]Symbol{"a", "b"},
		[]State{{ID: "s0", Initial: true}, {ID: "s1", Final: true}},
		[]Transition{
			{From: "s0", Symbol: "a", To: "s0"},
			{From: "s0", Symbol: "b", To: "s0"},
			{From: "s0", Symbol: "a", To: "s1"},
		})
}

// containsB is an NFA over {a,b} accepting words with at least one b,
// with an epsilon edge thrown in to exercise closures.
func containsB(t *testing.T) *Automaton {
	t.Helper()
	return mustBuild(t, "hasB",
		[]Symbol{"a", "b"},
		[]State{{ID: "p0", Initial: true}, {ID: "p1"}, {ID: "p2", Final: true}},
		[]Transition{
			{From: "p0", Symbol: "a", To: "p0"},
			{From: "p0", Symbol: "b", To: "p1"},
			{From: "p1", Symbol: Epsilon, To: "p2"},
			{From: "p2", Symbol: "a", To: "p2"},
			{From: "p2", Symbol: "b", To: "p2"},
		})
}

// allWords yields every word over symbols of length <= maxLen, shortest
// first; the sweep the algebra law tests quantify over.
func allWords(symbols []Symbol, maxLen int) [][]Symbol {
	words := [][]Symbol{nil}
	for start, depth := 0, 0; depth < maxLen; depth++ {
		end := len(words)
		for i := start; i < end; i++ {
			for _, s := range symbols {
				next := append(append([]Symbol(nil), words[i]...), s)
				words = append(words, next)
			}
		}
		start = end
	}
	return words
}
