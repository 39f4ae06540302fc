package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Enumerate lists every accepted word of length at most maxLen, in
// non-decreasing length order with ties broken by the alphabet's fixed
// symbol order. Words are the concatenation of their symbols. The traversal
// is a breadth-first walk over the active-state-set space — the same
// transition function Simulate uses — so nondeterminism and epsilon
// transitions need no special handling.
func Enumerate(a *Automaton, maxLen int) ([]string, error) {
	return EnumerateWithLimit(a, maxLen, 0)
}

// EnumerateWithLimit is Enumerate with a cap on the number of accepted
// words; it fails with ErrLimitExceeded when more than maxWords accepted
// words exist within the length bound. maxWords <= 0 means no cap.
func EnumerateWithLimit(a *Automaton, maxLen, maxWords int) ([]string, error) {
	d := a.dense()

	type item struct {
		word  string
		depth int // in symbols, not bytes
		set   *bitset.BitSet
	}
	start := d.start()
	if !start.Any() {
		return nil, nil
	}
	worklist := []item{{set: start}}
	var accepted []string

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		if d.accepting(cur.set) {
			if maxWords > 0 && len(accepted) == maxWords {
				return nil, fmt.Errorf("%w: more than %d accepted words of length <= %d",
					ErrLimitExceeded, maxWords, maxLen)
			}
			accepted = append(accepted, cur.word)
		}
		if cur.depth >= maxLen {
			continue
		}
		for _, symbol := range a.alphabet.Symbols() {
			next := d.move(cur.set, symbol)
			if !next.Any() {
				continue
			}
			worklist = append(worklist, item{word: cur.word + string(symbol), depth: cur.depth + 1, set: next})
		}
	}
	return accepted, nil
}
