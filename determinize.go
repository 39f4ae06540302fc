package automata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// DefaultDeterminizeWorkLimit bounds how much effort Determinize will spend
// before giving up with ErrLimitExceeded. The macro-state space is bounded by
// 2^n, so pathological inputs can blow up; this keeps the construction
// auditable.
const DefaultDeterminizeWorkLimit = 10000

// Determinize converts any automaton (NFA, possibly with epsilon transitions)
// into an equivalent DFA by subset construction, using the default work
// limit. The result is deterministic but not necessarily complete, and
// contains only reachable states. An input with no initial state yields an
// automaton with no states (the empty language).
func Determinize(a *Automaton) (*Automaton, error) {
	return DeterminizeWithLimit(a, DefaultDeterminizeWorkLimit)
}

// DeterminizeWithLimit is Determinize with an explicit work limit, counted in
// processed (macro-state, symbol) pairs.
func DeterminizeWithLimit(a *Automaton, workLimit int) (*Automaton, error) {
	d := a.dense()
	out := New(a.Name+"_DFA", a.alphabet.Clone())
	if len(d.initial) == 0 {
		return out, nil
	}

	reg := newSetRegistry()
	names := make([]string, 0, 8) // registry id -> macro-state id

	start := d.start()
	startID, _ := reg.intern(freeze(start))
	names = append(names, macroStateName(d, start))
	if err := out.AddState(names[startID], true, d.accepting(start)); err != nil {
		return nil, err
	}

	type item struct {
		set *bitset.BitSet
		id  int
	}
	worklist := []item{{set: start, id: startID}}
	work := 0

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, symbol := range a.alphabet.Symbols() {
			work++
			if work > workLimit {
				return nil, fmt.Errorf("%w: determinization exceeded %d work items",
					ErrLimitExceeded, workLimit)
			}

			next := d.move(cur.set, symbol)
			if !next.Any() {
				continue
			}
			id, isNew := reg.intern(freeze(next))
			if isNew {
				names = append(names, macroStateName(d, next))
				if err := out.AddState(names[id], false, d.accepting(next)); err != nil {
					return nil, err
				}
				worklist = append(worklist, item{set: next, id: id})
			}
			if err := out.AddTransition(names[cur.id], symbol, names[id]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// macroStateName names a macro-state from the sorted ids of its members,
// e.g. {q0,q2}.
func macroStateName(d *denseView, set *bitset.BitSet) string {
	members := d.names(set)
	sort.Strings(members)
	return "{" + strings.Join(members, ",") + "}"
}
