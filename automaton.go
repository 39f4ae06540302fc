package automata

import (
	"github.com/bits-and-blooms/bitset"
)

// Automaton aggregates states, an alphabet and transitions. One unified
// structure covers DFAs, NFAs and ε-NFAs; IsDeterministic / IsComplete /
// IsMinimal classify a given value on demand. States and transitions are
// exclusively owned: transformations build fresh automata and never share
// state identities with their input.
type Automaton struct {
	Name string

	alphabet *Alphabet
	states   map[string]*State
	order    []string // state ids in insertion order
	edges    map[Transition]struct{}
	trans    []Transition // insertion order
}

// New creates an empty automaton over the given alphabet. A nil alphabet is
// treated as empty.
func New(name string, alphabet *Alphabet) *Automaton {
	if alphabet == nil {
		alphabet = NewAlphabet()
	}
	return &Automaton{
		Name:     name,
		alphabet: alphabet,
		states:   make(map[string]*State),
		edges:    make(map[Transition]struct{}),
	}
}

// Alphabet returns the automaton's alphabet.
func (a *Automaton) Alphabet() *Alphabet {
	return a.alphabet
}

// AddState adds a state. A duplicate id is an ErrInvalidReference.
func (a *Automaton) AddState(id string, initial, final bool) error {
	if _, ok := a.states[id]; ok {
		return errDuplicateState(id)
	}
	a.states[id] = &State{ID: id, Initial: initial, Final: final}
	a.order = append(a.order, id)
	return nil
}

// RemoveState removes a state and every transition touching it, so no
// dangling edge can ever be observed. Removing an unknown id is a no-op.
func (a *Automaton) RemoveState(id string) {
	if _, ok := a.states[id]; !ok {
		return
	}
	delete(a.states, id)
	for i, s := range a.order {
		if s == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	kept := a.trans[:0]
	for _, t := range a.trans {
		if t.From == id || t.To == id {
			delete(a.edges, t)
			continue
		}
		kept = append(kept, t)
	}
	a.trans = kept
}

// SetInitial sets or clears the initial flag of a state.
func (a *Automaton) SetInitial(id string, initial bool) error {
	s, ok := a.states[id]
	if !ok {
		return errUnknownState(id)
	}
	s.Initial = initial
	return nil
}

// SetFinal sets or clears the final flag of a state.
func (a *Automaton) SetFinal(id string, final bool) error {
	s, ok := a.states[id]
	if !ok {
		return errUnknownState(id)
	}
	s.Final = final
	return nil
}

// AddTransition adds an edge. Both endpoints must exist and the symbol must
// be in the alphabet or be Epsilon; otherwise ErrInvalidReference. Adding an
// edge that already exists is a no-op.
func (a *Automaton) AddTransition(from string, symbol Symbol, to string) error {
	if _, ok := a.states[from]; !ok {
		return errUnknownState(from)
	}
	if _, ok := a.states[to]; !ok {
		return errUnknownState(to)
	}
	if symbol != Epsilon && !a.alphabet.Contains(symbol) {
		return errUnknownSymbol(symbol)
	}
	t := Transition{From: from, Symbol: symbol, To: to}
	if _, ok := a.edges[t]; ok {
		return nil
	}
	a.edges[t] = struct{}{}
	a.trans = append(a.trans, t)
	return nil
}

// RemoveTransition removes an edge if present.
func (a *Automaton) RemoveTransition(from string, symbol Symbol, to string) {
	t := Transition{From: from, Symbol: symbol, To: to}
	if _, ok := a.edges[t]; !ok {
		return
	}
	delete(a.edges, t)
	for i, e := range a.trans {
		if e == t {
			a.trans = append(a.trans[:i], a.trans[i+1:]...)
			return
		}
	}
}

// State returns a copy of the state with the given id.
func (a *Automaton) State(id string) (State, bool) {
	s, ok := a.states[id]
	if !ok {
		return State{}, false
	}
	return *s, true
}

// States returns all states in insertion order.
func (a *Automaton) States() []State {
	out := make([]State, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, *a.states[id])
	}
	return out
}

// Transitions returns all transitions in insertion order.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, len(a.trans))
	copy(out, a.trans)
	return out
}

// InitialStates returns the initial states in insertion order.
func (a *Automaton) InitialStates() []State {
	var out []State
	for _, id := range a.order {
		if a.states[id].Initial {
			out = append(out, *a.states[id])
		}
	}
	return out
}

// InitialState returns the start state of a deterministic automaton: the
// unique state marked initial. With no initial state it reports
// ErrEmptyAutomaton; callers that prefer the empty-language reading (every
// read-only query here does) use InitialStates instead.
func (a *Automaton) InitialState() (State, error) {
	initial := a.InitialStates()
	if len(initial) == 0 {
		return State{}, ErrEmptyAutomaton
	}
	return initial[0], nil
}

// FinalStates returns the final states in insertion order.
func (a *Automaton) FinalStates() []State {
	var out []State
	for _, id := range a.order {
		if a.states[id].Final {
			out = append(out, *a.states[id])
		}
	}
	return out
}

// NumStates reports how many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.order)
}

// NumTransitions reports how many transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	return len(a.trans)
}

// TransitionsFrom returns the transitions leaving a state, in insertion order.
func (a *Automaton) TransitionsFrom(id string) []Transition {
	var out []Transition
	for _, t := range a.trans {
		if t.From == id {
			out = append(out, t)
		}
	}
	return out
}

// NextStates returns the distinct targets reachable from id by one transition
// on symbol (which may be Epsilon), in insertion order.
func (a *Automaton) NextStates(id string, symbol Symbol) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range a.trans {
		if t.From != id || t.Symbol != symbol {
			continue
		}
		if _, ok := seen[t.To]; ok {
			continue
		}
		seen[t.To] = struct{}{}
		out = append(out, t.To)
	}
	return out
}

// Clone returns a deep copy sharing nothing with the receiver.
func (a *Automaton) Clone() *Automaton {
	c := New(a.Name, a.alphabet.Clone())
	for _, id := range a.order {
		s := a.states[id]
		_ = c.AddState(s.ID, s.Initial, s.Final)
	}
	for _, t := range a.trans {
		_ = c.AddTransition(t.From, t.Symbol, t.To)
	}
	return c
}

// Reachable returns the ids of all states reachable from the initial states,
// following symbol and epsilon edges, in insertion order.
func (a *Automaton) Reachable() []string {
	d := a.dense()
	seen := bitset.New(uint(len(d.ids)))
	worklist := make([]int, 0, len(d.ids))
	for _, s := range d.initial {
		if !seen.Test(uint(s)) {
			seen.Set(uint(s))
			worklist = append(worklist, s)
		}
	}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		for _, succ := range d.out[s] {
			if !seen.Test(uint(succ)) {
				seen.Set(uint(succ))
				worklist = append(worklist, succ)
			}
		}
	}
	return d.names(seen)
}

// CoReachable returns the ids of all states from which some final state can
// be reached, in insertion order.
func (a *Automaton) CoReachable() []string {
	d := a.dense()
	in := make([][]int, len(d.ids))
	for s, succs := range d.out {
		for _, succ := range succs {
			in[succ] = append(in[succ], s)
		}
	}
	seen := bitset.New(uint(len(d.ids)))
	worklist := make([]int, 0, len(d.ids))
	for s, id := range d.ids {
		if a.states[id].Final {
			seen.Set(uint(s))
			worklist = append(worklist, s)
		}
	}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		for _, pred := range in[s] {
			if !seen.Test(uint(pred)) {
				seen.Set(uint(pred))
				worklist = append(worklist, pred)
			}
		}
	}
	return d.names(seen)
}

// HasAcceptingPath reports whether any final state is reachable from an
// initial state, i.e. whether the language is non-empty.
func (a *Automaton) HasAcceptingPath() bool {
	for _, id := range a.Reachable() {
		if a.states[id].Final {
			return true
		}
	}
	return false
}

// denseView indexes states densely so the worklist algorithms can run on
// bitsets instead of id strings.
type denseView struct {
	ids []string       // dense index -> id, insertion order
	idx map[string]int // id -> dense index

	initial []int
	final   *bitset.BitSet
	eps     [][]int            // epsilon successors per state
	succ    []map[Symbol][]int // symbol successors per state
	out     [][]int            // all successors per state
}

func (a *Automaton) dense() *denseView {
	n := len(a.order)
	d := &denseView{
		ids:   make([]string, n),
		idx:   make(map[string]int, n),
		final: bitset.New(uint(n)),
		eps:   make([][]int, n),
		succ:  make([]map[Symbol][]int, n),
		out:   make([][]int, n),
	}
	copy(d.ids, a.order)
	for i, id := range d.ids {
		d.idx[id] = i
		s := a.states[id]
		if s.Initial {
			d.initial = append(d.initial, i)
		}
		if s.Final {
			d.final.Set(uint(i))
		}
		d.succ[i] = make(map[Symbol][]int)
	}
	for _, t := range a.trans {
		from, to := d.idx[t.From], d.idx[t.To]
		d.out[from] = append(d.out[from], to)
		if t.Symbol == Epsilon {
			d.eps[from] = append(d.eps[from], to)
		} else {
			d.succ[from][t.Symbol] = append(d.succ[from][t.Symbol], to)
		}
	}
	return d
}

// closure expands set in place to its epsilon closure.
func (d *denseView) closure(set *bitset.BitSet) {
	worklist := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		worklist = append(worklist, int(s))
	}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		for _, succ := range d.eps[s] {
			if !set.Test(uint(succ)) {
				set.Set(uint(succ))
				worklist = append(worklist, succ)
			}
		}
	}
}

// start returns the epsilon closure of the initial states.
func (d *denseView) start() *bitset.BitSet {
	set := bitset.New(uint(len(d.ids)))
	for _, s := range d.initial {
		set.Set(uint(s))
	}
	d.closure(set)
	return set
}

// move returns the epsilon-closed one-symbol successor set of set.
func (d *denseView) move(set *bitset.BitSet, symbol Symbol) *bitset.BitSet {
	next := bitset.New(uint(len(d.ids)))
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		for _, succ := range d.succ[s][symbol] {
			next.Set(uint(succ))
		}
	}
	d.closure(next)
	return next
}

// accepting reports whether set contains a final state.
func (d *denseView) accepting(set *bitset.BitSet) bool {
	return set.Intersection(d.final).Any()
}

// names maps a dense set back to state ids in insertion order.
func (d *denseView) names(set *bitset.BitSet) []string {
	out := make([]string, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		out = append(out, d.ids[s])
	}
	return out
}
