package automata

import (
	"sort"
	"strconv"
	"strings"
)

// Minimize produces the canonical minimal complete DFA for the input's
// language. The input is normalized first — determinized, completed and
// pruned to its reachable states — so any automaton class is accepted. The
// output is unique up to state renaming, which is what makes it usable as an
// equivalence test.
func Minimize(a *Automaton) (*Automaton, error) {
	dfa, err := Determinize(a)
	if err != nil {
		return nil, err
	}
	dfa, err = completeOver(dfa, a.alphabet)
	if err != nil {
		return nil, err
	}
	// Determinize emits only reachable states and Complete's sink is targeted
	// from one of them, so no pruning pass is needed here.
	return refine(dfa)
}

// refine runs partition refinement over a complete DFA with no unreachable
// states: start from the final/non-final split and re-split blocks by their
// per-symbol successor blocks until a full pass changes nothing.
func refine(dfa *Automaton) (*Automaton, error) {
	d := dfa.dense()
	n := len(d.ids)
	if n == 0 {
		return New(dfa.Name+"_minimized", dfa.alphabet.Clone()), nil
	}

	symbols := dfa.alphabet.Symbols()

	// delta[s][k] is the successor of s on symbols[k]; total by completeness.
	delta := make([][]int, n)
	for s := 0; s < n; s++ {
		delta[s] = make([]int, len(symbols))
		for k, symbol := range symbols {
			delta[s][k] = d.succ[s][symbol][0]
		}
	}

	block := make([]int, n)
	numBlocks := 0
	hasFinal, hasNonFinal := false, false
	for s := 0; s < n; s++ {
		if d.final.Test(uint(s)) {
			hasFinal = true
		} else {
			hasNonFinal = true
		}
	}
	if hasFinal && hasNonFinal {
		numBlocks = 2
		for s := 0; s < n; s++ {
			if d.final.Test(uint(s)) {
				block[s] = 1
			}
		}
	} else {
		numBlocks = 1
	}

	for {
		// Signature of a state: its block plus the blocks its successors land
		// in, one per symbol. States split when signatures diverge.
		next := make([]int, n)
		index := make(map[string]int)
		var sb strings.Builder
		for s := 0; s < n; s++ {
			sb.Reset()
			sb.WriteString(strconv.Itoa(block[s]))
			for k := range symbols {
				sb.WriteByte(',')
				sb.WriteString(strconv.Itoa(block[delta[s][k]]))
			}
			sig := sb.String()
			id, ok := index[sig]
			if !ok {
				id = len(index)
				index[sig] = id
			}
			next[s] = id
		}
		if len(index) == numBlocks {
			break
		}
		numBlocks = len(index)
		block = next
	}

	// One output state per block, named from its sorted members; transitions
	// lift from any representative since block members behave identically.
	members := make([][]int, numBlocks)
	for s := 0; s < n; s++ {
		members[block[s]] = append(members[block[s]], s)
	}
	names := make([]string, numBlocks)
	for b, ms := range members {
		ids := make([]string, len(ms))
		for i, s := range ms {
			ids[i] = d.ids[s]
		}
		sort.Strings(ids)
		names[b] = "{" + strings.Join(ids, ",") + "}"
	}

	out := New(dfa.Name+"_minimized", dfa.alphabet.Clone())
	initialBlock := block[d.initial[0]]
	for b, ms := range members {
		if err := out.AddState(names[b], b == initialBlock, d.final.Test(uint(ms[0]))); err != nil {
			return nil, err
		}
	}
	for b, ms := range members {
		rep := ms[0]
		for k, symbol := range symbols {
			if err := out.AddTransition(names[b], symbol, names[block[delta[rep][k]]]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// RemoveUnreachable returns a copy holding only the states reachable from the
// initial states, with transitions between them.
func RemoveUnreachable(a *Automaton) *Automaton {
	reachable := make(map[string]struct{})
	for _, id := range a.Reachable() {
		reachable[id] = struct{}{}
	}
	out := New(a.Name+"_simplified", a.alphabet.Clone())
	for _, s := range a.States() {
		if _, ok := reachable[s.ID]; ok {
			_ = out.AddState(s.ID, s.Initial, s.Final)
		}
	}
	for _, t := range a.Transitions() {
		if _, ok := reachable[t.From]; !ok {
			continue
		}
		if _, ok := reachable[t.To]; !ok {
			continue
		}
		_ = out.AddTransition(t.From, t.Symbol, t.To)
	}
	return out
}
