package automata

// Union returns an automaton accepting every word accepted by a or by b.
// Both inputs are determinized and completed over the union of the two
// alphabets, then combined by product construction; only reachable pair
// states are emitted.
func Union(a, b *Automaton) (*Automaton, error) {
	return product(a, b, a.Name+"|"+b.Name, func(af, bf bool) bool { return af || bf })
}

// Intersect returns an automaton accepting every word accepted by both a
// and b, built like Union with conjunctive finality.
func Intersect(a, b *Automaton) (*Automaton, error) {
	return product(a, b, a.Name+"&"+b.Name, func(af, bf bool) bool { return af && bf })
}

// product is the pair construction shared by Union and Intersect.
func product(a, b *Automaton, name string, final func(aFinal, bFinal bool) bool) (*Automaton, error) {
	alphabet := unionAlphabet(a.alphabet, b.alphabet)

	da, err := Determinize(a)
	if err != nil {
		return nil, err
	}
	if da, err = completeOver(da, alphabet); err != nil {
		return nil, err
	}
	db, err := Determinize(b)
	if err != nil {
		return nil, err
	}
	if db, err = completeOver(db, alphabet); err != nil {
		return nil, err
	}

	out := New(name, alphabet)
	type pair struct{ p, q string }
	pairName := func(pr pair) string { return "(" + pr.p + "," + pr.q + ")" }

	start := pair{p: da.InitialStates()[0].ID, q: db.InitialStates()[0].ID}
	seen := map[pair]struct{}{start: {}}
	worklist := []pair{start}

	sp, _ := da.State(start.p)
	sq, _ := db.State(start.q)
	if err := out.AddState(pairName(start), true, final(sp.Final, sq.Final)); err != nil {
		return nil, err
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, symbol := range alphabet.Symbols() {
			// Both operands are complete, so each side has exactly one successor.
			next := pair{
				p: da.NextStates(cur.p, symbol)[0],
				q: db.NextStates(cur.q, symbol)[0],
			}
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				np, _ := da.State(next.p)
				nq, _ := db.State(next.q)
				if err := out.AddState(pairName(next), false, final(np.Final, nq.Final)); err != nil {
					return nil, err
				}
				worklist = append(worklist, next)
			}
			if err := out.AddTransition(pairName(cur), symbol, pairName(next)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Complement returns an automaton accepting exactly the words a rejects,
// relative to a's alphabet. The input is determinized and completed first
// (the documented policy for non-complete inputs), then every state's final
// flag is flipped.
func Complement(a *Automaton) (*Automaton, error) {
	dfa, err := Determinize(a)
	if err != nil {
		return nil, err
	}
	if dfa, err = completeOver(dfa, a.alphabet); err != nil {
		return nil, err
	}
	out := New(dfa.Name+"_complement", dfa.alphabet.Clone())
	for _, s := range dfa.States() {
		if err := out.AddState(s.ID, s.Initial, !s.Final); err != nil {
			return nil, err
		}
	}
	for _, t := range dfa.Transitions() {
		if err := out.AddTransition(t.From, t.Symbol, t.To); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Equivalent reports whether a and b accept the same language. Both sides
// are brought to their canonical form — the minimal complete DFA over the
// union alphabet — and compared by graph isomorphism, never by comparing
// state names.
func Equivalent(a, b *Automaton) (bool, error) {
	alphabet := unionAlphabet(a.alphabet, b.alphabet)
	ma, err := canonicalOver(a, alphabet)
	if err != nil {
		return false, err
	}
	mb, err := canonicalOver(b, alphabet)
	if err != nil {
		return false, err
	}
	return isomorphic(ma, mb, alphabet), nil
}

// canonicalOver minimizes a against an explicit alphabet.
func canonicalOver(a *Automaton, alphabet *Alphabet) (*Automaton, error) {
	dfa, err := Determinize(a)
	if err != nil {
		return nil, err
	}
	if dfa, err = completeOver(dfa, alphabet); err != nil {
		return nil, err
	}
	return refine(dfa)
}

// isomorphic checks two minimal complete DFAs over the same alphabet for a
// structure-preserving bijection, walking both in lockstep from their
// initial states.
func isomorphic(a, b *Automaton, alphabet *Alphabet) bool {
	if a.NumStates() != b.NumStates() {
		return false
	}
	if a.NumStates() == 0 {
		return true
	}
	startA := a.InitialStates()[0].ID
	startB := b.InitialStates()[0].ID

	mapping := map[string]string{startA: startB}
	inverse := map[string]string{startB: startA}
	worklist := []string{startA}
	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		q := mapping[p]
		sp, _ := a.State(p)
		sq, _ := b.State(q)
		if sp.Final != sq.Final {
			return false
		}
		for _, symbol := range alphabet.Symbols() {
			np := a.NextStates(p, symbol)[0]
			nq := b.NextStates(q, symbol)[0]
			if mapped, ok := mapping[np]; ok {
				if mapped != nq {
					return false
				}
				continue
			}
			if _, taken := inverse[nq]; taken {
				return false
			}
			mapping[np] = nq
			inverse[nq] = np
			worklist = append(worklist, np)
		}
	}
	return len(mapping) == a.NumStates()
}
