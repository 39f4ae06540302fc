package automata

// Symbol is one atomic input token, typically a single character.
type Symbol string

// Epsilon is the reserved marker for transitions that consume no input.
// It is never a member of an Alphabet.
const Epsilon Symbol = "ε"

// Alphabet is an ordered, duplicate-free set of symbols. The order fixes
// iteration and enumeration tie-breaks only; it has no language meaning.
type Alphabet struct {
	symbols []Symbol
	index   map[Symbol]int
}

// NewAlphabet builds an alphabet from symbols, dropping duplicates and the
// epsilon marker while preserving first-seen order.
func NewAlphabet(symbols ...Symbol) *Alphabet {
	a := &Alphabet{index: make(map[Symbol]int, len(symbols))}
	for _, s := range symbols {
		a.add(s)
	}
	return a
}

func (a *Alphabet) add(s Symbol) {
	if s == Epsilon {
		return
	}
	if _, ok := a.index[s]; ok {
		return
	}
	a.index[s] = len(a.symbols)
	a.symbols = append(a.symbols, s)
}

// Contains reports whether s is a member. Epsilon is never a member.
func (a *Alphabet) Contains(s Symbol) bool {
	_, ok := a.index[s]
	return ok
}

// Index returns the position of s in the fixed order, or -1.
func (a *Alphabet) Index(s Symbol) int {
	if i, ok := a.index[s]; ok {
		return i
	}
	return -1
}

// Symbols returns the members in their fixed order. The caller must not
// modify the returned slice.
func (a *Alphabet) Symbols() []Symbol {
	return a.symbols
}

func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Clone returns an independent copy.
func (a *Alphabet) Clone() *Alphabet {
	return NewAlphabet(a.symbols...)
}

// unionAlphabet merges two alphabets, keeping a's order first.
func unionAlphabet(a, b *Alphabet) *Alphabet {
	u := NewAlphabet(a.symbols...)
	for _, s := range b.symbols {
		u.add(s)
	}
	return u
}
