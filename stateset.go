package automata

import (
	"github.com/bits-and-blooms/bitset"
)

// mix32 is the MurmurHash3 32-bit finalizer, mixing one macro-state member
// into a set hash.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}

// frozenSet is an immutable, sorted member set with a precomputed hash. Two
// macro-states are the same derived state iff their frozen sets are equal as
// values; insertion order never matters.
type frozenSet struct {
	members []int // ascending
	hash    uint64
}

func freeze(set *bitset.BitSet) frozenSet {
	f := frozenSet{
		members: make([]int, 0, set.Count()),
		hash:    uint64(set.Count()),
	}
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		f.members = append(f.members, int(s))
		f.hash += uint64(mix32(int(s)))
	}
	return f
}

func (f frozenSet) equal(other frozenSet) bool {
	if len(f.members) != len(other.members) {
		return false
	}
	for i, m := range f.members {
		if other.members[i] != m {
			return false
		}
	}
	return true
}

// setRegistry interns frozen sets, assigning each distinct set a dense id in
// first-seen order. Hash collisions fall back to structural comparison.
type setRegistry struct {
	buckets map[uint64][]int
	sets    []frozenSet
}

func newSetRegistry() *setRegistry {
	return &setRegistry{buckets: make(map[uint64][]int)}
}

// intern returns the id for f, registering it if unseen.
func (r *setRegistry) intern(f frozenSet) (id int, isNew bool) {
	for _, i := range r.buckets[f.hash] {
		if r.sets[i].equal(f) {
			return i, false
		}
	}
	id = len(r.sets)
	r.sets = append(r.sets, f)
	r.buckets[f.hash] = append(r.buckets[f.hash], id)
	return id, true
}

func (r *setRegistry) at(id int) frozenSet {
	return r.sets[id]
}

func (r *setRegistry) size() int {
	return len(r.sets)
}
