// Package automata implements finite automata (DFA, NFA, ε-NFA) over an
// arbitrary symbol alphabet: construction and mutation, structural property
// analysis, subset-construction determinization, sink completion,
// partition-refinement minimization, language algebra (union, intersection,
// complement, equivalence), word simulation with step traces, and bounded
// language enumeration.
//
// All classes of automaton share one data structure; every algorithm states
// its precondition (deterministic, complete) and either enforces it with an
// error or normalizes its input first. Transformations always return a fresh
// Automaton and never mutate or alias their input.
package automata
