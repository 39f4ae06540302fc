package automata

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot is the structural view of an automaton that external
// collaborators (editors, renderers, persistence) serialize. The schema is
//
//	{ "name": ..., "alphabet": [...], "states": [{"id","initial","final"}...],
//	  "transitions": [{"from","symbol","to"}...] }
//
// with the symbol "ε" denoting an epsilon transition.
type Snapshot struct {
	Name        string               `json:"name" yaml:"name"`
	Alphabet    []Symbol             `json:"alphabet" yaml:"alphabet"`
	States      []StateSnapshot      `json:"states" yaml:"states"`
	Transitions []TransitionSnapshot `json:"transitions" yaml:"transitions"`
}

type StateSnapshot struct {
	ID      string `json:"id" yaml:"id"`
	Initial bool   `json:"initial" yaml:"initial"`
	Final   bool   `json:"final" yaml:"final"`
}

type TransitionSnapshot struct {
	From   string `json:"from" yaml:"from"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// Snapshot captures the automaton's current structure. The result shares
// nothing with the automaton and stays valid across later mutations.
func (a *Automaton) Snapshot() Snapshot {
	s := Snapshot{
		Name:     a.Name,
		Alphabet: append([]Symbol(nil), a.alphabet.Symbols()...),
	}
	for _, st := range a.States() {
		s.States = append(s.States, StateSnapshot{ID: st.ID, Initial: st.Initial, Final: st.Final})
	}
	for _, t := range a.Transitions() {
		s.Transitions = append(s.Transitions, TransitionSnapshot{From: t.From, Symbol: t.Symbol, To: t.To})
	}
	return s
}

// FromSnapshot rebuilds an automaton, validating every reference: duplicate
// state ids, unknown transition endpoints and non-alphabet symbols all
// surface as ErrInvalidReference.
func FromSnapshot(s Snapshot) (*Automaton, error) {
	a := New(s.Name, NewAlphabet(s.Alphabet...))
	for _, st := range s.States {
		if err := a.AddState(st.ID, st.Initial, st.Final); err != nil {
			return nil, err
		}
	}
	for _, t := range s.Transitions {
		if err := a.AddTransition(t.From, t.Symbol, t.To); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// EncodeJSON writes the snapshot of a as indented JSON.
func EncodeJSON(w io.Writer, a *Automaton) error {
	data, err := json.MarshalIndent(a.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// DecodeJSON reads a JSON snapshot and rebuilds the automaton.
func DecodeJSON(r io.Reader) (*Automaton, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return FromSnapshot(s)
}

// EncodeYAML writes the snapshot of a as YAML.
func EncodeYAML(w io.Writer, a *Automaton) error {
	data, err := yaml.Marshal(a.Snapshot())
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// DecodeYAML reads a YAML snapshot and rebuilds the automaton.
func DecodeYAML(r io.Reader) (*Automaton, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return FromSnapshot(s)
}
