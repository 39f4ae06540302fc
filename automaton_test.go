package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_addState_duplicate(t *testing.T) {
	a := New("t", NewAlphabet("a"))
	require.NoError(t, a.AddState("q0", true, false))
	err := a.AddState("q0", false, true)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Equal(t, 1, a.NumStates())
}

func Test_addTransition_invalidReference(t *testing.T) {
	a := New("t", NewAlphabet("a"))
	require.NoError(t, a.AddState("q0", true, false))

	assert.ErrorIs(t, a.AddTransition("nope", "a", "q0"), ErrInvalidReference)
	assert.ErrorIs(t, a.AddTransition("q0", "a", "nope"), ErrInvalidReference)
	assert.ErrorIs(t, a.AddTransition("q0", "z", "q0"), ErrInvalidReference)
	assert.Equal(t, 0, a.NumTransitions())

	// Epsilon is always allowed.
	assert.NoError(t, a.AddTransition("q0", Epsilon, "q0"))
}

func Test_addTransition_duplicateIsNoop(t *testing.T) {
	a := abLang(t)
	require.NoError(t, a.AddTransition("q0", "a", "q1"))
	assert.Equal(t, 2, a.NumTransitions())
}

func Test_removeState_cascades(t *testing.T) {
	a := abLang(t)
	require.NoError(t, a.AddTransition("q1", "a", "q1"))

	a.RemoveState("q1")

	assert.Equal(t, 1, a.NumStates())
	assert.Empty(t, a.Transitions(), "no dangling edges may survive a state removal")

	// Removing an unknown id is a no-op.
	a.RemoveState("q1")
	assert.Equal(t, 1, a.NumStates())
}

func Test_removeTransition(t *testing.T) {
	a := abLang(t)
	a.RemoveTransition("q1", "b", "q1")
	assert.Equal(t, 1, a.NumTransitions())
	a.RemoveTransition("q1", "b", "q1")
	assert.Equal(t, 1, a.NumTransitions())
}

func Test_setFlags(t *testing.T) {
	a := abLang(t)
	require.NoError(t, a.SetFinal("q0", true))
	require.NoError(t, a.SetInitial("q1", true))

	assert.Len(t, a.InitialStates(), 2)
	assert.Len(t, a.FinalStates(), 2)

	assert.ErrorIs(t, a.SetFinal("nope", true), ErrInvalidReference)
	assert.ErrorIs(t, a.SetInitial("nope", true), ErrInvalidReference)
}

func Test_initialState(t *testing.T) {
	a := abLang(t)
	s, err := a.InitialState()
	require.NoError(t, err)
	assert.Equal(t, "q0", s.ID)

	empty := New("none", NewAlphabet("a"))
	_, err = empty.InitialState()
	assert.ErrorIs(t, err, ErrEmptyAutomaton)
}

func Test_reachable(t *testing.T) {
	a := mustBuild(t, "r",
		[]Symbol{"a"},
		[]State{
			{ID: "q0", Initial: true},
			{ID: "q1"},
			{ID: "q2", Final: true},
			{ID: "junk"},
		},
		[]Transition{
			{From: "q0", Symbol: Epsilon, To: "q1"},
			{From: "q1", Symbol: "a", To: "q2"},
			{From: "junk", Symbol: "a", To: "q2"},
		})

	assert.Equal(t, []string{"q0", "q1", "q2"}, a.Reachable())
	assert.Equal(t, []string{"q0", "q1", "q2", "junk"}, a.CoReachable())
	assert.True(t, a.HasAcceptingPath())

	require.NoError(t, a.SetFinal("q2", false))
	assert.False(t, a.HasAcceptingPath())
}

func Test_nextStates(t *testing.T) {
	a := endsWithA(t)
	assert.Equal(t, []string{"s0", "s1"}, a.NextStates("s0", "a"))
	assert.Equal(t, []string{"s0"}, a.NextStates("s0", "b"))
	assert.Empty(t, a.NextStates("s1", "a"))
	assert.Len(t, a.TransitionsFrom("s0"), 3)
	assert.Empty(t, a.TransitionsFrom("s1"))
}

func Test_clone_isIndependent(t *testing.T) {
	a := abLang(t)
	c := a.Clone()

	a.RemoveState("q1")
	require.NoError(t, c.SetFinal("q0", true))

	assert.Equal(t, 2, c.NumStates())
	assert.Equal(t, 2, c.NumTransitions())
	s, ok := a.State("q0")
	require.True(t, ok)
	assert.False(t, s.Final)
}

func Test_alphabet_dedup(t *testing.T) {
	al := NewAlphabet("a", "b", "a", Epsilon, "c")
	assert.Equal(t, []Symbol{"a", "b", "c"}, al.Symbols())
	assert.Equal(t, 3, al.Len())
	assert.False(t, al.Contains(Epsilon))
	assert.Equal(t, 1, al.Index("b"))
	assert.Equal(t, -1, al.Index("z"))
}
