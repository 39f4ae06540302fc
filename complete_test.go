package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_complete_requiresDeterminism(t *testing.T) {
	_, err := Complete(endsWithA(t))
	assert.ErrorIs(t, err, ErrPrecondition)
}

func Test_complete_fillsHoles(t *testing.T) {
	a := abLang(t)
	c, err := Complete(a)
	require.NoError(t, err)

	assert.True(t, c.IsComplete())
	// One sink plus the two originals.
	assert.Equal(t, 3, c.NumStates())

	// The language is untouched.
	for _, w := range allWords(a.Alphabet().Symbols(), 3) {
		assert.Equal(t, Accepts(a, w), Accepts(c, w), "%v", w)
	}
}

func Test_complete_idempotent(t *testing.T) {
	c1, err := Complete(abLang(t))
	require.NoError(t, err)
	c2, err := Complete(c1)
	require.NoError(t, err)

	assert.Equal(t, c1.NumStates(), c2.NumStates())
	assert.Equal(t, c1.NumTransitions(), c2.NumTransitions())

	eq, err := Equivalent(c1, c2)
	require.NoError(t, err)
	assert.True(t, eq)
}

func Test_complete_doesNotAliasInput(t *testing.T) {
	a := abLang(t)
	c, err := Complete(a)
	require.NoError(t, err)

	c.RemoveState("q1")
	_, ok := a.State("q1")
	assert.True(t, ok)
	assert.Equal(t, 2, a.NumTransitions())
}

func Test_complete_sinkNameCollision(t *testing.T) {
	a := mustBuild(t, "s",
		[]Symbol{"a"},
		[]State{{ID: "sink", Initial: true, Final: true}},
		nil)
	c, err := Complete(a)
	require.NoError(t, err)
	assert.True(t, c.IsComplete())
	assert.Equal(t, 2, c.NumStates())
}

func Test_complete_noInitialState(t *testing.T) {
	a := New("none", NewAlphabet("a", "b"))
	require.NoError(t, a.AddState("q0", false, true))

	c, err := Complete(a)
	require.NoError(t, err)
	assert.True(t, c.IsComplete())
	assert.False(t, c.HasAcceptingPath(), "no initial state denotes the empty language")
}
