package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

func TestAutomaton_Alphabet(t *testing.T) {
	t.Run("Union Across States Sorted", func(t *testing.T) {
		a := &automaton.Automaton{
			States: []string{"q0", "q1"},
			Transitions: map[string]map[string]string{
				"q0": {"b": "q1", "a": "q0"},
				"q1": {"c": "q1"},
			},
			Start: "q0",
		}
		assert.Equal(t, []string{"a", "b", "c"}, a.Alphabet())
	})

	t.Run("No Transitions Yields Empty Alphabet", func(t *testing.T) {
		a := &automaton.Automaton{States: []string{"q0"}, Start: "q0"}
		assert.Empty(t, a.Alphabet())
	})
}

func TestAutomaton_Membership(t *testing.T) {
	a := &automaton.Automaton{
		States:  []string{"q0", "q1"},
		Start:   "q0",
		Accepts: []string{"q1"},
	}
	assert.True(t, a.HasState("q1"))
	assert.False(t, a.HasState("ghost"))

	set := a.AcceptSet()
	assert.Contains(t, set, "q1")
	assert.NotContains(t, set, "q0")
}

func TestPair_NameAndParse(t *testing.T) {
	p := automaton.Pair{A: "q0", B: "p1"}
	assert.Equal(t, "q0,p1", p.Name())

	parsed, ok := automaton.ParsePair("q0,p1")
	assert.True(t, ok)
	assert.Equal(t, p, parsed)

	// Only the first comma splits; the rest stays in the second component.
	parsed, ok = automaton.ParsePair("q0,p1,x")
	assert.True(t, ok)
	assert.Equal(t, automaton.Pair{A: "q0", B: "p1,x"}, parsed)

	_, ok = automaton.ParsePair("loner")
	assert.False(t, ok)
}

func TestPair_Less(t *testing.T) {
	assert.True(t, automaton.Pair{A: "a", B: "z"}.Less(automaton.Pair{A: "b", B: "a"}))
	assert.True(t, automaton.Pair{A: "a", B: "a"}.Less(automaton.Pair{A: "a", B: "b"}))
	assert.False(t, automaton.Pair{A: "a", B: "a"}.Less(automaton.Pair{A: "a", B: "a"}))
}

func TestProduct_Flatten(t *testing.T) {
	q0p0 := automaton.Pair{A: "q0", B: "p0"}
	q1p0 := automaton.Pair{A: "q1", B: "p0"}
	p := &automaton.Product{
		States: []automaton.Pair{q1p0, q0p0},
		Transitions: map[automaton.Pair]map[string]automaton.Pair{
			q0p0: {"a": q1p0},
			q1p0: {"a": q1p0},
		},
		Start:   q0p0,
		Accepts: []automaton.Pair{q1p0},
	}

	flat := p.Flatten()
	assert.Equal(t, []string{"q0,p0", "q1,p0"}, flat.States)
	assert.Equal(t, "q0,p0", flat.Start)
	assert.Equal(t, []string{"q1,p0"}, flat.Accepts)
	assert.Equal(t, map[string]string{"a": "q1,p0"}, flat.Transitions["q0,p0"])
	assert.Equal(t, map[string]string{"a": "q1,p0"}, flat.Transitions["q1,p0"])
}

func TestProduct_SortedStates(t *testing.T) {
	p := &automaton.Product{
		States: []automaton.Pair{
			{A: "q1", B: "p0"},
			{A: "q0", B: "p1"},
			{A: "q0", B: "p0"},
		},
	}
	sorted := p.SortedStates()
	assert.Equal(t, []automaton.Pair{
		{A: "q0", B: "p0"},
		{A: "q0", B: "p1"},
		{A: "q1", B: "p0"},
	}, sorted)
	// Original order untouched.
	assert.Equal(t, automaton.Pair{A: "q1", B: "p0"}, p.States[0])
}
