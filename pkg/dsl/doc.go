/*
Package dsl provides a fluent builder for constructing automata in Go code.

It allows callers to define deterministic finite automata using a type-safe
builder instead of external JSON or YAML documents. This is particularly
useful for tests, examples, and dynamically generated machines.

Example usage:

	b := dsl.New()
	b.State("even").Start().Accept().
		On("0", "even").
		On("1", "odd")
	b.State("odd").
		On("0", "odd").
		On("1", "even")

	a, err := b.Automaton()
	// a can be encoded with automaton.FromAutomaton(a).Encode(...)
	// or registered with memory.NewFromAutomata for an engine to load.
*/
package dsl
