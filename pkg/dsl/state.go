package dsl

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name    string
	edges   map[string]string
	accept  bool
	builder *Builder
}

// On adds a transition to the target state when the symbol is read.
// Declaring the same symbol twice overwrites the earlier target. The target
// is not declared implicitly; an undeclared target is a dangling edge, which
// loading tolerates and validation reports.
func (s *StateBuilder) On(symbol, target string) *StateBuilder {
	s.edges[symbol] = target
	return s
}

// Accept marks the state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accept = true
	return s
}

// Start marks the state as the automaton's start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.builder.start = s.name
	return s
}
