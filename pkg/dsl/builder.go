package dsl

import (
	"fmt"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Builder manages the automaton construction.
type Builder struct {
	order  []string
	states map[string]*StateBuilder
	start  string
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// State creates a new state in the automaton.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		name:    name,
		edges:   make(map[string]string),
		builder: b,
	}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Start marks the start state, declaring it if it does not exist yet.
func (b *Builder) Start(name string) *Builder {
	b.State(name)
	b.start = name
	return b
}

// Automaton compiles the builder into an automaton. States keep their
// declaration order.
func (b *Builder) Automaton() (*automaton.Automaton, error) {
	if len(b.order) == 0 {
		return nil, fmt.Errorf("builder has no states")
	}
	if b.start == "" {
		return nil, fmt.Errorf("builder has no start state")
	}

	a := &automaton.Automaton{
		States:      make([]string, 0, len(b.order)),
		Transitions: make(map[string]map[string]string, len(b.order)),
	}
	for _, name := range b.order {
		sb := b.states[name]
		a.States = append(a.States, name)
		if len(sb.edges) > 0 {
			row := make(map[string]string, len(sb.edges))
			for symbol, target := range sb.edges {
				row[symbol] = target
			}
			a.Transitions[name] = row
		}
		if sb.accept {
			a.Accepts = append(a.Accepts, name)
		}
	}
	a.Start = b.start
	return a, nil
}
