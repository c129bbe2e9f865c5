package ports

import (
	"context"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Store defines the interface for persisting constructed union automata.
type Store interface {
	// Save writes the union automaton to the given destination. The file
	// adapter chooses JSON or YAML from the destination's extension.
	Save(ctx context.Context, dst string, p *automaton.Product) error
}
