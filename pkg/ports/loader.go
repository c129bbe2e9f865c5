package ports

import (
	"context"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Loader defines how the pipeline retrieves input automata.
// This allows the source (filesystem, memory, request body) to be decoupled.
type Loader interface {
	// Load resolves a reference to a parsed automaton. For the file
	// adapter the reference is a path; for the memory adapter it is a
	// registered name. Shape errors unwrap to the sentinel kinds in
	// pkg/automaton.
	Load(ctx context.Context, ref string) (*automaton.Automaton, error)
}
