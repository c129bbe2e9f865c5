// Package file implements the filesystem adapters: loading input automata
// from JSON or YAML documents and persisting union results atomically.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Loader implements ports.Loader against the local filesystem. The
// reference passed to Load is a path; the extension picks the encoding.
type Loader struct{}

// NewLoader creates a filesystem loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the automaton document at path. Decoding failures
// unwrap to the sentinel kinds in pkg/automaton.
func (l *Loader) Load(ctx context.Context, path string) (*automaton.Automaton, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading automaton %q: %w", path, err)
	}

	doc, err := automaton.DecodeDocument(data, automaton.FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("loading automaton %q: %w", path, err)
	}
	return doc.Automaton(), nil
}
