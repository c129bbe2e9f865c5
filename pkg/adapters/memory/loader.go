// Package memory implements ports.Loader over an in-memory document map,
// mainly for tests and embedding.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Loader implements ports.Loader using an in-memory map of raw documents.
type Loader struct {
	docs map[string][]byte
}

// NewLoader creates a memory loader from raw JSON documents keyed by name.
func NewLoader(data map[string]string) *Loader {
	docs := make(map[string][]byte, len(data))
	for k, v := range data {
		docs[k] = []byte(v)
	}
	return &Loader{docs: docs}
}

// NewFromAutomata creates a memory loader from models directly, handling
// serialization itself.
func NewFromAutomata(named map[string]*automaton.Automaton) (*Loader, error) {
	docs := make(map[string][]byte, len(named))
	for name, a := range named {
		if name == "" {
			return nil, fmt.Errorf("automaton missing name")
		}
		data, err := automaton.FromAutomaton(a).Encode(automaton.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("encoding automaton %s: %w", name, err)
		}
		docs[name] = data
	}
	return &Loader{docs: docs}, nil
}

// Load parses the document registered under ref.
func (l *Loader) Load(ctx context.Context, ref string) (*automaton.Automaton, error) {
	data, ok := l.docs[ref]
	if !ok {
		return nil, fmt.Errorf("automaton not found: %s", ref)
	}
	doc, err := automaton.DecodeDocument(data, automaton.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("loading automaton %q: %w", ref, err)
	}
	return doc.Automaton(), nil
}

// List returns all registered names in deterministic order.
func (l *Loader) List() []string {
	keys := make([]string, 0, len(l.docs))
	for k := range l.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
