// Package union builds the cross-product union of two deterministic finite
// automata.
package union

import (
	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Build constructs the union automaton of a and b.
//
// Every combination of a-state and b-state becomes a product state, with no
// reachability filtering. Transitions step both components in lockstep over
// the symbol set of automaton a alone: symbols that only b knows are
// ignored, while any symbol from a's table that either automaton lacks a
// transition for aborts the whole construction with a
// MissingTransitionError. A pair accepts when either component is accepting
// in its own automaton.
func Build(a, b *automaton.Automaton) (*automaton.Product, error) {
	aStates := a.SortedStates()
	bStates := b.SortedStates()
	symbols := a.Alphabet()

	p := &automaton.Product{
		States:      make([]automaton.Pair, 0, len(aStates)*len(bStates)),
		Transitions: make(map[automaton.Pair]map[string]automaton.Pair, len(aStates)*len(bStates)),
		Start:       automaton.Pair{A: a.Start, B: b.Start},
	}

	aAccepts := a.AcceptSet()
	bAccepts := b.AcceptSet()

	for _, sa := range aStates {
		for _, sb := range bStates {
			pair := automaton.Pair{A: sa, B: sb}
			p.States = append(p.States, pair)

			row := make(map[string]automaton.Pair, len(symbols))
			for _, sym := range symbols {
				na, ok := a.Transitions[sa][sym]
				if !ok {
					return nil, &automaton.MissingTransitionError{
						Automaton: "A", State: sa, Symbol: sym,
					}
				}
				nb, ok := b.Transitions[sb][sym]
				if !ok {
					return nil, &automaton.MissingTransitionError{
						Automaton: "B", State: sb, Symbol: sym,
					}
				}
				row[sym] = automaton.Pair{A: na, B: nb}
			}
			p.Transitions[pair] = row

			_, accA := aAccepts[sa]
			_, accB := bAccepts[sb]
			if accA || accB {
				p.Accepts = append(p.Accepts, pair)
			}
		}
	}
	return p, nil
}
