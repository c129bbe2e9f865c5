package automaton

import "sort"

// Product is the union automaton built from two input automata. Its states
// are pairs, its transitions step both components in lockstep, and a pair
// accepts when either component accepts in its own automaton.
type Product struct {
	States      []Pair
	Transitions map[Pair]map[string]Pair
	Start       Pair
	Accepts     []Pair
}

// HasState reports whether p contains the given pair.
func (p *Product) HasState(pair Pair) bool {
	for _, s := range p.States {
		if s == pair {
			return true
		}
	}
	return false
}

// AcceptSet returns the accepting pairs as a membership set.
func (p *Product) AcceptSet() map[Pair]struct{} {
	set := make(map[Pair]struct{}, len(p.Accepts))
	for _, s := range p.Accepts {
		set[s] = struct{}{}
	}
	return set
}

// SortedStates returns a sorted copy of the product states.
func (p *Product) SortedStates() []Pair {
	states := make([]Pair, len(p.States))
	copy(states, p.States)
	sort.Slice(states, func(i, j int) bool { return states[i].Less(states[j]) })
	return states
}

// Flatten collapses the product into a plain Automaton whose state names
// are the comma-joined pair names. The result carries the same language and
// round-trips through the document format like any other automaton.
func (p *Product) Flatten() *Automaton {
	flat := &Automaton{
		States:      make([]string, 0, len(p.States)),
		Transitions: make(map[string]map[string]string, len(p.Transitions)),
		Start:       p.Start.Name(),
		Accepts:     make([]string, 0, len(p.Accepts)),
	}
	for _, s := range p.SortedStates() {
		flat.States = append(flat.States, s.Name())
	}
	for src, edges := range p.Transitions {
		row := make(map[string]string, len(edges))
		for sym, dst := range edges {
			row[sym] = dst.Name()
		}
		flat.Transitions[src.Name()] = row
	}
	for _, s := range p.Accepts {
		flat.Accepts = append(flat.Accepts, s.Name())
	}
	sort.Strings(flat.Accepts)
	return flat
}
