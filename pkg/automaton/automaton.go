package automaton

import "sort"

// Automaton is a deterministic finite automaton over string state
// identifiers and string input symbols.
//
// States preserves declaration order and holds no duplicates. Transitions
// maps a source state to its outgoing edges, one destination per symbol.
// Destinations are opaque: they are not required to appear in States, and
// no completeness over an alphabet is enforced here.
type Automaton struct {
	States      []string
	Transitions map[string]map[string]string
	Start       string
	Accepts     []string
}

// Alphabet returns the sorted set of input symbols that appear anywhere in
// the automaton's transition table. States with no outgoing edges contribute
// nothing.
func (a *Automaton) Alphabet() []string {
	seen := make(map[string]struct{})
	for _, edges := range a.Transitions {
		for sym := range edges {
			seen[sym] = struct{}{}
		}
	}
	symbols := make([]string, 0, len(seen))
	for sym := range seen {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// HasState reports whether name is a declared state.
func (a *Automaton) HasState(name string) bool {
	for _, s := range a.States {
		if s == name {
			return true
		}
	}
	return false
}

// AcceptSet returns the accepting states as a membership set.
func (a *Automaton) AcceptSet() map[string]struct{} {
	set := make(map[string]struct{}, len(a.Accepts))
	for _, s := range a.Accepts {
		set[s] = struct{}{}
	}
	return set
}

// SortedStates returns a sorted copy of the declared states.
func (a *Automaton) SortedStates() []string {
	states := make([]string, len(a.States))
	copy(states, a.States)
	sort.Strings(states)
	return states
}
