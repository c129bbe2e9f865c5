package automaton

import "strings"

// Pair is a product state: one state drawn from each input automaton.
type Pair struct {
	A string
	B string
}

// Name renders the pair as a single state identifier, joining both
// components with a comma. This is the form product states take in
// persisted documents and diagrams.
func (p Pair) Name() string {
	return p.A + "," + p.B
}

// Less orders pairs by the first component, then the second. It is the
// ordering used everywhere a deterministic sequence of product states is
// needed.
func (p Pair) Less(q Pair) bool {
	if p.A != q.A {
		return p.A < q.A
	}
	return p.B < q.B
}

// ParsePair splits a comma-joined product state name back into a Pair.
// Only the first comma separates the components, matching Name.
func ParsePair(name string) (Pair, bool) {
	a, b, ok := strings.Cut(name, ",")
	if !ok {
		return Pair{}, false
	}
	return Pair{A: a, B: b}, true
}
