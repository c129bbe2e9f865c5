package automaton

import (
	"fmt"
	"strings"
)

// FindingKind classifies a structural defect found in a union automaton.
type FindingKind string

const (
	// FindingStart: the start pair is not a member of the product states.
	FindingStart FindingKind = "start-state"

	// FindingTransition: a product state is missing its transition row,
	// missing a symbol from the reference symbol set, or has an edge
	// pointing at a pair outside the product states.
	FindingTransition FindingKind = "transition"

	// FindingAccept: an accepting pair is not a member of the product
	// states.
	FindingAccept FindingKind = "accept-state"

	// FindingReachability: one or more product states cannot be reached
	// from the start pair. Dead structure rather than incorrectness, but
	// reported alongside the other defects.
	FindingReachability FindingKind = "reachability"
)

// Finding is a single defect: its kind and a human-readable description.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Message string      `json:"message"`
}

// Report is the outcome of validating a union automaton. Findings are
// ordered: start-state first, then transition defects per state in sorted
// pair order, then accept-state defects, then at most one reachability
// finding. An empty report means the union passed every check.
type Report struct {
	Findings []Finding `json:"findings"`
}

// Valid reports whether the union passed validation with no findings.
func (r Report) Valid() bool {
	return len(r.Findings) == 0
}

// Add appends a finding built from a format string.
func (r *Report) Add(kind FindingKind, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// Summary renders the report as a single line, or a defect-per-line list
// when findings are present.
func (r Report) Summary() string {
	if r.Valid() {
		return "union automaton is structurally valid"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "found %d defects:", len(r.Findings))
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "\n- [%s] %s", f.Kind, f.Message)
	}
	return b.String()
}
