// Package graph renders automata as Mermaid flowcharts for quick visual
// inspection in a browser or markdown viewer.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// GenerateMermaid produces Mermaid flowchart syntax for an automaton.
// It applies semantic styling:
//   - Start: ((Circle))
//   - Accepting: (((Double Circle)))
//   - Default: [Rectangle]
//
// States render in their declared order, edges per state in sorted symbol
// order.
func GenerateMermaid(a *automaton.Automaton) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	accepts := a.AcceptSet()

	for _, state := range a.States {
		safeID := sanitizeMermaidID(state)

		// Start shape wins over accepting; the class styling below still
		// marks an accepting start.
		opener, closer := "[", "]"
		switch {
		case state == a.Start:
			opener, closer = "((", "))"
		case acceptsState(accepts, state):
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, state, closer))

		row := a.Transitions[state]
		symbols := make([]string, 0, len(row))
		for sym := range row {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		for _, sym := range symbols {
			safeTo := sanitizeMermaidID(row[sym])
			safeSym := strings.ReplaceAll(sym, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, safeSym, safeTo))
		}
	}

	// Accepting states get a highlight class so double circles stay
	// readable on both light and dark backgrounds.
	if len(a.Accepts) > 0 {
		sb.WriteString("\n    classDef accepting fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		for _, state := range sortedNames(a.Accepts) {
			sb.WriteString(fmt.Sprintf("    class %s accepting;\n", sanitizeMermaidID(state)))
		}
	}

	return sb.String()
}

// GenerateUnionMermaid renders a union product by flattening its pairs to
// comma-joined state names first.
func GenerateUnionMermaid(p *automaton.Product) string {
	return GenerateMermaid(p.Flatten())
}

func acceptsState(set map[string]struct{}, state string) bool {
	_, ok := set[state]
	return ok
}

func sortedNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

// sanitizeMermaidID strips characters Mermaid treats as syntax. Product
// state names carry commas, so those flatten to underscores too.
func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, ",", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
