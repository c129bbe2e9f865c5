// Package report renders union results for humans: a markdown summary of
// the constructed automaton and its validation findings, plus the terminal
// styling around it.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Build renders the union automaton and its validation report as markdown.
// States and transitions are listed in sorted pair order, so the same union
// always renders the same text.
func Build(p *automaton.Product, rep automaton.Report) string {
	var b strings.Builder
	accepts := p.AcceptSet()
	sorted := p.SortedStates()

	b.WriteString("# Union Automaton\n\n")
	fmt.Fprintf(&b, "- **States:** %d\n", len(p.States))
	fmt.Fprintf(&b, "- **Start:** `%s`\n", p.Start.Name())
	fmt.Fprintf(&b, "- **Accepting:** %d\n", len(p.Accepts))

	b.WriteString("\n## States\n\n")
	b.WriteString("| State | Accepting |\n|-------|-----------|\n")
	for _, s := range sorted {
		mark := ""
		if _, ok := accepts[s]; ok {
			mark = "✓"
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", s.Name(), mark)
	}

	b.WriteString("\n## Transitions\n\n")
	b.WriteString("| From | Symbol | To |\n|------|--------|----|\n")
	for _, s := range sorted {
		row := p.Transitions[s]
		symbols := make([]string, 0, len(row))
		for sym := range row {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)
		for _, sym := range symbols {
			fmt.Fprintf(&b, "| `%s` | `%s` | `%s` |\n", s.Name(), sym, row[sym].Name())
		}
	}

	b.WriteString("\n## Validation\n\n")
	if rep.Valid() {
		b.WriteString("No structural defects found.\n")
	} else {
		fmt.Fprintf(&b, "Found %d defects:\n\n", len(rep.Findings))
		for _, f := range rep.Findings {
			fmt.Fprintf(&b, "- **%s**: %s\n", f.Kind, f.Message)
		}
	}
	return b.String()
}
