// Package validator inspects constructed union automata for structural
// defects. It runs every check and accumulates findings instead of
// stopping at the first problem, so a single pass reports everything a
// defective union has to say about itself.
package validator

import (
	"sort"
	"strings"

	"github.com/dylo101/DFA-Union/pkg/automaton"
)

// Validate checks the product and returns the accumulated findings.
//
// Checks, in report order:
//  1. the start pair is a member of the product states
//  2. every product state has a transition row, the row covers the
//     reference symbol set, and every destination is a product state
//  3. every accepting pair is a member of the product states
//  4. every product state is reachable from the start pair
//
// The reference symbol set is taken from the row of the smallest product
// state that has one. A row that disagrees with its peers is therefore
// judged against that state's symbols, not against a global alphabet.
func Validate(p *automaton.Product) automaton.Report {
	var report automaton.Report

	members := make(map[automaton.Pair]struct{}, len(p.States))
	for _, s := range p.States {
		members[s] = struct{}{}
	}
	sorted := p.SortedStates()

	if _, ok := members[p.Start]; !ok {
		report.Add(automaton.FindingStart,
			"start state %q is not a product state", p.Start.Name())
	}

	reference := referenceSymbols(sorted, p.Transitions)
	for _, s := range sorted {
		row, ok := p.Transitions[s]
		if !ok {
			report.Add(automaton.FindingTransition,
				"state %q has no transition row", s.Name())
			continue
		}
		for _, sym := range reference {
			if _, ok := row[sym]; !ok {
				report.Add(automaton.FindingTransition,
					"state %q has no transition on symbol %q", s.Name(), sym)
			}
		}
		for _, sym := range sortedSymbols(row) {
			if _, ok := members[row[sym]]; !ok {
				report.Add(automaton.FindingTransition,
					"state %q moves to %q on symbol %q, which is not a product state",
					s.Name(), row[sym].Name(), sym)
			}
		}
	}

	for _, s := range sortedAccepts(p.Accepts) {
		if _, ok := members[s]; !ok {
			report.Add(automaton.FindingAccept,
				"accept state %q is not a product state", s.Name())
		}
	}

	if unreachable := unreachableStates(p, sorted); len(unreachable) > 0 {
		report.Add(automaton.FindingReachability,
			"%d states unreachable from start %q: %s",
			len(unreachable), p.Start.Name(), strings.Join(unreachable, ", "))
	}

	return report
}

// referenceSymbols extracts the sorted symbol set of the first sorted state
// that has a transition row at all.
func referenceSymbols(sorted []automaton.Pair, transitions map[automaton.Pair]map[string]automaton.Pair) []string {
	for _, s := range sorted {
		if row, ok := transitions[s]; ok {
			return sortedSymbols(row)
		}
	}
	return nil
}

func sortedSymbols(row map[string]automaton.Pair) []string {
	symbols := make([]string, 0, len(row))
	for sym := range row {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

func sortedAccepts(accepts []automaton.Pair) []automaton.Pair {
	out := make([]automaton.Pair, len(accepts))
	copy(out, accepts)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// unreachableStates crawls the product from its start pair and returns the
// names of every state the crawl never visits, sorted.
func unreachableStates(p *automaton.Product, sorted []automaton.Pair) []string {
	visited := make(map[automaton.Pair]bool, len(p.States))
	queue := []automaton.Pair{p.Start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range p.Transitions[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var unreachable []string
	for _, s := range sorted {
		if !visited[s] {
			unreachable = append(unreachable, s.Name())
		}
	}
	return unreachable
}
