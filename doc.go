/*
Package dfaunion computes the union of two deterministic finite automata
via the cross-product construction, validates the result structurally, and
reads and writes automata as JSON or YAML documents.

# Concept

Each input automaton is a plain DFA: states, a transition table, a start
state, and a set of accepting states. The union automaton's states are
pairs, one component from each input, stepping in lockstep over the symbol
set of the first automaton. A pair accepts when either component accepts,
so the product recognizes the union of both languages.

Construction is strict: a symbol the first automaton's table mentions must
have a transition in every state of both automata, or the whole build
fails. Validation is forgiving: it runs every structural check over the
finished product and accumulates findings instead of stopping, so one pass
reports everything that is wrong.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		dfaunion "github.com/dylo101/DFA-Union"
	)

	func main() {
		eng := dfaunion.New()
		ctx := context.Background()

		res, err := eng.Union(ctx, "a.json", "b.json")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(res.Report.Summary())
		if res.Report.Valid() {
			if err := eng.Persist(ctx, res, "union.json"); err != nil {
				log.Fatal(err)
			}
		}
	}

Loaders and stores are ports: the defaults read and write local files, and
the pkg/adapters packages provide in-memory alternatives for embedding.
The dfa-union binary adds a validate command, Mermaid graph export, and a
stateless HTTP server with optional Redis result caching on top of the
same pipeline.
*/
package dfaunion
