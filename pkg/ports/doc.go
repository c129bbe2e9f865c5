/*
Package ports defines the driven ports (interfaces) for the union pipeline.

These interfaces decouple the pipeline from its surroundings, so automata can
come from files, memory, or a network body, and results can land on disk or
in a cache, without the core knowing which.

# Key Interfaces

  - Loader: resolves a reference to a parsed input automaton.
  - Store: persists a constructed union automaton.
  - Cache: remembers serialized union results keyed by their inputs.
*/
package ports
