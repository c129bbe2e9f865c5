// Package automaton defines the deterministic finite automaton model shared
// by every layer of the toolkit: the Automaton itself, the Pair and Product
// types produced by the union construction, the wire Document format used to
// read and write automata, and the typed errors and validation Report that
// the rest of the module exchanges.
//
// The model is deliberately permissive. Loading checks the shape of a
// document (required fields, well-formed state entries), not its semantics:
// transition destinations may name states that were never declared, and the
// accept set is not checked for membership. Semantic defects surface later,
// when the union validator inspects the constructed product.
package automaton
