package automaton

import (
	"errors"
	"fmt"
)

// Sentinel kinds for document loading failures. Callers match them with
// errors.Is; the concrete error carries the human-readable detail.
var (
	// ErrInvalidFormat marks input that could not be decoded at all:
	// unreadable bytes, malformed JSON or YAML, or a document whose
	// top-level fields have the wrong shape.
	ErrInvalidFormat = errors.New("invalid document format")

	// ErrMissingField marks a document missing one of the required
	// fields, or carrying an empty states sequence.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedEntry marks a state entry without a usable state
	// identifier, without transitions, or with a non-string destination.
	ErrMalformedEntry = errors.New("malformed state entry")

	// ErrInvalidStart marks an empty or non-string start-state value.
	ErrInvalidStart = errors.New("invalid start state")
)

// DocumentError is a loading failure: a sentinel kind plus the detail of
// what was wrong. It unwraps to its kind so errors.Is works against the
// sentinels above.
type DocumentError struct {
	Kind   error
	Detail string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

func (e *DocumentError) Unwrap() error {
	return e.Kind
}

func docErrf(kind error, format string, args ...any) error {
	return &DocumentError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// MissingTransitionError reports that the union construction needed a
// transition one input automaton does not define. Automaton is "A" or "B",
// identifying which input is incomplete. The construction fails as a whole
// when this is returned; no partial product is produced.
type MissingTransitionError struct {
	Automaton string
	State     string
	Symbol    string
}

func (e *MissingTransitionError) Error() string {
	return fmt.Sprintf("automaton %s: state %q has no transition on symbol %q",
		e.Automaton, e.State, e.Symbol)
}
