package automaton

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the wire encoding of a document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the encoding from a file extension. The .yaml and
// .yml extensions select YAML; everything else is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// StateEntry is one element of a document's states sequence: a state
// identifier plus its outgoing edges, keyed by input symbol.
type StateEntry struct {
	State string
	Edges map[string]string
}

// Document is the wire form of an automaton. On the wire it is a mapping
// with three fields: "states" (a sequence of entries carrying a "state"
// key and one key per input symbol), "start-state", and "accept-states"
// (a sequence of single-key {"state": name} entries).
//
// The "state" key is reserved by the entry layout, so an input symbol
// named "state" cannot be represented.
type Document struct {
	States  []StateEntry
	Start   string
	Accepts []string
}

// documentEnvelope is the intermediate decoding target. States entries
// carry dynamic symbol keys, so they stay raw maps here; entry conversion
// happens after the envelope checks pass.
type documentEnvelope struct {
	States       []map[string]any `mapstructure:"states" validate:"required,min=1"`
	StartState   string           `mapstructure:"start-state" validate:"required"`
	AcceptStates []map[string]any `mapstructure:"accept-states"`
}

var validate = validator.New()

var requiredFields = []string{"states", "start-state", "accept-states"}

func fromRaw(raw map[string]any) (*Document, error) {
	if raw == nil {
		return nil, docErrf(ErrInvalidFormat, "document is empty")
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, docErrf(ErrMissingField, "document has no %q field", field)
		}
	}
	if v := raw["start-state"]; v != nil {
		if _, ok := v.(string); !ok {
			return nil, docErrf(ErrInvalidStart, "start-state must be a string, got %T", v)
		}
	} else {
		return nil, docErrf(ErrInvalidStart, "start-state must be a string, got null")
	}

	var env documentEnvelope
	if err := mapstructure.Decode(raw, &env); err != nil {
		return nil, docErrf(ErrInvalidFormat, "decoding document fields: %v", err)
	}
	if err := validate.Struct(&env); err != nil {
		return nil, translateEnvelopeError(err)
	}

	doc := &Document{
		States:  make([]StateEntry, 0, len(env.States)),
		Start:   env.StartState,
		Accepts: make([]string, 0, len(env.AcceptStates)),
	}
	for i, entry := range env.States {
		se, err := stateEntry(i, entry)
		if err != nil {
			return nil, err
		}
		doc.States = append(doc.States, se)
	}
	for i, entry := range env.AcceptStates {
		name, ok := entry["state"].(string)
		if !ok || name == "" {
			return nil, docErrf(ErrMalformedEntry,
				"accept-states entry %d has no usable %q key", i, "state")
		}
		doc.Accepts = append(doc.Accepts, name)
	}
	return doc, nil
}

func stateEntry(idx int, raw map[string]any) (StateEntry, error) {
	name, ok := raw["state"].(string)
	if !ok || name == "" {
		return StateEntry{}, docErrf(ErrMalformedEntry,
			"states entry %d has no usable %q key", idx, "state")
	}
	edges := make(map[string]string, len(raw)-1)
	for key, val := range raw {
		if key == "state" {
			continue
		}
		dst, ok := val.(string)
		if !ok {
			return StateEntry{}, docErrf(ErrMalformedEntry,
				"state %q: destination for symbol %q is %T, want string", name, key, val)
		}
		edges[key] = dst
	}
	if len(edges) == 0 {
		return StateEntry{}, docErrf(ErrMalformedEntry, "state %q declares no transitions", name)
	}
	return StateEntry{State: name, Edges: edges}, nil
}

func translateEnvelopeError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return docErrf(ErrInvalidFormat, "validating document: %v", err)
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "StartState":
			return docErrf(ErrInvalidStart, "start-state is empty")
		case "States":
			return docErrf(ErrMissingField, "states sequence is empty")
		}
	}
	return docErrf(ErrInvalidFormat, "validating document: %v", verrs)
}

// docWire mirrors the serialized field layout. Entry maps marshal with
// sorted keys in both JSON and YAML, keeping output deterministic.
type docWire struct {
	States       []map[string]string `json:"states" yaml:"states"`
	StartState   string              `json:"start-state" yaml:"start-state"`
	AcceptStates []map[string]string `json:"accept-states" yaml:"accept-states"`
}

func (d *Document) wire() docWire {
	w := docWire{
		States:       make([]map[string]string, 0, len(d.States)),
		StartState:   d.Start,
		AcceptStates: make([]map[string]string, 0, len(d.Accepts)),
	}
	for _, se := range d.States {
		entry := make(map[string]string, len(se.Edges)+1)
		entry["state"] = se.State
		for sym, dst := range se.Edges {
			entry[sym] = dst
		}
		w.States = append(w.States, entry)
	}
	for _, name := range d.Accepts {
		w.AcceptStates = append(w.AcceptStates, map[string]string{"state": name})
	}
	return w
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return docErrf(ErrInvalidFormat, "parsing JSON document: %v", err)
	}
	doc, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

func (d *Document) MarshalYAML() (any, error) {
	return d.wire(), nil
}

func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return docErrf(ErrInvalidFormat, "parsing YAML document: %v", err)
	}
	doc, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// DecodeDocument parses and shape-checks a serialized automaton document.
// Every failure unwraps to one of the sentinel kinds in this package.
func DecodeDocument(data []byte, format Format) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, docErrf(ErrInvalidFormat, "document is empty")
	}
	doc := new(Document)
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	default:
		err = json.Unmarshal(data, doc)
	}
	if err != nil {
		var derr *DocumentError
		if errors.As(err, &derr) {
			return nil, derr
		}
		return nil, docErrf(ErrInvalidFormat, "parsing document: %v", err)
	}
	return doc, nil
}

// Encode serializes the document. JSON output is indented and
// newline-terminated; both encodings emit entry keys in sorted order.
func (d *Document) Encode(format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(d)
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Automaton converts the document into its in-memory model. A duplicate
// state entry keeps the first declaration's position while its edges
// replace the earlier row; duplicate accept names collapse to one.
func (d *Document) Automaton() *Automaton {
	a := &Automaton{
		Transitions: make(map[string]map[string]string, len(d.States)),
		Start:       d.Start,
	}
	for _, se := range d.States {
		if _, ok := a.Transitions[se.State]; !ok {
			a.States = append(a.States, se.State)
		}
		row := make(map[string]string, len(se.Edges))
		for sym, dst := range se.Edges {
			row[sym] = dst
		}
		a.Transitions[se.State] = row
	}
	seen := make(map[string]struct{}, len(d.Accepts))
	for _, name := range d.Accepts {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		a.Accepts = append(a.Accepts, name)
	}
	return a
}

// FromAutomaton builds the wire form of an automaton, preserving state
// declaration order.
func FromAutomaton(a *Automaton) *Document {
	doc := &Document{Start: a.Start}
	for _, name := range a.States {
		edges := make(map[string]string, len(a.Transitions[name]))
		for sym, dst := range a.Transitions[name] {
			edges[sym] = dst
		}
		doc.States = append(doc.States, StateEntry{State: name, Edges: edges})
	}
	doc.Accepts = append(doc.Accepts, a.Accepts...)
	return doc
}

// FromProduct builds the wire form of a union automaton. Product states
// flatten to comma-joined names, entries sort by pair, and the accept list
// sorts by name.
func FromProduct(p *Product) *Document {
	return FromAutomaton(p.Flatten())
}
