package dfaunion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dylo101/DFA-Union/internal/logging"
	"github.com/dylo101/DFA-Union/internal/union"
	"github.com/dylo101/DFA-Union/internal/validator"
	"github.com/dylo101/DFA-Union/pkg/adapters/file"
	"github.com/dylo101/DFA-Union/pkg/automaton"
	"github.com/dylo101/DFA-Union/pkg/ports"
)

// Engine is the high-level entry point for the library. It wires a loader
// and a store around the union pipeline and provides a simplified API for
// consumers.
type Engine struct {
	loader ports.Loader
	store  ports.Store
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom automaton loader, bypassing the default
// filesystem adapter.
func WithLoader(l ports.Loader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithStore injects a custom result store, bypassing the default
// filesystem adapter.
func WithStore(s ports.Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLogger sets a structured logger for the engine. By default the
// engine is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine. By default it loads automata from and saves
// unions to the local filesystem.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.loader == nil {
		e.loader = file.NewLoader()
	}
	if e.store == nil {
		e.store = file.NewStore()
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

// Result bundles everything one union run produces: both parsed inputs,
// the constructed product, and its validation report.
type Result struct {
	A      *automaton.Automaton
	B      *automaton.Automaton
	Union  *automaton.Product
	Report automaton.Report
}

// Union loads both automata, constructs their cross-product union, and
// validates it. Loading and construction failures abort with an error;
// validation always runs to completion, and its findings land in the
// Result rather than in the error.
func (e *Engine) Union(ctx context.Context, refA, refB string) (*Result, error) {
	a, err := e.loader.Load(ctx, refA)
	if err != nil {
		return nil, fmt.Errorf("automaton A: %w", err)
	}
	b, err := e.loader.Load(ctx, refB)
	if err != nil {
		return nil, fmt.Errorf("automaton B: %w", err)
	}
	e.logger.Debug("automata loaded",
		"a_states", len(a.States),
		"b_states", len(b.States),
		"symbols", len(a.Alphabet()),
	)

	p, err := union.Build(a, b)
	if err != nil {
		return nil, err
	}

	rep := validator.Validate(p)
	e.logger.Info("union constructed",
		"states", len(p.States),
		"accepting", len(p.Accepts),
		"valid", rep.Valid(),
	)
	return &Result{A: a, B: b, Union: p, Report: rep}, nil
}

// Load resolves a single automaton through the engine's loader. It checks
// document shape only; semantic defects surface when a union built from it
// is validated.
func (e *Engine) Load(ctx context.Context, ref string) (*automaton.Automaton, error) {
	return e.loader.Load(ctx, ref)
}

// Persist writes the union to dst through the engine's store. It refuses
// to persist a result whose validation found defects, so defective output
// never reaches disk.
func (e *Engine) Persist(ctx context.Context, res *Result, dst string) error {
	if res == nil || res.Union == nil {
		return fmt.Errorf("nothing to persist")
	}
	if !res.Report.Valid() {
		return fmt.Errorf("refusing to persist defective union: %s", res.Report.Summary())
	}
	if err := e.store.Save(ctx, dst, res.Union); err != nil {
		return err
	}
	e.logger.Info("union persisted", "path", dst)
	return nil
}
