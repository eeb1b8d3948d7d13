package engine

import (
	"fmt"

	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/catalog"
	"github.com/undolab/rewind/internal/history"
)

// DefaultMaxUndo is the default bound on the undo stack. When a push
// exceeds it, the oldest frames are folded into the base snapshot.
const DefaultMaxUndo = 100

// Host adapts the engine to an application's state type. All methods
// must be pure: they return new values and never mutate their arguments.
//
// The engine never interprets the meaning of individual state fields; it
// only moves whole substates around through this interface.
type Host[S any] interface {
	// Apply is the base reducer. It must be total for well-formed
	// actions; if it panics, the panic propagates unchanged, since a
	// half-applied replay would corrupt history irrecoverably.
	Apply(s S, a action.Action) S

	// Page returns the current navigational page.
	Page(s S) action.PageID

	// WithPage returns s with the page replaced.
	WithPage(s S, p action.PageID) S

	// CarryView copies the preserved view substates from pre into
	// replayed: the page, navigation substate, in-flight request
	// markers, and any other live UI state excluded from undo/redo.
	// Selections are handled by the engine and must not be carried here.
	CarryView(pre, replayed S) S

	// Selections returns the entity-id selection sets, keyed by the
	// entity collection they select from.
	Selections(s S) map[string]IDSet

	// WithSelections returns s with all selection sets replaced.
	WithSelections(s S, sel map[string]IDSet) S

	// Collections returns the surviving entity ids per collection.
	Collections(s S) map[string]IDSet

	// StripTransient removes navigation and router substate. Applied to
	// every state captured as a base snapshot, so replays never start
	// from recorded navigational context.
	StripTransient(s S) S
}

// PageResolver computes the page a redone frame should land on, given
// the state before the frame's trigger was applied.
type PageResolver[S any] func(s S) action.PageID

// Engine dispatches actions against a host reducer while maintaining the
// undo/redo log. It is stateless between calls: the log and state are
// threaded through Dispatch explicitly, so one engine value serves any
// number of sessions.
type Engine[S any] struct {
	host      Host[S]
	catalog   *catalog.Catalog
	resolvers map[string]PageResolver[S]
	tokens    TokenGenerator
	maxUndo   int
}

// Option configures an engine.
type Option[S any] func(*Engine[S])

// WithMaxUndo bounds the undo stack. The default is DefaultMaxUndo.
func WithMaxUndo[S any](max int) Option[S] {
	return func(e *Engine[S]) {
		e.maxUndo = max
	}
}

// WithResolver registers a named redo-page resolver referenced by the
// catalog's activation rules.
func WithResolver[S any](name string, r PageResolver[S]) Option[S] {
	return func(e *Engine[S]) {
		e.resolvers[name] = r
	}
}

// WithTokens overrides the session token generator. Tests use a fixed
// generator for deterministic transcripts.
func WithTokens[S any](gen TokenGenerator) Option[S] {
	return func(e *Engine[S]) {
		e.tokens = gen
	}
}

// New builds an engine for the given host and catalog.
//
// Configuration is checked here, once, and never per-dispatch: a catalog
// rule referencing an unregistered resolver or a non-positive undo bound
// is a programmer error and fails construction.
func New[S any](host Host[S], cat *catalog.Catalog, opts ...Option[S]) (*Engine[S], error) {
	e := &Engine[S]{
		host:      host,
		catalog:   cat,
		resolvers: make(map[string]PageResolver[S]),
		tokens:    UUIDv7Generator{},
		maxUndo:   DefaultMaxUndo,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.maxUndo < 1 {
		return nil, fmt.Errorf("engine: max undo must be at least 1, got %d", e.maxUndo)
	}
	for _, name := range cat.ResolverNames() {
		if _, ok := e.resolvers[name]; !ok {
			return nil, fmt.Errorf("engine: catalog references unregistered redo-page resolver %q", name)
		}
	}
	return e, nil
}

// MustNew builds an engine and panics on configuration errors.
func MustNew[S any](host Host[S], cat *catalog.Catalog, opts ...Option[S]) *Engine[S] {
	e, err := New(host, cat, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// CanUndo reports whether the log holds an active frame to undo.
func (e *Engine[S]) CanUndo(l *history.Log[S]) bool {
	return l != nil && l.CanUndo()
}

// CanRedo reports whether the log holds an active frame to redo.
func (e *Engine[S]) CanRedo(l *history.Log[S]) bool {
	return l != nil && l.CanRedo()
}

// Catalog returns the engine's compiled catalog.
func (e *Engine[S]) Catalog() *catalog.Catalog {
	return e.catalog
}
