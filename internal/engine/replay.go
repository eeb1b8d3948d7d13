package engine

import (
	"log/slog"

	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/history"
)

// Replay reconstructs a state by folding the host reducer over an action
// sequence, left to right. Pure and deterministic: no side effects, no
// early exit, and the cost of one undo or redo is bounded by the undo
// stack bound times the frame size.
func (e *Engine[S]) Replay(base S, actions []action.Action) S {
	s := base
	for _, a := range actions {
		s = e.host.Apply(s, a)
	}
	return s
}

// undo handles the undo control action.
//
// With no active frame this is not history navigation at all: the control
// action falls through as an ordinary ignored merge. Otherwise frames
// move from the undo stack onto the redo stack, up to and including the
// first active one, and the state is recomputed from the base snapshot.
func (e *Engine[S]) undo(l *history.Log[S], s S, a action.Action) (*history.Log[S], S) {
	if !l.CanUndo() {
		return e.merge(l, s, a)
	}

	l2 := l.ShiftToRedo()
	replayed := e.Replay(l2.Initial, l2.Replayable())
	next := e.mergeView(s, replayed, "")

	slog.Debug("undo applied",
		"session", l2.Session,
		"undo_depth", l2.Undo.Len(),
		"redo_depth", l2.Redo.Len(),
	)
	return l2, next
}

// redo handles the redo control action, symmetric to undo. The restored
// frame's stored redo page, when present, overrides the live page.
func (e *Engine[S]) redo(l *history.Log[S], s S, a action.Action) (*history.Log[S], S) {
	f, l2 := l.ShiftToUndo()
	if f == nil {
		return e.merge(l, s, a)
	}

	replayed := e.Replay(l2.Initial, l2.Replayable())
	next := e.mergeView(s, replayed, f.RedoPage)

	slog.Debug("redo applied",
		"session", l2.Session,
		"trigger", f.Trigger,
		"undo_depth", l2.Undo.Len(),
		"redo_depth", l2.Redo.Len(),
	)
	return l2, next
}
