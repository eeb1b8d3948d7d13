package engine

import (
	"log/slog"

	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/catalog"
	"github.com/undolab/rewind/internal/history"
)

// Dispatch is the single entry point. It processes one action to
// completion and returns the new log and the new externally visible
// state. A nil log starts a fresh session seeded from s.
func (e *Engine[S]) Dispatch(l *history.Log[S], s S, a action.Action) (*history.Log[S], S) {
	if l == nil {
		l = history.New(e.host.StripTransient(s), e.tokens.Generate())
		slog.Debug("history log created", "session", l.Session)
	}

	// Router-internal actions skip the catalog but still merge, so that
	// replay reproduces every state the reducer ever saw.
	if e.catalog.RouterInternal(a.Kind) {
		return e.merge(l, s, a)
	}

	switch e.catalog.Classify(a.Kind) {
	case action.ClassUndo:
		return e.undo(l, s, a)
	case action.ClassRedo:
		return e.redo(l, s, a)
	case action.ClassUndoable:
		return e.push(l, s, a)
	default:
		return e.merge(l, s, a)
	}
}

// merge handles the common case: the action advances state but is not an
// undo point. It folds into the top undo frame when one exists, into the
// pre-history tail otherwise, and may confirm a provisional top frame.
func (e *Engine[S]) merge(l *history.Log[S], s S, a action.Action) (*history.Log[S], S) {
	next := e.host.Apply(s, a)

	if top := l.Undo.Top(); top != nil && top.Pending {
		if rule, ok := e.catalog.Rule(top.Trigger); ok && rule.Confirms(a.Kind) {
			l = l.ResolveTop(true)
			slog.Debug("provisional frame confirmed",
				"session", l.Session,
				"trigger", top.Trigger,
				"confirmed_by", a.Kind,
			)
		}
	}
	l = l.Append(a)

	return e.checkHomeReset(l, s, next), next
}

// push opens a new undo frame for an undoable action.
func (e *Engine[S]) push(l *history.Log[S], s S, a action.Action) (*history.Log[S], S) {
	rule, _ := e.catalog.Rule(a.Kind)
	pageBefore := e.host.Page(s)
	next := e.host.Apply(s, a)

	// A different trigger arrived: a still-pending top frame is fixed
	// inactive for good, then any inactive top is folded forward into
	// the frame about to be pushed (its actions replay first).
	l = l.ResolveTop(false)
	folded, l2 := l.FoldInactiveTop()

	f := history.NewFrame(a, pageBefore)
	switch {
	case l2.Undo.Top() != nil && rule.DeactivatedBy(l2.Undo.Top().Kinds()):
		// Permanently inactive: no follow-up can revive it.
	case rule.Provisional():
		f.Pending = true
	default:
		f.Active = true
	}
	f.RedoPage = e.redoPage(rule, s)

	l3 := l2.Push(f, folded)
	slog.Debug("frame pushed",
		"session", l3.Session,
		"trigger", a.Kind,
		"active", f.Active,
		"pending", f.Pending,
		"depth", l3.Undo.Len(),
	)

	l3 = e.truncate(l3)
	return e.checkHomeReset(l3, s, next), next
}

// truncate folds the oldest frames into the base snapshot when the undo
// stack exceeds the bound, keeping replay cost and memory bounded.
func (e *Engine[S]) truncate(l *history.Log[S]) *history.Log[S] {
	dropped, l2 := l.Truncate(e.maxUndo)
	if len(dropped) == 0 {
		return l
	}

	absorbed := append([]action.Action{}, l2.Tail...)
	for _, f := range dropped {
		absorbed = append(absorbed, f.Actions...)
	}
	base := e.host.StripTransient(e.Replay(l2.Initial, absorbed))

	slog.Info("history truncated",
		"session", l2.Session,
		"folded_frames", len(dropped),
		"depth", l2.Undo.Len(),
	)
	return l2.Rebase(base)
}

// checkHomeReset resets history whenever the action navigated the
// application back to its home page: starting over is a hard history
// boundary, not an undoable edit.
func (e *Engine[S]) checkHomeReset(l *history.Log[S], before, after S) *history.Log[S] {
	home := e.catalog.HomePage()
	if e.host.Page(after) != home || e.host.Page(before) == home {
		return l
	}
	fresh := history.New(e.host.StripTransient(after), e.tokens.Generate())
	slog.Info("history reset at home page",
		"old_session", l.Session,
		"session", fresh.Session,
	)
	return fresh
}

// redoPage resolves the page a redo of this frame should land on,
// evaluated against the state before the trigger.
func (e *Engine[S]) redoPage(rule catalog.Rule, before S) action.PageID {
	if rule.RedoPage != "" {
		return rule.RedoPage
	}
	if rule.RedoPageResolver != "" {
		return e.resolvers[rule.RedoPageResolver](before)
	}
	return ""
}
