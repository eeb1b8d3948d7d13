package history

import "github.com/undolab/rewind/internal/action"

// Log is the full undo/redo history for one editing session.
//
// The externally visible state is always reproducible as
//
//	replay(Initial, Tail) then replay(result, Undo.Flatten())
//
// modulo the preserved view substates, which deliberately track the live
// state instead of the replay.
type Log[S any] struct {
	// Session correlates every transition of this log in transcripts
	// and logs. Assigned when the log is created.
	Session string

	// Initial is the base snapshot all replays start from. It never
	// contains history or navigation substate.
	Initial S

	// Tail holds actions applied directly atop Initial before any frame
	// existed, and actions absorbed by truncation.
	Tail []action.Action

	// Undo holds the applied frames, oldest at the bottom.
	Undo Stack

	// Redo holds undone frames. The top is the next frame to redo.
	Redo Stack
}

// New starts an empty log from a base snapshot.
func New[S any](initial S, session string) *Log[S] {
	return &Log[S]{Session: session, Initial: initial}
}

// Append merges an action into the open context: the top undo frame when
// one exists, the pre-history tail otherwise.
func (l *Log[S]) Append(a action.Action) *Log[S] {
	next := *l
	if top := l.Undo.Top(); top != nil {
		next.Undo = l.Undo.ReplaceTop(top.withAction(a))
		return &next
	}
	next.Tail = append(append(make([]action.Action, 0, len(l.Tail)+1), l.Tail...), a)
	return &next
}

// ResolveTop fixes the activation of a pending top frame.
// No-op when the top frame is absent or already resolved.
func (l *Log[S]) ResolveTop(active bool) *Log[S] {
	top := l.Undo.Top()
	if top == nil || !top.Pending {
		return l
	}
	next := *l
	next.Undo = l.Undo.ReplaceTop(top.withResolved(active))
	return &next
}

// FoldInactiveTop removes an inactive top frame, if any, and returns its
// actions so the caller can prepend them into the frame about to be
// pushed. An inactive frame never survives a subsequent trigger: it was
// either provisional and unconfirmed, or retroactively deactivated.
func (l *Log[S]) FoldInactiveTop() ([]action.Action, *Log[S]) {
	top := l.Undo.Top()
	if top == nil || top.Active {
		return nil, l
	}
	_, rest := l.Undo.Pop()
	next := *l
	next.Undo = rest
	return top.Actions, &next
}

// Push places a new frame on the undo stack and clears the redo stack:
// a fresh edit invalidates all forward history.
func (l *Log[S]) Push(f *Frame, folded []action.Action) *Log[S] {
	next := *l
	next.Undo = l.Undo.Push(f.withPrepended(folded))
	next.Redo = Stack{}
	return &next
}

// Truncate drops the oldest frames until at most max remain, returning
// the dropped frames so the caller can absorb their actions into a new
// base snapshot.
func (l *Log[S]) Truncate(max int) ([]*Frame, *Log[S]) {
	over := l.Undo.Len() - max
	if over <= 0 {
		return nil, l
	}
	dropped, rest := l.Undo.DropBottom(over)
	next := *l
	next.Undo = rest
	return dropped, &next
}

// Rebase replaces the base snapshot and clears the tail. Used after
// truncation has absorbed the tail and the oldest frames into a new base.
func (l *Log[S]) Rebase(initial S) *Log[S] {
	next := *l
	next.Initial = initial
	next.Tail = nil
	return &next
}

// ShiftToRedo moves frames from the undo top onto the redo top, one at a
// time, until and including the first active frame moved. Inactive
// stragglers above it travel along so a later redo can restore them.
// Returns the log unchanged when no active frame exists.
func (l *Log[S]) ShiftToRedo() *Log[S] {
	if !l.Undo.AnyActive() {
		return l
	}
	next := *l
	for {
		f, rest := next.Undo.Pop()
		next.Undo = rest
		next.Redo = next.Redo.Push(f)
		if f.Active {
			return &next
		}
	}
}

// ShiftToUndo moves frames from the redo top back onto the undo top, one
// at a time, until and including the first active frame moved. Symmetric
// counterpart of ShiftToRedo.
func (l *Log[S]) ShiftToUndo() (*Frame, *Log[S]) {
	if !l.Redo.AnyActive() {
		return nil, l
	}
	next := *l
	for {
		f, rest := next.Redo.Pop()
		next.Redo = rest
		next.Undo = next.Undo.Push(f)
		if f.Active {
			return f, &next
		}
	}
}

// CanUndo reports whether an active frame exists to undo.
func (l *Log[S]) CanUndo() bool {
	return l.Undo.AnyActive()
}

// CanRedo reports whether an active frame exists to redo.
func (l *Log[S]) CanRedo() bool {
	return l.Redo.AnyActive()
}

// Replayable returns the complete action sequence reconstructing the
// current state from Initial: the tail followed by every undo frame.
func (l *Log[S]) Replayable() []action.Action {
	out := make([]action.Action, 0, len(l.Tail))
	out = append(out, l.Tail...)
	return append(out, l.Undo.Flatten()...)
}
