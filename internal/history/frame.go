// Package history holds the undo/redo log: frames, the two frame stacks,
// and the base snapshot they replay on top of.
//
// Everything here is immutable. Operations return a new Log value sharing
// unchanged structure with the old one; neither frames nor stacks are ever
// mutated in place. That makes "replace wholesale on each transition" a
// property of the types rather than a convention callers must remember.
package history

import "github.com/undolab/rewind/internal/action"

// Frame is one undo point: the triggering action plus every ignored action
// dispatched after it, up to the next trigger. Jumping to a frame boundary
// therefore always lands on a complete, visually consistent state.
type Frame struct {
	// Actions is the ordered action list. The first entry is the trigger
	// unless an inactive predecessor was folded in ahead of it.
	Actions []action.Action

	// Trigger is the kind that opened this frame.
	Trigger action.Kind

	// SourcePage is the page the user was on when the trigger fired.
	SourcePage action.PageID

	// RedoPage, when set, is the page to land on when this frame is redone.
	RedoPage action.PageID

	// Active marks whether this frame currently counts as a real undo point.
	Active bool

	// Pending marks a provisional frame still awaiting a confirming
	// follow-up action. Once a different trigger arrives, Pending frames
	// are resolved and Active is fixed for good.
	Pending bool
}

// NewFrame opens a frame for a triggering action.
func NewFrame(trigger action.Action, sourcePage action.PageID) *Frame {
	return &Frame{
		Actions:    []action.Action{trigger},
		Trigger:    trigger.Kind,
		SourcePage: sourcePage,
	}
}

// withAction returns a copy of the frame with one more action appended.
func (f *Frame) withAction(a action.Action) *Frame {
	next := *f
	next.Actions = append(append(make([]action.Action, 0, len(f.Actions)+1), f.Actions...), a)
	return &next
}

// withResolved returns a copy with the activation flag fixed.
func (f *Frame) withResolved(active bool) *Frame {
	next := *f
	next.Active = active
	next.Pending = false
	return &next
}

// withPrepended returns a copy with the given actions placed ahead of the
// frame's own. Used when an inactive predecessor is folded into a newly
// pushed frame: its actions replay first, before the new trigger.
func (f *Frame) withPrepended(actions []action.Action) *Frame {
	if len(actions) == 0 {
		return f
	}
	next := *f
	next.Actions = append(append(make([]action.Action, 0, len(actions)+len(f.Actions)), actions...), f.Actions...)
	return &next
}

// Kinds returns the kinds of the frame's actions in order.
func (f *Frame) Kinds() []action.Kind {
	return action.Kinds(f.Actions)
}
