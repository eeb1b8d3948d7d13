package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undolab/rewind/internal/action"
)

type snap struct {
	n int
}

func act(kind action.Kind) action.Action {
	return action.New(kind)
}

func activeFrame(trigger action.Kind) *Frame {
	f := NewFrame(act(trigger), "shipments")
	f.Active = true
	return f
}

func TestAppend_TailBeforeAnyFrame(t *testing.T) {
	l := New(snap{}, "s-1")

	l2 := l.Append(act("selectShipments"))
	l3 := l2.Append(act("setFilter"))

	assert.Empty(t, l.Tail, "original log must be untouched")
	assert.Equal(t, []action.Kind{"selectShipments"}, action.Kinds(l2.Tail))
	assert.Equal(t, []action.Kind{"selectShipments", "setFilter"}, action.Kinds(l3.Tail))
}

func TestAppend_TopFrameWhenOneExists(t *testing.T) {
	l := New(snap{}, "s-1").Push(activeFrame("deleteShipment"), nil)

	l2 := l.Append(act("selectShipments"))

	require.Equal(t, 1, l2.Undo.Len())
	assert.Equal(t, []action.Kind{"deleteShipment", "selectShipments"}, l2.Undo.Top().Kinds())
	assert.Empty(t, l2.Tail)
	// The frame in the original log is unchanged.
	assert.Equal(t, []action.Kind{"deleteShipment"}, l.Undo.Top().Kinds())
}

func TestPush_ClearsRedo(t *testing.T) {
	l := New(snap{}, "s-1").
		Push(activeFrame("a"), nil).
		ShiftToRedo()
	require.Equal(t, 1, l.Redo.Len())

	l2 := l.Push(activeFrame("b"), nil)

	assert.Equal(t, 0, l2.Redo.Len())
	assert.Equal(t, 1, l2.Undo.Len())
}

func TestPush_FoldedActionsComeBeforeTrigger(t *testing.T) {
	l := New(snap{}, "s-1")

	// A provisional frame that never got confirmed.
	provisional := NewFrame(act("saveRequest"), "shipments")
	provisional.Pending = true
	l = l.Push(provisional, nil)
	l = l.Append(act("selectShipments"))

	folded, l2 := l.FoldInactiveTop()
	require.Equal(t, 0, l2.Undo.Len())
	assert.Equal(t, []action.Kind{"saveRequest", "selectShipments"}, action.Kinds(folded))

	l3 := l2.Push(activeFrame("deleteShipment"), folded)

	require.Equal(t, 1, l3.Undo.Len())
	assert.Equal(t,
		[]action.Kind{"saveRequest", "selectShipments", "deleteShipment"},
		l3.Undo.Top().Kinds(),
		"folded actions must replay before the new trigger")
	assert.Equal(t, action.Kind("deleteShipment"), l3.Undo.Top().Trigger)
}

func TestFoldInactiveTop_LeavesActiveTopAlone(t *testing.T) {
	l := New(snap{}, "s-1").Push(activeFrame("a"), nil)

	folded, l2 := l.FoldInactiveTop()

	assert.Nil(t, folded)
	assert.Equal(t, 1, l2.Undo.Len())
}

func TestResolveTop(t *testing.T) {
	pending := NewFrame(act("saveRequest"), "shipments")
	pending.Pending = true
	l := New(snap{}, "s-1").Push(pending, nil)

	l2 := l.ResolveTop(true)

	assert.True(t, l2.Undo.Top().Active)
	assert.False(t, l2.Undo.Top().Pending)
	// Resolving a non-pending top is a no-op.
	assert.Same(t, l2, l2.ResolveTop(false))
}

func TestShiftToRedo_NoActiveFrameIsNoop(t *testing.T) {
	pending := NewFrame(act("saveRequest"), "shipments")
	pending.Pending = true
	l := New(snap{}, "s-1").Push(pending, nil)

	assert.False(t, l.CanUndo())
	assert.Same(t, l, l.ShiftToRedo())
}

func TestShiftRoundTrip(t *testing.T) {
	l := New(snap{}, "s-1").
		Push(activeFrame("a"), nil).
		Push(activeFrame("b"), nil)

	undone := l.ShiftToRedo()
	assert.Equal(t, 1, undone.Undo.Len())
	assert.Equal(t, 1, undone.Redo.Len())
	assert.Equal(t, action.Kind("b"), undone.Redo.Top().Trigger)
	assert.True(t, undone.CanRedo())

	redone, restored := undone.ShiftToUndo()
	require.NotNil(t, redone)
	assert.Equal(t, action.Kind("b"), redone.Trigger)
	assert.Equal(t, 2, restored.Undo.Len())
	assert.Equal(t, 0, restored.Redo.Len())
	assert.Equal(t, action.Kind("b"), restored.Undo.Top().Trigger)
}

func TestShiftToRedo_CarriesInactiveStragglers(t *testing.T) {
	pending := NewFrame(act("saveRequest"), "shipments")
	pending.Pending = true
	l := New(snap{}, "s-1").
		Push(activeFrame("a"), nil).
		Push(pending, nil)

	undone := l.ShiftToRedo()

	assert.Equal(t, 0, undone.Undo.Len())
	assert.Equal(t, 2, undone.Redo.Len())
	// The active frame ends on top of redo, straggler beneath it.
	assert.Equal(t, action.Kind("a"), undone.Redo.Top().Trigger)
}

func TestDropBottom(t *testing.T) {
	l := New(snap{}, "s-1").
		Push(activeFrame("a"), nil).
		Push(activeFrame("b"), nil).
		Push(activeFrame("c"), nil)

	dropped, rest := l.Undo.DropBottom(2)

	require.Len(t, dropped, 2)
	assert.Equal(t, action.Kind("a"), dropped[0].Trigger)
	assert.Equal(t, action.Kind("b"), dropped[1].Trigger)
	assert.Equal(t, 1, rest.Len())
	assert.Equal(t, action.Kind("c"), rest.Top().Trigger)
}

func TestReplayable(t *testing.T) {
	l := New(snap{}, "s-1").
		Append(act("setFilter")).
		Push(activeFrame("a"), nil).
		Append(act("selectShipments"))

	assert.Equal(t,
		[]action.Kind{"setFilter", "a", "selectShipments"},
		action.Kinds(l.Replayable()))
}

func TestRebase(t *testing.T) {
	l := New(snap{n: 1}, "s-1").Append(act("x"))

	l2 := l.Rebase(snap{n: 9})

	assert.Equal(t, snap{n: 9}, l2.Initial)
	assert.Empty(t, l2.Tail)
	assert.Equal(t, snap{n: 1}, l.Initial)
}
