package harness

import (
	"fmt"
	"maps"
	"slices"

	"github.com/undolab/rewind/internal/history"
	"github.com/undolab/rewind/internal/planner"
)

// checkExpect evaluates one expectation clause against the log and state
// after a dispatch, returning one message per failed field.
func checkExpect(e *Expect, l *history.Log[planner.State], s planner.State) []string {
	var errs []string

	canUndo, canRedo := false, false
	undoDepth, redoDepth := 0, 0
	session := ""
	if l != nil {
		canUndo, canRedo = l.CanUndo(), l.CanRedo()
		undoDepth, redoDepth = l.Undo.Len(), l.Redo.Len()
		session = l.Session
	}

	if e.CanUndo != nil && canUndo != *e.CanUndo {
		errs = append(errs, fmt.Sprintf("can_undo: expected %v, got %v", *e.CanUndo, canUndo))
	}
	if e.CanRedo != nil && canRedo != *e.CanRedo {
		errs = append(errs, fmt.Sprintf("can_redo: expected %v, got %v", *e.CanRedo, canRedo))
	}
	if e.UndoDepth != nil && undoDepth != *e.UndoDepth {
		errs = append(errs, fmt.Sprintf("undo_depth: expected %d, got %d", *e.UndoDepth, undoDepth))
	}
	if e.RedoDepth != nil && redoDepth != *e.RedoDepth {
		errs = append(errs, fmt.Sprintf("redo_depth: expected %d, got %d", *e.RedoDepth, redoDepth))
	}
	if e.Page != "" && string(s.Page) != e.Page {
		errs = append(errs, fmt.Sprintf("page: expected %q, got %q", e.Page, s.Page))
	}
	if e.Session != "" && session != e.Session {
		errs = append(errs, fmt.Sprintf("session: expected %q, got %q", e.Session, session))
	}

	for _, name := range slices.Sorted(maps.Keys(e.Selections)) {
		want := e.Selections[name]
		got := planner.Host{}.Selections(s)[name].Sorted()
		sorted := slices.Clone(want)
		slices.Sort(sorted)
		if !slices.Equal(got, sorted) {
			errs = append(errs, fmt.Sprintf("selections[%s]: expected %v, got %v", name, sorted, got))
		}
	}
	return errs
}
