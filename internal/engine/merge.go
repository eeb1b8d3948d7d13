package engine

import "github.com/undolab/rewind/internal/action"

// mergeView combines a replayed state with the live view substates of the
// state that existed immediately before the undo/redo.
//
// The page, navigation substate, and in-flight markers follow the live
// state: undoing an edit must not teleport the user or forget a pending
// request. Selections also follow the live state but are pruned to entity
// ids that survived the replay, so selecting an item and then undoing its
// creation leaves no dangling selection behind.
func (e *Engine[S]) mergeView(pre, replayed S, redoPage action.PageID) S {
	next := e.host.CarryView(pre, replayed)

	live := e.host.Selections(pre)
	surviving := e.host.Collections(replayed)
	pruned := make(map[string]IDSet, len(live))
	for name, ids := range live {
		pruned[name] = ids.Intersect(surviving[name])
	}
	next = e.host.WithSelections(next, pruned)

	if redoPage != "" {
		next = e.host.WithPage(next, redoPage)
	}
	return next
}
