package planner

import (
	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/engine"
)

// Host adapts the planner state to the engine. Stateless; the zero
// value is ready to use.
type Host struct{}

var _ engine.Host[State] = Host{}

func (Host) Apply(s State, a action.Action) State {
	return Apply(s, a)
}

func (Host) Page(s State) action.PageID {
	return s.Page
}

func (Host) WithPage(s State, p action.PageID) State {
	s.Page = p
	return s
}

// CarryView moves the live view substate from the pre-undo state onto
// the replayed one. Selections are pruned by the engine, not here.
func (Host) CarryView(pre, replayed State) State {
	replayed.Page = pre.Page
	replayed.LastNav = pre.LastNav
	replayed.Filter = pre.Filter
	replayed.SaveInFlight = pre.SaveInFlight
	return replayed
}

func (Host) Selections(s State) map[string]engine.IDSet {
	return map[string]engine.IDSet{
		"shipments": s.SelectedShipments,
		"vehicles":  s.SelectedVehicles,
	}
}

func (Host) WithSelections(s State, sel map[string]engine.IDSet) State {
	s.SelectedShipments = sel["shipments"]
	s.SelectedVehicles = sel["vehicles"]
	return s
}

func (Host) Collections(s State) map[string]engine.IDSet {
	shipments := engine.NewIDSet()
	for id := range s.Shipments {
		shipments = shipments.With(id)
	}
	vehicles := engine.NewIDSet()
	for id := range s.Vehicles {
		vehicles = vehicles.With(id)
	}
	return map[string]engine.IDSet{
		"shipments": shipments,
		"vehicles":  vehicles,
	}
}

// StripTransient drops navigational context so base snapshots never
// replay from a recorded page.
func (Host) StripTransient(s State) State {
	s.Page = ""
	s.LastNav = ""
	return s
}
