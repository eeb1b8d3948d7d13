// Package planner is the reference host for the undo engine: a small
// route-planning editor with shipments, vehicles, and generated routes.
//
// It exists so the engine has a realistic reducer to wrap in tests, in
// the harness, and in the CLI. The reducer is pure and deterministic;
// every transition returns a new State value and collections are cloned
// before modification.
package planner

import (
	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/engine"
)

// Pages of the planner UI.
const (
	PageWelcome   action.PageID = "welcome"
	PageShipments action.PageID = "shipments"
	PageVehicles  action.PageID = "vehicles"
	PageRoutes    action.PageID = "routes"
)

// Shipment is a unit of demand to be routed.
type Shipment struct {
	ID     int64
	Name   string
	Demand int64
}

// Vehicle carries shipments on a route.
type Vehicle struct {
	ID       int64
	Label    string
	Capacity int64
}

// Route is one vehicle's generated assignment.
type Route struct {
	ID          int64
	VehicleID   int64
	ShipmentIDs []int64
}

// State is the full planner state. The history log lives beside it,
// threaded separately through the engine, never inside it.
type State struct {
	// Navigation substate. Stripped from base snapshots and carried
	// across undo/redo from the live state.
	Page    action.PageID
	LastNav string

	// Entity collections.
	Shipments map[int64]Shipment
	Vehicles  map[int64]Vehicle
	Routes    map[int64]Route

	// Live view substate, excluded from undo/redo.
	SelectedShipments engine.IDSet
	SelectedVehicles  engine.IDSet
	Filter            string
	SaveInFlight      bool
}

// NewState returns the unstarted planner state on the welcome page.
func NewState() State {
	return State{Page: PageWelcome}
}

func cloneShipments(m map[int64]Shipment) map[int64]Shipment {
	next := make(map[int64]Shipment, len(m))
	for k, v := range m {
		next[k] = v
	}
	return next
}

func cloneVehicles(m map[int64]Vehicle) map[int64]Vehicle {
	next := make(map[int64]Vehicle, len(m))
	for k, v := range m {
		next[k] = v
	}
	return next
}

func cloneRoutes(m map[int64]Route) map[int64]Route {
	next := make(map[int64]Route, len(m))
	for k, v := range m {
		next[k] = v
	}
	return next
}
