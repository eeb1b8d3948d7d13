package planner

import (
	"slices"

	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/engine"
)

// Apply is the planner's base reducer: a pure state transition per
// action. Unknown kinds return the state unchanged, which keeps the
// reducer total for every action the engine replays through it.
func Apply(s State, a action.Action) State {
	switch a.Kind {
	case KindNavigate:
		s.Page = action.PageID(payloadString(a, "page"))
		s.LastNav = payloadString(a, "page")
		return s

	case KindUploadScenario:
		s.Shipments = shipmentsFromPayload(a)
		s.Vehicles = vehiclesFromPayload(a)
		s.Routes = nil
		s.SelectedShipments = nil
		s.SelectedVehicles = nil
		return s

	case KindAddShipment:
		next := cloneShipments(s.Shipments)
		sh := shipmentFromObject(a.Payload)
		next[sh.ID] = sh
		s.Shipments = next
		return s

	case KindUpdateShipment:
		id := payloadInt(a, "id")
		sh, ok := s.Shipments[id]
		if !ok {
			return s
		}
		if name, ok := a.Payload["name"].(action.String); ok {
			sh.Name = string(name)
		}
		if demand, ok := a.Payload["demand"].(action.Int); ok {
			sh.Demand = int64(demand)
		}
		next := cloneShipments(s.Shipments)
		next[id] = sh
		s.Shipments = next
		return s

	case KindDeleteShipment:
		id := payloadInt(a, "id")
		if _, ok := s.Shipments[id]; !ok {
			return s
		}
		next := cloneShipments(s.Shipments)
		delete(next, id)
		s.Shipments = next
		s.Routes = routesWithoutShipment(s.Routes, id)
		if s.SelectedShipments.Has(id) {
			s.SelectedShipments = s.SelectedShipments.Without(id)
		}
		return s

	case KindAddVehicle:
		next := cloneVehicles(s.Vehicles)
		v := Vehicle{
			ID:       payloadInt(a, "id"),
			Label:    payloadString(a, "label"),
			Capacity: payloadInt(a, "capacity"),
		}
		next[v.ID] = v
		s.Vehicles = next
		return s

	case KindDeleteVehicle:
		id := payloadInt(a, "id")
		if _, ok := s.Vehicles[id]; !ok {
			return s
		}
		next := cloneVehicles(s.Vehicles)
		delete(next, id)
		s.Vehicles = next
		if s.Routes != nil {
			routes := cloneRoutes(s.Routes)
			delete(routes, id)
			s.Routes = routes
		}
		if s.SelectedVehicles.Has(id) {
			s.SelectedVehicles = s.SelectedVehicles.Without(id)
		}
		return s

	case KindGenerateSolution:
		s.Routes = generateRoutes(s.Shipments, s.Vehicles)
		return s

	case KindClearSolution:
		s.Routes = nil
		return s

	case KindSaveRequest:
		s.SaveInFlight = true
		return s

	case KindSaveSuccess, KindSaveFailure:
		s.SaveInFlight = false
		return s

	case KindSelectShipments:
		s.SelectedShipments = idSetFromPayload(a, "ids")
		return s

	case KindSelectVehicles:
		s.SelectedVehicles = idSetFromPayload(a, "ids")
		return s

	case KindSetFilter:
		s.Filter = payloadString(a, "value")
		return s

	default:
		return s
	}
}

// generateRoutes assigns shipments to vehicles round-robin in ascending
// id order. Deterministic on purpose: solutions must replay identically.
func generateRoutes(shipments map[int64]Shipment, vehicles map[int64]Vehicle) map[int64]Route {
	if len(vehicles) == 0 {
		return nil
	}

	vehicleIDs := make([]int64, 0, len(vehicles))
	for id := range vehicles {
		vehicleIDs = append(vehicleIDs, id)
	}
	slices.Sort(vehicleIDs)

	shipmentIDs := make([]int64, 0, len(shipments))
	for id := range shipments {
		shipmentIDs = append(shipmentIDs, id)
	}
	slices.Sort(shipmentIDs)

	routes := make(map[int64]Route, len(vehicleIDs))
	for _, vid := range vehicleIDs {
		routes[vid] = Route{ID: vid, VehicleID: vid}
	}
	for i, sid := range shipmentIDs {
		vid := vehicleIDs[i%len(vehicleIDs)]
		r := routes[vid]
		r.ShipmentIDs = append(r.ShipmentIDs, sid)
		routes[vid] = r
	}
	return routes
}

func routesWithoutShipment(routes map[int64]Route, id int64) map[int64]Route {
	if routes == nil {
		return nil
	}
	next := make(map[int64]Route, len(routes))
	for k, r := range routes {
		if slices.Contains(r.ShipmentIDs, id) {
			kept := make([]int64, 0, len(r.ShipmentIDs)-1)
			for _, sid := range r.ShipmentIDs {
				if sid != id {
					kept = append(kept, sid)
				}
			}
			r.ShipmentIDs = kept
		}
		next[k] = r
	}
	return next
}

func shipmentFromObject(o action.Object) Shipment {
	sh := Shipment{}
	if v, ok := o["id"].(action.Int); ok {
		sh.ID = int64(v)
	}
	if v, ok := o["name"].(action.String); ok {
		sh.Name = string(v)
	}
	if v, ok := o["demand"].(action.Int); ok {
		sh.Demand = int64(v)
	}
	return sh
}

func shipmentsFromPayload(a action.Action) map[int64]Shipment {
	arr, ok := a.Payload["shipments"].(action.Array)
	if !ok {
		return nil
	}
	out := make(map[int64]Shipment, len(arr))
	for _, elem := range arr {
		if obj, ok := elem.(action.Object); ok {
			sh := shipmentFromObject(obj)
			out[sh.ID] = sh
		}
	}
	return out
}

func vehiclesFromPayload(a action.Action) map[int64]Vehicle {
	arr, ok := a.Payload["vehicles"].(action.Array)
	if !ok {
		return nil
	}
	out := make(map[int64]Vehicle, len(arr))
	for _, elem := range arr {
		obj, ok := elem.(action.Object)
		if !ok {
			continue
		}
		v := Vehicle{}
		if val, ok := obj["id"].(action.Int); ok {
			v.ID = int64(val)
		}
		if val, ok := obj["label"].(action.String); ok {
			v.Label = string(val)
		}
		if val, ok := obj["capacity"].(action.Int); ok {
			v.Capacity = int64(val)
		}
		out[v.ID] = v
	}
	return out
}

func idSetFromPayload(a action.Action, key string) engine.IDSet {
	arr, ok := a.Payload[key].(action.Array)
	if !ok {
		return nil
	}
	ids := make([]int64, 0, len(arr))
	for _, elem := range arr {
		if n, ok := elem.(action.Int); ok {
			ids = append(ids, int64(n))
		}
	}
	return engine.NewIDSet(ids...)
}

func payloadString(a action.Action, key string) string {
	if v, ok := a.Payload[key].(action.String); ok {
		return string(v)
	}
	return ""
}

func payloadInt(a action.Action, key string) int64 {
	if v, ok := a.Payload[key].(action.Int); ok {
		return int64(v)
	}
	return 0
}
