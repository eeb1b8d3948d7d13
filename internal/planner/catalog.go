package planner

import (
	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/catalog"
	"github.com/undolab/rewind/internal/engine"
)

// Action kinds the planner dispatches.
const (
	KindNavigate action.Kind = "router/navigate"

	KindUploadScenario action.Kind = "uploadScenario"
	KindAddShipment    action.Kind = "addShipment"
	KindUpdateShipment action.Kind = "updateShipment"
	KindDeleteShipment action.Kind = "deleteShipment"
	KindAddVehicle     action.Kind = "addVehicle"
	KindDeleteVehicle  action.Kind = "deleteVehicle"

	KindGenerateSolution action.Kind = "generateSolution"
	KindClearSolution    action.Kind = "clearSolution"

	KindSaveRequest action.Kind = "saveRequest"
	KindSaveSuccess action.Kind = "saveSuccess"
	KindSaveFailure action.Kind = "saveFailure"

	KindSelectShipments action.Kind = "selectShipments"
	KindSelectVehicles  action.Kind = "selectVehicles"
	KindSetFilter       action.Kind = "setFilter"

	KindUndo action.Kind = "undo"
	KindRedo action.Kind = "redo"
)

// ResolverPrePlanPage names the resolver that lands a redone solution on
// whatever page the user was planning from before generating.
const ResolverPrePlanPage = "prePlanPage"

// DefaultConfig is the planner's catalog in declarative form.
//
// The activation rules encode the planner's undo semantics:
//
//   - saveRequest is provisional; it counts as an undo point only once
//     the backend acknowledges with saveSuccess. A failed or abandoned
//     save merges into whatever frame came before it.
//   - clearSolution right after uploadScenario is noise, not intent:
//     the upload already reset the solution, so the frame deactivates.
//   - redoing generateSolution lands on the page the user generated
//     from, resolved against the state before the trigger.
func DefaultConfig() catalog.Config {
	return catalog.Config{
		UndoKind:     KindUndo,
		RedoKind:     KindRedo,
		HomePage:     PageWelcome,
		RouterPrefix: "router/",
		View: []action.Kind{
			KindSelectShipments,
			KindSelectVehicles,
			KindSetFilter,
			KindSaveSuccess,
			KindSaveFailure,
		},
		Rules: []catalog.Rule{
			{Kind: KindUploadScenario},
			{Kind: KindAddShipment},
			{Kind: KindUpdateShipment},
			{Kind: KindDeleteShipment},
			{Kind: KindAddVehicle},
			{Kind: KindDeleteVehicle},
			{
				Kind:             KindGenerateSolution,
				RedoPageResolver: ResolverPrePlanPage,
			},
			{
				Kind:                 KindClearSolution,
				InactiveIfPrecededBy: []action.Kind{KindUploadScenario},
			},
			{
				Kind:               KindSaveRequest,
				ActiveIfFollowedBy: []action.Kind{KindSaveSuccess},
			},
		},
	}
}

// DefaultCatalog compiles DefaultConfig. The config is static, so a
// validation failure is a bug and panics at init.
func DefaultCatalog() *catalog.Catalog {
	return catalog.MustNew(DefaultConfig())
}

// NewEngine wires the planner host, catalog, and resolvers into an
// engine. Extra options are applied after the planner's own.
func NewEngine(opts ...engine.Option[State]) (*engine.Engine[State], error) {
	base := []engine.Option[State]{
		engine.WithResolver(ResolverPrePlanPage, func(s State) action.PageID {
			return s.Page
		}),
	}
	return engine.New(Host{}, DefaultCatalog(), append(base, opts...)...)
}
