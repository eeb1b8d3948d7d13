// Package action defines the vocabulary the undo engine speaks: action
// kinds, opaque-but-constrained payload values, and page identifiers.
//
// The engine never interprets payload fields. Payloads exist so that
// dispatched actions can be carried through history, replayed through the
// host reducer, and serialized deterministically for transcripts.
package action

// Kind identifies an action type in the host's catalog.
// The engine only ever inspects the kind, never the payload.
type Kind string

// PageID identifies a navigational page in the host application.
type PageID string

// Class is the engine-level classification of an action kind.
type Class int

const (
	// ClassIgnored marks actions that advance state but never create or
	// activate an undo point: view-only actions, router-internal actions,
	// and any kind the catalog does not know.
	ClassIgnored Class = iota

	// ClassUndoable marks actions that trigger a new undo frame.
	ClassUndoable

	// ClassUndo marks the control action requesting history navigation back.
	ClassUndo

	// ClassRedo marks the control action requesting history navigation forward.
	ClassRedo
)

// String returns the class name used in transcripts and logs.
func (c Class) String() string {
	switch c {
	case ClassUndoable:
		return "undoable"
	case ClassUndo:
		return "undo"
	case ClassRedo:
		return "redo"
	default:
		return "ignored"
	}
}

// Action is a tagged value dispatched against the host reducer.
type Action struct {
	Kind    Kind   `json:"kind"`
	Payload Object `json:"payload,omitempty"`
}

// New builds an action with the given kind and payload pairs.
//
// Example: New("addShipment", P("id", Int(7)), P("name", String("crate")))
func New(kind Kind, pairs ...Pair) Action {
	if len(pairs) == 0 {
		return Action{Kind: kind}
	}
	payload := make(Object, len(pairs))
	for _, p := range pairs {
		payload[p.Key] = p.Value
	}
	return Action{Kind: kind, Payload: payload}
}

// Kinds extracts the kind of every action in order.
func Kinds(actions []Action) []Kind {
	kinds := make([]Kind, len(actions))
	for i, a := range actions {
		kinds[i] = a.Kind
	}
	return kinds
}
