package harness

import "github.com/undolab/rewind/internal/action"

// TraceEvent records one dispatch: the action, the session it landed in,
// and the history shape and page it left behind.
type TraceEvent struct {
	Seq       int64         `json:"seq"`
	Kind      string        `json:"kind"`
	Payload   action.Object `json:"payload,omitempty"`
	Session   string        `json:"session"`
	UndoDepth int           `json:"undo_depth"`
	RedoDepth int           `json:"redo_depth"`
	Page      string        `json:"page,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Trace holds one event per dispatched step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors lists failed expectations. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{Pass: true, Trace: []TraceEvent{}}
}

// AddError records a failed expectation and marks the run failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
