package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/undolab/rewind/internal/action"
	"github.com/undolab/rewind/internal/engine"
	"github.com/undolab/rewind/internal/history"
	"github.com/undolab/rewind/internal/planner"
	"github.com/undolab/rewind/internal/testutil"
)

// Harness executes one scenario against a fresh engine and planner
// state, numbering trace events with a deterministic step clock.
type Harness struct {
	engine *engine.Engine[planner.State]
	clock  *testutil.StepClock
	logger *slog.Logger
}

// Run executes a scenario and returns its result. Each run gets a fresh
// engine, state, and clock, so scenarios never leak into each other.
//
// Run itself only errors on malformed input, such as a float in a
// payload. Failed expectations do not error; they mark the result
// failed and are listed in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	opts := []engine.Option[planner.State]{
		engine.WithTokens[planner.State](testutil.NewFixedTokenGenerator(scenario.Session)),
	}
	if scenario.MaxUndo > 0 {
		opts = append(opts, engine.WithMaxUndo[planner.State](scenario.MaxUndo))
	}
	eng, err := planner.NewEngine(opts...)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	h := &Harness{
		engine: eng,
		clock:  testutil.NewStepClock(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return h.run(scenario)
}

func (h *Harness) run(scenario *Scenario) (*Result, error) {
	result := NewResult()

	var l *history.Log[planner.State]
	s := planner.NewState()

	for i, step := range scenario.Steps {
		payload, err := action.ObjectFromGo(step.Payload)
		if err != nil {
			return nil, fmt.Errorf("steps[%d] %s: payload: %w", i, step.Dispatch, err)
		}

		a := action.Action{Kind: action.Kind(step.Dispatch), Payload: payload}
		l, s = h.engine.Dispatch(l, s, a)

		result.Trace = append(result.Trace, TraceEvent{
			Seq:       h.clock.Next(),
			Kind:      step.Dispatch,
			Payload:   payload,
			Session:   l.Session,
			UndoDepth: l.Undo.Len(),
			RedoDepth: l.Redo.Len(),
			Page:      string(s.Page),
		})

		if step.Expect != nil {
			for _, msg := range checkExpect(step.Expect, l, s) {
				result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, step.Dispatch, msg))
			}
		}

		h.logger.Debug("step dispatched",
			"step", i,
			"kind", step.Dispatch,
			"session", l.Session,
			"undo_depth", l.Undo.Len(),
			"redo_depth", l.Redo.Len(),
		)
	}

	if scenario.Final != nil {
		for _, msg := range checkExpect(scenario.Final, l, s) {
			result.AddError("final: " + msg)
		}
	}
	return result, nil
}
