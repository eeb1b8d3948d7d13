package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/undolab/rewind/internal/action"
)

// TraceSnapshot is the golden-file form of a scenario run.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Session      string       `json:"session,omitempty"`
	Trace        []TraceEvent `json:"trace"`
}

// MarshalTranscript serializes a result's trace in canonical JSON.
// Shared by golden comparison and the replay command: two runs of the
// same scenario must produce byte-identical transcripts.
func MarshalTranscript(name, session string, result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{ScenarioName: name, Session: session, Trace: result.Trace}
	return action.MarshalCanonical(snapshot.toCanonicalMap())
}

func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	trace := make([]any, len(s.Trace))
	for i, ev := range s.Trace {
		m := action.Object{
			"seq":        action.Int(ev.Seq),
			"kind":       action.String(ev.Kind),
			"session":    action.String(ev.Session),
			"undo_depth": action.Int(ev.UndoDepth),
			"redo_depth": action.Int(ev.RedoDepth),
		}
		if ev.Payload != nil {
			m["payload"] = ev.Payload
		}
		if ev.Page != "" {
			m["page"] = action.String(ev.Page)
		}
		trace[i] = m
	}

	out := map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         trace,
	}
	if s.Session != "" {
		out["session"] = s.Session
	}
	return out
}

// RunWithGolden executes a scenario and compares its transcript against
// testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	transcript, err := MarshalTranscript(scenario.Name, scenario.Session, result)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, transcript)
	return result, nil
}
