package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Smoke(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "smoke.yaml"))
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestMarshalTranscript_Canonical(t *testing.T) {
	result := NewResult()
	result.Trace = append(result.Trace, TraceEvent{
		Seq:       1,
		Kind:      "undo",
		Session:   "s",
		UndoDepth: 0,
		RedoDepth: 1,
		Page:      "welcome",
	})

	out, err := MarshalTranscript("t", "s", result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario_name":"t","session":"s","trace":[{"kind":"undo","page":"welcome","redo_depth":1,"seq":1,"session":"s","undo_depth":0}]}`,
		string(out))
}

func TestMarshalTranscript_OmitsEmptySession(t *testing.T) {
	out, err := MarshalTranscript("t", "", NewResult())
	require.NoError(t, err)
	assert.Equal(t, `{"scenario_name":"t","trace":[]}`, string(out))
}
