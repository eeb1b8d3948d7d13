package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestTraceCommand_Text(t *testing.T) {
	path := writeScenarioFile(t, passingScenarioYAML)

	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "roundtrip: 3 event(s)")
	assert.Contains(t, out, "addShipment")
	assert.Contains(t, out, "undo=1 redo=0")
	assert.Contains(t, out, "page=welcome")
}

func TestTraceCommand_JSONIsCanonical(t *testing.T) {
	path := writeScenarioFile(t, passingScenarioYAML)

	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, `"scenario_name":"roundtrip"`)
	assert.Contains(t, out, `"session":"fixed"`)
	assert.Contains(t, out, `"kind":"addShipment"`)
}

func TestTraceCommand_FailedExpectation(t *testing.T) {
	path := writeScenarioFile(t, failingScenarioYAML)

	buf := &bytes.Buffer{}
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "can_undo")
}

func TestTraceCommand_MissingFile(t *testing.T) {
	cmd := NewTraceCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
