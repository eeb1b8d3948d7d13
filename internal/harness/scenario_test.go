package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario_Valid(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: roundtrip
description: Add a shipment and undo it.
session: fixed
steps:
  - dispatch: addShipment
    payload: {id: 1, name: crates, demand: 2}
  - dispatch: undo
    expect:
      can_undo: false
      can_redo: true
      undo_depth: 0
final:
  redo_depth: 1
`))
	require.NoError(t, err)

	assert.Equal(t, "roundtrip", s.Name)
	assert.Equal(t, "fixed", s.Session)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, "addShipment", s.Steps[0].Dispatch)
	assert.Equal(t, 1, s.Steps[0].Payload["id"])

	expect := s.Steps[1].Expect
	require.NotNil(t, expect)
	require.NotNil(t, expect.CanUndo)
	assert.False(t, *expect.CanUndo)
	require.NotNil(t, s.Final)
	require.NotNil(t, s.Final.RedoDepth)
	assert.Equal(t, 1, *s.Final.RedoDepth)
}

func TestParseScenario_RejectsUnknownField(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: typo
description: A misspelled field must not be silently dropped.
steps:
  - dispatch: addShipment
    expct:
      can_undo: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario YAML")
}

func TestParseScenario_RequiredFields(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: "description: d\nsteps:\n  - dispatch: undo\n",
			want: "name is required",
		},
		{
			name: "missing description",
			yaml: "name: n\nsteps:\n  - dispatch: undo\n",
			want: "description is required",
		},
		{
			name: "no steps",
			yaml: "name: n\ndescription: d\n",
			want: "steps list is required",
		},
		{
			name: "step without dispatch",
			yaml: "name: n\ndescription: d\nsteps:\n  - payload: {id: 1}\n",
			want: "dispatch is required",
		},
		{
			name: "negative undo depth",
			yaml: "name: n\ndescription: d\nsteps:\n  - dispatch: undo\n    expect:\n      undo_depth: -1\n",
			want: "undo_depth must be non-negative",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadScenario_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"name: file\ndescription: Loaded from disk.\nsteps:\n  - dispatch: undo\n",
	), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "file", s.Name)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scenario file")
}
