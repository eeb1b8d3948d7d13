package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileValidCatalog(t *testing.T) {
	dir := writeCatalogDir(t, validCatalogCUE)

	buf := &bytes.Buffer{}
	cmd := NewCompileCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "catalog compiled: 3 rule(s), 2 view kind(s)")
	assert.Contains(t, out, "controls: undo=undo redo=redo")
	assert.Contains(t, out, "home page: welcome")
	assert.Contains(t, out, "rule saveRequest (provisional, confirmed by [saveSuccess])")
	assert.Contains(t, out, "rule generateSolution -> redo page routes")
}

func TestCompileValidCatalogJSON(t *testing.T) {
	dir := writeCatalogDir(t, validCatalogCUE)

	buf := &bytes.Buffer{}
	cmd := NewCompileCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string          `json:"status"`
		Data   CompiledCatalog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "welcome", resp.Data.HomePage)
	assert.Equal(t, "router/", resp.Data.RouterPrefix)
	require.Len(t, resp.Data.Rules, 3)
	assert.Equal(t, "addShipment", string(resp.Data.Rules[0].Kind), "declaration order is preserved")
}

func TestCompileInvalidCatalogFailsValidation(t *testing.T) {
	dir := writeCatalogDir(t, `
package catalog

catalog: {
	home_page: "welcome"
	controls: {undo: "undo", redo: "redo"}
}
rule: {"undo": {}}
`)

	buf := &bytes.Buffer{}
	cmd := NewCompileCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E104", "rule kind colliding with a control kind")
}

func TestCompileMissingDirectory(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewCompileCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"/nonexistent/path"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
