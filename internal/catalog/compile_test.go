package catalog

import (
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undolab/rewind/internal/action"
)

func TestCompileConfigBasic(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		catalog: {
			home_page:     "welcome"
			router_prefix: "router/"
			controls: { undo: "undo", redo: "redo" }
			view: ["selectShipments", "setFilter"]
		}
		rule: {
			"saveRequest": {
				active_if_followed_by: ["saveSuccess"]
			}
			"deleteShipment": {}
			"clearSolution": {
				inactive_if_preceded_by: ["uploadScenario"]
				redo_page: "shipments"
			}
		}
	`)

	require.NoError(t, v.Err())
	cfg, err := CompileConfig(v)

	require.NoError(t, err)
	assert.Equal(t, action.PageID("welcome"), cfg.HomePage)
	assert.Equal(t, "router/", cfg.RouterPrefix)
	assert.Equal(t, action.Kind("undo"), cfg.UndoKind)
	assert.Equal(t, action.Kind("redo"), cfg.RedoKind)
	assert.Equal(t, []action.Kind{"selectShipments", "setFilter"}, cfg.View)

	require.Len(t, cfg.Rules, 3)
	assert.Equal(t, action.Kind("saveRequest"), cfg.Rules[0].Kind)
	assert.Equal(t, []action.Kind{"saveSuccess"}, cfg.Rules[0].ActiveIfFollowedBy)
	assert.Equal(t, action.Kind("deleteShipment"), cfg.Rules[1].Kind)
	assert.False(t, cfg.Rules[1].Provisional())
	assert.Equal(t, []action.Kind{"uploadScenario"}, cfg.Rules[2].InactiveIfPrecededBy)
	assert.Equal(t, action.PageID("shipments"), cfg.Rules[2].RedoPage)
}

func TestCompileConfig_MissingCatalogBlock(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`rule: { "x": {} }`)

	_, err := CompileConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog block is required")
}

func TestCompileConfig_MissingControls(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		catalog: {
			home_page: "welcome"
		}
	`)

	_, err := CompileConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "controls.undo")
}

func TestCompileConfig_ResolverName(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		catalog: {
			home_page: "welcome"
			controls: { undo: "undo", redo: "redo" }
		}
		rule: {
			"generateSolution": { redo_page_resolver: "solutionPage" }
		}
	`)

	cfg, err := CompileConfig(v)
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "solutionPage", cfg.Rules[0].RedoPageResolver)
}

func TestCompile_RunsValidation(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		catalog: {
			home_page: "welcome"
			controls: { undo: "undo", redo: "redo" }
			view: ["deleteShipment"]
		}
		rule: {
			"deleteShipment": {}
		}
	`)

	_, err := Compile(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}
