package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undolab/rewind/internal/action"
)

func testConfig() Config {
	return Config{
		UndoKind:     "undo",
		RedoKind:     "redo",
		HomePage:     "welcome",
		RouterPrefix: "router/",
		View:         []action.Kind{"selectShipments", "setFilter"},
		Rules: []Rule{
			{Kind: "saveRequest", ActiveIfFollowedBy: []action.Kind{"saveSuccess"}},
			{Kind: "deleteShipment"},
			{Kind: "clearSolution", InactiveIfPrecededBy: []action.Kind{"uploadScenario"}},
			{Kind: "generateSolution", RedoPageResolver: "solutionPage"},
		},
	}
}

func TestClassify(t *testing.T) {
	c, err := New(testConfig())
	require.NoError(t, err)

	tests := []struct {
		kind action.Kind
		want action.Class
	}{
		{"undo", action.ClassUndo},
		{"redo", action.ClassRedo},
		{"deleteShipment", action.ClassUndoable},
		{"saveRequest", action.ClassUndoable},
		{"selectShipments", action.ClassIgnored},
		{"router/navigated", action.ClassIgnored},
		{"neverRegistered", action.ClassIgnored},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.kind), "kind %q", tt.kind)
	}
}

func TestRouterInternal(t *testing.T) {
	c := MustNew(testConfig())

	assert.True(t, c.RouterInternal("router/navigated"))
	assert.False(t, c.RouterInternal("deleteShipment"))

	noPrefix := testConfig()
	noPrefix.RouterPrefix = ""
	c2 := MustNew(noPrefix)
	assert.False(t, c2.RouterInternal("router/navigated"))
}

func TestRule_Confirms(t *testing.T) {
	r := Rule{Kind: "saveRequest", ActiveIfFollowedBy: []action.Kind{"saveSuccess", "saveCommitted"}}

	assert.True(t, r.Provisional())
	assert.True(t, r.Confirms("saveSuccess"))
	assert.True(t, r.Confirms("saveCommitted"))
	assert.False(t, r.Confirms("saveFailure"))
}

func TestRule_DeactivatedBy(t *testing.T) {
	r := Rule{Kind: "clearSolution", InactiveIfPrecededBy: []action.Kind{"uploadScenario"}}

	assert.True(t, r.DeactivatedBy([]action.Kind{"selectShipments", "uploadScenario"}))
	assert.False(t, r.DeactivatedBy([]action.Kind{"selectShipments"}))
	assert.False(t, r.DeactivatedBy(nil))
}

func TestRulesPreserveDeclarationOrder(t *testing.T) {
	c := MustNew(testConfig())

	rules := c.Rules()
	require.Len(t, rules, 4)
	assert.Equal(t, action.Kind("saveRequest"), rules[0].Kind)
	assert.Equal(t, action.Kind("generateSolution"), rules[3].Kind)
}

func TestResolverNames(t *testing.T) {
	c := MustNew(testConfig())
	assert.Equal(t, []string{"solutionPage"}, c.ResolverNames())
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Config{})
	})
}
