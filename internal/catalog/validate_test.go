package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/undolab/rewind/internal/action"
)

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(testConfig()))
}

func TestValidate_MissingControlsAndHome(t *testing.T) {
	errs := Validate(Config{})
	got := codes(errs)

	assert.Contains(t, got, ErrMissingControlKind)
	assert.Contains(t, got, ErrMissingHomePage)
}

func TestValidate_DuplicateKind(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = append(cfg.Rules, Rule{Kind: "deleteShipment"})

	assert.Contains(t, codes(Validate(cfg)), ErrDuplicateKind)
}

func TestValidate_KindInViewList(t *testing.T) {
	cfg := testConfig()
	cfg.View = append(cfg.View, "deleteShipment")

	got := codes(Validate(cfg))
	// Registered twice and declared undoable while view-only.
	assert.Contains(t, got, ErrDuplicateKind)
	assert.Contains(t, got, ErrKindInViewList)
}

func TestValidate_ControlCollision(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = append(cfg.Rules, Rule{Kind: "undo"})

	assert.Contains(t, codes(Validate(cfg)), ErrKindIsControl)
}

func TestValidate_ConflictingRedoResolution(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = append(cfg.Rules, Rule{
		Kind:             "planRoutes",
		RedoPage:         "routes",
		RedoPageResolver: "routesPage",
	})

	assert.Contains(t, codes(Validate(cfg)), ErrConflictingRedo)
}

func TestValidate_RouterPrefixClash(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = append(cfg.Rules, Rule{Kind: "router/edit"})

	assert.Contains(t, codes(Validate(cfg)), ErrRouterPrefixClash)
}

func TestValidate_SelfConfirmation(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = append(cfg.Rules, Rule{
		Kind:               "retrySave",
		ActiveIfFollowedBy: []action.Kind{"retrySave"},
	})

	assert.Contains(t, codes(Validate(cfg)), ErrSelfReference)
}

func TestValidate_SameUndoRedoKind(t *testing.T) {
	cfg := testConfig()
	cfg.RedoKind = cfg.UndoKind

	assert.Contains(t, codes(Validate(cfg)), ErrDuplicateKind)
}
