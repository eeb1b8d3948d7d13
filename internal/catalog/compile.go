package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/undolab/rewind/internal/action"
)

// CompileConfig parses a CUE value into a catalog Config.
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
//
// The CUE value is the root of a catalog document, e.g.:
//
//	catalog: {
//		home_page:     "welcome"
//		router_prefix: "router/"
//		controls: { undo: "undo", redo: "redo" }
//		view: ["selectShipments", "setFilter"]
//	}
//	rule: {
//		"saveRequest": { active_if_followed_by: ["saveSuccess"] }
//		"deleteShipment": {}
//	}
//
// Rule declaration order follows source order and is preserved.
func CompileConfig(v cue.Value) (Config, error) {
	var cfg Config

	if err := v.Err(); err != nil {
		return cfg, formatCUEError(err)
	}

	catVal := v.LookupPath(cue.ParsePath("catalog"))
	if !catVal.Exists() {
		return cfg, &CompileError{
			Field:   "catalog",
			Message: "catalog block is required",
			Pos:     v.Pos(),
		}
	}

	var err error
	if cfg.HomePage, err = requiredPage(catVal, "home_page"); err != nil {
		return cfg, err
	}
	if cfg.UndoKind, err = requiredKind(catVal, "controls.undo"); err != nil {
		return cfg, err
	}
	if cfg.RedoKind, err = requiredKind(catVal, "controls.redo"); err != nil {
		return cfg, err
	}

	prefixVal := catVal.LookupPath(cue.ParsePath("router_prefix"))
	if prefixVal.Exists() {
		if cfg.RouterPrefix, err = prefixVal.String(); err != nil {
			return cfg, formatCUEError(err)
		}
	}

	viewVal := catVal.LookupPath(cue.ParsePath("view"))
	if viewVal.Exists() {
		if cfg.View, err = parseKindList(viewVal, "view"); err != nil {
			return cfg, err
		}
	}

	ruleVal := v.LookupPath(cue.ParsePath("rule"))
	if ruleVal.Exists() {
		iter, err := ruleVal.Fields()
		if err != nil {
			return cfg, formatCUEError(err)
		}
		for iter.Next() {
			rule, err := compileRule(iter.Selector().Unquoted(), iter.Value())
			if err != nil {
				return cfg, err
			}
			cfg.Rules = append(cfg.Rules, rule)
		}
	}

	return cfg, nil
}

// Compile parses and validates a CUE value into a ready catalog.
func Compile(v cue.Value) (*Catalog, error) {
	cfg, err := CompileConfig(v)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// compileRule parses a single activation rule struct.
func compileRule(kind string, v cue.Value) (Rule, error) {
	rule := Rule{Kind: action.Kind(kind)}

	followVal := v.LookupPath(cue.ParsePath("active_if_followed_by"))
	if followVal.Exists() {
		kinds, err := parseKindList(followVal, kind+".active_if_followed_by")
		if err != nil {
			return rule, err
		}
		rule.ActiveIfFollowedBy = kinds
	}

	precedeVal := v.LookupPath(cue.ParsePath("inactive_if_preceded_by"))
	if precedeVal.Exists() {
		kinds, err := parseKindList(precedeVal, kind+".inactive_if_preceded_by")
		if err != nil {
			return rule, err
		}
		rule.InactiveIfPrecededBy = kinds
	}

	pageVal := v.LookupPath(cue.ParsePath("redo_page"))
	if pageVal.Exists() {
		page, err := pageVal.String()
		if err != nil {
			return rule, formatCUEError(err)
		}
		rule.RedoPage = action.PageID(page)
	}

	resolverVal := v.LookupPath(cue.ParsePath("redo_page_resolver"))
	if resolverVal.Exists() {
		name, err := resolverVal.String()
		if err != nil {
			return rule, formatCUEError(err)
		}
		rule.RedoPageResolver = name
	}

	return rule, nil
}

func requiredKind(v cue.Value, path string) (action.Kind, error) {
	s, err := requiredString(v, path)
	return action.Kind(s), err
}

func requiredPage(v cue.Value, path string) (action.PageID, error) {
	s, err := requiredString(v, path)
	return action.PageID(s), err
}

func requiredString(v cue.Value, path string) (string, error) {
	val := v.LookupPath(cue.ParsePath(path))
	if !val.Exists() {
		return "", &CompileError{
			Field:   path,
			Message: path + " is required",
			Pos:     v.Pos(),
		}
	}
	s, err := val.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func parseKindList(v cue.Value, field string) ([]action.Kind, error) {
	iter, err := v.List()
	if err != nil {
		return nil, &CompileError{
			Field:   field,
			Message: "must be a list of action kinds",
			Pos:     v.Pos(),
		}
	}
	var kinds []action.Kind
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		kinds = append(kinds, action.Kind(s))
	}
	return kinds, nil
}

// CompileError reports a catalog compilation failure with CUE position info.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
