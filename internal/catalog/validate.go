package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Validation error codes (E100-E119)
const (
	ErrMissingControlKind = "E100" // undo or redo control kind missing
	ErrMissingHomePage    = "E101" // home page is required
	ErrEmptyKind          = "E102" // empty action kind string
	ErrDuplicateKind      = "E103" // kind registered twice
	ErrKindIsControl      = "E104" // rule or view kind collides with a control kind
	ErrKindInViewList     = "E105" // undoable kind also in view list
	ErrConflictingRedo    = "E106" // both redo_page and redo_page_resolver set
	ErrRouterPrefixClash  = "E107" // registered kind matches the router prefix
	ErrSelfReference      = "E108" // rule lists its own kind as follow-up
)

// ValidationError reports a single catalog configuration defect.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a catalog config against schema rules.
// Returns all errors found (does not fail-fast on the first).
func Validate(cfg Config) []ValidationError {
	var errs []ValidationError

	if cfg.UndoKind == "" {
		errs = append(errs, ValidationError{
			Field:   "controls.undo",
			Message: "undo control kind is required",
			Code:    ErrMissingControlKind,
		})
	}
	if cfg.RedoKind == "" {
		errs = append(errs, ValidationError{
			Field:   "controls.redo",
			Message: "redo control kind is required",
			Code:    ErrMissingControlKind,
		})
	}
	if cfg.UndoKind != "" && cfg.UndoKind == cfg.RedoKind {
		errs = append(errs, ValidationError{
			Field:   "controls",
			Message: "undo and redo control kinds must differ",
			Code:    ErrDuplicateKind,
		})
	}
	if cfg.HomePage == "" {
		errs = append(errs, ValidationError{
			Field:   "home_page",
			Message: "home page is required",
			Code:    ErrMissingHomePage,
		})
	}

	seen := make(map[string]string) // kind -> first registration site
	register := func(kind, field string) {
		if kind == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "action kind must be non-empty",
				Code:    ErrEmptyKind,
			})
			return
		}
		if prev, dup := seen[kind]; dup {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("kind %q already registered at %s", kind, prev),
				Code:    ErrDuplicateKind,
			})
			return
		}
		seen[kind] = field
		if kind == string(cfg.UndoKind) || kind == string(cfg.RedoKind) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("kind %q collides with a control kind", kind),
				Code:    ErrKindIsControl,
			})
		}
		if cfg.RouterPrefix != "" && strings.HasPrefix(kind, cfg.RouterPrefix) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("kind %q matches router prefix %q", kind, cfg.RouterPrefix),
				Code:    ErrRouterPrefixClash,
			})
		}
	}

	for i, k := range cfg.View {
		register(string(k), fmt.Sprintf("view[%d]", i))
	}

	viewKinds := make(map[string]bool, len(cfg.View))
	for _, k := range cfg.View {
		viewKinds[string(k)] = true
	}

	for i, r := range cfg.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		register(string(r.Kind), field)

		if viewKinds[string(r.Kind)] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("undoable kind %q also appears in the view list", r.Kind),
				Code:    ErrKindInViewList,
			})
		}
		if r.RedoPage != "" && r.RedoPageResolver != "" {
			errs = append(errs, ValidationError{
				Field:   field + ".redo_page",
				Message: "redo_page and redo_page_resolver are mutually exclusive",
				Code:    ErrConflictingRedo,
			})
		}
		for j, k := range r.ActiveIfFollowedBy {
			if k == r.Kind {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.active_if_followed_by[%d]", field, j),
					Message: fmt.Sprintf("rule %q cannot confirm itself", r.Kind),
					Code:    ErrSelfReference,
				})
			}
			if k == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.active_if_followed_by[%d]", field, j),
					Message: "follow-up kind must be non-empty",
					Code:    ErrEmptyKind,
				})
			}
		}
		for j, k := range r.InactiveIfPrecededBy {
			if k == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.inactive_if_preceded_by[%d]", field, j),
					Message: "preceding kind must be non-empty",
					Code:    ErrEmptyKind,
				})
			}
		}
	}

	return errs
}

func joinValidationErrors(verrs []ValidationError) error {
	errs := make([]error, len(verrs))
	for i, ve := range verrs {
		errs[i] = ve
	}
	return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
}
