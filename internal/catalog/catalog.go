// Package catalog holds the compiled action catalog: the partition of action
// kinds into ignored, undoable, and control classes, plus the activation rule
// attached to each undoable kind.
//
// The catalog is static configuration. A malformed catalog is a programmer
// error and fails at construction, never per-dispatch.
package catalog

import (
	"strings"

	"github.com/undolab/rewind/internal/action"
)

// Rule describes when a frame triggered by its kind counts as a real
// undo point.
type Rule struct {
	// Kind is the triggering action kind.
	Kind action.Kind `json:"kind"`

	// ActiveIfFollowedBy lists follow-up kinds that confirm the frame.
	// When non-empty the frame starts provisional and only becomes active
	// if one of these kinds is observed while the frame is still the top
	// of the undo stack.
	ActiveIfFollowedBy []action.Kind `json:"active_if_followed_by,omitempty"`

	// InactiveIfPrecededBy lists kinds that, when present in the
	// immediately preceding frame, permanently deactivate the new frame.
	InactiveIfPrecededBy []action.Kind `json:"inactive_if_preceded_by,omitempty"`

	// RedoPage is a constant page to land on when the frame is redone.
	RedoPage action.PageID `json:"redo_page,omitempty"`

	// RedoPageResolver names a host-registered resolver evaluated against
	// the state before the trigger. Mutually exclusive with RedoPage.
	RedoPageResolver string `json:"redo_page_resolver,omitempty"`
}

// Provisional reports whether frames triggered by this rule start inactive,
// awaiting a confirming follow-up action.
func (r Rule) Provisional() bool {
	return len(r.ActiveIfFollowedBy) > 0
}

// Confirms reports whether observing kind resolves a provisional frame
// of this rule to active.
func (r Rule) Confirms(kind action.Kind) bool {
	for _, k := range r.ActiveIfFollowedBy {
		if k == kind {
			return true
		}
	}
	return false
}

// DeactivatedBy reports whether any of the given preceding kinds
// permanently deactivates a frame of this rule.
func (r Rule) DeactivatedBy(preceding []action.Kind) bool {
	for _, p := range r.InactiveIfPrecededBy {
		for _, k := range preceding {
			if k == p {
				return true
			}
		}
	}
	return false
}

// Config is the declarative form of a catalog, either built in Go or
// compiled from CUE. Rule order is declaration order and is preserved.
type Config struct {
	// UndoKind and RedoKind are the control action kinds.
	UndoKind action.Kind
	RedoKind action.Kind

	// HomePage is the "unstarted" page; navigating back to it resets history.
	HomePage action.PageID

	// RouterPrefix marks router-internal action kinds, which skip
	// classification entirely.
	RouterPrefix string

	// View is the allow-list of view-only kinds. Documentational: unknown
	// kinds classify as ignored too, but listing them makes the catalog
	// reviewable and lets validation catch kinds registered twice.
	View []action.Kind

	// Rules holds one activation rule per undoable kind.
	Rules []Rule
}

// Catalog is a validated, immutable action catalog.
type Catalog struct {
	undoKind     action.Kind
	redoKind     action.Kind
	homePage     action.PageID
	routerPrefix string
	view         map[action.Kind]bool
	rules        map[action.Kind]Rule
	order        []action.Kind
}

// New validates the config and builds a catalog. All validation errors are
// reported together.
func New(cfg Config) (*Catalog, error) {
	if errs := Validate(cfg); len(errs) > 0 {
		return nil, joinValidationErrors(errs)
	}

	c := &Catalog{
		undoKind:     cfg.UndoKind,
		redoKind:     cfg.RedoKind,
		homePage:     cfg.HomePage,
		routerPrefix: cfg.RouterPrefix,
		view:         make(map[action.Kind]bool, len(cfg.View)),
		rules:        make(map[action.Kind]Rule, len(cfg.Rules)),
		order:        make([]action.Kind, 0, len(cfg.Rules)),
	}
	for _, k := range cfg.View {
		c.view[k] = true
	}
	for _, r := range cfg.Rules {
		c.rules[r.Kind] = r
		c.order = append(c.order, r.Kind)
	}
	return c, nil
}

// MustNew builds a catalog and panics on validation failure. Intended for
// statically known catalogs wired at startup.
func MustNew(cfg Config) *Catalog {
	c, err := New(cfg)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return c
}

// Classify partitions an action kind. Router-internal kinds, view-only
// kinds, and kinds absent from the catalog are all ignored for history
// purposes; they still advance state by folding into the open frame.
func (c *Catalog) Classify(kind action.Kind) action.Class {
	switch {
	case kind == c.undoKind:
		return action.ClassUndo
	case kind == c.redoKind:
		return action.ClassRedo
	default:
		if _, ok := c.rules[kind]; ok {
			return action.ClassUndoable
		}
		return action.ClassIgnored
	}
}

// RouterInternal reports whether the kind belongs to the host's router.
// Router actions skip the catalog: they are applied and merged but their
// navigational effect is never part of a base snapshot.
func (c *Catalog) RouterInternal(kind action.Kind) bool {
	return c.routerPrefix != "" && strings.HasPrefix(string(kind), c.routerPrefix)
}

// Rule returns the activation rule for an undoable kind.
func (c *Catalog) Rule(kind action.Kind) (Rule, bool) {
	r, ok := c.rules[kind]
	return r, ok
}

// HomePage returns the page that marks an unstarted session.
func (c *Catalog) HomePage() action.PageID {
	return c.homePage
}

// Rules returns the activation rules in declaration order.
func (c *Catalog) Rules() []Rule {
	rules := make([]Rule, 0, len(c.order))
	for _, k := range c.order {
		rules = append(rules, c.rules[k])
	}
	return rules
}

// ResolverNames returns the distinct resolver names referenced by rules,
// in declaration order. The engine checks these against its registered
// resolvers at construction.
func (c *Catalog) ResolverNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, k := range c.order {
		if name := c.rules[k].RedoPageResolver; name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
