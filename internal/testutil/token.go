// Package testutil provides deterministic helpers shared by the harness
// and the package tests: fixed session tokens and a resettable step clock.
package testutil

import (
	"fmt"
	"sync"
)

// FixedTokenGenerator returns predetermined session tokens, enabling
// golden transcript comparison: the same scenario run twice produces
// byte-identical output.
//
// The first token is the configured base; subsequent tokens append an
// incrementing suffix, covering home-page resets that start new sessions
// mid-scenario.
//
// Safe for concurrent use via internal mutex.
type FixedTokenGenerator struct {
	mu   sync.Mutex
	base string
	n    int
}

// NewFixedTokenGenerator creates a generator seeded with base.
// An empty base defaults to "test-session".
func NewFixedTokenGenerator(base string) *FixedTokenGenerator {
	if base == "" {
		base = "test-session"
	}
	return &FixedTokenGenerator{base: base}
}

// Generate returns the base token first, then "base-2", "base-3", ...
func (g *FixedTokenGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	if g.n == 1 {
		return g.base
	}
	return fmt.Sprintf("%s-%d", g.base, g.n)
}
