package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted session against the engine.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description"`

	// Session is the fixed base token for the run. Empty defaults to
	// "test-session". Home-page resets continue the suffix sequence.
	Session string `yaml:"session,omitempty"`

	// MaxUndo overrides the engine's undo bound when positive.
	MaxUndo int `yaml:"max_undo,omitempty"`

	// Steps is the dispatched action sequence.
	Steps []Step `yaml:"steps"`

	// Final, when present, is checked against the state after the last
	// step, in addition to any per-step expectations.
	Final *Expect `yaml:"final,omitempty"`
}

// Step dispatches one action and optionally checks the outcome.
type Step struct {
	// Dispatch is the action kind.
	Dispatch string `yaml:"dispatch"`

	// Payload holds the action payload. Floats and nulls are rejected.
	Payload map[string]interface{} `yaml:"payload,omitempty"`

	// Expect, when present, is checked right after the dispatch.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect is a partial assertion: only the fields present are checked.
type Expect struct {
	CanUndo   *bool  `yaml:"can_undo,omitempty"`
	CanRedo   *bool  `yaml:"can_redo,omitempty"`
	UndoDepth *int   `yaml:"undo_depth,omitempty"`
	RedoDepth *int   `yaml:"redo_depth,omitempty"`
	Page      string `yaml:"page,omitempty"`
	Session   string `yaml:"session,omitempty"`

	// Selections maps a collection name to the exact expected selected
	// ids, in any order.
	Selections map[string][]int64 `yaml:"selections,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos fail loudly instead of silently skipping checks.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if s.MaxUndo < 0 {
		return fmt.Errorf("max_undo must be non-negative")
	}
	for i, step := range s.Steps {
		if step.Dispatch == "" {
			return fmt.Errorf("steps[%d]: dispatch is required", i)
		}
		if step.Expect != nil {
			if err := validateExpect(step.Expect); err != nil {
				return fmt.Errorf("steps[%d].expect: %w", i, err)
			}
		}
	}
	if s.Final != nil {
		if err := validateExpect(s.Final); err != nil {
			return fmt.Errorf("final: %w", err)
		}
	}
	return nil
}

func validateExpect(e *Expect) error {
	if e.UndoDepth != nil && *e.UndoDepth < 0 {
		return fmt.Errorf("undo_depth must be non-negative")
	}
	if e.RedoDepth != nil && *e.RedoDepth < 0 {
		return fmt.Errorf("redo_depth must be non-negative")
	}
	return nil
}
