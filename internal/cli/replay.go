package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/undolab/rewind/internal/harness"
)

// ReplayResult holds the determinism verification result.
type ReplayResult struct {
	Scenario      string `json:"scenario"`
	Events        int    `json:"events"`
	Deterministic bool   `json:"deterministic"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <scenario-file>",
		Short: "Run a scenario twice and verify determinism",
		Long: `Run a scenario twice from scratch and compare the transcripts.

The engine is deterministic once session tokens are fixed: the same
action sequence must yield byte-identical canonical transcripts. Any
divergence means hidden state leaked into a run.

Exit codes:
  0 - Transcripts are identical
  1 - Transcripts diverge
  2 - Command error (file not found, malformed scenario)

Examples:
  rewind replay ./scenarios/undo-roundtrip.yaml
  rewind replay ./scenarios/undo-roundtrip.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplayVerify(rootOpts, args[0], cmd)
		},
	}
}

func runReplayVerify(opts *RootOptions, file string, cmd *cobra.Command) error {
	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	first, err := runTranscript(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "first run failed", err)
	}
	second, err := runTranscript(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "second run failed", err)
	}

	result := ReplayResult{
		Scenario:      scenario.Name,
		Events:        len(scenario.Steps),
		Deterministic: string(first) == string(second),
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		status := "ok"
		response := CLIResponse{Status: status, Data: result}
		if !result.Deterministic {
			response.Status = "error"
			response.Error = &CLIError{
				Code:    "E_NONDETERMINISTIC",
				Message: "transcripts diverge between runs",
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(response); err != nil {
			return err
		}
	} else if result.Deterministic {
		fmt.Fprintf(w, "ok   %s: %d event(s), transcripts identical\n", result.Scenario, result.Events)
	} else {
		fmt.Fprintf(w, "FAIL %s: transcripts diverge between runs\n", result.Scenario)
	}

	if !result.Deterministic {
		return NewExitError(ExitFailure, "replay is not deterministic")
	}
	return nil
}

func runTranscript(scenario *harness.Scenario) ([]byte, error) {
	result, err := harness.Run(scenario)
	if err != nil {
		return nil, err
	}
	return harness.MarshalTranscript(scenario.Name, scenario.Session, result)
}
