package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/undolab/rewind/internal/harness"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <scenario-file>",
		Short: "Run a scenario and print its transcript",
		Long: `Run a single scenario file and print the resulting transcript
in canonical JSON.

The transcript has one event per dispatched action: the action kind and
payload, the session it landed in, the undo and redo depths, and the
page afterwards. Canonical serialization makes the output byte-stable,
suitable for diffing and for golden files.

Exit codes:
  0 - Scenario ran and all expectations held
  1 - One or more expectations failed
  2 - Command error (file not found, malformed scenario)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(rootOpts, args[0], cmd)
		},
	}
}

func runTrace(opts *RootOptions, file string, cmd *cobra.Command) error {
	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	result, err := harness.Run(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	transcript, err := harness.MarshalTranscript(scenario.Name, scenario.Session, result)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to marshal transcript", err)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		fmt.Fprintln(w, string(transcript))
	} else {
		fmt.Fprintf(w, "%s: %d event(s)\n", scenario.Name, len(result.Trace))
		for _, ev := range result.Trace {
			line := fmt.Sprintf("  %3d %-20s undo=%d redo=%d", ev.Seq, ev.Kind, ev.UndoDepth, ev.RedoDepth)
			if ev.Page != "" {
				line += " page=" + ev.Page
			}
			fmt.Fprintln(w, line)
		}
	}

	if !result.Pass {
		if opts.Format != "json" {
			for _, e := range result.Errors {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d expectation(s) failed", len(result.Errors)))
	}
	return nil
}
