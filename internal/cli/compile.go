package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/undolab/rewind/internal/catalog"
)

// CompiledCatalog is the JSON form of a successfully compiled catalog.
type CompiledCatalog struct {
	UndoKind     string         `json:"undo_kind"`
	RedoKind     string         `json:"redo_kind"`
	HomePage     string         `json:"home_page"`
	RouterPrefix string         `json:"router_prefix,omitempty"`
	View         []string       `json:"view,omitempty"`
	Rules        []catalog.Rule `json:"rules"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <catalog-dir>",
		Short: "Compile an action catalog",
		Long: `Compile the CUE action catalog in a directory and print its
resolved form.

Compilation includes validation: a catalog that validates but does not
compile cannot exist, so the output is always a usable catalog.

Exit codes:
  0 - Catalog compiled
  1 - Validation failed
  2 - Command error (directory not found, malformed CUE)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(rootOpts, args[0], cmd)
		},
	}
}

func runCompile(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := LoadCatalog(dir)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, loadErr.Error())
		}
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, dir)

	cat, err := catalog.New(result.Config)
	if err != nil {
		if errs := catalog.Validate(result.Config); len(errs) > 0 {
			return outputValidationErrors(formatter, errs)
		}
		return WrapExitError(ExitCommandError, "catalog compilation failed", err)
	}

	compiled := CompiledCatalog{
		UndoKind:     string(result.Config.UndoKind),
		RedoKind:     string(result.Config.RedoKind),
		HomePage:     string(cat.HomePage()),
		RouterPrefix: result.Config.RouterPrefix,
		Rules:        cat.Rules(),
	}
	for _, k := range result.Config.View {
		compiled.View = append(compiled.View, string(k))
	}

	if formatter.Format == "json" {
		return formatter.Success(compiled)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "catalog compiled: %d rule(s), %d view kind(s)\n", len(compiled.Rules), len(compiled.View))
	fmt.Fprintf(w, "  controls: undo=%s redo=%s\n", compiled.UndoKind, compiled.RedoKind)
	fmt.Fprintf(w, "  home page: %s\n", compiled.HomePage)
	if compiled.RouterPrefix != "" {
		fmt.Fprintf(w, "  router prefix: %s\n", compiled.RouterPrefix)
	}
	for _, r := range compiled.Rules {
		line := fmt.Sprintf("  rule %s", r.Kind)
		if r.Provisional() {
			line += fmt.Sprintf(" (provisional, confirmed by %v)", r.ActiveIfFollowedBy)
		}
		if len(r.InactiveIfPrecededBy) > 0 {
			line += fmt.Sprintf(" (inactive after %v)", r.InactiveIfPrecededBy)
		}
		if r.RedoPage != "" {
			line += fmt.Sprintf(" -> redo page %s", r.RedoPage)
		}
		if r.RedoPageResolver != "" {
			line += fmt.Sprintf(" -> redo resolver %s", r.RedoPageResolver)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
