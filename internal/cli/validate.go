package cli

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Jiacheng-WU/egglog-parallel/internal/harness"
	"github.com/Jiacheng-WU/egglog-parallel/internal/primitive"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError describes one manifest problem.
type ValidationError struct {
	File    string `json:"file"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Files  int               `json:"files"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenarios-dir>",
		Short: "Validate scenario manifests without running them",
		Long: `Validate every *.yaml scenario manifest in a directory.

Each manifest is checked against the scenario schema, then its
operators are cross-checked against the live primitive registry so a
manifest cannot name a primitive that does not exist.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot scan directory", err)
	}
	if len(paths) == 0 {
		msg := fmt.Sprintf("no scenario files in %s", dir)
		_ = formatter.Error(ErrCodeBadInput, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	slices.Sort(paths)
	formatter.VerboseLog("found %d manifest(s) in %s", len(paths), dir)

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return WrapExitError(ExitCommandError, "internal schema error", err)
	}
	scenarioSchema := schema.LookupPath(cue.ParsePath("#Scenario"))

	reg, _, err := newSession()
	if err != nil {
		return WrapExitError(ExitCommandError, "session setup failed", err)
	}

	var allErrors []ValidationError
	seenNames := make(map[string]string)
	for _, path := range paths {
		file := filepath.Base(path)
		formatter.VerboseLog("validating %s", file)

		scn, errs := validateManifest(ctx, scenarioSchema, reg, path)
		allErrors = append(allErrors, errs...)
		if len(errs) > 0 {
			continue
		}

		if prev, dup := seenNames[scn.Name]; dup {
			allErrors = append(allErrors, ValidationError{
				File:    file,
				Field:   "name",
				Message: fmt.Sprintf("scenario name %q already used by %s", scn.Name, prev),
			})
			continue
		}
		seenNames[scn.Name] = file
	}

	if len(allErrors) > 0 {
		return outputValidationErrors(formatter, len(paths), allErrors)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Files: len(paths)})
	}
	fmt.Fprintf(formatter.Writer, "✓ %d manifest(s) valid\n", len(paths))
	return nil
}

// validateManifest checks one YAML manifest against the scenario schema
// and cross-checks its operators against the registry. The parsed
// scenario is returned only when the manifest is error-free.
func validateManifest(ctx *cue.Context, schema cue.Value, reg *primitive.Registry, path string) (*harness.Scenario, []ValidationError) {
	file := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []ValidationError{{File: file, Message: err.Error()}}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, []ValidationError{{File: file, Message: fmt.Sprintf("not valid YAML: %v", err)}}
	}

	val := ctx.Encode(doc)
	if err := val.Err(); err != nil {
		return nil, []ValidationError{{File: file, Message: err.Error()}}
	}

	var errs []ValidationError
	unified := schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, ValidationError{
				File:    file,
				Field:   cueFieldPath(e),
				Message: e.Error(),
			})
		}
		return nil, errs
	}

	// One expectation per step is encoded as optional fields in the schema,
	// so the exactly-one rule and operator existence are checked here.
	scn, err := harness.LoadScenario(path)
	if err != nil {
		return nil, []ValidationError{{File: file, Message: err.Error()}}
	}
	for i, step := range scn.Eval {
		if len(reg.Overloads(step.Op)) == 0 {
			errs = append(errs, ValidationError{
				File:    file,
				Field:   fmt.Sprintf("eval[%d].op", i),
				Message: fmt.Sprintf("unknown primitive %q", step.Op),
			})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return scn, nil
}

// cueFieldPath renders the offending path of a CUE error, if any.
func cueFieldPath(e cueerrors.Error) string {
	parts := e.Path()
	if len(parts) == 0 {
		return ""
	}
	path := parts[0]
	for _, p := range parts[1:] {
		path += "." + p
	}
	return path
}

// outputValidationErrors outputs validation failures and maps them to
// exit code 1.
func outputValidationErrors(formatter *OutputFormatter, files int, errs []ValidationError) error {
	if formatter.Format == "json" {
		result := ValidationResult{Valid: false, Files: files, Errors: errs}
		_ = formatter.Error(ErrCodeSchemaError, fmt.Sprintf("%d validation error(s)", len(errs)), result)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, e := range errs {
		if e.Field != "" {
			fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n", e.File, e.Field, e.Message)
		} else {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", e.File, e.Message)
		}
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
