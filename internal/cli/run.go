package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jiacheng-WU/egglog-parallel/internal/harness"
)

// ScenarioReport is the JSON payload for one executed scenario.
type ScenarioReport struct {
	Name     string   `json:"name"`
	Steps    int      `json:"steps"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

// RunReport is the JSON payload for a whole scenario run.
type RunReport struct {
	Scenarios []ScenarioReport `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenarios-dir>",
		Short: "Run scenario files and check their expectations",
		Long: `Run every *.yaml scenario in a directory against a fresh store
and registry, checking each step's expectation.

Exit code 1 means at least one expectation failed; exit code 2 means a
scenario could not be loaded or executed at all.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScenarios(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	scenarios, err := harness.LoadScenarios(dir)
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot load scenarios", err)
	}
	formatter.VerboseLog("loaded %d scenario(s) from %s", len(scenarios), dir)

	report := RunReport{}
	for _, scn := range scenarios {
		formatter.VerboseLog("running scenario %s (%d steps)", scn.Name, len(scn.Eval))
		result, err := harness.Run(scn)
		if err != nil {
			_ = formatter.Error(ErrCodeBadInput, fmt.Sprintf("scenario %s: %v", scn.Name, err), nil)
			return WrapExitError(ExitCommandError, "scenario execution failed", err)
		}

		sr := ScenarioReport{
			Name:     scn.Name,
			Steps:    len(scn.Eval),
			Passed:   len(result.Failures) == 0,
			Failures: result.Failures,
		}
		if sr.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Scenarios = append(report.Scenarios, sr)
	}

	if formatter.Format == "json" {
		if report.Failed > 0 {
			_ = formatter.Error(ErrCodeScenarioFail, fmt.Sprintf("%d scenario(s) failed", report.Failed), report)
			return NewExitError(ExitFailure, "scenario failures")
		}
		return formatter.Success(report)
	}

	for _, sr := range report.Scenarios {
		if sr.Passed {
			fmt.Fprintf(formatter.Writer, "✓ %s (%d steps)\n", sr.Name, sr.Steps)
			continue
		}
		fmt.Fprintf(formatter.Writer, "✗ %s (%d steps)\n", sr.Name, sr.Steps)
		for _, failure := range sr.Failures {
			fmt.Fprintf(formatter.Writer, "    %s\n", failure)
		}
	}
	fmt.Fprintf(formatter.Writer, "\n%d passed, %d failed\n", report.Passed, report.Failed)

	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", report.Failed))
	}
	return nil
}
