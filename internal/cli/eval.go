package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jiacheng-WU/egglog-parallel/internal/harness"
	"github.com/Jiacheng-WU/egglog-parallel/internal/primitive"
)

// EvalResult is the JSON payload for a single evaluation.
type EvalResult struct {
	Op      string   `json:"op"`
	Args    []string `json:"args"`
	Outcome string   `json:"outcome"`
	Result  string   `json:"result,omitempty"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> [operand...]",
		Short: "Evaluate a single primitive call",
		Long: `Evaluate a single primitive call against a fresh store.

Rational operands are written "m/n" (or a plain integer for a whole
value), integer operands in decimal. The operator is resolved against
the registered overloads by arity and operand kinds.

Example:
  ratsort eval + 1/2 1/3
  ratsort eval rational 6 -8`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, op string, literals []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, store, err := newSession()
	if err != nil {
		return WrapExitError(ExitCommandError, "session setup failed", err)
	}

	p, args, err := harness.InferCall(reg, store, op, literals)
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot resolve call", err)
	}
	formatter.VerboseLog("resolved %s", p.Signature())

	result := EvalResult{Op: op, Args: literals}
	out, err := p.Apply(args)
	switch {
	case primitive.IsNotImplemented(err):
		result.Outcome = harness.OutcomeNotImplemented
	case err != nil:
		return WrapExitError(ExitCommandError, "evaluation failed", err)
	case out.Present():
		v, _ := out.Get()
		result.Outcome = harness.OutcomeValue
		result.Result = harness.RenderValue(store, v)
	default:
		result.Outcome = harness.OutcomeNone
	}

	switch result.Outcome {
	case harness.OutcomeValue:
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintln(formatter.Writer, result.Result)
		return nil
	case harness.OutcomeNone:
		_ = formatter.Error(ErrCodeEvalAbsent, fmt.Sprintf("%s has no result for these operands", op), result)
		return NewExitError(ExitFailure, "no result")
	default:
		_ = formatter.Error(ErrCodeUnsupported, fmt.Sprintf("%s is not supported for these operands", op), result)
		return NewExitError(ExitFailure, "unsupported branch")
	}
}
