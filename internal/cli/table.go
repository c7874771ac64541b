package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PrimitiveInfo is the JSON payload describing one registered overload.
type PrimitiveInfo struct {
	Name      string   `json:"name"`
	Operands  []string `json:"operands"`
	Result    string   `json:"result"`
	Signature string   `json:"signature"`
}

// NewPrimitivesCommand creates the primitives command.
func NewPrimitivesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "primitives",
		Short:         "List the registered primitive signatures",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrimitives(rootOpts, cmd)
		},
	}

	return cmd
}

func runPrimitives(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, _, err := newSession()
	if err != nil {
		return WrapExitError(ExitCommandError, "session setup failed", err)
	}

	prims := reg.All()
	if formatter.Format == "json" {
		infos := make([]PrimitiveInfo, len(prims))
		for i, p := range prims {
			operands := make([]string, len(p.Operands))
			for j, k := range p.Operands {
				operands[j] = string(k)
			}
			infos[i] = PrimitiveInfo{
				Name:      p.Name,
				Operands:  operands,
				Result:    string(p.Result),
				Signature: p.Signature(),
			}
		}
		return formatter.Success(infos)
	}

	for _, p := range prims {
		fmt.Fprintln(formatter.Writer, p.Signature())
	}
	fmt.Fprintf(formatter.Writer, "\n%d overload(s)\n", len(prims))
	return nil
}
