package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jiacheng-WU/egglog-parallel/internal/audit"
	"github.com/Jiacheng-WU/egglog-parallel/internal/rational"
	"github.com/Jiacheng-WU/egglog-parallel/internal/sort"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	DB     string
	Values []string
	List   bool
	Show   string
}

// DumpResult is the JSON payload for a dump write.
type DumpResult struct {
	RunID      string `json:"run_id"`
	Population int    `json:"population"`
}

// RunDetail is the JSON payload for an inspected run.
type RunDetail struct {
	RunID      string   `json:"run_id"`
	CreatedAt  string   `json:"created_at"`
	SortName   string   `json:"sort_name"`
	Population int      `json:"population"`
	Values     []string `json:"values"`
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write or inspect canonical store snapshots",
		Long: `Write a canonical store snapshot to a SQLite dump file, or inspect
runs already written.

Each --value literal is interned before the snapshot is taken, so
duplicates and unreduced forms collapse to one entry.

Example:
  ratsort dump --db store.db --value 1/2 --value 2/4 --value -3/1
  ratsort dump --db store.db --list
  ratsort dump --db store.db --show <run-id>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the SQLite dump file (required)")
	cmd.Flags().StringArrayVar(&opts.Values, "value", nil, "rational literal to intern before dumping (repeatable)")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list run ids in the dump file")
	cmd.Flags().StringVar(&opts.Show, "show", "", "show the entries of one run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runDump(opts *DumpOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	switch {
	case opts.List:
		return listRuns(opts, formatter)
	case opts.Show != "":
		return showRun(opts, formatter)
	default:
		return writeDump(opts, formatter)
	}
}

func writeDump(opts *DumpOptions, formatter *OutputFormatter) error {
	store := sort.NewStore()
	for _, lit := range opts.Values {
		r, err := rational.Parse(lit)
		if err != nil {
			_ = formatter.Error(ErrCodeBadInput, fmt.Sprintf("bad --value %q: %v", lit, err), nil)
			return WrapExitError(ExitCommandError, "bad value literal", err)
		}
		store.Intern(r)
	}
	formatter.VerboseLog("interned %d literal(s), population %d", len(opts.Values), store.Len())

	runID, err := audit.Write(opts.DB, sort.Name, store.Snapshot())
	if err != nil {
		_ = formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "dump failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(DumpResult{RunID: runID, Population: store.Len()})
	}
	fmt.Fprintf(formatter.Writer, "wrote run %s (%d value(s))\n", runID, store.Len())
	return nil
}

func listRuns(opts *DumpOptions, formatter *OutputFormatter) error {
	ids, err := audit.RunIDs(opts.DB)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot list runs", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ids)
	}
	for _, id := range ids {
		fmt.Fprintln(formatter.Writer, id)
	}
	fmt.Fprintf(formatter.Writer, "\n%d run(s)\n", len(ids))
	return nil
}

func showRun(opts *DumpOptions, formatter *OutputFormatter) error {
	run, err := audit.ReadRun(opts.DB, opts.Show)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot read run", err)
	}

	detail := RunDetail{
		RunID:      run.ID,
		CreatedAt:  run.CreatedAt.Format(time.RFC3339Nano),
		SortName:   run.SortName,
		Population: run.Population,
		Values:     make([]string, len(run.Entries)),
	}
	for i, e := range run.Entries {
		detail.Values[i] = fmt.Sprintf("%d/%d", e.Numer, e.Denom)
	}

	if formatter.Format == "json" {
		return formatter.Success(detail)
	}
	fmt.Fprintf(formatter.Writer, "run %s (%s, sort %s)\n", detail.RunID, detail.CreatedAt, detail.SortName)
	for i, v := range detail.Values {
		fmt.Fprintf(formatter.Writer, "  #%d  %s\n", i, v)
	}
	return nil
}
