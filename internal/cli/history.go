package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/schedlint/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	DBPath string
	Limit  int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded validation runs",
		Long: `List validation runs recorded with 'check --db', newest first.

Each line shows the run id, when it ran, how many items and rules were
involved, and the violation counts by severity.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "history database path (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(ctx context.Context, rootOpts *RootOptions, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		_ = formatter.Error("E002", err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening history database failed", err)
	}
	defer s.Close()

	runs, err := s.ListRuns(ctx, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "listing runs failed", err)
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(formatter.Writer, "%s  %s  items=%d rules=%d violations=%d (%de/%dw/%di)\n",
			run.ID,
			run.CreatedAt.Local().Format(time.RFC3339),
			run.ItemCount,
			run.RuleCount,
			run.ViolationCount,
			run.ErrorCount,
			run.WarningCount,
			run.InfoCount,
		)
	}
	return nil
}
