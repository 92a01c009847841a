package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/schedlint/internal/engine"
	"github.com/roach88/schedlint/internal/report"
	"github.com/roach88/schedlint/internal/rule"
	"github.com/roach88/schedlint/internal/ruleset"
	"github.com/roach88/schedlint/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	RulesFile string
	DBPath    string
}

// CheckResult is the JSON payload for a check run.
type CheckResult struct {
	RunID       string                `json:"runId,omitempty"`
	Result      rule.Result           `json:"result"`
	Stats       engine.ViolationStats `json:"stats"`
	Fingerprint string                `json:"fingerprint"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <items-file>",
		Short: "Validate an item collection against a rule set",
		Long: `Validate a schedule of items against a rule set.

Items are read from a YAML (or JSON) file. Rules come from --rules, or
from the built-in default rule set when the flag is omitted. With --db,
the run is recorded in the history database.

Exit codes: 0 when no error-severity violations were found, 1 when at
least one was, 2 on command errors.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RulesFile, "rules", "", "rule set file (default: built-in rules)")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "record the run in this history database")

	return cmd
}

func runCheck(ctx context.Context, rootOpts *RootOptions, opts *CheckOptions, itemsPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	items, err := LoadItems(itemsPath)
	if err != nil {
		_ = formatter.Error("E001", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading items failed", err)
	}
	formatter.VerboseLog("Loaded %d item(s) from %s", len(items), itemsPath)

	rules := ruleset.Default()
	if opts.RulesFile != "" {
		rules, err = LoadRules(opts.RulesFile)
		if err != nil {
			_ = formatter.Error("E001", err.Error(), nil)
			return WrapExitError(ExitCommandError, "loading rules failed", err)
		}
		formatter.VerboseLog("Loaded %d rule(s) from %s", len(rules), opts.RulesFile)
	} else {
		formatter.VerboseLog("Using the built-in rule set (%d rules)", len(rules))
	}

	validator := engine.New()
	res := validator.Validate(items, rules)
	stats := engine.GetViolationStats(res)

	fingerprint, err := report.Fingerprint(res, stats)
	if err != nil {
		return WrapExitError(ExitCommandError, "computing fingerprint failed", err)
	}

	runID := ""
	if opts.DBPath != "" {
		runID = uuid.Must(uuid.NewV7()).String()
		if err := recordRun(ctx, opts.DBPath, runID, res, stats, fingerprint); err != nil {
			return WrapExitError(ExitCommandError, "recording run failed", err)
		}
		formatter.VerboseLog("Recorded run %s in %s", runID, opts.DBPath)
	}

	if err := outputCheck(formatter, CheckResult{
		RunID:       runID,
		Result:      res,
		Stats:       stats,
		Fingerprint: fingerprint,
	}); err != nil {
		return err
	}

	if stats.ErrorCount > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d error-severity violation(s)", stats.ErrorCount))
	}
	return nil
}

func recordRun(ctx context.Context, dbPath, runID string, res rule.Result, stats engine.ViolationStats, fingerprint string) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.WriteRun(ctx, store.NewRun(runID, res, stats, fingerprint), res.Violations)
}

func outputCheck(formatter *OutputFormatter, result CheckResult) error {
	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}

	if err := report.RenderText(formatter.Writer, result.Result, result.Stats); err != nil {
		return err
	}
	formatter.VerboseLog("fingerprint: %s", result.Fingerprint)
	return nil
}
