package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/schedlint/internal/ruleschema"
)

// VetResult is the JSON payload for a vet run.
type VetResult struct {
	Valid     bool                 `json:"valid"`
	RuleCount int                  `json:"ruleCount"`
	Findings  []ruleschema.Finding `json:"findings,omitempty"`
}

// NewVetCommand creates the vet command.
func NewVetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet <rules-file>",
		Short: "Check a rule file against the rule schema",
		Long: `Check a rule file against the embedded schema.

The engine is fail-open about malformed rules - it skips them with a
warning. Vet is the strict counterpart: it reports every schema problem,
including unknown fields and typos, before a rule set goes into use.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runVet(rootOpts *RootOptions, rulesPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	rawRules, err := LoadRawRules(rulesPath)
	if err != nil {
		_ = formatter.Error("E001", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading rules failed", err)
	}
	formatter.VerboseLog("Vetting %d rule(s) from %s", len(rawRules), rulesPath)

	findings, err := ruleschema.Vet(rawRules)
	if err != nil {
		return WrapExitError(ExitCommandError, "vetting rules failed", err)
	}

	result := VetResult{
		Valid:     len(findings) == 0,
		RuleCount: len(rawRules),
		Findings:  findings,
	}

	if formatter.Format == "json" {
		if err := formatter.SuccessJSON(result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Fprintf(formatter.Writer, "✓ rule file valid (%d rules)\n", result.RuleCount)
	} else {
		fmt.Fprintf(formatter.Writer, "✗ rule file has %d problem(s)\n\n", len(findings))
		for _, f := range findings {
			fmt.Fprintf(formatter.Writer, "  %s\n", f)
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("vet failed with %d finding(s)", len(findings)))
	}
	return nil
}
