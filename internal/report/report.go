// Package report renders validation results for humans and machines and
// derives the deterministic run fingerprint used by the history store.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/roach88/schedlint/internal/engine"
	"github.com/roach88/schedlint/internal/rule"
)

// Snapshot converts a result to the deterministic map serialized by
// MarshalCanonical. Wall-clock timestamps and diagnostic metadata are
// excluded so identical inputs always produce an identical snapshot -
// that property is what makes the fingerprint meaningful.
func Snapshot(res rule.Result, stats engine.ViolationStats) map[string]any {
	violations := make([]any, len(res.Violations))
	for i, vio := range res.Violations {
		m := map[string]any{
			"ruleId":        vio.RuleID,
			"ruleName":      vio.RuleName,
			"severity":      string(vio.Severity),
			"category":      string(vio.Category),
			"message":       vio.Message,
			"affectedItems": toAnySlice(vio.AffectedItems),
			"itemTitles":    toAnySlice(vio.ItemTitles),
		}
		if vio.SuggestionMessage != "" {
			m["suggestionMessage"] = vio.SuggestionMessage
		}
		violations[i] = m
	}

	byCategory := make(map[string]any, len(stats.ByCategory))
	for cat, n := range stats.ByCategory {
		byCategory[cat] = n
	}

	return map[string]any{
		"isValid":     res.Valid,
		"itemCount":   res.ItemCount,
		"ruleCount":   res.RuleCount,
		"violations":  violations,
		"suggestions": toAnySlice(res.Suggestions),
		"stats": map[string]any{
			"totalViolations":   stats.TotalViolations,
			"errorCount":        stats.ErrorCount,
			"warningCount":      stats.WarningCount,
			"infoCount":         stats.InfoCount,
			"byCategory":        byCategory,
			"mostCommonRule":    stats.MostCommonRule,
			"affectedItemCount": stats.AffectedItemCount,
		},
	}
}

// Fingerprint returns the hex SHA-256 of the canonical snapshot. Two runs
// over identical, unmutated inputs yield the same fingerprint.
func Fingerprint(res rule.Result, stats engine.ViolationStats) (string, error) {
	canonical, err := MarshalCanonical(Snapshot(res, stats))
	if err != nil {
		return "", fmt.Errorf("canonical snapshot: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// RenderText writes the human-readable report.
func RenderText(w io.Writer, res rule.Result, stats engine.ViolationStats) error {
	if res.Valid {
		_, err := fmt.Fprintf(w, "✓ schedule valid (%d items, %d rules)\n", res.ItemCount, res.RuleCount)
		return err
	}

	fmt.Fprintf(w, "✗ %d violation(s) (%d items, %d rules)\n\n", stats.TotalViolations, res.ItemCount, res.RuleCount)

	for _, vio := range res.Violations {
		fmt.Fprintf(w, "  [%s] %s: %s\n", vio.Severity, vio.RuleID, vio.Message)
		fmt.Fprintf(w, "          items: %s\n", joinTitles(vio.ItemTitles))
	}

	fmt.Fprintf(w, "\n%d error(s), %d warning(s), %d info\n",
		stats.ErrorCount, stats.WarningCount, stats.InfoCount)

	if len(res.Suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range res.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	return nil
}

func joinTitles(titles []string) string {
	out := ""
	for i, t := range titles {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
