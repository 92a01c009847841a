package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/schedlint/internal/rule"
)

// ListRuns returns up to limit runs, newest first. Ties on created_at
// break by id for deterministic ordering. Returns an empty slice, not
// nil, when the history is empty.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, item_count, rule_count, violation_count, error_count, warning_count, info_count, fingerprint
		FROM runs
		ORDER BY created_at DESC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.ID,
			&createdAt,
			&run.ItemCount,
			&run.RuleCount,
			&run.ViolationCount,
			&run.ErrorCount,
			&run.WarningCount,
			&run.InfoCount,
			&run.Fingerprint,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run %s created_at: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRunViolations returns the violations recorded for a run in their
// original result order. Timestamps and metadata are not persisted; the
// returned violations carry identity, severity, messages, and items.
func (s *Store) ReadRunViolations(ctx context.Context, runID string) ([]rule.Violation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rule_id, rule_name, severity, category, message, suggestion, affected_items
		FROM run_violations
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query violations for run %s: %w", runID, err)
	}
	defer rows.Close()

	violations := []rule.Violation{}
	for rows.Next() {
		var vio rule.Violation
		var severity, category, affected string
		if err := rows.Scan(
			&vio.RuleID,
			&vio.RuleName,
			&severity,
			&category,
			&vio.Message,
			&vio.SuggestionMessage,
			&affected,
		); err != nil {
			return nil, fmt.Errorf("scan violation: %w", err)
		}
		vio.Severity = rule.Severity(severity)
		vio.Category = rule.Category(category)
		if err := json.Unmarshal([]byte(affected), &vio.AffectedItems); err != nil {
			return nil, fmt.Errorf("decode affected items: %w", err)
		}
		violations = append(violations, vio)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate violations: %w", err)
	}
	return violations, nil
}
