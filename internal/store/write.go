package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/schedlint/internal/engine"
	"github.com/roach88/schedlint/internal/report"
	"github.com/roach88/schedlint/internal/rule"
)

// createdAtLayout always prints all nine fractional digits, unlike
// RFC3339Nano, so lexicographic ORDER BY on the text column stays
// chronological. Times are stored in UTC.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// Run is one recorded validation run.
type Run struct {
	ID             string
	CreatedAt      time.Time
	ItemCount      int
	RuleCount      int
	ViolationCount int
	ErrorCount     int
	WarningCount   int
	InfoCount      int
	Fingerprint    string
}

// WriteRun records a run and its violations in a single transaction.
// Either the run row and every violation row are written, or none.
//
// Violation positions preserve result order, so a replayed listing shows
// violations exactly as the report did. Affected item ids are stored as
// canonical JSON for deterministic round-trips.
func (s *Store) WriteRun(ctx context.Context, run Run, violations []rule.Violation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, created_at, item_count, rule_count, violation_count, error_count, warning_count, info_count, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.CreatedAt.UTC().Format(createdAtLayout),
		run.ItemCount,
		run.RuleCount,
		run.ViolationCount,
		run.ErrorCount,
		run.WarningCount,
		run.InfoCount,
		run.Fingerprint,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	for i, vio := range violations {
		affected, err := marshalAffected(vio.AffectedItems)
		if err != nil {
			return fmt.Errorf("insert violation %d: %w", i, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_violations
			(run_id, position, rule_id, rule_name, severity, category, message, suggestion, affected_items)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			i,
			vio.RuleID,
			vio.RuleName,
			string(vio.Severity),
			string(vio.Category),
			vio.Message,
			vio.SuggestionMessage,
			affected,
		)
		if err != nil {
			return fmt.Errorf("insert violation %d for run %s: %w", i, run.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", run.ID, err)
	}
	return nil
}

// NewRun assembles a Run record from a result and its stats.
func NewRun(id string, res rule.Result, stats engine.ViolationStats, fingerprint string) Run {
	return Run{
		ID:             id,
		CreatedAt:      res.ValidatedAt,
		ItemCount:      res.ItemCount,
		RuleCount:      res.RuleCount,
		ViolationCount: stats.TotalViolations,
		ErrorCount:     stats.ErrorCount,
		WarningCount:   stats.WarningCount,
		InfoCount:      stats.InfoCount,
		Fingerprint:    fingerprint,
	}
}

func marshalAffected(ids []string) (string, error) {
	anyIDs := make([]any, len(ids))
	for i, id := range ids {
		anyIDs[i] = id
	}
	b, err := report.MarshalCanonical(anyIDs)
	if err != nil {
		return "", fmt.Errorf("marshal affected items: %w", err)
	}
	return string(b), nil
}
