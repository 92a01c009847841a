package engine

import (
	"time"

	"github.com/roach88/schedlint/internal/rule"
)

// Test fixtures shared by the evaluator tests. All times are on the same
// UTC day unless a test says otherwise.

func at(hour, min int) *time.Time {
	t := time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
	return &t
}

func atDay(day, hour int) *time.Time {
	t := time.Date(2026, 1, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func timedItem(id string, start, end *time.Time) rule.Item {
	return rule.Item{ID: id, Title: id, StartDate: start, EndDate: end}
}

func meeting(id string, start, end *time.Time) rule.Item {
	it := timedItem(id, start, end)
	it.Type = "meeting"
	return it
}

func testRule(conditionType string, params map[string]any) rule.Rule {
	return rule.Rule{
		ID:        "r-" + conditionType,
		Name:      "test " + conditionType,
		Category:  rule.CategoryCustom,
		Enabled:   true,
		Severity:  rule.SeverityWarning,
		Condition: rule.Condition{Type: conditionType, Parameters: params},
		Message:   "check failed",
	}
}
