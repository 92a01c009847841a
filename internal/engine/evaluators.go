package engine

import (
	"sort"

	"github.com/roach88/schedlint/internal/rule"
)

// Documented parameter defaults for the built-in evaluators. These are
// embedded business defaults carried over from the source system - named
// and overridable via condition parameters, not re-derived.
const (
	// DefaultBufferMinutes is the minimum gap meeting_buffer expects
	// between consecutive meetings.
	DefaultBufferMinutes = 10

	// DefaultMaxGapMinutes is the largest gap location_grouping tolerates
	// between consecutive items at the same location.
	DefaultMaxGapMinutes = 180

	// DefaultMaxItemsPerDay is the workload_limit ceiling per calendar day.
	DefaultMaxItemsPerDay = 8

	// DefaultMaxDurationMinutes and DefaultMinDurationMinutes bound
	// duration_validation.
	DefaultMaxDurationMinutes = 480
	DefaultMinDurationMinutes = 5

	// DefaultRequiredBreakMinutes is the rest break_requirement expects
	// once continuous work passes DefaultWorkThresholdMinutes.
	DefaultRequiredBreakMinutes = 30
	DefaultWorkThresholdMinutes = 240
)

// itemsWithStart returns the items that have a start date, sorted
// ascending by start. The sort is stable so items sharing a start keep
// their input order - evaluator output order depends on it.
func itemsWithStart(items []rule.Item) []rule.Item {
	timed := make([]rule.Item, 0, len(items))
	for _, it := range items {
		if it.StartDate != nil {
			timed = append(timed, it)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].StartDate.Before(*timed[j].StartDate)
	})
	return timed
}

// violation builds a finding for rule r naming the affected items.
// Category and Timestamp are stamped later by the facade.
func violation(r rule.Rule, message string, meta map[string]any, affected ...rule.Item) rule.Violation {
	ids := make([]string, len(affected))
	titles := make([]string, len(affected))
	for i, it := range affected {
		ids[i] = it.ID
		titles[i] = it.DisplayTitle()
	}
	return rule.Violation{
		RuleID:            r.ID,
		RuleName:          r.Name,
		Severity:          r.Severity,
		Message:           message,
		SuggestionMessage: r.SuggestionMessage,
		AffectedItems:     ids,
		ItemTitles:        titles,
		Metadata:          meta,
	}
}
