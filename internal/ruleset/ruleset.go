// Package ruleset ships the default schedlint rule set: the six built-in
// condition types enabled with their documented defaults. Hosts that load
// no rule file get this set.
package ruleset

import (
	"github.com/roach88/schedlint/internal/engine"
	"github.com/roach88/schedlint/internal/rule"
)

// Default returns the built-in rule set. The slice is freshly allocated on
// every call so callers may tweak it without affecting each other.
func Default() []rule.Rule {
	return []rule.Rule{
		{
			ID:                "no-time-conflicts",
			Name:              "No overlapping items",
			Description:       "Consecutive items must not overlap in time.",
			Category:          rule.CategoryConflicts,
			Enabled:           true,
			Severity:          rule.SeverityError,
			Condition:         rule.Condition{Type: engine.ConditionTimeConflict},
			Message:           "schedule conflict",
			SuggestionMessage: "Reschedule one of the overlapping items to a free slot.",
		},
		{
			ID:                "meeting-buffer",
			Name:              "Buffer between meetings",
			Description:       "Back-to-back meetings need breathing room.",
			Category:          rule.CategoryTime,
			Enabled:           true,
			Severity:          rule.SeverityWarning,
			Condition:         rule.Condition{Type: engine.ConditionMeetingBuffer},
			Message:           "insufficient buffer between meetings",
			SuggestionMessage: "Leave at least a short buffer between consecutive meetings.",
		},
		{
			ID:                "group-by-location",
			Name:              "Group items by location",
			Description:       "Items at the same location should be scheduled close together.",
			Category:          rule.CategoryLocation,
			Enabled:           true,
			Severity:          rule.SeverityInfo,
			Condition:         rule.Condition{Type: engine.ConditionLocationGrouping},
			Message:           "items at the same location are spread out",
			SuggestionMessage: "Cluster items at the same location to cut travel time.",
		},
		{
			ID:                "daily-workload",
			Name:              "Daily workload limit",
			Description:       "A day should not be overloaded with items.",
			Category:          rule.CategoryWorkload,
			Enabled:           true,
			Severity:          rule.SeverityWarning,
			Condition:         rule.Condition{Type: engine.ConditionWorkloadLimit},
			Message:           "too many items in one day",
			SuggestionMessage: "Move some items to a lighter day.",
		},
		{
			ID:                "sane-durations",
			Name:              "Sane item durations",
			Description:       "Item durations must fall within reasonable bounds.",
			Category:          rule.CategoryDuration,
			Enabled:           true,
			Severity:          rule.SeverityWarning,
			Condition:         rule.Condition{Type: engine.ConditionDuration},
			Message:           "item duration out of bounds",
			SuggestionMessage: "Split very long items and merge very short ones.",
		},
		{
			ID:                "require-breaks",
			Name:              "Breaks during long work stretches",
			Description:       "Long stretches of continuous work need a real break.",
			Category:          rule.CategoryBreaks,
			Enabled:           true,
			Severity:          rule.SeverityWarning,
			Condition:         rule.Condition{Type: engine.ConditionBreakRequirement},
			Message:           "missing break during continuous work",
			SuggestionMessage: "Schedule a break after long stretches of work.",
		},
	}
}
