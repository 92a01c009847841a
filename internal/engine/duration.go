package engine

import (
	"fmt"

	"github.com/roach88/schedlint/internal/rule"
)

// evalDuration implements the duration_validation condition: every item's
// effective duration must fall within [minDurationMinutes,
// maxDurationMinutes] (defaults DefaultMinDurationMinutes and
// DefaultMaxDurationMinutes).
//
// No date filter applies - items without a time scope are still checked
// via their explicit or default duration. An item can violate both bounds
// parameters permitting, as two distinct violations.
func evalDuration(items []rule.Item, r rule.Rule) []rule.Violation {
	maxDur := r.Condition.IntParam("maxDurationMinutes", DefaultMaxDurationMinutes)
	minDur := r.Condition.IntParam("minDurationMinutes", DefaultMinDurationMinutes)

	var out []rule.Violation
	for _, it := range items {
		dur := it.EffectiveDuration()
		if dur > maxDur {
			msg := fmt.Sprintf("%s: %q runs %d minutes, exceeds maximum %d",
				r.Message, it.DisplayTitle(), dur, maxDur)
			out = append(out, violation(r, msg, map[string]any{
				"durationMinutes":    dur,
				"maxDurationMinutes": maxDur,
			}, it))
		}
		if dur < minDur {
			msg := fmt.Sprintf("%s: %q runs %d minutes, below minimum %d",
				r.Message, it.DisplayTitle(), dur, minDur)
			out = append(out, violation(r, msg, map[string]any{
				"durationMinutes":    dur,
				"minDurationMinutes": minDur,
			}, it))
		}
	}
	return out
}
