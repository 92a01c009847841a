package engine

import (
	"fmt"

	"github.com/roach88/schedlint/internal/rule"
)

// workItemTypes are the item types break_requirement counts as work.
var workItemTypes = map[string]bool{
	"meeting": true,
	"work":    true,
	"task":    true,
}

// evalBreakRequirement implements the break_requirement condition: once
// continuous work exceeds workHoursThreshold minutes (default
// DefaultWorkThresholdMinutes), the next work item must be preceded by a
// break of at least requiredBreakMinutes (default
// DefaultRequiredBreakMinutes).
//
// A running accumulator tracks continuous work minutes. An adequate break
// resets it to zero; an inadequate one keeps it growing across items.
func evalBreakRequirement(items []rule.Item, r rule.Rule) []rule.Violation {
	requiredBreak := r.Condition.IntParam("requiredBreakMinutes", DefaultRequiredBreakMinutes)
	threshold := r.Condition.IntParam("workHoursThreshold", DefaultWorkThresholdMinutes)

	var work []rule.Item
	for _, it := range itemsWithStart(items) {
		if workItemTypes[it.Type] {
			work = append(work, it)
		}
	}
	if len(work) == 0 {
		return nil
	}

	var out []rule.Violation
	continuous := work[0].EffectiveDuration()
	prev := work[0]
	for _, it := range work[1:] {
		rest := rule.GapMinutes(prev, it)
		if rest < requiredBreak && continuous > threshold {
			msg := fmt.Sprintf("%s: %q starts after only %d minutes of rest following %d minutes of continuous work (requires %d)",
				r.Message, it.DisplayTitle(), rest, continuous, requiredBreak)
			out = append(out, violation(r, msg, map[string]any{
				"restMinutes":           rest,
				"continuousWorkMinutes": continuous,
				"requiredBreakMinutes":  requiredBreak,
			}, it))
		}
		if rest >= requiredBreak {
			continuous = 0
		}
		continuous += it.EffectiveDuration()
		prev = it
	}
	return out
}
