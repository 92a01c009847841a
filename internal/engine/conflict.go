package engine

import (
	"fmt"

	"github.com/roach88/schedlint/internal/rule"
)

// evalTimeConflict implements the time_conflict condition: items sorted by
// start date are checked pairwise for overlapping effective intervals.
//
// Only ADJACENT pairs in sorted order are compared. A long item that
// overlaps several shorter ones further down the order is not fully
// detected. This limitation is preserved from the source system on
// purpose: generalizing it changes observable behavior.
func evalTimeConflict(items []rule.Item, r rule.Rule) []rule.Violation {
	timed := itemsWithStart(items)

	var out []rule.Violation
	for i := 0; i+1 < len(timed); i++ {
		a, b := timed[i], timed[i+1]
		if !rule.Overlaps(a, b) {
			continue
		}
		msg := fmt.Sprintf("%s: %q overlaps %q", r.Message, a.DisplayTitle(), b.DisplayTitle())
		out = append(out, violation(r, msg, map[string]any{
			"overlapMinutes": -rule.GapMinutes(a, b),
		}, a, b))
	}
	return out
}

// evalMeetingBuffer implements the meeting_buffer condition: consecutive
// items of type "meeting" must be separated by at least bufferMinutes
// (default DefaultBufferMinutes).
func evalMeetingBuffer(items []rule.Item, r rule.Rule) []rule.Violation {
	buffer := r.Condition.IntParam("bufferMinutes", DefaultBufferMinutes)

	var meetings []rule.Item
	for _, it := range itemsWithStart(items) {
		if it.Type == "meeting" {
			meetings = append(meetings, it)
		}
	}

	var out []rule.Violation
	for i := 0; i+1 < len(meetings); i++ {
		gap := rule.Gap(meetings[i], meetings[i+1])
		if gap.GapMinutes >= buffer {
			continue
		}
		msg := fmt.Sprintf("%s: only %d minutes between %q and %q, requires %d",
			r.Message, gap.GapMinutes, gap.Before.DisplayTitle(), gap.After.DisplayTitle(), buffer)
		out = append(out, violation(r, msg, map[string]any{
			"gapMinutes":    gap.GapMinutes,
			"bufferMinutes": buffer,
		}, gap.Before, gap.After))
	}
	return out
}
