package engine

import (
	"fmt"
	"sort"

	"github.com/roach88/schedlint/internal/rule"
)

// evalLocationGrouping implements the location_grouping condition: within
// each location, consecutive items should not be separated by more than
// maxGapMinutes (default DefaultMaxGapMinutes). Large gaps suggest the
// day's items at that location were not grouped together.
func evalLocationGrouping(items []rule.Item, r rule.Rule) []rule.Violation {
	maxGap := r.Condition.IntParam("maxGapMinutes", DefaultMaxGapMinutes)

	byLocation := make(map[string][]rule.Item)
	for _, it := range itemsWithStart(items) {
		if it.Location != "" {
			byLocation[it.Location] = append(byLocation[it.Location], it)
		}
	}

	// Locations iterated in sorted order for deterministic output.
	locations := make([]string, 0, len(byLocation))
	for loc := range byLocation {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	var out []rule.Violation
	for _, loc := range locations {
		group := byLocation[loc]
		if len(group) < 2 {
			continue
		}
		for i := 0; i+1 < len(group); i++ {
			gap := rule.Gap(group[i], group[i+1])
			if gap.GapMinutes <= maxGap {
				continue
			}
			msg := fmt.Sprintf("%s: %d minute gap at %q between %q and %q (max %d)",
				r.Message, gap.GapMinutes, loc, gap.Before.DisplayTitle(), gap.After.DisplayTitle(), maxGap)
			out = append(out, violation(r, msg, map[string]any{
				"location":      loc,
				"gapMinutes":    gap.GapMinutes,
				"maxGapMinutes": maxGap,
			}, gap.Before, gap.After))
		}
	}
	return out
}

// evalWorkloadLimit implements the workload_limit condition: no calendar
// day may hold more than maxItemsPerDay items (default
// DefaultMaxItemsPerDay). The day is the local date component of the
// item's start.
func evalWorkloadLimit(items []rule.Item, r rule.Rule) []rule.Violation {
	maxPerDay := r.Condition.IntParam("maxItemsPerDay", DefaultMaxItemsPerDay)

	byDay := make(map[string][]rule.Item)
	for _, it := range itemsWithStart(items) {
		day := it.StartDate.Format("2006-01-02")
		byDay[day] = append(byDay[day], it)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var out []rule.Violation
	for _, day := range days {
		group := byDay[day]
		if len(group) <= maxPerDay {
			continue
		}
		msg := fmt.Sprintf("%s: %d items on %s (max %d)", r.Message, len(group), day, maxPerDay)
		out = append(out, violation(r, msg, map[string]any{
			"date":           day,
			"itemCount":      len(group),
			"maxItemsPerDay": maxPerDay,
		}, group...))
	}
	return out
}
