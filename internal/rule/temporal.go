package rule

import "time"

// DefaultDurationMinutes is the assumed length of an item that has a start
// date but neither an end date nor an explicit duration. It is a business
// default (meeting-length heuristic) carried over from the source system,
// kept as a named constant rather than re-derived.
const DefaultDurationMinutes = 50

// EffectiveEnd derives the item's end time.
//
// Preference order: explicit EndDate, then StartDate plus the explicit or
// default duration. Returns ok=false when the item has no time scope at all.
func (it Item) EffectiveEnd() (time.Time, bool) {
	if it.EndDate != nil {
		return *it.EndDate, true
	}
	if it.StartDate != nil {
		d := it.DurationMinutes
		if d <= 0 {
			d = DefaultDurationMinutes
		}
		return it.StartDate.Add(time.Duration(d) * time.Minute), true
	}
	return time.Time{}, false
}

// EffectiveDuration derives the item's duration in minutes.
//
// Preference order: explicit DurationMinutes, then EndDate minus StartDate,
// then DefaultDurationMinutes.
func (it Item) EffectiveDuration() int {
	if it.DurationMinutes > 0 {
		return it.DurationMinutes
	}
	if it.StartDate != nil && it.EndDate != nil {
		return int(it.EndDate.Sub(*it.StartDate) / time.Minute)
	}
	return DefaultDurationMinutes
}

// GapMinutes returns the minutes between the effective end of a and the
// start of b. Negative values indicate overlap. Both items must have a
// start date; callers filter before pairing.
func GapMinutes(a, b Item) int {
	endA, ok := a.EffectiveEnd()
	if !ok || b.StartDate == nil {
		return 0
	}
	return int(b.StartDate.Sub(endA) / time.Minute)
}

// Gap pairs two items with the gap between them.
func Gap(a, b Item) TimeGap {
	return TimeGap{Before: a, After: b, GapMinutes: GapMinutes(a, b)}
}

// Overlaps reports whether the effective intervals of a and b intersect.
// Touching endpoints (one starts exactly when the other ends) do not count.
func Overlaps(a, b Item) bool {
	if a.StartDate == nil || b.StartDate == nil {
		return false
	}
	endA, okA := a.EffectiveEnd()
	endB, okB := b.EffectiveEnd()
	if !okA || !okB {
		return false
	}
	return a.StartDate.Before(endB) && b.StartDate.Before(endA)
}
