package rule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func tsp(hour, min int) *time.Time {
	t := ts(hour, min)
	return &t
}

func TestEffectiveEnd_ExplicitEndWins(t *testing.T) {
	it := Item{ID: "a", StartDate: tsp(9, 0), EndDate: tsp(10, 30), DurationMinutes: 15}

	end, ok := it.EffectiveEnd()
	require.True(t, ok)
	assert.Equal(t, ts(10, 30), end)
}

func TestEffectiveEnd_DerivedFromDuration(t *testing.T) {
	it := Item{ID: "a", StartDate: tsp(9, 0), DurationMinutes: 90}

	end, ok := it.EffectiveEnd()
	require.True(t, ok)
	assert.Equal(t, ts(10, 30), end)
}

func TestEffectiveEnd_DefaultDuration(t *testing.T) {
	it := Item{ID: "a", StartDate: tsp(9, 0)}

	end, ok := it.EffectiveEnd()
	require.True(t, ok)
	assert.Equal(t, ts(9, 50), end, "should apply the %d minute default", DefaultDurationMinutes)
}

func TestEffectiveEnd_NoTimeScope(t *testing.T) {
	_, ok := Item{ID: "a"}.EffectiveEnd()
	assert.False(t, ok)
}

func TestEffectiveDuration(t *testing.T) {
	testCases := []struct {
		name string
		item Item
		want int
	}{
		{"explicit duration", Item{DurationMinutes: 25}, 25},
		{"derived from dates", Item{StartDate: tsp(9, 0), EndDate: tsp(10, 15)}, 75},
		{"explicit beats dates", Item{StartDate: tsp(9, 0), EndDate: tsp(10, 15), DurationMinutes: 30}, 30},
		{"default", Item{}, DefaultDurationMinutes},
		{"default with start only", Item{StartDate: tsp(9, 0)}, DefaultDurationMinutes},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.EffectiveDuration())
		})
	}
}

func TestGapMinutes(t *testing.T) {
	a := Item{ID: "a", StartDate: tsp(9, 0), EndDate: tsp(10, 0)}
	b := Item{ID: "b", StartDate: tsp(10, 45)}

	assert.Equal(t, 45, GapMinutes(a, b))
}

func TestGapMinutes_NegativeOnOverlap(t *testing.T) {
	a := Item{ID: "a", StartDate: tsp(9, 0), EndDate: tsp(10, 0)}
	b := Item{ID: "b", StartDate: tsp(9, 30)}

	assert.Equal(t, -30, GapMinutes(a, b))
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b Item
		want bool
	}{
		{
			"clear overlap",
			Item{StartDate: tsp(9, 0), EndDate: tsp(10, 0)},
			Item{StartDate: tsp(9, 30), EndDate: tsp(10, 30)},
			true,
		},
		{
			"disjoint",
			Item{StartDate: tsp(9, 0), EndDate: tsp(10, 0)},
			Item{StartDate: tsp(11, 0), EndDate: tsp(12, 0)},
			false,
		},
		{
			"touching endpoints do not overlap",
			Item{StartDate: tsp(9, 0), EndDate: tsp(10, 0)},
			Item{StartDate: tsp(10, 0), EndDate: tsp(11, 0)},
			false,
		},
		{
			"containment",
			Item{StartDate: tsp(9, 0), EndDate: tsp(12, 0)},
			Item{StartDate: tsp(10, 0), EndDate: tsp(10, 30)},
			true,
		},
		{
			"missing start excluded",
			Item{EndDate: tsp(10, 0)},
			Item{StartDate: tsp(9, 30), EndDate: tsp(10, 30)},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a), "overlap is symmetric")
		})
	}
}

func TestDisplayTitle_FallsBackToID(t *testing.T) {
	assert.Equal(t, "Standup", Item{ID: "m1", Title: "Standup"}.DisplayTitle())
	assert.Equal(t, "m1", Item{ID: "m1"}.DisplayTitle())
}

func TestSeverityWeight(t *testing.T) {
	assert.Equal(t, 3, SeverityError.Weight())
	assert.Equal(t, 2, SeverityWarning.Weight())
	assert.Equal(t, 1, SeverityInfo.Weight())
	assert.Equal(t, 0, Severity("bogus").Weight())
}

func TestIntParam(t *testing.T) {
	c := Condition{Parameters: map[string]any{
		"int":     15,
		"float":   20.0,
		"int64":   int64(25),
		"garbage": "nope",
	}}

	assert.Equal(t, 15, c.IntParam("int", 1))
	assert.Equal(t, 20, c.IntParam("float", 1))
	assert.Equal(t, 25, c.IntParam("int64", 1))
	assert.Equal(t, 1, c.IntParam("garbage", 1), "non-numeric falls back to default")
	assert.Equal(t, 1, c.IntParam("missing", 1))
	assert.Equal(t, 1, Condition{}.IntParam("any", 1), "nil parameters fall back to default")
}
