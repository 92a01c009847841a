package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/schedlint/internal/rule"
)

func TestTimeConflict_OverlappingPair(t *testing.T) {
	items := []rule.Item{
		timedItem("m1", at(9, 0), at(10, 0)),
		timedItem("m2", at(9, 30), at(10, 30)),
	}

	found := evalTimeConflict(items, testRule(ConditionTimeConflict, nil))

	require.Len(t, found, 1)
	assert.Equal(t, []string{"m1", "m2"}, found[0].AffectedItems)
	assert.Equal(t, []string{"m1", "m2"}, found[0].ItemTitles)
	assert.Equal(t, 30, found[0].Metadata["overlapMinutes"])
}

func TestTimeConflict_DisjointItems(t *testing.T) {
	items := []rule.Item{
		timedItem("a", at(9, 0), at(10, 0)),
		timedItem("b", at(10, 0), at(11, 0)),
		timedItem("c", at(12, 0), at(13, 0)),
	}

	assert.Empty(t, evalTimeConflict(items, testRule(ConditionTimeConflict, nil)))
}

func TestTimeConflict_IgnoresItemsWithoutStart(t *testing.T) {
	items := []rule.Item{
		{ID: "floating"},
		timedItem("a", at(9, 0), at(10, 0)),
	}

	assert.Empty(t, evalTimeConflict(items, testRule(ConditionTimeConflict, nil)))
}

func TestTimeConflict_UnsortedInput(t *testing.T) {
	// Items arrive out of order; the evaluator sorts by start first.
	items := []rule.Item{
		timedItem("late", at(14, 0), at(15, 0)),
		timedItem("early", at(9, 0), at(10, 0)),
		timedItem("overlap", at(9, 45), at(10, 30)),
	}

	found := evalTimeConflict(items, testRule(ConditionTimeConflict, nil))

	require.Len(t, found, 1)
	assert.Equal(t, []string{"early", "overlap"}, found[0].AffectedItems)
}

func TestTimeConflict_AdjacentPairsOnly(t *testing.T) {
	// A long item spanning two later ones: only the adjacent pair in
	// sorted order is reported. Documented limitation, kept on purpose.
	items := []rule.Item{
		timedItem("long", at(9, 0), at(13, 0)),
		timedItem("mid", at(10, 0), at(10, 30)),
		timedItem("later", at(12, 0), at(12, 30)),
	}

	found := evalTimeConflict(items, testRule(ConditionTimeConflict, nil))

	require.Len(t, found, 1)
	assert.Equal(t, []string{"long", "mid"}, found[0].AffectedItems)
}

func TestMeetingBuffer_TooTight(t *testing.T) {
	items := []rule.Item{
		meeting("c", at(9, 10), at(10, 0)),
		meeting("d", at(10, 5), at(11, 0)),
	}

	found := evalMeetingBuffer(items, testRule(ConditionMeetingBuffer, map[string]any{"bufferMinutes": 10}))

	require.Len(t, found, 1)
	assert.Contains(t, found[0].Message, "5 minutes")
	assert.Contains(t, found[0].Message, "requires 10")
	assert.Equal(t, []string{"c", "d"}, found[0].AffectedItems)
	assert.Equal(t, 5, found[0].Metadata["gapMinutes"])
}

func TestMeetingBuffer_DefaultThreshold(t *testing.T) {
	items := []rule.Item{
		meeting("c", at(9, 0), at(10, 0)),
		meeting("d", at(10, 9), at(11, 0)),
	}

	found := evalMeetingBuffer(items, testRule(ConditionMeetingBuffer, nil))

	require.Len(t, found, 1)
	assert.Equal(t, DefaultBufferMinutes, found[0].Metadata["bufferMinutes"])
}

func TestMeetingBuffer_AdequateGap(t *testing.T) {
	items := []rule.Item{
		meeting("c", at(9, 0), at(10, 0)),
		meeting("d", at(10, 30), at(11, 0)),
	}

	assert.Empty(t, evalMeetingBuffer(items, testRule(ConditionMeetingBuffer, nil)))
}

func TestMeetingBuffer_NonMeetingsExcluded(t *testing.T) {
	items := []rule.Item{
		meeting("c", at(9, 0), at(10, 0)),
		timedItem("lunch", at(10, 2), at(10, 45)), // not a meeting
	}

	assert.Empty(t, evalMeetingBuffer(items, testRule(ConditionMeetingBuffer, nil)))
}
