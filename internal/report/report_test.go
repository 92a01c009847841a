package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/schedlint/internal/engine"
	"github.com/roach88/schedlint/internal/rule"
	"github.com/roach88/schedlint/internal/testutil"
)

// fixtureResult runs a fixed overlap scenario through the engine with a
// frozen clock, so every test sees the exact same result.
func fixtureResult(t *testing.T) (rule.Result, engine.ViolationStats) {
	t.Helper()

	start1 := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	end1 := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	start2 := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	end2 := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)

	items := []rule.Item{
		{ID: "m1", Title: "Standup", StartDate: &start1, EndDate: &end1},
		{ID: "m2", Title: "Review", StartDate: &start2, EndDate: &end2},
	}
	rules := []rule.Rule{{
		ID:                "no-overlap",
		Name:              "No overlap",
		Category:          rule.CategoryConflicts,
		Enabled:           true,
		Severity:          rule.SeverityError,
		Condition:         rule.Condition{Type: engine.ConditionTimeConflict},
		Message:           "schedule conflict",
		SuggestionMessage: "Move one item.",
	}}

	clock := testutil.NewStepClock(time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC), 0)
	res := engine.New(engine.WithNow(clock.Now)).Validate(items, rules)
	return res, engine.GetViolationStats(res)
}

func TestSnapshot_Golden(t *testing.T) {
	res, stats := fixtureResult(t)

	canonical, err := MarshalCanonical(Snapshot(res, stats))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "snapshot", canonical)
}

func TestRenderText_Golden(t *testing.T) {
	res, stats := fixtureResult(t)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, res, stats))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_text", buf.Bytes())
}

func TestRenderText_ValidSchedule(t *testing.T) {
	res := rule.Result{Valid: true, ItemCount: 3, RuleCount: 6}

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, res, engine.GetViolationStats(res)))

	assert.Equal(t, "✓ schedule valid (3 items, 6 rules)\n", buf.String())
}

func TestFingerprint_DeterministicAcrossRuns(t *testing.T) {
	res1, stats1 := fixtureResult(t)
	res2, stats2 := fixtureResult(t)

	fp1, err := Fingerprint(res1, stats1)
	require.NoError(t, err)
	fp2, err := Fingerprint(res2, stats2)
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 64, "hex sha-256")
}

func TestFingerprint_SensitiveToContent(t *testing.T) {
	res, stats := fixtureResult(t)

	fp1, err := Fingerprint(res, stats)
	require.NoError(t, err)

	res.Violations[0].Message = "different"
	fp2, err := Fingerprint(res, stats)
	require.NoError(t, err)

	assert.NotEqual(t, fp1, fp2)
}

func TestFingerprint_IgnoresTimestamps(t *testing.T) {
	res, stats := fixtureResult(t)

	fp1, err := Fingerprint(res, stats)
	require.NoError(t, err)

	res.ValidatedAt = res.ValidatedAt.Add(time.Hour)
	for i := range res.Violations {
		res.Violations[i].Timestamp = res.Violations[i].Timestamp.Add(time.Hour)
	}
	fp2, err := Fingerprint(res, stats)
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2, "wall-clock time must not affect the fingerprint")
}
