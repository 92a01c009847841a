package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/schedlint/internal/rule"
)

func TestPackageLevelValidateItems(t *testing.T) {
	items := []rule.Item{
		timedItem("m1", at(9, 0), at(10, 0)),
		timedItem("m2", at(9, 30), at(10, 30)),
	}

	res := ValidateItems(items, []rule.Rule{testRule(ConditionTimeConflict, nil)})

	assert.False(t, res.Valid)
	require.Len(t, res.Violations, 1)
}

func TestPackageLevelRegisterRuleValidator(t *testing.T) {
	// The package-level registry is shared; use a condition type no other
	// test registers.
	RegisterRuleValidator("api_test_custom", EvaluatorFunc(func(items []rule.Item, r rule.Rule) []rule.Violation {
		return []rule.Violation{{RuleID: r.ID, Message: "fired"}}
	}))

	res := ValidateItems(nil, []rule.Rule{testRule("api_test_custom", nil)})

	require.Len(t, res.Violations, 1)
	assert.Equal(t, "fired", res.Violations[0].Message)
}
