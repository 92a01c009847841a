package engine

import "github.com/roach88/schedlint/internal/rule"

// ViolationStats aggregates a validation result for observability.
type ViolationStats struct {
	TotalViolations int `json:"totalViolations"`

	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
	InfoCount    int `json:"infoCount"`

	// ByCategory counts violations per rule category.
	ByCategory map[string]int `json:"byCategory"`

	// MostCommonRule is the rule id with the most violations. Ties break
	// by first-encountered order in the violation sequence.
	MostCommonRule string `json:"mostCommonRule"`

	// AffectedItemCount is the number of distinct item ids named across
	// all violations.
	AffectedItemCount int `json:"affectedItemCount"`
}

// GetViolationStats derives aggregate counts from a result. Pure
// aggregation - no dependency on prior calls.
func GetViolationStats(res rule.Result) ViolationStats {
	stats := ViolationStats{
		TotalViolations: len(res.Violations),
		ByCategory:      make(map[string]int),
	}

	affected := make(map[string]bool)
	ruleCounts := make(map[string]int)
	var ruleOrder []string

	for _, vio := range res.Violations {
		switch vio.Severity {
		case rule.SeverityError:
			stats.ErrorCount++
		case rule.SeverityWarning:
			stats.WarningCount++
		case rule.SeverityInfo:
			stats.InfoCount++
		}

		stats.ByCategory[string(vio.Category)]++

		if _, seen := ruleCounts[vio.RuleID]; !seen {
			ruleOrder = append(ruleOrder, vio.RuleID)
		}
		ruleCounts[vio.RuleID]++

		for _, id := range vio.AffectedItems {
			affected[id] = true
		}
	}

	stats.AffectedItemCount = len(affected)

	// First-encountered order breaks ties.
	best := 0
	for _, id := range ruleOrder {
		if ruleCounts[id] > best {
			best = ruleCounts[id]
			stats.MostCommonRule = id
		}
	}

	return stats
}
