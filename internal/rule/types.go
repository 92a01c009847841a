package rule

import "time"

// Severity ranks a violation. Only the relative weight matters for
// ordering: error > warning > info.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Weight returns the numeric rank used for sort order.
// Unknown severities rank below info so malformed rules sink to the
// bottom of a report instead of breaking it.
func (s Severity) Weight() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Category groups rules for reporting. The set is small and fixed;
// CategoryCustom is the escape hatch for host-registered condition types.
type Category string

const (
	CategoryTime      Category = "time"
	CategoryLocation  Category = "location"
	CategoryWorkload  Category = "workload"
	CategoryBreaks    Category = "breaks"
	CategoryConflicts Category = "conflicts"
	CategoryDuration  Category = "duration"
	CategoryCustom    Category = "custom"
)

// Item is anything with an id and an optional time scope: a calendar
// event, a task, a booking. All fields except ID are optional.
//
// The type is intentionally open: domain-specific fields that no built-in
// evaluator reads are preserved in Extra so custom evaluators can consume
// them without adapter code.
type Item struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	StartDate *time.Time `yaml:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *time.Time `yaml:"endDate,omitempty" json:"endDate,omitempty"`

	// DurationMinutes is the explicit duration. Zero or negative means
	// unspecified; helpers fall back to DefaultDurationMinutes.
	DurationMinutes int `yaml:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`

	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`

	// Extra holds fields outside the core shape, keyed by their source name.
	Extra map[string]any `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// DisplayTitle returns the item's title, falling back to its id.
func (it Item) DisplayTitle() string {
	if it.Title != "" {
		return it.Title
	}
	return it.ID
}

// Condition selects and tunes an evaluator. Type is the registry key;
// Parameters are evaluator-specific tunables with documented defaults.
type Condition struct {
	Type       string         `yaml:"type" json:"type"`
	Parameters map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Rule is a declarative, data-only description of one check.
//
// A rule with an unknown Condition.Type is skipped with a logged warning
// and contributes zero violations - never an error (fail-open).
type Rule struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Category    Category `yaml:"category" json:"category"`

	Enabled  bool     `yaml:"enabled" json:"enabled"`
	Severity Severity `yaml:"severity" json:"severity"`

	Condition Condition `yaml:"condition" json:"condition"`

	Message           string `yaml:"message" json:"message"`
	SuggestionMessage string `yaml:"suggestionMessage,omitempty" json:"suggestionMessage,omitempty"`
}

// Violation is one structured finding from evaluating one rule.
//
// AffectedItems and ItemTitles are parallel sequences; titles fall back
// to the item id when absent. Category and Timestamp are stamped by the
// engine facade after dispatch, not by evaluators.
type Violation struct {
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`

	Message           string `json:"message"`
	SuggestionMessage string `json:"suggestionMessage,omitempty"`

	AffectedItems []string `json:"affectedItems"`
	ItemTitles    []string `json:"itemTitles"`

	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Result is the envelope returned by one validation call.
//
// Violations are sorted descending by severity weight; equal-severity
// violations retain the order evaluators produced them in (stable sort -
// this is a contract, not an accident). Suggestions are the distinct
// non-empty suggestion messages in first-occurrence order.
type Result struct {
	Valid       bool        `json:"isValid"`
	Violations  []Violation `json:"violations"`
	Suggestions []string    `json:"suggestions"`

	ValidatedAt time.Time `json:"validatedAt"`
	ItemCount   int       `json:"itemCount"`
	// RuleCount is the count of enabled rules evaluated, not rules supplied.
	RuleCount int `json:"ruleCount"`
}

// TimeGap describes the gap between the effective end of one item and the
// start of the next. Negative minutes indicate overlap.
type TimeGap struct {
	Before     Item
	After      Item
	GapMinutes int
}
