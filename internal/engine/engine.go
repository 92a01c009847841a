package engine

import (
	"log/slog"
	"sort"
	"time"

	"github.com/roach88/schedlint/internal/rule"
)

// Validator orchestrates rule evaluation: filter enabled rules, dispatch
// each through the registry, concatenate violations, sort, and assemble
// the result envelope.
//
// A Validator is safe for concurrent use once configuration (Register) is
// complete. Validate never mutates its inputs and allocates the result
// fresh on every call.
type Validator struct {
	registry *Registry
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithNow overrides the wall-clock source used for violation and result
// timestamps. Tests use this for deterministic output.
func WithNow(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// WithRegistry supplies a pre-built evaluator registry, for hosts that
// share one registry across validators.
func WithRegistry(reg *Registry) Option {
	return func(v *Validator) {
		v.registry = reg
	}
}

// New creates a Validator with the built-in evaluators registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry: NewRegistry(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Register adds or overwrites the evaluator for a condition type.
// Treat this as a configuration-time operation, not a hot-path one.
func (v *Validator) Register(conditionType string, ev Evaluator) {
	v.registry.Register(conditionType, ev)
}

// Registry returns the validator's evaluator registry.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Validate checks items against rules and returns the result envelope.
//
// Disabled rules are skipped and do not count toward RuleCount. Rules with
// an unknown condition type are skipped with a logged warning (fail-open).
// Violations are stable-sorted descending by severity weight, so
// equal-severity findings keep evaluator order. Suggestions are the
// distinct non-empty suggestion messages in first-occurrence order.
func (v *Validator) Validate(items []rule.Item, rules []rule.Rule) rule.Result {
	now := v.now()

	// Empty, not nil: clean results must render as [] in JSON output.
	violations := []rule.Violation{}
	enabled := 0
	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		enabled++

		ev, ok := v.registry.Lookup(r.Condition.Type)
		if !ok {
			slog.Warn("unknown condition type, skipping rule",
				"rule_id", r.ID,
				"condition_type", r.Condition.Type,
			)
			continue
		}

		found := safeEvaluate(ev, items, r)
		slog.Debug("rule evaluated",
			"rule_id", r.ID,
			"condition_type", r.Condition.Type,
			"violations", len(found),
		)

		// Stamp the fields evaluators leave to the facade.
		for i := range found {
			found[i].Category = r.Category
			found[i].Timestamp = now
		}
		violations = append(violations, found...)
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Severity.Weight() > violations[j].Severity.Weight()
	})

	return rule.Result{
		Valid:       len(violations) == 0,
		Violations:  violations,
		Suggestions: collectSuggestions(violations),
		ValidatedAt: now,
		ItemCount:   len(items),
		RuleCount:   enabled,
	}
}

// safeEvaluate dispatches to an evaluator with panic isolation. Built-in
// evaluators never panic by contract; this protects the batch from a
// misbehaving host-registered evaluator - the panic is logged and the rule
// contributes zero violations.
func safeEvaluate(ev Evaluator, items []rule.Item, r rule.Rule) (found []rule.Violation) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("evaluator panicked, skipping rule",
				"rule_id", r.ID,
				"condition_type", r.Condition.Type,
				"panic", rec,
			)
			found = nil
		}
	}()
	return ev.Evaluate(items, r)
}

// collectSuggestions returns the distinct non-empty suggestion messages in
// first-occurrence order.
func collectSuggestions(violations []rule.Violation) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, vio := range violations {
		s := vio.SuggestionMessage
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// defaultValidator backs the package-level convenience API.
var defaultValidator = New()

// ValidateItems checks items against rules using the package-level
// validator. Hosts needing an isolated registry or a fixed clock should
// construct their own Validator with New.
func ValidateItems(items []rule.Item, rules []rule.Rule) rule.Result {
	return defaultValidator.Validate(items, rules)
}

// RegisterRuleValidator registers a custom evaluator on the package-level
// validator. Complete registration before concurrent ValidateItems calls.
func RegisterRuleValidator(conditionType string, ev Evaluator) {
	defaultValidator.Register(conditionType, ev)
}
