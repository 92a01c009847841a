package engine

import (
	"sort"
	"sync"

	"github.com/roach88/schedlint/internal/rule"
)

// Built-in condition types. A rule's condition.type selects the evaluator
// through the registry; these are the six shipped strategies.
const (
	ConditionTimeConflict     = "time_conflict"
	ConditionMeetingBuffer    = "meeting_buffer"
	ConditionLocationGrouping = "location_grouping"
	ConditionWorkloadLimit    = "workload_limit"
	ConditionDuration         = "duration_validation"
	ConditionBreakRequirement = "break_requirement"
)

// Evaluator implements one validation strategy for one condition type.
//
// Evaluators read only the rule's identity fields, messages, severity, and
// condition parameters. They never mutate items and never return an error:
// items missing the fields an evaluator needs are excluded from its input
// set, and missing parameters fall back to documented defaults.
type Evaluator interface {
	Evaluate(items []rule.Item, r rule.Rule) []rule.Violation
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(items []rule.Item, r rule.Rule) []rule.Violation

// Evaluate calls fn(items, r).
func (fn EvaluatorFunc) Evaluate(items []rule.Item, r rule.Rule) []rule.Violation {
	return fn(items, r)
}

// Registry maps condition-type strings to evaluators.
//
// Thread-safety: lookups take a read lock, registration a write lock.
// Registration is a configuration-time operation - complete it before the
// registry is shared with concurrent readers.
type Registry struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
}

// NewRegistry creates a registry pre-populated with the six built-in
// evaluators.
func NewRegistry() *Registry {
	return &Registry{
		evaluators: map[string]Evaluator{
			ConditionTimeConflict:     EvaluatorFunc(evalTimeConflict),
			ConditionMeetingBuffer:    EvaluatorFunc(evalMeetingBuffer),
			ConditionLocationGrouping: EvaluatorFunc(evalLocationGrouping),
			ConditionWorkloadLimit:    EvaluatorFunc(evalWorkloadLimit),
			ConditionDuration:         EvaluatorFunc(evalDuration),
			ConditionBreakRequirement: EvaluatorFunc(evalBreakRequirement),
		},
	}
}

// Register adds or overwrites the evaluator for a condition type. This is
// the extensibility point for host-defined condition types.
func (reg *Registry) Register(conditionType string, ev Evaluator) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.evaluators[conditionType] = ev
}

// Lookup returns the evaluator for a condition type.
func (reg *Registry) Lookup(conditionType string) (Evaluator, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	ev, ok := reg.evaluators[conditionType]
	return ev, ok
}

// Types returns the registered condition types in sorted order.
// Used for diagnostics and introspection.
func (reg *Registry) Types() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	types := make([]string, 0, len(reg.evaluators))
	for t := range reg.evaluators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
