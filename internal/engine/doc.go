// Package engine implements the schedlint rule-based validation engine.
//
// The engine is a pure, synchronous, stateless-per-call function of an item
// collection and a rule collection: enabled rules are dispatched through a
// string-keyed registry of evaluators, violations are concatenated, sorted,
// and returned in a result envelope. No I/O, no shared mutable state
// between calls.
//
// DETERMINISM:
//
// Output order is a contract:
//   - Rules are evaluated in the order supplied.
//   - Each evaluator emits violations in a deterministic order derived from
//     sorting items by start date (and group keys lexicographically).
//   - The final sort by severity weight is stable, so equal-severity
//     violations keep the order evaluators produced them in.
//
// FAIL-OPEN:
//
// Rules are configuration, not trusted code. An unknown condition type is
// logged and skipped, never an error. Missing parameters fall back to
// documented defaults. A custom evaluator that panics is isolated at the
// dispatch boundary: the panic is logged and that rule contributes zero
// violations, the rest of the rule set still runs.
//
// THREAD-SAFETY:
//
// Validate is safe for concurrent use. The evaluator registry is guarded
// by a read-write lock, but registration is intended as a configuration-time
// operation - register custom condition types before exposing the validator
// to concurrent callers.
package engine
