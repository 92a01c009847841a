// Package rule defines the shared vocabulary of the schedlint validation
// engine: validatable items, declarative validation rules, violations, and
// the result envelope.
//
// The types here carry no behavior beyond derivation helpers. Rules are
// configuration data, not code - everything in this package must tolerate
// missing fields rather than fail. Evaluation lives in package engine.
//
// TEMPORAL MODEL:
//
// Items are time-scoped but every time field is optional. Helpers derive an
// effective end and effective duration from whatever is present, falling
// back to DefaultDurationMinutes. Items with no start date are simply
// invisible to time-based evaluators.
package rule
