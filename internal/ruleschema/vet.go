// Package ruleschema validates rule files against the embedded CUE schema
// before they reach the engine.
//
// Vetting is advisory and fail-open in spirit: the engine itself tolerates
// malformed rules by skipping them, but a vetted rule file surfaces the
// problems a silent skip would hide.
package ruleschema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// Finding is one schema problem in a rule file.
type Finding struct {
	// Index is the rule's position in the rules list.
	Index int `json:"index"`
	// RuleID is the rule's declared id, when one was readable.
	RuleID string `json:"ruleId,omitempty"`
	// Message describes the problem, including the offending field path.
	Message string `json:"message"`
}

func (f Finding) String() string {
	if f.RuleID != "" {
		return fmt.Sprintf("rule %d (%s): %s", f.Index, f.RuleID, f.Message)
	}
	return fmt.Sprintf("rule %d: %s", f.Index, f.Message)
}

// Vet checks decoded rules against the schema and returns one finding per
// problem. Rules arrive as raw decoded maps, not bound structs, so typos
// and unknown fields are still visible. A nil error with zero findings
// means the file is clean.
func Vet(rules []map[string]any) ([]Finding, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile rule schema: %w", err)
	}

	ruleDef := schema.LookupPath(cue.ParsePath("#Rule"))
	if err := ruleDef.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Rule definition: %w", err)
	}

	var findings []Finding
	for i, raw := range rules {
		ruleID, _ := raw["id"].(string)

		value := ctx.Encode(raw)
		if err := value.Err(); err != nil {
			findings = append(findings, Finding{
				Index:   i,
				RuleID:  ruleID,
				Message: fmt.Sprintf("not a valid rule object: %v", err),
			})
			continue
		}

		unified := ruleDef.Unify(value)
		if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
			for _, e := range cueerrors.Errors(err) {
				findings = append(findings, Finding{
					Index:   i,
					RuleID:  ruleID,
					Message: formatCUEError(e),
				})
			}
		}
	}
	return findings, nil
}

// formatCUEError renders a CUE error with its field path but without
// file positions, which are meaningless for data encoded from memory.
func formatCUEError(e cueerrors.Error) string {
	path := cueerrors.Path(e)
	msg := e.Error()
	if len(path) > 0 {
		return fmt.Sprintf("%s: %s", pathString(path), msg)
	}
	return msg
}

func pathString(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
