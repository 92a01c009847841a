package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/schedlint/internal/rule"
)

// Input file shapes. YAML is the primary format; JSON parses too since
// YAML is a superset.
type itemFile struct {
	Items []rule.Item `yaml:"items"`
}

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

// ruleEntry decodes one rule with the documented default enabled=true when
// the key is absent, matching the schema. Binding straight to rule.Rule
// would zero the field and silently disable the rule.
type ruleEntry struct {
	rule.Rule
}

func (r *ruleEntry) UnmarshalYAML(node *yaml.Node) error {
	decoded := rule.Rule{Enabled: true}
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	r.Rule = decoded
	return nil
}

type rawRuleFile struct {
	Rules []map[string]any `yaml:"rules"`
}

// LoadItems reads an item collection from a YAML or JSON file.
// Item ids must be unique within the file.
func LoadItems(path string) ([]rule.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}

	var file itemFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse items file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Items))
	for i, it := range file.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("items file %s: item %d has no id", path, i)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("items file %s: duplicate item id %q", path, it.ID)
		}
		seen[it.ID] = true
	}

	return file.Items, nil
}

// LoadRules reads a rule set from a YAML or JSON file. No schema
// enforcement happens here - the engine is fail-open about malformed
// rules, and `schedlint vet` exists for strict checking.
func LoadRules(path string) ([]rule.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	rules := make([]rule.Rule, len(file.Rules))
	for i, entry := range file.Rules {
		rules[i] = entry.Rule
	}
	return rules, nil
}

// LoadRawRules reads a rule file without binding to the Rule struct, so
// vetting still sees unknown fields and typos.
func LoadRawRules(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var file rawRuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return file.Rules, nil
}
