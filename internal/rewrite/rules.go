package rewrite

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rule is one library substitution gated on the NDK version.
type Rule struct {
	Name   string   `yaml:"name"`
	NDK    string   `yaml:"ndk"`
	Remove []string `yaml:"remove"`
	Append []string `yaml:"append"`

	constraint *semver.Constraints
}

// Matches reports whether the rule applies to version. A nil version never
// matches.
func (r Rule) Matches(version *semver.Version) bool {
	if version == nil || r.constraint == nil {
		return false
	}
	return r.constraint.Check(version)
}

type ruleTable struct {
	Rules []Rule `yaml:"rules"`
}

var (
	defaultRules    []Rule
	defaultRulesErr error
	defaultOnce     sync.Once
)

// DefaultRules returns the rule table embedded in the binary.
func DefaultRules() ([]Rule, error) {
	defaultOnce.Do(func() {
		defaultRules, defaultRulesErr = ParseRules(rulesYAML)
		if defaultRulesErr != nil {
			defaultRulesErr = fmt.Errorf("embedded rules.yaml: %w", defaultRulesErr)
		}
	})
	return defaultRules, defaultRulesErr
}

// ParseRules validates data against the rule schema and decodes it. Every
// rule's ndk field must be a valid semver constraint.
func ParseRules(data []byte) ([]Rule, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid rule table: %s", strings.Join(msgs, "; "))
	}

	var table ruleTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing rule table: %w", err)
	}

	for i := range table.Rules {
		r := &table.Rules[i]
		c, err := semver.NewConstraint(r.NDK)
		if err != nil {
			return nil, fmt.Errorf("rule %q: parsing ndk constraint %q: %w", r.Name, r.NDK, err)
		}
		r.constraint = c
	}
	return table.Rules, nil
}
