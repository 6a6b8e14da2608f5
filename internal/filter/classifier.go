// Package filter classifies promotion content against a versioned rule list.
package filter

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

type ruleFile struct {
	Version int        `yaml:"version"`
	Rules   []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Pattern     string `yaml:"pattern"`
	Embeds      bool   `yaml:"embeds"`
	MinMatches  int    `yaml:"min_matches"`
}

type rule struct {
	name       string
	re         *regexp.Regexp
	embeds     bool
	minMatches int
}

// Verdict is the outcome of classification. Rule names the first rule that
// tripped when Allowed is false.
type Verdict struct {
	Allowed bool
	Rule    string
}

type Classifier struct {
	version int
	rules   []rule
}

// Default returns the classifier built from the embedded rule list.
func Default() (*Classifier, error) {
	return Parse(defaultRules)
}

// Load reads a rule list from path, or the embedded list when path is empty.
func Load(path string) (*Classifier, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filter rules: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Classifier, error) {
	var f ruleFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse filter rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, errors.New("filter rules are empty")
	}
	c := &Classifier{version: f.Version, rules: make([]rule, 0, len(f.Rules))}
	for _, spec := range f.Rules {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile rule %s: %w", spec.Name, err)
		}
		minMatches := spec.MinMatches
		if minMatches < 1 {
			minMatches = 1
		}
		c.rules = append(c.rules, rule{name: spec.Name, re: re, embeds: spec.Embeds, minMatches: minMatches})
	}
	return c, nil
}

func (c *Classifier) Version() int {
	return c.version
}

// Classify checks text against every rule and embeds against the rules that
// opt into embed matching.
func (c *Classifier) Classify(text string, embeds []string) Verdict {
	for _, r := range c.rules {
		if r.matches(text) {
			return Verdict{Rule: r.name}
		}
		if !r.embeds {
			continue
		}
		for _, e := range embeds {
			if r.matches(e) {
				return Verdict{Rule: r.name}
			}
		}
	}
	return Verdict{Allowed: true}
}

func (r rule) matches(s string) bool {
	if r.minMatches == 1 {
		return r.re.MatchString(s)
	}
	return len(r.re.FindAllStringIndex(s, r.minMatches)) >= r.minMatches
}
