// Package checks loads custom prompt validation rules from .CHECKS.yaml
// files and applies them to prompt content.
package checks

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Rule types supported in .CHECKS.yaml files.
const (
	TypeRegexMatch      = "regex_match"
	TypeKeywordPresence = "keyword_presence"
)

// InvalidRuleError reports a rules file that is missing, unreadable, or
// contains a malformed rule definition.
type InvalidRuleError struct {
	msg string
}

func (e *InvalidRuleError) Error() string {
	return e.msg
}

func invalidRule(format string, args ...any) *InvalidRuleError {
	return &InvalidRuleError{msg: fmt.Sprintf(format, args...)}
}

// RegexConfig configures a regex_match rule. The pattern is compiled once at
// load time.
type RegexConfig struct {
	Pattern     string
	ShouldMatch bool

	re *regexp.Regexp
}

// KeywordConfig configures a keyword_presence rule. Keywords are matched as
// whole words.
type KeywordConfig struct {
	Keywords      []string
	MatchAll      bool
	CaseSensitive bool
}

// Rule is a single validated entry from a .CHECKS.yaml file. Exactly one of
// Regex or Keywords is set, according to Type.
type Rule struct {
	ID          string
	Description string
	Type        string

	Regex    *RegexConfig
	Keywords *KeywordConfig
}

// LoadFile reads and validates rules from the .CHECKS.yaml file at path.
func LoadFile(path string) ([]Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, invalidRule("check rules file not found: %s", path)
		}
		return nil, invalidRule("error reading check rules file: %v", err)
	}
	return Load(raw)
}

// Load validates rules from raw YAML. An empty document yields no rules.
func Load(raw []byte) ([]Rule, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, invalidRule("file contains invalid YAML: %v", err)
	}

	if doc == nil {
		return nil, nil
	}

	entries, ok := doc.([]any)
	if !ok {
		return nil, invalidRule("check rules file must contain a list of check objects, got %T", doc)
	}

	rules := make([]Rule, 0, len(entries))
	for i, entry := range entries {
		check, ok := entry.(map[string]any)
		if !ok {
			return nil, invalidRule("check rule at index %d must be an object, got %T", i, entry)
		}

		for _, field := range []string{"id", "description", "type", "config"} {
			if _, ok := check[field]; !ok {
				return nil, invalidRule("check rule at index %d is missing required field %q", i, field)
			}
		}

		id, ok := check["id"].(string)
		if !ok {
			return nil, invalidRule("check rule at index %d: 'id' must be a string, got %T", i, check["id"])
		}
		description, ok := check["description"].(string)
		if !ok {
			return nil, invalidRule("check rule at index %d: 'description' must be a string, got %T", i, check["description"])
		}
		ruleType, ok := check["type"].(string)
		if !ok {
			return nil, invalidRule("check rule at index %d: 'type' must be a string, got %T", i, check["type"])
		}
		config, ok := check["config"].(map[string]any)
		if !ok {
			return nil, invalidRule("check rule at index %d: 'config' must be an object, got %T", i, check["config"])
		}

		rule := Rule{ID: id, Description: description, Type: ruleType}

		switch ruleType {
		case TypeRegexMatch:
			regex, err := parseRegexConfig(id, config)
			if err != nil {
				return nil, err
			}
			rule.Regex = regex
		case TypeKeywordPresence:
			keywords, err := parseKeywordConfig(id, config)
			if err != nil {
				return nil, err
			}
			rule.Keywords = keywords
		default:
			return nil, invalidRule("check rule %q: unknown check type %q", id, ruleType)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

func parseRegexConfig(id string, config map[string]any) (*RegexConfig, error) {
	if _, ok := config["pattern"]; !ok {
		return nil, invalidRule("check rule %q: regex_match config missing 'pattern' field", id)
	}
	if _, ok := config["should_match"]; !ok {
		return nil, invalidRule("check rule %q: regex_match config missing 'should_match' field", id)
	}

	pattern, ok := config["pattern"].(string)
	if !ok {
		return nil, invalidRule("check rule %q: 'pattern' must be a string, got %T", id, config["pattern"])
	}
	shouldMatch, ok := config["should_match"].(bool)
	if !ok {
		return nil, invalidRule("check rule %q: 'should_match' must be a boolean, got %T", id, config["should_match"])
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, invalidRule("check rule %q: invalid regex pattern: %v", id, err)
	}

	return &RegexConfig{Pattern: pattern, ShouldMatch: shouldMatch, re: re}, nil
}

func parseKeywordConfig(id string, config map[string]any) (*KeywordConfig, error) {
	for _, field := range []string{"keywords", "match_all", "case_sensitive"} {
		if _, ok := config[field]; !ok {
			return nil, invalidRule("check rule %q: keyword_presence config missing %q field", id, field)
		}
	}

	rawKeywords, ok := config["keywords"].([]any)
	if !ok {
		return nil, invalidRule("check rule %q: 'keywords' must be a list, got %T", id, config["keywords"])
	}
	if len(rawKeywords) == 0 {
		return nil, invalidRule("check rule %q: 'keywords' list cannot be empty", id)
	}

	keywords := make([]string, len(rawKeywords))
	for j, raw := range rawKeywords {
		keyword, ok := raw.(string)
		if !ok {
			return nil, invalidRule("check rule %q: keyword at index %d must be a string, got %T", id, j, raw)
		}
		if keyword == "" {
			return nil, invalidRule("check rule %q: keyword at index %d cannot be an empty string", id, j)
		}
		keywords[j] = keyword
	}

	matchAll, ok := config["match_all"].(bool)
	if !ok {
		return nil, invalidRule("check rule %q: 'match_all' must be a boolean, got %T", id, config["match_all"])
	}
	caseSensitive, ok := config["case_sensitive"].(bool)
	if !ok {
		return nil, invalidRule("check rule %q: 'case_sensitive' must be a boolean, got %T", id, config["case_sensitive"])
	}

	return &KeywordConfig{Keywords: keywords, MatchAll: matchAll, CaseSensitive: caseSensitive}, nil
}
