package checks

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const rulesYAML = `
- id: has-validation-section
  description: Prompt must carry a VALIDATION section.
  type: regex_match
  config:
    pattern: "VALIDATION:"
    should_match: true
- id: no-lorem-ipsum
  description: Placeholder text must not survive generation.
  type: regex_match
  config:
    pattern: "lorem ipsum"
    should_match: false
- id: mentions-schema-terms
  description: Prompt should reference the schema vocabulary.
  type: keyword_presence
  config:
    keywords: [schema, template]
    match_all: true
    case_sensitive: false
`

func TestLoadRules(t *testing.T) {
	rules, err := Load([]byte(rulesYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("Load() returned %d rules, want 3", len(rules))
	}

	if rules[0].Type != TypeRegexMatch || rules[0].Regex == nil {
		t.Fatalf("rule 0 = %+v, want a regex_match rule", rules[0])
	}
	if !rules[0].Regex.ShouldMatch {
		t.Fatal("rule 0 should_match = false, want true")
	}

	want := &KeywordConfig{Keywords: []string{"schema", "template"}, MatchAll: true}
	if diff := cmp.Diff(want, rules[2].Keywords); diff != "" {
		t.Fatalf("rule 2 keyword config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	for _, raw := range []string{"", "# only comments\n", "[]"} {
		rules, err := Load([]byte(raw))
		if err != nil {
			t.Fatalf("Load(%q) error = %v", raw, err)
		}
		if len(rules) != 0 {
			t.Fatalf("Load(%q) returned %d rules, want 0", raw, len(rules))
		}
	}
}

func TestLoadRejectsMalformedRules(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "root not a list",
			yaml: "id: nope",
			want: "must contain a list",
		},
		{
			name: "entry not an object",
			yaml: "- just-a-string",
			want: "index 0 must be an object",
		},
		{
			name: "missing field",
			yaml: "- id: r1\n  description: d\n  type: regex_match",
			want: `missing required field "config"`,
		},
		{
			name: "unknown type",
			yaml: "- id: r1\n  description: d\n  type: fuzzy\n  config: {}",
			want: `unknown check type "fuzzy"`,
		},
		{
			name: "regex missing pattern",
			yaml: "- id: r1\n  description: d\n  type: regex_match\n  config:\n    should_match: true",
			want: "missing 'pattern' field",
		},
		{
			name: "should_match not bool",
			yaml: "- id: r1\n  description: d\n  type: regex_match\n  config:\n    pattern: x\n    should_match: yep",
			want: "'should_match' must be a boolean",
		},
		{
			name: "bad regex",
			yaml: "- id: r1\n  description: d\n  type: regex_match\n  config:\n    pattern: '('\n    should_match: true",
			want: "invalid regex pattern",
		},
		{
			name: "empty keywords",
			yaml: "- id: r1\n  description: d\n  type: keyword_presence\n  config:\n    keywords: []\n    match_all: true\n    case_sensitive: false",
			want: "'keywords' list cannot be empty",
		},
		{
			name: "empty keyword string",
			yaml: "- id: r1\n  description: d\n  type: keyword_presence\n  config:\n    keywords: ['']\n    match_all: true\n    case_sensitive: false",
			want: "keyword at index 0 cannot be an empty string",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.yaml))
			var invalid *InvalidRuleError
			if !errors.As(err, &invalid) {
				t.Fatalf("Load() error = %v, want *InvalidRuleError", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load() error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestRunRegexRules(t *testing.T) {
	rules, err := Load([]byte(rulesYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if failures := Run(rules, "A schema template.\n\nVALIDATION: all good"); failures != nil {
		t.Fatalf("Run() = %v, want no failures", failures)
	}

	failures := Run(rules, "lorem ipsum dolor")
	if len(failures) != 3 {
		t.Fatalf("Run() returned %d failures, want 3: %v", len(failures), failures)
	}
	if failures[0].Message != "Pattern 'VALIDATION:' did not match." {
		t.Fatalf("failure 0 message = %q", failures[0].Message)
	}
	if failures[1].Message != "Pattern 'lorem ipsum' unexpectedly matched." {
		t.Fatalf("failure 1 message = %q", failures[1].Message)
	}
	if failures[2].Message != "Not all required keywords present. Missing: schema, template" {
		t.Fatalf("failure 2 message = %q", failures[2].Message)
	}
}

func TestRunKeywordRules(t *testing.T) {
	rules := []Rule{{
		ID:   "any-keyword",
		Type: TypeKeywordPresence,
		Keywords: &KeywordConfig{
			Keywords: []string{"alpha", "beta"},
			MatchAll: false,
		},
	}}

	if failures := Run(rules, "contains Beta somewhere"); failures != nil {
		t.Fatalf("Run() = %v, want case-insensitive match", failures)
	}

	failures := Run(rules, "gamma only")
	if len(failures) != 1 {
		t.Fatalf("Run() returned %d failures, want 1", len(failures))
	}
	if failures[0].Message != "None of the keywords were found: alpha, beta" {
		t.Fatalf("failure message = %q", failures[0].Message)
	}
}

func TestRunMatchesWholeWordsOnly(t *testing.T) {
	rules := []Rule{{
		ID:   "whole-word",
		Type: TypeKeywordPresence,
		Keywords: &KeywordConfig{
			Keywords:      []string{"cat"},
			MatchAll:      true,
			CaseSensitive: true,
		},
	}}

	if failures := Run(rules, "concatenate categories"); len(failures) != 1 {
		t.Fatalf("Run() = %v, want substring hits rejected", failures)
	}
	if failures := Run(rules, "the cat sat"); failures != nil {
		t.Fatalf("Run() = %v, want whole word accepted", failures)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/absent.CHECKS.yaml")
	var invalid *InvalidRuleError
	if !errors.As(err, &invalid) {
		t.Fatalf("LoadFile() error = %v, want *InvalidRuleError", err)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("LoadFile() error = %q, want a not-found message", err)
	}
}
