// Package intent turns free-form user descriptions or structured records into
// a normalized Intent: a role, a task, and an ordered, de-duplicated list of
// directives that downstream generation consumes.
package intent

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Intent is the normalized interpretation of user input. Role and Task are
// empty when the input did not state them. Directives preserve first-occurrence
// order and contain no duplicates.
type Intent struct {
	Role       string
	Task       string
	Directives []string
}

// Structured carries pre-parsed input (typically decoded from YAML) whose
// fields pass through verbatim.
type Structured struct {
	Role       string
	Task       string
	Directives []string
}

// structuralKeywords is the fixed vocabulary of mutually exclusive layout
// directives. At most one may appear in a single intent.
var structuralKeywords = []string{
	"list", "table", "grid", "form", "chart", "diagram",
	"section", "card", "panel", "tab", "accordion",
}

var structuralKeywordSet = func() map[string]bool {
	set := make(map[string]bool, len(structuralKeywords))
	for _, keyword := range structuralKeywords {
		set[keyword] = true
	}
	return set
}()

// StructuralKeywords returns the fixed layout vocabulary in canonical order.
func StructuralKeywords() []string {
	return append([]string(nil), structuralKeywords...)
}

// IsStructuralKeyword reports whether the directive names a layout structure.
func IsStructuralKeyword(directive string) bool {
	return structuralKeywordSet[directive]
}

var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:as an?|as the|being an?|being the|i am an?|i am the|i'm an?|i'm the)\s+([^,\.]+)`),
	regexp.MustCompile(`(?:for an?|for the)\s+([^,\.]+)`),
	regexp.MustCompile(`([^,\.]+?)(?:\s+needs|\s+requires|\s+wants)`),
}

var roleArticlePattern = regexp.MustCompile(`^(?:an?|the)\s+`)

var taskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:need|want|require)(?:s|ed)?\s+(?:a|an|the)?\s+(?:template|format|structure|way|method)?\s+to\s+([^\.]+)`),
	regexp.MustCompile(`(?:to|for)\s+(?:help|assist|aid|support)\s+(?:with|in)?\s+([^\.]+)`),
	regexp.MustCompile(`(?:template|format|structure)\s+(?:for|to)\s+([^\.]+)`),
}

// contentNounPattern matches the fixed vocabulary of plural content nouns that
// usually name collections in a schema.
var contentNounPattern = regexp.MustCompile(`\b(users|products|items|emails|names|prices|details|categories|tags|comments|posts|articles|documents)\b`)

var attributePattern = regexp.MustCompile(`(?:with|showing|containing|having|including)\s+(?:their|its)?\s*([^\.]+)`)

var attributeSeparator = regexp.MustCompile(`\s+and\s+|\s*,\s*|\s+or\s+`)

// Parse extracts role, task, and directives from either a free-text string or
// a Structured record. It fails with *InvalidInputError when contradictory
// structural directives are present, and with a plain error when the input is
// neither supported shape.
func Parse(input any) (Intent, error) {
	switch v := input.(type) {
	case string:
		return parseText(v)
	case Structured:
		return parseStructured(v)
	case *Structured:
		if v == nil {
			return Intent{}, fmt.Errorf("intent: input must be a string or a structured intent, got nil")
		}
		return parseStructured(*v)
	default:
		return Intent{}, fmt.Errorf("intent: input must be a string or a structured intent, got %T", input)
	}
}

func parseStructured(in Structured) (Intent, error) {
	out := Intent{
		Role:       in.Role,
		Task:       in.Task,
		Directives: append([]string(nil), in.Directives...),
	}
	if err := validateDirectiveConsistency(out.Directives); err != nil {
		return Intent{}, err
	}
	return out, nil
}

func parseText(text string) (Intent, error) {
	lowered := strings.ToLower(text)
	out := Intent{}

	for _, pattern := range rolePatterns {
		match := pattern.FindStringSubmatch(lowered)
		if match == nil {
			continue
		}
		role := strings.TrimSpace(match[1])
		role = roleArticlePattern.ReplaceAllString(role, "")
		out.Role = role
		break
	}

	for _, pattern := range taskPatterns {
		match := pattern.FindStringSubmatch(lowered)
		if match == nil {
			continue
		}
		out.Task = strings.TrimSpace(match[1])
		break
	}

	var directives []string
	for _, keyword := range structuralKeywords {
		if wholeWord(lowered, keyword) {
			directives = append(directives, keyword)
		}
	}
	directives = append(directives, contentNounPattern.FindAllString(lowered, -1)...)

	if match := attributePattern.FindStringSubmatch(lowered); match != nil {
		for _, attribute := range attributeSeparator.Split(match[1], -1) {
			attribute = strings.TrimSpace(attribute)
			if attribute != "" {
				directives = append(directives, attribute)
			}
		}
	}

	out.Directives = dedupe(directives)
	if err := validateDirectiveConsistency(out.Directives); err != nil {
		return Intent{}, err
	}
	return out, nil
}

// validateDirectiveConsistency rejects directive lists containing more than
// one structural keyword; contradictions are a hard failure, never silently
// resolved.
func validateDirectiveConsistency(directives []string) error {
	var found []string
	seen := map[string]bool{}
	for _, directive := range directives {
		if structuralKeywordSet[directive] && !seen[directive] {
			seen[directive] = true
			found = append(found, directive)
		}
	}
	if len(found) > 1 {
		sort.Strings(found)
		return &InvalidInputError{Keywords: found}
	}
	return nil
}

func wholeWord(text, word string) bool {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return pattern.MatchString(text)
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}
