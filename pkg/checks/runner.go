package checks

import (
	"fmt"
	"regexp"
	"strings"
)

// Failure records a single rule that did not pass for a piece of content.
type Failure struct {
	RuleID  string
	Message string
}

// Run applies every rule to content and returns one Failure per rule that
// does not pass. A nil result means all rules passed.
func Run(rules []Rule, content string) []Failure {
	var failures []Failure
	for _, rule := range rules {
		switch rule.Type {
		case TypeRegexMatch:
			matched := rule.Regex.re.MatchString(content)
			if rule.Regex.ShouldMatch && !matched {
				failures = append(failures, Failure{
					RuleID:  rule.ID,
					Message: fmt.Sprintf("Pattern '%s' did not match.", rule.Regex.Pattern),
				})
			} else if !rule.Regex.ShouldMatch && matched {
				failures = append(failures, Failure{
					RuleID:  rule.ID,
					Message: fmt.Sprintf("Pattern '%s' unexpectedly matched.", rule.Regex.Pattern),
				})
			}
		case TypeKeywordPresence:
			var missing, found []string
			for _, keyword := range rule.Keywords.Keywords {
				if keywordPresent(content, keyword, rule.Keywords.CaseSensitive) {
					found = append(found, keyword)
				} else {
					missing = append(missing, keyword)
				}
			}
			if rule.Keywords.MatchAll && len(missing) > 0 {
				failures = append(failures, Failure{
					RuleID:  rule.ID,
					Message: fmt.Sprintf("Not all required keywords present. Missing: %s", strings.Join(missing, ", ")),
				})
			} else if !rule.Keywords.MatchAll && len(found) == 0 {
				failures = append(failures, Failure{
					RuleID:  rule.ID,
					Message: fmt.Sprintf("None of the keywords were found: %s", strings.Join(rule.Keywords.Keywords, ", ")),
				})
			}
		}
	}
	return failures
}

// keywordPresent matches keyword as a whole word within content.
func keywordPresent(content, keyword string, caseSensitive bool) bool {
	pattern := `\b` + regexp.QuoteMeta(keyword) + `\b`
	if !caseSensitive {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(content)
}
