package generator

import (
	"fmt"
	"strings"

	"github.com/Sean-Koval/ai-dlc/pkg/intent"
	"github.com/Sean-Koval/ai-dlc/pkg/schema"
)

// SchemaMismatchError reports a directive that implies a variable the schema
// does not provide, or provides with an incompatible shape.
type SchemaMismatchError struct {
	msg string
}

func (e *SchemaMismatchError) Error() string {
	return e.msg
}

// collectionKeywords are the structural directives that require a collection
// variable in the schema. Narrower than the full structural vocabulary: only
// these shapes iterate over data.
var collectionKeywords = map[string]bool{
	"list":  true,
	"table": true,
	"grid":  true,
}

// ValidateIntent cross-checks a parsed intent against an indexed schema
// without generating anything. It returns a *SchemaMismatchError describing
// the first inconsistency found, or nil when the intent is satisfiable.
func ValidateIntent(in intent.Intent, vars schema.VariableMap) error {
	return validateIntent(in.Directives, groupVariables(vars))
}

func validateIntent(directives []string, groups variableGroups) error {
	if len(directives) == 0 || groups.empty() {
		return nil
	}

	var requested []string
	for _, directive := range directives {
		if collectionKeywords[directive] {
			requested = append(requested, directive)
		}
	}

	main := groups.mainEntity(directives)

	if len(requested) > 0 && main == "" {
		structure := requested[0]
		var candidates []string
		for _, directive := range directives {
			if !collectionKeywords[directive] {
				candidates = append(candidates, directive)
			}
		}
		available := strings.Join(groups.availableNames(), ", ")
		if len(candidates) > 0 {
			return &SchemaMismatchError{msg: fmt.Sprintf(
				"input requests a %s of %q, but %q is not found or is not an array in the schema. Available variables: %s",
				structure, candidates[0], candidates[0], available,
			)}
		}
		return &SchemaMismatchError{msg: fmt.Sprintf(
			"input requests a %s, but no matching collection variable was found in the schema. Available variables: %s",
			structure, available,
		)}
	}

	for _, directive := range directives {
		if collectionKeywords[directive] || directive == main {
			continue
		}

		found := false
		for _, props := range groups.entities {
			if _, ok := props[directive]; ok {
				found = true
				break
			}
		}
		if found {
			continue
		}

		if props, ok := groups.entities[main]; main != "" && ok {
			if _, ok := props[directive]; !ok {
				return &SchemaMismatchError{msg: fmt.Sprintf(
					"input references property %q for %q, but it's not found in the schema. Available properties for %q: %s",
					directive, main, main, strings.Join(sortedPropertyNames(props), ", "),
				)}
			}
		}
	}

	return nil
}
