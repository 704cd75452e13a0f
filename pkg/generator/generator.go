package generator

import (
	"strings"
	"unicode"

	"github.com/Sean-Koval/ai-dlc/pkg/engine"
	"github.com/Sean-Koval/ai-dlc/pkg/intent"
	"github.com/Sean-Koval/ai-dlc/pkg/schema"
)

// Generator turns a parsed intent plus an indexed schema into a Jinja2
// template string. The zero value is usable; options tune behavior.
type Generator struct {
	skipSchemaValidation bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSkipSchemaValidation disables the intent/schema cross-check before
// generation. Mainly useful for exercising the strategy selection on
// simplified variable maps.
func WithSkipSchemaValidation(skip bool) Option {
	return func(g *Generator) {
		g.skipSchemaValidation = skip
	}
}

// New returns a Generator with the given options applied.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate picks a template strategy from the intent's directives, role and
// task, renders it against the variable map, and verifies the result parses
// as Jinja2 before returning it.
//
// Strategy selection is ordered: an explicit "list" or "table" directive wins,
// then role-specific skeletons (product manager breaking down ideas, developer
// writing API documentation), then a generic section-per-entity fallback.
func (g *Generator) Generate(in intent.Intent, vars schema.VariableMap) (string, error) {
	groups := groupVariables(vars)

	if !g.skipSchemaValidation {
		if err := validateIntent(in.Directives, groups); err != nil {
			return "", err
		}
	}

	task := strings.ToLower(in.Task)

	var parts []string
	switch {
	case containsDirective(in.Directives, "list"):
		parts = listTemplate(in.Directives, groups)
	case containsDirective(in.Directives, "table"):
		parts = tableTemplate(in.Directives, groups)
	case in.Role == "product manager" && strings.Contains(task, "break down"):
		parts = productManagerTemplate(groups)
	case in.Role == "developer" && strings.Contains(task, "api") && strings.Contains(task, "documentation"):
		parts = apiDocumentationTemplate(groups)
	default:
		parts = genericTemplate(groups)
	}

	text := strings.Join(parts, "\n")
	if err := engine.Verify(text); err != nil {
		return "", err
	}
	return text, nil
}

func containsDirective(directives []string, want string) bool {
	for _, d := range directives {
		if d == want {
			return true
		}
	}
	return false
}

// singularize derives a loop variable name from a collection name by
// stripping a plural "s" suffix. Deliberately naive: "users" becomes "user",
// and irregular plurals pass through unchanged.
func singularize(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// capitalize upcases the first rune and lowercases the rest, matching how
// column headers and section titles are rendered.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
