package llm

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Sean-Koval/ai-dlc/pkg/engine"
)

//go:embed skeletons/skeleton.j2
var skeleton string

// BuildMetaPrompt renders the embedded meta-prompt skeleton with the user's
// role, task, directives and the raw schema JSON. The result is the prompt
// handed to a Client for template drafting.
func BuildMetaPrompt(role, task string, directives []string, schemaJSON string) (string, error) {
	prompt, err := engine.Render(skeleton, map[string]any{
		"role":       role,
		"task":       task,
		"directives": strings.Join(directives, ", "),
		"schema":     schemaJSON,
	})
	if err != nil {
		return "", fmt.Errorf("llm: rendering meta-prompt skeleton: %w", err)
	}
	return prompt, nil
}
