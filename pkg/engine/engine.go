// Package engine is the seam between the rest of the toolkit and the Jinja2
// templating engine (gonja). It exposes parse-only verification, used as the
// safety net on every generated template, and rendering with a data context,
// used by the generate command and the meta-prompt builder.
package engine

import (
	"fmt"
	"io"

	"github.com/nikolalohinski/gonja"
)

// SyntaxError wraps the templating engine's rejection of a document. The
// message always contains "syntax error" so callers can pattern-match, and
// echoes the parser's own diagnostic verbatim.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("generated template has a syntax error: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Verify parses text with the Jinja2 engine without rendering it. A parse
// failure is returned as *SyntaxError; success is silent.
func Verify(text string) error {
	if _, err := gonja.FromString(text); err != nil {
		return &SyntaxError{Err: err}
	}
	return nil
}

// Render parses and executes a template string against the supplied context.
func Render(text string, data map[string]any) (string, error) {
	tpl, err := gonja.FromString(text)
	if err != nil {
		return "", &SyntaxError{Err: err}
	}
	out, err := tpl.Execute(gonja.Context(data))
	if err != nil {
		return "", fmt.Errorf("engine: execute template: %w", err)
	}
	return out, nil
}

// RenderTo renders like Render but streams the output to w as well.
func RenderTo(w io.Writer, text string, data map[string]any) error {
	out, err := Render(text, data)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("engine: write output: %w", err)
	}
	return nil
}
