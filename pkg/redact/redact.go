// Package redact scrubs sensitive data from prompt content before it is
// shared or stored.
package redact

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// pattern pairs a detector with its replacement marker. Patterns apply
// sequentially, so earlier replacements can shadow later detectors on
// overlapping matches.
type pattern struct {
	re          *regexp.Regexp
	replacement string
}

var patterns = []pattern{
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},
	{regexp.MustCompile(`[A-Za-z0-9_]{30,}`), "[REDACTED_API_KEY]"},
	{regexp.MustCompile(`\b(?:\d[ -]*?){13,16}\b`), "[REDACTED_CC_NUMBER]"},
}

// Redactor applies the built-in sensitive-data patterns, optionally
// stripping HTML markup first.
type Redactor struct {
	stripHTML bool
	sanitizer *bluemonday.Policy
}

// Option configures a Redactor.
type Option func(*Redactor)

// WithStripHTML removes all HTML tags from content before pattern matching,
// so markup cannot split a sensitive token across element boundaries.
func WithStripHTML() Option {
	return func(r *Redactor) {
		r.stripHTML = true
		r.sanitizer = bluemonday.StrictPolicy()
	}
}

// New returns a Redactor with the given options applied.
func New(opts ...Option) *Redactor {
	r := &Redactor{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Redact returns content with emails, API keys and credit card numbers
// replaced by redaction markers.
func (r *Redactor) Redact(content string) string {
	if content == "" {
		return content
	}
	if r.stripHTML {
		content = r.sanitizer.Sanitize(content)
	}
	for _, p := range patterns {
		content = p.re.ReplaceAllString(content, p.replacement)
	}
	return content
}

// Sensitive reports whether content contains anything Redact would replace.
func (r *Redactor) Sensitive(content string) bool {
	probe := content
	if r.stripHTML {
		probe = r.sanitizer.Sanitize(probe)
	}
	for _, p := range patterns {
		if p.re.MatchString(probe) {
			return true
		}
	}
	return false
}
