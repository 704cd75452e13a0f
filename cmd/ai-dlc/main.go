// Command ai-dlc is the AI-driven Development Lifecycle Companion: it
// scaffolds prompt libraries, generates Jinja2 templates from schemas and
// user intent, renders prompts, validates them against custom rules, and
// redacts sensitive data.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
