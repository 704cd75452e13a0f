package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sean-Koval/ai-dlc/pkg/engine"
	"github.com/Sean-Koval/ai-dlc/pkg/generator"
	"github.com/Sean-Koval/ai-dlc/pkg/intent"
	"github.com/Sean-Koval/ai-dlc/pkg/llm"
	"github.com/Sean-Koval/ai-dlc/pkg/schema"
)

const noStructure = "(none)"

func newTemplateCmd(a *app) *cobra.Command {
	var (
		describe    string
		schemaPath  string
		component   string
		outputPath  string
		interactive bool
		skipSchema  bool
		useLLM      bool
		model       string
		retries     int
		role        string
		task        string
		directives  []string
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate a Jinja2 template from a schema and a described intent",
		Long: "Parses the intent (free text via --describe, explicit --role/--task/\n" +
			"--directive flags, or an interactive survey), indexes the schema's\n" +
			"variables, and emits a Jinja2 template that references them. With\n" +
			"--llm, drafting is delegated to Gemini through a meta-prompt instead\n" +
			"of the rule-based generator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			input, err := collectIntentInput(describe, role, task, directives, interactive)
			if err != nil {
				return err
			}
			parsed, err := intent.Parse(input)
			if err != nil {
				return err
			}
			a.logger.Debug("intent parsed",
				zap.String("role", parsed.Role),
				zap.String("task", parsed.Task),
				zap.Strings("directives", parsed.Directives))

			loader := schema.NewLoader()
			doc, err := loader.Load(ctx, schema.SourceFromFile(schemaPath))
			if err != nil {
				return err
			}
			if component != "" {
				doc, err = loader.Component(ctx, doc, component)
				if err != nil {
					return err
				}
			}
			vars := schema.Index(doc)
			a.logger.Debug("schema indexed", zap.Int("variables", len(vars)))

			var text string
			if useLLM {
				text, err = draftViaLLM(cmd, a, parsed, string(doc.Raw()), model, retries)
			} else {
				gen := generator.New(generator.WithSkipSchemaValidation(skipSchema))
				text, err = gen.Generate(parsed, vars)
			}
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("writing template to %q: %w", outputPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", outputPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&describe, "describe", "d", "", "free-form description of the template to generate")
	cmd.Flags().StringVar(&role, "role", "", "stated role for a structured intent")
	cmd.Flags().StringVar(&task, "task", "", "task the template should facilitate")
	cmd.Flags().StringSliceVar(&directives, "directive", nil, "structural or content directive (repeatable)")
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the JSON Schema or OpenAPI document")
	cmd.Flags().StringVar(&component, "component", "", "OpenAPI component schema to index instead of the whole document")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the template to a file instead of stdout")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "collect role, task and directives through prompts")
	cmd.Flags().BoolVar(&skipSchema, "skip-schema-validation", false, "skip the intent/schema cross-check before generation")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "draft the template with Gemini instead of the rule-based generator")
	cmd.Flags().StringVar(&model, "model", llm.DefaultModel, "Gemini model to use with --llm")
	cmd.Flags().IntVar(&retries, "retries", 1, "re-ask attempts when the LLM omits the VALIDATION section")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

// collectIntentInput decides which intent-parsing path to take: free text
// goes through the natural-language parser, everything else becomes a
// structured record.
func collectIntentInput(describe, role, task string, directives []string, interactive bool) (any, error) {
	if interactive {
		return surveyIntent()
	}
	if describe != "" {
		return describe, nil
	}
	if role == "" && task == "" && len(directives) == 0 {
		return nil, fmt.Errorf("describe the template with --describe, --role/--task/--directive, or --interactive")
	}
	return intent.Structured{Role: role, Task: task, Directives: directives}, nil
}

func surveyIntent() (any, error) {
	var in intent.Structured

	if err := survey.AskOne(&survey.Input{Message: "Your role (optional):"}, &in.Role); err != nil {
		return nil, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Task the template should facilitate:"}, &in.Task); err != nil {
		return nil, err
	}

	structure := noStructure
	prompt := &survey.Select{
		Message: "Structural format:",
		Options: append([]string{noStructure}, intent.StructuralKeywords()...),
		Default: noStructure,
	}
	if err := survey.AskOne(prompt, &structure); err != nil {
		return nil, err
	}
	if structure != noStructure {
		in.Directives = append(in.Directives, structure)
	}

	var extra string
	if err := survey.AskOne(&survey.Input{Message: "Content directives (comma separated, optional):"}, &extra); err != nil {
		return nil, err
	}
	for _, directive := range strings.Split(extra, ",") {
		if directive = strings.TrimSpace(directive); directive != "" {
			in.Directives = append(in.Directives, directive)
		}
	}
	return in, nil
}

func draftViaLLM(cmd *cobra.Command, a *app, parsed intent.Intent, schemaJSON, model string, retries int) (string, error) {
	ctx := cmd.Context()

	prompt, err := llm.BuildMetaPrompt(parsed.Role, parsed.Task, parsed.Directives, schemaJSON)
	if err != nil {
		return "", err
	}

	client, err := llm.NewGeminiClient(ctx, os.Getenv("GEMINI_API_KEY"),
		llm.WithModel(model),
		llm.WithLogger(a.logger))
	if err != nil {
		return "", err
	}

	draft, err := client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	text, err := llm.EnsureValidationSection(ctx, client, draft, prompt, retries)
	if err != nil {
		return "", err
	}

	// Drafted templates are advisory: warn on syntax problems instead of
	// discarding the output.
	if err := engine.Verify(text); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return text, nil
}
