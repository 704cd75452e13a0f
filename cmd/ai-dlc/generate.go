package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Sean-Koval/ai-dlc/pkg/engine"
	"github.com/Sean-Koval/ai-dlc/pkg/schema"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		templatePath string
		inputPath    string
		schemaPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a prompt from a template with validated input data",
		Long: "Reads a Jinja2 template file, validates input YAML data against a\n" +
			"JSON schema, and renders the template with the validated data.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			doc, err := schema.NewLoader().Load(ctx, schema.SourceFromFile(schemaPath))
			if err != nil {
				return fmt.Errorf("loading schema %q: %w", schemaPath, err)
			}

			rawInput, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading input file %q: %w", inputPath, err)
			}
			var input map[string]any
			if err := yaml.Unmarshal(rawInput, &input); err != nil {
				return fmt.Errorf("invalid YAML in input file %q: %w", inputPath, err)
			}

			if err := schema.ValidateData(ctx, doc, input); err != nil {
				return err
			}
			a.logger.Debug("input data validated", zap.String("schema", schemaPath))

			tplText, err := os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("reading template file %q: %w", templatePath, err)
			}

			if err := engine.RenderTo(cmd.OutOrStdout(), string(tplText), input); err != nil {
				return fmt.Errorf("rendering template %q: %w", templatePath, err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "path to the Jinja2 template file (e.g. template.md.j2)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the input YAML data file")
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the JSON schema file for input validation")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
