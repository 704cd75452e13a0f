package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sean-Koval/ai-dlc/pkg/checks"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		promptPath string
		checksPath string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate prompt files against custom validation rules",
		Long: "Takes a prompt file (or directory of prompt files) and validates it\n" +
			"against custom validation rules defined in a .CHECKS.yaml file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := checks.LoadFile(checksPath)
			if err != nil {
				return fmt.Errorf("loading check rules: %w", err)
			}
			a.logger.Debug("loaded check rules", zap.Int("rules", len(rules)))

			files, err := collectFiles(promptPath)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no prompt files found at %q", promptPath)
			}

			anyFailures := false
			for _, file := range files {
				content, err := os.ReadFile(file)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error reading prompt file %q: %v\n", file, err)
					anyFailures = true
					continue
				}

				failures := checks.Run(rules, string(content))
				if len(failures) == 0 {
					continue
				}
				anyFailures = true
				fmt.Fprintf(cmd.OutOrStdout(), "Validation failed for %s:\n", file)
				for _, failure := range failures {
					fmt.Fprintf(cmd.OutOrStdout(), "  - Rule '%s': %s\n", failure.RuleID, failure.Message)
				}
			}

			if anyFailures {
				return fmt.Errorf("custom prompt validation failed for one or more files")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All prompts passed custom validation.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&promptPath, "prompt", "p", "", "path to the generated prompt file or directory of prompt files")
	cmd.Flags().StringVarP(&checksPath, "checks", "c", "", "path to the .CHECKS.yaml file")
	_ = cmd.MarkFlagRequired("prompt")
	_ = cmd.MarkFlagRequired("checks")
	return cmd
}

// collectFiles resolves path to the list of regular files under it: the path
// itself when it is a file, or every file found by a recursive walk when it
// is a directory.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path %q not found", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", path, err)
	}
	return files, nil
}
