package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scaffoldSubdirs = []string{"templates", "schemas", "examples", "checks"}

func newScaffoldCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scaffold <team-name>",
		Short: "Scaffold a new prompt library for a team",
		Long: "Creates a directory structure for a new prompt library with\n" +
			"subdirectories for templates, schemas, examples, and checks.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team := args[0]

			if _, err := os.Stat(team); err == nil {
				return fmt.Errorf("directory %q already exists", team)
			}

			for _, subdir := range scaffoldSubdirs {
				dir := filepath.Join(team, subdir)
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating %s: %w", dir, err)
				}
				keep := filepath.Join(dir, ".gitkeep")
				if err := os.WriteFile(keep, nil, 0o644); err != nil {
					return fmt.Errorf("creating %s: %w", keep, err)
				}
				a.logger.Debug("created library directory", zap.String("dir", dir))
			}

			readme := filepath.Join(team, "README.md")
			content := fmt.Sprintf("# Prompt Library for %s\n", team)
			if err := os.WriteFile(readme, []byte(content), 0o644); err != nil {
				return fmt.Errorf("creating %s: %w", readme, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully scaffolded prompt library for team %q at ./%s\n", team, team)
			return nil
		},
	}
}
