package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sean-Koval/ai-dlc/pkg/redact"
)

func newRedactCmd(a *app) *cobra.Command {
	var (
		outputDir string
		dryRun    bool
		stripHTML bool
	)

	cmd := &cobra.Command{
		Use:   "redact <path>",
		Short: "Redact sensitive data from prompt files",
		Long: "Takes a prompt file or directory of prompt files and redacts sensitive\n" +
			"information such as email addresses, API keys, and credit card numbers.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			var opts []redact.Option
			if stripHTML {
				opts = append(opts, redact.WithStripHTML())
			}
			redactor := redact.New(opts...)

			files, err := collectFiles(path)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files found at %q", path)
			}

			rootInfo, err := os.Stat(path)
			if err != nil {
				return err
			}
			fromDir := rootInfo.IsDir()

			for _, file := range files {
				raw, err := os.ReadFile(file)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error reading file %q: %v\n", file, err)
					continue
				}
				original := string(raw)
				redacted := redactor.Redact(original)

				if original == redacted && !dryRun {
					fmt.Fprintf(out, "No sensitive data found in %s. No changes made.\n", file)
					continue
				}

				if dryRun {
					fmt.Fprintf(out, "--- Dry run: Potential redactions for %s ---\n", file)
					if original == redacted {
						fmt.Fprintln(out, "No sensitive data found.")
						continue
					}
					printLineDiff(cmd, original, redacted)
					continue
				}

				if err := writeRedacted(file, path, outputDir, fromDir, redacted, cmd); err != nil {
					return err
				}
				a.logger.Debug("redacted file", zap.String("file", file))
			}

			if dryRun {
				fmt.Fprintln(out, "Dry run complete. No files were modified.")
			} else {
				fmt.Fprintln(out, "Redaction process complete.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory to save redacted files; defaults to in-place with a .bak backup")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be redacted without modifying files")
	cmd.Flags().BoolVar(&stripHTML, "strip-html", false, "strip HTML markup before pattern matching")
	return cmd
}

func writeRedacted(file, root, outputDir string, fromDir bool, redacted string, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if outputDir != "" {
		target := filepath.Join(outputDir, filepath.Base(file))
		if fromDir {
			rel, err := filepath.Rel(root, file)
			if err != nil {
				return err
			}
			target = filepath.Join(outputDir, rel)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(redacted), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(out, "Redacted content written to %s.\n", target)
		return nil
	}

	backup := file + ".bak"
	original, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(backup, original, 0o644); err != nil {
		return fmt.Errorf("writing backup %q: %w", backup, err)
	}
	if err := os.WriteFile(file, []byte(redacted), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(out, "Redacted content written to %s. Backup saved to %s.\n", file, backup)
	return nil
}

// printLineDiff shows changed lines only, old prefixed with "-" and new with
// "+". Enough for eyeballing a dry run without a diff dependency.
func printLineDiff(cmd *cobra.Command, original, redacted string) {
	out := cmd.OutOrStdout()
	oldLines := strings.Split(original, "\n")
	newLines := strings.Split(redacted, "\n")

	for i := 0; i < len(oldLines) || i < len(newLines); i++ {
		var oldLine, newLine string
		if i < len(oldLines) {
			oldLine = oldLines[i]
		}
		if i < len(newLines) {
			newLine = newLines[i]
		}
		if oldLine == newLine {
			continue
		}
		if i < len(oldLines) {
			fmt.Fprintf(out, "- %s\n", oldLine)
		}
		if i < len(newLines) {
			fmt.Fprintf(out, "+ %s\n", newLine)
		}
	}
}
