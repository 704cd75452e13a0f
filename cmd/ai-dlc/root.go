package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	logger  *zap.Logger
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "ai-dlc",
		Short:         "AI-DLC: AI-driven Development Lifecycle Companion",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newScaffoldCmd(a),
		newTemplateCmd(a),
		newGenerateCmd(a),
		newValidateCmd(a),
		newRedactCmd(a),
	)
	return cmd
}
