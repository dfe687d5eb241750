package cli

import (
	"github.com/lshigami/quizforge/internal/logger"
	"github.com/spf13/cobra"
)

var port string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizforge",
		Short: "Quiz generation service for prompts, web pages, PDFs and YouTube videos",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&port, "port", "", "port to listen on, overrides SERVER_PORT")
	cmd.AddCommand(NewServeCmd(&port))
	cmd.AddCommand(NewMigrateCmd())
	return cmd
}
