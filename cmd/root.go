package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strugee/profanity/internal/logger"
)

type rootOptions struct {
	configPath string
	debug      bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "profanity",
		Short:         "Profanity: a console chat client",
		Long:          "profanity is a terminal chat client with a console window and nine chat windows, switched with F1 to F10.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(opts)
			if err != nil {
				return err
			}
			return runUI(cmd.Context(), app)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $HOME/.profanity/config.toml)")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(
		newVersionCmd(),
		newReplayCmd(opts),
	)

	return rootCmd
}
