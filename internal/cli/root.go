package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dotenvPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")

	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:          "math-game",
		Short:        "Interactive arithmetic quiz with a session leaderboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), *opts)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config (defaults apply when empty)")
	cmd.PersistentFlags().StringVar(&dotenvPath, "env-file", ".env", "optional .env file with MATHGAME_* overrides")
	opts.bind(cmd)
	cmd.AddCommand(NewPlayCmd())
	cmd.AddCommand(NewConfigCmd())
	return cmd
}
