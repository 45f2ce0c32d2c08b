package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"math-quiz-game/internal/config"
	"math-quiz-game/internal/domain"
)

// NewConfigCmd validates the configuration and prints what a session would use.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate configuration and print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(configPath, dotenvPath)
			if err != nil {
				return err
			}
			return printConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func printConfig(out io.Writer, cfg config.Config) error {
	if cfg.Leaderboard.Redis.Password != "" {
		cfg.Leaderboard.Redis.Password = "***"
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	tiers := cfg.Tiers()
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DIFFICULTY\tMAGNITUDE\tMULTIPLIER\tMAX POINTS")
	for _, d := range domain.Difficulties {
		tier := tiers[d]
		best, err := tiers.Score(domain.Division, d)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", d, tier.Magnitude, tier.Multiplier, best)
	}
	return tw.Flush()
}
