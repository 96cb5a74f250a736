package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/internal/config"
	"github.com/goliatone/go-cache-layer/internal/logging"
	"github.com/goliatone/go-cache-layer/internal/simulation"
)

// ErrUnknownOutput is returned for an --output other than text or yaml.
var ErrUnknownOutput = zerr.New("unknown output format")

func (c *CLI) newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a workload with and without the cache layer and compare native calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output != "text" && output != "yaml" {
				return zerr.With(zerr.Wrap(ErrUnknownOutput, "simulate"), "output", output)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			report, err := c.app.Simulate(cmd.Context(), cfg.Cache, simulation.Options{
				Players:     cfg.Simulation.Players,
				Entities:    cfg.Simulation.Entities,
				Rounds:      cfg.Simulation.Rounds,
				PortalEvery: cfg.Simulation.PortalEvery,
			}, logger)
			if err != nil {
				logging.Error(cmd.Context(), logger, err)
				return err
			}

			if output == "yaml" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return err
				}
				return enc.Close()
			}
			return report.WriteText(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("backend", "b", "", "Cache backend: memory or sturdyc (overrides the config file)")
	cmd.Flags().IntP("players", "p", 0, "Number of players to spawn")
	cmd.Flags().IntP("entities", "e", 0, "Number of non-player entities to spawn")
	cmd.Flags().IntP("rounds", "r", 0, "Number of rounds to play")
	cmd.Flags().Int("portal-every", 0, "Send a player through a portal every N rounds, 0 disables travel")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
	return cmd
}

// applyFlags copies the flags given on the command line over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.File) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		cfg.Cache.Backend = cache.Backend(backend)
	}
	if flags.Changed("players") {
		cfg.Simulation.Players, _ = flags.GetInt("players")
	}
	if flags.Changed("entities") {
		cfg.Simulation.Entities, _ = flags.GetInt("entities")
	}
	if flags.Changed("rounds") {
		cfg.Simulation.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Changed("portal-every") {
		cfg.Simulation.PortalEvery, _ = flags.GetInt("portal-every")
	}
}
