package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate the configuration and print it with defaults applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
