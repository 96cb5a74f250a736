// Package commands implements the CLI commands for cachelayer.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/internal/build"
	"github.com/goliatone/go-cache-layer/internal/config"
	"github.com/goliatone/go-cache-layer/internal/logging"
	"github.com/goliatone/go-cache-layer/internal/simulation"
)

// CLI represents the command line interface for cachelayer.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application runs the simulations the CLI asks for.
type Application interface {
	Simulate(ctx context.Context, cfg cache.Config, opts simulation.Options, logger *slog.Logger) (simulation.Report, error)
}

// SimulatorFunc adapts a function to Application.
type SimulatorFunc func(ctx context.Context, cfg cache.Config, opts simulation.Options, logger *slog.Logger) (simulation.Report, error)

// Simulate calls f.
func (f SimulatorFunc) Simulate(ctx context.Context, cfg cache.Config, opts simulation.Options, logger *slog.Logger) (simulation.Report, error) {
	return f(ctx, cfg, opts, logger)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cachelayer",
		Short:         "Exercise the entity cache layer against a simulated world",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSimulateCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// loadConfig reads the file named by --config, or the defaults.
func loadConfig(cmd *cobra.Command) (config.File, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLogger(cmd *cobra.Command, cfg config.File) (*slog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.Log)
}
