// Package main is the entry point for the cachelayer tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-cache-layer/cmd/cachelayer/commands"
	"github.com/goliatone/go-cache-layer/internal/logging"
	"github.com/goliatone/go-cache-layer/internal/simulation"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, commands.SimulatorFunc(simulation.Run)))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, app commands.Application) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli := commands.New(app)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, logging.Describe(err))
		return 1
	}
	return 0
}
