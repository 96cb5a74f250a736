package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/cmd/cachelayer/commands"
	"github.com/goliatone/go-cache-layer/internal/simulation"
)

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, commands.SimulatorFunc(simulation.Run))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "cachelayer version")
	assert.Empty(t, stderr.String())
}

// TestRun_Simulate runs a small real simulation end to end.
func TestRun_Simulate(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	exitCode := run(context.Background(),
		[]string{"simulate", "--players", "2", "--entities", "2", "--rounds", "10", "--portal-every", "3"},
		stdout, stderr, commands.SimulatorFunc(simulation.Run))

	assert.Equal(t, 0, exitCode, stderr.String())
	assert.Regexp(t, `mismatches\s+0`, stdout.String())
}

// TestRun_ExecutionError verifies that run returns 1 and describes the error.
func TestRun_ExecutionError(t *testing.T) {
	failing := commands.SimulatorFunc(func(context.Context, cache.Config, simulation.Options, *slog.Logger) (simulation.Report, error) {
		return simulation.Report{}, errors.New("world unavailable")
	})
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"simulate"}, stdout, stderr, failing)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: world unavailable")
}

// TestRun_UnknownCommand verifies that run returns 1 for an unknown command.
func TestRun_UnknownCommand(t *testing.T) {
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"explode"}, new(bytes.Buffer), stderr, commands.SimulatorFunc(simulation.Run))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "unknown command")
}
