package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/internal/config"
	"github.com/goliatone/go-cache-layer/pkg/testsupport"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	cfg, err := config.Load(testsupport.FixturePath("sturdyc.yaml"))
	require.NoError(t, err)

	assert.Equal(t, cache.BackendSturdyc, cfg.Cache.Backend)
	assert.Equal(t, 500, cfg.Cache.Capacity)
	assert.Equal(t, 8, cfg.Cache.NumShards)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)
	assert.Equal(t, 2, cfg.Simulation.Players)
	assert.Equal(t, 10, cfg.Simulation.Rounds)

	// Unset keys keep their defaults.
	defaults := config.Default()
	assert.Equal(t, defaults.Simulation.Entities, cfg.Simulation.Entities)
	assert.Equal(t, defaults.Simulation.PortalEvery, cfg.Simulation.PortalEvery)
}

func TestLoad_MatchesFixture(t *testing.T) {
	var raw map[string]any
	testsupport.LoadFixtureYAML(t, testsupport.FixturePath("sturdyc.yaml"), &raw)
	require.Contains(t, raw, "cache")
	require.Contains(t, raw, "simulation")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "malformed yaml",
			content: "cache: [unterminated",
			want:    config.ErrConfigParse,
		},
		{
			name:    "invalid cache section",
			content: "cache:\n  backend: sturdyc\n  capacity: 0\n",
			want:    config.ErrInvalidCache,
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: loud\n",
			want:    config.ErrInvalidLog,
		},
		{
			name:    "unknown log format",
			content: "log:\n  format: xml\n",
			want:    config.ErrInvalidLog,
		},
		{
			name:    "zero rounds",
			content: "simulation:\n  rounds: 0\n",
			want:    config.ErrInvalidSimulation,
		},
		{
			name:    "negative players",
			content: "simulation:\n  players: -1\n",
			want:    config.ErrInvalidSimulation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testsupport.TempFile(t, "config.yaml", []byte(tt.content))

			_, err := config.Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestValidate_KeepsSentinels(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = "redis"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidCache)

	cfg = config.Default()
	cfg.Log.Format = "xml"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLog)

	cfg = config.Default()
	cfg.Simulation.Rounds = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidSimulation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(testsupport.FixturePath("missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, config.ErrConfigRead.Error())
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = cache.BackendSturdyc
	cfg.Simulation.Players = 7

	data, err := cfg.Marshal()
	require.NoError(t, err)

	loaded, err := config.Load(testsupport.TempFile(t, "config.yaml", data))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
