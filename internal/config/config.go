// Package config loads the cachelayer CLI configuration from a YAML file.
package config

import (
	"os"
	"slices"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cache-layer/cache"
)

var (
	// ErrConfigRead is returned when the configuration file cannot be read.
	ErrConfigRead = zerr.New("failed to read configuration file")
	// ErrConfigParse is returned when the configuration file is not valid YAML.
	ErrConfigParse = zerr.New("failed to parse configuration file")
	// ErrInvalidCache is returned when the cache section fails validation.
	ErrInvalidCache = zerr.New("invalid cache configuration")
	// ErrInvalidLog is returned for unknown log levels or formats.
	ErrInvalidLog = zerr.New("invalid log configuration")
	// ErrInvalidSimulation is returned for negative or empty workloads.
	ErrInvalidSimulation = zerr.New("invalid simulation configuration")
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = []string{"debug", "info", "warn", "error"}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Simulation sizes the workload of the simulate command.
type Simulation struct {
	Players     int `yaml:"players"`
	Entities    int `yaml:"entities"`
	Rounds      int `yaml:"rounds"`
	PortalEvery int `yaml:"portal_every"`
}

// File is the layout of the configuration file.
type File struct {
	Cache      cache.Config `yaml:"cache"`
	Log        Log          `yaml:"log"`
	Simulation Simulation   `yaml:"simulation"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Cache: cache.DefaultConfig(),
		Log: Log{
			Level:  "info",
			Format: FormatText,
		},
		Simulation: Simulation{
			Players:     4,
			Entities:    16,
			Rounds:      100,
			PortalEvery: 10,
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
// An empty path yields the defaults.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, zerr.With(zerr.Wrap(err, ErrConfigRead.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, zerr.With(zerr.Wrap(err, ErrConfigParse.Error()), "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return File{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Validate checks every section.
func (f File) Validate() error {
	if err := f.Cache.Validate(); err != nil {
		return zerr.Wrap(ErrInvalidCache, err.Error())
	}

	if !slices.Contains(levels, f.Log.Level) {
		return zerr.With(zerr.Wrap(ErrInvalidLog, "unknown level"), "level", f.Log.Level)
	}
	if f.Log.Format != FormatText && f.Log.Format != FormatJSON {
		return zerr.With(zerr.Wrap(ErrInvalidLog, "unknown format"), "format", f.Log.Format)
	}

	s := f.Simulation
	if s.Players < 0 || s.Entities < 0 || s.PortalEvery < 0 {
		return zerr.Wrap(ErrInvalidSimulation, "counts cannot be negative")
	}
	if s.Rounds < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidSimulation, "rounds must be positive"), "rounds", s.Rounds)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
