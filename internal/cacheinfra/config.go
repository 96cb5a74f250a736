package cacheinfra

import (
	"time"

	"github.com/viccon/sturdyc"
)

// Backend names the implementation behind the keyed stores.
type Backend string

const (
	// BackendMemory keeps entries in nested concurrent maps with no expiry.
	BackendMemory Backend = "memory"
	// BackendSturdyc keeps entries in a sturdyc client using flat keys.
	BackendSturdyc Backend = "sturdyc"
)

// Config holds the configuration for the keyed store backends.
// Capacity, NumShards, TTL, EvictionPercentage and EvictionInterval are only
// read by the sturdyc backend.
type Config struct {
	// Backend selects the store implementation. Empty means BackendMemory.
	Backend Backend

	// Capacity defines the maximum number of entries that the cache can store.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Must be greater than 0. Default: 64
	NumShards int

	// TTL is the time-to-live for cached entries. It should comfortably
	// exceed a session: handlers rely on explicit clears, not on expiry.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the cache reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the cache checks for expired entries.
	// Zero value uses the default interval.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Backend:            BackendMemory,
		Capacity:           100000,
		NumShards:          64,
		TTL:                24 * time.Hour,
		EvictionPercentage: 10,
		EvictionInterval:   0, // Use default
	}
}

// ToSturdycOptions converts the Config to sturdyc.Option slice.
// Capacity, NumShards, TTL and EvictionPercentage are passed directly to
// sturdyc.New(). Early refreshes and missing record storage are never
// enabled: both make sturdyc call the fetch function on its own schedule.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendMemory:
		return nil
	case BackendSturdyc:
	default:
		return &ConfigError{Field: "Backend", Message: "must be one of memory, sturdyc"}
	}

	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.NumShards > c.Capacity {
		return &ConfigError{Field: "NumShards", Message: "must not exceed Capacity"}
	}

	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if c.EvictionInterval < 0 {
		return &ConfigError{Field: "EvictionInterval", Message: "must be non-negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
