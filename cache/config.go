package cache

import (
	"time"

	"github.com/goliatone/go-cache-layer/internal/cacheinfra"
)

// Backend names the implementation behind the keyed stores.
type Backend string

const (
	// BackendMemory keeps entries in memory until they are cleared. Default.
	BackendMemory Backend = Backend(cacheinfra.BackendMemory)
	// BackendSturdyc keeps entries in a sturdyc cache bounded by Capacity and TTL.
	BackendSturdyc Backend = Backend(cacheinfra.BackendSturdyc)
)

// Config exposes store configuration options for consumers of the cache package.
type Config struct {
	Backend            Backend       `yaml:"backend"`
	Capacity           int           `yaml:"capacity"`
	NumShards          int           `yaml:"num_shards"`
	TTL                time.Duration `yaml:"ttl"`
	EvictionPercentage int           `yaml:"eviction_percentage"`
	EvictionInterval   time.Duration `yaml:"eviction_interval"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewStore constructs the two level store selected by cfg.Backend, using the
// default key serializer.
func NewStore(cfg Config) (Store, error) {
	return NewStoreWithSerializer(cfg, NewDefaultKeySerializer())
}

// NewIDStore constructs the three level store selected by cfg.Backend, using
// the default key serializer.
func NewIDStore(cfg Config) (IDStore, error) {
	return NewIDStoreWithSerializer(cfg, NewDefaultKeySerializer())
}

// NewStoreWithSerializer constructs the two level store selected by
// cfg.Backend. The sturdyc backend flattens its keys with serializer; the
// memory backend does not use it.
func NewStoreWithSerializer(cfg Config, serializer KeySerializer) (Store, error) {
	internal := cfg.toInternal()
	if err := internal.Validate(); err != nil {
		return nil, err
	}
	if internal.Backend == cacheinfra.BackendSturdyc {
		if serializer == nil {
			serializer = NewDefaultKeySerializer()
		}
		return cacheinfra.NewSturdycStore(internal, serializer.SerializeKey)
	}
	return cacheinfra.NewMemoryStore(), nil
}

// NewIDStoreWithSerializer is NewStoreWithSerializer for the three level store.
func NewIDStoreWithSerializer(cfg Config, serializer KeySerializer) (IDStore, error) {
	internal := cfg.toInternal()
	if err := internal.Validate(); err != nil {
		return nil, err
	}
	if internal.Backend == cacheinfra.BackendSturdyc {
		if serializer == nil {
			serializer = NewDefaultKeySerializer()
		}
		return cacheinfra.NewSturdycIDStore(internal, serializer.SerializeKey)
	}
	return cacheinfra.NewMemoryIDStore(), nil
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Backend:            cacheinfra.Backend(c.Backend),
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Backend:            Backend(cfg.Backend),
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
