package di

import (
	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/entitycache"
	"github.com/goliatone/go-cache-layer/foreign"
)

// Container wires the cache layer together. It owns the stores built from
// the cache configuration, the layer using them and, when a world is given,
// the wrapped world applications should talk to.
type Container struct {
	store         cache.Store
	idStore       cache.IDStore
	keySerializer cache.KeySerializer
	layer         *entitycache.Layer
	world         foreign.World
	config        cache.Config
}

// NewContainer creates a new DI container with the provided cache configuration.
// Both stores are built from config and share one key serializer. When world is not nil the layer
// subscribes to its after-events and World returns the wrapped world.
// Extra options are applied after the container's own, so they can replace
// the stores or add handler families.
func NewContainer(config cache.Config, world foreign.World, opts ...entitycache.Option) (*Container, error) {
	keySerializer := cache.NewDefaultKeySerializer()

	store, err := cache.NewStoreWithSerializer(config, keySerializer)
	if err != nil {
		return nil, err
	}

	idStore, err := cache.NewIDStoreWithSerializer(config, keySerializer)
	if err != nil {
		return nil, err
	}

	layerOpts := []entitycache.Option{
		entitycache.WithStore(store),
		entitycache.WithIDStore(idStore),
	}
	if world != nil {
		layerOpts = append(layerOpts, entitycache.WithEvents(world.AfterEvents()))
	}

	layer, err := entitycache.New(append(layerOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	c := &Container{
		store:         layer.Store(),
		idStore:       layer.IDStore(),
		keySerializer: keySerializer,
		layer:         layer,
		config:        config,
	}
	if world != nil {
		c.world = layer.WrapWorld(world)
	}
	return c, nil
}

// NewContainerWithDefaults creates a new DI container using default configuration.
func NewContainerWithDefaults(world foreign.World, opts ...entitycache.Option) (*Container, error) {
	return NewContainer(cache.DefaultConfig(), world, opts...)
}

// Layer returns the cache layer.
func (c *Container) Layer() *entitycache.Layer {
	return c.layer
}

// World returns the wrapped world, or nil when the container was built
// without one.
func (c *Container) World() foreign.World {
	return c.world
}

// Store returns the two level store used by the layer.
func (c *Container) Store() cache.Store {
	return c.store
}

// IDStore returns the three level store used by the layer.
func (c *Container) IDStore() cache.IDStore {
	return c.idStore
}

// KeySerializer returns the key serializer the sturdyc backend flattens keys with.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the cache configuration used by this container.
func (c *Container) Config() cache.Config {
	return c.config
}
