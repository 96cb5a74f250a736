package entitycache

import (
	"log/slog"
	"sync"

	"go.trai.ch/zerr"

	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/foreign"
)

// Cache buckets shared by the built-in handler families.
const (
	BucketDimension         = "dimension"
	BucketGameMode          = "gameMode"
	BucketDynamicProperties = "dynamicProperties"
)

// Layer is the caching context: the handler registry, the stores every
// decorator reads from and writes to, and the subscriptions keeping the
// stores in sync with the foreign runtime.
//
// A Layer is meant to be driven from the single goroutine that owns the
// foreign runtime. Only registration and subscription bookkeeping is guarded.
type Layer struct {
	registry *Registry
	store    cache.Store
	props    cache.IDStore
	events   foreign.AfterEvents
	logger   *slog.Logger

	extra []Registration

	mu            sync.Mutex
	subscriptions map[string]string
}

// Option configures a Layer.
type Option func(*Layer)

// WithStore sets the two level store used for dimensions and game modes.
func WithStore(store cache.Store) Option {
	return func(l *Layer) {
		if store != nil {
			l.store = store
		}
	}
}

// WithIDStore sets the three level store used for dynamic properties.
func WithIDStore(store cache.IDStore) Option {
	return func(l *Layer) {
		if store != nil {
			l.props = store
		}
	}
}

// WithEvents sets the event source the handler families subscribe to.
// Without it the cache is only updated through the decorators themselves.
func WithEvents(events foreign.AfterEvents) Option {
	return func(l *Layer) {
		l.events = events
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Layer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRegistration registers reg after the built-in handler families.
func WithRegistration(reg Registration) Option {
	return func(l *Layer) {
		l.extra = append(l.extra, reg)
	}
}

// New creates a Layer with the built-in entity and player handler families
// registered, in that order.
func New(opts ...Option) (*Layer, error) {
	l := &Layer{
		registry:      NewRegistry(),
		logger:        slog.New(slog.DiscardHandler),
		subscriptions: make(map[string]string),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.store == nil || l.props == nil {
		cfg := cache.DefaultConfig()
		if l.store == nil {
			store, err := cache.NewStore(cfg)
			if err != nil {
				return nil, zerr.Wrap(err, "create store")
			}
			l.store = store
		}
		if l.props == nil {
			props, err := cache.NewIDStore(cfg)
			if err != nil {
				return nil, zerr.Wrap(err, "create id store")
			}
			l.props = props
		}
	}

	builtins := []Registration{EntityRegistration(), PlayerRegistration()}
	for _, reg := range append(builtins, l.extra...) {
		if err := l.Register(reg); err != nil {
			return nil, err
		}
	}
	l.extra = nil

	return l, nil
}

// Register appends reg to the registry and, when the layer has an event
// source, binds the family's invalidation listener.
func (l *Layer) Register(reg Registration) error {
	if err := l.registry.Register(reg); err != nil {
		return err
	}
	l.bind(reg)
	return nil
}

// Registry returns the layer's handler registry.
func (l *Layer) Registry() *Registry {
	return l.registry
}

func (l *Layer) bind(reg Registration) {
	if reg.Bind == nil || l.events == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.subscriptions[reg.ID]; ok {
		return
	}
	token := reg.Bind(l, l.events)
	l.subscriptions[reg.ID] = token
	l.logger.Debug("subscribed handler family", "family", reg.ID, "token", token)
}

// Subscriptions returns the subscription token of every bound handler family.
func (l *Layer) Subscriptions() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]string, len(l.subscriptions))
	for family, token := range l.subscriptions {
		out[family] = token
	}
	return out
}

// ResetCache drops every cached value. Registrations and subscriptions stay.
func (l *Layer) ResetCache() {
	l.store.ClearAll()
	l.props.ClearAll()
	l.logger.Debug("cache reset")
}

// IsWrapped reports whether v was produced by a layer.
func (l *Layer) IsWrapped(v any) bool {
	return IsWrapped(v)
}

// Unwrap returns the original behind v.
func (l *Layer) Unwrap(v any) any {
	return Unwrap(v)
}

// WrapWorld wraps the root object of the foreign API. Everything reached
// through the returned world is wrapped as well.
func (l *Layer) WrapWorld(world foreign.World) foreign.World {
	return wrapAs(l, world)
}

// Store returns the two level store.
func (l *Layer) Store() cache.Store {
	return l.store
}

// IDStore returns the three level store.
func (l *Layer) IDStore() cache.IDStore {
	return l.props
}
