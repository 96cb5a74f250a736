package entitycache

import (
	"github.com/goliatone/go-cache-layer/cache"
	"github.com/goliatone/go-cache-layer/foreign"
)

// EntityRegistrationID identifies the generic entity handler family.
const EntityRegistrationID = "entity"

// EntityCache decorates a non-player entity. Its dimension and dynamic
// properties are served from the layer's stores; every other method is
// forwarded to the original.
type EntityCache struct {
	layer  *Layer
	entity foreign.Entity
	id     string
}

var _ foreign.Entity = (*EntityCache)(nil)

func newEntityCache(l *Layer, entity foreign.Entity) *EntityCache {
	return &EntityCache{layer: l, entity: entity, id: entity.ID()}
}

// EntityRegistration returns the registration of the generic entity family.
// It claims every entity whose type tag is not the player tag.
func EntityRegistration() Registration {
	return Registration{
		ID: EntityRegistrationID,
		Match: func(v any) bool {
			if _, marked := v.(foreign.EffectTarget); !marked {
				return false
			}
			entity, ok := v.(foreign.Entity)
			return ok && entity.TypeID() != foreign.PlayerTypeID
		},
		New: func(l *Layer, v any) Wrapper {
			return newEntityCache(l, v.(foreign.Entity))
		},
		Bind: bindDimensionChange,
	}
}

func (e *EntityCache) IsWrapped() bool { return true }
func (e *EntityCache) Unwrap() any     { return e.entity }

func (e *EntityCache) ID() string     { return e.id }
func (e *EntityCache) TypeID() string { return e.entity.TypeID() }

func (e *EntityCache) AddEffect(effectType string, duration int) error {
	return e.entity.AddEffect(effectType, duration)
}

func (e *EntityCache) Location() (foreign.Vector3, error) {
	return e.entity.Location()
}

// Dimension returns the cached dimension, reading it from the entity on the
// first call.
func (e *EntityCache) Dimension() (foreign.Dimension, error) {
	return cache.GetOrCompute(e.layer.store, BucketDimension, e.id, func() (foreign.Dimension, error) {
		dimension, err := e.entity.Dimension()
		if err != nil || dimension == nil {
			return dimension, err
		}
		return wrapAs(e.layer, dimension), nil
	})
}

// Teleport forwards the teleport. When it succeeds with an explicit
// destination dimension, that dimension replaces the cached one.
func (e *EntityCache) Teleport(location foreign.Vector3, opts *foreign.TeleportOptions) error {
	if err := e.entity.Teleport(location, opts); err != nil {
		return err
	}
	e.teleported(opts)
	return nil
}

// TryTeleport is Teleport for the variant that reports whether the entity
// could be moved.
func (e *EntityCache) TryTeleport(location foreign.Vector3, opts *foreign.TeleportOptions) (bool, error) {
	moved, err := e.entity.TryTeleport(location, opts)
	if err != nil || !moved {
		return moved, err
	}
	e.teleported(opts)
	return true, nil
}

func (e *EntityCache) teleported(opts *foreign.TeleportOptions) {
	if opts == nil || opts.Dimension == nil {
		return
	}
	e.layer.store.Set(BucketDimension, e.id, wrapAs(e.layer, opts.Dimension))
}

// GetDynamicProperty returns the cached property value, reading it from the
// entity on the first call. Absent properties are cached as nil.
func (e *EntityCache) GetDynamicProperty(identifier string) (any, error) {
	return cache.GetOrComputeID(e.layer.props, BucketDynamicProperties, e.id, identifier, func() (any, error) {
		return e.entity.GetDynamicProperty(identifier)
	})
}

// SetDynamicProperty writes the value to the cache and then to the entity.
// A nil value removes the property, so the cache entry is dropped instead.
// When the entity rejects the write the entry is dropped as well.
func (e *EntityCache) SetDynamicProperty(identifier string, value any) error {
	if value == nil {
		e.layer.props.Delete(BucketDynamicProperties, e.id, identifier)
	} else {
		e.layer.props.Set(BucketDynamicProperties, e.id, identifier, value)
	}

	if err := e.entity.SetDynamicProperty(identifier, value); err != nil {
		e.layer.props.Delete(BucketDynamicProperties, e.id, identifier)
		return err
	}
	return nil
}

// ClearDynamicProperties drops the cached properties of this entity. The
// properties stored on the entity are left alone.
func (e *EntityCache) ClearDynamicProperties() {
	e.layer.props.Clear(BucketDynamicProperties, e.id)
}

// Remove forwards the removal and forgets everything cached for the entity.
func (e *EntityCache) Remove() error {
	if err := e.entity.Remove(); err != nil {
		return err
	}
	e.layer.store.Delete(BucketDimension, e.id)
	e.ClearDynamicProperties()
	return nil
}
