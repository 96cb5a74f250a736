// Package cache provides the keyed store contracts used to memoize reads of
// foreign objects, together with their configuration and key serialization.
//
// # Overview
//
// This package exports two store interfaces and constructors for their
// default implementations:
//
//   - Store: a two level store, bucket -> key -> value
//   - IDStore: a three level store, bucket -> entity id -> key -> value
//
// Both are pure in-memory structures. There is no expiry policy beyond
// explicit clears in the default memory backend, so correctness depends on
// the caller overwriting or clearing entries on every mutation or
// notification that could make them stale.
//
// # Basic Usage
//
//	store, err := cache.NewStore(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	dim, err := cache.GetOrCompute(store, "dimension", entity.ID(), func() (foreign.Dimension, error) {
//		return entity.Dimension()
//	})
//
// The compute function runs at most once per (bucket, key) between clears.
// Errors it returns are passed through unchanged and are never cached.
//
// # Backends
//
// Config.Backend selects the implementation:
//
//   - memory: nested concurrent maps, entries live until cleared
//   - sturdyc: a sturdyc client with flat keys built by the KeySerializer;
//     bucket and entity clears are prefix deletes. Entries are additionally
//     bounded by Capacity and TTL.
//
// Expiry and eviction in the sturdyc backend go beyond the clear-only
// contract of the stores. They are opt-in through Config.Backend and only
// ever cost an extra foreign read: every write reaches the foreign store
// before or together with the cache, so an expired entry is recomputed from
// the same value it held. Pick the memory backend when a read must never be
// repeated between clears.
//
// # Key Serialization
//
// The default KeySerializer escapes every segment so that KeySeparator never
// appears inside one, then joins them:
//
//	serializer := cache.NewDefaultKeySerializer()
//	serializer.SerializeKey("dynamicProperties", "42", "score") // dynamicProperties::42::score
//	serializer.SerializeKey("dynamicProperties", "42", "")      // dynamicProperties::42::
//
// The second form is the prefix used to clear a single entity.
package cache
