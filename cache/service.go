package cache

// KeySerializer builds a flat cache key from an ordered list of segments
// (bucket, entity id, field). It must never produce the same key for two
// different segment lists.
type KeySerializer interface {
	SerializeKey(segments ...string) string
}

// ComputeFn produces the value for a missing cache entry, usually by reading
// the foreign object the cache sits in front of.
type ComputeFn = func() (any, error)

// Store is the two level keyed store: bucket -> key -> value.
// It memoizes foreign reads keyed by a field name within a bucket.
type Store interface {
	// GetOrCompute returns the cached value for (bucket, key). On a miss it
	// calls compute once, stores its result and returns it. Errors from
	// compute are returned unchanged and nothing is stored.
	GetOrCompute(bucket, key string, compute ComputeFn) (any, error)
	// Set overwrites (bucket, key), creating the bucket if needed.
	Set(bucket, key string, value any)
	// Delete drops a single entry.
	Delete(bucket, key string)
	// Clear drops one bucket.
	Clear(bucket string)
	// ClearAll drops every bucket.
	ClearAll()
}

// IDStore is the three level keyed store: bucket -> entity id -> key -> value.
// It tracks the same field name independently per entity instance.
type IDStore interface {
	GetOrCompute(bucket, id, key string, compute ComputeFn) (any, error)
	Set(bucket, id, key string, value any)
	Delete(bucket, id, key string)
	// Clear drops the entries of one entity within bucket, siblings are kept.
	Clear(bucket, id string)
	ClearAll()
}

// GetOrCompute is a type-safe wrapper around Store.GetOrCompute.
func GetOrCompute[T any](store Store, bucket, key string, compute func() (T, error)) (T, error) {
	result, err := store.GetOrCompute(bucket, key, func() (any, error) {
		return compute()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	value, _ := result.(T)
	return value, nil
}

// GetOrComputeID is a type-safe wrapper around IDStore.GetOrCompute.
func GetOrComputeID[T any](store IDStore, bucket, id, key string, compute func() (T, error)) (T, error) {
	result, err := store.GetOrCompute(bucket, id, key, func() (any, error) {
		return compute()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	value, _ := result.(T)
	return value, nil
}
