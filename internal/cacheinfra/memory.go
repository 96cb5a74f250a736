package cacheinfra

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// MemoryStore is a bucket -> key -> value store backed by nested xsync maps.
// Entries never expire; they leave the store only through Delete, Clear or
// ClearAll.
type MemoryStore struct {
	buckets *xsync.MapOf[string, *xsync.MapOf[string, any]]
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: xsync.NewMapOf[string, *xsync.MapOf[string, any]](),
	}
}

func (s *MemoryStore) bucket(name string) *xsync.MapOf[string, any] {
	b, _ := s.buckets.LoadOrCompute(name, func() *xsync.MapOf[string, any] {
		return xsync.NewMapOf[string, any]()
	})
	return b
}

// GetOrCompute returns the value stored under (bucket, key) or computes it.
// compute runs outside of any map lock so it may freely call back into the
// store; if two goroutines race on the same miss the first stored value wins.
func (s *MemoryStore) GetOrCompute(bucket, key string, compute func() (any, error)) (any, error) {
	b := s.bucket(bucket)
	if value, ok := b.Load(key); ok {
		return value, nil
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}

	actual, _ := b.LoadOrStore(key, value)
	return actual, nil
}

// Set overwrites (bucket, key).
func (s *MemoryStore) Set(bucket, key string, value any) {
	s.bucket(bucket).Store(key, value)
}

// Delete drops (bucket, key). Missing buckets are not created.
func (s *MemoryStore) Delete(bucket, key string) {
	if b, ok := s.buckets.Load(bucket); ok {
		b.Delete(key)
	}
}

// Clear drops a whole bucket.
func (s *MemoryStore) Clear(bucket string) {
	s.buckets.Delete(bucket)
}

// ClearAll drops every bucket.
func (s *MemoryStore) ClearAll() {
	s.buckets.Clear()
}

// Len reports the number of entries in bucket.
func (s *MemoryStore) Len(bucket string) int {
	if b, ok := s.buckets.Load(bucket); ok {
		return b.Size()
	}
	return 0
}

// MemoryIDStore is a bucket -> id -> key -> value store. Each bucket is a
// MemoryStore whose own buckets are entity ids.
type MemoryIDStore struct {
	buckets *xsync.MapOf[string, *MemoryStore]
}

// NewMemoryIDStore creates an empty MemoryIDStore.
func NewMemoryIDStore() *MemoryIDStore {
	return &MemoryIDStore{
		buckets: xsync.NewMapOf[string, *MemoryStore](),
	}
}

func (s *MemoryIDStore) bucket(name string) *MemoryStore {
	b, _ := s.buckets.LoadOrCompute(name, NewMemoryStore)
	return b
}

// GetOrCompute returns the value stored under (bucket, id, key) or computes it.
func (s *MemoryIDStore) GetOrCompute(bucket, id, key string, compute func() (any, error)) (any, error) {
	return s.bucket(bucket).GetOrCompute(id, key, compute)
}

// Set overwrites (bucket, id, key).
func (s *MemoryIDStore) Set(bucket, id, key string, value any) {
	s.bucket(bucket).Set(id, key, value)
}

// Delete drops (bucket, id, key).
func (s *MemoryIDStore) Delete(bucket, id, key string) {
	if b, ok := s.buckets.Load(bucket); ok {
		b.Delete(id, key)
	}
}

// Clear drops every entry of id within bucket.
func (s *MemoryIDStore) Clear(bucket, id string) {
	if b, ok := s.buckets.Load(bucket); ok {
		b.Clear(id)
	}
}

// ClearAll drops every bucket.
func (s *MemoryIDStore) ClearAll() {
	s.buckets.Clear()
}

// Len reports the number of entries cached for id within bucket.
func (s *MemoryIDStore) Len(bucket, id string) int {
	if b, ok := s.buckets.Load(bucket); ok {
		return b.Len(id)
	}
	return 0
}
