package cacheinfra

import (
	"context"
	"strings"

	"github.com/viccon/sturdyc"
)

// KeyFunc joins key segments into a flat sturdyc key. KeyFunc(a, "") must be
// a prefix of every KeyFunc(a, b) and of no other key.
type KeyFunc func(segments ...string) string

// entry boxes a cached value. sturdyc rejects a nil interface as a fetch
// result, and nil is a valid value here (an absent property).
type entry struct {
	value any
}

// sturdycClient wraps a sturdyc client together with the key function used to
// flatten bucket/id/key triples.
type sturdycClient struct {
	client *sturdyc.Client[entry]
	key    KeyFunc
}

func newSturdycClient(cfg Config, key KeyFunc) (*sturdycClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if key == nil {
		return nil, &ConfigError{Field: "KeyFunc", Message: "cannot be nil"}
	}

	client := sturdyc.New[entry](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &sturdycClient{client: client, key: key}, nil
}

func (s *sturdycClient) getOrCompute(key string, compute func() (any, error)) (any, error) {
	cached, err := s.client.GetOrFetch(context.Background(), key, func(context.Context) (entry, error) {
		value, err := compute()
		if err != nil {
			return entry{}, err
		}
		return entry{value: value}, nil
	})
	if err != nil {
		return nil, err
	}
	return cached.value, nil
}

func (s *sturdycClient) set(key string, value any) {
	s.client.Set(key, entry{value: value})
}

// deleteByPrefix removes every entry whose key starts with prefix.
func (s *sturdycClient) deleteByPrefix(prefix string) {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
}

func (s *sturdycClient) deleteAll() {
	for _, key := range s.client.ScanKeys() {
		s.client.Delete(key)
	}
}

// SturdycStore is a bucket -> key -> value store on top of sturdyc.
// Entries expire after the configured TTL and may be evicted when the cache
// is full; both only cost an extra foreign read.
type SturdycStore struct {
	*sturdycClient
}

// NewSturdycStore validates cfg and creates a SturdycStore.
func NewSturdycStore(cfg Config, key KeyFunc) (*SturdycStore, error) {
	client, err := newSturdycClient(cfg, key)
	if err != nil {
		return nil, err
	}
	return &SturdycStore{sturdycClient: client}, nil
}

// GetOrCompute returns the value stored under (bucket, key) or computes it.
func (s *SturdycStore) GetOrCompute(bucket, key string, compute func() (any, error)) (any, error) {
	return s.getOrCompute(s.key(bucket, key), compute)
}

// Set overwrites (bucket, key).
func (s *SturdycStore) Set(bucket, key string, value any) {
	s.set(s.key(bucket, key), value)
}

// Delete drops (bucket, key).
func (s *SturdycStore) Delete(bucket, key string) {
	s.client.Delete(s.key(bucket, key))
}

// Clear drops a whole bucket.
func (s *SturdycStore) Clear(bucket string) {
	s.deleteByPrefix(s.key(bucket, ""))
}

// ClearAll drops every entry.
func (s *SturdycStore) ClearAll() {
	s.deleteAll()
}

// SturdycIDStore is a bucket -> id -> key -> value store on top of sturdyc.
type SturdycIDStore struct {
	*sturdycClient
}

// NewSturdycIDStore validates cfg and creates a SturdycIDStore.
func NewSturdycIDStore(cfg Config, key KeyFunc) (*SturdycIDStore, error) {
	client, err := newSturdycClient(cfg, key)
	if err != nil {
		return nil, err
	}
	return &SturdycIDStore{sturdycClient: client}, nil
}

// GetOrCompute returns the value stored under (bucket, id, key) or computes it.
func (s *SturdycIDStore) GetOrCompute(bucket, id, key string, compute func() (any, error)) (any, error) {
	return s.getOrCompute(s.key(bucket, id, key), compute)
}

// Set overwrites (bucket, id, key).
func (s *SturdycIDStore) Set(bucket, id, key string, value any) {
	s.set(s.key(bucket, id, key), value)
}

// Delete drops (bucket, id, key).
func (s *SturdycIDStore) Delete(bucket, id, key string) {
	s.client.Delete(s.key(bucket, id, key))
}

// Clear drops every entry of id within bucket.
func (s *SturdycIDStore) Clear(bucket, id string) {
	s.deleteByPrefix(s.key(bucket, id, ""))
}

// ClearAll drops every entry.
func (s *SturdycIDStore) ClearAll() {
	s.deleteAll()
}
