package cache

import (
	"slices"
	"strings"
	"testing"
	"time"
)

// recordingSerializer wraps the default serializer and remembers every key it built.
type recordingSerializer struct {
	keys []string
}

func (r *recordingSerializer) SerializeKey(segments ...string) string {
	key := NewDefaultKeySerializer().SerializeKey(segments...)
	r.keys = append(r.keys, key)
	return key
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Backend != BackendMemory {
		t.Errorf("expected memory backend by default, got %q", cfg.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfig_ValidateSturdyc(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = BackendSturdyc
	cfg.TTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for zero TTL")
	}
	if !strings.Contains(err.Error(), "TTL") {
		t.Errorf("expected TTL in error message, got %q", err.Error())
	}
}

func TestConfig_MemoryIgnoresSturdycFields(t *testing.T) {
	cfg := Config{Backend: BackendMemory}

	if err := cfg.Validate(); err != nil {
		t.Errorf("memory backend should not require sturdyc fields: %v", err)
	}
}

func TestNewStore_UnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "redis"

	if _, err := NewStore(cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
	if _, err := NewIDStore(cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestConfig_RoundTripThroughInternal(t *testing.T) {
	cfg := Config{
		Backend:            BackendSturdyc,
		Capacity:           500,
		NumShards:          5,
		TTL:                time.Minute,
		EvictionPercentage: 20,
		EvictionInterval:   time.Second,
	}

	got := convertFromInternal(cfg.toInternal())
	if got != cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, cfg)
	}
}

func TestNewStoreWithSerializer_SturdycUsesSerializer(t *testing.T) {
	cfg := testConfigs()["sturdyc"]
	serializer := &recordingSerializer{}

	store, err := NewStoreWithSerializer(cfg, serializer)
	if err != nil {
		t.Fatalf("NewStoreWithSerializer() failed: %v", err)
	}
	idStore, err := NewIDStoreWithSerializer(cfg, serializer)
	if err != nil {
		t.Fatalf("NewIDStoreWithSerializer() failed: %v", err)
	}

	store.Set("dimension", "42", "minecraft:nether")
	idStore.Set("dynamicProperties", "42", "home", 1.0)

	for _, want := range []string{"dimension::42", "dynamicProperties::42::home"} {
		if !slices.Contains(serializer.keys, want) {
			t.Errorf("expected serializer to build %q, got %v", want, serializer.keys)
		}
	}
}

func TestNewStoreWithSerializer_MemoryIgnoresSerializer(t *testing.T) {
	serializer := &recordingSerializer{}

	store, err := NewStoreWithSerializer(DefaultConfig(), serializer)
	if err != nil {
		t.Fatalf("NewStoreWithSerializer() failed: %v", err)
	}
	store.Set("dimension", "42", "minecraft:nether")

	if len(serializer.keys) != 0 {
		t.Errorf("memory backend should not flatten keys, got %v", serializer.keys)
	}
}
