package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFixture(t *testing.T) {
	testFile := TempFile(t, "test.txt", []byte("test fixture content"))

	result := LoadFixture(t, testFile)
	if string(result) != "test fixture content" {
		t.Errorf("expected %q, got %q", "test fixture content", result)
	}
}

func TestLoadFixtureYAML(t *testing.T) {
	testFile := TempFile(t, "cache.yaml", []byte("backend: sturdyc\ncapacity: 42\nshards:\n  - a\n  - b\n"))

	var result struct {
		Backend  string   `yaml:"backend"`
		Capacity int      `yaml:"capacity"`
		Shards   []string `yaml:"shards"`
	}
	LoadFixtureYAML(t, testFile, &result)

	if result.Backend != "sturdyc" {
		t.Errorf("expected backend=sturdyc, got %q", result.Backend)
	}
	if result.Capacity != 42 {
		t.Errorf("expected capacity=42, got %d", result.Capacity)
	}
	if len(result.Shards) != 2 {
		t.Errorf("expected 2 shards, got %v", result.Shards)
	}
}

func TestTempFile(t *testing.T) {
	tempPath := TempFile(t, "content.txt", []byte("temporary file content"))

	result, err := os.ReadFile(tempPath)
	if err != nil {
		t.Fatalf("failed to read temp file: %v", err)
	}
	if string(result) != "temporary file content" {
		t.Errorf("expected %q, got %q", "temporary file content", result)
	}
	if filepath.Base(tempPath) != "content.txt" {
		t.Errorf("expected file name content.txt, got %s", tempPath)
	}
}

func TestFixturePath(t *testing.T) {
	result := FixturePath("test.yaml")
	expected := filepath.Join("testdata", "test.yaml")

	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}
