package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureYAML loads YAML test data from a fixture file and unmarshals it.
func LoadFixtureYAML(t *testing.T, path string, dest any) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := yaml.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal YAML fixture from %s: %v", path, err)
	}
}

// TempFile writes content to a file in a per-test temporary directory and
// returns its path. The file is removed when the test ends.
func TempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", path, err)
	}

	return path
}

// FixturePath constructs a path to a fixture file relative to the testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}
