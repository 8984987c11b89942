// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/accs-uaa/avdb/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "avdb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, points HomeDir at a throwaway directory, and
// overrides the database name to TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... use cfg for database operations
//	}
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(SetupTempHome(t)),
	})

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for
// tests that need a connection without the full Config struct.
func GetTestDatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()

	cfg := GetTestConfig(t)
	return &cfg.Database
}

// SetupTempHome creates a temporary home directory for a test, with the
// config, cache, and log subdirectories avdb expects. The directory is
// removed when the test finishes.
//
// This prevents tests from touching production files under ~/.config/avdb
// or ~/.cache/avdb. Tests that write datasets.yaml or registry.yaml
// should run against this home.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	dirs := []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return home
}

// WriteTempDatasetsYAML writes a datasets.yaml file into the config
// directory of a temporary home. Must be called after SetupTempHome().
//
// Usage:
//
//	home := iotesting.SetupTempHome(t)
//	iotesting.WriteTempDatasetsYAML(t, home, `
//	datasets:
//	  - id: 25
//	    code: 25_nps_swan_2024
//	    parent: /path/to/testdata
//	    generation: 3
//	`)
func WriteTempDatasetsYAML(t *testing.T, home, content string) {
	t.Helper()

	path := config.DatasetsFilePath(home)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write temp datasets.yaml: %v", err)
	}
}

// WriteTempRegistryYAML writes a registry.yaml file into the config
// directory of a temporary home. Must be called after SetupTempHome().
func WriteTempRegistryYAML(t *testing.T, home, content string) {
	t.Helper()

	path := config.RegistryFilePath(home)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write temp registry.yaml: %v", err)
	}
}

// WriteTempChecklistCSV writes a checklist CSV into the config directory
// of a temporary home and returns its path.
func WriteTempChecklistCSV(t *testing.T, home, content string) string {
	t.Helper()

	path := filepath.Join(config.ConfigDir(home), "checklist.csv")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write temp checklist.csv: %v", err)
	}
	return path
}
