// Package config provides configuration management for avdb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Load.DatasetIDs, OutputDir, DryRun, AcceptProblems (per-command)
//   - Taxa.ChecklistFile, DictionaryFile (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use AVDB_ prefix with underscores for nesting:
//
//	AVDB_DATABASE_HOST=localhost
//	AVDB_DATABASE_PORT=5432
//	AVDB_LOG_LEVEL=info
//	AVDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete avdb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Load contains settings specific to the load and check commands.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	// Taxa contains settings specific to the taxa command.
	Taxa TaxaConfig `mapstructure:"taxa" yaml:"taxa"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations such as per-dataset reads and name parsing.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of rows per multi-row INSERT during
	// bulk load. The loader additionally caps batches so the number of
	// bound parameters stays under the PostgreSQL limit of 65535.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LoadConfig contains settings specific to the load and check commands.
type LoadConfig struct {
	// DatasetIDs is the list of dataset IDs to process.
	// Empty slice means process all datasets from datasets.yaml.
	DatasetIDs []int `mapstructure:"dataset_ids" yaml:"dataset_ids"`

	// OutputDir is where normalized per-entity CSV files and the problem
	// list artifact are written. Defaults to the cache directory.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// DryRun skips the database phase entirely: datasets are read,
	// resolved and validated, artifacts are written, nothing is inserted.
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`

	// AcceptProblems allows the database phase to proceed with a
	// non-empty problem list. Rows with unresolved names are still
	// withheld from the batch; the run is marked not release-ready.
	AcceptProblems bool `mapstructure:"accept_problems" yaml:"accept_problems"`
}

// TaxaConfig contains settings specific to the taxa command.
type TaxaConfig struct {
	// ChecklistFile is the curated taxonomy checklist CSV.
	ChecklistFile string `mapstructure:"checklist_file" yaml:"checklist_file"`

	// DictionaryFile is the curated controlled-vocabulary dictionary CSV.
	DictionaryFile string `mapstructure:"dictionary_file" yaml:"dictionary_file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "akveg",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
