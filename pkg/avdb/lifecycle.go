// Package avdb defines the lifecycle contracts of the vegetation plot
// database. Implementations live in internal/io* packages.
package avdb

import (
	"context"

	"github.com/accs-uaa/avdb/pkg/config"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent, safe to run multiple
// times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM AutoMigrate.
	// Also applies collation settings for correct scientific name
	// sorting. If tables already exist, behavior depends on user
	// confirmation via DropAllTables.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the database schema to the latest version using
	// GORM AutoMigrate. GORM handles schema version tracking
	// automatically.
	Migrate(ctx context.Context, cfg *config.Config) error
}

// TaxaBuilder defines the interface for building the taxonomy release
// from the comprehensive checklist and loading it into the database.
type TaxaBuilder interface {
	// Build reads the checklist and dictionary source files, constructs
	// the taxon concept store, verifies its invariants, and replaces
	// the taxonomy and dictionary tables in the database.
	Build(ctx context.Context, cfg *config.Config) error
}

// Loader defines the interface for ingesting survey datasets and
// loading them into the database.
type Loader interface {
	// Load ingests the configured datasets, resolves taxon names,
	// normalizes vocabularies, validates records, and writes all
	// destination tables in one transaction. With DryRun set it stops
	// after validation and writes CSV artifacts only.
	Load(ctx context.Context, cfg *config.Config) error

	// Check runs ingestion and validation without touching the
	// database, reporting problems as CSV artifacts.
	Check(ctx context.Context, cfg *config.Config) error
}
