package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Taxonomy build errors
	TaxaChecklistReadError
	TaxaChecklistFormatError
	TaxaDuplicateCodeError
	TaxaOrphanGenusError
	TaxaSynonymChainError
	TaxaInsertError

	// Registry errors
	RegistryReadError
	RegistryWriteError

	// Ingest errors
	IngestDatasetsConfigError
	IngestDatasetNotFoundError
	IngestTableReadError
	IngestOverridesError
	IngestVisitMismatchError

	// Vocabulary errors
	VocabUnknownDomainError
	VocabUnknownValueError
	VocabRangeError

	// Load errors
	LoadBoundsError
	LoadTableError
	LoadTransactionError
	LoadArtifactError
	LoadAllDatasetsFailedError
	LoadFatalProblemsError
)
