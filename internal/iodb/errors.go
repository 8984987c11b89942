package iodb

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError creates an error for database connection failures.
func ConnectionError(
	host string, port int, database, user string, err error,
) error {
	msg := `Cannot connect to PostgreSQL database

<em>Connection details:</em>
  Host:     %s
  Port:     %d
  Database: %s
  User:     %s

<em>Possible causes:</em>
  - PostgreSQL server is not running
  - Wrong host, port, or credentials
  - Database does not exist
  - Network or firewall issue

<em>How to fix:</em>
  1. Verify PostgreSQL is running
  2. Check connection settings in config.yaml or AVDB_DATABASE_* variables
  3. Create the database if missing: createdb %s`

	vars := []any{host, port, database, user, database}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to connect to database: %w", err),
	}
}

// NotConnectedError creates an error for operations attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError creates an error for table existence check failures.
func TableExistsCheckError(tableName string, err error) error {
	msg := `Failed to check if table <em>%s</em> exists`
	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to check table existence: %w", err),
	}
}

// TableCheckError creates an error for schema table check failures.
func TableCheckError(err error) error {
	msg := "Failed to check database tables"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to check tables: %w", err),
	}
}

// QueryTablesError creates an error for table listing failures.
func QueryTablesError(err error) error {
	msg := "Failed to query table names"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// ScanTableError creates an error for table name scan failures.
func ScanTableError(err error) error {
	msg := "Failed to read table name"

	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

// DropTableError creates an error for table drop failures.
func DropTableError(table string, err error) error {
	msg := `Failed to drop table <em>%s</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
