package iotaxa

import (
	"errors"
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

var errNotConnected = errors.New("not connected to database")

// ChecklistReadError creates an error for checklist or dictionary
// source file read failures.
func ChecklistReadError(path string, err error) error {
	msg := `Cannot read taxonomy source file

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check the checklist and dictionary paths in config.yaml
  2. Check the file exists and is valid CSV`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.TaxaChecklistReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read %s: %w", path, err),
	}
}

// RegistryFileError creates an error for registry file access
// failures.
func RegistryFileError(path string, err error) error {
	msg := `Cannot access the key registry file

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check permissions of the config directory
  2. Restore the registry file from version control if damaged`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.RegistryReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("registry file %s: %w", path, err),
	}
}

// InsertError creates an error for taxonomy table write failures.
func InsertError(table string, err error) error {
	msg := `Cannot write taxonomy table <em>%s</em>

The transaction rolls back; no partial taxonomy remains.

<em>How to fix:</em>
  1. Check the schema exists ('avdb schema')
  2. Check database logs for constraint details`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.TaxaInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write %s: %w", table, err),
	}
}
