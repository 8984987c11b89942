package iofs

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError creates an error for directory creation failures.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory

<em>Directory:</em> %s

<em>How to fix:</em>
  1. Check permissions of the parent directory
  2. Check available disk space`

	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create directory: %w", err),
	}
}

// CopyFileError creates an error for template file copy failures.
func CopyFileError(path string, err error) error {
	msg := `Cannot write default file

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check permissions of the config directory
  2. Remove a conflicting file with the same name`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write file: %w", err),
	}
}

// ReadFileError creates an error for file reading failures.
func ReadFileError(path string, err error) error {
	msg := `Cannot read file

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check the file exists
  2. Check the file permissions`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read file: %w", err),
	}
}
