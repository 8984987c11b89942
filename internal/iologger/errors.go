package iologger

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError creates an error for log file creation failures.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot create log file

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Use 'stderr' or 'stdout' log destination instead`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create log file: %w", err),
	}
}
