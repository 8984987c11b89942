package registry

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ParseError creates an error for registry deserialization failures.
func ParseError(err error) error {
	msg := `Cannot parse key registry

<em>Possible causes:</em>
  - Registry file was edited by hand and is no longer valid YAML
  - Registry file is truncated

<em>How to fix:</em>
  1. Restore the registry file from version control
  2. If no registry existed before, remove the corrupt file`

	return &gn.Error{
		Code: errcode.RegistryReadError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to parse registry: %w", err),
	}
}

// SerializeError creates an error for registry serialization failures.
func SerializeError(err error) error {
	msg := "Cannot serialize key registry"

	return &gn.Error{
		Code: errcode.RegistryWriteError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to serialize registry: %w", err),
	}
}
