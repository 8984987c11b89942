package datasets

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ConfigError creates an error for invalid datasets.yaml content.
func ConfigError(detail string, err error) error {
	msg := `Datasets configuration is invalid

<em>Detail:</em> %s

<em>How to fix:</em>
  1. Edit datasets.yaml in the config directory
  2. Ensure IDs and codes are unique and generations are 1-3`

	vars := []any{detail}

	if err == nil {
		err = fmt.Errorf("invalid datasets config: %s", detail)
	} else {
		err = fmt.Errorf("invalid datasets config: %s: %w", detail, err)
	}

	return &gn.Error{
		Code: errcode.IngestDatasetsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  err,
	}
}

// NotFoundError creates an error for dataset IDs missing from
// datasets.yaml.
func NotFoundError(id int) error {
	msg := `Dataset <em>%d</em> is not configured

<em>How to fix:</em>
  1. List configured datasets with their IDs in datasets.yaml
  2. Add the dataset entry if it is new`

	vars := []any{id}

	return &gn.Error{
		Code: errcode.IngestDatasetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("dataset %d not configured", id),
	}
}
