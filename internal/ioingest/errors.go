package ioingest

import (
	"errors"
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

var errMissingTable = errors.New("table is missing")

// TableReadError creates an error for dataset table read failures.
func TableReadError(table, path string, err error) error {
	msg := `Cannot read dataset table <em>%s</em>

<em>Source:</em> %s

<em>How to fix:</em>
  1. Check the dataset parent path in datasets.yaml
  2. Check the table file exists and is readable`

	vars := []any{table, path}

	return &gn.Error{
		Code: errcode.IngestTableReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to read table %s from %s: %w", table, path, err),
	}
}

// OverridesError creates an error for override file failures.
func OverridesError(path string, err error) error {
	msg := `Cannot read dataset overrides

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check the overrides path in datasets.yaml
  2. Check the file is valid YAML with replace/exclude keys`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.IngestOverridesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read overrides %s: %w", path, err),
	}
}

// VisitMismatchError creates an error for site visit codes that
// contradict their site and date, or reference unknown visits.
func VisitMismatchError(table, code, detail string) error {
	msg := `Site visit code <em>%s</em> in table <em>%s</em> is inconsistent

<em>Detail:</em> %s

Visit codes are the site code joined to the observation date as
SITE_YYYYMMDD.

<em>How to fix:</em>
  1. Correct the visit code, site code, or date in the source table
  2. Ensure observation rows reference visits in site_visit`

	vars := []any{code, table, detail}

	return &gn.Error{
		Code: errcode.IngestVisitMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"visit code %q in %s: %s", code, table, detail),
	}
}
