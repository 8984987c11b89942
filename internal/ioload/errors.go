package ioload

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// TableError creates an error for destination table read or write
// failures.
func TableError(table string, err error) error {
	msg := `Database operation on table <em>%s</em> failed

The load transaction rolls back; no partial data remains.

<em>How to fix:</em>
  1. Check the schema exists ('avdb schema')
  2. Check database logs for constraint details`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.LoadTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s: %w", table, err),
	}
}

// TransactionError creates an error for load transaction failures.
func TransactionError(err error) error {
	msg := `Load transaction failed

<em>How to fix:</em>
  1. Check the database connection
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.LoadTransactionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("load transaction: %w", err),
	}
}

// EmptyTaxonomyError creates an error for loads attempted before the
// taxonomy was built.
func EmptyTaxonomyError() error {
	msg := `Taxonomy tables are empty

Survey data cannot load before the taxonomy exists.

<em>How to fix:</em>
  1. Create the schema: avdb schema
  2. Build the taxonomy: avdb taxa
  3. Retry the load`

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("taxonomy tables are empty"),
	}
}

// ArtifactError creates an error for CSV artifact write failures.
func ArtifactError(path string, err error) error {
	msg := `Cannot write output artifact

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check the output directory setting
  2. Check permissions and disk space`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.LoadArtifactError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("artifact %s: %w", path, err),
	}
}

// ProblemsError creates an error for runs with validation problems
// that were not accepted.
func ProblemsError(failed int, artifact string) error {
	msg := `<em>%d</em> dataset(s) failed validation

Problem list: %s

No data loaded. Fix the sources, extend the checklist or overrides,
or rerun with --accept-problems to load the passing datasets only.`

	vars := []any{failed, artifact}

	return &gn.Error{
		Code: errcode.LoadAllDatasetsFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d datasets failed validation", failed),
	}
}

// FatalProblemsError creates an error for runs with vocabulary,
// range, date, or coordinate violations. These point at corrupt
// source data and cannot be waived with --accept-problems.
func FatalProblemsError(hard int, artifact string) error {
	msg := `<em>%d</em> record(s) violate vocabulary, range, or bounds rules

Problem list: %s

No data loaded. These violations indicate corrupt source data and
cannot be waived; fix the sources and rerun.`

	vars := []any{hard, artifact}

	return &gn.Error{
		Code: errcode.LoadFatalProblemsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d fatal validation problems", hard),
	}
}

// AllDatasetsFailedError creates an error for runs in which no
// dataset survived validation.
func AllDatasetsFailedError(artifact string) error {
	msg := `Every dataset failed validation

Problem list: %s

<em>How to fix:</em>
  1. Work through the problem list
  2. Extend the checklist or the dataset overrides
  3. Rerun the load`

	vars := []any{artifact}

	return &gn.Error{
		Code: errcode.LoadAllDatasetsFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("all datasets failed validation"),
	}
}
