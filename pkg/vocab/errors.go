package vocab

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// UnknownDomainError creates an error for lookups against a
// dictionary domain that does not exist.
func UnknownDomainError(domain string) error {
	msg := `Dictionary domain <em>%s</em> does not exist

<em>How to fix:</em>
  1. Check the domain spelling in the dataset column mapping
  2. Add the domain to the dictionary source file if it is new`

	vars := []any{domain}

	return &gn.Error{
		Code: errcode.VocabUnknownDomainError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown dictionary domain %q", domain),
	}
}

// UnknownValueError creates an error for values missing from their
// dictionary domain.
func UnknownValueError(domain, value string) error {
	msg := `Value <em>%s</em> is not in dictionary domain <em>%s</em>

Unknown vocabulary values never pass through silently.

<em>How to fix:</em>
  1. Correct the value in the source dataset
  2. Or add the term to the dictionary and rebuild the taxonomy`

	vars := []any{value, domain}

	return &gn.Error{
		Code: errcode.VocabUnknownValueError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"value %q not in domain %q", value, domain),
	}
}

// RangeError creates an error for numeric values outside their
// declared measurement range.
func RangeError(column, value string) error {
	msg := `Value <em>%s</em> is invalid for column <em>%s</em>

<em>How to fix:</em>
  1. Correct the measurement in the source dataset
  2. Use -999 for a measurement that was not taken`

	vars := []any{value, column}

	return &gn.Error{
		Code: errcode.VocabRangeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"value %q out of range for %q", value, column),
	}
}
