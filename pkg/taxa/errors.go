package taxa

import (
	"fmt"
	"strings"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ChecklistFormatError creates an error for malformed checklist rows.
func ChecklistFormatError(detail string) error {
	msg := `Checklist data is malformed

<em>Detail:</em> %s

<em>How to fix:</em>
  1. Check the checklist source file for missing required columns
  2. Check for rows with empty taxon names`

	vars := []any{detail}

	return &gn.Error{
		Code: errcode.TaxaChecklistFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("malformed checklist: %s", detail),
	}
}

// DuplicateCodeError creates an error for infraspecies code
// collisions that need manual code assignment.
func DuplicateCodeError(names []string) error {
	msg := `Taxon code generation needs manual review

The following names produce colliding infraspecies codes:

%s

<em>How to fix:</em>
  1. Assign manual codes for these names in the checklist
  2. Rebuild the taxonomy`

	vars := []any{"  " + strings.Join(names, "\n  ")}

	return &gn.Error{
		Code: errcode.TaxaDuplicateCodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%d names need manual code review",
			len(names)),
	}
}

// SynonymChainError creates an error for synonym chains that do not
// terminate at an accepted concept.
func SynonymChainError(name, target string) error {
	msg := `Synonym chain for <em>%s</em> does not resolve

The accepted name pointer reaches <em>%s</em>, which is missing from
the checklist or forms a cycle.

<em>How to fix:</em>
  1. Check the accepted name spelling in the checklist
  2. Ensure the accepted concept itself is listed`

	vars := []any{name, target}

	return &gn.Error{
		Code: errcode.TaxaSynonymChainError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"synonym chain for %q fails at %q", name, target),
	}
}

// OrphanGenusError creates an error for accepted concepts whose genus
// is missing from the checklist.
func OrphanGenusError(name, genus string) error {
	msg := `Genus <em>%s</em> for taxon <em>%s</em> is missing from the checklist

Every accepted taxon must classify under a genus, unknown, or
functional group concept.

<em>How to fix:</em>
  1. Add the genus as its own checklist row
  2. Rebuild the taxonomy`

	vars := []any{genus, name}

	return &gn.Error{
		Code: errcode.TaxaOrphanGenusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("genus %q missing for taxon %q", genus, name),
	}
}
