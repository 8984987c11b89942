package taxa

import (
	"sort"
	"strconv"
	"strings"
)

// ManualReviewCode marks infraspecies code collisions that the
// generation rules cannot disambiguate. The store build fails when it
// appears; the checklist must assign those codes by hand.
const ManualReviewCode = "MANUAL_REVIEW"

// baseCode generates a taxon short code from a scientific name.
// The name splits into at most four tokens: genus, species, infratype
// (rank marker), and infraspecies.
//
//	genus only:   first 6 characters of the genus
//	binomial:     genus[0:3] + species[0:3]
//	infraspecies: genus[0:3] + species[0:3] + infratype[0:1] + infraspecies[0:3]
//
// A trinomial with a rank marker but no infraspecies epithet falls
// back to the binomial form.
func baseCode(name string) string {
	parts := strings.SplitN(strings.ToLower(name), " ", 4)

	if len(parts) == 1 {
		return sliceStr(parts[0], 6)
	}

	code := sliceStr(parts[0], 3) + sliceStr(parts[1], 3)
	if len(parts) == 4 {
		code += sliceStr(parts[2], 1) + sliceStr(parts[3], 3)
	}
	return code
}

func sliceStr(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// assignCodes generates short codes for all rows, resolving
// collisions. Rows are processed in name order. Every member of a
// collision group at genus or species level gets a sequential counter
// appended, the first member included. Infraspecies collisions get the
// manual review placeholder because no counter rule is defined for
// them.
func assignCodes(names []string) map[string]string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	groups := make(map[string][]string)
	for _, name := range sorted {
		code := baseCode(name)
		groups[code] = append(groups[code], name)
	}

	codes := make(map[string]string, len(names))
	for code, members := range groups {
		if len(members) == 1 {
			codes[members[0]] = code
			continue
		}
		for i, name := range members {
			if len(code) <= 6 {
				codes[name] = code + strconv.Itoa(i+1)
			} else {
				codes[name] = ManualReviewCode
			}
		}
	}
	return codes
}
