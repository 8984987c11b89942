package taxa

import (
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)

// CleanString removes non-standard spaces, collapses consecutive
// spaces, and trims leading and trailing whitespace. Applied to every
// string column of the checklist and of incoming survey data.
func CleanString(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeName prepares a recorded plant name for lookup against the
// checklist. Besides whitespace cleanup it rewrites the rank marker
// "subsp." to the checklist's form "ssp.". Normalization is
// idempotent.
func NormalizeName(name string) string {
	name = CleanString(name)
	name = strings.ReplaceAll(name, " subsp. ", " ssp. ")
	return name
}
