// Package vocab normalizes controlled vocabulary values and numeric
// measurements of incoming survey data. This is a pure package.
//
// Missing values follow one policy for the whole pipeline: text
// columns carry the sentinel "NULL", numeric columns carry -999.
// Sentinels bypass range validation; everything else must either
// match a dictionary term or fall inside the column's declared range.
package vocab

import (
	"strconv"
	"strings"

	"github.com/accs-uaa/avdb/pkg/taxa"
)

// Policy defines the no-data sentinels of the pipeline.
type Policy struct {
	TextSentinel    string
	NumericSentinel float64
}

// DefaultPolicy matches the conventions of the plot database.
var DefaultPolicy = Policy{
	TextSentinel:    "NULL",
	NumericSentinel: -999,
}

// noDataTokens are source spellings that all mean "no data".
// Comparison is case-insensitive after whitespace cleanup.
var noDataTokens = map[string]bool{
	"":     true,
	"null": true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"-999": true,
}

// Range constrains a numeric measurement column. Min and Max are
// inclusive.
type Range struct {
	Min, Max float64
}

// Ranges declares valid intervals for numeric measurement columns.
// The numeric sentinel bypasses these.
var Ranges = map[string]Range{
	"cover_percent":                 {0, 100},
	"abiotic_top_cover_percent":     {0, 100},
	"tussock_percent":               {0, 100},
	"ground_cover_percent":          {0, 100},
	"structural_cover_percent":      {0, 100},
	"tree_cover_percent":            {0, 100},
	"shrub_cover_percent":           {0, 100},
	"clay_percent":                  {0, 100},
	"total_coarse_fragment_percent": {0, 100},
	"height_m":                      {0, 60},
	"height_cm":                     {0, 1500},
	"diameter_base_cm":              {0, 500},
	"mean_diameter_cm":              {0, 1500},
	"number_stems":                  {0, 5000},
	"depth_water_cm":                {-300, 300},
	"depth_moss_duff_cm":            {0, 300},
	"depth_restrictive_layer_cm":    {0, 1000},
	"measure_depth_cm":              {0, 300},
	"thickness_cm":                  {0, 1000},
	"depth_upper_cm":                {0, 1000},
	"depth_lower_cm":                {0, 1000},
	"ph":                            {0, 14},
	"conductivity_mus":              {0, 100000},
	"temperature_deg_c":             {-40, 45},
	"year_start":                    {1900, 2100},
	"year_end":                      {1900, 2100},
	"horizon_order":                 {1, 30},
}

// Normalizer validates text values against dictionary domains and
// numeric values against declared ranges.
type Normalizer struct {
	policy  Policy
	domains map[string]map[string]string
}

// NewNormalizer creates a normalizer over dictionary terms, keyed by
// domain. Matching is case-insensitive; the stored term spelling is
// what comes back.
func NewNormalizer(
	policy Policy,
	domains map[string][]string,
) *Normalizer {
	n := &Normalizer{
		policy:  policy,
		domains: make(map[string]map[string]string, len(domains)),
	}
	for domain, terms := range domains {
		m := make(map[string]string, len(terms))
		for _, term := range terms {
			m[strings.ToLower(taxa.CleanString(term))] = term
		}
		n.domains[domain] = m
	}
	return n
}

// Policy returns the no-data policy of the normalizer.
func (n *Normalizer) Policy() Policy {
	return n.policy
}

// HasDomain reports whether a dictionary domain is known.
func (n *Normalizer) HasDomain(domain string) bool {
	_, ok := n.domains[domain]
	return ok
}

// Text validates a raw value against a dictionary domain. No-data
// spellings collapse to the text sentinel. An unknown value is a hard
// error, never a silent pass-through.
func (n *Normalizer) Text(domain, raw string) (string, error) {
	terms, ok := n.domains[domain]
	if !ok {
		return "", UnknownDomainError(domain)
	}

	cleaned := taxa.CleanString(raw)
	if isNoData(cleaned) {
		return n.policy.TextSentinel, nil
	}

	term, ok := terms[strings.ToLower(cleaned)]
	if !ok {
		return "", UnknownValueError(domain, cleaned)
	}
	return term, nil
}

// Numeric parses and validates a raw numeric value for a measurement
// column. No-data spellings collapse to the numeric sentinel, which
// bypasses range validation. Out-of-range values are hard errors.
func (n *Normalizer) Numeric(column, raw string) (float64, error) {
	cleaned := taxa.CleanString(raw)
	if isNoData(cleaned) {
		return n.policy.NumericSentinel, nil
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, RangeError(column, cleaned)
	}

	if val == n.policy.NumericSentinel {
		return val, nil
	}

	if r, ok := Ranges[column]; ok {
		if val < r.Min || val > r.Max {
			return 0, RangeError(column, cleaned)
		}
	}
	return val, nil
}

func isNoData(cleaned string) bool {
	return noDataTokens[strings.ToLower(cleaned)]
}
