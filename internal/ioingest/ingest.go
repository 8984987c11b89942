package ioingest

import (
	"context"
	"time"

	"github.com/accs-uaa/avdb/pkg/datasets"
	"github.com/accs-uaa/avdb/pkg/plot"
	"github.com/accs-uaa/avdb/pkg/taxa"
)

// entityTables lists the per-dataset tables in the order they load.
var entityTables = []string{
	"project",
	"site",
	"site_visit",
	"vegetation_cover",
	"abiotic_top_cover",
	"whole_tussock_cover",
	"ground_cover",
	"structural_group_cover",
	"tree_structure",
	"shrub_structure",
	"environment",
	"soil_metrics",
	"soil_horizons",
}

// requiredTables must exist in every dataset; observation tables are
// optional because not every project recorded every protocol.
var requiredTables = map[string]bool{
	"project":    true,
	"site":       true,
	"site_visit": true,
}

// dateLayouts are the observation date spellings seen across source
// generations.
var dateLayouts = []string{"2006-01-02", "1/2/2006", "20060102"}

// Data is one fully read dataset, canonicalized and whitespace
// cleaned, with visit codes verified.
type Data struct {
	Dataset   datasets.Dataset
	Tables    map[string][]Row
	Overrides *taxa.Overrides
}

// ReadDataset reads all entity tables of one dataset. Column names
// map onto the current schema, every value gets whitespace cleanup,
// and site visit codes are derived or verified against site code and
// observation date.
func ReadDataset(
	ctx context.Context, ds datasets.Dataset,
) (*Data, error) {
	reader, err := newTableReader(ds.Parent)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data := &Data{
		Dataset: ds,
		Tables:  make(map[string][]Row, len(entityTables)),
	}

	for _, table := range entityTables {
		rows, ok, err := reader.ReadTable(ctx, table)
		if err != nil {
			return nil, err
		}
		if !ok {
			if requiredTables[table] {
				return nil, TableReadError(
					table, ds.Parent, errMissingTable)
			}
			continue
		}

		cleaned := make([]Row, len(rows))
		for i, row := range rows {
			cleaned[i] = cleanValues(canonicalRow(ds, table, row))
		}
		data.Tables[table] = cleaned
	}

	if err := verifyVisits(data); err != nil {
		return nil, err
	}

	ov, err := loadOverrides(ds.Overrides)
	if err != nil {
		return nil, err
	}
	data.Overrides = ov

	return data, nil
}

// cleanValues applies whitespace cleanup to every value of a row.
func cleanValues(row Row) Row {
	for col, val := range row {
		row[col] = taxa.CleanString(val)
	}
	return row
}

// ParseDate parses an observation date in any known source spelling.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// verifyVisits derives missing site visit codes from site code and
// observation date, rejects codes that contradict those fields, and
// ensures every observation row references a known visit.
func verifyVisits(data *Data) error {
	known := make(map[string]bool)

	for i, row := range data.Tables["site_visit"] {
		date, ok := ParseDate(row["observe_date"])
		if !ok {
			return VisitMismatchError(
				"site_visit", row["site_visit_code"],
				"unparseable observe_date "+row["observe_date"])
		}

		expected := plot.SiteVisitCode(row["site_code"], date)
		switch row["site_visit_code"] {
		case "":
			data.Tables["site_visit"][i]["site_visit_code"] = expected
		case expected:
		default:
			return VisitMismatchError(
				"site_visit", row["site_visit_code"],
				"expected "+expected)
		}
		known[expected] = true
	}

	for _, table := range entityTables {
		if requiredTables[table] || table == "project" {
			continue
		}
		for _, row := range data.Tables[table] {
			code := row["site_visit_code"]
			if !known[code] {
				return VisitMismatchError(
					table, code, "visit not in site_visit table")
			}
		}
	}

	return nil
}
