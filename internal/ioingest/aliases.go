package ioingest

import "github.com/accs-uaa/avdb/pkg/datasets"

// Column aliases of older source schema generations, keyed by
// generation, table, and old column name. Generation 3 datasets
// already use current column names.
//
// The lists cover the renames that actually happened across the
// archived project deliverables; unknown columns pass through
// untouched and are ignored downstream.
var columnAliases = map[int]map[string]map[string]string{
	1: {
		"site": {
			"site_id":   "site_code",
			"latitude":  "latitude_dd",
			"longitude": "longitude_dd",
			"datum":     "h_datum",
		},
		"site_visit": {
			"site_id":      "site_code",
			"date":         "observe_date",
			"observer":     "veg_observer",
			"recorder":     "veg_recorder",
			"env_observer": "env_observer",
		},
		"vegetation_cover": {
			"species": "name_original",
			"cover":   "cover_percent",
			"dead":    "dead_status",
		},
		"environment": {
			"water_depth":     "depth_water_cm",
			"moss_duff_depth": "depth_moss_duff_cm",
		},
	},
	2: {
		"site": {
			"latitude":  "latitude_dd",
			"longitude": "longitude_dd",
		},
		"site_visit": {
			"observation_date": "observe_date",
		},
		"vegetation_cover": {
			"name_recorded": "name_original",
			"percent_cover": "cover_percent",
		},
	},
}

// canonicalRow maps the column names of a row onto the current
// schema, given a dataset's generation. Columns with no alias keep
// their names.
func canonicalRow(
	ds datasets.Dataset, table string, row Row,
) Row {
	aliases := columnAliases[ds.Generation][table]
	if len(aliases) == 0 {
		return row
	}

	res := make(Row, len(row))
	for col, val := range row {
		if canon, ok := aliases[col]; ok {
			col = canon
		}
		res[col] = val
	}
	return res
}
