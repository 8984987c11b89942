package ioload

// colKind tells the processor how to turn a source value into a
// database value.
type colKind int

const (
	// kindText passes the cleaned string through, with the text
	// sentinel for missing values.
	kindText colKind = iota

	// kindDict validates the value against a dictionary domain and
	// stores the term's dictionary key. Missing values store key 0.
	kindDict

	// kindNumeric validates the value against the column's range and
	// stores the number, with the numeric sentinel for missing values.
	kindNumeric

	// kindInt is kindNumeric stored as an integer column.
	kindInt

	// kindBool parses truthy source spellings; missing means false.
	kindBool

	// kindDate parses an observation date.
	kindDate

	// kindTaxon resolves a recorded name to its adjudicated taxon
	// code.
	kindTaxon
)

// colSpec maps one destination column to its source column and
// processing rule.
type colSpec struct {
	// column is the destination column name.
	column string

	// source is the source column; dictionary columns read the bare
	// term column (the destination holds the key).
	source string

	kind colKind

	// domain is the dictionary domain for kindDict columns.
	domain string
}

// tableSpecs drive the generic processing of every destination table
// except vegetation_cover, which needs duplicate merging and has its
// own path.
var tableSpecs = map[string][]colSpec{
	"project": {
		{column: "project_code", source: "project_code", kind: kindText},
		{column: "project_name", source: "project_name", kind: kindText},
		{column: "originator", source: "originator", kind: kindText},
		{column: "funder", source: "funder", kind: kindText},
		{column: "manager", source: "manager", kind: kindText},
		{column: "year_start", source: "year_start", kind: kindInt},
		{column: "year_end", source: "year_end", kind: kindInt},
	},
	"site": {
		{column: "site_code", source: "site_code", kind: kindText},
		{column: "establishing_project_code", source: "establishing_project_code", kind: kindText},
		{column: "perspective_id", source: "perspective", kind: kindDict, domain: "perspective"},
		{column: "cover_method_id", source: "cover_method", kind: kindDict, domain: "cover_method"},
		{column: "latitude_dd", source: "latitude_dd", kind: kindNumeric},
		{column: "longitude_dd", source: "longitude_dd", kind: kindNumeric},
		{column: "h_datum_id", source: "h_datum", kind: kindDict, domain: "h_datum"},
		{column: "location_type_id", source: "location_type", kind: kindDict, domain: "location_type"},
		{column: "plot_dimensions_id", source: "plot_dimensions", kind: kindDict, domain: "plot_dimensions"},
	},
	"site_visit": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "project_code", source: "project_code", kind: kindText},
		{column: "site_code", source: "site_code", kind: kindText},
		{column: "observe_date", source: "observe_date", kind: kindDate},
		{column: "veg_observer", source: "veg_observer", kind: kindText},
		{column: "veg_recorder", source: "veg_recorder", kind: kindText},
		{column: "env_observer", source: "env_observer", kind: kindText},
		{column: "soils_observer", source: "soils_observer", kind: kindText},
		{column: "structural_class_id", source: "structural_class", kind: kindDict, domain: "structural_class"},
		{column: "scope_vascular_id", source: "scope_vascular", kind: kindDict, domain: "scope"},
		{column: "scope_bryophyte_id", source: "scope_bryophyte", kind: kindDict, domain: "scope"},
		{column: "scope_lichen_id", source: "scope_lichen", kind: kindDict, domain: "scope"},
	},
	"abiotic_top_cover": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "abiotic_element_id", source: "abiotic_element", kind: kindDict, domain: "ground_element"},
		{column: "abiotic_top_cover_percent", source: "abiotic_top_cover_percent", kind: kindNumeric},
	},
	"whole_tussock_cover": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "cover_type_id", source: "cover_type", kind: kindDict, domain: "cover_type"},
		{column: "tussock_percent", source: "tussock_percent", kind: kindNumeric},
	},
	"ground_cover": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "ground_element_id", source: "ground_element", kind: kindDict, domain: "ground_element"},
		{column: "ground_cover_percent", source: "ground_cover_percent", kind: kindNumeric},
	},
	"structural_group_cover": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "structural_group_id", source: "structural_group", kind: kindDict, domain: "structural_group"},
		{column: "cover_type_id", source: "cover_type", kind: kindDict, domain: "cover_type"},
		{column: "structural_cover_percent", source: "structural_cover_percent", kind: kindNumeric},
	},
	"tree_structure": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "code_adjudicated", source: "name_original", kind: kindTaxon},
		{column: "crown_class_id", source: "crown_class", kind: kindDict, domain: "crown_class"},
		{column: "height_m", source: "height_m", kind: kindNumeric},
		{column: "diameter_base_cm", source: "diameter_base_cm", kind: kindNumeric},
		{column: "number_stems", source: "number_stems", kind: kindInt},
		{column: "tree_cover_percent", source: "tree_cover_percent", kind: kindNumeric},
	},
	"shrub_structure": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "code_adjudicated", source: "name_original", kind: kindTaxon},
		{column: "shrub_class_id", source: "shrub_class", kind: kindDict, domain: "shrub_class"},
		{column: "height_cm", source: "height_cm", kind: kindNumeric},
		{column: "mean_diameter_cm", source: "mean_diameter_cm", kind: kindNumeric},
		{column: "number_stems", source: "number_stems", kind: kindInt},
		{column: "shrub_cover_percent", source: "shrub_cover_percent", kind: kindNumeric},
	},
	"environment": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "physiography_id", source: "physiography", kind: kindDict, domain: "physiography"},
		{column: "geomorphology_id", source: "geomorphology", kind: kindDict, domain: "geomorphology"},
		{column: "macrotopography_id", source: "macrotopography", kind: kindDict, domain: "macrotopography"},
		{column: "microtopography_id", source: "microtopography", kind: kindDict, domain: "microtopography"},
		{column: "moisture_id", source: "moisture", kind: kindDict, domain: "moisture"},
		{column: "drainage_id", source: "drainage", kind: kindDict, domain: "drainage"},
		{column: "disturbance_id", source: "disturbance", kind: kindDict, domain: "disturbance"},
		{column: "depth_water_cm", source: "depth_water_cm", kind: kindNumeric},
		{column: "depth_moss_duff_cm", source: "depth_moss_duff_cm", kind: kindNumeric},
		{column: "depth_restrictive_layer_cm", source: "depth_restrictive_layer_cm", kind: kindNumeric},
		{column: "surface_water", source: "surface_water", kind: kindBool},
	},
	"soil_metrics": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "water_measurement", source: "water_measurement", kind: kindBool},
		{column: "measure_depth_cm", source: "measure_depth_cm", kind: kindNumeric},
		{column: "ph", source: "ph", kind: kindNumeric},
		{column: "conductivity_mus", source: "conductivity_mus", kind: kindNumeric},
		{column: "temperature_deg_c", source: "temperature_deg_c", kind: kindNumeric},
	},
	"soil_horizons": {
		{column: "site_visit_code", source: "site_visit_code", kind: kindText},
		{column: "horizon_order", source: "horizon_order", kind: kindInt},
		{column: "thickness_cm", source: "thickness_cm", kind: kindNumeric},
		{column: "depth_upper_cm", source: "depth_upper_cm", kind: kindNumeric},
		{column: "depth_lower_cm", source: "depth_lower_cm", kind: kindNumeric},
		{column: "depth_extend", source: "depth_extend", kind: kindBool},
		{column: "horizon_primary_id", source: "horizon_primary", kind: kindDict, domain: "soil_horizon"},
		{column: "texture_id", source: "texture", kind: kindDict, domain: "soil_texture"},
		{column: "clay_percent", source: "clay_percent", kind: kindNumeric},
		{column: "total_coarse_fragment_percent", source: "total_coarse_fragment_percent", kind: kindNumeric},
	},
}

// coverColumns are the destination columns of vegetation_cover, which
// processes outside the generic specs.
var coverColumns = []string{
	"site_visit_code",
	"cover_type_id",
	"name_original",
	"dead_status",
	"code_adjudicated",
	"cover_percent",
}

// columnsOf returns the destination column list of a spec table.
func columnsOf(table string) []string {
	specs := tableSpecs[table]
	cols := make([]string, len(specs))
	for i, s := range specs {
		cols[i] = s.column
	}
	return cols
}
