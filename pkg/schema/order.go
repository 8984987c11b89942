package schema

// WriteOrder lists destination tables in foreign key dependency order.
// The loader inserts tables in exactly this order so that referenced
// rows always exist before the rows that point at them.
func WriteOrder() []string {
	return []string{
		"dictionary",
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
}

// TaxonomyWriteOrder lists taxonomy tables in foreign key dependency
// order. Taxonomy loads separately from plot data, before any dataset
// references taxon codes.
func TaxonomyWriteOrder() []string {
	return []string{
		"taxon_author",
		"taxon_category",
		"taxon_family",
		"taxon_habit",
		"taxon_status",
		"taxon_level",
		"taxon_source",
		"taxon_hierarchy",
		"taxon_accepted",
		"taxon_all",
	}
}
