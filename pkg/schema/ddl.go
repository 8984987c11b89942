package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// TaxonAuthor DDL methods
func (ta TaxonAuthor) TableDDL() string {
	return generateDDL(ta, "taxon_author")
}

func (ta TaxonAuthor) IndexDDL() []string {
	return []string{}
}

func (ta TaxonAuthor) TableName() string {
	return "taxon_author"
}

// TaxonCategory DDL methods
func (tc TaxonCategory) TableDDL() string {
	return generateDDL(tc, "taxon_category")
}

func (tc TaxonCategory) IndexDDL() []string {
	return []string{}
}

func (tc TaxonCategory) TableName() string {
	return "taxon_category"
}

// TaxonFamily DDL methods
func (tf TaxonFamily) TableDDL() string {
	return generateDDL(tf, "taxon_family")
}

func (tf TaxonFamily) IndexDDL() []string {
	return []string{}
}

func (tf TaxonFamily) TableName() string {
	return "taxon_family"
}

// TaxonHabit DDL methods
func (th TaxonHabit) TableDDL() string {
	return generateDDL(th, "taxon_habit")
}

func (th TaxonHabit) IndexDDL() []string {
	return []string{}
}

func (th TaxonHabit) TableName() string {
	return "taxon_habit"
}

// TaxonStatus DDL methods
func (ts TaxonStatus) TableDDL() string {
	return generateDDL(ts, "taxon_status")
}

func (ts TaxonStatus) IndexDDL() []string {
	return []string{}
}

func (ts TaxonStatus) TableName() string {
	return "taxon_status"
}

// TaxonLevel DDL methods
func (tl TaxonLevel) TableDDL() string {
	return generateDDL(tl, "taxon_level")
}

func (tl TaxonLevel) IndexDDL() []string {
	return []string{}
}

func (tl TaxonLevel) TableName() string {
	return "taxon_level"
}

// TaxonSource DDL methods
func (ts TaxonSource) TableDDL() string {
	return generateDDL(ts, "taxon_source")
}

func (ts TaxonSource) IndexDDL() []string {
	return []string{}
}

func (ts TaxonSource) TableName() string {
	return "taxon_source"
}

// TaxonHierarchy DDL methods
func (th TaxonHierarchy) TableDDL() string {
	return generateDDL(th, "taxon_hierarchy")
}

func (th TaxonHierarchy) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_taxon_hierarchy_family ON taxon_hierarchy(taxon_family_id);",
	}
}

func (th TaxonHierarchy) TableName() string {
	return "taxon_hierarchy"
}

// TaxonAccepted DDL methods
func (ta TaxonAccepted) TableDDL() string {
	return generateDDL(ta, "taxon_accepted")
}

func (ta TaxonAccepted) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_taxon_accepted_genus ON taxon_accepted(genus_code);",
	}
}

func (ta TaxonAccepted) TableName() string {
	return "taxon_accepted"
}

// TaxonAll DDL methods
func (ta TaxonAll) TableDDL() string {
	return generateDDL(ta, "taxon_all")
}

func (ta TaxonAll) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_taxon_all_name ON taxon_all(taxon_name);",
		"CREATE INDEX idx_taxon_all_accepted ON taxon_all(taxon_accepted_code);",
	}
}

func (ta TaxonAll) TableName() string {
	return "taxon_all"
}

// DictionaryTerm DDL methods
func (dt DictionaryTerm) TableDDL() string {
	return generateDDL(dt, "dictionary")
}

func (dt DictionaryTerm) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_dictionary_domain_id ON dictionary(dictionary_domain, dictionary_id);",
		"CREATE UNIQUE INDEX idx_dictionary_domain_label ON dictionary(dictionary_domain, dictionary_label);",
	}
}

func (dt DictionaryTerm) TableName() string {
	return "dictionary"
}

// Project DDL methods
func (p Project) TableDDL() string {
	return generateDDL(p, "project")
}

func (p Project) IndexDDL() []string {
	return []string{}
}

func (p Project) TableName() string {
	return "project"
}

// Site DDL methods
func (s Site) TableDDL() string {
	return generateDDL(s, "site")
}

func (s Site) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_site_project ON site(establishing_project_code);",
	}
}

func (s Site) TableName() string {
	return "site"
}

// SiteVisit DDL methods
func (sv SiteVisit) TableDDL() string {
	return generateDDL(sv, "site_visit")
}

func (sv SiteVisit) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_site_visit_site ON site_visit(site_code);",
		"CREATE INDEX idx_site_visit_project ON site_visit(project_code);",
	}
}

func (sv SiteVisit) TableName() string {
	return "site_visit"
}

// VegetationCover DDL methods
func (vc VegetationCover) TableDDL() string {
	return generateDDL(vc, "vegetation_cover")
}

func (vc VegetationCover) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_vegetation_cover_visit ON vegetation_cover(site_visit_code);",
		"CREATE INDEX idx_vegetation_cover_taxon ON vegetation_cover(code_adjudicated);",
	}
}

func (vc VegetationCover) TableName() string {
	return "vegetation_cover"
}

// AbioticTopCover DDL methods
func (ac AbioticTopCover) TableDDL() string {
	return generateDDL(ac, "abiotic_top_cover")
}

func (ac AbioticTopCover) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_abiotic_top_cover_visit ON abiotic_top_cover(site_visit_code);",
	}
}

func (ac AbioticTopCover) TableName() string {
	return "abiotic_top_cover"
}

// WholeTussockCover DDL methods
func (wt WholeTussockCover) TableDDL() string {
	return generateDDL(wt, "whole_tussock_cover")
}

func (wt WholeTussockCover) IndexDDL() []string {
	return []string{}
}

func (wt WholeTussockCover) TableName() string {
	return "whole_tussock_cover"
}

// GroundCover DDL methods
func (gc GroundCover) TableDDL() string {
	return generateDDL(gc, "ground_cover")
}

func (gc GroundCover) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_ground_cover_visit ON ground_cover(site_visit_code);",
	}
}

func (gc GroundCover) TableName() string {
	return "ground_cover"
}

// StructuralGroupCover DDL methods
func (sg StructuralGroupCover) TableDDL() string {
	return generateDDL(sg, "structural_group_cover")
}

func (sg StructuralGroupCover) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_structural_group_cover_visit ON structural_group_cover(site_visit_code);",
	}
}

func (sg StructuralGroupCover) TableName() string {
	return "structural_group_cover"
}

// TreeStructure DDL methods
func (tr TreeStructure) TableDDL() string {
	return generateDDL(tr, "tree_structure")
}

func (tr TreeStructure) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_tree_structure_visit ON tree_structure(site_visit_code);",
	}
}

func (tr TreeStructure) TableName() string {
	return "tree_structure"
}

// ShrubStructure DDL methods
func (sh ShrubStructure) TableDDL() string {
	return generateDDL(sh, "shrub_structure")
}

func (sh ShrubStructure) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_shrub_structure_visit ON shrub_structure(site_visit_code);",
	}
}

func (sh ShrubStructure) TableName() string {
	return "shrub_structure"
}

// Environment DDL methods
func (e Environment) TableDDL() string {
	return generateDDL(e, "environment")
}

func (e Environment) IndexDDL() []string {
	return []string{}
}

func (e Environment) TableName() string {
	return "environment"
}

// SoilMetrics DDL methods
func (sm SoilMetrics) TableDDL() string {
	return generateDDL(sm, "soil_metrics")
}

func (sm SoilMetrics) IndexDDL() []string {
	return []string{}
}

func (sm SoilMetrics) TableName() string {
	return "soil_metrics"
}

// SoilHorizons DDL methods
func (sh SoilHorizons) TableDDL() string {
	return generateDDL(sh, "soil_horizons")
}

func (sh SoilHorizons) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_soil_horizons_visit ON soil_horizons(site_visit_code);",
	}
}

func (sh SoilHorizons) TableName() string {
	return "soil_horizons"
}
