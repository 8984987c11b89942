// Package schema provides database schema models for the vegetation plot
// database. Models carry db/ddl struct tags used both by GORM AutoMigrate
// and by the reflection-based DDL generator.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// TaxonAuthor is a constraint table of distinct taxon authorships.
type TaxonAuthor struct {
	ID     int    `db:"taxon_author_id" ddl:"SMALLINT PRIMARY KEY"`
	Author string `db:"taxon_author" ddl:"VARCHAR(120) UNIQUE NOT NULL"`
}

// TaxonCategory is a constraint table of higher-level plant categories
// (eudicot, fern, gymnosperm, horsetail, lycophyte, monocot, ...).
type TaxonCategory struct {
	ID       int    `db:"taxon_category_id" ddl:"SMALLINT PRIMARY KEY"`
	Category string `db:"taxon_category" ddl:"VARCHAR(30) UNIQUE NOT NULL"`
}

// TaxonFamily is a constraint table of plant families.
type TaxonFamily struct {
	ID     int    `db:"taxon_family_id" ddl:"SMALLINT PRIMARY KEY"`
	Family string `db:"taxon_family" ddl:"VARCHAR(50) UNIQUE NOT NULL"`
}

// TaxonHabit is a constraint table of growth habits.
type TaxonHabit struct {
	ID    int    `db:"taxon_habit_id" ddl:"SMALLINT PRIMARY KEY"`
	Habit string `db:"taxon_habit" ddl:"VARCHAR(50) UNIQUE NOT NULL"`
}

// TaxonStatus is a constraint table of taxonomic statuses
// (accepted, synonym, historical, ...).
type TaxonStatus struct {
	ID     int    `db:"taxon_status_id" ddl:"SMALLINT PRIMARY KEY"`
	Status string `db:"taxon_status" ddl:"VARCHAR(40) UNIQUE NOT NULL"`
}

// TaxonLevel is a constraint table of taxonomic levels
// (genus, hybrid, species, subspecies, variety, unknown, functional group).
type TaxonLevel struct {
	ID    int    `db:"taxon_level_id" ddl:"SMALLINT PRIMARY KEY"`
	Level string `db:"taxon_level" ddl:"VARCHAR(30) UNIQUE NOT NULL"`
}

// TaxonSource is a constraint table of taxonomy citation sources.
type TaxonSource struct {
	ID       int    `db:"taxon_source_id" ddl:"SMALLINT PRIMARY KEY"`
	Source   string `db:"taxon_source" ddl:"VARCHAR(120) UNIQUE NOT NULL"`
	Citation string `db:"taxon_citation" ddl:"TEXT"`
}

// TaxonHierarchy maps a genus-level taxon code to family and category.
// Taxa below genus rank classify through their genus code.
type TaxonHierarchy struct {
	GenusCode  string `db:"genus_code" ddl:"VARCHAR(20) PRIMARY KEY"`
	FamilyID   int    `db:"taxon_family_id" ddl:"SMALLINT NOT NULL REFERENCES taxon_family"`
	CategoryID int    `db:"taxon_category_id" ddl:"SMALLINT NOT NULL REFERENCES taxon_category"`
}

// TaxonAccepted stores one row per accepted taxon concept.
type TaxonAccepted struct {
	// AcceptedCode is the taxon short code of the accepted concept.
	AcceptedCode string `db:"taxon_accepted_code" ddl:"VARCHAR(20) PRIMARY KEY"`

	// GenusCode joins the accepted taxon to TaxonHierarchy.
	GenusCode string `db:"genus_code" ddl:"VARCHAR(20) NOT NULL REFERENCES taxon_hierarchy"`

	SourceID int `db:"taxon_source_id" ddl:"SMALLINT NOT NULL REFERENCES taxon_source"`

	// Link is the URL of the concept in the source checklist, if any.
	Link sql.NullString `db:"taxon_link" ddl:"VARCHAR(255)"`

	LevelID int `db:"taxon_level_id" ddl:"SMALLINT NOT NULL REFERENCES taxon_level"`
	HabitID int `db:"taxon_habit_id" ddl:"SMALLINT NOT NULL REFERENCES taxon_habit"`

	// Native and NonNative record occurrence status within the region.
	// Both can be true for taxa with mixed populations.
	Native    bool `db:"taxon_native" ddl:"BOOLEAN NOT NULL"`
	NonNative bool `db:"taxon_non_native" ddl:"BOOLEAN NOT NULL"`
}

// TaxonAll stores every known taxon name, accepted or not, with a
// one-hop pointer to its accepted concept.
type TaxonAll struct {
	// Code is the unique taxon short code.
	Code string `db:"taxon_code" ddl:"VARCHAR(20) PRIMARY KEY"`

	// Name is the scientific name without authorship.
	Name string `db:"taxon_name" ddl:"VARCHAR(120) UNIQUE NOT NULL"`

	AuthorID int `db:"taxon_author_id" ddl:"SMALLINT NOT NULL REFERENCES taxon_author"`
	StatusID int `db:"taxon_status_id" ddl:"SMALLINT NOT NULL REFERENCES taxon_status"`

	// AcceptedCode resolves in exactly one hop; synonym chains are
	// flattened at build time.
	AcceptedCode string `db:"taxon_accepted_code" ddl:"VARCHAR(20) NOT NULL REFERENCES taxon_accepted"`
}

// DictionaryTerm is one controlled-vocabulary term. Roughly three dozen
// independent vocabularies share this table, discriminated by domain.
type DictionaryTerm struct {
	Domain      string `db:"dictionary_domain" ddl:"VARCHAR(40) NOT NULL"`
	SurrogateID int    `db:"dictionary_id" ddl:"SMALLINT NOT NULL"`
	Label       string `db:"dictionary_label" ddl:"VARCHAR(120) NOT NULL"`
}

// Project stores survey project metadata.
type Project struct {
	ProjectCode string `db:"project_code" ddl:"VARCHAR(30) PRIMARY KEY"`
	ProjectName string `db:"project_name" ddl:"VARCHAR(250) NOT NULL"`
	Originator  string `db:"originator" ddl:"VARCHAR(120)"`
	Funder      string `db:"funder" ddl:"VARCHAR(120)"`
	Manager     string `db:"manager" ddl:"VARCHAR(120)"`
	YearStart   int    `db:"year_start" ddl:"SMALLINT"`
	YearEnd     int    `db:"year_end" ddl:"SMALLINT"`
}

// Site stores one survey plot location.
type Site struct {
	SiteCode string `db:"site_code" ddl:"VARCHAR(50) PRIMARY KEY"`

	EstablishingProjectCode string `db:"establishing_project_code" ddl:"VARCHAR(30) NOT NULL REFERENCES project"`

	PerspectiveID int `db:"perspective_id" ddl:"SMALLINT NOT NULL"`
	CoverMethodID int `db:"cover_method_id" ddl:"SMALLINT NOT NULL"`

	// Coordinates are NAD83 decimal degrees, bounds-checked before load.
	LatitudeDD  float64 `db:"latitude_dd" ddl:"NUMERIC(10,7) NOT NULL"`
	LongitudeDD float64 `db:"longitude_dd" ddl:"NUMERIC(11,7) NOT NULL"`

	HDatumID         int `db:"h_datum_id" ddl:"SMALLINT NOT NULL"`
	LocationTypeID   int `db:"location_type_id" ddl:"SMALLINT NOT NULL"`
	PlotDimensionsID int `db:"plot_dimensions_id" ddl:"SMALLINT NOT NULL"`
}

// SiteVisit stores one dated survey event at a site; the key around
// which all observational tables are organized.
type SiteVisit struct {
	SiteVisitCode string `db:"site_visit_code" ddl:"VARCHAR(60) PRIMARY KEY"`

	ProjectCode string `db:"project_code" ddl:"VARCHAR(30) NOT NULL REFERENCES project"`
	SiteCode    string `db:"site_code" ddl:"VARCHAR(50) NOT NULL REFERENCES site"`

	ObserveDate time.Time `db:"observe_date" ddl:"DATE NOT NULL"`

	VegObserver   string `db:"veg_observer" ddl:"VARCHAR(120)"`
	VegRecorder   string `db:"veg_recorder" ddl:"VARCHAR(120)"`
	EnvObserver   string `db:"env_observer" ddl:"VARCHAR(120)"`
	SoilsObserver string `db:"soils_observer" ddl:"VARCHAR(120)"`

	StructuralClassID int `db:"structural_class_id" ddl:"SMALLINT NOT NULL"`
	ScopeVascularID   int `db:"scope_vascular_id" ddl:"SMALLINT NOT NULL"`
	ScopeBryophyteID  int `db:"scope_bryophyte_id" ddl:"SMALLINT NOT NULL"`
	ScopeLichenID     int `db:"scope_lichen_id" ddl:"SMALLINT NOT NULL"`
}

// VegetationCover stores per-taxon percent cover for a site visit.
type VegetationCover struct {
	SiteVisitCode string `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`

	CoverTypeID int `db:"cover_type_id" ddl:"SMALLINT NOT NULL"`

	// NameOriginal is the name as recorded in the field.
	NameOriginal string `db:"name_original" ddl:"VARCHAR(120) NOT NULL"`

	DeadStatus bool `db:"dead_status" ddl:"BOOLEAN NOT NULL"`

	// CodeAdjudicated is the taxon code assigned after resolution
	// against the comprehensive checklist.
	CodeAdjudicated string `db:"code_adjudicated" ddl:"VARCHAR(20) NOT NULL REFERENCES taxon_all"`

	CoverPercent float64 `db:"cover_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}

// AbioticTopCover stores percent top cover of abiotic elements.
type AbioticTopCover struct {
	SiteVisitCode    string  `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`
	AbioticElementID int     `db:"abiotic_element_id" ddl:"SMALLINT NOT NULL"`
	CoverPercent     float64 `db:"abiotic_top_cover_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}

// WholeTussockCover stores whole-plot tussock cover.
type WholeTussockCover struct {
	SiteVisitCode string  `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`
	CoverTypeID   int     `db:"cover_type_id" ddl:"SMALLINT NOT NULL"`
	CoverPercent  float64 `db:"tussock_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}

// GroundCover stores percent ground cover by ground element.
type GroundCover struct {
	SiteVisitCode   string  `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`
	GroundElementID int     `db:"ground_element_id" ddl:"SMALLINT NOT NULL"`
	CoverPercent    float64 `db:"ground_cover_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}

// StructuralGroupCover stores percent cover by structural group.
type StructuralGroupCover struct {
	SiteVisitCode     string  `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`
	StructuralGroupID int     `db:"structural_group_id" ddl:"SMALLINT NOT NULL"`
	CoverTypeID       int     `db:"cover_type_id" ddl:"SMALLINT NOT NULL"`
	CoverPercent      float64 `db:"structural_cover_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}

// TreeStructure stores per-taxon tree structure measurements.
// Continuous columns use -999 for no data.
type TreeStructure struct {
	SiteVisitCode   string  `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`
	CodeAdjudicated string  `db:"code_adjudicated" ddl:"VARCHAR(20) NOT NULL REFERENCES taxon_all"`
	CrownClassID    int     `db:"crown_class_id" ddl:"SMALLINT NOT NULL"`
	HeightM         float64 `db:"height_m" ddl:"NUMERIC(7,3) NOT NULL"`
	DiameterBaseCm  float64 `db:"diameter_base_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	NumberStems     int     `db:"number_stems" ddl:"INT NOT NULL"`
	CoverPercent    float64 `db:"tree_cover_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}

// ShrubStructure stores per-taxon shrub structure measurements.
// Continuous columns use -999 for no data.
type ShrubStructure struct {
	SiteVisitCode   string  `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`
	CodeAdjudicated string  `db:"code_adjudicated" ddl:"VARCHAR(20) NOT NULL REFERENCES taxon_all"`
	ShrubClassID    int     `db:"shrub_class_id" ddl:"SMALLINT NOT NULL"`
	HeightCm        float64 `db:"height_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	MeanDiameterCm  float64 `db:"mean_diameter_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	NumberStems     int     `db:"number_stems" ddl:"INT NOT NULL"`
	CoverPercent    float64 `db:"shrub_cover_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}

// Environment stores one row of site-visit environment observations.
// Depth columns use -999 for no data.
type Environment struct {
	SiteVisitCode string `db:"site_visit_code" ddl:"VARCHAR(60) PRIMARY KEY REFERENCES site_visit"`

	PhysiographyID    int `db:"physiography_id" ddl:"SMALLINT NOT NULL"`
	GeomorphologyID   int `db:"geomorphology_id" ddl:"SMALLINT NOT NULL"`
	MacrotopographyID int `db:"macrotopography_id" ddl:"SMALLINT NOT NULL"`
	MicrotopographyID int `db:"microtopography_id" ddl:"SMALLINT NOT NULL"`
	MoistureID        int `db:"moisture_id" ddl:"SMALLINT NOT NULL"`
	DrainageID        int `db:"drainage_id" ddl:"SMALLINT NOT NULL"`
	DisturbanceID     int `db:"disturbance_id" ddl:"SMALLINT NOT NULL"`

	DepthWaterCm            float64 `db:"depth_water_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	DepthMossDuffCm         float64 `db:"depth_moss_duff_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	DepthRestrictiveLayerCm float64 `db:"depth_restrictive_layer_cm" ddl:"NUMERIC(7,3) NOT NULL"`

	SurfaceWater bool `db:"surface_water" ddl:"BOOLEAN NOT NULL"`
}

// SoilMetrics stores one row of site-visit soil chemistry measurements.
// Continuous columns use -999 for no data.
type SoilMetrics struct {
	SiteVisitCode string `db:"site_visit_code" ddl:"VARCHAR(60) PRIMARY KEY REFERENCES site_visit"`

	WaterMeasurement bool    `db:"water_measurement" ddl:"BOOLEAN NOT NULL"`
	MeasureDepthCm   float64 `db:"measure_depth_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	PH               float64 `db:"ph" ddl:"NUMERIC(5,3) NOT NULL"`
	Conductivity     float64 `db:"conductivity_mus" ddl:"NUMERIC(8,3) NOT NULL"`
	Temperature      float64 `db:"temperature_deg_c" ddl:"NUMERIC(6,3) NOT NULL"`
}

// SoilHorizons stores per-horizon soil profile descriptions.
// Continuous columns use -999 for no data.
type SoilHorizons struct {
	SiteVisitCode string `db:"site_visit_code" ddl:"VARCHAR(60) NOT NULL REFERENCES site_visit"`

	// HorizonOrder numbers horizons from the surface down, starting at 1.
	HorizonOrder int `db:"horizon_order" ddl:"SMALLINT NOT NULL"`

	ThicknessCm  float64 `db:"thickness_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	DepthUpperCm float64 `db:"depth_upper_cm" ddl:"NUMERIC(7,3) NOT NULL"`
	DepthLowerCm float64 `db:"depth_lower_cm" ddl:"NUMERIC(7,3) NOT NULL"`

	// DepthExtend is true when the horizon continues past the
	// excavated depth.
	DepthExtend bool `db:"depth_extend" ddl:"BOOLEAN NOT NULL"`

	HorizonPrimaryID int `db:"horizon_primary_id" ddl:"SMALLINT NOT NULL"`
	TextureID        int `db:"texture_id" ddl:"SMALLINT NOT NULL"`

	ClayPercent           float64 `db:"clay_percent" ddl:"NUMERIC(6,3) NOT NULL"`
	CoarseFragmentPercent float64 `db:"total_coarse_fragment_percent" ddl:"NUMERIC(6,3) NOT NULL"`
}
