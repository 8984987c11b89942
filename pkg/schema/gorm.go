package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Order follows foreign key dependencies.
func AllModels() []interface{} {
	return []interface{}{
		&TaxonAuthor{},
		&TaxonCategory{},
		&TaxonFamily{},
		&TaxonHabit{},
		&TaxonStatus{},
		&TaxonLevel{},
		&TaxonSource{},
		&TaxonHierarchy{},
		&TaxonAccepted{},
		&TaxonAll{},
		&DictionaryTerm{},
		&Project{},
		&Site{},
		&SiteVisit{},
		&VegetationCover{},
		&AbioticTopCover{},
		&WholeTussockCover{},
		&GroundCover{},
		&StructuralGroupCover{},
		&TreeStructure{},
		&ShrubStructure{},
		&Environment{},
		&SoilMetrics{},
		&SoilHorizons{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
