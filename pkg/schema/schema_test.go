package schema_test

import (
	"strings"
	"testing"

	"github.com/accs-uaa/avdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTableDDL(t *testing.T) {
	tests := []struct {
		msg      string
		model    schema.DDLGenerator
		table    string
		contains []string
	}{
		{
			"taxon_all",
			schema.TaxonAll{},
			"taxon_all",
			[]string{
				"CREATE TABLE taxon_all",
				"taxon_code VARCHAR(20) PRIMARY KEY",
				"taxon_name VARCHAR(120) UNIQUE NOT NULL",
				"taxon_accepted_code VARCHAR(20) NOT NULL REFERENCES taxon_accepted",
			},
		},
		{
			"taxon_hierarchy",
			schema.TaxonHierarchy{},
			"taxon_hierarchy",
			[]string{
				"genus_code VARCHAR(20) PRIMARY KEY",
				"taxon_family_id SMALLINT NOT NULL REFERENCES taxon_family",
			},
		},
		{
			"site_visit",
			schema.SiteVisit{},
			"site_visit",
			[]string{
				"site_visit_code VARCHAR(60) PRIMARY KEY",
				"observe_date DATE NOT NULL",
			},
		},
		{
			"vegetation_cover",
			schema.VegetationCover{},
			"vegetation_cover",
			[]string{
				"name_original VARCHAR(120) NOT NULL",
				"dead_status BOOLEAN NOT NULL",
				"cover_percent NUMERIC(6,3) NOT NULL",
			},
		},
	}

	for _, v := range tests {
		ddl := v.model.TableDDL()
		assert.Equal(t, v.table, v.model.TableName(), v.msg)
		for _, want := range v.contains {
			assert.Contains(t, ddl, want, v.msg)
		}
	}
}

func TestAllModels(t *testing.T) {
	assert := assert.New(t)
	models := schema.AllModels()
	assert.Equal(24, len(models))

	// Every model must implement DDLGenerator.
	for _, m := range models {
		_, ok := m.(schema.DDLGenerator)
		assert.True(ok, "model %T implements DDLGenerator", m)
	}
}

func TestWriteOrder(t *testing.T) {
	assert := assert.New(t)
	order := schema.WriteOrder()

	idx := make(map[string]int)
	for i, name := range order {
		idx[name] = i
	}

	// Referenced tables come before tables that point at them.
	assert.Less(idx["project"], idx["site"])
	assert.Less(idx["site"], idx["site_visit"])
	assert.Less(idx["site_visit"], idx["vegetation_cover"])
	assert.Less(idx["site_visit"], idx["soil_horizons"])
	assert.Equal("dictionary", order[0])
}

func TestTaxonomyWriteOrder(t *testing.T) {
	assert := assert.New(t)
	order := schema.TaxonomyWriteOrder()

	idx := make(map[string]int)
	for i, name := range order {
		idx[name] = i
	}

	assert.Less(idx["taxon_family"], idx["taxon_hierarchy"])
	assert.Less(idx["taxon_hierarchy"], idx["taxon_accepted"])
	assert.Less(idx["taxon_accepted"], idx["taxon_all"])
}

func TestDDLIncludesAllTaggedFields(t *testing.T) {
	ddl := schema.Environment{}.TableDDL()
	lines := strings.Split(ddl, "\n")

	// CREATE line, 12 columns, closing line.
	assert.Equal(t, 14, len(lines))
}
