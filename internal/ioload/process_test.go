package ioload

import (
	"testing"

	"github.com/accs-uaa/avdb/internal/ioingest"
	"github.com/accs-uaa/avdb/pkg/datasets"
	"github.com/accs-uaa/avdb/pkg/taxa"
	"github.com/accs-uaa/avdb/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *taxa.Store {
	t.Helper()
	accepted := func(name, level string) taxa.ChecklistRow {
		return taxa.ChecklistRow{
			Name: name, Status: taxa.StatusAccepted,
			AcceptedName: name, Level: level,
			Family: "Betulaceae", Category: "eudicot",
		}
	}
	store, err := taxa.Build([]taxa.ChecklistRow{
		accepted("Betula", taxa.LevelGenus),
		accepted("Betula nana", taxa.LevelSpecies),
		accepted("Betula nana ssp. exilis", taxa.LevelSubspecies),
		accepted("Oxycoccus", taxa.LevelGenus),
		accepted("Oxycoccus microcarpus", taxa.LevelSpecies),
		{
			Name: "Vaccinium oxycoccos", Status: taxa.StatusSynonym,
			AcceptedName: "Oxycoccus microcarpus",
			Level:        taxa.LevelSpecies,
			Family:       "Ericaceae", Category: "eudicot",
		},
	}, nil)
	require.Nil(t, err)
	return store
}

func testNormalizer() (*vocab.Normalizer, dictKeys) {
	domains := map[string][]string{
		"cover_type":      {"absolute foliar cover", "top cover"},
		"perspective":     {"aerial", "ground"},
		"cover_method":    {"line-point intercept"},
		"crown_class":     {"dominant"},
		"h_datum":         {"NAD83"},
		"location_type":   {"targeted"},
		"plot_dimensions": {"10×10"},
	}

	keys := make(dictKeys)
	for domain, terms := range domains {
		keys[domain] = make(map[string]int)
		for i, term := range terms {
			keys[domain][term] = i + 1
		}
	}
	return vocab.NewNormalizer(vocab.DefaultPolicy, domains), keys
}

func testData(tables map[string][]ioingest.Row) *ioingest.Data {
	return &ioingest.Data{
		Dataset: datasets.Dataset{
			ID: 25, Code: "25_nps_swan_2024", Generation: 3,
		},
		Tables: tables,
	}
}

func coverRow(name, percent string) ioingest.Row {
	return ioingest.Row{
		"site_visit_code": "SWAN_1204_20240709",
		"cover_type":      "top cover",
		"name_original":   name,
		"dead_status":     "FALSE",
		"cover_percent":   percent,
	}
}

func TestProcessCoverMergesAndResolves(t *testing.T) {
	assert := assert.New(t)
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Betula nana", "5"),
			coverRow("Oxycoccus microcarpus", "12"),
			coverRow("Betula nana", "3"),
		},
	})

	p := processDataset(data, store, norm, keys)
	require.False(t, p.Failed)

	rows := p.Rows["vegetation_cover"]
	require.Equal(t, 2, len(rows))

	// Field splits of the same taxon merge before resolution.
	assert.Equal("Betula nana", rows[0][2])
	assert.Equal(float64(8), rows[0][5])
	assert.Equal("betnan", rows[0][4])

	// Dictionary key, not the label, lands in the row.
	assert.Equal(keys["cover_type"]["top cover"], rows[0][1])
}

func TestProcessCoverUnresolvedFailsDataset(t *testing.T) {
	assert := assert.New(t)
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Betula nana", "5"),
			coverRow("Pinus ponderosa", "2"),
		},
	})

	p := processDataset(data, store, norm, keys)
	assert.True(p.Failed)
	require.Equal(t, 1, len(p.Problems))

	prob := p.Problems[0]
	assert.Equal("Pinus ponderosa", prob.NameOriginal)
	assert.NotEmpty(prob.NameUUID)
	assert.Equal("25_nps_swan_2024", prob.DatasetCode)

	// Resolved rows still process so one run reports every issue.
	assert.Equal(1, len(p.Rows["vegetation_cover"]))
}

func TestProcessCoverExcluded(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Water", "40"),
			coverRow("Betula nana", "5"),
		},
	})
	data.Overrides = &taxa.Overrides{Exclude: []string{"Water"}}

	p := processDataset(data, store, norm, keys)
	assert.False(t, p.Failed)
	assert.Equal(t, 1, len(p.Rows["vegetation_cover"]))
}

func TestProcessCoverSynonymAdjudicated(t *testing.T) {
	assert := assert.New(t)
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Vaccinium oxycoccos", "3"),
		},
	})

	p := processDataset(data, store, norm, keys)
	require.False(t, p.Failed)

	rows := p.Rows["vegetation_cover"]
	require.Equal(t, 1, len(rows))

	// The recorded synonym stays in the row; the adjudicated code is
	// the accepted concept's, not the synonym's own.
	oxymic, _ := store.ByName("Oxycoccus microcarpus")
	assert.Equal("Vaccinium oxycoccos", rows[0][2])
	assert.Equal(oxymic.Code, rows[0][4])
}

func TestProcessCoverVerbatimName(t *testing.T) {
	assert := assert.New(t)
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Betula nana subsp. exilis", "4"),
		},
	})

	p := processDataset(data, store, norm, keys)
	require.False(t, p.Failed)

	rows := p.Rows["vegetation_cover"]
	require.Equal(t, 1, len(rows))

	// Resolution uses the checklist spelling "ssp." internally, but
	// the stored name keeps the recorder's spelling.
	exilis, ok := store.ByName("Betula nana ssp. exilis")
	require.True(t, ok)
	assert.Equal("Betula nana subsp. exilis", rows[0][2])
	assert.Equal(exilis.Code, rows[0][4])
}

func TestProcessCoverOverrideReplace(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("VAOX", "3"),
		},
	})
	data.Overrides = &taxa.Overrides{
		Replace: map[string]string{
			"VAOX": "Oxycoccus microcarpus",
		},
	}

	p := processDataset(data, store, norm, keys)
	require.False(t, p.Failed)

	rows := p.Rows["vegetation_cover"]
	require.Equal(t, 1, len(rows))

	oxymic, _ := store.ByName("Oxycoccus microcarpus")
	assert.Equal(t, oxymic.Code, rows[0][4])
}

func TestProcessCoverRangeViolation(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Betula nana", "140"),
		},
	})

	p := processDataset(data, store, norm, keys)
	assert.True(t, p.Failed)
}

func treeRow(name string) ioingest.Row {
	return ioingest.Row{
		"site_visit_code":    "SWAN_1204_20240709",
		"name_original":      name,
		"crown_class":        "dominant",
		"height_m":           "12.5",
		"diameter_base_cm":   "20",
		"number_stems":       "1",
		"tree_cover_percent": "15",
	}
}

func TestProcessTreeExcludedRowSkipped(t *testing.T) {
	assert := assert.New(t)
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"tree_structure": {
			treeRow("Snag"),
			treeRow("Betula nana"),
		},
	})
	data.Overrides = &taxa.Overrides{Exclude: []string{"Snag"}}

	p := processDataset(data, store, norm, keys)
	require.False(t, p.Failed)

	// The excluded entry drops without a problem; the dataset loads.
	rows := p.Rows["tree_structure"]
	require.Equal(t, 1, len(rows))
	assert.Equal("betnan", rows[0][1])
	assert.Empty(p.Problems)
}

func TestProcessUnresolvedNameIsSoftProblem(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Pinus ponderosa", "2"),
		},
	})

	p := processDataset(data, store, norm, keys)
	require.True(t, p.Failed)
	require.Equal(t, 1, len(p.Problems))
	assert.False(t, p.Problems[0].Hard)
	assert.False(t, p.Hard)
}

func TestProcessRangeViolationIsHardProblem(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"vegetation_cover": {
			coverRow("Betula nana", "140"),
		},
	})

	p := processDataset(data, store, norm, keys)
	require.True(t, p.Failed)
	require.Equal(t, 1, len(p.Problems))
	assert.True(t, p.Problems[0].Hard)
	assert.True(t, p.Hard)
}

func siteRow(lat, lon string) ioingest.Row {
	return ioingest.Row{
		"site_code":                 "SWAN_1204",
		"establishing_project_code": "swan_2024",
		"perspective":               "ground",
		"cover_method":              "line-point intercept",
		"latitude_dd":               lat,
		"longitude_dd":              lon,
		"h_datum":                   "NAD83",
		"location_type":             "targeted",
		"plot_dimensions":           "10×10",
	}
}

func TestProcessSite(t *testing.T) {
	assert := assert.New(t)
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		"site": {siteRow("60.19650", "-154.31467")},
	})

	p := processDataset(data, store, norm, keys)
	require.False(t, p.Failed)

	rows := p.Rows["site"]
	require.Equal(t, 1, len(rows))
	assert.Equal("SWAN_1204", rows[0][0])
	assert.Equal(keys["perspective"]["ground"], rows[0][2])
	assert.Equal(60.1965, rows[0][4])
}

func TestProcessSiteOutOfBounds(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	data := testData(map[string][]ioingest.Row{
		// Coordinates swapped in the source.
		"site": {siteRow("-154.31467", "60.19650")},
	})

	p := processDataset(data, store, norm, keys)
	assert.True(t, p.Failed)
	assert.Equal(t, 0, len(p.Rows["site"]))
}

func TestProcessUnknownVocabValue(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	row := siteRow("60.19650", "-154.31467")
	row["perspective"] = "drone"

	data := testData(map[string][]ioingest.Row{
		"site": {row},
	})

	p := processDataset(data, store, norm, keys)
	assert.True(t, p.Failed)
}

func TestProcessMissingDictValueKeyZero(t *testing.T) {
	store := testStore(t)
	norm, keys := testNormalizer()

	row := siteRow("60.19650", "-154.31467")
	row["perspective"] = ""

	data := testData(map[string][]ioingest.Row{
		"site": {row},
	})

	p := processDataset(data, store, norm, keys)
	require.False(t, p.Failed)
	assert.Equal(t, 0, p.Rows["site"][0][2])
}
