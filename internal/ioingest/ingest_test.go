package ioingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/accs-uaa/avdb/internal/ioingest"
	"github.com/accs-uaa/avdb/pkg/datasets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDataset lays out a minimal CSV dataset in a temp directory.
func writeDataset(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func baseFiles() map[string]string {
	return map[string]string{
		"project.csv": `project_code,project_name,originator,funder,manager,year_start,year_end
swan_2024,SWAN Vegetation 2024,NPS,NPS,A. Smith,2024,2024
`,
		"site.csv": `site_code,establishing_project_code,perspective,cover_method,latitude_dd,longitude_dd,h_datum,location_type,plot_dimensions
SWAN_1204,swan_2024,ground,line-point intercept,60.19650,-154.31467,NAD83,targeted,10×10
`,
		"site_visit.csv": `site_visit_code,project_code,site_code,observe_date,veg_observer,veg_recorder
SWAN_1204_20240709,swan_2024,SWAN_1204,2024-07-09,B. Jones,C. Lee
`,
		"vegetation_cover.csv": `site_visit_code,cover_type,name_original,dead_status,cover_percent
SWAN_1204_20240709,top cover,Betula nana,FALSE,12.5
SWAN_1204_20240709,top cover,Vaccinium  oxycoccos,FALSE,3
`,
	}
}

func dataset(dir string, gen int) datasets.Dataset {
	return datasets.Dataset{
		ID: 25, Code: "25_nps_swan_2024",
		Parent: dir, Generation: gen,
	}
}

func TestReadDataset(t *testing.T) {
	assert := assert.New(t)
	dir := writeDataset(t, baseFiles())

	data, err := ioingest.ReadDataset(
		context.Background(), dataset(dir, 3))
	require.Nil(t, err)

	assert.Equal(1, len(data.Tables["project"]))
	assert.Equal(1, len(data.Tables["site"]))
	assert.Equal(2, len(data.Tables["vegetation_cover"]))

	// Whitespace cleanup reaches every value.
	cover := data.Tables["vegetation_cover"][1]
	assert.Equal("Vaccinium oxycoccos", cover["name_original"])

	// Optional tables may be absent.
	_, ok := data.Tables["soil_horizons"]
	assert.False(ok)

	assert.Nil(data.Overrides)
}

func TestReadDatasetGenerationAliases(t *testing.T) {
	assert := assert.New(t)
	files := baseFiles()
	files["vegetation_cover.csv"] = `site_visit_code,cover_type,name_recorded,dead_status,percent_cover
SWAN_1204_20240709,top cover,Betula nana,FALSE,12.5
`
	dir := writeDataset(t, files)

	data, err := ioingest.ReadDataset(
		context.Background(), dataset(dir, 2))
	require.Nil(t, err)

	cover := data.Tables["vegetation_cover"][0]
	assert.Equal("Betula nana", cover["name_original"])
	assert.Equal("12.5", cover["cover_percent"])
}

func TestReadDatasetDerivesVisitCode(t *testing.T) {
	files := baseFiles()
	files["site_visit.csv"] = `site_visit_code,project_code,site_code,observe_date
,swan_2024,SWAN_1204,2024-07-09
`
	dir := writeDataset(t, files)

	data, err := ioingest.ReadDataset(
		context.Background(), dataset(dir, 3))
	require.Nil(t, err)

	visit := data.Tables["site_visit"][0]
	assert.Equal(t, "SWAN_1204_20240709", visit["site_visit_code"])
}

func TestReadDatasetVisitCodeMismatch(t *testing.T) {
	files := baseFiles()
	files["site_visit.csv"] = `site_visit_code,project_code,site_code,observe_date
SWAN_1204_20240101,swan_2024,SWAN_1204,2024-07-09
`
	dir := writeDataset(t, files)

	_, err := ioingest.ReadDataset(
		context.Background(), dataset(dir, 3))
	assert.NotNil(t, err)
}

func TestReadDatasetUnknownVisitInObservation(t *testing.T) {
	files := baseFiles()
	files["vegetation_cover.csv"] = `site_visit_code,cover_type,name_original,dead_status,cover_percent
SWAN_9999_20240709,top cover,Betula nana,FALSE,12.5
`
	dir := writeDataset(t, files)

	_, err := ioingest.ReadDataset(
		context.Background(), dataset(dir, 3))
	assert.NotNil(t, err)
}

func TestReadDatasetMissingRequiredTable(t *testing.T) {
	files := baseFiles()
	delete(files, "site.csv")
	dir := writeDataset(t, files)

	_, err := ioingest.ReadDataset(
		context.Background(), dataset(dir, 3))
	assert.NotNil(t, err)
}

func TestReadDatasetOverrides(t *testing.T) {
	assert := assert.New(t)
	files := baseFiles()
	files["overrides.yaml"] = `replace:
  Vaccinium oxycoccos: Oxycoccus microcarpus
exclude:
  - Water
`
	dir := writeDataset(t, files)

	ds := dataset(dir, 3)
	ds.Overrides = filepath.Join(dir, "overrides.yaml")

	data, err := ioingest.ReadDataset(context.Background(), ds)
	require.Nil(t, err)
	require.NotNil(t, data.Overrides)

	assert.Equal("Oxycoccus microcarpus",
		data.Overrides.Replace["Vaccinium oxycoccos"])
	assert.Equal([]string{"Water"}, data.Overrides.Exclude)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		msg, raw string
		ok       bool
	}{
		{"iso", "2024-07-09", true},
		{"us", "7/9/2024", true},
		{"compact", "20240709", true},
		{"garbage", "July 9", false},
	}

	for _, v := range tests {
		_, ok := ioingest.ParseDate(v.raw)
		assert.Equal(t, v.ok, ok, v.msg)
	}
}
