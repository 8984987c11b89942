package ioload

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProblems(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	problems := []Problem{
		{
			DatasetCode:  "25_nps_swan_2024",
			Table:        "vegetation_cover",
			NameOriginal: "Pinus ponderosa",
			NameUUID:     "8a1b2c3d",
			Reason:       "name not found in checklist",
		},
	}

	path, err := writeProblems(dir, "run1", problems)
	require.Nil(t, err)

	f, err := os.Open(path)
	require.Nil(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.Nil(t, err)

	assert.Equal(2, len(records))
	assert.Equal("dataset_code", records[0][0])
	assert.Equal("Pinus ponderosa", records[1][2])
}

func TestWriteEntityArtifacts(t *testing.T) {
	dir := t.TempDir()

	p := &processed{
		Code: "25_nps_swan_2024",
		Rows: map[string][][]any{
			"vegetation_cover": {
				{"SWAN_1204_20240709", 2, "Betula nana",
					false, "betnan", 8.0},
			},
		},
	}

	written, err := writeEntityArtifacts(dir, "run1", p)
	require.Nil(t, err)
	assert.Equal(t, 1, written)

	path := filepath.Join(dir,
		"25_nps_swan_2024_vegetation_cover_run1.csv")
	f, err := os.Open(path)
	require.Nil(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.Nil(t, err)

	assert.Equal(t, 2, len(records))
	assert.Equal(t, "betnan", records[1][4])
}

func TestWriteEntityArtifactsEmpty(t *testing.T) {
	p := &processed{Code: "x", Rows: map[string][][]any{}}
	written, err := writeEntityArtifacts(t.TempDir(), "run1", p)
	assert.Nil(t, err)
	assert.Zero(t, written)
}
