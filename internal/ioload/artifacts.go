package ioload

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/accs-uaa/avdb/pkg/schema"
)

// writeProblems writes the problem list CSV for one run and returns
// its path. Analysts work through this file to extend the checklist
// or the dataset overrides.
func writeProblems(
	outputDir, runID string, problems []Problem,
) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", ArtifactError(outputDir, err)
	}

	path := filepath.Join(outputDir,
		fmt.Sprintf("problems_%s.csv", runID))
	f, err := os.Create(path)
	if err != nil {
		return "", ArtifactError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"dataset_code", "table", "name_original",
		"name_uuid", "reason",
	}
	if err := w.Write(header); err != nil {
		return "", ArtifactError(path, err)
	}

	for _, p := range problems {
		record := []string{
			p.DatasetCode, p.Table, p.NameOriginal,
			p.NameUUID, p.Reason,
		}
		if err := w.Write(record); err != nil {
			return "", ArtifactError(path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", ArtifactError(path, err)
	}
	return path, nil
}

// writeEntityArtifacts writes the normalized rows of one dataset as
// per-entity CSV extracts, the audit record of exactly what enters the
// database phase. Returns the number of files written.
func writeEntityArtifacts(
	outputDir, runID string, p *processed,
) (int, error) {
	written := 0
	for _, table := range schema.WriteOrder() {
		rows := p.Rows[table]
		if len(rows) == 0 {
			continue
		}
		if err := writeEntityArtifact(
			outputDir, runID, p.Code, table, rows,
		); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// writeEntityArtifact writes one normalized table of one dataset.
func writeEntityArtifact(
	outputDir, runID, code, table string, rows [][]any,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return ArtifactError(outputDir, err)
	}

	path := filepath.Join(outputDir,
		fmt.Sprintf("%s_%s_%s.csv", code, table, runID))
	f, err := os.Create(path)
	if err != nil {
		return ArtifactError(path, err)
	}
	defer f.Close()

	cols := coverColumns
	if table != "vegetation_cover" {
		cols = columnsOf(table)
	}

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return ArtifactError(path, err)
	}

	for _, row := range rows {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = fmt.Sprint(val)
		}
		if err := w.Write(record); err != nil {
			return ArtifactError(path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return ArtifactError(path, err)
	}
	return nil
}
