package iotaxa

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/accs-uaa/avdb/pkg/taxa"
)

// readChecklist reads the comprehensive checklist CSV into rows.
func readChecklist(path string) ([]taxa.ChecklistRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ChecklistReadError(path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ChecklistReadError(path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	get := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []taxa.ChecklistRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ChecklistReadError(path, err)
		}

		rows = append(rows, taxa.ChecklistRow{
			Name:         get(record, "taxon_name"),
			Author:       get(record, "taxon_author"),
			Status:       get(record, "taxon_status"),
			AcceptedName: get(record, "taxon_accepted"),
			Level:        get(record, "taxon_level"),
			Habit:        get(record, "taxon_habit"),
			Family:       get(record, "taxon_family"),
			Category:     get(record, "taxon_category"),
			Source:       get(record, "taxon_source"),
			Link:         get(record, "taxon_link"),
			Native:       parseBool(get(record, "taxon_native")),
			NonNative:    parseBool(get(record, "taxon_non_native")),
		})
	}

	return rows, nil
}

// readDictionary reads the controlled vocabulary CSV, one term per
// row with its domain.
func readDictionary(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ChecklistReadError(path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ChecklistReadError(path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	domains := make(map[string][]string)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ChecklistReadError(path, err)
		}

		domain := taxa.CleanString(record[col["dictionary_domain"]])
		label := taxa.CleanString(record[col["dictionary_label"]])
		if domain == "" || label == "" {
			continue
		}
		domains[domain] = append(domains[domain], label)
	}

	return domains, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(taxa.CleanString(s)) {
	case "true", "t", "1", "yes", "y":
		return true
	}
	return false
}
