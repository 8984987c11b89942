// Package datasets describes the survey datasets configured for
// ingestion. The datasets.yaml file in the config directory lists
// them; this package parses and validates that list.
package datasets

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Source schema generations. Column names in dataset tables changed
// twice over the life of the program; the ingest layer maps each
// generation's aliases onto the current schema.
const (
	GenerationMin = 1
	GenerationMax = 3
)

// Dataset describes one configured survey dataset.
type Dataset struct {
	// ID is the unique numeric dataset identifier used on the
	// command line.
	ID int `yaml:"id"`

	// Code names the dataset and its project directory.
	Code string `yaml:"code"`

	// Parent is the directory of per-entity CSV tables, or the path
	// of a SQLite file exposing the same tables.
	Parent string `yaml:"parent"`

	// Generation is the source schema generation, 1 through 3.
	Generation int `yaml:"generation"`

	// Overrides is the optional path of a YAML file with name
	// replacements and exclusions for this dataset.
	Overrides string `yaml:"overrides,omitempty"`
}

// List is the parsed content of datasets.yaml.
type List struct {
	Datasets []Dataset `yaml:"datasets"`
}

// Parse reads and validates a datasets.yaml document. Datasets come
// back sorted by ID so processing order never depends on file order.
func Parse(data []byte) (*List, error) {
	var l List
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, ConfigError("datasets.yaml is not valid YAML", err)
	}

	seenID := make(map[int]bool)
	seenCode := make(map[string]bool)
	for _, d := range l.Datasets {
		if d.ID <= 0 {
			return nil, ConfigError(
				"dataset IDs must be positive", nil)
		}
		if seenID[d.ID] {
			return nil, ConfigError("duplicate dataset ID", nil)
		}
		seenID[d.ID] = true

		if d.Code == "" {
			return nil, ConfigError(
				"every dataset needs a code", nil)
		}
		if seenCode[d.Code] {
			return nil, ConfigError("duplicate dataset code", nil)
		}
		seenCode[d.Code] = true

		if d.Parent == "" {
			return nil, ConfigError(
				"every dataset needs a parent path", nil)
		}
		if d.Generation < GenerationMin ||
			d.Generation > GenerationMax {
			return nil, ConfigError(
				"dataset generation must be 1, 2, or 3", nil)
		}
	}

	sort.Slice(l.Datasets, func(i, j int) bool {
		return l.Datasets[i].ID < l.Datasets[j].ID
	})
	return &l, nil
}

// ByID returns the dataset with the given ID.
func (l *List) ByID(id int) (Dataset, bool) {
	for _, d := range l.Datasets {
		if d.ID == id {
			return d, true
		}
	}
	return Dataset{}, false
}

// Select returns the datasets matching the given IDs, in ID order.
// An empty ID list selects everything. Unknown IDs are errors.
func (l *List) Select(ids []int) ([]Dataset, error) {
	if len(ids) == 0 {
		return l.Datasets, nil
	}

	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	var res []Dataset
	for _, id := range sorted {
		d, ok := l.ByID(id)
		if !ok {
			return nil, NotFoundError(id)
		}
		res = append(res, d)
	}
	return res, nil
}
