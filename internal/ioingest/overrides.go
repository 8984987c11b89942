package ioingest

import (
	"os"

	"github.com/accs-uaa/avdb/pkg/taxa"
	"gopkg.in/yaml.v3"
)

// overridesFile is the YAML form of per-dataset name overrides.
type overridesFile struct {
	Replace map[string]string `yaml:"replace"`
	Exclude []string          `yaml:"exclude"`
}

// loadOverrides reads a dataset's overrides.yaml. An empty path means
// the dataset has none.
func loadOverrides(path string) (*taxa.Overrides, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, OverridesError(path, err)
	}

	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, OverridesError(path, err)
	}

	return &taxa.Overrides{
		Replace: f.Replace,
		Exclude: f.Exclude,
	}, nil
}
