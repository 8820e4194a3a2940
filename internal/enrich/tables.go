package enrich

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables holds the lookup data the enrichment steps consult. The entries
// are configuration, not control flow: editing them must never require a
// code change.
type Tables struct {
	// DOIOverrides assigns a DOI when the lowercased title contains the
	// key and no DOI was found any other way.
	DOIOverrides map[string]string `yaml:"doi_overrides"`

	// BadgeDisable lists lowercased title substrings whose matches get
	// altmetric and dimensions badges forced off.
	BadgeDisable []string `yaml:"badge_disable"`

	// ExcludeFields are removed from every record before serialization.
	ExcludeFields []string `yaml:"exclude_fields"`
}

// DefaultTables returns the built-in lookup tables.
func DefaultTables() Tables {
	return Tables{
		DOIOverrides: map[string]string{
			"river debris detection": "10.1016/j.jag.2022.102682",
			"intrusion detection in software-defined networks": "10.1109/ICMLCN64995.2025.11140473",
			"prism: periodic representation with multiscale":   "10.21203/rs.3.rs-7828855/v1",
		},
		BadgeDisable: []string{
			"garbage and debris identification",
			"parameters estimation from remote sensing",
		},
		ExcludeFields: []string{"pdf", "video", "inspirehep_id"},
	}
}

// LoadTables reads lookup tables from a YAML file, merging them over the
// defaults. Entries in the file win on key collisions.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()

	data, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("reading tables: %w", err)
	}

	var loaded Tables
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return tables, fmt.Errorf("parsing tables %s: %w", path, err)
	}

	for substr, doi := range loaded.DOIOverrides {
		tables.DOIOverrides[substr] = doi
	}
	tables.BadgeDisable = append(tables.BadgeDisable, loaded.BadgeDisable...)
	tables.ExcludeFields = append(tables.ExcludeFields, loaded.ExcludeFields...)

	return tables, nil
}
