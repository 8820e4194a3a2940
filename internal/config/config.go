// Package config reads the site's social-profile configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where al-folio sites keep the social identifiers.
const DefaultPath = "_data/socials.yml"

// DefaultOutputPath is where the generated bibliography is written.
const DefaultOutputPath = "_bibliography/papers.bib"

// ErrNoScholarID is returned when the config has no scholar_userid entry.
var ErrNoScholarID = errors.New("no 'scholar_userid' found in configuration")

// Socials represents the _data/socials.yml document. Only the identifiers
// this tool can use are kept; unknown keys are ignored.
type Socials struct {
	ScholarUserID     string `yaml:"scholar_userid"`
	SemanticScholarID string `yaml:"semanticscholar_id,omitempty"`
	OrcidID           string `yaml:"orcid_id,omitempty"`
	Email             string `yaml:"email,omitempty"`
}

// Load reads and parses the socials configuration file.
func Load(path string) (*Socials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Socials
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadScholarUserID reads the configuration and returns the Google Scholar
// user ID, erroring if it is missing or empty.
func LoadScholarUserID(path string) (string, error) {
	cfg, err := Load(path)
	if err != nil {
		return "", err
	}
	if cfg.ScholarUserID == "" {
		return "", fmt.Errorf("%w (%s)", ErrNoScholarID, path)
	}
	return cfg.ScholarUserID, nil
}
