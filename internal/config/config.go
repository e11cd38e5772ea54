// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dnaetl-core/meta"
)

// Settings carries run-level tunables that are normally left at their
// defaults. They travel as an explicit value into the coordinator and
// transformer rather than living in package state.
type Settings struct {
	Workers     int           `yaml:"workers"`      // concurrent pool size; 0 = all CPUs
	CodonWindow int           `yaml:"codon_window"` // token width for the codon histogram
	Metadata    MetadataRules `yaml:"metadata"`
}

type MetadataRules struct {
	MinAge      int `yaml:"min_age"`
	MaxValueLen int `yaml:"max_value_len"`
	YearLower   int `yaml:"year_lower"`
	YearUpper   int `yaml:"year_upper"`
}

// Default returns the built-in settings.
func Default() Settings {
	r := meta.DefaultRules()
	return Settings{
		Workers:     0,
		CodonWindow: 3,
		Metadata: MetadataRules{
			MinAge:      r.MinAge,
			MaxValueLen: r.MaxValueLen,
			YearLower:   r.YearLower,
			YearUpper:   r.YearUpper,
		},
	}
}

// Load reads a YAML settings file over the defaults: absent keys keep
// their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings file: %w", err)
	}
	if err := s.validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0")
	}
	if s.CodonWindow < 1 {
		return fmt.Errorf("codon_window must be >= 1")
	}
	if s.Metadata.MinAge < 0 {
		return fmt.Errorf("metadata.min_age must be >= 0")
	}
	if s.Metadata.MaxValueLen < 1 {
		return fmt.Errorf("metadata.max_value_len must be >= 1")
	}
	if s.Metadata.YearLower > s.Metadata.YearUpper {
		return fmt.Errorf("metadata.year_lower exceeds metadata.year_upper")
	}
	return nil
}

// Rules converts the metadata section to the domain rule set.
func (s Settings) Rules() meta.Rules {
	return meta.Rules{
		MinAge:      s.Metadata.MinAge,
		MaxValueLen: s.Metadata.MaxValueLen,
		YearLower:   s.Metadata.YearLower,
		YearUpper:   s.Metadata.YearUpper,
	}
}
