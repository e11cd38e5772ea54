// internal/validate/validate.go
package validate

import (
	"bytes"
	"os"

	"github.com/google/uuid"

	"dnaetl/internal/etl"
	"dnaetl/internal/jsonutil"
)

// Validator checks one config artifact: readability, JSON shape,
// required fields, and participant id format. The referenced input
// files are deliberately not touched here; a missing or unreadable
// sequence/metadata file surfaces at the extracting stage, and write
// problems at the loading stage.
type Validator struct{}

func New() *Validator { return &Validator{} }

func (v *Validator) Validate(configPath string) (etl.JobConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return etl.JobConfig{}, etl.Failf(etl.KindInvalidPath, "config %s: %v", configPath, err)
	}

	var cfg etl.JobConfig
	if err := jsonutil.DecodeStrict(bytes.NewReader(data), &cfg); err != nil {
		return etl.JobConfig{}, etl.Failf(etl.KindMalformedConfig, "config %s: %v", configPath, err)
	}
	if cfg.SequencePath == "" || cfg.MetadataPath == "" || cfg.OutputPath == "" {
		return etl.JobConfig{}, etl.Failf(etl.KindMalformedConfig,
			"config %s: sequence_path, metadata_path and output_path are required", configPath)
	}
	if cfg.ParticipantID != "" {
		if _, err := uuid.Parse(cfg.ParticipantID); err != nil {
			return etl.JobConfig{}, etl.Failf(etl.KindMalformedConfig,
				"config %s: participant_id: %v", configPath, err)
		}
	}
	return cfg, nil
}
