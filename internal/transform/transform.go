// internal/transform/transform.go
package transform

import (
	"github.com/google/uuid"

	"dnaetl-core/dna"
	"dnaetl-core/meta"
	"dnaetl/internal/etl"
)

// Transformer analyzes a record's sequences and sanitizes its metadata
// into one result record. Sequences must pass alphabet validation and
// metadata must pass field rules before anything is derived.
type Transformer struct {
	Window int       // codon window width; <=0 uses the domain default
	Rules  meta.Rules
}

func New(window int, rules meta.Rules) *Transformer {
	return &Transformer{Window: window, Rules: rules}
}

func (t *Transformer) Transform(cfg etl.JobConfig, raw etl.RawRecord) (etl.ResultRecord, error) {
	normalized := make([]string, len(raw.Sequences))
	for i, s := range raw.Sequences {
		ns, err := dna.Validate(s)
		if err != nil {
			return etl.ResultRecord{}, etl.Failf(etl.KindInvalidSequenceAlphabet, "sequence %d: %v", i+1, err)
		}
		normalized[i] = ns
	}
	if err := t.Rules.Validate(raw.Metadata); err != nil {
		return etl.ResultRecord{}, etl.Failf(etl.KindInvalidMetadataField, "%v", err)
	}

	participant := cfg.ParticipantID
	if participant == "" {
		participant = uuid.NewString()
	}

	return etl.ResultRecord{
		Config:      cfg,
		Participant: participant,
		Analysis:    dna.AnalyzeRecord(normalized, t.Window),
		Metadata:    meta.Sanitize(raw.Metadata),
	}, nil
}
