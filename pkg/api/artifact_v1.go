// pkg/api/artifact_v1.go
package api

import "time"

// ArtifactV1 is the stable JSON schema for one processed sample.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ArtifactV1 struct {
	Metadata RunInfoV1 `json:"metadata"`
	Results  []EntryV1 `json:"results"`
}

// RunInfoV1 documents when and from where the record was processed.
type RunInfoV1 struct {
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	SequencePath string    `json:"sequence_path"`
	MetadataPath string    `json:"metadata_path"`
	OutputPath   string    `json:"output_path"`
}

// EntryV1 pairs one participant's analysis with their sanitized
// metadata.
type EntryV1 struct {
	Participant ParticipantV1  `json:"participant"`
	Analysis    AnalysisV1     `json:"analysis"`
	Metadata    map[string]any `json:"metadata"`
}

type ParticipantV1 struct {
	ID string `json:"id"`
}

// AnalysisV1 is the derived view of one record's sequences.
type AnalysisV1 struct {
	Sequences        []SequenceStatsV1 `json:"sequences"`
	CompositionRatio float64           `json:"composition_ratio"`
	MostCommonCodon  string            `json:"most_common_codon,omitempty"`
	LCS              LCSV1             `json:"lcs"`
}

type SequenceStatsV1 struct {
	GCContent float64        `json:"gc_content"`
	Codons    map[string]int `json:"codons"`
}

// LCSV1 reports the best longest common subsequence across the
// record's sequences. Sequences holds 1-based sequence ids.
type LCSV1 struct {
	Value     string `json:"value"`
	Sequences []int  `json:"sequences"`
	Length    int    `json:"length"`
}
