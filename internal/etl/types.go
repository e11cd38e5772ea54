// internal/etl/types.go
package etl

import (
	"fmt"
	"time"

	"dnaetl-core/dna"
)

// Stage identifies where in the pipeline a record is, or where it
// stopped.
type Stage string

const (
	StageValidating   Stage = "validating"
	StageExtracting   Stage = "extracting"
	StageTransforming Stage = "transforming"
	StageLoading      Stage = "loading"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

// Kind classifies a record failure. The set is closed so exit-code
// translation stays exhaustive.
type Kind string

const (
	KindInvalidPath             Kind = "invalid-path"
	KindMalformedConfig         Kind = "malformed-config"
	KindFileUnreadable          Kind = "file-unreadable"
	KindInvalidMetadataField    Kind = "invalid-metadata-field"
	KindInvalidSequenceAlphabet Kind = "invalid-sequence-alphabet"
	KindWriteFailure            Kind = "write-failure"
)

// StageError is the one failure shape that leaves a pipeline pass.
// Collaborators fill Kind and Message; the runner stamps Stage.
type StageError struct {
	Stage   Stage
	Kind    Kind
	Message string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.Kind, e.Message)
}

// Failf builds a kind-tagged error for a collaborator to return.
func Failf(kind Kind, format string, a ...any) *StageError {
	return &StageError{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Job is one submission unit: the location of a per-sample config
// artifact.
type Job struct {
	ConfigPath string
}

// JobConfig is the parsed content of one config artifact. The three
// path fields are required; ParticipantID is optional and minted later
// when absent.
type JobConfig struct {
	SequencePath  string `json:"sequence_path"`
	MetadataPath  string `json:"metadata_path"`
	OutputPath    string `json:"output_path"`
	ParticipantID string `json:"participant_id,omitempty"`
}

// RawRecord is the unvalidated payload read from disk for one job. It
// is owned exclusively by the pipeline pass that produced it.
type RawRecord struct {
	Sequences []string
	Metadata  map[string]any
}

// ResultRecord is the unit handed to the output writer.
type ResultRecord struct {
	Config      JobConfig
	Participant string
	Analysis    dna.Analysis
	Metadata    map[string]any
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Outcome is the terminal result of one pipeline pass: either the
// output location or the stage-tagged failure. Exactly one is recorded
// per started job regardless of execution mode.
type Outcome struct {
	Job    Job
	Output string
	Err    *StageError
}

// Success reports whether the record completed all five stages.
func (o Outcome) Success() bool { return o.Err == nil }

// BatchReport holds one outcome per started job, in submission order.
// Jobs dropped by cancellation before starting are absent.
type BatchReport []Outcome

// Failed counts the failure outcomes in the report.
func (r BatchReport) Failed() int {
	n := 0
	for _, o := range r {
		if !o.Success() {
			n++
		}
	}
	return n
}
