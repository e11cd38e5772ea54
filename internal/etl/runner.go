// internal/etl/runner.go
package etl

import (
	"context"
	"errors"
	"time"
)

// Validator checks one config artifact and resolves its paths.
type Validator interface {
	Validate(configPath string) (JobConfig, error)
}

// Extractor reads the raw sequence and metadata payloads for a
// validated config.
type Extractor interface {
	Extract(cfg JobConfig) (RawRecord, error)
}

// Transformer turns a raw record into a result record: sequence
// analysis plus metadata sanitization.
type Transformer interface {
	Transform(cfg JobConfig, raw RawRecord) (ResultRecord, error)
}

// Loader writes a result record to its output location and returns
// that location.
type Loader interface {
	Load(rec ResultRecord) (string, error)
}

// Runner drives one record through validate → extract → transform →
// load. A failure at any stage short-circuits the rest; no stage is
// retried. Errors never escape Run — every failure is folded into the
// returned Outcome with the stage it occurred at.
type Runner struct {
	Validator   Validator
	Extractor   Extractor
	Transformer Transformer
	Loader      Loader
}

// Run executes one full pipeline pass. The context is observed between
// records by the coordinator, not mid-record: once a pass starts it
// runs to Done or Failed.
func (r *Runner) Run(ctx context.Context, job Job) Outcome {
	_ = ctx
	started := time.Now()

	stage := StageValidating
	cfg, err := r.Validator.Validate(job.ConfigPath)
	if err != nil {
		return fail(job, stage, KindMalformedConfig, err)
	}

	stage = StageExtracting
	raw, err := r.Extractor.Extract(cfg)
	if err != nil {
		return fail(job, stage, KindFileUnreadable, err)
	}

	stage = StageTransforming
	rec, err := r.Transformer.Transform(cfg, raw)
	if err != nil {
		return fail(job, stage, KindInvalidMetadataField, err)
	}
	rec.StartedAt = started
	rec.FinishedAt = time.Now()

	stage = StageLoading
	out, err := r.Loader.Load(rec)
	if err != nil {
		return fail(job, stage, KindWriteFailure, err)
	}

	return Outcome{Job: job, Output: out}
}

// fail stamps the failing stage onto the collaborator's kind-tagged
// error; untyped errors get the stage's fallback kind.
func fail(job Job, stage Stage, fallback Kind, err error) Outcome {
	se := &StageError{Stage: stage, Kind: fallback, Message: err.Error()}
	var tagged *StageError
	if errors.As(err, &tagged) {
		se.Kind = tagged.Kind
		se.Message = tagged.Message
	}
	return Outcome{Job: job, Err: se}
}
