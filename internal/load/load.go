// internal/load/load.go
package load

import (
	"os"

	"dnaetl-core/dna"
	"dnaetl/internal/etl"
	"dnaetl/internal/jsonutil"
	"dnaetl/pkg/api"
)

// Writer serializes one result record as an indented JSON artifact at
// the record's configured output path.
type Writer struct{}

func New() *Writer { return &Writer{} }

func (w *Writer) Load(rec etl.ResultRecord) (string, error) {
	f, err := os.Create(rec.Config.OutputPath)
	if err != nil {
		return "", etl.Failf(etl.KindWriteFailure, "create %s: %v", rec.Config.OutputPath, err)
	}
	if err := jsonutil.EncodePretty(f, ToArtifactV1(rec)); err != nil {
		_ = f.Close()
		return "", etl.Failf(etl.KindWriteFailure, "write %s: %v", rec.Config.OutputPath, err)
	}
	if err := f.Close(); err != nil {
		return "", etl.Failf(etl.KindWriteFailure, "close %s: %v", rec.Config.OutputPath, err)
	}
	return rec.Config.OutputPath, nil
}

// ToArtifactV1 maps an internal result record onto the stable output
// schema.
func ToArtifactV1(rec etl.ResultRecord) api.ArtifactV1 {
	return api.ArtifactV1{
		Metadata: api.RunInfoV1{
			StartedAt:    rec.StartedAt,
			FinishedAt:   rec.FinishedAt,
			SequencePath: rec.Config.SequencePath,
			MetadataPath: rec.Config.MetadataPath,
			OutputPath:   rec.Config.OutputPath,
		},
		Results: []api.EntryV1{{
			Participant: api.ParticipantV1{ID: rec.Participant},
			Analysis:    toAnalysisV1(rec.Analysis),
			Metadata:    rec.Metadata,
		}},
	}
}

func toAnalysisV1(a dna.Analysis) api.AnalysisV1 {
	stats := make([]api.SequenceStatsV1, len(a.Sequences))
	for i, s := range a.Sequences {
		stats[i] = api.SequenceStatsV1{GCContent: s.GCContent, Codons: s.Codons}
	}
	return api.AnalysisV1{
		Sequences:        stats,
		CompositionRatio: a.CompositionRatio,
		MostCommonCodon:  a.MostCommonCodon,
		LCS: api.LCSV1{
			Value:     a.LCS.Value,
			Sequences: a.LCS.Sequences,
			Length:    a.LCS.Length,
		},
	}
}
