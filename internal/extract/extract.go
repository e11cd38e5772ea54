// internal/extract/extract.go
package extract

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"dnaetl/internal/etl"
)

// Extractor reads the raw payloads for one validated config: the
// sequence file (one sequence per non-blank line) and the metadata
// JSON. Content rules are not enforced here; that is the transform
// stage's concern.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(cfg etl.JobConfig) (etl.RawRecord, error) {
	seqs, err := readSequences(cfg.SequencePath)
	if err != nil {
		return etl.RawRecord{}, etl.Failf(etl.KindFileUnreadable, "sequence file %s: %v", cfg.SequencePath, err)
	}
	fields, err := readMetadata(cfg.MetadataPath)
	if err != nil {
		return etl.RawRecord{}, etl.Failf(etl.KindFileUnreadable, "metadata file %s: %v", cfg.MetadataPath, err)
	}
	return etl.RawRecord{Sequences: seqs, Metadata: fields}, nil
}

func readSequences(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var seqs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			seqs = append(seqs, line)
		}
	}
	return seqs, sc.Err()
}

func readMetadata(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
