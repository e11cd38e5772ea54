// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dnaetl-core/meta"
	"dnaetl/internal/app"
	"dnaetl/internal/etl"
	"dnaetl/internal/extract"
	"dnaetl/internal/load"
	"dnaetl/internal/transform"
	"dnaetl/internal/validate"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// sample lays down one complete record: the config goes into cfgDir,
// the sequence/metadata/output files into dataDir so a directory scan
// of cfgDir sees only configs. Returns the config path and the output
// path it points at.
func sample(t *testing.T, cfgDir, dataDir, name string) (string, string) {
	t.Helper()
	seq := write(t, filepath.Join(dataDir, name+".txt"), "ATGCATGC\nATGGATCC\n")
	meta := write(t, filepath.Join(dataDir, name+"_meta.json"),
		`{"date_of_birth":"1980-05-15","collected":"2020-03-01","_internal":{"batch":"x"}}`)
	out := filepath.Join(dataDir, name+"_out.json")
	cfg := write(t, filepath.Join(cfgDir, name+".json"), fmt.Sprintf(
		`{"sequence_path":%q,"metadata_path":%q,"output_path":%q}`, seq, meta, out))
	return cfg, out
}

func TestEndToEndSingleRecord(t *testing.T) {
	dir := t.TempDir()
	cfg, outPath := sample(t, dir, dir, "s1")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{cfg}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "PROCESSING SUMMARY - Sequential Mode") {
		t.Fatalf("missing summary block:\n%s", out.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var artifact struct {
		Results []struct {
			Analysis struct {
				CompositionRatio float64 `json:"composition_ratio"`
			} `json:"analysis"`
			Metadata map[string]any `json:"metadata"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &artifact); err != nil {
		t.Fatalf("artifact not JSON: %v", err)
	}
	if len(artifact.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(artifact.Results))
	}
	if got := artifact.Results[0].Analysis.CompositionRatio; got != 0.5 {
		t.Fatalf("composition ratio = %v, want 0.5", got)
	}
	if _, leaked := artifact.Results[0].Metadata["_internal"]; leaked {
		t.Fatal("underscore key leaked into artifact")
	}
}

func TestDirectoryFailureIsolated(t *testing.T) {
	cfgDir, dataDir := t.TempDir(), t.TempDir()
	_, goodOut := sample(t, cfgDir, dataDir, "a_good")

	// The bad record points at a metadata file that does not exist.
	seq := write(t, filepath.Join(dataDir, "b_bad.txt"), "ACGT\n")
	write(t, filepath.Join(cfgDir, "b_bad.json"), fmt.Sprintf(
		`{"sequence_path":%q,"metadata_path":%q,"output_path":%q}`,
		seq, filepath.Join(dataDir, "missing_meta.json"), filepath.Join(dataDir, "b_out.json")))

	var out, errBuf bytes.Buffer
	code := app.Run([]string{cfgDir}, &out, &errBuf)

	// Exit code follows the first failure in submission order:
	// file-unreadable because the referenced metadata file is absent.
	if code != 6 {
		t.Fatalf("exit = %d, want 6\nout: %s\nerr: %s", code, out.String(), errBuf.String())
	}
	if _, err := os.Stat(goodOut); err != nil {
		t.Fatalf("good sibling not written: %v", err)
	}
	if !strings.Contains(out.String(), "Failed: 1") {
		t.Fatalf("summary missing failure count:\n%s", out.String())
	}
}

func TestMissingMetadataFailsAtExtract(t *testing.T) {
	// The config itself is well-formed; the absent metadata file must
	// surface when the pipeline tries to read it, not before.
	dir := t.TempDir()
	seq := write(t, filepath.Join(dir, "s.txt"), "ACGT\n")
	cfg := write(t, filepath.Join(dir, "rec.json"), fmt.Sprintf(
		`{"sequence_path":%q,"metadata_path":%q,"output_path":%q}`,
		seq, filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.json")))

	runner := &etl.Runner{
		Validator:   validate.New(),
		Extractor:   extract.New(),
		Transformer: transform.New(0, meta.DefaultRules()),
		Loader:      load.New(),
	}
	out := runner.Run(context.Background(), etl.Job{ConfigPath: cfg})
	if out.Success() {
		t.Fatal("record with missing metadata file succeeded")
	}
	if out.Err.Stage != etl.StageExtracting {
		t.Fatalf("stage = %s, want %s", out.Err.Stage, etl.StageExtracting)
	}
	if out.Err.Kind != etl.KindFileUnreadable {
		t.Fatalf("kind = %s, want %s", out.Err.Kind, etl.KindFileUnreadable)
	}
}

func TestSequentialMatchesConcurrent(t *testing.T) {
	cfgDir, dataDir := t.TempDir(), t.TempDir()
	var outs []string
	for i := 0; i < 5; i++ {
		_, o := sample(t, cfgDir, dataDir, fmt.Sprintf("rec%d", i))
		outs = append(outs, o)
	}

	run := func(mode string) []string {
		var out, errBuf bytes.Buffer
		code := app.Run([]string{"--mode", mode, "--workers", "4", cfgDir}, &out, &errBuf)
		if code != 0 {
			t.Fatalf("%s exit %d err %s", mode, code, errBuf.String())
		}
		arts := make([]string, len(outs))
		for i, o := range outs {
			data, err := os.ReadFile(o)
			if err != nil {
				t.Fatalf("read %s: %v", o, err)
			}
			arts[i] = stripVolatile(t, data)
		}
		return arts
	}

	serial := run("sequential")
	parallel := run("concurrent")
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("artifact %d differs between modes\nserial: %s\nparallel: %s",
				i, serial[i], parallel[i])
		}
	}
}

// stripVolatile blanks the per-run fields (timestamps, minted
// participant ids) so artifacts from separate runs compare equal.
func stripVolatile(t *testing.T, data []byte) string {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal artifact: %v", err)
	}
	if run, ok := m["metadata"].(map[string]any); ok {
		delete(run, "started_at")
		delete(run, "finished_at")
	}
	if results, ok := m["results"].([]any); ok {
		for _, r := range results {
			if e, ok := r.(map[string]any); ok {
				delete(e, "participant")
			}
		}
	}
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	return string(out)
}

func TestEmptyDirectory(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{t.TempDir()}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if !strings.Contains(errBuf.String(), "nothing to process") {
		t.Fatalf("missing notice, stderr: %s", errBuf.String())
	}
}

func TestUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"--mode", "turbo", "x"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestMissingInput(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{filepath.Join(t.TempDir(), "nope")}, &out, &errBuf)
	if code != 3 {
		t.Fatalf("exit = %d, want 3", code)
	}
}
