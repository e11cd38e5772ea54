// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dnaetl/internal/batch"
	"dnaetl/internal/cli"
	"dnaetl/internal/config"
	"dnaetl/internal/etl"
	"dnaetl/internal/extract"
	"dnaetl/internal/load"
	"dnaetl/internal/status"
	"dnaetl/internal/transform"
	"dnaetl/internal/validate"
	"dnaetl/internal/version"
)

// RunContext parses argv, resolves the input into jobs, drives the
// batch, prints the per-record report, and returns the process exit
// code. All output goes to the injected writers so tests can capture
// it.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dnaetl")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return status.OK
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return status.UsageError
	}
	if opts.Version {
		fmt.Fprintf(outw, "dnaetl version %s\n", version.Version)
		return status.OK
	}

	settings := config.Default()
	if opts.SettingsFile != "" {
		settings, err = config.Load(opts.SettingsFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return status.UsageError
		}
	}
	if opts.WorkersSet {
		settings.Workers = opts.Workers
	}
	if opts.Window > 0 {
		settings.CodonWindow = opts.Window
	}

	jobs, mode, err := resolveInput(opts.Input, opts.Mode)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return status.FatalInput
	}
	if len(jobs) == 0 {
		warnf(stderr, opts.Quiet, "nothing to process: no config artifacts in %s", opts.Input)
		return status.OK
	}

	runner := &etl.Runner{
		Validator:   validate.New(),
		Extractor:   extract.New(),
		Transformer: transform.New(settings.CodonWindow, settings.Rules()),
		Loader:      load.New(),
	}
	coord := &batch.Coordinator{Runner: runner, Workers: settings.Workers}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var report etl.BatchReport
	if mode == cli.ModeConcurrent {
		report = coord.RunConcurrent(ctx, jobs)
	} else {
		report = coord.RunSequential(ctx, jobs)
	}

	printReport(outw, mode, report)
	if err := outw.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return status.FatalInput
	}
	return status.FromReport(report)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// resolveInput turns the top-level argument into the job list. A plain
// file is always a single-record run regardless of the mode flag. A
// directory contributes every *.json entry directly inside it, in name
// order so the listing is stable within a run.
func resolveInput(path, mode string) ([]etl.Job, string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("input: %w", err)
	}
	if !fi.IsDir() {
		return []etl.Job{{ConfigPath: path}}, cli.ModeSequential, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, "", fmt.Errorf("input: %w", err)
	}
	var jobs []etl.Job
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		jobs = append(jobs, etl.Job{ConfigPath: filepath.Join(path, e.Name())})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ConfigPath < jobs[j].ConfigPath })
	return jobs, mode, nil
}

func printReport(w io.Writer, mode string, report etl.BatchReport) {
	for _, o := range report {
		if o.Success() {
			fmt.Fprintf(w, "ok   %s -> %s\n", o.Job.ConfigPath, o.Output)
		} else {
			fmt.Fprintf(w, "fail %s: %s\n", o.Job.ConfigPath, o.Err)
		}
	}

	total := len(report)
	failed := report.Failed()
	fmt.Fprintf(w, "\nPROCESSING SUMMARY - %s Mode\n", modeTitle(mode))
	fmt.Fprintf(w, "Total files processed: %d\n", total)
	fmt.Fprintf(w, "Successful: %d\n", total-failed)
	fmt.Fprintf(w, "Failed: %d\n", failed)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", float64(total-failed)/float64(total)*100)
}

func modeTitle(mode string) string {
	if mode == cli.ModeConcurrent {
		return "Concurrent"
	}
	return "Sequential"
}

func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
