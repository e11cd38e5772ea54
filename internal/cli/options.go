// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"dnaetl/internal/version"
)

// Execution modes for directory inputs.
const (
	ModeSequential = "sequential"
	ModeConcurrent = "concurrent"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Input string // config file or directory of config files

	Mode       string
	Workers    int  // concurrent pool size (0 = all CPUs)
	WorkersSet bool // --workers was given explicitly, even as 0
	Window     int  // codon window width (0 = settings/default)

	SettingsFile string
	Quiet        bool
	Version      bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: DNA sample ETL

Processes per-sample config artifacts (JSON) pointing at a raw DNA
sequence file and a metadata file, and writes one analyzed artifact per
sample.

Version: %s

Usage: %s [flags] <config.json | directory>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Mode, "mode", ModeSequential,
		"directory processing mode: sequential | concurrent ["+ModeSequential+"]")
	fs.IntVar(&opt.Workers, "workers", 0, "worker pool size in concurrent mode (0 = all CPUs) [0]")
	fs.IntVar(&opt.Window, "window", 0, "codon window width (0 = settings default) [0]")
	fs.StringVar(&opt.SettingsFile, "config", "", "optional YAML settings file")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "workers" {
			opt.WorkersSet = true
		}
	})
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch len(fs.Args()) {
	case 0:
		return opt, errors.New("an input path (config file or directory) is required")
	case 1:
		opt.Input = fs.Arg(0)
	default:
		return opt, fmt.Errorf("exactly one input path expected, got %d", len(fs.Args()))
	}
	if opt.Mode != ModeSequential && opt.Mode != ModeConcurrent {
		return opt, fmt.Errorf("invalid --mode %q", opt.Mode)
	}
	if opt.Workers < 0 {
		return opt, errors.New("--workers must be >= 0")
	}
	if opt.Window < 0 {
		return opt, errors.New("--window must be >= 0")
	}
	return opt, nil
}
