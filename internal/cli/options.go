// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"conserv/internal/scorefile"
	"conserv/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Structure input (positional)
	Structures []string

	// Score-file resolution
	ScoresDir string
	Format    scorefile.Format

	// Modes
	Pick bool   // list resolved score files instead of building a map
	Load string // report from a persisted map instead of building one
	Save string // persist the built map

	// Output
	Output string
	Header bool // true unless --no-header
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: attach per-residue conservation scores to protein structures

Version: %s

Usage: %s [flags] structure.pdb ...
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are structure files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{Format: scorefile.JSD}
	var help bool
	var format string

	fs.StringVar(&opt.ScoresDir, "scores-dir", "", "directory holding score files (default: structure's directory)")
	fs.StringVar(&format, "format", "jsd", "score file format: jsd | concavity [jsd]")

	fs.BoolVar(&opt.Pick, "pick", false, "list the score file resolved for each chain [false]")
	fs.StringVar(&opt.Load, "load", "", "report from a persisted score map instead of building one")
	fs.StringVar(&opt.Save, "save", "", "persist the built score map to this path")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress WARN messages [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Structures = fs.Args()
	opt.Header = !noHeader

	f, err := scorefile.ParseFormat(format)
	if err != nil {
		return opt, err
	}
	opt.Format = f

	// Validation
	switch {
	case opt.Load != "" && opt.Pick:
		return opt, errors.New("--load conflicts with --pick")
	case opt.Load != "" && opt.Save != "":
		return opt, errors.New("--load conflicts with --save")
	case opt.Pick && opt.Save != "":
		return opt, errors.New("--pick conflicts with --save")
	}
	if opt.Load == "" && len(opt.Structures) == 0 {
		return opt, errors.New("at least one structure file is required")
	}
	if opt.Load != "" && len(opt.Structures) > 0 {
		return opt, errors.New("--load takes no structure arguments")
	}
	if !opt.Pick && len(opt.Structures) > 1 {
		return opt, errors.New("one structure at a time (use --pick for batch listing)")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
