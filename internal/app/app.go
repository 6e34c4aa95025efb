// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"conserv/internal/cli"
	"conserv/internal/cliutil"
	"conserv/internal/cmdutil"
	"conserv/internal/conservation"
	"conserv/internal/locator"
	"conserv/internal/output"
	"conserv/internal/pdb"
	"conserv/internal/version"
)

// RunContext parses argv, runs the requested mode, and returns a process
// exit code: 0 ok, 1 runtime failure, 2 usage error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("conserv")
	fs.SetOutput(io.Discard)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	opts, err := cli.ParseArgs(fs, append(flagArgs, posArgs...))
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "conserv version %s\n", version.Version)
		return 0
	}

	opts.Structures, err = cliutil.ExpandPositionals(opts.Structures)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	// A glob may expand past the single-structure limit.
	if opts.Load == "" && !opts.Pick && len(opts.Structures) > 1 {
		_, _ = fmt.Fprintln(stderr, "one structure at a time (use --pick for batch listing)")
		return 2
	}

	switch {
	case opts.Load != "":
		err = runLoad(opts, outw)
	case opts.Pick:
		err = runPick(ctx, opts, outw)
	default:
		err = runBuild(opts, outw, stderr)
	}
	if err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if err := outw.Flush(); err != nil && !output.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// runBuild reads the structure, resolves score files per chain, builds
// the score map, reports it, and optionally persists it.
func runBuild(opts cli.Options, outw io.Writer, stderr io.Writer) error {
	structPath := opts.Structures[0]
	st, err := pdb.Read(structPath)
	if err != nil {
		return err
	}

	loc := locator.New(structPath, opts.ScoresDir, opts.Format)
	letters := make(map[string]string, len(st.Chains))
	for _, ch := range st.Chains {
		if ch.IsProtein() {
			letters[locator.NormalizeChainID(ch.ID)] = ch.Letters()
		}
	}
	var resolveErr error
	resolve := func(chainID string) string {
		path, err := loc.Resolve(chainID, letters[chainID])
		if err != nil {
			if resolveErr == nil {
				resolveErr = err
			}
			return ""
		}
		if path == "" {
			cmdutil.Warnf(stderr, opts.Quiet, "no score file for chain %s of %s", chainID, structPath)
		}
		return path
	}

	m, err := conservation.FromFiles(st, resolve, opts.Format)
	if err != nil {
		return err
	}
	if resolveErr != nil {
		return resolveErr
	}
	if opts.Save != "" {
		if err := m.WriteFile(opts.Save); err != nil {
			return err
		}
	}
	return writeRows(opts, outw, output.Rows(st, m))
}

// runPick lists the score file resolved for every protein chain of every
// structure, one TSV line per chain.
func runPick(ctx context.Context, opts cli.Options, outw io.Writer) error {
	for _, structPath := range opts.Structures {
		if err := ctx.Err(); err != nil {
			return err
		}
		picked, err := locator.PickScoreFiles([]string{structPath}, opts.ScoresDir, opts.Format)
		if err != nil {
			return err
		}
		for _, p := range picked {
			if _, err := fmt.Fprintf(outw, "%s\t%s\t%s\t%s\n",
				p.Structure, p.Chain, p.Path, p.WantName); err != nil {
				return err
			}
		}
	}
	return nil
}

// runLoad reports a previously persisted score map.
func runLoad(opts cli.Options, outw io.Writer) error {
	m, err := conservation.ReadFile(opts.Load)
	if err != nil {
		return err
	}
	return writeRows(opts, outw, output.RowsFromMap(m))
}

func writeRows(opts cli.Options, w io.Writer, rows []output.Row) error {
	if opts.Output == "json" {
		return output.WriteJSON(w, rows)
	}
	return output.WriteText(w, rows, opts.Header)
}
