// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"conserv/internal/scorefile"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("conserv")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, "1abc.pdb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Format != scorefile.JSD || opt.Output != "text" || !opt.Header {
		t.Errorf("unexpected defaults: %+v", opt)
	}
	if len(opt.Structures) != 1 || opt.Structures[0] != "1abc.pdb" {
		t.Errorf("structures = %v", opt.Structures)
	}
}

func TestParseFlags(t *testing.T) {
	opt, err := parse(t,
		"-format", "concavity", "-output", "json", "-no-header",
		"-scores-dir", "/tmp/scores", "-save", "out.json", "1abc.pdb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Format != scorefile.ConCavity || opt.Output != "json" || opt.Header {
		t.Errorf("flags not applied: %+v", opt)
	}
	if opt.ScoresDir != "/tmp/scores" || opt.Save != "out.json" {
		t.Errorf("paths not applied: %+v", opt)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{name: "no structures", argv: []string{}},
		{name: "load with structures", argv: []string{"-load", "m.json", "1abc.pdb"}},
		{name: "load with save", argv: []string{"-load", "m.json", "-save", "n.json"}},
		{name: "load with pick", argv: []string{"-load", "m.json", "-pick"}},
		{name: "pick with save", argv: []string{"-pick", "-save", "n.json", "1abc.pdb"}},
		{name: "multiple structures without pick", argv: []string{"a.pdb", "b.pdb"}},
		{name: "bad output", argv: []string{"-output", "xml", "1abc.pdb"}},
		{name: "bad format", argv: []string{"-format", "hmm", "1abc.pdb"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse(t, tc.argv...); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParsePickAllowsMultiple(t *testing.T) {
	opt, err := parse(t, "-pick", "a.pdb", "b.pdb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opt.Structures) != 2 {
		t.Errorf("structures = %v", opt.Structures)
	}
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseLoadAlone(t *testing.T) {
	opt, err := parse(t, "-load", "m.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Load != "m.json" {
		t.Errorf("load = %q", opt.Load)
	}
}
