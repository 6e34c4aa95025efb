// internal/cliutil/cliutil_test.go
package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Bool("pick", false, "")
	fs.String("format", "jsd", "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantFlag []string
		wantPos  []string
	}{
		{
			name:     "positional between flags",
			argv:     []string{"-format", "jsd", "1abc.pdb", "-pick"},
			wantFlag: []string{"-format", "jsd", "-pick"},
			wantPos:  []string{"1abc.pdb"},
		},
		{
			name:     "equals form",
			argv:     []string{"--format=concavity", "1abc.pdb"},
			wantFlag: []string{"--format=concavity"},
			wantPos:  []string{"1abc.pdb"},
		},
		{
			name:     "double dash terminates flags",
			argv:     []string{"-pick", "--", "-weird.pdb"},
			wantFlag: []string{"-pick"},
			wantPos:  []string{"-weird.pdb"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotFlag, gotPos := SplitFlagsAndPositionals(newFS(), tc.argv)
			if !reflect.DeepEqual(gotFlag, tc.wantFlag) {
				t.Errorf("flags = %v, want %v", gotFlag, tc.wantFlag)
			}
			if !reflect.DeepEqual(gotPos, tc.wantPos) {
				t.Errorf("positionals = %v, want %v", gotPos, tc.wantPos)
			}
		})
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.pdb", "b.pdb"} {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.pdb")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expanded = %v, want 2 entries", got)
	}

	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.cif")}); err == nil {
		t.Error("expected error for glob with no matches")
	}
}
