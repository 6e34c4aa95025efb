// internal/pdb/reader_test.go
package pdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// atomLine formats a minimal fixed-column ATOM/HETATM record.
func atomLine(rec, atom, res string, chain byte, seq int, ins byte) string {
	return fmt.Sprintf("%-6s%5d %-4s %3s %c%4d%c   %8.3f%8.3f%8.3f",
		rec, 1, atom, res, chain, seq, ins, 0.0, 0.0, 0.0)
}

func writePDB(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pdb")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadSingleChain(t *testing.T) {
	path := writePDB(t,
		atomLine("ATOM", "N", "MET", 'A', 1, ' '),
		atomLine("ATOM", "CA", "MET", 'A', 1, ' '), // same residue, second atom
		atomLine("ATOM", "CA", "LYS", 'A', 2, ' '),
		atomLine("ATOM", "CA", "VAL", 'A', 3, ' '),
		atomLine("ATOM", "CA", "LEU", 'A', 4, ' '),
	)
	st, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(st.Chains) != 1 {
		t.Fatalf("got %d chains, want 1", len(st.Chains))
	}
	ch := st.Chains[0]
	if ch.ID != "A" || ch.Letters() != "MKVL" {
		t.Errorf("chain %q letters %q, want A MKVL", ch.ID, ch.Letters())
	}
	if ch.Residues[0].SeqNum != 1 || ch.Residues[3].SeqNum != 4 {
		t.Errorf("sequence numbers wrong: %+v", ch.Residues)
	}
}

func TestReadInsertionCodes(t *testing.T) {
	path := writePDB(t,
		atomLine("ATOM", "CA", "GLY", 'A', 10, ' '),
		atomLine("ATOM", "CA", "ALA", 'A', 10, 'A'),
		atomLine("ATOM", "CA", "SER", 'A', 11, ' '),
	)
	st, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ch := st.Chains[0]
	if len(ch.Residues) != 3 {
		t.Fatalf("got %d residues, want 3: %+v", len(ch.Residues), ch.Residues)
	}
	if ch.Residues[0].InsCode != 0 || ch.Residues[1].InsCode != 'A' {
		t.Errorf("insertion codes wrong: %+v", ch.Residues[:2])
	}
}

func TestReadHetatmModifiedResidue(t *testing.T) {
	path := writePDB(t,
		atomLine("ATOM", "CA", "MET", 'A', 1, ' '),
		atomLine("HETATM", "CA", "MSE", 'A', 2, ' '), // selenomethionine reads as M
		atomLine("HETATM", "O", "HOH", 'A', 101, ' '),
	)
	st, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := st.Chains[0].Letters(); got != "MM" {
		t.Errorf("letters = %q, want MM", got)
	}
}

func TestReadSkipsNucleicChains(t *testing.T) {
	path := writePDB(t,
		atomLine("ATOM", "CA", "MET", 'A', 1, ' '),
		atomLine("ATOM", "P", " DA", 'B', 1, ' '),
		atomLine("ATOM", "P", " DC", 'B', 2, ' '),
	)
	st, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(st.Chains) != 2 {
		t.Fatalf("got %d chains, want 2", len(st.Chains))
	}
	b := st.Chain("B")
	if b == nil || b.IsProtein() {
		t.Errorf("chain B should exist and be non-protein: %+v", b)
	}
}

func TestReadFirstModelOnly(t *testing.T) {
	path := writePDB(t,
		"MODEL        1",
		atomLine("ATOM", "CA", "MET", 'A', 1, ' '),
		"ENDMDL",
		"MODEL        2",
		atomLine("ATOM", "CA", "LYS", 'A', 2, ' '),
		"ENDMDL",
	)
	st, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := st.Chains[0].Letters(); got != "M" {
		t.Errorf("letters = %q, want M (first model only)", got)
	}
}

func TestReadUnknownResidueIsX(t *testing.T) {
	path := writePDB(t, atomLine("ATOM", "CA", "FOO", 'A', 1, ' '))
	st, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := st.Chains[0].Letters(); got != "X" {
		t.Errorf("letters = %q, want X", got)
	}
}

func TestReadBadSeqNum(t *testing.T) {
	line := atomLine("ATOM", "CA", "MET", 'A', 1, ' ')
	line = line[:22] + "  xy" + line[26:]
	path := writePDB(t, line)
	_, err := Read(path)
	if err == nil {
		t.Fatal("expected StructureError")
	}
	var se *StructureError
	if !errors.As(err, &se) || se.Line != 1 {
		t.Fatalf("unexpected error: %v", err)
	}
}
