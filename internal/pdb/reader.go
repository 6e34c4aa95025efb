// internal/pdb/reader.go
package pdb

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StructureError reports a malformed structure file.
type StructureError struct {
	File string
	Line int
	Msg  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Read parses the first model of a PDB file into chains of amino-acid
// residues. Only ATOM records and amino-acid HETATM records (e.g. MSE)
// contribute residues; nucleic and solvent records leave their chain
// empty. Coordinates and atoms are not retained.
func Read(path string) (*Structure, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	st := &Structure{Path: path}
	p := parser{st: st}
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		p.ln++
		p.line = sc.Text()
		rec := strings.TrimSpace(p.cols(1, 6))
		if rec == "ENDMDL" {
			break
		}
		if rec != "ATOM" && rec != "HETATM" {
			continue
		}
		if err := p.parseAtom(rec == "HETATM"); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return st, nil
}

type parser struct {
	st   *Structure
	line string
	ln   int
}

func (p *parser) parseAtom(het bool) error {
	res := strings.TrimSpace(p.cols(18, 20))
	name, amino := oneLetter(res)
	if het && (res == "HOH" || res == "DOD" || aminoAbbrev[res] == 0) {
		// Heteroatoms count only for known modified amino acids.
		return nil
	}

	chainID := strings.TrimSpace(string(p.at(22)))
	ch := p.getChain(chainID)
	if !amino {
		return nil
	}

	seqNum, err := strconv.Atoi(strings.TrimSpace(p.cols(23, 26)))
	if err != nil {
		return &StructureError{File: p.st.Path, Line: p.ln, Msg: "bad residue sequence number"}
	}
	ins := p.at(27)
	if ins == ' ' {
		ins = 0
	}

	// Atoms of one residue arrive contiguously; a new residue starts
	// when the identifier changes.
	r := Residue{Name: name, SeqNum: seqNum, InsCode: ins}
	if n := len(ch.Residues); n > 0 {
		last := ch.Residues[n-1]
		if last.SeqNum == r.SeqNum && last.InsCode == r.InsCode {
			return nil
		}
	}
	ch.Residues = append(ch.Residues, r)
	return nil
}

// getChain returns the chain for id, appending it in encounter order the
// first time it is seen.
func (p *parser) getChain(id string) *Chain {
	for i := range p.st.Chains {
		if p.st.Chains[i].ID == id {
			return &p.st.Chains[i]
		}
	}
	p.st.Chains = append(p.st.Chains, Chain{ID: id})
	return &p.st.Chains[len(p.st.Chains)-1]
}

// cols returns the 1-based inclusive column range, clamped to the line.
func (p *parser) cols(start, end int) string {
	if start > len(p.line) {
		return ""
	}
	if end > len(p.line) {
		end = len(p.line)
	}
	return p.line[start-1 : end]
}

func (p *parser) at(col int) byte {
	if col > len(p.line) {
		return ' '
	}
	return p.line[col-1]
}
