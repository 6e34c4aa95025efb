// internal/pdb/types.go
package pdb

// Structure is the read-only chain/residue view of one parsed file.
type Structure struct {
	Path   string
	Chains []Chain
}

// Chain is one polymer strand. Residues holds amino-acid residues only;
// nucleic and solvent chains parse to an empty residue list.
type Chain struct {
	ID       string
	Residues []Residue
}

// Residue is one amino-acid position: its one-letter code ('X' when the
// name is unrecognized), author sequence number, and insertion code
// (0 when absent).
type Residue struct {
	Name    byte
	SeqNum  int
	InsCode byte
}

// IsProtein reports whether the chain carries at least one amino-acid
// residue.
func (c Chain) IsProtein() bool { return len(c.Residues) > 0 }

// Letters returns the chain's one-letter sequence in structural order.
func (c Chain) Letters() string {
	b := make([]byte, len(c.Residues))
	for i, r := range c.Residues {
		b[i] = r.Name
	}
	return string(b)
}

// Chain returns the chain with the given id, or nil.
func (s *Structure) Chain(id string) *Chain {
	for i := range s.Chains {
		if s.Chains[i].ID == id {
			return &s.Chains[i]
		}
	}
	return nil
}
