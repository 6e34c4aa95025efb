// internal/pdb/abbrev.go
package pdb

var aminoAbbrev = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
	"ASX": 'B', "GLX": 'Z', "UNK": 'X',
	// Common modified residues that still read as protein.
	"MSE": 'M', "CSW": 'C', "CSA": 'C', "LLP": 'K',
}

// oneLetter maps a 3-letter residue name to its one-letter code. Unknown
// 3-character names are assumed protein and map to 'X'; shorter names
// (nucleic acids) and water are not amino acids.
func oneLetter(name string) (byte, bool) {
	if c, ok := aminoAbbrev[name]; ok {
		return c, true
	}
	if name == "HOH" || name == "DOD" || len(name) < 3 {
		return 0, false
	}
	return 'X', true
}
