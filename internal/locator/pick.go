// internal/locator/pick.go
package locator

import (
	"conserv/internal/pdb"
	"conserv/internal/scorefile"
)

// Picked pairs one protein chain with its resolved score file.
type Picked struct {
	Structure string
	Chain     string
	Path      string // resolved score file
	WantName  string // conventional <base><CHAIN>.scores name
}

// PickScoreFiles resolves a score file for every protein chain of every
// structure. Chains without amino-acid residues are skipped; chains with
// no candidate file at all are omitted from the result.
func PickScoreFiles(structPaths []string, scoresDir string, f scorefile.Format) ([]Picked, error) {
	var out []Picked
	for _, sp := range structPaths {
		st, err := pdb.Read(sp)
		if err != nil {
			return nil, err
		}
		loc := New(sp, scoresDir, f)
		for _, ch := range st.Chains {
			if !ch.IsProtein() {
				continue
			}
			id := NormalizeChainID(ch.ID)
			path, err := loc.Resolve(id, ch.Letters())
			if err != nil {
				return nil, err
			}
			if path == "" {
				continue
			}
			out = append(out, Picked{
				Structure: sp,
				Chain:     id,
				Path:      path,
				WantName:  loc.WantName(id),
			})
		}
	}
	return out, nil
}
