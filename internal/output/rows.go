// internal/output/rows.go
package output

import (
	"conserv/internal/conservation"
	"conserv/internal/pdb"
)

// Row is the stable per-residue report shape.
type Row struct {
	Chain   string  `json:"chain"`
	SeqNum  int     `json:"seq_num"`
	InsCode string  `json:"ins_code,omitempty"`
	Letter  string  `json:"letter,omitempty"`
	Score   float64 `json:"score"`
}

func insCode(b byte) string {
	if b == 0 {
		return ""
	}
	return string(b)
}

// Rows lists every protein residue of the structure with its score, in
// structural order. Unscored residues report 0.
func Rows(st *pdb.Structure, m *conservation.ScoreMap) []Row {
	var out []Row
	for _, ch := range st.Chains {
		if !ch.IsProtein() {
			continue
		}
		for _, r := range ch.Residues {
			out = append(out, Row{
				Chain:   ch.ID,
				SeqNum:  r.SeqNum,
				InsCode: insCode(r.InsCode),
				Letter:  string(r.Name),
				Score:   m.Score(conservation.KeyFor(ch.ID, r)),
			})
		}
	}
	return out
}

// RowsFromMap lists a persisted map without structure context, in key
// order. Letters are unknown and stay empty.
func RowsFromMap(m *conservation.ScoreMap) []Row {
	keys := m.Keys()
	out := make([]Row, 0, len(keys))
	for _, k := range keys {
		out = append(out, Row{
			Chain:   k.Chain,
			SeqNum:  k.SeqNum,
			InsCode: insCode(k.InsCode),
			Score:   m.Score(k),
		})
	}
	return out
}
