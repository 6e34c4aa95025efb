// internal/conservation/scoremap.go
package conservation

import (
	"os"
	"sort"

	"conserv/internal/align"
	"conserv/internal/locator"
	"conserv/internal/pdb"
	"conserv/internal/scorefile"
)

// ScoreMap holds one structure's residue conservation scores. It is
// built once by FromFiles or ReadFile and only queried afterwards.
type ScoreMap struct {
	scores map[ResidueKey]float64
}

// Score returns the conservation score for key, or 0 when the residue
// has no assignment. Absence is "no information", never an error.
func (m *ScoreMap) Score(k ResidueKey) float64 { return m.scores[k] }

// Size is the number of residues with an assigned score.
func (m *ScoreMap) Size() int { return len(m.scores) }

// Keys returns every scored residue key, ordered by chain, sequence
// number and insertion code.
func (m *ScoreMap) Keys() []ResidueKey {
	keys := make([]ResidueKey, 0, len(m.scores))
	for k := range m.scores {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Chain != b.Chain {
			return a.Chain < b.Chain
		}
		if a.SeqNum != b.SeqNum {
			return a.SeqNum < b.SeqNum
		}
		return a.InsCode < b.InsCode
	})
	return keys
}

type keyScore struct {
	key   ResidueKey
	score float64
}

// chainAssignments aligns one chain's residue letters against its score
// records and returns the chain's own (key, score) pairs. No state is
// shared across chains.
func chainAssignments(ch pdb.Chain, recs []scorefile.Record) []keyScore {
	pairs := align.Align(ch.Letters(), scorefile.Letters(recs))
	out := make([]keyScore, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, keyScore{
			key:   KeyFor(ch.ID, ch.Residues[p.A]),
			score: recs[p.B].Score,
		})
	}
	return out
}

// FromFiles builds the score map for a structure. resolve maps a
// normalized chain id to a score-file path; an empty path or a missing
// file leaves that chain unscored. A file that fails to parse aborts the
// whole build.
func FromFiles(st *pdb.Structure, resolve func(chainID string) string, f scorefile.Format) (*ScoreMap, error) {
	scores := make(map[ResidueKey]float64)
	for _, ch := range st.Chains {
		if !ch.IsProtein() {
			continue
		}
		path := resolve(locator.NormalizeChainID(ch.ID))
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		recs, err := scorefile.Load(path, f)
		if err != nil {
			return nil, err
		}
		for _, a := range chainAssignments(ch, recs) {
			scores[a.key] = a.score
		}
	}
	return &ScoreMap{scores: scores}, nil
}
