// internal/scorefile/scorefile.go
package scorefile

import (
	"fmt"
	"strings"
)

// Format selects the column layout of a tabular conservation-score file.
type Format int

const (
	// JSD is Jensen-Shannon divergence output: index, score, letters.
	JSD Format = iota
	// ConCavity output: index, letter, score.
	ConCavity
)

func (f Format) String() string {
	switch f {
	case JSD:
		return "jsd"
	case ConCavity:
		return "concavity"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps user text to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jsd":
		return JSD, nil
	case "concavity":
		return ConCavity, nil
	}
	return JSD, fmt.Errorf("invalid score format %q (want jsd | concavity)", s)
}

// Record is one kept row of a score file: the residue letter, its
// clamped non-negative score, and the row's index column.
type Record struct {
	Letter byte
	Score  float64
	Index  int
}

// Letters returns the record letters uppercased, in file order.
func Letters(recs []Record) string {
	b := make([]byte, len(recs))
	for i, r := range recs {
		b[i] = r.Letter
	}
	return strings.ToUpper(string(b))
}
