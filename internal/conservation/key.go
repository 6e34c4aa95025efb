// internal/conservation/key.go
package conservation

import (
	"fmt"
	"strconv"
	"strings"

	"conserv/internal/pdb"
)

// ResidueKey identifies a residue by structural identity alone: chain
// id, sequence number and insertion code (0 when absent). It is a plain
// comparable value and retains no reference to the structure it came
// from, so score maps keyed by it do not pin the structure graph.
type ResidueKey struct {
	Chain   string
	SeqNum  int
	InsCode byte
}

// KeyFor builds the key for a residue of the given chain.
func KeyFor(chainID string, r pdb.Residue) ResidueKey {
	return ResidueKey{Chain: chainID, SeqNum: r.SeqNum, InsCode: r.InsCode}
}

func (k ResidueKey) String() string {
	if k.InsCode == 0 {
		return fmt.Sprintf("%s%d", k.Chain, k.SeqNum)
	}
	return fmt.Sprintf("%s%d%c", k.Chain, k.SeqNum, k.InsCode)
}

// encodeKey is the persisted textual form: chain|seqnum|inscode, with an
// empty third field for residues without an insertion code.
func encodeKey(k ResidueKey) string {
	ins := ""
	if k.InsCode != 0 {
		ins = string(k.InsCode)
	}
	return fmt.Sprintf("%s|%d|%s", k.Chain, k.SeqNum, ins)
}

func decodeKey(s string) (ResidueKey, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return ResidueKey{}, fmt.Errorf("bad residue key %q", s)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return ResidueKey{}, fmt.Errorf("bad residue key %q", s)
	}
	k := ResidueKey{Chain: parts[0], SeqNum: n}
	if parts[2] != "" {
		k.InsCode = parts[2][0]
	}
	return k, nil
}
