// internal/locator/locator.go
package locator

import (
	"os"
	"path/filepath"
	"strings"

	"conserv/internal/align"
	"conserv/internal/scorefile"
)

// Locator resolves score files for the chains of one structure file.
// Resolution tries the naming convention first and falls back to the
// candidate whose record letters best match the chain by LCS length.
type Locator struct {
	dir    string
	base   string
	format scorefile.Format
}

// New builds a Locator for a structure file. scoresDir overrides the
// directory searched for score files; empty means the structure's own
// directory.
func New(structPath, scoresDir string, f scorefile.Format) Locator {
	dir := scoresDir
	if dir == "" {
		dir = filepath.Dir(structPath)
	}
	return Locator{dir: dir, base: BaseName(structPath), format: f}
}

// NormalizeChainID maps blank chain ids to "A".
func NormalizeChainID(id string) string {
	if strings.TrimSpace(id) == "" {
		return "A"
	}
	return id
}

// BaseName strips the trailing 4-character extension (".pdb", ".ent")
// from a structure filename.
func BaseName(structPath string) string {
	name := filepath.Base(structPath)
	if len(name) > 4 {
		return name[:len(name)-4]
	}
	return name
}

// WantName is the conventional score filename for a chain.
func (l Locator) WantName(chainID string) string {
	return l.base + strings.ToUpper(NormalizeChainID(chainID)) + ".scores"
}

// Resolve returns the score file path for one chain, or "" when no
// candidate exists. letters is the chain's one-letter residue sequence,
// used only for the LCS fallback. Ties keep the first candidate in
// directory listing order.
func (l Locator) Resolve(chainID, letters string) (string, error) {
	direct := filepath.Join(l.dir, l.WantName(chainID))
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	names, err := l.candidates()
	if err != nil {
		return "", err
	}
	best, max := "", -1
	for _, name := range names {
		path := filepath.Join(l.dir, name)
		recs, err := scorefile.Load(path, l.format)
		if err != nil {
			return "", err
		}
		if n := align.MatchLength(letters, scorefile.Letters(recs)); n > max {
			max, best = n, path
		}
	}
	return best, nil
}

// candidates lists <base>*.scores files in the search directory, in the
// sorted order os.ReadDir guarantees.
func (l Locator) candidates() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, l.base) && strings.HasSuffix(name, ".scores") {
			names = append(names, name)
		}
	}
	return names, nil
}
