// internal/conservation/persist.go
package conservation

import (
	"io"
	"os"

	"conserv/internal/jsonutil"
)

// Write serializes the map as a JSON object keyed by the encoded
// residue key. Scores round-trip exactly through Read.
func (m *ScoreMap) Write(w io.Writer) error {
	obj := make(map[string]float64, len(m.scores))
	for k, v := range m.scores {
		obj[encodeKey(k)] = v
	}
	return jsonutil.EncodePretty(w, obj)
}

// WriteFile persists the map at path, replacing any existing file.
func (m *ScoreMap) WriteFile(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Write(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// Read reconstructs a map persisted by Write.
func Read(r io.Reader) (*ScoreMap, error) {
	var obj map[string]float64
	if err := jsonutil.Decode(r, &obj); err != nil {
		return nil, err
	}
	scores := make(map[ResidueKey]float64, len(obj))
	for s, v := range obj {
		k, err := decodeKey(s)
		if err != nil {
			return nil, err
		}
		scores[k] = v
	}
	return &ScoreMap{scores: scores}, nil
}

// ReadFile is Read for a file path.
func ReadFile(path string) (*ScoreMap, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh)
}
