// internal/scorefile/loader.go
package scorefile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError rejects a whole score file because of one bad row.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Load reads one tab-delimited score file in the given format. Rows keep
// file order; a row with an empty letter field is dropped; any row with a
// non-numeric index or score rejects the whole file.
func Load(path string, f Format) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path, f)
}

// Parse is Load for an open reader; name labels errors.
func Parse(r io.Reader, name string, f Format) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanAnyLine)
	var list []Record
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, keep, err := parseRow(strings.Split(line, "\t"), f)
		if err != nil {
			return nil, &ParseError{File: name, Line: ln, Msg: err.Error()}
		}
		if !keep {
			continue
		}
		list = append(list, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func parseRow(cols []string, f Format) (Record, bool, error) {
	if len(cols) < 3 {
		return Record{}, false, fmt.Errorf("bad field count %d", len(cols))
	}
	idxCol, scoreCol, letterCol := cols[0], cols[1], cols[2]
	if f == ConCavity {
		letterCol, scoreCol = cols[1], cols[2]
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxCol))
	if err != nil {
		return Record{}, false, fmt.Errorf("bad index %q", idxCol)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(scoreCol), 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("bad score %q", scoreCol)
	}
	if score < 0 {
		score = 0
	}
	letter := strings.TrimSpace(letterCol)
	if letter == "" {
		return Record{}, false, nil
	}
	// JSD carries a letter string per row; only the first counts.
	return Record{Letter: letter[0], Score: score, Index: idx}, true, nil
}

// scanAnyLine is a bufio.SplitFunc accepting \n, \r\n and bare \r line
// endings within the same file.
func scanAnyLine(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
	if data[i] == '\n' {
		return i + 1, data[:i], nil
	}
	// \r seen: swallow a following \n when present.
	if i+1 < len(data) {
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return i + 1, data[:i], nil
	}
	return 0, nil, nil
}
