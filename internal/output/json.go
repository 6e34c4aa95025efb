// internal/output/json.go
package output

import (
	"io"

	"conserv/internal/jsonutil"
)

// WriteJSON writes the rows as one pretty-indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	return jsonutil.EncodePretty(w, rows)
}
