// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
)

// TSVHeader is the canonical header row for text output. Keep this as
// the single source of truth for column order.
const TSVHeader = "chain\tseq_num\tins_code\tletter\tscore"

// WriteText prints one tab-separated line per row.
func WriteText(w io.Writer, rows []Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			r.Chain, r.SeqNum, r.InsCode, r.Letter,
			strconv.FormatFloat(r.Score, 'g', -1, 64),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
