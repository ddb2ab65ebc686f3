package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fadilmartias/recruit-assistant/internal/model"
)

// WriteCSV writes a header row then one row per candidate. Simple lists are
// joined with "|" and structured lists are JSON encoded.
func WriteCSV(w io.Writer, layout Layout, candidates []model.Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(layout.Headers()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	cols := layout.columns()
	record := make([]string, len(cols))
	for i := range candidates {
		for j, col := range cols {
			record[j] = col.csv(&candidates[i])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
