package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mumpitzstuff/goodTimes/internal/contract"
)

// writeCSV writes the report as plain comma-separated values with a header
// and a trailing totals row.
func writeCSV(path string, resp *contract.ReportResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range resp.Entries {
		if err := w.Write(row(e)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	if err := w.Write(totalsRow(resp)); err != nil {
		return fmt.Errorf("writing csv totals: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return f.Close()
}
