package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var ledgerHeader = []string{
	"date", "event", "property", "bu", "page", "price_type",
	"supply", "allocation", "impressions", "rate",
}

// WriteLedgerCSV writes the canonical flat output for one processor run.
// Derived total columns are appended only when the processor computed them.
func WriteLedgerCSV(path string, rows []Row, withTotals bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{}, ledgerHeader...)
	if withTotals {
		header = append(header, "total_revenue", "total_impressions")
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Date,
			r.Event,
			r.Property,
			r.BU,
			r.Page,
			r.PriceType,
			strconv.FormatInt(r.Supply, 10),
			strconv.FormatInt(r.Allocation, 10),
			strconv.FormatInt(r.Impressions, 10),
			r.Rate.String(),
		}
		if withTotals {
			rec = append(rec,
				r.TotalRevenue.String(),
				strconv.FormatInt(r.TotalImpressions, 10),
			)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
