package inventory

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Scale units used in report formatting.
var (
	crore   = decimal.NewFromInt(10_000_000)
	million = decimal.NewFromInt(1_000_000)
)

type summaryField struct {
	Key   string
	Value string
}

// Summary is the flat key→value verification report for one processor run.
// It is append-rendered to a text sink and never mutates the table it
// describes.
type Summary struct {
	Title     string
	Generated time.Time
	fields    []summaryField
}

func NewSummary(title string) *Summary {
	return &Summary{Title: title, Generated: time.Now()}
}

func (s *Summary) Add(key string, value interface{}) {
	var v string
	switch t := value.(type) {
	case decimal.Decimal:
		v = t.StringFixed(2)
	case float64:
		v = fmt.Sprintf("%.2f", t)
	default:
		v = fmt.Sprintf("%v", t)
	}
	s.fields = append(s.fields, summaryField{Key: key, Value: v})
}

// Render produces the report block in the layout the audit sinks expect.
func (s *Summary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s VERIFICATION ===\n", strings.ToUpper(s.Title))
	fmt.Fprintf(&b, "Generated on: %s\n", s.Generated.Format("2006-01-02 15:04:05"))
	for _, f := range s.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Key, f.Value)
	}
	b.WriteString("\n")
	return b.String()
}

// AppendTo writes the rendered report to an append-only sink; reports
// accumulate across runs unless the file is cleared externally.
func (s *Summary) AppendTo(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open verification sink: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(s.Render()); err != nil {
		return fmt.Errorf("append verification report: %w", err)
	}
	return nil
}

func parseLedgerDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "02-01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func distinct(rows []Row, get func(Row) string) int {
	seen := map[string]bool{}
	for _, r := range rows {
		seen[get(r)] = true
	}
	return len(seen)
}

// Summarize computes the standard audit statistics over a finished ledger:
// row count, revenue and impression totals with crore/million scaled
// variants, distinct counts for the categorical columns, the date range, and
// zero/negative counts per numeric column. Processor-specific counters
// (skips, join misses) are added by the caller on top.
func Summarize(title string, rows []Row) *Summary {
	s := NewSummary(title)
	s.Add("Total Rows", len(rows))

	revenue := decimal.Zero
	var impressions int64
	for _, r := range rows {
		revenue = revenue.Add(r.Revenue())
		if r.HasTotals {
			impressions += r.TotalImpressions
		} else {
			impressions += r.Impressions
		}
	}
	s.Add("Total Revenue", revenue)
	s.Add("Total Revenue (in cr)", revenue.Div(crore))
	s.Add("Total Impressions", impressions)
	s.Add("Total Impressions (in mn)", decimal.NewFromInt(impressions).Div(million))

	s.Add("Unique Properties", distinct(rows, func(r Row) string { return r.Property }))
	s.Add("Unique Business Units", distinct(rows, func(r Row) string { return r.BU }))
	s.Add("Unique Events", distinct(rows, func(r Row) string { return r.Event }))

	var minDate, maxDate time.Time
	for _, r := range rows {
		d, ok := parseLedgerDate(r.Date)
		if !ok {
			continue
		}
		if minDate.IsZero() || d.Before(minDate) {
			minDate = d
		}
		if maxDate.IsZero() || d.After(maxDate) {
			maxDate = d
		}
	}
	if !minDate.IsZero() {
		s.Add("Date Range", fmt.Sprintf("%s to %s",
			minDate.Format("2006-01-02"), maxDate.Format("2006-01-02")))
	}

	zero := map[string]int{}
	negative := map[string]int{}
	for _, r := range rows {
		numeric := map[string]decimal.Decimal{
			"supply":      decimal.NewFromInt(r.Supply),
			"allocation":  decimal.NewFromInt(r.Allocation),
			"impressions": decimal.NewFromInt(r.Impressions),
			"rate":        r.Rate,
		}
		for col, v := range numeric {
			if v.IsZero() {
				zero[col]++
			}
			if v.IsNegative() {
				negative[col]++
			}
		}
	}
	s.Add("Zero Values", renderColumnCounts(zero))
	s.Add("Negative Values", renderColumnCounts(negative))
	return s
}

func renderColumnCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	cols := make([]string, 0, len(counts))
	for col := range counts {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		if counts[col] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", col, counts[col]))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
