package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GenerateFixedProperties expands the curated per-day template of fixed-rate
// properties (social posts, CRM notifications) over every day of the given
// month. monthName accepts full or abbreviated English names.
func GenerateFixedProperties(cfg *Config, monthName string, year int) ([]Row, *Summary, error) {
	month, err := MonthNumber(monthName)
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.FixedTemplate) == 0 {
		return nil, nil, fmt.Errorf("fixed properties: empty template")
	}

	template := make([]Row, 0, len(cfg.FixedTemplate))
	for _, t := range cfg.FixedTemplate {
		template = append(template, Row{
			Event:       t.Event,
			Property:    t.Property,
			BU:          t.BU,
			Page:        t.Page,
			PriceType:   t.PriceType,
			Supply:      t.Supply,
			Allocation:  t.Allocation,
			Impressions: t.Impressions,
			Rate:        decimal.NewFromInt(t.Rate),
		})
	}

	// Template rows carry their own sentinel event; no event map applies.
	rows := ExpandMonth(template, month, year, nil)

	days := DaysInMonth(month, year)
	s := Summarize(fmt.Sprintf("Fixed Properties %s %d", monthName, year), rows)
	s.Add("Days In Month", days)
	s.Add("Unique Dates", distinct(rows, func(r Row) string { return r.Date }))
	s.Add("Properties Per Day", len(rows)/days)
	return rows, s, nil
}

// RunFixedProperties generates the month's fixed-property ledger and lands it
// in the output directory. Used by both the HTTP handler and the monthly job.
func RunFixedProperties(cfg *Config, monthName string, year int) (string, int, error) {
	rows, summary, err := GenerateFixedProperties(cfg, monthName, year)
	if err != nil {
		return "", 0, err
	}
	out, _, err := writeRun(cfg, "fixed_properties_output.csv", rows, summary, false)
	if err != nil {
		return "", 0, err
	}
	return out, len(rows), nil
}
