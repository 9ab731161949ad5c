package inventory

import (
	"fmt"

	"AdServeDesk/internal/tabular"
)

// EventMap maps an ISO date string to a named promotional event. Loaded once
// per run from the auxiliary "eventname" sheet and read-only afterwards.
type EventMap map[string]string

// Resolve returns the event booked for a date, or the "ALL" sentinel.
func (m EventMap) Resolve(date string) string {
	if m == nil {
		return DefaultEvent
	}
	if name, ok := m[date]; ok {
		return name
	}
	return DefaultEvent
}

// LoadEventMap reads the date→event sheet. Rows missing either side are
// skipped; the sheet being absent entirely is the caller's concern (a nil
// map resolves everything to "ALL").
func LoadEventMap(g tabular.Grid) (EventMap, error) {
	tb, err := tabular.InferHeader(tabular.Prune(g))
	if err != nil {
		return nil, fmt.Errorf("event sheet: %w", err)
	}
	if tb.Col("date") < 0 || tb.Col("event") < 0 {
		return nil, fmt.Errorf("event sheet: %w", tabular.ErrMissingColumn)
	}
	m := EventMap{}
	for i := range tb.Rows {
		var date string
		c := tb.Cell(i, "date")
		if d, ok := c.Date(); ok {
			date = d.Format("2006-01-02")
		} else {
			date = c.Text()
		}
		name := tb.Cell(i, "event").Text()
		if date == "" || name == "" {
			continue
		}
		m[date] = name
	}
	return m, nil
}
