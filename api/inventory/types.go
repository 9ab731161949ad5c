package inventory

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Price types carried on booked rows. Anything else falls back to a zero
// per-slot rate and is counted in the verification summary.
const (
	PriceCPM = "CPM"
	PriceCPD = "CPD"
	PriceCPC = "CPC"
)

// Coarse placement groupings.
const (
	PageSearch = "SEARCH"
	PageHome   = "HOME"
	PageSocial = "SOCIAL"
	PageCRM    = "CRM"
)

// DefaultEvent is the sentinel event name used when a date has no entry in
// the event map.
const DefaultEvent = "ALL"

// Run-fatal conditions. Row-level problems are skipped and counted instead.
var (
	ErrEmptyUpload     = errors.New("uploaded file has no usable rows")
	ErrMissingTarget   = errors.New("target column not found")
	ErrBadMonth        = errors.New("invalid month name")
	ErrNoBusinessUnits = errors.New("no business units produced any rows")
)

// Row is one line of the canonical inventory ledger: one (date, property,
// business unit) booking.
type Row struct {
	Date        string // YYYY-MM-DD unless a processor documents otherwise
	Event       string
	Property    string
	BU          string
	Page        string
	PriceType   string
	Supply      int64
	Allocation  int64
	Impressions int64
	Rate        decimal.Decimal

	// Derived columns, only populated by processors that compute them.
	TotalRevenue     decimal.Decimal
	TotalImpressions int64
	HasTotals        bool
}

// Revenue is allocation × rate for this row, independent of whether the
// processor stored it; the verification totals check uses it.
func (r Row) Revenue() decimal.Decimal {
	return r.Rate.Mul(decimal.NewFromInt(r.Allocation))
}
