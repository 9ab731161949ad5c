package inventory

import (
	"fmt"
	"strings"

	"AdServeDesk/internal/tabular"

	"github.com/shopspring/decimal"
)

// The monetised search feed prices every slot at a fixed CPM; business-unit
// shares arrive in crores in the SDA column.
const monetisedSDAColumn = "SDA"

// FindZeroSlotColumn locates the zero-slot share column by the loose names
// the sheet has used over time. Falls back to the conventional header.
func FindZeroSlotColumn(tb tabular.Table) string {
	for _, col := range tb.Columns {
		lower := strings.ToLower(col)
		if strings.Contains(col, "0th") ||
			strings.Contains(lower, "zeroslot") ||
			strings.Contains(lower, "zero slot") {
			return col
		}
	}
	return "SDA(0th slot)"
}

// ProcessMonetised converts per-BU monthly revenue shares into a daily CPM
// inventory ledger for one monetised search property. column selects which
// share column drives it (SDA, or the zero-slot variant).
func ProcessMonetised(tb tabular.Table, cfg *Config, propertyName, column string, month, year int, events EventMap) ([]Row, *Summary, error) {
	if len(tb.Columns) == 0 {
		return nil, nil, ErrEmptyUpload
	}
	if tb.Col(column) < 0 {
		return nil, nil, fmt.Errorf("%s: %w", column, ErrMissingTarget)
	}
	buColumn := tb.Columns[0]
	totalDays := DaysInMonth(month, year)
	if totalDays == 0 {
		return nil, nil, fmt.Errorf("%w: month %d", ErrBadMonth, month)
	}

	rate := decimal.NewFromInt(cfg.MonetisedRate)
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrNonPositiveRate
	}
	days := decimal.NewFromInt(int64(totalDays))

	type buShare struct {
		bu         string
		allocation int64
	}
	var (
		shares       []buShare
		skippedUnits int
		dailySupply  int64
	)
	for i := range tb.Rows {
		bu := tb.Cell(i, buColumn).Text()
		shareCell := tb.Cell(i, column)
		if bu == "" || shareCell.IsEmpty() {
			skippedUnits++
			continue
		}
		share, err := tabular.Amount(shareCell)
		if err != nil {
			skippedUnits++
			continue
		}

		// crores → rupees → per-day revenue → slots at the fixed CPM
		dailyRevenue := share.Mul(crore).Div(days)
		allocation := dailyRevenue.Mul(decimal.NewFromInt(1000)).Div(rate).RoundBank(0).IntPart()
		shares = append(shares, buShare{bu: bu, allocation: allocation})
		dailySupply += allocation
	}
	if len(shares) == 0 {
		return nil, nil, ErrNoBusinessUnits
	}

	template := make([]Row, 0, len(shares))
	for _, sh := range shares {
		template = append(template, Row{
			Property:   propertyName,
			BU:         sh.bu,
			Page:       PageSearch,
			PriceType:  PriceCPM,
			Supply:     dailySupply,
			Allocation: sh.allocation,
			Rate:       rate,
		})
	}
	rows := ExpandMonth(template, month, year, events)

	// CPM revenue: allocation × rate ÷ 1000
	dailyRevenue := decimal.Zero
	for _, sh := range shares {
		dailyRevenue = dailyRevenue.Add(rate.Mul(decimal.NewFromInt(sh.allocation)))
	}
	dailyRevenue = dailyRevenue.Div(decimal.NewFromInt(1000))
	monthlyRevenue := dailyRevenue.Mul(days)

	s := Summarize(propertyName, rows)
	s.Add("Start Date", fmt.Sprintf("%04d-%02d-01", year, month))
	s.Add("Total Days", totalDays)
	s.Add("Total Business Units", len(shares))
	s.Add("Skipped Business Units", skippedUnits)
	s.Add("Rate (CPM)", cfg.MonetisedRate)
	s.Add("Daily Revenue", dailyRevenue)
	s.Add("Monthly Revenue (Calculated)", monthlyRevenue)
	s.Add("Monthly Revenue (In Crores)", monthlyRevenue.Div(crore))
	return rows, s, nil
}
