package inventory

import (
	"fmt"

	"AdServeDesk/internal/tabular"

	"github.com/shopspring/decimal"
)

// Column headers of the paid-listing target sheet. The business-unit column
// is whatever comes first.
const (
	plaTargetColumn = "PLA TARGET"
	plaFloorColumn  = "Floor Price PLA"
)

// ProcessPLA converts monthly paid-listing revenue targets per business unit
// into a daily inventory ledger. Targets arrive in crores and are converted
// to rupees; a business unit with a missing target or a non-positive floor
// rate is skipped and counted, never zero-filled.
func ProcessPLA(tb tabular.Table, cfg *Config, month, year int, events EventMap) ([]Row, *Summary, error) {
	if len(tb.Columns) == 0 {
		return nil, nil, ErrEmptyUpload
	}
	if tb.Col(plaTargetColumn) < 0 {
		return nil, nil, fmt.Errorf("%s: %w", plaTargetColumn, ErrMissingTarget)
	}
	if tb.Col(plaFloorColumn) < 0 {
		return nil, nil, fmt.Errorf("%s: %w", plaFloorColumn, ErrMissingTarget)
	}
	buColumn := tb.Columns[0]
	totalDays := DaysInMonth(month, year)
	if totalDays == 0 {
		return nil, nil, fmt.Errorf("%w: month %d", ErrBadMonth, month)
	}

	type buPlan struct {
		bu        string
		property  string
		rate      decimal.Decimal
		inventory int64
	}
	var (
		plans         []buPlan
		skippedUnits  int
		monthlyTarget = decimal.Zero
	)
	for i := range tb.Rows {
		bu := tb.Cell(i, buColumn).Text()
		targetCell := tb.Cell(i, plaTargetColumn)
		if bu == "" || targetCell.IsEmpty() {
			skippedUnits++
			continue
		}
		target, err := tabular.Amount(targetCell)
		if err != nil {
			skippedUnits++
			continue
		}
		floor, err := tabular.Amount(tb.Cell(i, plaFloorColumn))
		if err != nil {
			skippedUnits++
			continue
		}

		revenueINR := target.Mul(crore)
		inventory, err := ConvertTargetToInventory(revenueINR, floor, totalDays)
		if err != nil {
			skippedUnits++
			continue
		}
		monthlyTarget = monthlyTarget.Add(revenueINR)

		property, ok := cfg.PLAPropertyMap[bu]
		if !ok {
			property = "PLA"
		}
		plans = append(plans, buPlan{bu: bu, property: property, rate: floor, inventory: inventory})
	}
	if len(plans) == 0 {
		return nil, nil, ErrNoBusinessUnits
	}

	mapped := map[string]bool{}
	for _, p := range cfg.PLAPropertyMap {
		mapped[p] = true
	}

	rows := make([]Row, 0, len(plans)*totalDays)
	for _, p := range plans {
		for day := 1; day <= totalDays; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			rows = append(rows, Row{
				Date:       date,
				Event:      events.Resolve(date),
				Property:   p.property,
				BU:         p.bu,
				Page:       PageSearch,
				PriceType:  PriceCPC,
				Allocation: p.inventory,
				Rate:       p.rate,
			})
		}
	}

	// Mapped properties supply themselves; unmapped ones share a per-date
	// pool of every unmapped allocation booked that day.
	pool := map[string]int64{}
	for _, r := range rows {
		if !mapped[r.Property] {
			pool[r.Date] += r.Allocation
		}
	}
	for i := range rows {
		if mapped[rows[i].Property] {
			rows[i].Supply = rows[i].Allocation
		} else {
			rows[i].Supply = pool[rows[i].Date]
		}
	}

	firstDate := fmt.Sprintf("%04d-%02d-01", year, month)
	firstDayRevenue := decimal.Zero
	for _, r := range rows {
		if r.Date == firstDate {
			firstDayRevenue = firstDayRevenue.Add(r.Revenue())
		}
	}
	projected := firstDayRevenue.Mul(decimal.NewFromInt(int64(totalDays)))

	s := Summarize("PLA", rows)
	s.Add("Start Date", firstDate)
	s.Add("Total Days", totalDays)
	s.Add("Total Business Units", len(plans))
	s.Add("Skipped Business Units", skippedUnits)
	s.Add("Daily Revenue (First Day)", firstDayRevenue)
	s.Add("Monthly Revenue (Projected)", projected)
	s.Add("Monthly Revenue (In Crores)", projected.Div(crore))
	s.Add("Target Monthly Revenue (In Crores)", monthlyTarget.Div(crore))
	return rows, s, nil
}
