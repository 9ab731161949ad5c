package inventory

import (
	"fmt"
	"math"

	"AdServeDesk/internal/tabular"

	"github.com/shopspring/decimal"
)

// The trailing rows of a category sheet hold the rate card: aggregate
// metrics (rate, slot count, allocated BU, scaled revenue figures) plus a
// final property→page mapping row.
const rateCardRows = 7

// catRow is the category pipeline's working row between the rate-card join
// and the final ledger. Impressions start as the (date, property) group
// total and become per-slot after supply distribution.
type catRow struct {
	date        string
	event       string
	property    string
	bu          string
	page        string
	slots       int64
	rate        decimal.Decimal
	impressions float64
	supply      int64
}

// fillEmpty replaces empty cells of one column so the melt does not drop
// rows whose event cell was left blank on the sheet.
func fillEmpty(t tabular.Table, column, value string) tabular.Table {
	j := t.Col(column)
	if j < 0 {
		return t
	}
	rows := make([][]tabular.Cell, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]tabular.Cell{}, row...)
		for len(rows[i]) <= j {
			rows[i] = append(rows[i], tabular.EmptyCell())
		}
		if rows[i][j].IsEmpty() {
			rows[i][j] = tabular.StringCell(value)
		}
	}
	return tabular.Table{Columns: t.Columns, Rows: rows}
}

// ProcessCategoryPages reshapes one category-pages sheet into the canonical
// ledger: prune, header inference, rate-card split, wide→long melt of the
// per-property impression block, rate-card pivot joined back by property,
// supply distribution, and per-slot pricing. label names the business line
// in outputs ("Category Pages", "Beauty Pages").
func ProcessCategoryPages(g tabular.Grid, label string) ([]Row, *Summary, error) {
	tb, err := tabular.InferHeader(tabular.Prune(g))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", label, err)
	}
	tb = tb.DropColumn("Traffic")
	if tb.Col("Date") < 0 {
		return nil, nil, fmt.Errorf("%s: date column: %w", label, tabular.ErrMissingColumn)
	}
	if len(tb.Rows) <= rateCardRows {
		return nil, nil, fmt.Errorf("%s: %w", label, ErrEmptyUpload)
	}

	split := len(tb.Rows) - rateCardRows
	main := fillEmpty(tb.Slice(0, split), "Event", DefaultEvent)
	card := tb.Slice(split, len(tb.Rows))

	// The final rate-card row maps each property column to its page group.
	pageMap := map[string]string{}
	last := card.Rows[len(card.Rows)-1]
	for j, name := range card.Columns {
		if name == "" || card.Col("Date") == j || card.Col("Event") == j {
			continue
		}
		if j < len(last) && !last[j].IsEmpty() {
			pageMap[tabular.NormalizeProperty(name)] = last[j].Text()
		}
	}

	cardLong, err := tabular.Melt(
		card.RenameColumn("Date", "Metric").DropColumn("Event"),
		[]string{"Metric"}, "Property", "Total_value",
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: melt rate card: %w", label, err)
	}
	cardWide, err := tabular.Pivot(cardLong, "Property", "Metric", "Total_value")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: pivot rate card: %w", label, err)
	}

	long, err := tabular.Melt(main, []string{"Date", "Event"}, "Property", "Impressions")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: melt impressions: %w", label, err)
	}
	skipped := 0

	joined, joinMisses, err := tabular.LeftJoin(long, cardWide, "Property")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: rate card join: %w", label, err)
	}

	work := make([]catRow, 0, len(joined.Rows))
	for i := range joined.Rows {
		d, ok := joined.Cell(i, "Date").Date()
		if !ok {
			skipped++
			continue
		}
		imp, ok := joined.Cell(i, "Impressions").Number()
		if !ok {
			skipped++
			continue
		}

		row := catRow{
			date:        d.Format("2006-01-02"),
			event:       joined.Cell(i, "Event").Text(),
			property:    tabular.NormalizeProperty(joined.Cell(i, "Property").Text()),
			bu:          joined.Cell(i, "Allocation").Text(),
			impressions: math.Round(imp),
		}
		if n, ok := joined.Cell(i, "No of slot").Number(); ok {
			row.slots = int64(n)
		}
		if amt, aerr := tabular.Amount(joined.Cell(i, "Rate")); aerr == nil {
			row.rate = amt
		}
		row.page = pageMap[row.property]
		work = append(work, row)
	}

	distributeSupply(work)
	zeroSupply := perSlotImpressions(work)

	unknownPriceType := 0
	rows := make([]Row, 0, len(work))
	for _, w := range work {
		perSlot, known := PerSlotRate(PriceCPD, w.rate, w.impressions)
		if !known {
			unknownPriceType++
		}
		rate := perSlot.RoundBank(0)
		imp := int64(w.impressions)

		r := Row{
			Date:             w.date,
			Event:            w.event,
			Property:         w.property,
			BU:               w.bu,
			Page:             w.page,
			PriceType:        PriceCPD,
			Supply:           w.supply,
			Allocation:       w.slots,
			Impressions:      imp,
			Rate:             rate,
			TotalRevenue:     rate.Mul(decimal.NewFromInt(w.slots)),
			TotalImpressions: w.slots * imp,
			HasTotals:        true,
		}
		rows = append(rows, r)
	}

	s := Summarize(label, rows)
	s.Add("Skipped Rows", skipped)
	s.Add("Rate Card Join Misses", joinMisses)
	s.Add("Zero Supply Groups", zeroSupply)
	s.Add("Unknown Price Types", unknownPriceType)
	return rows, s, nil
}
