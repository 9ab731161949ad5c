package inventory

import (
	"sort"
	"strings"

	"AdServeDesk/internal/tabular"

	"github.com/shopspring/decimal"
)

// ProcessHPTargeting converts the homepage-targeting feed — a four column
// export of (date, impressions in millions, event, rate) — into the
// canonical ledger. Supply and allocation both equal the impression volume
// scaled to units; output impressions are forced to zero because the rows
// price on CPM volume, not delivered impressions. Dates render dd-mm-yyyy,
// the layout the homepage report has always used.
func ProcessHPTargeting(records [][]string, cfg *Config) ([]Row, *Summary, error) {
	if len(records) < 2 {
		return nil, nil, ErrEmptyUpload
	}

	var (
		rows            []Row
		skipped         int
		totalSupply     int64
		totalRateVolume = decimal.Zero
		events          = map[string]bool{}
	)
	for _, rec := range records[1:] { // header row skipped
		if len(rec) < 4 {
			skipped++
			continue
		}
		dateCell := tabular.Coerce(rec[0])
		date, ok := dateCell.Date()
		if !ok {
			skipped++
			continue
		}
		impCell := tabular.Coerce(rec[1])
		imp, ok := impCell.Number()
		if !ok {
			skipped++
			continue
		}
		rate, err := tabular.ParseAmount(rec[3])
		if err != nil {
			skipped++
			continue
		}
		event := strings.TrimSpace(rec[2])
		if event == "" {
			event = DefaultEvent
		}

		supply := int64(imp * 1_000_000)
		totalSupply += supply
		totalRateVolume = totalRateVolume.Add(
			rate.Mul(decimal.NewFromFloat(imp)).Div(decimal.NewFromInt(1000)))
		events[event] = true

		rows = append(rows, Row{
			Date:        date.Format("02-01-2006"),
			Event:       event,
			Property:    cfg.HPTargeting.Property,
			BU:          cfg.HPTargeting.BU,
			Page:        cfg.HPTargeting.Page,
			PriceType:   cfg.HPTargeting.PriceType,
			Supply:      supply,
			Allocation:  supply,
			Impressions: 0,
			Rate:        rate,
		})
	}

	names := make([]string, 0, len(events))
	for e := range events {
		names = append(names, e)
	}
	sort.Strings(names)

	s := Summarize("HP Targeting", rows)
	s.Add("Rows Skipped", skipped)
	s.Add("Events", strings.Join(names, ", "))
	s.Add("Total Supply", totalSupply)
	s.Add("Total Supply (crores)", decimal.NewFromInt(totalSupply).Div(crore))
	s.Add("Total Rate*Impressions/1000", totalRateVolume)
	s.Add("Total Rate*Impressions/1000 (crores)", totalRateVolume.Div(crore))
	s.Add("Property", cfg.HPTargeting.Property)
	s.Add("Business Unit", cfg.HPTargeting.BU)
	return rows, s, nil
}
