package inventory

import (
	"testing"

	"AdServeDesk/internal/tabular"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// categorySheet builds the canonical test sheet: two data days for two
// property columns, then the seven trailing rate-card rows ending with the
// property→page map.
func categorySheet() tabular.Grid {
	return tabular.FromStrings([][]string{
		{"Date", "Event", "Men's Jeans", "Women's Dresses"},
		{"2025-05-01", "", "1000", "2000"},
		{"2025-05-02", "SALE", "3000", "4000"},
		{"Rate", "", "100000", "200000"},
		{"No of slot", "", "2", "4"},
		{"Allocation", "", "GROUP A", "GROUP B"},
		{"Total_revenue", "", "1", "1"},
		{"Total_impressions", "", "1", "1"},
		{"Discount", "", "0", "0"},
		{"Page", "", "HOME", "SEARCH"},
	})
}

func TestProcessCategoryPages(t *testing.T) {
	rows, summary, err := ProcessCategoryPages(categorySheet(), "Category Pages")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.NotNil(t, summary)

	// melt is stable: day 1 jeans, day 1 dresses, day 2 jeans, day 2 dresses
	jeans := rows[0]
	assert.Equal(t, "2025-05-01", jeans.Date)
	assert.Equal(t, DefaultEvent, jeans.Event, "blank event cells fill with the sentinel")
	assert.Equal(t, "Men's Jeans", jeans.Property)
	assert.Equal(t, "GROUP A", jeans.BU)
	assert.Equal(t, "HOME", jeans.Page)
	assert.Equal(t, PriceCPD, jeans.PriceType)
	assert.Equal(t, int64(2), jeans.Supply)
	assert.Equal(t, int64(2), jeans.Allocation)
	assert.Equal(t, int64(500), jeans.Impressions, "group impressions split per slot")
	// per-slot CPD rate: 100000 × 500 / 1000
	assert.True(t, jeans.Rate.Equal(decimal.NewFromInt(50000)), "got %s", jeans.Rate)
	assert.True(t, jeans.TotalRevenue.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, int64(1000), jeans.TotalImpressions)
	assert.True(t, jeans.HasTotals)

	dresses := rows[1]
	assert.Equal(t, "Women's Dresses", dresses.Property)
	assert.Equal(t, "SEARCH", dresses.Page)
	assert.Equal(t, int64(4), dresses.Supply)
	assert.Equal(t, int64(500), dresses.Impressions)
	assert.True(t, dresses.Rate.Equal(decimal.NewFromInt(100000)))

	day2 := rows[2]
	assert.Equal(t, "2025-05-02", day2.Date)
	assert.Equal(t, "SALE", day2.Event)
	assert.Equal(t, int64(1500), day2.Impressions)
	assert.True(t, day2.Rate.Equal(decimal.NewFromInt(150000)))
}

func TestProcessCategoryPagesSuffixedProperties(t *testing.T) {
	// Duplicate property columns arrive suffixed (".1"); the join must
	// still find the rate card entry and the output carries the bare name.
	g := tabular.FromStrings([][]string{
		{"Date", "Event", "Watches.1"},
		{"2025-05-01", "ALL", "900"},
		{"Rate", "", "10000"},
		{"No of slot", "", "3"},
		{"Allocation", "", "GROUP C"},
		{"Total_revenue", "", "1"},
		{"Total_impressions", "", "1"},
		{"Discount", "", "0"},
		{"Page", "", "HOME"},
	})
	rows, _, err := ProcessCategoryPages(g, "Category Pages")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Watches", rows[0].Property)
	assert.Equal(t, "GROUP C", rows[0].BU)
	assert.Equal(t, "HOME", rows[0].Page)
}

func TestProcessCategoryPagesSkipsBadRows(t *testing.T) {
	g := tabular.FromStrings([][]string{
		{"Date", "Event", "Jeans"},
		{"2025-05-01", "ALL", "100"},
		{"not-a-date", "ALL", "100"},
		{"Rate", "", "10000"},
		{"No of slot", "", "1"},
		{"Allocation", "", "GROUP A"},
		{"Total_revenue", "", "1"},
		{"Total_impressions", "", "1"},
		{"Discount", "", "0"},
		{"Page", "", "HOME"},
	})
	rows, _, err := ProcessCategoryPages(g, "Category Pages")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "rows that fail date parsing are skipped, not zero-filled")
}

func TestProcessCategoryPagesTooShort(t *testing.T) {
	g := tabular.FromStrings([][]string{
		{"Date", "Event", "Jeans"},
		{"2025-05-01", "ALL", "100"},
	})
	_, _, err := ProcessCategoryPages(g, "Category Pages")
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestFillEmpty(t *testing.T) {
	tb := tabular.Table{
		Columns: []string{"Date", "Event"},
		Rows: [][]tabular.Cell{
			{tabular.StringCell("2025-05-01"), tabular.EmptyCell()},
			{tabular.StringCell("2025-05-02"), tabular.StringCell("SALE")},
		},
	}
	out := fillEmpty(tb, "Event", DefaultEvent)
	assert.Equal(t, DefaultEvent, out.Cell(0, "Event").Text())
	assert.Equal(t, "SALE", out.Cell(1, "Event").Text())
	// original untouched
	assert.True(t, tb.Rows[0][1].IsEmpty())
}
