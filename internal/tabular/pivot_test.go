package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateCardLong() Table {
	return Table{
		Columns: []string{"Metric", "Property", "Total_value"},
		Rows: [][]Cell{
			{StringCell("Rate"), StringCell("PagenameA"), NumberCell(500)},
			{StringCell("Rate"), StringCell("PagenameB"), NumberCell(750)},
			{StringCell("No of slot"), StringCell("PagenameA"), NumberCell(4)},
			{StringCell("No of slot"), StringCell("PagenameB"), NumberCell(2)},
			{StringCell("Allocation"), StringCell("PagenameA"), StringCell("BU-1")},
			{StringCell("Allocation"), StringCell("PagenameB"), StringCell("BU-2")},
		},
	}
}

func TestPivotRateCard(t *testing.T) {
	p, err := Pivot(rateCardLong(), "Property", "Metric", "Total_value")
	require.NoError(t, err)
	assert.Equal(t, []string{"Property", "Rate", "No of slot", "Allocation"}, p.Columns)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "PagenameA", p.Rows[0][0].Text())
	assert.Equal(t, float64(500), p.Rows[0][1].Num)
	assert.Equal(t, float64(2), p.Rows[1][2].Num)
	assert.Equal(t, "BU-2", p.Rows[1][3].Text())
}

func TestPivotMissingColumn(t *testing.T) {
	_, err := Pivot(Table{Columns: []string{"a"}}, "a", "b", "c")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLeftJoinRetainsEveryMainRow(t *testing.T) {
	main := Table{
		Columns: []string{"Date", "Property", "Impressions"},
		Rows: [][]Cell{
			{day(1), StringCell("PagenameA"), NumberCell(100)},
			{day(1), StringCell("PagenameA.1"), NumberCell(40)},
			{day(1), StringCell("PagenameC"), NumberCell(10)},
		},
	}
	card, err := Pivot(rateCardLong(), "Property", "Metric", "Total_value")
	require.NoError(t, err)

	out, misses, err := LeftJoin(main, card, "Property")
	require.NoError(t, err)
	assert.Equal(t, 1, misses, "PagenameC has no rate-card entry")
	require.Len(t, out.Rows, 3, "left join never drops main rows")

	// identifier columns unchanged
	for i := range main.Rows {
		assert.Equal(t, main.Rows[i][1].Text(), out.Rows[i][1].Text())
	}

	// suffixed duplicate joins through the normalized key
	assert.Equal(t, float64(500), out.Cell(1, "Rate").Num)
	// miss rows null-fill
	assert.True(t, out.Cell(2, "Rate").IsEmpty())
	assert.True(t, out.Cell(2, "No of slot").IsEmpty())
}

func TestLeftJoinDropsUnmatchedRateCardRows(t *testing.T) {
	main := Table{
		Columns: []string{"Property"},
		Rows:    [][]Cell{{StringCell("PagenameA")}},
	}
	card, err := Pivot(rateCardLong(), "Property", "Metric", "Total_value")
	require.NoError(t, err)
	out, misses, err := LeftJoin(main, card, "Property")
	require.NoError(t, err)
	assert.Zero(t, misses)
	assert.Len(t, out.Rows, 1, "no full outer join")
}

func TestNormalizeProperty(t *testing.T) {
	assert.Equal(t, "PagenameA", NormalizeProperty("PagenameA.1"))
	assert.Equal(t, "PagenameA", NormalizeProperty("PagenameA"))
	assert.Equal(t, "HP_TARGETING 1", NormalizeProperty("HP_TARGETING 1"), "interior digits untouched")
	assert.Equal(t, "Pagename.2A", NormalizeProperty("Pagename.2A"), "suffix must be trailing")
}
