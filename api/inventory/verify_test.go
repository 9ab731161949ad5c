package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerFixture() []Row {
	return []Row{
		{
			Date: "2025-05-01", Event: "ALL", Property: "A", BU: "X", Page: "HOME",
			PriceType: PriceCPD, Supply: 2, Allocation: 2, Impressions: 500,
			Rate: decimal.NewFromInt(1000),
		},
		{
			Date: "2025-05-03", Event: "SALE", Property: "B", BU: "Y", Page: "SEARCH",
			PriceType: PriceCPD, Supply: 0, Allocation: 3, Impressions: 0,
			Rate: decimal.NewFromInt(-5),
		},
	}
}

func TestSummarizeTotals(t *testing.T) {
	s := Summarize("Category Pages", ledgerFixture())
	out := s.Render()

	assert.True(t, strings.HasPrefix(out, "=== CATEGORY PAGES VERIFICATION ===\n"))
	assert.Contains(t, out, "Total Rows: 2\n")
	// revenue = 2×1000 + 3×(-5)
	assert.Contains(t, out, "Total Revenue: 1985.00\n")
	assert.Contains(t, out, "Total Impressions: 500\n")
	assert.Contains(t, out, "Unique Properties: 2\n")
	assert.Contains(t, out, "Unique Business Units: 2\n")
	assert.Contains(t, out, "Unique Events: 2\n")
	assert.Contains(t, out, "Date Range: 2025-05-01 to 2025-05-03\n")
	assert.Contains(t, out, "Zero Values: impressions=1, supply=1\n")
	assert.Contains(t, out, "Negative Values: rate=1\n")
}

func TestSummarizePrefersTotalImpressions(t *testing.T) {
	rows := []Row{
		{Impressions: 100, TotalImpressions: 700, HasTotals: true},
		{Impressions: 50},
	}
	out := Summarize("X", rows).Render()
	assert.Contains(t, out, "Total Impressions: 750\n")
}

func TestSummaryAppendToAccumulates(t *testing.T) {
	sink := filepath.Join(t.TempDir(), "verification.txt")

	require.NoError(t, Summarize("First", ledgerFixture()).AppendTo(sink))
	require.NoError(t, Summarize("Second", nil).AppendTo(sink))

	data, err := os.ReadFile(sink)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "=== FIRST VERIFICATION ===")
	assert.Contains(t, text, "=== SECOND VERIFICATION ===")
	assert.Less(t, strings.Index(text, "FIRST"), strings.Index(text, "SECOND"))
}

func TestRenderColumnCounts(t *testing.T) {
	assert.Equal(t, "none", renderColumnCounts(nil))
	assert.Equal(t, "none", renderColumnCounts(map[string]int{"rate": 0}))
	assert.Equal(t, "allocation=2, rate=1",
		renderColumnCounts(map[string]int{"rate": 1, "allocation": 2}))
}
