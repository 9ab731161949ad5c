package tabular

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"₹ 1,20,000", "120000"},
		{"1,234.50", "1234.5"},
		{"500", "500"},
		{"₹500.25", "500.25"},
		{"  2,000 ", "2000"},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "in=%q", tc.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "in=%q got=%s", tc.in, got)
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "N/A", "₹"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, "in=%q", in)
	}
}

func TestAmountFromCells(t *testing.T) {
	d, err := Amount(NumberCell(1234.5))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1234.5")))

	d, err = Amount(StringCell("₹ 2,500"))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(2500)))

	_, err = Amount(EmptyCell())
	assert.Error(t, err)
}
