package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900), "centuries are not leap years")
	assert.False(t, IsLeapYear(2025))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 28, DaysInMonth(2, 2025))
	assert.Equal(t, 31, DaysInMonth(5, 2025))
	assert.Equal(t, 30, DaysInMonth(4, 2025))
	assert.Equal(t, 0, DaysInMonth(13, 2025))
	assert.Equal(t, 0, DaysInMonth(0, 2025))
}

func TestMonthNumber(t *testing.T) {
	m, err := MonthNumber("January")
	require.NoError(t, err)
	assert.Equal(t, 1, m)

	m, err = MonthNumber("sep")
	require.NoError(t, err)
	assert.Equal(t, 9, m)

	_, err = MonthNumber("Janvier")
	assert.ErrorIs(t, err, ErrBadMonth)
}

func TestExpandMonthCoversEveryDay(t *testing.T) {
	template := []Row{
		{Property: "Instagram Post", BU: "OPEN ALLOCATION"},
		{Property: "Facebook Post", BU: "OPEN ALLOCATION"},
	}
	events := EventMap{"2024-02-14": "VALENTINE"}

	rows := ExpandMonth(template, 2, 2024, events)
	require.Len(t, rows, 29*2)

	// day-major: both template rows for day 1 come first
	assert.Equal(t, "2024-02-01", rows[0].Date)
	assert.Equal(t, "Instagram Post", rows[0].Property)
	assert.Equal(t, "2024-02-01", rows[1].Date)
	assert.Equal(t, "Facebook Post", rows[1].Property)

	for _, r := range rows {
		if r.Date == "2024-02-14" {
			assert.Equal(t, "VALENTINE", r.Event)
		} else {
			assert.Equal(t, DefaultEvent, r.Event)
		}
	}
	assert.Equal(t, "2024-02-29", rows[len(rows)-1].Date)
}

func TestExpandMonthNilEventMap(t *testing.T) {
	rows := ExpandMonth([]Row{{Property: "P"}}, 4, 2025, nil)
	require.Len(t, rows, 30)
	for _, r := range rows {
		assert.Equal(t, DefaultEvent, r.Event)
	}
}
