package inventory

import (
	"fmt"
	"time"
)

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries,
// except multiples of 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the calendar length of a month.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// MonthNumber validates a month given as a full ("January") or abbreviated
// ("Jan") English name, case-insensitively.
func MonthNumber(name string) (int, error) {
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, name); err == nil {
			return int(t.Month()), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMonth, name)
}

// ExpandMonth copies the template once per calendar day of the month,
// rewriting Date to that day and Event through the event map. Output is
// grouped by day ascending with template order preserved within each day.
func ExpandMonth(template []Row, month, year int, events EventMap) []Row {
	days := DaysInMonth(month, year)
	out := make([]Row, 0, days*len(template))
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		event := events.Resolve(date)
		for _, row := range template {
			row.Date = date
			row.Event = event
			out = append(out, row)
		}
	}
	return out
}
