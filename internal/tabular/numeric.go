package tabular

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const nbsp = " "

var (
	currencyRe     = regexp.MustCompile(`[₹$\s,]`)
	propertySuffix = regexp.MustCompile(`\.\d+$`)
)

// normalizeCellString trims, removes non-breaking spaces and collapses
// internal whitespace.
func normalizeCellString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, nbsp, " ")
	return strings.Join(strings.Fields(s), " ")
}

// ParseAmount strips currency symbols and separators and parses the result as
// a decimal. "₹ 1,20,000" and "1200.50" both parse; anything that still is
// not a number is an error for the caller to count.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := currencyRe.ReplaceAllString(normalizeCellString(s), "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount %q", s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparsable amount %q: %w", s, err)
	}
	return d, nil
}

// Amount reads a cell as money: numeric cells directly, string cells through
// the currency normalizer.
func Amount(c Cell) (decimal.Decimal, error) {
	switch c.Kind {
	case KindNumber:
		return decimal.NewFromFloat(c.Num), nil
	case KindString:
		return ParseAmount(c.Str)
	}
	return decimal.Zero, fmt.Errorf("cell holds no amount")
}

// NormalizeProperty strips the spreadsheet reader's ".N" disambiguation
// suffix from a duplicated column name, so "PagenameA.1" keys the same
// property as "PagenameA".
func NormalizeProperty(name string) string {
	return propertySuffix.ReplaceAllString(normalizeCellString(name), "")
}
