package inventory

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Arithmetic that would be undefined: the affected business unit is skipped
// and counted, never zero-filled.
var (
	ErrNonPositiveRate = errors.New("floor rate must be positive")
	ErrNoTarget        = errors.New("missing monthly target")
)

// ConvertTargetToInventory turns a monthly revenue target and a floor rate
// into a daily slot count:
//
//	daily_inventory = round((target / total_days) / floor_rate)
//
// Rounding is banker's (round half to even), matching the numeric library
// the rate cards were built against; the choice shifts results by ±1 slot at
// exact .5 boundaries and is deliberately fixed here.
func ConvertTargetToInventory(target, floorRate decimal.Decimal, totalDays int) (int64, error) {
	if totalDays <= 0 {
		return 0, ErrNoTarget
	}
	if floorRate.LessThanOrEqual(decimal.Zero) {
		return 0, ErrNonPositiveRate
	}
	daily := target.Div(decimal.NewFromInt(int64(totalDays)))
	return daily.Div(floorRate).RoundBank(0).IntPart(), nil
}

// PerSlotRate applies the pricing rule to one row. Impressions must already
// be per-slot (post supply distribution). The bool reports whether the price
// type was recognised; unknown types price at zero and the caller counts
// them.
func PerSlotRate(priceType string, rate decimal.Decimal, impressions float64) (decimal.Decimal, bool) {
	switch priceType {
	case PriceCPM:
		return rate, true
	case PriceCPD:
		return rate.Mul(decimal.NewFromFloat(impressions)).Div(decimal.NewFromInt(1000)), true
	}
	return decimal.Zero, false
}
