package leaverequest

import (
	"time"

	"github.com/shopspring/decimal"

	"go-leave/internal/leavetype"
)

// ComputeDuration turns a validated [start, end] window into a leave amount.
//
// DAY counts calendar days inclusively on the date components alone, so a
// request within one date is one day no matter the clock times. HOUR is the
// fractional hour distance between the two instants; a zero-length window is
// zero hours. Callers guarantee start is not after end.
func ComputeDuration(start, end time.Time, unit string) decimal.Decimal {
	if unit == leavetype.UnitHour {
		return decimal.NewFromFloat(end.Sub(start).Hours())
	}

	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDate := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int64(endDate.Sub(startDate).Hours()/24) + 1
	return decimal.NewFromInt(days)
}
