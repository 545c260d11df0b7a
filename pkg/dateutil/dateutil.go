package dateutil

import (
	"time"
)

// AddMonths adds a number of months to a date.
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// AddYears adds a number of years to a date.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// MonthsBetween returns the number of whole calendar months from one date to
// another. Returns 0 when to is not after from.
func MonthsBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// PaymentDate returns the calendar date of the nth payment (1-based) for a
// schedule starting at start. The first payment falls one month after start.
func PaymentDate(start time.Time, n int) time.Time {
	return start.AddDate(0, n, 0)
}
