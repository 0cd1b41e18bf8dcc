/*
calendar.go - Date arithmetic shared by the series generators

PURPOSE:
  Small, deterministic date helpers: last day of month, nearest-weekday
  search, and the semimonthly/monthly first/next pay-date rules.

OVERFLOW NOTE:
  The semimonthly "15-30" pattern constructs a literal day-30 date even in
  months that do not have one. time.Date normalizes the overflow (Feb 30 ->
  Mar 2), and that normalized date is what gets emitted. Downstream exports
  depend on this rollover, so it is preserved rather than special-cased.

SEE ALSO:
  - periods.go:  Period boundary expansion
  - paydates.go: Pay-date expansion
*/
package payroll

import "time"

// =============================================================================
// BASIC HELPERS
// =============================================================================

// LastDayOfMonth returns the day number of the last day of the given month.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// lastOfMonth returns the last calendar day of the month as a date.
func lastOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// NearestWeekday returns the occurrence of target closest to base.
// Ties break toward the future: when the forward distance is less than or
// equal to the backward distance, the search goes forward.
func NearestWeekday(base time.Time, target time.Weekday) time.Time {
	forward := (int(target) - int(base.Weekday()) + 7) % 7
	backward := (int(base.Weekday()) - int(target) + 7) % 7
	if forward <= backward {
		return base.AddDate(0, 0, forward)
	}
	return base.AddDate(0, 0, -backward)
}

// weekdayFor maps a pay-day name to a weekday. The second return is false
// for non-weekday values such as "current" or "custom".
func weekdayFor(payDay PayDay) (time.Weekday, bool) {
	switch payDay {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case PayDayThursday:
		return time.Thursday, true
	case PayDayFriday:
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}

// FormatDate renders a date the way every generated row expects it.
func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// =============================================================================
// SEMIMONTHLY PAY-DATE RULES
// =============================================================================

// semimonthlySecondMarker returns the second pay marker of the month: the
// calendar last day for "15-last", or the literal day 30 for "15-30" (which
// normalizes past short months, see the overflow note above).
func semimonthlySecondMarker(year int, month time.Month, pattern PeriodPattern) time.Time {
	if pattern == Pattern1530 {
		return time.Date(year, month, 30, 0, 0, 0, 0, time.UTC)
	}
	return lastOfMonth(year, month)
}

// isSemimonthlyPayDate reports whether d is the 15th or the month's second
// marker under the given pattern.
func isSemimonthlyPayDate(d time.Time, pattern PeriodPattern) bool {
	if d.Day() == 15 {
		return true
	}
	if pattern == Pattern1530 {
		return d.Day() == 30
	}
	return d.Day() == LastDayOfMonth(d.Year(), d.Month())
}

// FirstSemimonthlyPayDate walks forward day by day from the anchor until it
// hits a semimonthly pay date.
func FirstSemimonthlyPayDate(anchor time.Time, pattern PeriodPattern) time.Time {
	d := anchor
	for !isSemimonthlyPayDate(d, pattern) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// NextSemimonthlyPayDate rolls from the 15th to the same month's second
// marker, and from any other day to the 15th of the following month.
func NextSemimonthlyPayDate(current time.Time, pattern PeriodPattern) time.Time {
	if current.Day() == 15 {
		return semimonthlySecondMarker(current.Year(), current.Month(), pattern)
	}
	return time.Date(current.Year(), current.Month()+1, 15, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// MONTHLY PAY-DATE RULES
// =============================================================================

// isMonthlyPayDate reports whether d matches the monthly target: the last
// day for "last", or the fixed day for "15" / "1".
func isMonthlyPayDate(d time.Time, pattern PeriodPattern) bool {
	switch pattern {
	case Pattern15th:
		return d.Day() == 15
	case Pattern1st:
		return d.Day() == 1
	default:
		return d.Day() == LastDayOfMonth(d.Year(), d.Month())
	}
}

// FirstMonthlyPayDate walks forward day by day from the anchor until the
// monthly target condition is met.
func FirstMonthlyPayDate(anchor time.Time, pattern PeriodPattern) time.Time {
	d := anchor
	for !isMonthlyPayDate(d, pattern) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// NextMonthlyPayDate jumps directly to next month's target day.
func NextMonthlyPayDate(current time.Time, pattern PeriodPattern) time.Time {
	next := time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	switch pattern {
	case Pattern15th:
		return time.Date(next.Year(), next.Month(), 15, 0, 0, 0, 0, time.UTC)
	case Pattern1st:
		return next
	default:
		return lastOfMonth(next.Year(), next.Month())
	}
}
