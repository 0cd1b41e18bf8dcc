/*
paydates.go - Pay date series generation

PURPOSE:
  Expands one payroll area into its full-year sequence of pay-date rows.
  Weekly/biweekly series find the nearest occurrence of the configured
  weekday to the anchor and step by 7 or 14 days. Semimonthly and monthly
  series follow the calendar rules in calendar.go.

COUNTERS:
  Unlike the period generator's dual counters, pay dates carry a single
  payroll_period counter that resets whenever the row's calendar year
  changes.

DEFAULTS:
  A missing pay day defaults to friday, a missing semimonthly marker
  pattern to 15-last, a missing monthly target to last. Missing optional
  fields never raise.
*/
package payroll

import "time"

// GeneratePayDates expands an area into years worth of pay-date rows:
// 52/year weekly, 26 biweekly, 24 semimonthly, 12 monthly.
func (c SeriesConfig) GeneratePayDates(area PayrollArea, years int) []PayDateRow {
	if years < 1 {
		years = 1
	}
	s := &payDateSeries{calendarID: calendarIDOf(area), rows: make([]PayDateRow, 0)}

	switch area.Frequency {
	case FreqSemimonthly:
		c.calendarPayDates(s, 24*years, FirstSemimonthlyPayDate, NextSemimonthlyPayDate, semimonthlyPattern(area.PeriodPattern))
	case FreqMonthly:
		c.calendarPayDates(s, 12*years, FirstMonthlyPayDate, NextMonthlyPayDate, monthlyPattern(area.PeriodPattern))
	case FreqBiweekly:
		c.steppedPayDates(s, area, 14, 26*years)
	default:
		c.steppedPayDates(s, area, 7, 52*years)
	}

	return s.rows
}

// payDateSeries accumulates rows and the per-year period counter.
type payDateSeries struct {
	calendarID  string
	rows        []PayDateRow
	currentYear int
	counter     int
}

func (s *payDateSeries) push(d time.Time) {
	if s.currentYear != d.Year() {
		s.currentYear = d.Year()
		s.counter = 1
	} else {
		s.counter++
	}

	s.rows = append(s.rows, PayDateRow{
		Molga:            SAPMolga,
		DateModifier:     SAPDateModifier,
		PeriodParameters: s.calendarID,
		PayrollYear:      itoa(d.Year()),
		PayrollPeriod:    pad2(s.counter),
		DateType:         SAPDateType,
		Date:             FormatDate(d),
	})
}

// steppedPayDates handles weekly and biweekly: nearest configured weekday
// to the anchor, then fixed 7/14-day steps. A pay day that isn't a weekday
// name (current, custom) steps from the anchor itself.
func (c SeriesConfig) steppedPayDates(s *payDateSeries, area PayrollArea, step, total int) {
	current := c.PayDateAnchor
	if wd, ok := weekdayFor(payDayOf(area)); ok {
		current = NearestWeekday(c.PayDateAnchor, wd)
	}
	for i := 0; i < total; i++ {
		s.push(current)
		current = current.AddDate(0, 0, step)
	}
}

// calendarPayDates handles the calendar-aware frequencies with their
// first/next rules.
func (c SeriesConfig) calendarPayDates(
	s *payDateSeries,
	total int,
	first func(time.Time, PeriodPattern) time.Time,
	next func(time.Time, PeriodPattern) time.Time,
	pattern PeriodPattern,
) {
	current := first(c.PayDateAnchor, pattern)
	for i := 0; i < total; i++ {
		s.push(current)
		current = next(current, pattern)
	}
}

// =============================================================================
// DEFAULTING
// =============================================================================

func payDayOf(area PayrollArea) PayDay {
	if area.PayDay == "" {
		return PayDayFriday
	}
	return area.PayDay
}

func semimonthlyPattern(p PeriodPattern) PeriodPattern {
	if p == Pattern1530 {
		return Pattern1530
	}
	return Pattern15Last
}

func monthlyPattern(p PeriodPattern) PeriodPattern {
	switch p {
	case Pattern15th, Pattern1st:
		return p
	default:
		return PatternLast
	}
}
