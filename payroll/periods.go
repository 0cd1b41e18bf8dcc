/*
periods.go - Pay period series generation

PURPOSE:
  Expands one payroll area into its full-year sequence of period boundary
  rows. Weekly and biweekly series are fixed-step windows from the anchor;
  semimonthly and monthly series are calendar-aware (variable month lengths).

COUNTERS:
  payroll_period is 1-based and never resets within one generation call,
  even across year boundaries. prior_period_period resets to 01 at the
  first row whose end date falls in a new calendar year. Keep the asymmetry;
  existing SAP exports are bit-compatible with it.
*/
package payroll

import (
	"strconv"
	"time"
)

// =============================================================================
// SERIES CONFIGURATION
// =============================================================================

// SeriesConfig carries the anchor dates that seed every generated series.
// Anchors are explicit (not package globals) so tests and tenants can vary
// them without shared state.
type SeriesConfig struct {
	// PeriodAnchor is the begin date of the first generated period.
	PeriodAnchor time.Time
	// PayDateAnchor is the date the first pay-date search starts from.
	PayDateAnchor time.Time
}

// DefaultSeriesConfig returns the anchors used by the standard exports:
// periods from Dec 23 of the year before the target payroll year, pay dates
// searched from Jan 3 of the target year.
func DefaultSeriesConfig() SeriesConfig {
	return SeriesConfig{
		PeriodAnchor:  time.Date(2024, time.December, 23, 0, 0, 0, 0, time.UTC),
		PayDateAnchor: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
	}
}

// defaultCalendarID mirrors the export default for areas missing one.
const defaultCalendarID = "80"

func calendarIDOf(area PayrollArea) string {
	if area.CalendarID == "" {
		return defaultCalendarID
	}
	return area.CalendarID
}

// =============================================================================
// PERIOD SERIES
// =============================================================================

// periodSeries accumulates rows and the two period counters.
type periodSeries struct {
	calendarID    string
	rows          []PeriodRow
	payrollPeriod int
	currentYear   int
	priorCounter  int
}

// push appends one period row, advancing both counters.
func (s *periodSeries) push(begin, end time.Time) {
	year := end.Year()
	if s.currentYear != year {
		s.currentYear = year
		s.priorCounter = 1
	} else {
		s.priorCounter++
	}
	s.payrollPeriod++

	s.rows = append(s.rows, PeriodRow{
		PeriodParameters:  s.calendarID,
		PayrollYear:       itoa(year),
		PayrollPeriod:     pad2(s.payrollPeriod),
		PeriodBeginDate:   FormatDate(begin),
		PeriodEndDate:     FormatDate(end),
		PriorPeriodYear:   itoa(year),
		PriorPeriodPeriod: pad2(s.priorCounter),
	})
}

// GeneratePeriods expands an area into years worth of period rows:
// 52/year weekly, 26 biweekly, 24 semimonthly, 12 monthly. An unknown
// frequency falls back to the weekly expansion rather than failing.
func (c SeriesConfig) GeneratePeriods(area PayrollArea, years int) []PeriodRow {
	if years < 1 {
		years = 1
	}
	s := &periodSeries{calendarID: calendarIDOf(area), rows: make([]PeriodRow, 0)}

	switch area.Frequency {
	case FreqBiweekly:
		c.fixedStepPeriods(s, 14, 26*years)
	case FreqSemimonthly:
		c.semimonthlyPeriods(s, years)
	case FreqMonthly:
		c.monthlyPeriods(s, years)
	default:
		c.fixedStepPeriods(s, 7, 52*years)
	}

	return s.rows
}

// fixedStepPeriods emits sequential windows of step days from the anchor.
func (c SeriesConfig) fixedStepPeriods(s *periodSeries, step, total int) {
	for i := 0; i < total; i++ {
		begin := c.PeriodAnchor.AddDate(0, 0, i*step)
		s.push(begin, begin.AddDate(0, 0, step-1))
	}
}

// semimonthlyPeriods emits the fixed 1-15 / 16-end pair for each month.
// The cursor always advances to the 1st of the next month, whatever the
// month length.
func (c SeriesConfig) semimonthlyPeriods(s *periodSeries, years int) {
	cursor := c.PeriodAnchor
	for i := 0; i < 12*years; i++ {
		y, m := cursor.Year(), cursor.Month()
		s.push(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), time.Date(y, m, 15, 0, 0, 0, 0, time.UTC))
		s.push(time.Date(y, m, 16, 0, 0, 0, 0, time.UTC), lastOfMonth(y, m))
		cursor = time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
	}
}

// monthlyPeriods emits one whole-month window per month.
func (c SeriesConfig) monthlyPeriods(s *periodSeries, years int) {
	cursor := c.PeriodAnchor
	for i := 0; i < 12*years; i++ {
		y, m := cursor.Year(), cursor.Month()
		s.push(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), lastOfMonth(y, m))
		cursor = time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
	}
}

// =============================================================================
// COUNTER FORMATTING
// =============================================================================

func itoa(n int) string { return strconv.Itoa(n) }

// pad2 zero-pads to two digits; counters past 99 keep their full width.
func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
