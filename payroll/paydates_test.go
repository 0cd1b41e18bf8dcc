package payroll_test

import (
	"testing"

	"github.com/reachnett/payroll-engine/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// WEEKLY / BIWEEKLY
// =============================================================================

func TestGeneratePayDates_WeeklyFriday_StartsOnAnchor(t *testing.T) {
	// GIVEN: A weekly friday area; the Jan 3 2025 anchor is itself a Friday
	// WHEN: Generating one year
	// THEN: 52 rows, 7 days apart, starting on the anchor

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(weeklyArea(), 1)

	require.Len(t, rows, 52)
	assert.Equal(t, "01/03/2025", rows[0].Date)
	assert.Equal(t, "01/10/2025", rows[1].Date)
	assert.Equal(t, "01/17/2025", rows[2].Date)
	assert.Equal(t, "12/26/2025", rows[51].Date)
}

func TestGeneratePayDates_WeeklyThursday_FindsNearestOccurrence(t *testing.T) {
	// Thursday is one day behind the Friday anchor: nearest is Jan 2.
	area := weeklyArea()
	area.PayDay = payroll.PayDayThursday

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	assert.Equal(t, "01/02/2025", rows[0].Date)
}

func TestGeneratePayDates_Biweekly_FourteenDaySteps(t *testing.T) {
	area := areaOf(payroll.FreqBiweekly, "20")

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	require.Len(t, rows, 26)
	assert.Equal(t, "01/03/2025", rows[0].Date)
	assert.Equal(t, "01/17/2025", rows[1].Date)
}

func TestGeneratePayDates_PeriodCounterResetsEachYear(t *testing.T) {
	// GIVEN: Two years of weekly pay dates
	// WHEN: Crossing into 2026 (row 53: Jan 2 2026)
	// THEN: payroll_period resets to 01 - one counter, per calendar year

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(weeklyArea(), 2)

	require.Len(t, rows, 104)
	assert.Equal(t, "01", rows[0].PayrollPeriod)
	assert.Equal(t, "52", rows[51].PayrollPeriod)
	assert.Equal(t, "2025", rows[51].PayrollYear)

	assert.Equal(t, "01/02/2026", rows[52].Date)
	assert.Equal(t, "01", rows[52].PayrollPeriod)
	assert.Equal(t, "2026", rows[52].PayrollYear)
}

func TestGeneratePayDates_SAPConstantsStamped(t *testing.T) {
	rows := payroll.DefaultSeriesConfig().GeneratePayDates(weeklyArea(), 1)

	assert.Equal(t, "10", rows[0].Molga)
	assert.Equal(t, "01", rows[0].DateModifier)
	assert.Equal(t, "01", rows[0].DateType)
	assert.Equal(t, "80", rows[0].PeriodParameters)
}

// =============================================================================
// SEMIMONTHLY
// =============================================================================

func TestGeneratePayDates_Semimonthly15Last(t *testing.T) {
	// GIVEN: The 15-last marker pattern
	// WHEN: Generating from the Jan 3 anchor
	// THEN: 15th and last day of each month, 24 rows

	area := areaOf(payroll.FreqSemimonthly, "30")
	area.PeriodPattern = payroll.Pattern15Last

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	require.Len(t, rows, 24)
	assert.Equal(t, "01/15/2025", rows[0].Date)
	assert.Equal(t, "01/31/2025", rows[1].Date)
	assert.Equal(t, "02/15/2025", rows[2].Date)
	assert.Equal(t, "02/28/2025", rows[3].Date)
	assert.Equal(t, "12/31/2025", rows[23].Date)
}

func TestGeneratePayDates_Semimonthly1530_FebruaryRollsOver(t *testing.T) {
	// GIVEN: The 15-30 marker pattern
	// WHEN: February's literal day 30 is constructed
	// THEN: It normalizes to Mar 2 and the series drifts - March loses its
	//       15th and the 24 rows run into the next January. Known rollover,
	//       preserved for export compatibility.

	area := areaOf(payroll.FreqSemimonthly, "30")
	area.PeriodPattern = payroll.Pattern1530

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	require.Len(t, rows, 24)
	assert.Equal(t, "01/15/2025", rows[0].Date)
	assert.Equal(t, "01/30/2025", rows[1].Date)
	assert.Equal(t, "02/15/2025", rows[2].Date)
	assert.Equal(t, "03/02/2025", rows[3].Date)
	assert.Equal(t, "04/15/2025", rows[4].Date)
	assert.Equal(t, "01/30/2026", rows[23].Date)
}

func TestGeneratePayDates_SemimonthlyUnknownPattern_DefaultsTo15Last(t *testing.T) {
	// System-generated semimonthly areas carry 1-15_16-end; pay-date
	// generation reads that as the default 15-last markers.
	area := areaOf(payroll.FreqSemimonthly, "30")
	area.PeriodPattern = payroll.PatternSemimonthly

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	assert.Equal(t, "01/31/2025", rows[1].Date)
}

// =============================================================================
// MONTHLY
// =============================================================================

func TestGeneratePayDates_MonthlyLast(t *testing.T) {
	area := areaOf(payroll.FreqMonthly, "40")
	area.PeriodPattern = payroll.PatternLast

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	require.Len(t, rows, 12)
	assert.Equal(t, "01/31/2025", rows[0].Date)
	assert.Equal(t, "02/28/2025", rows[1].Date)
	assert.Equal(t, "12/31/2025", rows[11].Date)
}

func TestGeneratePayDates_Monthly15th(t *testing.T) {
	area := areaOf(payroll.FreqMonthly, "40")
	area.PeriodPattern = payroll.Pattern15th

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	assert.Equal(t, "01/15/2025", rows[0].Date)
	assert.Equal(t, "02/15/2025", rows[1].Date)
}

func TestGeneratePayDates_MonthlyFirst_WalksPastAnchor(t *testing.T) {
	// The day-by-day search only moves forward, so from Jan 3 the first
	// day-1 hit is Feb 1.
	area := areaOf(payroll.FreqMonthly, "40")
	area.PeriodPattern = payroll.Pattern1st

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	assert.Equal(t, "02/01/2025", rows[0].Date)
	assert.Equal(t, "03/01/2025", rows[1].Date)
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestGeneratePayDates_MissingPayDay_DefaultsToFriday(t *testing.T) {
	area := payroll.PayrollArea{Frequency: payroll.FreqWeekly, CalendarID: "80"}

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	assert.Equal(t, "01/03/2025", rows[0].Date)
}

func TestGeneratePayDates_NonWeekdayPayDay_StepsFromAnchor(t *testing.T) {
	// "current" names no weekday; the series steps from the anchor itself.
	area := weeklyArea()
	area.PayDay = payroll.PayDayCurrent

	rows := payroll.DefaultSeriesConfig().GeneratePayDates(area, 1)

	assert.Equal(t, "01/03/2025", rows[0].Date)
	assert.Equal(t, "01/10/2025", rows[1].Date)
}
