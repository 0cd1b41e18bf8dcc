package payroll_test

import (
	"reflect"
	"testing"

	"github.com/reachnett/payroll-engine/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func weeklyFriday(count int) payroll.PayFrequency {
	return payroll.PayFrequency{
		Type:            payroll.FreqWeekly,
		EmployeeCount:   count,
		CalendarPattern: payroll.PatternMonSun,
		PayDay:          payroll.PayDayFriday,
	}
}

func simpleProfile(total int) payroll.CompanyProfile {
	return payroll.CompanyProfile{
		TotalEmployees: total,
		PayFrequencies: []payroll.PayFrequency{weeklyFriday(total)},
		BusinessUnits:  []payroll.BusinessUnit{{Code: "all", Name: "All Business Units", EmployeeCount: total}},
		TimeZones:      []payroll.TimeZone{{Code: "ML", Name: "Mainland", EmployeeCount: total}},
	}
}

// =============================================================================
// BASELINE DERIVATION
// =============================================================================

func TestDeriveAreas_SingleWeeklyFrequency_OneArea(t *testing.T) {
	// GIVEN: One weekly mon-sun friday frequency, no splits of any kind
	// WHEN: Deriving areas
	// THEN: Exactly one area - code WF, calendar 80, full headcount

	areas := payroll.DeriveAreas(simpleProfile(100))

	require.Len(t, areas, 1)
	assert.Equal(t, "WF", areas[0].Code)
	assert.Equal(t, "80", areas[0].CalendarID)
	assert.Equal(t, 100, areas[0].EmployeeCount)
	assert.Equal(t, payroll.FreqWeekly, areas[0].Frequency)
	assert.Equal(t, payroll.GeneratedBySystem, areas[0].GeneratedBy)
	assert.Empty(t, areas[0].BusinessUnit)
	assert.Empty(t, areas[0].Union)
	assert.Empty(t, areas[0].TimeZone)
}

func TestDeriveAreas_Deterministic(t *testing.T) {
	// GIVEN: An unchanged profile
	// WHEN: Deriving twice
	// THEN: Output is identical, including order

	profile := payroll.CompanyProfile{
		TotalEmployees: 500,
		PayFrequencies: []payroll.PayFrequency{
			weeklyFriday(300),
			{Type: payroll.FreqMonthly, EmployeeCount: 200, PayDay: payroll.PayDayFriday},
		},
		Unions: []payroll.Union{
			{Code: "L100", Name: "Local 100", EmployeeCount: 80, UniqueCalendar: true},
		},
	}

	first := payroll.DeriveAreas(profile)
	second := payroll.DeriveAreas(profile)

	assert.True(t, reflect.DeepEqual(first, second), "derivation must be deterministic")
}

func TestDeriveAreas_ZeroEmployeeFrequency_StillProducesArea(t *testing.T) {
	// GIVEN: A frequency with zero employees
	// WHEN: Deriving areas
	// THEN: The area is still produced - no filtering on count

	profile := simpleProfile(0)
	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 1)
	assert.Equal(t, 0, areas[0].EmployeeCount)
}

func TestDeriveAreas_DuplicateFrequencies_DuplicateCodes(t *testing.T) {
	// GIVEN: Two identical weekly frequency entries
	// WHEN: Deriving areas
	// THEN: Two areas with the same generated code (validator's problem)

	profile := simpleProfile(100)
	profile.PayFrequencies = append(profile.PayFrequencies, weeklyFriday(100))

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 2)
	assert.Equal(t, areas[0].Code, areas[1].Code)
}

// =============================================================================
// BUSINESS UNIT SPLITTING
// =============================================================================

func TestDeriveAreas_BusinessUnitSplit_OneAreaPerUnit(t *testing.T) {
	// GIVEN: Two business units that require separate areas
	// WHEN: Deriving areas for one weekly frequency
	// THEN: One area per unit, each keeping the frequency headcount
	//       (business unit splits do not overwrite employee counts)

	profile := payroll.CompanyProfile{
		TotalEmployees: 100,
		PayFrequencies: []payroll.PayFrequency{weeklyFriday(100)},
		BusinessUnits: []payroll.BusinessUnit{
			{Code: "constr", Name: "Construction", EmployeeCount: 60, RequiresSeparateArea: true},
			{Code: "corp", Name: "Corporate", EmployeeCount: 40, RequiresSeparateArea: true},
		},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 2)
	assert.Equal(t, "constr", areas[0].BusinessUnit)
	assert.Equal(t, "corp", areas[1].BusinessUnit)
	assert.Equal(t, 100, areas[0].EmployeeCount)
	assert.Equal(t, 100, areas[1].EmployeeCount)
	assert.Equal(t, "WC", areas[0].Code)
}

func TestDeriveAreas_NonSplittingUnits_Ignored(t *testing.T) {
	// GIVEN: Business units present but none flagged for separation
	// WHEN: Deriving areas
	// THEN: Single area, no businessUnit attribution

	profile := simpleProfile(100)
	profile.BusinessUnits = []payroll.BusinessUnit{
		{Code: "constr", Name: "Construction", EmployeeCount: 60},
		{Code: "corp", Name: "Corporate", EmployeeCount: 40},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 1)
	assert.Empty(t, areas[0].BusinessUnit)
}

// =============================================================================
// UNION SPLITTING
// =============================================================================

func TestDeriveAreas_UnionSplit_WithRemainder(t *testing.T) {
	// GIVEN: 100 weekly employees, one qualifying union covering 30
	// WHEN: Deriving areas
	// THEN: Union area with 30, plus a non-union remainder area with 70

	profile := simpleProfile(100)
	profile.Unions = []payroll.Union{
		{Code: "L100", Name: "Local 100", EmployeeCount: 30, UniqueCalendar: true},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 2)
	assert.Equal(t, "L100", areas[0].Union)
	assert.Equal(t, 30, areas[0].EmployeeCount)
	assert.Equal(t, "180", areas[0].CalendarID, "union calendar is base + 100")
	assert.Empty(t, areas[1].Union)
	assert.Equal(t, 70, areas[1].EmployeeCount)
	assert.Equal(t, "80", areas[1].CalendarID)
}

func TestDeriveAreas_UnionSplit_NoRemainderArea(t *testing.T) {
	// GIVEN: Qualifying unions covering the whole frequency headcount
	// WHEN: Deriving areas
	// THEN: Only union areas, no remainder

	profile := simpleProfile(100)
	profile.Unions = []payroll.Union{
		{Code: "L100", Name: "Local 100", EmployeeCount: 60, UniqueCalendar: true},
		{Code: "L200", Name: "Local 200", EmployeeCount: 40, UniqueFunding: true},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 2)
	assert.Equal(t, "L100", areas[0].Union)
	assert.Equal(t, "L200", areas[1].Union)
	assert.Equal(t, "80", areas[1].CalendarID, "funding-only union keeps the base calendar")
}

func TestDeriveAreas_NonQualifyingUnions_FallThroughToTimeZones(t *testing.T) {
	// GIVEN: A union without unique calendar or funding, two affecting zones
	// WHEN: Deriving areas
	// THEN: The union causes no split; the time zone step runs instead

	profile := simpleProfile(100)
	profile.Unions = []payroll.Union{
		{Code: "L300", Name: "Local 300", EmployeeCount: 50},
	}
	profile.TimeZones = []payroll.TimeZone{
		{Code: "ML", Name: "Mainland", EmployeeCount: 80, AffectsProcessing: true},
		{Code: "HI", Name: "Hawaii", EmployeeCount: 20, AffectsProcessing: true},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 2)
	assert.Equal(t, "ML", areas[0].TimeZone)
	assert.Equal(t, "HI", areas[1].TimeZone)
	assert.Empty(t, areas[0].Union)
}

func TestDeriveAreas_UnionSplit_SuppressesTimeZoneSplit(t *testing.T) {
	// GIVEN: A qualifying union AND multiple affecting time zones
	// WHEN: Deriving areas
	// THEN: Only the union split applies - priority order is strict

	profile := simpleProfile(100)
	profile.Unions = []payroll.Union{
		{Code: "L100", Name: "Local 100", EmployeeCount: 100, UniqueCalendar: true},
	}
	profile.TimeZones = []payroll.TimeZone{
		{Code: "ML", Name: "Mainland", EmployeeCount: 80, AffectsProcessing: true},
		{Code: "HI", Name: "Hawaii", EmployeeCount: 20, AffectsProcessing: true},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 1)
	assert.Equal(t, "L100", areas[0].Union)
	assert.Empty(t, areas[0].TimeZone)
}

// =============================================================================
// TIME ZONE SPLITTING
// =============================================================================

func TestDeriveAreas_TimeZoneSplit_UsesZoneHeadcounts(t *testing.T) {
	// GIVEN: Three zones, two affecting processing
	// WHEN: Deriving areas
	// THEN: One area per affecting zone carrying that zone's own count

	profile := simpleProfile(200)
	profile.TimeZones = []payroll.TimeZone{
		{Code: "ML", Name: "Mainland", EmployeeCount: 150, AffectsProcessing: true},
		{Code: "HI", Name: "Hawaii", EmployeeCount: 30, AffectsProcessing: true},
		{Code: "PR", Name: "Puerto Rico", EmployeeCount: 20},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 2)
	assert.Equal(t, 150, areas[0].EmployeeCount)
	assert.Equal(t, 30, areas[1].EmployeeCount)
	assert.Equal(t, "WM", areas[0].Code)
	assert.Equal(t, "WH", areas[1].Code)
	assert.Equal(t, "Hawaii", areas[1].Region)
}

func TestDeriveAreas_SingleAffectingZone_NoSplit(t *testing.T) {
	// GIVEN: Only one zone affects processing
	// WHEN: Deriving areas
	// THEN: A single unsplit area with no zone attached

	profile := simpleProfile(100)
	profile.TimeZones = []payroll.TimeZone{
		{Code: "ML", Name: "Mainland", EmployeeCount: 100, AffectsProcessing: true},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 1)
	assert.Empty(t, areas[0].TimeZone)
	assert.Equal(t, 100, areas[0].EmployeeCount)
}

// =============================================================================
// COMBINED SPLITS
// =============================================================================

func TestDeriveAreas_UnitAndUnionSplits_Multiply(t *testing.T) {
	// GIVEN: Two splitting business units and one qualifying union (30 of 100)
	// WHEN: Deriving areas for one frequency
	// THEN: Per unit: one union area + one remainder area = 4 areas total

	profile := payroll.CompanyProfile{
		TotalEmployees: 100,
		PayFrequencies: []payroll.PayFrequency{weeklyFriday(100)},
		BusinessUnits: []payroll.BusinessUnit{
			{Code: "constr", Name: "Construction", RequiresSeparateArea: true},
			{Code: "corp", Name: "Corporate", RequiresSeparateArea: true},
		},
		Unions: []payroll.Union{
			{Code: "L100", Name: "Local 100", EmployeeCount: 30, UniqueCalendar: true},
		},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 4)
	assert.Equal(t, "constr", areas[0].BusinessUnit)
	assert.Equal(t, "L100", areas[0].Union)
	assert.Equal(t, "constr", areas[1].BusinessUnit)
	assert.Empty(t, areas[1].Union)
	assert.Equal(t, "corp", areas[2].BusinessUnit)
	assert.Equal(t, "L100", areas[2].Union)
}

func TestDeriveAreas_SemimonthlyPattern_Normalized(t *testing.T) {
	// GIVEN: A semimonthly frequency with a junk stored pattern
	// WHEN: Deriving areas
	// THEN: The area carries the fixed 1-15/16-end pattern

	profile := payroll.CompanyProfile{
		TotalEmployees: 50,
		PayFrequencies: []payroll.PayFrequency{{
			Type:            payroll.FreqSemimonthly,
			EmployeeCount:   50,
			CalendarPattern: payroll.PatternMonSun,
			PayDay:          payroll.PayDayFriday,
		}},
	}

	areas := payroll.DeriveAreas(profile)

	require.Len(t, areas, 1)
	assert.Equal(t, payroll.PatternSemimonthly, areas[0].PeriodPattern)
	assert.Equal(t, "S", areas[0].Code[:1])
	assert.Equal(t, "30", areas[0].CalendarID)
}
