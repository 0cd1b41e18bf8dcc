/*
Package scenarios provides pre-built company profiles for demos and tests.

PURPOSE:

	Each scenario is a realistic client profile that exercises a specific
	part of the derivation: frequency-only splits, business-unit splits,
	union carve-outs, and multi-timezone processing. Demos and CLI runs
	load a scenario instead of hand-writing intake JSON.

AVAILABLE SCENARIOS:

	single-weekly:  One weekly frequency, nothing to split
	union-shop:     Weekly workforce with two unions, one on its own calendar
	multi-timezone: Mainland, Hawaii, and Puerto Rico processing regions
	full-config:    Four frequencies, separate units, unions, and timezones

USAGE:

	profile, ok := scenarios.Load("union-shop")
	areas := payroll.DeriveAreas(profile)

SEE ALSO:
  - payroll/reducer.go: What each scenario exercises
  - factory:            Parsing real intake JSON instead
*/
package scenarios

import "github.com/reachnett/payroll-engine/payroll"

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// Scenario pairs a loadable profile with display metadata.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Profile     func() payroll.CompanyProfile
}

// All lists every scenario, display order.
var All = []Scenario{
	{
		ID:          "single-weekly",
		Name:        "Single Weekly",
		Description: "One weekly frequency, no splits of any kind",
		Profile:     SingleWeekly,
	},
	{
		ID:          "union-shop",
		Name:        "Union Shop",
		Description: "Weekly workforce with a unique-calendar union and a funding-only union",
		Profile:     UnionShop,
	},
	{
		ID:          "multi-timezone",
		Name:        "Multi Timezone",
		Description: "Mainland, Hawaii, and Puerto Rico processing regions",
		Profile:     MultiTimezone,
	},
	{
		ID:          "full-config",
		Name:        "Full Configuration",
		Description: "Four frequencies with unit, union, and timezone splits",
		Profile:     FullConfig,
	},
}

// Load returns the profile for a scenario ID.
func Load(id string) (payroll.CompanyProfile, bool) {
	for _, s := range All {
		if s.ID == id {
			return s.Profile(), true
		}
	}
	return payroll.CompanyProfile{}, false
}

// =============================================================================
// PROFILES
// =============================================================================

// SingleWeekly is the smallest useful profile: one area comes out.
func SingleWeekly() payroll.CompanyProfile {
	return payroll.CompanyProfile{
		TotalEmployees: 100,
		PayFrequencies: []payroll.PayFrequency{{
			Type:            payroll.FreqWeekly,
			EmployeeCount:   100,
			CalendarPattern: payroll.PatternMonSun,
			PayDay:          payroll.PayDayFriday,
		}},
		BusinessUnits: []payroll.BusinessUnit{
			{Code: payroll.SentinelAllUnits, Name: "All Business Units", EmployeeCount: 100},
		},
		TimeZones: []payroll.TimeZone{
			{Code: "ML", Name: "Mainland", EmployeeCount: 100},
		},
	}
}

// UnionShop has one union demanding its own calendar and one that only has
// separate funding. Both split; the remainder area absorbs everyone else.
func UnionShop() payroll.CompanyProfile {
	return payroll.CompanyProfile{
		TotalEmployees: 400,
		PayFrequencies: []payroll.PayFrequency{{
			Type:            payroll.FreqWeekly,
			EmployeeCount:   400,
			CalendarPattern: payroll.PatternMonSun,
			PayDay:          payroll.PayDayFriday,
		}},
		Unions: []payroll.Union{
			{Code: "L237", Name: "Local 237", EmployeeCount: 120, UniqueCalendar: true},
			{Code: "L580", Name: "Local 580", EmployeeCount: 80, UniqueFunding: true},
		},
	}
}

// MultiTimezone covers three processing regions, two of which affect
// payroll processing and force their own areas.
func MultiTimezone() payroll.CompanyProfile {
	return payroll.CompanyProfile{
		TotalEmployees: 600,
		PayFrequencies: []payroll.PayFrequency{{
			Type:            payroll.FreqBiweekly,
			EmployeeCount:   600,
			CalendarPattern: payroll.PatternMonSun,
			PayDay:          payroll.PayDayFriday,
		}},
		TimeZones: []payroll.TimeZone{
			{Code: "ML", Name: "Mainland", EmployeeCount: 500},
			{Code: "HI", Name: "Hawaii", EmployeeCount: 60, AffectsProcessing: true},
			{Code: "PR", Name: "Puerto Rico", EmployeeCount: 40, AffectsProcessing: true},
		},
	}
}

// FullConfig exercises everything at once: every frequency type, a unit
// that requires separation, a union carve-out, and an affecting timezone.
func FullConfig() payroll.CompanyProfile {
	return payroll.CompanyProfile{
		TotalEmployees: 1000,
		PayFrequencies: []payroll.PayFrequency{
			{Type: payroll.FreqWeekly, EmployeeCount: 400, CalendarPattern: payroll.PatternMonSun, PayDay: payroll.PayDayFriday},
			{Type: payroll.FreqBiweekly, EmployeeCount: 300, CalendarPattern: payroll.PatternSunSat, PayDay: payroll.PayDayThursday},
			{Type: payroll.FreqSemimonthly, EmployeeCount: 200, CalendarPattern: payroll.PatternSemimonthly, PayDay: payroll.PayDayFriday},
			{Type: payroll.FreqMonthly, EmployeeCount: 100, CalendarPattern: payroll.PatternMonthly, PayDay: payroll.PayDayFriday},
		},
		BusinessUnits: []payroll.BusinessUnit{
			{Code: "CONST", Name: "Construction", EmployeeCount: 350, RequiresSeparateArea: true},
			{Code: "ADMIN", Name: "Administration", EmployeeCount: 650},
		},
		// Union headcount is carved out of every frequency, so it stays
		// below the smallest frequency to keep coverage balanced.
		Unions: []payroll.Union{
			{Code: "L100", Name: "Local 100", EmployeeCount: 80, UniqueCalendar: true},
		},
		TimeZones: []payroll.TimeZone{
			{Code: "ML", Name: "Mainland", EmployeeCount: 900},
			{Code: "HI", Name: "Hawaii", EmployeeCount: 100, AffectsProcessing: true},
		},
	}
}
