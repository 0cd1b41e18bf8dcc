/*
reducer.go - Minimal payroll area derivation

PURPOSE:
  Decides when employee populations must be split into distinct payroll
  areas and produces the ordered area list for a company profile.

SPLITTING PRIORITY (evaluated independently within each pay frequency):
  1. Frequency     - always splits; one top-level group per PayFrequency
  2. Business unit - only units flagged requiresSeparateArea
  3. Union         - only unions with a unique calendar or unique funding;
                     a remainder area carries any non-union headcount
  4. Time zone     - only when unions produced no split, and only when more
                     than one zone affects processing

HEADCOUNT:
  Each area starts from the frequency's employee count. A union or time
  zone split overwrites it with that entity's own count; a business unit
  split does not. Per-entity counts are authoritative inputs, so split
  areas are not guaranteed to sum back to the frequency total - the
  validator reports over- and under-coverage instead.

DETERMINISM:
  Pure function. Input list order is preserved verbatim in the output;
  ordering is part of the user-visible contract.
*/
package payroll

// DeriveAreas produces the minimal ordered list of payroll areas for a
// profile. Zero-employee frequencies still produce areas, and duplicate
// frequency entries produce duplicate codes - both surface through
// Validate rather than being filtered here.
func DeriveAreas(profile CompanyProfile) []PayrollArea {
	areas := make([]PayrollArea, 0)

	for _, freq := range profile.PayFrequencies {
		units := splittingUnits(profile.BusinessUnits)
		if len(units) == 0 {
			units = []BusinessUnit{{Code: SentinelAllUnits, Name: "all business units"}}
		}

		for _, bu := range units {
			areas = append(areas, deriveForUnit(profile, freq, bu)...)
		}
	}

	return areas
}

// deriveForUnit applies the union and time zone steps for one
// (frequency, business unit) pair.
func deriveForUnit(profile CompanyProfile, freq PayFrequency, bu BusinessUnit) []PayrollArea {
	var out []PayrollArea

	unions := qualifyingUnions(profile.Unions)
	if len(unions) > 0 {
		covered := 0
		for i := range unions {
			u := unions[i]
			out = append(out, buildArea(freq, bu, &u, nil, u.EmployeeCount))
			covered += u.EmployeeCount
		}
		if remainder := freq.EmployeeCount - covered; remainder > 0 {
			out = append(out, buildArea(freq, bu, nil, nil, remainder))
		}
		return out
	}

	zones := affectingZones(profile.TimeZones)
	if len(zones) > 1 {
		for i := range zones {
			tz := zones[i]
			out = append(out, buildArea(freq, bu, nil, &tz, tz.EmployeeCount))
		}
		return out
	}

	return []PayrollArea{buildArea(freq, bu, nil, nil, freq.EmployeeCount)}
}

// buildArea assembles one area, delegating code/description/calendar/audit
// synthesis to the same (frequency, unit, union, zone) tuple.
func buildArea(freq PayFrequency, bu BusinessUnit, union *Union, tz *TimeZone, employeeCount int) PayrollArea {
	area := PayrollArea{
		Code:          MakeCode(freq, bu, union, tz),
		Description:   MakeDescription(freq, bu, union, tz),
		Frequency:     freq.Type,
		CalendarID:    ResolveCalendarID(freq, union != nil && union.UniqueCalendar),
		EmployeeCount: employeeCount,
		GeneratedBy:   GeneratedBySystem,
		Reasoning:     MakeReasoning(freq, bu, union, tz),
		PeriodPattern: effectivePattern(freq),
		PayDay:        freq.PayDay,
	}

	if bu.RequiresSeparateArea && bu.Code != SentinelAllUnits {
		area.BusinessUnit = bu.Code
	}
	if union != nil {
		area.Union = union.Code
	}
	if tz != nil {
		area.TimeZone = tz.Code
		area.Region = tz.Name
	}

	return area
}

// effectivePattern normalizes the stored pattern: semimonthly is always
// 1-15/16-end and monthly always 1-end, whatever the profile carries.
func effectivePattern(freq PayFrequency) PeriodPattern {
	switch freq.Type {
	case FreqSemimonthly:
		return PatternSemimonthly
	case FreqMonthly:
		return PatternMonthly
	default:
		return freq.CalendarPattern
	}
}

func splittingUnits(units []BusinessUnit) []BusinessUnit {
	var out []BusinessUnit
	for _, bu := range units {
		if bu.RequiresSeparateArea && bu.Code != SentinelAllUnits {
			out = append(out, bu)
		}
	}
	return out
}

func qualifyingUnions(unions []Union) []Union {
	var out []Union
	for _, u := range unions {
		if u.UniqueCalendar || u.UniqueFunding {
			out = append(out, u)
		}
	}
	return out
}

func affectingZones(zones []TimeZone) []TimeZone {
	var out []TimeZone
	for _, tz := range zones {
		if tz.AffectsProcessing {
			out = append(out, tz)
		}
	}
	return out
}
