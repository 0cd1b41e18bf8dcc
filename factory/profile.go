/*
Package factory provides JSON to Go company-profile conversion.

PURPOSE:
  Converts JSON intake documents into payroll.CompanyProfile values. This
  enables profile capture without code changes - consultants record a
  client's payroll structure in JSON and the factory creates the proper
  Go structs with defaults filled in.

JSON SCHEMA:
  {
    "total_employees": 500,
    "pay_frequencies": [
      {"type": "weekly", "employee_count": 300, "calendar_pattern": "mon-sun", "pay_day": "friday"}
    ],
    "business_units": [
      {"code": "CONST", "name": "Construction", "employee_count": 200, "requires_separate_area": true}
    ],
    "unions": [
      {"code": "L237", "name": "Local 237", "employee_count": 80, "unique_calendar": true}
    ],
    "time_zones": [
      {"code": "HI", "name": "Hawaii", "employee_count": 50, "affects_processing": true}
    ]
  }

KEY FEATURES:
  - Validates JSON structure
  - Defaults pay day to friday and patterns per frequency type
  - Injects the sentinel "all" business unit when none are given
  - Round-trips profiles back to JSON

USAGE:
  factory := NewProfileFactory()
  profile, err := factory.ParseProfile(jsonString)
  areas := payroll.DeriveAreas(profile)

SEE ALSO:
  - payroll/types.go:   CompanyProfile definition
  - payroll/reducer.go: What the profile feeds
  - scenarios:          Canned profiles for demos and tests
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/reachnett/payroll-engine/payroll"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ProfileJSON is the JSON representation of a company profile.
type ProfileJSON struct {
	TotalEmployees    int                `json:"total_employees"`
	PayFrequencies    []FrequencyJSON    `json:"pay_frequencies"`
	BusinessUnits     []BusinessUnitJSON `json:"business_units,omitempty"`
	Unions            []UnionJSON        `json:"unions,omitempty"`
	TimeZones         []TimeZoneJSON     `json:"time_zones,omitempty"`
	SecuritySplitting bool               `json:"security_splitting,omitempty"`
}

// FrequencyJSON represents one pay frequency group.
type FrequencyJSON struct {
	Type            string `json:"type"` // weekly, biweekly, semimonthly, monthly
	EmployeeCount   int    `json:"employee_count"`
	CalendarPattern string `json:"calendar_pattern,omitempty"`
	PayDay          string `json:"pay_day,omitempty"`
	CustomPayDay    string `json:"custom_pay_day,omitempty"`
}

// BusinessUnitJSON represents one organizational unit.
type BusinessUnitJSON struct {
	Code                 string `json:"code,omitempty"`
	Name                 string `json:"name"`
	EmployeeCount        int    `json:"employee_count"`
	RequiresSeparateArea bool   `json:"requires_separate_area,omitempty"`
}

// UnionJSON represents one labor union.
type UnionJSON struct {
	Code           string `json:"code,omitempty"`
	Name           string `json:"name"`
	EmployeeCount  int    `json:"employee_count"`
	UniqueCalendar bool   `json:"unique_calendar,omitempty"`
	UniqueFunding  bool   `json:"unique_funding,omitempty"`
}

// TimeZoneJSON represents one processing region.
type TimeZoneJSON struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	EmployeeCount     int    `json:"employee_count"`
	AffectsProcessing bool   `json:"affects_processing,omitempty"`
}

// =============================================================================
// PROFILE FACTORY
// =============================================================================

// ProfileFactory converts JSON profiles to Go structs.
type ProfileFactory struct{}

// NewProfileFactory creates a new profile factory.
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// ParseProfile parses a JSON string into a CompanyProfile.
func (f *ProfileFactory) ParseProfile(jsonStr string) (payroll.CompanyProfile, error) {
	var pj ProfileJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return payroll.CompanyProfile{}, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return f.FromJSON(pj)
}

// FromJSON converts ProfileJSON to a CompanyProfile with defaults applied.
func (f *ProfileFactory) FromJSON(pj ProfileJSON) (payroll.CompanyProfile, error) {
	if len(pj.PayFrequencies) == 0 {
		return payroll.CompanyProfile{}, fmt.Errorf("profile needs at least one pay frequency")
	}

	profile := payroll.CompanyProfile{
		TotalEmployees:    pj.TotalEmployees,
		SecuritySplitting: pj.SecuritySplitting,
	}

	for _, fj := range pj.PayFrequencies {
		freq, err := parseFrequency(fj)
		if err != nil {
			return payroll.CompanyProfile{}, err
		}
		profile.PayFrequencies = append(profile.PayFrequencies, freq)
	}

	for _, bj := range pj.BusinessUnits {
		profile.BusinessUnits = append(profile.BusinessUnits, payroll.BusinessUnit{
			Code:                 defaultString(bj.Code, codeFromName(bj.Name)),
			Name:                 bj.Name,
			EmployeeCount:        bj.EmployeeCount,
			RequiresSeparateArea: bj.RequiresSeparateArea,
		})
	}
	if len(profile.BusinessUnits) == 0 {
		profile.BusinessUnits = []payroll.BusinessUnit{{
			Code:          payroll.SentinelAllUnits,
			Name:          "All Business Units",
			EmployeeCount: pj.TotalEmployees,
		}}
	}

	for _, uj := range pj.Unions {
		profile.Unions = append(profile.Unions, payroll.Union{
			Code:           defaultString(uj.Code, codeFromName(uj.Name)),
			Name:           uj.Name,
			EmployeeCount:  uj.EmployeeCount,
			UniqueCalendar: uj.UniqueCalendar,
			UniqueFunding:  uj.UniqueFunding,
		})
	}

	for _, tj := range pj.TimeZones {
		profile.TimeZones = append(profile.TimeZones, payroll.TimeZone{
			Code:              tj.Code,
			Name:              tj.Name,
			EmployeeCount:     tj.EmployeeCount,
			AffectsProcessing: tj.AffectsProcessing,
		})
	}

	return profile, nil
}

func parseFrequency(fj FrequencyJSON) (payroll.PayFrequency, error) {
	freqType := payroll.FrequencyType(fj.Type)
	switch freqType {
	case payroll.FreqWeekly, payroll.FreqBiweekly, payroll.FreqSemimonthly, payroll.FreqMonthly:
	default:
		return payroll.PayFrequency{}, fmt.Errorf("unknown pay frequency type %q", fj.Type)
	}

	pattern := payroll.PeriodPattern(fj.CalendarPattern)
	if pattern == "" {
		pattern = defaultPattern(freqType)
	}

	payDay := payroll.PayDay(fj.PayDay)
	if payDay == "" {
		payDay = payroll.PayDayFriday
	}

	return payroll.PayFrequency{
		Type:            freqType,
		EmployeeCount:   fj.EmployeeCount,
		CalendarPattern: pattern,
		PayDay:          payDay,
		CustomPayDay:    fj.CustomPayDay,
	}, nil
}

// defaultPattern picks the conventional period pattern for a frequency.
func defaultPattern(t payroll.FrequencyType) payroll.PeriodPattern {
	switch t {
	case payroll.FreqSemimonthly:
		return payroll.PatternSemimonthly
	case payroll.FreqMonthly:
		return payroll.PatternMonthly
	default:
		return payroll.PatternMonSun
	}
}

// codeFromName derives a short uppercase code from a display name.
func codeFromName(name string) string {
	code := make([]byte, 0, 5)
	for i := 0; i < len(name) && len(code) < 5; i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			code = append(code, c)
		case c >= 'a' && c <= 'z':
			code = append(code, c-('a'-'A'))
		case c >= '0' && c <= '9':
			code = append(code, c)
		}
	}
	return string(code)
}

func defaultString(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// =============================================================================
// ROUND-TRIP
// =============================================================================

// ToJSON converts a CompanyProfile back to its JSON representation.
func (f *ProfileFactory) ToJSON(profile payroll.CompanyProfile) ProfileJSON {
	pj := ProfileJSON{
		TotalEmployees:    profile.TotalEmployees,
		SecuritySplitting: profile.SecuritySplitting,
	}
	for _, freq := range profile.PayFrequencies {
		pj.PayFrequencies = append(pj.PayFrequencies, FrequencyJSON{
			Type:            string(freq.Type),
			EmployeeCount:   freq.EmployeeCount,
			CalendarPattern: string(freq.CalendarPattern),
			PayDay:          string(freq.PayDay),
			CustomPayDay:    freq.CustomPayDay,
		})
	}
	for _, bu := range profile.BusinessUnits {
		pj.BusinessUnits = append(pj.BusinessUnits, BusinessUnitJSON{
			Code:                 bu.Code,
			Name:                 bu.Name,
			EmployeeCount:        bu.EmployeeCount,
			RequiresSeparateArea: bu.RequiresSeparateArea,
		})
	}
	for _, u := range profile.Unions {
		pj.Unions = append(pj.Unions, UnionJSON{
			Code:           u.Code,
			Name:           u.Name,
			EmployeeCount:  u.EmployeeCount,
			UniqueCalendar: u.UniqueCalendar,
			UniqueFunding:  u.UniqueFunding,
		})
	}
	for _, tz := range profile.TimeZones {
		pj.TimeZones = append(pj.TimeZones, TimeZoneJSON{
			Code:              tz.Code,
			Name:              tz.Name,
			EmployeeCount:     tz.EmployeeCount,
			AffectsProcessing: tz.AffectsProcessing,
		})
	}
	return pj
}

// MarshalProfile renders a profile as indented JSON.
func (f *ProfileFactory) MarshalProfile(profile payroll.CompanyProfile) (string, error) {
	out, err := json.MarshalIndent(f.ToJSON(profile), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
