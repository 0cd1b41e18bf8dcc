/*
Package payroll derives minimal SAP payroll area configurations and the
calendar tables that go with them.

PURPOSE:
  Given a company's payroll profile (pay frequencies, business units, unions,
  time zones), this package decides how few payroll areas the company can run
  with, synthesizes SAP-compatible codes and descriptions for each area, and
  expands each area into full-year period and pay-date tables.

KEY CONCEPTS IN THIS FILE (types.go):
  - CompanyProfile: Everything we know about how the company pays people
  - PayrollArea:    One derived SAP payroll area (code, calendar, headcount)
  - PeriodRow / PayDateRow: Flat rows for the SAP T549-series tables
  - ValidationResult: Coverage and consistency checks over derived areas

DESIGN PRINCIPLES:
  1. Purity: Every operation is a deterministic function over its inputs.
     Same profile in, same areas out - byte for byte, including order.
  2. Best effort: Domain-legal inputs never fail. Unknown combinations fall
     back to sentinels, missing fields get defaults.
  3. Load-bearing names: Row field names become CSV column headers and SAP
     table keys verbatim. Do not rename them.

USAGE:
  areas := payroll.DeriveAreas(profile)
  result := payroll.Validate(profile, areas)
  rows := payroll.DefaultSeriesConfig().GeneratePeriods(areas[0], 1)

SEE ALSO:
  - reducer.go:    The splitting algorithm
  - codes.go:      Area code / description synthesis
  - calendarid.go: Calendar ID lookup table
  - periods.go, paydates.go: Date-series generation
*/
package payroll

// =============================================================================
// FREQUENCIES, PATTERNS, PAY DAYS
// =============================================================================

// FrequencyType is how often a population gets paid.
type FrequencyType string

const (
	FreqWeekly      FrequencyType = "weekly"
	FreqBiweekly    FrequencyType = "biweekly"
	FreqSemimonthly FrequencyType = "semimonthly"
	FreqMonthly     FrequencyType = "monthly"
)

// PeriodPattern is the boundary shape of a pay period.
//
// Weekly and biweekly frequencies use weekday ranges (mon-sun, sun-sat).
// Semimonthly is logically always 1st-15th / 16th-end regardless of what is
// stored, and monthly is always 1st-end. Pay-date generation additionally
// reads the semimonthly marker patterns (15-last, 15-30) and the monthly
// target patterns (last, 15, 1) from the same field.
type PeriodPattern string

const (
	PatternMonSun PeriodPattern = "mon-sun"
	PatternSunSat PeriodPattern = "sun-sat"
	PatternCustom PeriodPattern = "custom"

	PatternSemimonthly PeriodPattern = "1-15_16-end"
	PatternMonthly     PeriodPattern = "1-end"

	Pattern15Last PeriodPattern = "15-last"
	Pattern1530   PeriodPattern = "15-30"
	PatternLast   PeriodPattern = "last"
	Pattern15th   PeriodPattern = "15"
	Pattern1st    PeriodPattern = "1"
)

// PayDay names the day employees are paid on.
type PayDay string

const (
	PayDayThursday PayDay = "thursday"
	PayDayFriday   PayDay = "friday"
	PayDayCurrent  PayDay = "current"
	PayDayCustom   PayDay = "custom"
)

// =============================================================================
// COMPANY PROFILE - the input
// =============================================================================

// PayFrequency is one pay cadence in use at the company.
type PayFrequency struct {
	Type            FrequencyType `json:"type"`
	EmployeeCount   int           `json:"employeeCount"`
	CalendarPattern PeriodPattern `json:"calendarPattern"`
	PayDay          PayDay        `json:"payDay"`
	CustomPayDay    string        `json:"customPayDay,omitempty"`
}

// BusinessUnit is an organizational unit. The sentinel code "all" means
// "no split by business unit".
type BusinessUnit struct {
	Code                 string `json:"code"`
	Name                 string `json:"name"`
	EmployeeCount        int    `json:"employeeCount"`
	RequiresSeparateArea bool   `json:"requiresSeparateArea"`
}

// SentinelAllUnits is the code of the synthetic "no split" business unit.
const SentinelAllUnits = "all"

// Union is a labor union. A union with its own calendar or its own funding
// forces a dedicated payroll area.
type Union struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	EmployeeCount  int    `json:"employeeCount"`
	UniqueCalendar bool   `json:"uniqueCalendar"`
	UniqueFunding  bool   `json:"uniqueFunding"`
}

// TimeZone is a processing region. Codes follow the company's convention:
// ML mainland, HI Hawaii, PR Puerto Rico, IO other islands.
type TimeZone struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	EmployeeCount     int    `json:"employeeCount"`
	AffectsProcessing bool   `json:"affectsProcessing"`
}

// CompanyProfile aggregates everything the reducer needs.
//
// SecuritySplitting is reserved for a future splitting criterion and is
// currently inert.
type CompanyProfile struct {
	TotalEmployees    int            `json:"totalEmployees"`
	PayFrequencies    []PayFrequency `json:"payFrequencies"`
	BusinessUnits     []BusinessUnit `json:"businessUnits"`
	Unions            []Union        `json:"unions"`
	TimeZones         []TimeZone     `json:"timeZones"`
	SecuritySplitting bool           `json:"securitySplitting"`
}

// =============================================================================
// PAYROLL AREA - the output
// =============================================================================

// GeneratedBy records whether an area came out of the reducer or was
// hand-edited afterwards.
const (
	GeneratedBySystem     = "system"
	GeneratedByConsultant = "consultant"
)

// PayrollArea is one derived SAP payroll area.
//
// Immutable once produced: edits happen by replacing the whole list. Hand
// edits flip GeneratedBy to "consultant" and bypass the reducer, but must
// still pass Validate.
type PayrollArea struct {
	Code          string        `json:"code"`
	Description   string        `json:"description"`
	Frequency     FrequencyType `json:"frequency"`
	CalendarID    string        `json:"calendarId"`
	BusinessUnit  string        `json:"businessUnit,omitempty"`
	TimeZone      string        `json:"timeZone,omitempty"`
	Union         string        `json:"union,omitempty"`
	EmployeeCount int           `json:"employeeCount"`
	GeneratedBy   string        `json:"generatedBy"`
	Reasoning     []string      `json:"reasoning"`
	PeriodPattern PeriodPattern `json:"periodPattern,omitempty"`
	PayDay        PayDay        `json:"payDay,omitempty"`
	Region        string        `json:"region,omitempty"`
}

// ValidationResult reports coverage and consistency checks for one area list.
// It is recomputed on every edit, never persisted on its own.
type ValidationResult struct {
	IsValid          bool     `json:"isValid"`
	EmployeesCovered int      `json:"employeesCovered"`
	TotalEmployees   int      `json:"totalEmployees"`
	Warnings         []string `json:"warnings"`
	Errors           []string `json:"errors"`
}

// =============================================================================
// DATE-TABLE ROWS
// =============================================================================
// Field names (csv tags) are SAP column names used verbatim downstream.

// PeriodRow is one pay period in the T549Q-companion period table.
//
// payroll_period counts up from 1 across the whole generation call and never
// resets. prior_period_period resets to 01 whenever the period END date
// enters a new calendar year. The asymmetry is intentional and must be kept
// for compatibility with existing exports.
type PeriodRow struct {
	PeriodParameters  string `json:"period_parameters" csv:"period_parameters"`
	PayrollYear       string `json:"payroll_year" csv:"payroll_year"`
	PayrollPeriod     string `json:"payroll_period" csv:"payroll_period"`
	PeriodBeginDate   string `json:"period_begin_date" csv:"period_begin_date"`
	PeriodEndDate     string `json:"period_end_date" csv:"period_end_date"`
	PriorPeriodYear   string `json:"prior_period_year" csv:"prior_period_year"`
	PriorPeriodPeriod string `json:"prior_period_period" csv:"prior_period_period"`
}

// PayDateRow is one pay date. Unlike PeriodRow, payroll_period here is a
// single per-calendar-year counter.
type PayDateRow struct {
	Molga            string `json:"molga" csv:"molga"`
	DateModifier     string `json:"date_modifier" csv:"date_modifier"`
	PeriodParameters string `json:"period_parameters" csv:"period_parameters"`
	PayrollYear      string `json:"payroll_year" csv:"payroll_year"`
	PayrollPeriod    string `json:"payroll_period" csv:"payroll_period"`
	DateType         string `json:"date_type" csv:"date_type"`
	Date             string `json:"date" csv:"date"`
}

// =============================================================================
// SAP CONSTANTS
// =============================================================================

// Fixed SAP field values stamped into generated rows.
const (
	SAPMolga             = "10"
	SAPDateModifier      = "01"
	SAPDateType          = "01"
	SAPTimeUnit          = "D"
	SAPCalendarStartDate = "19000101"
	SAPRunPayroll        = "X"
	SAPPayrollAreaText   = "Payroll Area"
)
