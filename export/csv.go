/*
Package export renders derived payroll configurations into the files SAP
consultants load: five CSV files, a JSON bundle, and an XLSX workbook.

PURPOSE:
  Everything here is presentation over the payroll package's plain records.
  Column keys and labels are SAP table/field names used verbatim - renaming
  a tag breaks downstream imports.

CSV FORMAT:
  RFC 4180 via gocsv over encoding/csv: fields containing commas, quotes,
  or newlines are quoted with internal quotes doubled, rows join with \n.

FILES:
  payroll_areas.csv        One row per derived area (human-labeled columns)
  calendar_id.csv          T549Q: one row per distinct calendar ID
  payroll_area_config.csv  T549A: area-to-calendar assignment
  pay_period.csv           Period boundaries per calendar
  pay_date.csv             Pay dates per calendar

SEE ALSO:
  - json.go:  The combined export bundle
  - xlsx.go:  Workbook rendering
  - files.go: File registry and content dispatch
*/
package export

import (
	"github.com/gocarina/gocsv"

	"github.com/reachnett/payroll-engine/payroll"
)

// =============================================================================
// ROW TYPES
// =============================================================================

// AreaRow is the human-facing payroll_areas.csv row.
type AreaRow struct {
	Code          string `csv:"Code" json:"code"`
	Description   string `csv:"Description" json:"description"`
	Frequency     string `csv:"Frequency" json:"frequency"`
	PeriodPattern string `csv:"Period Pattern" json:"periodPattern"`
	PayDay        string `csv:"Pay Day" json:"payDay"`
	CalendarID    string `csv:"Calendar ID" json:"calendarId"`
	EmployeeCount int    `csv:"Employee Count" json:"employeeCount"`
	BusinessUnit  string `csv:"Business Unit" json:"businessUnit"`
	Region        string `csv:"Region" json:"region"`
}

// CalendarRow is one T549Q calendar definition.
type CalendarRow struct {
	PeriodParameters    string `csv:"period_parameters" json:"period_parameters"`
	PeriodParameterName string `csv:"period_parameter_name" json:"period_parameter_name"`
	TimeUnit            string `csv:"time_unit" json:"time_unit"`
	TimeUnitDesc        string `csv:"time_unit_desc" json:"time_unit_desc"`
	StartDate           string `csv:"start_date" json:"start_date"`
}

// AreaConfigRow is one T549A area-to-calendar assignment.
type AreaConfigRow struct {
	PayrollArea      string `csv:"payroll_area" json:"payroll_area"`
	PayrollAreaText  string `csv:"payroll_area_text" json:"payroll_area_text"`
	PeriodParameters string `csv:"period_parameters" json:"period_parameters"`
	RunPayroll       string `csv:"run_payroll" json:"run_payroll"`
	DateModifier     string `csv:"date_modifier" json:"date_modifier"`
}

// =============================================================================
// ROW BUILDERS
// =============================================================================

var frequencyNames = map[payroll.FrequencyType]string{
	payroll.FreqWeekly:      "Weekly",
	payroll.FreqBiweekly:    "Bi-weekly",
	payroll.FreqSemimonthly: "Semi-monthly",
	payroll.FreqMonthly:     "Monthly",
}

func frequencyName(t payroll.FrequencyType) string {
	if n, ok := frequencyNames[t]; ok {
		return n
	}
	return string(t)
}

// BuildAreaRows flattens areas into payroll_areas.csv rows, order preserved.
func BuildAreaRows(areas []payroll.PayrollArea) []AreaRow {
	rows := make([]AreaRow, 0, len(areas))
	for _, a := range areas {
		rows = append(rows, AreaRow{
			Code:          a.Code,
			Description:   a.Description,
			Frequency:     string(a.Frequency),
			PeriodPattern: string(a.PeriodPattern),
			PayDay:        string(a.PayDay),
			CalendarID:    a.CalendarID,
			EmployeeCount: a.EmployeeCount,
			BusinessUnit:  a.BusinessUnit,
			Region:        a.Region,
		})
	}
	return rows
}

// BuildCalendarRows emits one T549Q row per distinct calendar ID,
// first-occurrence order. Many areas share one calendar.
func BuildCalendarRows(areas []payroll.PayrollArea) []CalendarRow {
	rows := make([]CalendarRow, 0)
	seen := make(map[string]bool)

	for _, a := range areas {
		calID := calendarIDOr80(a)
		if seen[calID] {
			continue
		}
		seen[calID] = true

		name := a.Description
		if name == "" {
			name = frequencyName(a.Frequency) + " Payroll"
		}

		rows = append(rows, CalendarRow{
			PeriodParameters:    calID,
			PeriodParameterName: name,
			TimeUnit:            payroll.SAPTimeUnit,
			TimeUnitDesc:        frequencyName(a.Frequency),
			StartDate:           payroll.SAPCalendarStartDate,
		})
	}
	return rows
}

// BuildAreaConfigRows emits one T549A row per area. The payroll_area key
// prefers the region over the code when a region is present.
func BuildAreaConfigRows(areas []payroll.PayrollArea) []AreaConfigRow {
	rows := make([]AreaConfigRow, 0, len(areas))
	for _, a := range areas {
		key := a.Region
		if key == "" {
			key = a.Code
		}
		rows = append(rows, AreaConfigRow{
			PayrollArea:      key,
			PayrollAreaText:  payroll.SAPPayrollAreaText,
			PeriodParameters: calendarIDOr80(a),
			RunPayroll:       payroll.SAPRunPayroll,
			DateModifier:     payroll.SAPDateModifier,
		})
	}
	return rows
}

func calendarIDOr80(a payroll.PayrollArea) string {
	if a.CalendarID == "" {
		return "80"
	}
	return a.CalendarID
}

// =============================================================================
// CSV RENDERING
// =============================================================================

// PayrollAreasCSV renders payroll_areas.csv.
func PayrollAreasCSV(areas []payroll.PayrollArea) (string, error) {
	rows := BuildAreaRows(areas)
	return gocsv.MarshalString(&rows)
}

// CalendarIDCSV renders calendar_id.csv (T549Q).
func CalendarIDCSV(areas []payroll.PayrollArea) (string, error) {
	rows := BuildCalendarRows(areas)
	return gocsv.MarshalString(&rows)
}

// PayrollAreaConfigCSV renders payroll_area_config.csv (T549A).
func PayrollAreaConfigCSV(areas []payroll.PayrollArea) (string, error) {
	rows := BuildAreaConfigRows(areas)
	return gocsv.MarshalString(&rows)
}

// PayPeriodCSV renders already-generated period rows.
func PayPeriodCSV(rows []payroll.PeriodRow) (string, error) {
	return gocsv.MarshalString(&rows)
}

// PayDateCSV renders already-generated pay-date rows.
func PayDateCSV(rows []payroll.PayDateRow) (string, error) {
	return gocsv.MarshalString(&rows)
}
