package export

import (
	"encoding/json"
	"time"

	"github.com/reachnett/payroll-engine/payroll"
)

// =============================================================================
// JSON BUNDLE
// =============================================================================

// SAPTables groups the generated table contents by SAP table. The T549Q
// and T549A keys are the SAP table names, used verbatim downstream.
type SAPTables struct {
	CalendarID        []CalendarRow        `json:"T549Q"`
	PayrollAreaConfig []AreaConfigRow      `json:"T549A"`
	PayPeriods        []payroll.PeriodRow  `json:"payPeriods"`
	PayDates          []payroll.PayDateRow `json:"payDates"`
}

// Bundle is the full-configuration JSON export: the input profile, the
// derived areas, every generated table, and the validation verdict.
type Bundle struct {
	Profile      payroll.CompanyProfile   `json:"profile"`
	PayrollAreas []payroll.PayrollArea    `json:"payrollAreas"`
	SAPTables    SAPTables                `json:"sapTables"`
	Validation   payroll.ValidationResult `json:"validation"`
	ExportedAt   string                   `json:"exportedAt"`
}

// BuildBundle assembles the bundle. Period and pay-date rows are generated
// once per distinct calendar ID, first-occurrence order.
func (e Exporter) BuildBundle(profile payroll.CompanyProfile, areas []payroll.PayrollArea) Bundle {
	return Bundle{
		Profile:      profile,
		PayrollAreas: areas,
		SAPTables: SAPTables{
			CalendarID:        BuildCalendarRows(areas),
			PayrollAreaConfig: BuildAreaConfigRows(areas),
			PayPeriods:        e.periodRows(areas),
			PayDates:          e.payDateRows(areas),
		},
		Validation: payroll.Validate(profile, areas),
		ExportedAt: e.now().Format(time.RFC3339),
	}
}

// BundleJSON renders the bundle with two-space indentation.
func (e Exporter) BundleJSON(profile payroll.CompanyProfile, areas []payroll.PayrollArea) (string, error) {
	out, err := json.MarshalIndent(e.BuildBundle(profile, areas), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (e Exporter) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now().UTC()
}
