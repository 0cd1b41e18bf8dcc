package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reachnett/payroll-engine/payroll"
)

// =============================================================================
// EXPORTER
// =============================================================================

// Exporter carries the knobs shared by every export: the series anchors,
// the number of years to generate, and an overridable clock for timestamps.
type Exporter struct {
	Series payroll.SeriesConfig
	Years  int
	Clock  func() time.Time
}

// NewExporter returns an exporter with the default anchors and one year
// of generated rows.
func NewExporter() Exporter {
	return Exporter{Series: payroll.DefaultSeriesConfig(), Years: 1}
}

// distinctCalendarAreas keeps the first area seen for each calendar ID.
// Period and pay-date tables are keyed by calendar, not by area, so a
// second area on the same calendar would only duplicate rows.
func distinctCalendarAreas(areas []payroll.PayrollArea) []payroll.PayrollArea {
	out := make([]payroll.PayrollArea, 0, len(areas))
	seen := make(map[string]bool)
	for _, a := range areas {
		calID := calendarIDOr80(a)
		if seen[calID] {
			continue
		}
		seen[calID] = true
		out = append(out, a)
	}
	return out
}

func (e Exporter) periodRows(areas []payroll.PayrollArea) []payroll.PeriodRow {
	rows := make([]payroll.PeriodRow, 0)
	for _, a := range distinctCalendarAreas(areas) {
		rows = append(rows, e.Series.GeneratePeriods(a, e.Years)...)
	}
	return rows
}

func (e Exporter) payDateRows(areas []payroll.PayrollArea) []payroll.PayDateRow {
	rows := make([]payroll.PayDateRow, 0)
	for _, a := range distinctCalendarAreas(areas) {
		rows = append(rows, e.Series.GeneratePayDates(a, e.Years)...)
	}
	return rows
}

// =============================================================================
// FILE REGISTRY
// =============================================================================

// FileDef describes one downloadable artifact.
type FileDef struct {
	ID       string
	Filename string
	Label    string
}

// FileDefs lists every exportable file, display order.
var FileDefs = []FileDef{
	{ID: "payroll-areas", Filename: "payroll_areas.csv", Label: "Payroll Areas"},
	{ID: "calendar-id", Filename: "calendar_id.csv", Label: "Calendar IDs (T549Q)"},
	{ID: "payroll-area-config", Filename: "payroll_area_config.csv", Label: "Payroll Area Config (T549A)"},
	{ID: "pay-period", Filename: "pay_period.csv", Label: "Pay Periods"},
	{ID: "pay-date", Filename: "pay_date.csv", Label: "Pay Dates"},
	{ID: "full-config", Filename: "payroll_config.json", Label: "Full Configuration (JSON)"},
	{ID: "workbook", Filename: "payroll_config.xlsx", Label: "Workbook (XLSX)"},
}

// NormalizeFileID maps loose user input ("pay_period", "Pay-Period") onto
// a registry ID.
func NormalizeFileID(id string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "_", "-")
}

// LookupFile finds a registry entry by normalized ID.
func LookupFile(id string) (FileDef, bool) {
	norm := NormalizeFileID(id)
	for _, def := range FileDefs {
		if def.ID == norm {
			return def, true
		}
	}
	return FileDef{}, false
}

// ErrBinaryFile marks registry entries that have no text rendering.
var ErrBinaryFile = errors.New("binary artifact, use WorkbookBytes")

// FileContent renders the artifact named by id. Text formats come back as
// the string; the binary workbook goes through WorkbookBytes instead and
// dispatches to ErrBinaryFile here.
func (e Exporter) FileContent(id string, profile payroll.CompanyProfile, areas []payroll.PayrollArea) (string, error) {
	switch NormalizeFileID(id) {
	case "payroll-areas":
		return PayrollAreasCSV(areas)
	case "calendar-id":
		return CalendarIDCSV(areas)
	case "payroll-area-config":
		return PayrollAreaConfigCSV(areas)
	case "pay-period":
		return PayPeriodCSV(e.periodRows(areas))
	case "pay-date":
		return PayDateCSV(e.payDateRows(areas))
	case "full-config":
		return e.BundleJSON(profile, areas)
	case "workbook":
		return "", ErrBinaryFile
	default:
		return "", fmt.Errorf("unknown export file %q", id)
	}
}
