package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/reachnett/payroll-engine/payroll"
)

// =============================================================================
// XLSX WORKBOOK
// =============================================================================

// Sheet names mirror the CSV files; the SAP tables keep their table names.
const (
	sheetAreas      = "Payroll Areas"
	sheetCalendars  = "T549Q"
	sheetAreaConfig = "T549A"
	sheetPeriods    = "Pay Periods"
	sheetPayDates   = "Pay Dates"
)

// WorkbookBytes renders the whole configuration as a five-sheet workbook.
func (e Exporter) WorkbookBytes(profile payroll.CompanyProfile, areas []payroll.PayrollArea) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeAreaSheet(f, areas); err != nil {
		return nil, err
	}
	if err := writeCalendarSheet(f, areas); err != nil {
		return nil, err
	}
	if err := writeAreaConfigSheet(f, areas); err != nil {
		return nil, err
	}
	if err := writePeriodSheet(f, e.periodRows(areas)); err != nil {
		return nil, err
	}
	if err := writePayDateSheet(f, e.payDateRows(areas)); err != nil {
		return nil, err
	}

	// Drop the default sheet and land the reader on the areas.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex(sheetAreas)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := setRow(f, name, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowNum, err)
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeAreaSheet(f *excelize.File, areas []payroll.PayrollArea) error {
	header := []interface{}{"Code", "Description", "Frequency", "Period Pattern", "Pay Day", "Calendar ID", "Employee Count", "Business Unit", "Region"}
	rows := make([][]interface{}, 0, len(areas))
	for _, r := range BuildAreaRows(areas) {
		rows = append(rows, []interface{}{r.Code, r.Description, r.Frequency, r.PeriodPattern, r.PayDay, r.CalendarID, r.EmployeeCount, r.BusinessUnit, r.Region})
	}
	return writeSheet(f, sheetAreas, header, rows)
}

func writeCalendarSheet(f *excelize.File, areas []payroll.PayrollArea) error {
	header := []interface{}{"period_parameters", "period_parameter_name", "time_unit", "time_unit_desc", "start_date"}
	rows := make([][]interface{}, 0)
	for _, r := range BuildCalendarRows(areas) {
		rows = append(rows, []interface{}{r.PeriodParameters, r.PeriodParameterName, r.TimeUnit, r.TimeUnitDesc, r.StartDate})
	}
	return writeSheet(f, sheetCalendars, header, rows)
}

func writeAreaConfigSheet(f *excelize.File, areas []payroll.PayrollArea) error {
	header := []interface{}{"payroll_area", "payroll_area_text", "period_parameters", "run_payroll", "date_modifier"}
	rows := make([][]interface{}, 0, len(areas))
	for _, r := range BuildAreaConfigRows(areas) {
		rows = append(rows, []interface{}{r.PayrollArea, r.PayrollAreaText, r.PeriodParameters, r.RunPayroll, r.DateModifier})
	}
	return writeSheet(f, sheetAreaConfig, header, rows)
}

func writePeriodSheet(f *excelize.File, periodRows []payroll.PeriodRow) error {
	header := []interface{}{"period_parameters", "payroll_year", "payroll_period", "period_begin_date", "period_end_date", "prior_period_year", "prior_period_period"}
	rows := make([][]interface{}, 0, len(periodRows))
	for _, r := range periodRows {
		rows = append(rows, []interface{}{r.PeriodParameters, r.PayrollYear, r.PayrollPeriod, r.PeriodBeginDate, r.PeriodEndDate, r.PriorPeriodYear, r.PriorPeriodPeriod})
	}
	return writeSheet(f, sheetPeriods, header, rows)
}

func writePayDateSheet(f *excelize.File, dateRows []payroll.PayDateRow) error {
	header := []interface{}{"molga", "date_modifier", "period_parameters", "payroll_year", "payroll_period", "date_type", "date"}
	rows := make([][]interface{}, 0, len(dateRows))
	for _, r := range dateRows {
		rows = append(rows, []interface{}{r.Molga, r.DateModifier, r.PeriodParameters, r.PayrollYear, r.PayrollPeriod, r.DateType, r.Date})
	}
	return writeSheet(f, sheetPayDates, header, rows)
}
