package export_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/reachnett/payroll-engine/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbookBytes_FiveSheets(t *testing.T) {
	// GIVEN: A derived configuration
	// WHEN: Rendering the workbook
	// THEN: One sheet per table, default sheet dropped, readable back

	e := export.NewExporter()
	raw, err := e.WorkbookBytes(sampleProfile(), sampleAreas())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Payroll Areas", "T549Q", "T549A", "Pay Periods", "Pay Dates"},
		f.GetSheetList())
}

func TestWorkbookBytes_HeadersAndValues(t *testing.T) {
	e := export.NewExporter()
	raw, err := e.WorkbookBytes(sampleProfile(), sampleAreas())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("T549Q", "A1")
	require.NoError(t, err)
	assert.Equal(t, "period_parameters", got)

	got, err = f.GetCellValue("Payroll Areas", "A2")
	require.NoError(t, err)
	assert.Equal(t, "WF", got)

	got, err = f.GetCellValue("Pay Dates", "G2")
	require.NoError(t, err)
	assert.Equal(t, "01/03/2025", got)
}
