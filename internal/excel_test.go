package internal

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/prodsched/portal/internal/model"
)

func TestBuildExcel(t *testing.T) {
	records := []model.OrderRecord{
		{
			WO:               "WO-1",
			Quote:            "Q-100",
			PONumber:         "PO-9",
			Status:           "Open",
			CustomerName:     "Acme Corp",
			ModelDescription: "Dump Trailer 14ft",
			ScheduledDate:    model.NewDate(2026, time.March, 5),
			CompletionDate:   model.Date{},
			Price:            decimal.NewNullDecimal(decimal.NewFromFloat(1234.5)),
		},
		{
			WO:           "WO-2",
			CustomerName: "Acme Corp",
		},
	}

	b, err := BuildExcel(records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "My Orders")

	for i, want := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue(excelSheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := f.GetCellValue(excelSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "WO-1", got)

	// scheduled date rendered with the ISO number format
	got, err = f.GetCellValue(excelSheet, "G2")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", got)

	// unset completion date stays blank
	got, err = f.GetCellValue(excelSheet, "H2")
	require.NoError(t, err)
	assert.Empty(t, got)

	// currency format on the price column
	got, err = f.GetCellValue(excelSheet, "I2")
	require.NoError(t, err)
	assert.Equal(t, "$1,234.50", got)

	// nil price stays blank
	got, err = f.GetCellValue(excelSheet, "I3")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuildExcelEmpty(t *testing.T) {
	b, err := BuildExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excelSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, excelHeaders, rows[0])
}
