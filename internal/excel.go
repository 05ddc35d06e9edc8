package internal

import (
	"github.com/xuri/excelize/v2"

	"github.com/prodsched/portal/internal/model"
)

const excelSheet = "My Orders"

var excelHeaders = []string{
	"WO", "Quote", "PO Number", "Status", "Customer Name",
	"Model Description", "Scheduled Date", "Completion Date", "Price",
}

const (
	excelDateFormat  = "yyyy-mm-dd"
	excelPriceFormat = `"$"#,##0.00`
)

// BuildExcel serializes records into a downloadable workbook: ISO-formatted
// date columns, a currency-formatted price column and auto-sized widths.
func BuildExcel(records []model.OrderRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, err
	}

	for i, h := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheet, cell, h); err != nil {
			return nil, err
		}
	}

	dateFmt := excelDateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, err
	}
	priceFmt := excelPriceFormat
	priceStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &priceFmt})
	if err != nil {
		return nil, err
	}

	// widths[i] tracks the longest rendered cell per column, header included.
	widths := make([]int, len(excelHeaders))
	for i, h := range excelHeaders {
		widths[i] = len(h)
	}

	for rowIdx, r := range records {
		row := rowIdx + 2
		cells := []interface{}{
			r.WO, r.Quote, r.PONumber, r.Status, r.CustomerName, r.ModelDescription,
		}
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(excelSheet, cell, v); err != nil {
				return nil, err
			}
			if s, ok := v.(string); ok && len(s) > widths[col] {
				widths[col] = len(s)
			}
		}

		if err := setExcelDate(f, 7, row, r.ScheduledDate, dateStyle); err != nil {
			return nil, err
		}
		if err := setExcelDate(f, 8, row, r.CompletionDate, dateStyle); err != nil {
			return nil, err
		}
		if r.ScheduledDate.Valid && widths[6] < len(excelDateFormat) {
			widths[6] = len(excelDateFormat)
		}
		if r.CompletionDate.Valid && widths[7] < len(excelDateFormat) {
			widths[7] = len(excelDateFormat)
		}

		if r.Price.Valid {
			cell, err := excelize.CoordinatesToCellName(9, row)
			if err != nil {
				return nil, err
			}
			v, _ := r.Price.Decimal.Float64()
			if err := f.SetCellValue(excelSheet, cell, v); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(excelSheet, cell, cell, priceStyle); err != nil {
				return nil, err
			}
			if l := len(r.Price.Decimal.StringFixed(2)) + 1; l > widths[8] {
				widths[8] = l
			}
		}
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := w + 2
		if width < 10 {
			width = 10
		}
		if width > 60 {
			width = 60
		}
		if err := f.SetColWidth(excelSheet, name, name, float64(width)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setExcelDate(f *excelize.File, col, row int, d model.Date, style int) error {
	if !d.Valid {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(excelSheet, cell, d.Time); err != nil {
		return err
	}
	return f.SetCellStyle(excelSheet, cell, cell, style)
}
