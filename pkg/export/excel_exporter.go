package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single worksheet in exported workbooks.
const SheetName = "Report"

// ExcelExporter renders documents into a single-sheet xlsx workbook: row 1 holds the headings
// and row N+1 holds record N. Empty documents produce an empty sheet.
type ExcelExporter struct{}

// NewExcelExporter constructs an Excel exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Render writes the workbook to memory.
func (e *ExcelExporter) Render(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if !doc.Table.Empty() {
		headings := doc.Table.Headings()
		if err := f.SetSheetRow(SheetName, "A1", &headings); err != nil {
			return nil, fmt.Errorf("write headings: %w", err)
		}
		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#F5F5F5"}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("create header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(headings), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
			return nil, fmt.Errorf("style headings: %w", err)
		}

		for i, record := range doc.Table.Records {
			fields := record.Fields()
			values := make([]interface{}, len(fields))
			for j, field := range fields {
				values[j] = cellValue(field.Value)
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue keeps numbers numeric so spreadsheets can sum them. Everything else is written as
// its display text.
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case int, int64, float64, float32:
		return val
	default:
		return DisplayValue(val)
	}
}
