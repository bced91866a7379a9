package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter renders a document as CSV with a heading row. Empty documents yield an empty body.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the document table.
func (e *CSVExporter) Render(doc Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	if doc.Table.Empty() {
		return buf.Bytes(), nil
	}
	writer := csv.NewWriter(buf)
	if err := writer.Write(doc.Table.Headings()); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	if err := writer.WriteAll(doc.Table.Cells()); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
