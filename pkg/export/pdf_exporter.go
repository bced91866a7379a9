package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders documents into a bordered tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF with the document banner followed by the table, or the empty notice.
func (e *PDFExporter) Render(doc Document) ([]byte, error) {
	headings := doc.Table.Headings()
	orientation := "P"
	if len(headings) > 5 {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Caption != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(doc.Caption), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(doc.Subtitle), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if doc.Blank() {
		pdf.CellFormat(0, 8, EmptyNotice, "", 1, "L", false, 0, "")
	} else {
		pageWidth, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colWidth := (pageWidth - left - right) / float64(len(headings))

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		for _, heading := range headings {
			pdf.CellFormat(colWidth, 8, tr(heading), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range doc.Table.Cells() {
			for _, value := range row {
				pdf.CellFormat(colWidth, 7, tr(value), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
