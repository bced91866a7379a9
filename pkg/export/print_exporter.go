package export

import (
	"bytes"
	"fmt"
	"html/template"
)

const printTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
    body { font-family: "DejaVu Sans", Arial, sans-serif; font-size: 12px; margin: 24px; }
    table { width: 100%; border-collapse: collapse; }
    th, td { border: 1px solid #ccc; padding: 6px; text-align: left; }
    th { background: #f5f5f5; }
    @media print { body { margin: 0; } }
</style>
</head>
<body>
{{- if .Caption}}
<p class="caption">{{.Caption}}</p>
{{- end}}
<h3>{{.Title}}</h3>
<p>{{.Subtitle}}</p>
{{- if .Empty}}
<p>{{.Notice}}</p>
{{- else}}
<table>
<thead>
<tr>{{range .Headings}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{- range .Cells}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- end}}
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`

var printPage = template.Must(template.New("print").Parse(printTemplate))

// PrintExporter renders documents as a self-printing HTML page.
type PrintExporter struct {
	tmpl *template.Template
}

// NewPrintExporter constructs a print exporter.
func NewPrintExporter() *PrintExporter {
	return &PrintExporter{tmpl: printPage}
}

type printView struct {
	Title    string
	Subtitle string
	Caption  string
	Empty    bool
	Notice   string
	Headings []string
	Cells    [][]string
}

// Render executes the print template. All values are HTML escaped.
func (e *PrintExporter) Render(doc Document) ([]byte, error) {
	view := printView{
		Title:    doc.Title,
		Subtitle: doc.Subtitle,
		Caption:  doc.Caption,
		Empty:    doc.Blank(),
		Notice:   EmptyNotice,
		Headings: doc.Table.Headings(),
		Cells:    doc.Table.Cells(),
	}
	buf := &bytes.Buffer{}
	if err := e.tmpl.Execute(buf, view); err != nil {
		return nil, fmt.Errorf("render print page: %w", err)
	}
	return buf.Bytes(), nil
}
