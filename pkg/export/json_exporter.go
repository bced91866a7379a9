package export

import (
	"encoding/json"
	"fmt"
)

// JSONExporter renders the normalized record sequence as a JSON array of objects.
type JSONExporter struct{}

// NewJSONExporter builds a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Render marshals the table records. Field order follows each record's presentation order.
func (e *JSONExporter) Render(doc Document) ([]byte, error) {
	payload, err := json.MarshalIndent(doc.Table.Records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report json: %w", err)
	}
	return payload, nil
}
