package dto

import "github.com/noah-isme/boarding-admin-api/internal/models"

// ReportCatalogueEntry lists a report together with the formats it can be exported in.
type ReportCatalogueEntry struct {
	models.ReportDefinition
	Formats []models.ReportFormat `json:"formats"`
}
