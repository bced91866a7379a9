package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	"github.com/noah-isme/boarding-admin-api/internal/service"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
	"github.com/noah-isme/boarding-admin-api/pkg/response"
)

type reportService interface {
	Catalogue() []dto.ReportCatalogueEntry
	Resolve(ctx context.Context, reportID string, period models.Period) (*models.ReportResult, error)
}

type exportService interface {
	Export(ctx context.Context, reportID string, period models.Period, format models.ReportFormat) (*service.ExportResult, error)
}

// ReportHandler exposes the monthly reports and their exports.
type ReportHandler struct {
	reports reportService
	exports exportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports reportService, exports exportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// Catalogue godoc
// @Summary List available reports
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports [get]
func (h *ReportHandler) Catalogue(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.Catalogue(), nil)
}

// Show godoc
// @Summary Resolve a report for a month
// @Tags Reports
// @Produce json
// @Param reportId path string true "Report identifier"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year (YYYY)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /reports/{reportId} [get]
func (h *ReportHandler) Show(c *gin.Context) {
	reportID, period, ok := h.request(c)
	if !ok {
		return
	}
	result, err := h.reports.Resolve(c.Request.Context(), reportID, period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Data(), nil, map[string]interface{}{
		"report": result.Kind,
		"month":  period.Month,
		"year":   period.Year,
	})
}

// Export godoc
// @Summary Download a report
// @Tags Reports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Produce json
// @Param reportId path string true "Report identifier"
// @Param format path string true "pdf, excel, csv or json"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year (YYYY)"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /reports/{reportId}/export/{format} [get]
func (h *ReportHandler) Export(c *gin.Context) {
	format, ok := models.ParseReportFormat(c.Param("format"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("export format %q is not supported", c.Param("format"))))
		return
	}
	h.render(c, format)
}

// Print godoc
// @Summary Printable report page
// @Tags Reports
// @Produce html
// @Param reportId path string true "Report identifier"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year (YYYY)"
// @Success 200 {string} string
// @Router /reports/{reportId}/print [get]
func (h *ReportHandler) Print(c *gin.Context) {
	h.render(c, models.ReportFormatPrint)
}

func (h *ReportHandler) render(c *gin.Context, format models.ReportFormat) {
	reportID, period, ok := h.request(c)
	if !ok {
		return
	}
	out, err := h.exports.Export(c.Request.Context(), reportID, period, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	if out.Inline {
		response.Inline(c, out.Filename, out.ContentType, out.Payload)
		return
	}
	response.Attachment(c, out.Filename, out.ContentType, out.Payload)
}

// request extracts the report identifier and period. An unknown report is reported before any
// problem with the period.
func (h *ReportHandler) request(c *gin.Context) (string, models.Period, bool) {
	reportID := c.Param("reportId")
	if _, known := models.ParseReportKind(reportID); !known {
		response.Error(c, appErrors.Clone(appErrors.ErrReportNotFound, fmt.Sprintf("report %q does not exist", reportID)))
		return "", models.Period{}, false
	}
	period, err := periodFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return "", models.Period{}, false
	}
	return reportID, period, true
}
