package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
	"github.com/noah-isme/boarding-admin-api/pkg/export"
)

type reportResolverService interface {
	Resolve(ctx context.Context, reportID string, period models.Period) (*models.ReportResult, error)
}

type documentRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

// ExportResult is a rendered report ready to be streamed to the client. Nothing is kept on disk.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
	Inline      bool
}

type exportFormat struct {
	renderer    documentRenderer
	extension   string
	contentType string
	inline      bool
}

// ExportService renders resolved reports into downloadable documents.
type ExportService struct {
	reports     reportResolverService
	formats     map[models.ReportFormat]exportFormat
	institution string
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewExportService constructs an ExportService. Institution is printed above PDF and print
// documents when non-empty.
func NewExportService(reports reportResolverService, institution string, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		reports: reports,
		formats: map[models.ReportFormat]exportFormat{
			models.ReportFormatJSON:  {renderer: export.NewJSONExporter(), extension: "json", contentType: "application/json"},
			models.ReportFormatPDF:   {renderer: export.NewPDFExporter(), extension: "pdf", contentType: "application/pdf"},
			models.ReportFormatExcel: {renderer: export.NewExcelExporter(), extension: "xlsx", contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
			models.ReportFormatCSV:   {renderer: export.NewCSVExporter(), extension: "csv", contentType: "text/csv; charset=utf-8"},
			models.ReportFormatPrint: {renderer: export.NewPrintExporter(), extension: "html", contentType: "text/html; charset=utf-8", inline: true},
		},
		institution: institution,
		metrics:     metrics,
		logger:      logger,
	}
}

// Export resolves reportID over period and renders it in format.
func (s *ExportService) Export(ctx context.Context, reportID string, period models.Period, format models.ReportFormat) (*ExportResult, error) {
	rendering, ok := s.formats[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("export format %q is not supported", format))
	}

	result, err := s.reports.Resolve(ctx, reportID, period)
	if err != nil {
		return nil, err
	}

	payload, err := rendering.renderer.Render(export.NewDocument(*result, s.institution))
	if err != nil {
		s.logger.Error("report render failed", zap.String("report", string(result.Kind)), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrRender.Code, appErrors.ErrRender.Status, appErrors.ErrRender.Message)
	}
	s.metrics.ObserveReportRender(string(result.Kind), string(format))

	return &ExportResult{
		Filename:    Filename(result.Kind, period, rendering.extension),
		ContentType: rendering.contentType,
		Payload:     payload,
		Inline:      rendering.inline,
	}, nil
}

// Filename builds the download name "{reportId}-{month}-{year}.{ext}".
func Filename(kind models.ReportKind, period models.Period, extension string) string {
	return fmt.Sprintf("%s-%d-%d.%s", kind, period.Month, period.Year, extension)
}
