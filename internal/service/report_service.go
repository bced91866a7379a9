package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

type reportStore interface {
	PocketMoneyMonthly(ctx context.Context, period models.Period) (models.PocketMoneyMonthlySummary, error)
	PocketMoneyOutstanding(ctx context.Context, period models.Period) ([]models.OutstandingBalanceRow, error)
	LaundryMonthly(ctx context.Context, period models.Period) (models.LaundryMonthlySummary, error)
	LaundryCost(ctx context.Context, period models.Period) ([]models.LaundryCostRow, error)
	DhobiSummary(ctx context.Context, period models.Period) ([]models.DhobiSummaryRow, error)
	StudentFull(ctx context.Context, period models.Period) ([]models.StudentFullRow, error)
}

type reportResolver func(s *ReportService, ctx context.Context, period models.Period) (models.ReportResult, error)

// reportResolvers is the complete set of supported reports. It is never mutated.
var reportResolvers = map[models.ReportKind]reportResolver{
	models.ReportPocketMoneyMonthly:     (*ReportService).pocketMoneyMonthly,
	models.ReportPocketMoneyOutstanding: (*ReportService).pocketMoneyOutstanding,
	models.ReportLaundryMonthly:         (*ReportService).laundryMonthly,
	models.ReportLaundryCost:            (*ReportService).laundryCost,
	models.ReportDhobiSummary:           (*ReportService).dhobiSummary,
	models.ReportStudentFull:            (*ReportService).studentFull,
}

// ReportService resolves a report identifier and period into aggregated report data. It is
// read-only and holds no mutable state.
type ReportService struct {
	store   reportStore
	metrics *MetricsService
	logger  *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(store reportStore, metrics *MetricsService, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{store: store, metrics: metrics, logger: logger}
}

// Catalogue lists every report with the formats it can be rendered in.
func (s *ReportService) Catalogue() []dto.ReportCatalogueEntry {
	defs := models.ReportCatalogue()
	entries := make([]dto.ReportCatalogueEntry, len(defs))
	for i, def := range defs {
		entries[i] = dto.ReportCatalogueEntry{
			ReportDefinition: def,
			Formats: []models.ReportFormat{
				models.ReportFormatJSON, models.ReportFormatPDF, models.ReportFormatExcel,
				models.ReportFormatCSV, models.ReportFormatPrint,
			},
		}
	}
	return entries
}

// Resolve runs the aggregation of reportID over period. Unknown identifiers fail before the
// period is inspected.
func (s *ReportService) Resolve(ctx context.Context, reportID string, period models.Period) (*models.ReportResult, error) {
	kind, ok := models.ParseReportKind(reportID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrReportNotFound, fmt.Sprintf("report %q does not exist", reportID))
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	resolve := reportResolvers[kind]
	start := time.Now()
	result, err := resolve(s, ctx, period)
	elapsed := time.Since(start)
	s.metrics.ObserveDBQuery("report:"+string(kind), elapsed)
	if err != nil {
		s.logger.Error("report query failed", zap.String("report", string(kind)), zap.Int("month", period.Month), zap.Int("year", period.Year), zap.Error(err))
		return nil, appErrors.Store(err, "failed to load report data")
	}

	result.Kind = kind
	result.Period = period
	rows := len(result.Rows)
	if !result.Tabular() {
		rows = 1
	}
	s.logger.Debug("report resolved",
		zap.String("report", string(kind)),
		zap.Int("month", period.Month),
		zap.Int("year", period.Year),
		zap.Int("rows", rows),
		zap.Duration("elapsed", elapsed),
	)
	return &result, nil
}

func (s *ReportService) pocketMoneyMonthly(ctx context.Context, period models.Period) (models.ReportResult, error) {
	summary, err := s.store.PocketMoneyMonthly(ctx, period)
	if err != nil {
		return models.ReportResult{}, err
	}
	return models.ReportResult{Summary: summary}, nil
}

func (s *ReportService) pocketMoneyOutstanding(ctx context.Context, period models.Period) (models.ReportResult, error) {
	rows, err := s.store.PocketMoneyOutstanding(ctx, period)
	if err != nil {
		return models.ReportResult{}, err
	}
	return models.ReportResult{Rows: toRecords(rows)}, nil
}

func (s *ReportService) laundryMonthly(ctx context.Context, period models.Period) (models.ReportResult, error) {
	summary, err := s.store.LaundryMonthly(ctx, period)
	if err != nil {
		return models.ReportResult{}, err
	}
	return models.ReportResult{Summary: summary}, nil
}

func (s *ReportService) laundryCost(ctx context.Context, period models.Period) (models.ReportResult, error) {
	rows, err := s.store.LaundryCost(ctx, period)
	if err != nil {
		return models.ReportResult{}, err
	}
	return models.ReportResult{Rows: toRecords(rows)}, nil
}

func (s *ReportService) dhobiSummary(ctx context.Context, period models.Period) (models.ReportResult, error) {
	rows, err := s.store.DhobiSummary(ctx, period)
	if err != nil {
		return models.ReportResult{}, err
	}
	return models.ReportResult{Rows: toRecords(rows)}, nil
}

func (s *ReportService) studentFull(ctx context.Context, period models.Period) (models.ReportResult, error) {
	rows, err := s.store.StudentFull(ctx, period)
	if err != nil {
		return models.ReportResult{}, err
	}
	return models.ReportResult{Rows: toRecords(rows)}, nil
}

func toRecords[T models.Record](rows []T) []models.Record {
	records := make([]models.Record, len(rows))
	for i, row := range rows {
		records[i] = row
	}
	return records
}
