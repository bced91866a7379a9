package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

type laundryRepository interface {
	Create(ctx context.Context, record *models.LaundryRecord) error
	List(ctx context.Context, filter models.LaundryFilter) ([]models.LaundryEntry, error)
	StaffReport(ctx context.Context, period models.Period) ([]models.LaundryStaffReport, error)
	StudentSummary(ctx context.Context, period models.Period) ([]models.LaundryStudentSummary, error)
}

type staffLookup interface {
	FindByID(ctx context.Context, id string) (*models.LaundryStaff, error)
}

// LaundryService records laundry batches and reports monthly laundry activity.
type LaundryService struct {
	repo      laundryRepository
	students  studentLookup
	staff     staffLookup
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLaundryService constructs the service.
func NewLaundryService(repo laundryRepository, students studentLookup, staff staffLookup, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *LaundryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LaundryService{repo: repo, students: students, staff: staff, cache: cache, validator: validate, logger: logger}
}

// Record stores a laundry batch. The total is always recomputed from count and rate.
func (s *LaundryService) Record(ctx context.Context, req dto.LaundryRecordRequest) (*models.LaundryRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid laundry payload")
	}
	date, err := parseDate(req.RecordDate, "record_date")
	if err != nil {
		return nil, err
	}
	if err := ensureStudent(ctx, s.students, req.StudentID); err != nil {
		return nil, err
	}
	staff, err := s.staff.FindByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "laundry staff not found")
		}
		return nil, appErrors.Store(err, "failed to load laundry staff")
	}
	if staff.Status != models.StatusActive {
		return nil, appErrors.Clone(appErrors.ErrValidation, "laundry staff is inactive")
	}

	rate := staff.PerClothRate
	if req.RatePerCloth != nil {
		rate = *req.RatePerCloth
	}
	rateDec, total := LaundryTotal(req.ClothesCount, rate)

	record := &models.LaundryRecord{
		StudentID:    req.StudentID,
		StaffID:      staff.ID,
		ClothesCount: req.ClothesCount,
		RatePerCloth: rateDec,
		TotalAmount:  total,
		RecordDate:   date,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, appErrors.Store(err, "failed to record laundry")
	}
	s.cache.Invalidate(ctx, dashboardCachePattern)
	s.logger.Info("laundry recorded", zap.String("student_id", record.StudentID), zap.String("staff_id", record.StaffID), zap.Int("clothes", record.ClothesCount), zap.Float64("total", record.TotalAmount))
	return record, nil
}

// LaundryTotal rounds the rate to cents and returns it with count x rate, also rounded to cents.
func LaundryTotal(count int, rate float64) (float64, float64) {
	r := decimal.NewFromFloat(rate).Round(2)
	total := r.Mul(decimal.NewFromInt(int64(count))).Round(2)
	return r.InexactFloat64(), total.InexactFloat64()
}

// List returns laundry records of a month, newest first.
func (s *LaundryService) List(ctx context.Context, filter models.LaundryFilter) ([]models.LaundryEntry, error) {
	if err := validatePeriod(models.Period{Month: filter.Month, Year: filter.Year}); err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Store(err, "failed to list laundry records")
	}
	return entries, nil
}

// StaffReport returns clothes and earnings per dhobi for a month.
func (s *LaundryService) StaffReport(ctx context.Context, period models.Period) ([]models.LaundryStaffReport, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	report, err := s.repo.StaffReport(ctx, period)
	if err != nil {
		return nil, appErrors.Store(err, "failed to load laundry staff report")
	}
	return report, nil
}

// StudentSummary returns laundry totals per student for a month.
func (s *LaundryService) StudentSummary(ctx context.Context, period models.Period) ([]models.LaundryStudentSummary, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	summary, err := s.repo.StudentSummary(ctx, period)
	if err != nil {
		return nil, appErrors.Store(err, "failed to load laundry summary")
	}
	return summary, nil
}
