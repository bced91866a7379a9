package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

type pocketMoneyRepository interface {
	Create(ctx context.Context, tx *models.PocketMoneyTransaction) error
	ListByPeriod(ctx context.Context, period models.Period) ([]models.PocketMoneyEntry, error)
	MonthlyBalances(ctx context.Context, period models.Period) ([]models.PocketMoneyBalance, error)
}

type studentLookup interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// PocketMoneyService records pocket money disbursements and reports monthly balances.
type PocketMoneyService struct {
	repo      pocketMoneyRepository
	students  studentLookup
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPocketMoneyService constructs the service.
func NewPocketMoneyService(repo pocketMoneyRepository, students studentLookup, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *PocketMoneyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PocketMoneyService{repo: repo, students: students, cache: cache, validator: validate, logger: logger}
}

// Record stores a disbursement. Month and year always come from the transaction date.
func (s *PocketMoneyService) Record(ctx context.Context, req dto.PocketMoneyRequest) (*models.PocketMoneyTransaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid pocket money payload")
	}
	date, err := parseDate(req.TransactionDate, "transaction_date")
	if err != nil {
		return nil, err
	}
	if err := ensureStudent(ctx, s.students, req.StudentID); err != nil {
		return nil, err
	}

	period := periodOf(date)
	tx := &models.PocketMoneyTransaction{
		StudentID:       req.StudentID,
		Amount:          *req.Amount,
		Month:           period.Month,
		Year:            period.Year,
		TransactionDate: date,
		Remarks:         req.Remarks,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, appErrors.Store(err, "failed to record pocket money")
	}
	s.cache.Invalidate(ctx, dashboardCachePattern)
	s.logger.Info("pocket money recorded", zap.String("student_id", tx.StudentID), zap.Float64("amount", tx.Amount), zap.String("period", period.String()))
	return tx, nil
}

// List returns the disbursements of a month, newest first.
func (s *PocketMoneyService) List(ctx context.Context, period models.Period) ([]models.PocketMoneyEntry, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, appErrors.Store(err, "failed to list pocket money")
	}
	return entries, nil
}

// MonthlyReport returns every student's assigned, given and remaining allowance for a month.
func (s *PocketMoneyService) MonthlyReport(ctx context.Context, period models.Period) ([]models.PocketMoneyBalance, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	balances, err := s.repo.MonthlyBalances(ctx, period)
	if err != nil {
		return nil, appErrors.Store(err, "failed to load pocket money report")
	}
	return balances, nil
}

func ensureStudent(ctx context.Context, students studentLookup, id string) error {
	if _, err := students.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Store(err, "failed to load student")
	}
	return nil
}
