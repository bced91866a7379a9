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

type laundryStaffRepository interface {
	List(ctx context.Context, status string) ([]models.LaundryStaff, error)
	FindByID(ctx context.Context, id string) (*models.LaundryStaff, error)
	Create(ctx context.Context, staff *models.LaundryStaff) error
	Update(ctx context.Context, staff *models.LaundryStaff) error
	Delete(ctx context.Context, id string) error
}

// LaundryStaffService manages dhobis.
type LaundryStaffService struct {
	repo      laundryStaffRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLaundryStaffService constructs the service.
func NewLaundryStaffService(repo laundryStaffRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *LaundryStaffService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LaundryStaffService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns staff members, optionally only those with status.
func (s *LaundryStaffService) List(ctx context.Context, status string) ([]models.LaundryStaff, error) {
	if status != "" && status != models.StatusActive && status != models.StatusInactive {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be active or inactive")
	}
	staff, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, appErrors.Store(err, "failed to list laundry staff")
	}
	return staff, nil
}

// Get returns a staff member.
func (s *LaundryStaffService) Get(ctx context.Context, id string) (*models.LaundryStaff, error) {
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "laundry staff not found")
		}
		return nil, appErrors.Store(err, "failed to load laundry staff")
	}
	return staff, nil
}

// Create registers a dhobi.
func (s *LaundryStaffService) Create(ctx context.Context, req dto.LaundryStaffRequest) (*models.LaundryStaff, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid laundry staff payload")
	}
	staff := &models.LaundryStaff{Status: models.StatusActive}
	applyStaffRequest(staff, req)
	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, appErrors.Store(err, "failed to create laundry staff")
	}
	return staff, nil
}

// Update replaces the mutable fields of a dhobi. Existing laundry records keep their rate.
func (s *LaundryStaffService) Update(ctx context.Context, id string, req dto.LaundryStaffRequest) (*models.LaundryStaff, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid laundry staff payload")
	}
	staff, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyStaffRequest(staff, req)
	if err := s.repo.Update(ctx, staff); err != nil {
		return nil, appErrors.Store(err, "failed to update laundry staff")
	}
	return staff, nil
}

// Delete removes a dhobi together with their laundry records.
func (s *LaundryStaffService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "laundry staff not found")
		}
		return appErrors.Store(err, "failed to delete laundry staff")
	}
	s.cache.Invalidate(ctx, dashboardCachePattern)
	s.logger.Info("laundry staff deleted", zap.String("staff_id", id))
	return nil
}

func applyStaffRequest(staff *models.LaundryStaff, req dto.LaundryStaffRequest) {
	staff.Name = req.Name
	staff.Phone = req.Phone
	if req.PerClothRate != nil {
		staff.PerClothRate = *req.PerClothRate
	}
	if req.Status != "" {
		staff.Status = req.Status
	}
}
