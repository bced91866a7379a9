package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

const (
	testStaffID    = "5d6c0f1a-8b2e-4f7a-9c3d-1e2f3a4b5c6d"
	testInactiveID = "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

type stubLaundryRepo struct {
	created []models.LaundryRecord
	filters []models.LaundryFilter
	staff   []models.LaundryStaffReport
}

func (r *stubLaundryRepo) Create(ctx context.Context, record *models.LaundryRecord) error {
	record.ID = "lr-1"
	r.created = append(r.created, *record)
	return nil
}

func (r *stubLaundryRepo) List(ctx context.Context, filter models.LaundryFilter) ([]models.LaundryEntry, error) {
	r.filters = append(r.filters, filter)
	return []models.LaundryEntry{}, nil
}

func (r *stubLaundryRepo) StaffReport(ctx context.Context, period models.Period) ([]models.LaundryStaffReport, error) {
	return r.staff, nil
}

func (r *stubLaundryRepo) StudentSummary(ctx context.Context, period models.Period) ([]models.LaundryStudentSummary, error) {
	return []models.LaundryStudentSummary{}, nil
}

func newTestLaundryService(repo *stubLaundryRepo) *LaundryService {
	students := newMemStudents(models.Student{ID: testStudentID, Status: models.StatusActive})
	staff := newMemStaff(
		models.LaundryStaff{ID: testStaffID, Name: "Ramesh", PerClothRate: 7.5, Status: models.StatusActive},
		models.LaundryStaff{ID: testInactiveID, Name: "Suresh", PerClothRate: 5, Status: models.StatusInactive},
	)
	return NewLaundryService(repo, students, staff, nil, nil, nil)
}

func TestLaundryServiceRecordUsesStaffRate(t *testing.T) {
	repo := &stubLaundryRepo{}
	svc := newTestLaundryService(repo)

	record, err := svc.Record(context.Background(), dto.LaundryRecordRequest{
		StudentID:    testStudentID,
		StaffID:      testStaffID,
		ClothesCount: 12,
		RecordDate:   "2025-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 7.5, record.RatePerCloth)
	assert.Equal(t, 90.0, record.TotalAmount)
	assert.Equal(t, 2025, record.RecordDate.Year())
	require.Len(t, repo.created, 1)
}

func TestLaundryServiceRecordExplicitRate(t *testing.T) {
	repo := &stubLaundryRepo{}
	svc := newTestLaundryService(repo)

	record, err := svc.Record(context.Background(), dto.LaundryRecordRequest{
		StudentID:    testStudentID,
		StaffID:      testStaffID,
		ClothesCount: 3,
		RatePerCloth: floatPtr(0.1),
		RecordDate:   "2025-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.3, record.TotalAmount)
}

func TestLaundryServiceRecordRejects(t *testing.T) {
	svc := newTestLaundryService(&stubLaundryRepo{})

	_, err := svc.Record(context.Background(), dto.LaundryRecordRequest{StudentID: testStudentID, StaffID: testInactiveID, ClothesCount: 2, RecordDate: "2025-03-02"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Record(context.Background(), dto.LaundryRecordRequest{StudentID: testStudentID, StaffID: testStudentID, ClothesCount: 2, RecordDate: "2025-03-02"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = svc.Record(context.Background(), dto.LaundryRecordRequest{StudentID: testStudentID, StaffID: testStaffID, ClothesCount: 0, RecordDate: "2025-03-02"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLaundryTotal(t *testing.T) {
	cases := []struct {
		count     int
		rate      float64
		wantRate  float64
		wantTotal float64
	}{
		{count: 10, rate: 5, wantRate: 5, wantTotal: 50},
		{count: 3, rate: 0.1, wantRate: 0.1, wantTotal: 0.3},
		{count: 7, rate: 2.345, wantRate: 2.35, wantTotal: 16.45},
		{count: 1, rate: 0, wantRate: 0, wantTotal: 0},
	}
	for _, tc := range cases {
		rate, total := LaundryTotal(tc.count, tc.rate)
		assert.Equal(t, tc.wantRate, rate)
		assert.Equal(t, tc.wantTotal, total)
	}
}

func TestLaundryServiceListValidatesPeriod(t *testing.T) {
	repo := &stubLaundryRepo{}
	svc := newTestLaundryService(repo)

	_, err := svc.List(context.Background(), models.LaundryFilter{Month: 13, Year: 2025})
	require.Error(t, err)
	assert.Empty(t, repo.filters)

	entries, err := svc.List(context.Background(), models.LaundryFilter{Month: 3, Year: 2025, StaffID: testStaffID})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Equal(t, testStaffID, repo.filters[0].StaffID)
}
