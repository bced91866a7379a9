package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

type laundryServiceMock struct {
	filter models.LaundryFilter
	err    error
}

func (m *laundryServiceMock) Record(ctx context.Context, req dto.LaundryRecordRequest) (*models.LaundryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.LaundryRecord{ID: "lr-1", ClothesCount: req.ClothesCount, RatePerCloth: 7.5, TotalAmount: 7.5 * float64(req.ClothesCount)}, nil
}

func (m *laundryServiceMock) List(ctx context.Context, filter models.LaundryFilter) ([]models.LaundryEntry, error) {
	m.filter = filter
	return []models.LaundryEntry{}, m.err
}

func (m *laundryServiceMock) StaffReport(ctx context.Context, period models.Period) ([]models.LaundryStaffReport, error) {
	return []models.LaundryStaffReport{}, m.err
}

func (m *laundryServiceMock) StudentSummary(ctx context.Context, period models.Period) ([]models.LaundryStudentSummary, error) {
	return []models.LaundryStudentSummary{}, m.err
}

func newLaundryRouter(svc laundryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLaundryHandler(svc)
	r := gin.New()
	r.POST("/laundry-records", h.Record)
	r.GET("/laundry-records", h.List)
	r.GET("/laundry/report", h.StaffReport)
	r.GET("/laundry/students", h.StudentSummary)
	return r
}

func TestLaundryHandlerRecord(t *testing.T) {
	svc := &laundryServiceMock{}
	r := newLaundryRouter(svc)

	rec, env := post(r, "/laundry-records", `{"student_id":"s-1","staff_id":"d-1","clothes_count":12,"record_date":"2025-03-05"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"totalAmount":90`)

	svc.err = appErrors.Clone(appErrors.ErrValidation, "laundry staff is inactive")
	rec, env = post(r, "/laundry-records", `{"student_id":"s-1","staff_id":"d-2","clothes_count":1,"record_date":"2025-03-05"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "laundry staff is inactive", env.Error.Message)
}

func TestLaundryHandlerListFilters(t *testing.T) {
	svc := &laundryServiceMock{}
	r := newLaundryRouter(svc)

	rec, _ := perform(r, "/laundry-records?month=3&year=2025&staff_id=d-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.LaundryFilter{Month: 3, Year: 2025, StaffID: "d-1"}, svc.filter)
}

func TestLaundryHandlerReportsRequirePeriod(t *testing.T) {
	r := newLaundryRouter(&laundryServiceMock{})

	for _, target := range []string{"/laundry/report", "/laundry/students?month=3", "/laundry-records?month=x&year=2025"} {
		rec, _ := perform(r, target)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
	}
	for _, target := range []string{"/laundry/report?month=3&year=2025", "/laundry/students?month=3&year=2025"} {
		rec, env := perform(r, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `[]`, string(env.Data), target)
	}
}
