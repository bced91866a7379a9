package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	"github.com/noah-isme/boarding-admin-api/pkg/response"
)

type laundryService interface {
	Record(ctx context.Context, req dto.LaundryRecordRequest) (*models.LaundryRecord, error)
	List(ctx context.Context, filter models.LaundryFilter) ([]models.LaundryEntry, error)
	StaffReport(ctx context.Context, period models.Period) ([]models.LaundryStaffReport, error)
	StudentSummary(ctx context.Context, period models.Period) ([]models.LaundryStudentSummary, error)
}

// LaundryHandler exposes laundry record endpoints.
type LaundryHandler struct {
	laundry laundryService
}

// NewLaundryHandler constructs the handler.
func NewLaundryHandler(laundry laundryService) *LaundryHandler {
	return &LaundryHandler{laundry: laundry}
}

// Record godoc
// @Summary Record a laundry batch
// @Tags Laundry
// @Accept json
// @Produce json
// @Param payload body dto.LaundryRecordRequest true "Laundry batch"
// @Success 201 {object} response.Envelope
// @Router /laundry-records [post]
func (h *LaundryHandler) Record(c *gin.Context) {
	var req dto.LaundryRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	record, err := h.laundry.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// List godoc
// @Summary List laundry records of a month
// @Tags Laundry
// @Produce json
// @Param month query int true "Month"
// @Param year query int true "Year"
// @Param student_id query string false "Student ID"
// @Param staff_id query string false "Staff ID"
// @Success 200 {object} response.Envelope
// @Router /laundry-records [get]
func (h *LaundryHandler) List(c *gin.Context) {
	period, err := periodFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.laundry.List(c.Request.Context(), models.LaundryFilter{
		Month:     period.Month,
		Year:      period.Year,
		StudentID: c.Query("student_id"),
		StaffID:   c.Query("staff_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// StaffReport godoc
// @Summary Clothes and earnings per dhobi
// @Tags Laundry
// @Produce json
// @Param month query int true "Month"
// @Param year query int true "Year"
// @Success 200 {object} response.Envelope
// @Router /laundry/report [get]
func (h *LaundryHandler) StaffReport(c *gin.Context) {
	period, err := periodFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.laundry.StaffReport(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// StudentSummary godoc
// @Summary Laundry totals per student
// @Tags Laundry
// @Produce json
// @Param month query int true "Month"
// @Param year query int true "Year"
// @Success 200 {object} response.Envelope
// @Router /laundry/students [get]
func (h *LaundryHandler) StudentSummary(c *gin.Context) {
	period, err := periodFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.laundry.StudentSummary(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
