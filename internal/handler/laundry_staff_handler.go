package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/service"
	"github.com/noah-isme/boarding-admin-api/pkg/response"
)

// LaundryStaffHandler exposes dhobi management endpoints.
type LaundryStaffHandler struct {
	staff *service.LaundryStaffService
}

// NewLaundryStaffHandler constructs the handler.
func NewLaundryStaffHandler(staff *service.LaundryStaffService) *LaundryStaffHandler {
	return &LaundryStaffHandler{staff: staff}
}

// List godoc
// @Summary List laundry staff
// @Tags Laundry
// @Produce json
// @Param status query string false "active or inactive"
// @Success 200 {object} response.Envelope
// @Router /laundry-staff [get]
func (h *LaundryStaffHandler) List(c *gin.Context) {
	staff, err := h.staff.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

// Get godoc
// @Summary Get laundry staff member
// @Tags Laundry
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Envelope
// @Router /laundry-staff/{id} [get]
func (h *LaundryStaffHandler) Get(c *gin.Context) {
	staff, err := h.staff.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

// Create godoc
// @Summary Register laundry staff
// @Tags Laundry
// @Accept json
// @Produce json
// @Param payload body dto.LaundryStaffRequest true "Staff payload"
// @Success 201 {object} response.Envelope
// @Router /laundry-staff [post]
func (h *LaundryStaffHandler) Create(c *gin.Context) {
	var req dto.LaundryStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	staff, err := h.staff.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, staff)
}

// Update godoc
// @Summary Update laundry staff
// @Tags Laundry
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param payload body dto.LaundryStaffRequest true "Staff payload"
// @Success 200 {object} response.Envelope
// @Router /laundry-staff/{id} [put]
func (h *LaundryStaffHandler) Update(c *gin.Context) {
	var req dto.LaundryStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	staff, err := h.staff.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, staff, nil)
}

// Delete godoc
// @Summary Delete laundry staff
// @Tags Laundry
// @Param id path string true "Staff ID"
// @Success 204
// @Router /laundry-staff/{id} [delete]
func (h *LaundryStaffHandler) Delete(c *gin.Context) {
	if err := h.staff.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
