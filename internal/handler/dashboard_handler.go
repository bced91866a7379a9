package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/middleware"
	"github.com/noah-isme/boarding-admin-api/pkg/response"
)

type dashboardService interface {
	Stats(ctx context.Context) (dto.DashboardStats, bool, error)
	PocketMoneyChart(ctx context.Context, year int) ([]dto.PocketMoneyChartPoint, bool, error)
	LaundryChart(ctx context.Context, year int) ([]dto.LaundryChartPoint, bool, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats godoc
// @Summary Current month headline figures
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, hit, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, stats, hit)
}

// PocketMoneyChart godoc
// @Summary Monthly pocket money given and remaining for a year
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} response.Envelope
// @Router /dashboard/pocket-money-chart [get]
func (h *DashboardHandler) PocketMoneyChart(c *gin.Context) {
	year, err := optionalInt(c, "year")
	if err != nil {
		response.Error(c, err)
		return
	}
	points, hit, err := h.service.PocketMoneyChart(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, points, hit)
}

// LaundryChart godoc
// @Summary Monthly clothes washed and laundry cost for a year
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} response.Envelope
// @Router /dashboard/laundry-chart [get]
func (h *DashboardHandler) LaundryChart(c *gin.Context) {
	year, err := optionalInt(c, "year")
	if err != nil {
		response.Error(c, err)
		return
	}
	points, hit, err := h.service.LaundryChart(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, points, hit)
}

func respond(c *gin.Context, data interface{}, cacheHit bool) {
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, data, nil, middleware.ExtractMeta(c))
}
