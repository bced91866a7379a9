package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/middleware"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

type dashboardServiceMock struct {
	hit  bool
	year int
}

func (m *dashboardServiceMock) Stats(context.Context) (dto.DashboardStats, bool, error) {
	return dto.DashboardStats{Month: 3, Year: 2025, TotalStudents: 12}, m.hit, nil
}

func (m *dashboardServiceMock) PocketMoneyChart(ctx context.Context, year int) ([]dto.PocketMoneyChartPoint, bool, error) {
	m.year = year
	return []dto.PocketMoneyChartPoint{{Month: "Jan"}}, m.hit, nil
}

func (m *dashboardServiceMock) LaundryChart(ctx context.Context, year int) ([]dto.LaundryChartPoint, bool, error) {
	m.year = year
	return []dto.LaundryChartPoint{{Month: "Jan"}}, m.hit, nil
}

func newDashboardRouter(svc dashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(svc)
	r := gin.New()
	r.Use(middleware.WithResponseMeta())
	r.GET("/dashboard/stats", h.Stats)
	r.GET("/dashboard/pocket-money-chart", h.PocketMoneyChart)
	r.GET("/dashboard/laundry-chart", h.LaundryChart)
	return r
}

func TestDashboardHandlerStatsCacheHit(t *testing.T) {
	rec, env := perform(newDashboardRouter(&dashboardServiceMock{hit: true}), "/dashboard/stats")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env.Meta["cache_hit"])
	assert.Contains(t, string(env.Data), `"totalStudents":12`)
}

func TestDashboardHandlerChartYear(t *testing.T) {
	svc := &dashboardServiceMock{}
	router := newDashboardRouter(svc)

	rec, env := perform(router, "/dashboard/laundry-chart?year=2024")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2024, svc.year)
	assert.Equal(t, false, env.Meta["cache_hit"])

	rec, _ = perform(router, "/dashboard/pocket-money-chart")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, svc.year)

	rec, env = perform(router, "/dashboard/pocket-money-chart?year=last")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, appErrors.ErrValidation.Code, env.Error.Code)
}
