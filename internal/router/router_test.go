package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/boarding-admin-api/internal/handler"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	"github.com/noah-isme/boarding-admin-api/internal/service"
	"github.com/noah-isme/boarding-admin-api/pkg/config"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

type staticTokens map[string]models.UserRole

func (s staticTokens) ValidateToken(token string) (*models.JWTClaims, error) {
	role, ok := s[token]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.JWTClaims{UserID: "u-" + token, Role: role}, nil
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T, env string) (*gin.Engine, *service.MetricsService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	cfg := &config.Config{Env: env, APIPrefix: "/api/v1", Security: config.SecurityConfig{Headers: true}}
	r := New(Params{
		Config:   cfg,
		Tokens:   staticTokens{"admin": models.RoleAdmin, "warden": models.RoleWarden},
		Observer: metrics,
		Ops:      handler.NewOpsHandler(metrics.Handler(), okPinger{}),
	})
	return r, metrics
}

func serve(r http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutesRegistered(t *testing.T) {
	r, _ := newTestRouter(t, config.EnvDevelopment)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"GET /docs/*any",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/auth/me",
		"GET /api/v1/reports",
		"GET /api/v1/reports/:reportId",
		"GET /api/v1/reports/:reportId/export/:format",
		"GET /api/v1/reports/:reportId/print",
		"GET /api/v1/students",
		"POST /api/v1/students",
		"GET /api/v1/students/:id",
		"PUT /api/v1/students/:id",
		"DELETE /api/v1/students/:id",
		"GET /api/v1/laundry-staff",
		"DELETE /api/v1/laundry-staff/:id",
		"POST /api/v1/pocket-money",
		"GET /api/v1/pocket-money",
		"GET /api/v1/pocket-money/report",
		"POST /api/v1/laundry-records",
		"GET /api/v1/laundry-records",
		"GET /api/v1/laundry/report",
		"GET /api/v1/laundry/students",
		"GET /api/v1/dashboard/stats",
		"GET /api/v1/dashboard/pocket-money-chart",
		"GET /api/v1/dashboard/laundry-chart",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestDocsHiddenInProduction(t *testing.T) {
	r, _ := newTestRouter(t, config.EnvProduction)

	for _, route := range r.Routes() {
		assert.NotEqual(t, "/docs/*any", route.Path)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t, config.EnvDevelopment)

	for _, target := range []string{
		"/api/v1/reports",
		"/api/v1/reports/dhobi-summary?month=3&year=2025",
		"/api/v1/reports/dhobi-summary/export/pdf?month=3&year=2025",
		"/api/v1/students",
		"/api/v1/dashboard/stats",
		"/api/v1/auth/me",
	} {
		rec := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)

		rec = serve(r, http.MethodGet, target, "forged")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestDeletesRequireAdmin(t *testing.T) {
	r, _ := newTestRouter(t, config.EnvDevelopment)

	for _, target := range []string{"/api/v1/students/s-1", "/api/v1/laundry-staff/d-1"} {
		rec := serve(r, http.MethodDelete, target, "warden")
		assert.Equal(t, http.StatusForbidden, rec.Code, target)
	}
}

func TestOpsRoutesArePublic(t *testing.T) {
	r, _ := newTestRouter(t, config.EnvDevelopment)

	rec := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = serve(r, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/health",status="200"} 1`)
}
