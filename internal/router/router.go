package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/boarding-admin-api/internal/handler"
	"github.com/noah-isme/boarding-admin-api/internal/middleware"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	"github.com/noah-isme/boarding-admin-api/pkg/config"
	"github.com/noah-isme/boarding-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/boarding-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/boarding-admin-api/pkg/middleware/requestid"
	securemiddleware "github.com/noah-isme/boarding-admin-api/pkg/middleware/secure"
)

// Params groups dependencies for building the HTTP router.
type Params struct {
	Config   *config.Config
	Logger   *zap.Logger
	Tokens   middleware.TokenValidator
	Observer middleware.RequestObserver

	Ops          *handler.OpsHandler
	Auth         *handler.AuthHandler
	Reports      *handler.ReportHandler
	Students     *handler.StudentHandler
	LaundryStaff *handler.LaundryStaffHandler
	PocketMoney  *handler.PocketMoneyHandler
	Laundry      *handler.LaundryHandler
	Dashboard    *handler.DashboardHandler
}

// New constructs the gin engine with every API route registered.
func New(p Params) *gin.Engine {
	cfg := p.Config
	production := cfg.Env == config.EnvProduction
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Security.Headers {
		r.Use(securemiddleware.New(production))
	}
	r.Use(middleware.Metrics(p.Observer))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", p.Ops.Health)
	r.GET("/ready", p.Ops.Ready)
	r.GET("/metrics", p.Ops.Prometheus)
	if !production {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", p.Auth.Login)
	auth.POST("/refresh", p.Auth.Refresh)

	secured := api.Group("")
	secured.Use(middleware.JWT(p.Tokens))
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	secured.POST("/auth/logout", p.Auth.Logout)
	secured.GET("/auth/me", p.Auth.Me)

	reports := secured.Group("/reports")
	reports.GET("", p.Reports.Catalogue)
	reports.GET("/:reportId", p.Reports.Show)
	reports.GET("/:reportId/export/:format", p.Reports.Export)
	reports.GET("/:reportId/print", p.Reports.Print)

	students := secured.Group("/students")
	students.GET("", p.Students.List)
	students.POST("", p.Students.Create)
	students.GET("/:id", p.Students.Get)
	students.PUT("/:id", p.Students.Update)
	students.DELETE("/:id", adminOnly, p.Students.Delete)

	staff := secured.Group("/laundry-staff")
	staff.GET("", p.LaundryStaff.List)
	staff.POST("", p.LaundryStaff.Create)
	staff.GET("/:id", p.LaundryStaff.Get)
	staff.PUT("/:id", p.LaundryStaff.Update)
	staff.DELETE("/:id", adminOnly, p.LaundryStaff.Delete)

	pocketMoney := secured.Group("/pocket-money")
	pocketMoney.POST("", p.PocketMoney.Record)
	pocketMoney.GET("", p.PocketMoney.List)
	pocketMoney.GET("/report", p.PocketMoney.MonthlyReport)

	secured.POST("/laundry-records", p.Laundry.Record)
	secured.GET("/laundry-records", p.Laundry.List)
	secured.GET("/laundry/report", p.Laundry.StaffReport)
	secured.GET("/laundry/students", p.Laundry.StudentSummary)

	dashboard := secured.Group("/dashboard")
	dashboard.GET("/stats", p.Dashboard.Stats)
	dashboard.GET("/pocket-money-chart", p.Dashboard.PocketMoneyChart)
	dashboard.GET("/laundry-chart", p.Dashboard.LaundryChart)

	return r
}
