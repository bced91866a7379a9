package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/boarding-admin-api/api/swagger"
	"github.com/noah-isme/boarding-admin-api/internal/handler"
	"github.com/noah-isme/boarding-admin-api/internal/repository"
	"github.com/noah-isme/boarding-admin-api/internal/router"
	"github.com/noah-isme/boarding-admin-api/internal/service"
	"github.com/noah-isme/boarding-admin-api/pkg/cache"
	"github.com/noah-isme/boarding-admin-api/pkg/config"
	"github.com/noah-isme/boarding-admin-api/pkg/database"
	"github.com/noah-isme/boarding-admin-api/pkg/logger"
)

// @title Boarding Admin API
// @version 1.0.0
// @description Boarding school administration: students, pocket money, laundry and monthly reports
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.Database.Name); err != nil {
			logr.Fatal("failed to migrate database", zap.Error(err))
		}
		logr.Info("database migrations applied")
	}

	var redisClient *redis.Client
	if cfg.Dashboard.CacheEnabled {
		redisClient, err = cache.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}

	metrics := service.NewMetricsService()
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	staffRepo := repository.NewLaundryStaffRepository(db)
	pocketMoneyRepo := repository.NewPocketMoneyRepository(db)
	laundryRepo := repository.NewLaundryRepository(db)
	reportRepo := repository.NewReportRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	cacheSvc := service.NewCacheService(repository.NewCacheRepository(redisClient), metrics, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.CacheEnabled && redisClient != nil)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	studentSvc := service.NewStudentService(studentRepo, cacheSvc, validate, logr)
	staffSvc := service.NewLaundryStaffService(staffRepo, cacheSvc, validate, logr)
	pocketMoneySvc := service.NewPocketMoneyService(pocketMoneyRepo, studentRepo, cacheSvc, validate, logr)
	laundrySvc := service.NewLaundryService(laundryRepo, studentRepo, staffRepo, cacheSvc, validate, logr)
	dashboardSvc := service.NewDashboardService(dashboardRepo, cacheSvc, logr)
	reportSvc := service.NewReportService(reportRepo, metrics, logr)
	exportSvc := service.NewExportService(reportSvc, cfg.Reports.SchoolName, metrics, logr)

	engine := router.New(router.Params{
		Config:       cfg,
		Logger:       logr,
		Tokens:       authSvc,
		Observer:     metrics,
		Ops:          handler.NewOpsHandler(metrics.Handler(), db),
		Auth:         handler.NewAuthHandler(authSvc),
		Reports:      handler.NewReportHandler(reportSvc, exportSvc),
		Students:     handler.NewStudentHandler(studentSvc),
		LaundryStaff: handler.NewLaundryStaffHandler(staffSvc),
		PocketMoney:  handler.NewPocketMoneyHandler(pocketMoneySvc),
		Laundry:      handler.NewLaundryHandler(laundrySvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
