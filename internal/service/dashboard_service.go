package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/boarding-admin-api/internal/dto"
	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

// dashboardCachePattern matches every dashboard cache key. Writes to students, pocket money and
// laundry drop all of them.
const dashboardCachePattern = "dash:*"

type dashboardRepository interface {
	ActiveStudents(ctx context.Context) (int, float64, error)
	PocketMoneyGiven(ctx context.Context, period models.Period) (float64, error)
	LaundryTotals(ctx context.Context, period models.Period) (models.LaundryTotals, error)
	PocketMoneyByMonth(ctx context.Context, year int) ([]models.MonthlyPocketMoneyTotal, error)
	LaundryByMonth(ctx context.Context, year int) ([]models.MonthlyLaundryTotal, error)
}

// DashboardService composes the dashboard headline figures and yearly charts.
type DashboardService struct {
	repo   dashboardRepository
	cache  *CacheService
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repo dashboardRepository, cache *CacheService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// Stats returns the figures of the current month and whether they came from cache.
func (s *DashboardService) Stats(ctx context.Context) (dto.DashboardStats, bool, error) {
	now := s.now()
	period := models.Period{Month: int(now.Month()), Year: now.Year()}
	key := fmt.Sprintf("dash:stats:%04d-%02d", period.Year, period.Month)
	return cached(ctx, s.cache, key, func(ctx context.Context) (dto.DashboardStats, error) {
		return s.composeStats(ctx, period)
	})
}

func (s *DashboardService) composeStats(ctx context.Context, period models.Period) (dto.DashboardStats, error) {
	var (
		students int
		assigned float64
		given    float64
		laundry  models.LaundryTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		students, assigned, err = s.repo.ActiveStudents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		given, err = s.repo.PocketMoneyGiven(gctx, period)
		return err
	})
	g.Go(func() error {
		var err error
		laundry, err = s.repo.LaundryTotals(gctx, period)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard stats failed", zap.String("period", period.String()), zap.Error(err))
		return dto.DashboardStats{}, appErrors.Store(err, "failed to load dashboard stats")
	}

	return dto.DashboardStats{
		Month:                     period.Month,
		Year:                      period.Year,
		TotalStudents:             students,
		PocketMoneyGivenThisMonth: given,
		PocketMoneyRemaining:      math.Max(assigned-given, 0),
		ClothesWashedThisMonth:    laundry.Clothes,
		MonthlyLaundryCost:        laundry.Cost,
	}, nil
}

// PocketMoneyChart returns given and remaining allowance for each month of year. Zero selects
// the current year.
func (s *DashboardService) PocketMoneyChart(ctx context.Context, year int) ([]dto.PocketMoneyChartPoint, bool, error) {
	year, err := s.chartYear(year)
	if err != nil {
		return nil, false, err
	}
	key := fmt.Sprintf("dash:chart:pocket-money:%04d", year)
	return cached(ctx, s.cache, key, func(ctx context.Context) ([]dto.PocketMoneyChartPoint, error) {
		var (
			assigned float64
			totals   []models.MonthlyPocketMoneyTotal
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			_, assigned, err = s.repo.ActiveStudents(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			totals, err = s.repo.PocketMoneyByMonth(gctx, year)
			return err
		})
		if err := g.Wait(); err != nil {
			s.logger.Error("pocket money chart failed", zap.Int("year", year), zap.Error(err))
			return nil, appErrors.Store(err, "failed to load pocket money chart")
		}

		var given [12]float64
		for _, t := range totals {
			if t.Month >= 1 && t.Month <= 12 {
				given[t.Month-1] = t.Given
			}
		}
		points := make([]dto.PocketMoneyChartPoint, 12)
		for i := range points {
			points[i] = dto.PocketMoneyChartPoint{
				Month:     monthLabel(i + 1),
				Given:     given[i],
				Remaining: math.Max(assigned-given[i], 0),
			}
		}
		return points, nil
	})
}

// LaundryChart returns clothes washed and laundry cost for each month of year. Zero selects the
// current year.
func (s *DashboardService) LaundryChart(ctx context.Context, year int) ([]dto.LaundryChartPoint, bool, error) {
	year, err := s.chartYear(year)
	if err != nil {
		return nil, false, err
	}
	key := fmt.Sprintf("dash:chart:laundry:%04d", year)
	return cached(ctx, s.cache, key, func(ctx context.Context) ([]dto.LaundryChartPoint, error) {
		totals, err := s.repo.LaundryByMonth(ctx, year)
		if err != nil {
			s.logger.Error("laundry chart failed", zap.Int("year", year), zap.Error(err))
			return nil, appErrors.Store(err, "failed to load laundry chart")
		}
		points := make([]dto.LaundryChartPoint, 12)
		for i := range points {
			points[i].Month = monthLabel(i + 1)
		}
		for _, t := range totals {
			if t.Month >= 1 && t.Month <= 12 {
				points[t.Month-1].Clothes = t.Clothes
				points[t.Month-1].Cost = t.Cost
			}
		}
		return points, nil
	})
}

func (s *DashboardService) chartYear(year int) (int, error) {
	if year == 0 {
		return s.now().Year(), nil
	}
	if err := validatePeriod(models.Period{Month: 1, Year: year}); err != nil {
		return 0, err
	}
	return year, nil
}

func monthLabel(month int) string {
	return time.Month(month).String()[:3]
}
