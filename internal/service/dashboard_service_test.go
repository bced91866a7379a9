package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/boarding-admin-api/internal/models"
	appErrors "github.com/noah-isme/boarding-admin-api/pkg/errors"
)

type fakeDashboardRepo struct {
	students       int
	assigned       float64
	given          float64
	laundry        models.LaundryTotals
	pocketByMonth  []models.MonthlyPocketMoneyTotal
	laundryByMonth []models.MonthlyLaundryTotal
	laundryErr     error
	calls          atomic.Int32
}

func (f *fakeDashboardRepo) ActiveStudents(context.Context) (int, float64, error) {
	f.calls.Add(1)
	return f.students, f.assigned, nil
}

func (f *fakeDashboardRepo) PocketMoneyGiven(context.Context, models.Period) (float64, error) {
	f.calls.Add(1)
	return f.given, nil
}

func (f *fakeDashboardRepo) LaundryTotals(context.Context, models.Period) (models.LaundryTotals, error) {
	f.calls.Add(1)
	return f.laundry, f.laundryErr
}

func (f *fakeDashboardRepo) PocketMoneyByMonth(context.Context, int) ([]models.MonthlyPocketMoneyTotal, error) {
	f.calls.Add(1)
	return f.pocketByMonth, nil
}

func (f *fakeDashboardRepo) LaundryByMonth(context.Context, int) ([]models.MonthlyLaundryTotal, error) {
	f.calls.Add(1)
	return f.laundryByMonth, f.laundryErr
}

func fixedNow(svc *DashboardService) {
	svc.now = func() time.Time { return time.Date(2025, time.March, 18, 10, 0, 0, 0, time.UTC) }
}

func TestDashboardStatsComposesAndCaches(t *testing.T) {
	cache, mr := newTestCache(t)
	repo := &fakeDashboardRepo{students: 3, assigned: 3000, given: 1200, laundry: models.LaundryTotals{Clothes: 40, Cost: 200}}
	svc := NewDashboardService(repo, cache, nil)
	fixedNow(svc)

	stats, hit, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 3, stats.Month)
	assert.Equal(t, 2025, stats.Year)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1200.0, stats.PocketMoneyGivenThisMonth)
	assert.Equal(t, 1800.0, stats.PocketMoneyRemaining)
	assert.Equal(t, 40, stats.ClothesWashedThisMonth)
	assert.Equal(t, 200.0, stats.MonthlyLaundryCost)
	assert.True(t, mr.Exists("dash:stats:2025-03"))
	assert.Equal(t, int32(3), repo.calls.Load())

	again, hit, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, stats, again)
	assert.Equal(t, int32(3), repo.calls.Load())
}

func TestDashboardStatsRemainingNeverNegative(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{assigned: 500, given: 800}, nil, nil)
	fixedNow(svc)

	stats, hit, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Zero(t, stats.PocketMoneyRemaining)
}

func TestDashboardStatsStoreFailure(t *testing.T) {
	cache, mr := newTestCache(t)
	svc := NewDashboardService(&fakeDashboardRepo{laundryErr: errors.New("boom")}, cache, nil)
	fixedNow(svc)

	_, _, err := svc.Stats(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStore.Code, appErrors.FromError(err).Code)
	assert.False(t, mr.Exists("dash:stats:2025-03"))
}

func TestDashboardPocketMoneyChart(t *testing.T) {
	repo := &fakeDashboardRepo{assigned: 1000, pocketByMonth: []models.MonthlyPocketMoneyTotal{{Month: 1, Given: 600}, {Month: 3, Given: 1500}}}
	svc := NewDashboardService(repo, nil, nil)
	fixedNow(svc)

	points, _, err := svc.PocketMoneyChart(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Month)
	assert.Equal(t, 600.0, points[0].Given)
	assert.Equal(t, 400.0, points[0].Remaining)
	assert.Equal(t, 1000.0, points[1].Remaining)
	assert.Zero(t, points[2].Remaining)
	assert.Equal(t, "Dec", points[11].Month)
}

func TestDashboardLaundryChart(t *testing.T) {
	cache, mr := newTestCache(t)
	repo := &fakeDashboardRepo{laundryByMonth: []models.MonthlyLaundryTotal{{Month: 12, Clothes: 9, Cost: 45}}}
	svc := NewDashboardService(repo, cache, nil)

	points, hit, err := svc.LaundryChart(context.Background(), 2024)
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, points, 12)
	assert.Equal(t, 9, points[11].Clothes)
	assert.Equal(t, 45.0, points[11].Cost)
	assert.Zero(t, points[0].Clothes)
	assert.True(t, mr.Exists("dash:chart:laundry:2024"))

	_, _, err = svc.LaundryChart(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDashboardCacheInvalidatedByWrites(t *testing.T) {
	cache, mr := newTestCache(t)
	repo := &fakeDashboardRepo{students: 1, assigned: 1000}
	svc := NewDashboardService(repo, cache, nil)
	fixedNow(svc)

	_, _, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.True(t, mr.Exists("dash:stats:2025-03"))

	students := NewStudentService(newMemStudents(), cache, nil, nil)
	_, err = students.Create(context.Background(), validStudentRequest("STU-100"))
	require.NoError(t, err)
	assert.False(t, mr.Exists("dash:stats:2025-03"))

	_, hit, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
}
