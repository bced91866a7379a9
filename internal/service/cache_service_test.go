package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type brokenCacheRepo struct{}

func (brokenCacheRepo) Get(context.Context, string, interface{}) error {
	return errors.New("connection reset")
}

func (brokenCacheRepo) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("connection reset")
}

func (brokenCacheRepo) DeleteByPattern(context.Context, string) error {
	return errors.New("connection reset")
}

func TestCacheServiceRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)

	var dest map[string]int
	assert.False(t, cache.Get(context.Background(), "dash:stats:2025-01", &dest))

	cache.Set(context.Background(), "dash:stats:2025-01", map[string]int{"students": 4}, 0)
	require.True(t, mr.Exists("dash:stats:2025-01"))
	assert.Equal(t, time.Minute, mr.TTL("dash:stats:2025-01"))

	assert.True(t, cache.Get(context.Background(), "dash:stats:2025-01", &dest))
	assert.Equal(t, 4, dest["students"])

	mr.FastForward(2 * time.Minute)
	assert.False(t, cache.Get(context.Background(), "dash:stats:2025-01", &dest))
}

func TestCacheServiceDisabled(t *testing.T) {
	cache := NewCacheService(brokenCacheRepo{}, nil, time.Minute, zap.NewNop(), false)
	assert.False(t, cache.Enabled())

	var nilCache *CacheService
	assert.False(t, nilCache.Enabled())
	nilCache.Invalidate(context.Background(), dashboardCachePattern)
}

func TestCachedDegradesOnFaults(t *testing.T) {
	cache := NewCacheService(brokenCacheRepo{}, NewMetricsService(), time.Minute, zap.NewNop(), true)

	loads := 0
	load := func(context.Context) (int, error) {
		loads++
		return 42, nil
	}
	value, hit, err := cached(context.Background(), cache, "k", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, loads)

	cache.Invalidate(context.Background(), dashboardCachePattern)
}
