package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()
	stats := &domain.InventoryStats{Buildings: 2, Apartments: 40}

	t.Run("from cache", func(t *testing.T) {
		statsRepo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(stats, nil).Once()

		uc := usecase.NewStatsUseCase(statsRepo, cache, time.Hour, zap.NewNop())
		got, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 40, got.Apartments)
		statsRepo.AssertNotCalled(t, "GetInventoryStats", mock.Anything)
	})

	t.Run("from database and cached", func(t *testing.T) {
		statsRepo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, nil).Once()
		statsRepo.On("GetInventoryStats", ctx).Return(stats, nil).Once()
		cache.On("SetStats", ctx, stats, time.Hour).Return(nil).Once()

		uc := usecase.NewStatsUseCase(statsRepo, cache, time.Hour, zap.NewNop())
		got, err := uc.GetStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, got.Buildings)
		cache.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		statsRepo := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, errors.New("redis down")).Once()
		statsRepo.On("GetInventoryStats", ctx).Return(nil, errors.New("db down")).Once()

		uc := usecase.NewStatsUseCase(statsRepo, cache, time.Hour, zap.NewNop())
		_, err := uc.GetStatistics(ctx)
		assert.Error(t, err)
	})
}
