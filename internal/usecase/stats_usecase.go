package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
)

// StatsUseCase обрабатывает бизнес-логику для сводки по квартирам
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GetStatistics возвращает сводку, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.InventoryStats, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Получаем из БД
	uc.logger.Debug("Fetching statistics from database")
	stats, err := uc.statsRepo.GetInventoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics from db: %w", err)
	}

	// 3. Кешируем
	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
		// Не возвращаем ошибку, т.к. данные уже получены
	}

	return stats, nil
}

// RefreshStatistics принудительно обновляет сводку
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.InventoryStats, error) {
	uc.logger.Info("Refreshing statistics")

	stats, err := uc.statsRepo.GetInventoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh statistics: %w", err)
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache refreshed stats", zap.Error(err))
	}

	return stats, nil
}
