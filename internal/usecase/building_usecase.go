package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/usecase/dto"
)

const buildingsCacheKey = "buildings:all"

// BuildingUseCase - корпуса комплекса
type BuildingUseCase struct {
	buildingRepo repository.BuildingRepository
	cacheRepo    repository.CacheRepository
	listing      *ListingCache
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewBuildingUseCase создает новый экземпляр BuildingUseCase
func NewBuildingUseCase(
	buildingRepo repository.BuildingRepository,
	cacheRepo repository.CacheRepository,
	listing *ListingCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *BuildingUseCase {
	return &BuildingUseCase{
		buildingRepo: buildingRepo,
		cacheRepo:    cacheRepo,
		listing:      listing,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// List возвращает все корпуса, используя кеш когда возможно
func (uc *BuildingUseCase) List(ctx context.Context) ([]*domain.Building, error) {
	cached, err := uc.cacheRepo.Get(ctx, buildingsCacheKey)
	if err != nil {
		uc.logger.Warn("Failed to get buildings from cache", zap.Error(err))
	}
	if cached != nil {
		var buildings []*domain.Building
		if err := json.Unmarshal(cached, &buildings); err == nil {
			return buildings, nil
		}
	}

	buildings, err := uc.buildingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(buildings); err == nil {
		if err := uc.cacheRepo.Set(ctx, buildingsCacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache buildings", zap.Error(err))
		}
	}
	return buildings, nil
}

// Get возвращает корпус по ID
func (uc *BuildingUseCase) Get(ctx context.Context, id int64) (*domain.Building, error) {
	return uc.buildingRepo.GetByID(ctx, id)
}

// GetBySlug возвращает корпус по slug
func (uc *BuildingUseCase) GetBySlug(ctx context.Context, slug string) (*domain.Building, error) {
	return uc.buildingRepo.GetBySlug(ctx, slug)
}

// Create создаёт корпус
func (uc *BuildingUseCase) Create(ctx context.Context, req *dto.BuildingRequest) (*domain.Building, error) {
	building := buildingFromRequest(req)
	if err := uc.buildingRepo.Create(ctx, building); err != nil {
		return nil, err
	}

	uc.dropBuildingsCache(ctx)
	uc.logger.Info("Building created", zap.Int64("id", building.ID), zap.String("slug", building.Slug))
	return building, nil
}

// Update обновляет корпус
func (uc *BuildingUseCase) Update(ctx context.Context, id int64, req *dto.BuildingRequest) (*domain.Building, error) {
	building := buildingFromRequest(req)
	building.ID = id
	if err := uc.buildingRepo.Update(ctx, building); err != nil {
		return nil, err
	}

	uc.dropBuildingsCache(ctx)
	return building, nil
}

// Delete удаляет корпус со всеми этажами и квартирами
func (uc *BuildingUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.buildingRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.dropBuildingsCache(ctx)
	_ = uc.listing.InvalidateBuilding(ctx, id)
	uc.logger.Info("Building deleted", zap.Int64("id", id))
	return nil
}

func (uc *BuildingUseCase) dropBuildingsCache(ctx context.Context) {
	if err := uc.cacheRepo.Delete(ctx, buildingsCacheKey); err != nil {
		uc.logger.Warn("Failed to invalidate buildings cache", zap.Error(err))
	}
}

func buildingFromRequest(req *dto.BuildingRequest) *domain.Building {
	return &domain.Building{
		Name:        req.Name,
		Slug:        req.Slug,
		Address:     req.Address,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CoverWidth:  req.CoverWidth,
		CoverHeight: req.CoverHeight,
		Floors:      req.Floors,
	}
}
