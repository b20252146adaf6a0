package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/usecase/dto"
)

// FloorUseCase - этажи корпуса и их подложки
type FloorUseCase struct {
	floorRepo repository.FloorRepository
	listing   *ListingCache
	logger    *zap.Logger
}

// NewFloorUseCase создает новый экземпляр FloorUseCase
func NewFloorUseCase(floorRepo repository.FloorRepository, listing *ListingCache, logger *zap.Logger) *FloorUseCase {
	return &FloorUseCase{
		floorRepo: floorRepo,
		listing:   listing,
		logger:    logger,
	}
}

func (uc *FloorUseCase) ListByBuilding(ctx context.Context, buildingID int64) ([]*domain.Floor, error) {
	return uc.floorRepo.ListByBuilding(ctx, buildingID)
}

func (uc *FloorUseCase) Get(ctx context.Context, buildingID, floorID int64) (*domain.Floor, error) {
	return uc.floorRepo.GetByID(ctx, buildingID, floorID)
}

// Upsert создаёт этаж или обновляет существующий с тем же номером
func (uc *FloorUseCase) Upsert(ctx context.Context, buildingID int64, req *dto.FloorRequest) (*domain.Floor, error) {
	floor := &domain.Floor{
		BuildingID:  buildingID,
		Number:      req.Number,
		Image:       req.Image,
		ImageWidth:  req.ImageWidth,
		ImageHeight: req.ImageHeight,
		Paths:       req.Paths,
	}
	if err := uc.floorRepo.Upsert(ctx, floor); err != nil {
		return nil, err
	}

	_ = uc.listing.InvalidateFloor(ctx, buildingID, floor.ID)
	return floor, nil
}

func (uc *FloorUseCase) Delete(ctx context.Context, buildingID, floorID int64) error {
	if _, err := uc.floorRepo.GetByID(ctx, buildingID, floorID); err != nil {
		return err
	}
	if err := uc.floorRepo.Delete(ctx, floorID); err != nil {
		return err
	}

	_ = uc.listing.InvalidateFloor(ctx, buildingID, floorID)
	uc.logger.Info("Floor deleted", zap.Int64("building_id", buildingID), zap.Int64("floor_id", floorID))
	return nil
}
