package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/usecase/dto"
)

// FloorPlanUseCase - планировки корпуса
type FloorPlanUseCase struct {
	floorPlanRepo repository.FloorPlanRepository
	listing       *ListingCache
	logger        *zap.Logger
}

// NewFloorPlanUseCase создает новый экземпляр FloorPlanUseCase
func NewFloorPlanUseCase(
	floorPlanRepo repository.FloorPlanRepository,
	listing *ListingCache,
	logger *zap.Logger,
) *FloorPlanUseCase {
	return &FloorPlanUseCase{
		floorPlanRepo: floorPlanRepo,
		listing:       listing,
		logger:        logger,
	}
}

func (uc *FloorPlanUseCase) ListByBuilding(ctx context.Context, buildingID int64) ([]*domain.FloorPlan, error) {
	return uc.floorPlanRepo.ListByBuilding(ctx, buildingID)
}

func (uc *FloorPlanUseCase) Get(ctx context.Context, id int64) (*domain.FloorPlan, error) {
	return uc.floorPlanRepo.GetByID(ctx, id)
}

func (uc *FloorPlanUseCase) Create(ctx context.Context, req *dto.FloorPlanRequest) (*domain.FloorPlan, error) {
	plan := floorPlanFromRequest(req)
	if err := uc.floorPlanRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update меняет планировку; листинги корпуса содержат её копию и сбрасываются
func (uc *FloorPlanUseCase) Update(ctx context.Context, id int64, req *dto.FloorPlanRequest) (*domain.FloorPlan, error) {
	plan := floorPlanFromRequest(req)
	plan.ID = id
	if err := uc.floorPlanRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	_ = uc.listing.InvalidateBuilding(ctx, plan.BuildingID)
	return plan, nil
}

func (uc *FloorPlanUseCase) Delete(ctx context.Context, id int64) error {
	plan, err := uc.floorPlanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.floorPlanRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = uc.listing.InvalidateBuilding(ctx, plan.BuildingID)
	uc.logger.Info("Floor plan deleted", zap.Int64("id", id))
	return nil
}

func floorPlanFromRequest(req *dto.FloorPlanRequest) *domain.FloorPlan {
	return &domain.FloorPlan{
		BuildingID: req.BuildingID,
		Name:       req.Name,
		Rooms:      req.Rooms,
		AreaSqM:    req.AreaSqM,
		Price:      req.Price,
		Image:      req.Image,
	}
}
