package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/usecase/dto"
)

// ApartmentUseCase - квартиры, листинг этажа и смена статусов
type ApartmentUseCase struct {
	apartmentRepo repository.ApartmentRepository
	streamRepo    repository.StreamRepository
	listing       *ListingCache
	logger        *zap.Logger
}

// NewApartmentUseCase создает новый экземпляр ApartmentUseCase
func NewApartmentUseCase(
	apartmentRepo repository.ApartmentRepository,
	streamRepo repository.StreamRepository,
	listing *ListingCache,
	logger *zap.Logger,
) *ApartmentUseCase {
	return &ApartmentUseCase{
		apartmentRepo: apartmentRepo,
		streamRepo:    streamRepo,
		listing:       listing,
		logger:        logger,
	}
}

// GetFloorListing возвращает вложенный листинг этажа (cache-aside)
func (uc *ApartmentUseCase) GetFloorListing(ctx context.Context, buildingID, floorID int64) (*domain.FloorListing, error) {
	if listing, ok := uc.listing.Get(ctx, buildingID, floorID); ok {
		uc.logger.Debug("Listing fetched from cache",
			zap.Int64("building_id", buildingID),
			zap.Int64("floor_id", floorID))
		return listing, nil
	}

	listing, err := uc.apartmentRepo.GetFloorListing(ctx, buildingID, floorID)
	if err != nil {
		return nil, err
	}

	uc.listing.Set(ctx, listing)
	return listing, nil
}

func (uc *ApartmentUseCase) ListByFloor(ctx context.Context, buildingID, floorID int64) ([]*domain.Apartment, error) {
	return uc.apartmentRepo.ListByFloor(ctx, buildingID, floorID)
}

func (uc *ApartmentUseCase) Get(ctx context.Context, id int64) (*domain.Apartment, error) {
	return uc.apartmentRepo.GetByID(ctx, id)
}

// Create создаёт квартиру; без статуса она свободна
func (uc *ApartmentUseCase) Create(ctx context.Context, req *dto.ApartmentRequest) (*domain.Apartment, error) {
	apartment, err := apartmentFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := uc.apartmentRepo.Create(ctx, apartment); err != nil {
		return nil, err
	}

	_ = uc.listing.InvalidateFloor(ctx, apartment.BuildingID, apartment.FloorID)
	return apartment, nil
}

func (uc *ApartmentUseCase) Update(ctx context.Context, id int64, req *dto.ApartmentRequest) (*domain.Apartment, error) {
	apartment, err := apartmentFromRequest(req)
	if err != nil {
		return nil, err
	}
	apartment.ID = id

	if err := uc.apartmentRepo.Update(ctx, apartment); err != nil {
		return nil, err
	}

	_ = uc.listing.InvalidateFloor(ctx, apartment.BuildingID, apartment.FloorID)
	return apartment, nil
}

// UpdateStatus меняет статус, сбрасывает листинг этажа и публикует событие.
// Ошибка публикации не откатывает изменение: листинг уже сброшен синхронно.
func (uc *ApartmentUseCase) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*domain.Apartment, error) {
	status, ok := domain.ParseApartmentStatus(rawStatus)
	if !ok {
		return nil, errors.ErrInvalidStatus.WithDetails(map[string]interface{}{
			"status": rawStatus,
		})
	}

	oldStatus, err := uc.apartmentRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	apartment, err := uc.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = uc.listing.InvalidateFloor(ctx, apartment.BuildingID, apartment.FloorID)

	if oldStatus == apartment.Status {
		return apartment, nil
	}

	event := domain.NewApartmentStatusChangedEvent(apartment, oldStatus)
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamApartmentStatus, event); err != nil {
		uc.logger.Warn("Failed to publish apartment status event",
			zap.Int64("apartment_id", id),
			zap.Error(err))
	}

	uc.logger.Info("Apartment status changed",
		zap.Int64("apartment_id", id),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(apartment.Status)))
	return apartment, nil
}

func (uc *ApartmentUseCase) Delete(ctx context.Context, id int64) error {
	apartment, err := uc.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.apartmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = uc.listing.InvalidateFloor(ctx, apartment.BuildingID, apartment.FloorID)
	uc.logger.Info("Apartment deleted", zap.Int64("id", id))
	return nil
}

func apartmentFromRequest(req *dto.ApartmentRequest) (*domain.Apartment, error) {
	status := domain.StatusAvailable
	if req.Status != "" {
		var ok bool
		status, ok = domain.ParseApartmentStatus(req.Status)
		if !ok {
			return nil, errors.ErrInvalidStatus.WithDetails(map[string]interface{}{
				"status": req.Status,
			})
		}
	}

	return &domain.Apartment{
		BuildingID:   req.BuildingID,
		FloorID:      req.FloorID,
		FloorPlanID:  req.FloorPlanID,
		Number:       req.Number,
		Status:       status,
		AreaSqM:      req.AreaSqM,
		Price:        req.Price,
		MobilePaths:  req.MobilePaths,
		DesktopPaths: req.DesktopPaths,
	}, nil
}
