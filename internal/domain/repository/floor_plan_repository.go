package repository

import (
	"context"

	"github.com/floorplan-service/internal/domain"
)

// FloorPlanRepository определяет методы для работы с планировками
type FloorPlanRepository interface {
	ListByBuilding(ctx context.Context, buildingID int64) ([]*domain.FloorPlan, error)
	GetByID(ctx context.Context, id int64) (*domain.FloorPlan, error)
	Create(ctx context.Context, plan *domain.FloorPlan) error
	Update(ctx context.Context, plan *domain.FloorPlan) error
	Delete(ctx context.Context, id int64) error
}
