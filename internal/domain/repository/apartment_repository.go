package repository

import (
	"context"

	"github.com/floorplan-service/internal/domain"
)

// ApartmentRepository определяет методы для работы с квартирами
type ApartmentRepository interface {
	// ListByFloor возвращает квартиры этажа
	ListByFloor(ctx context.Context, buildingID, floorID int64) ([]*domain.Apartment, error)

	// GetByID возвращает квартиру по ID
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)

	// Create создаёт квартиру
	Create(ctx context.Context, apartment *domain.Apartment) error

	// Update обновляет квартиру целиком
	Update(ctx context.Context, apartment *domain.Apartment) error

	// UpdateStatus меняет статус и возвращает предыдущий
	UpdateStatus(ctx context.Context, id int64, status domain.ApartmentStatus) (domain.ApartmentStatus, error)

	// Delete удаляет квартиру
	Delete(ctx context.Context, id int64) error

	// GetFloorListing собирает вложенный листинг планировок/этажей/квартир этажа
	GetFloorListing(ctx context.Context, buildingID, floorID int64) (*domain.FloorListing, error)
}
