package repository

import (
	"context"

	"github.com/floorplan-service/internal/domain"
)

// BuildingRepository определяет методы для работы с корпусами
type BuildingRepository interface {
	// List возвращает все корпуса
	List(ctx context.Context) ([]*domain.Building, error)

	// GetByID возвращает корпус по ID
	GetByID(ctx context.Context, id int64) (*domain.Building, error)

	// GetBySlug возвращает корпус по slug
	GetBySlug(ctx context.Context, slug string) (*domain.Building, error)

	// Create создаёт корпус и заполняет ID и временные метки
	Create(ctx context.Context, building *domain.Building) error

	// Update обновляет корпус
	Update(ctx context.Context, building *domain.Building) error

	// Delete удаляет корпус вместе с этажами и квартирами
	Delete(ctx context.Context, id int64) error
}
