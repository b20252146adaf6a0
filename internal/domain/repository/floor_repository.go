package repository

import (
	"context"

	"github.com/floorplan-service/internal/domain"
)

// FloorRepository определяет методы для работы с этажами
type FloorRepository interface {
	// ListByBuilding возвращает этажи корпуса по возрастанию номера
	ListByBuilding(ctx context.Context, buildingID int64) ([]*domain.Floor, error)

	// GetByID возвращает этаж корпуса
	GetByID(ctx context.Context, buildingID, floorID int64) (*domain.Floor, error)

	// Upsert создаёт или обновляет этаж по (building_id, number)
	Upsert(ctx context.Context, floor *domain.Floor) error

	// Delete удаляет этаж
	Delete(ctx context.Context, id int64) error
}
