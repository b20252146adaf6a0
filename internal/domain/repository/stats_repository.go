package repository

import (
	"context"

	"github.com/floorplan-service/internal/domain"
)

// StatsRepository определяет методы для получения сводки по квартирам
type StatsRepository interface {
	// GetInventoryStats возвращает количество квартир по статусам и корпусам
	GetInventoryStats(ctx context.Context) (*domain.InventoryStats, error)
}
