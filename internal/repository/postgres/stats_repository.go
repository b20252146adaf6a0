package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetInventoryStats возвращает агрегированную сводку по квартирам
func (r *statsRepository) GetInventoryStats(ctx context.Context) (*domain.InventoryStats, error) {
	stats := &domain.InventoryStats{
		ByStatus:    make(map[domain.ApartmentStatus]int),
		LastUpdated: time.Now(),
	}

	byBuilding, err := r.getBuildingInventory(ctx)
	if err != nil {
		r.logger.Error("failed to get building inventory", zap.Error(err))
		return nil, fmt.Errorf("get building inventory: %w", err)
	}
	stats.ByBuilding = byBuilding
	stats.Buildings = len(byBuilding)

	for _, b := range byBuilding {
		stats.ByStatus[domain.StatusAvailable] += b.Available
		stats.ByStatus[domain.StatusReserved] += b.Reserved
		stats.ByStatus[domain.StatusSold] += b.Sold
		stats.Apartments += b.Total()
	}

	return stats, nil
}

// getBuildingInventory считает квартиры каждого корпуса по статусам
func (r *statsRepository) getBuildingInventory(ctx context.Context) ([]domain.BuildingInventory, error) {
	query := `
		SELECT
			b.id AS building_id,
			b.name,
			COUNT(a.id) FILTER (WHERE a.status = 'available') AS available,
			COUNT(a.id) FILTER (WHERE a.status = 'reserved') AS reserved,
			COUNT(a.id) FILTER (WHERE a.status = 'sold') AS sold
		FROM buildings b
		LEFT JOIN apartments a ON a.building_id = b.id
		GROUP BY b.id, b.name
		ORDER BY b.id
	`

	inventory := make([]domain.BuildingInventory, 0)
	if err := r.db.SelectContext(ctx, &inventory, query); err != nil {
		return nil, fmt.Errorf("query building inventory: %w", err)
	}
	return inventory, nil
}
