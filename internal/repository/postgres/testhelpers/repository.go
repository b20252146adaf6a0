package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// Repositories - все репозитории поверх одной тестовой БД
type Repositories struct {
	Buildings  repository.BuildingRepository
	FloorPlans repository.FloorPlanRepository
	Floors     repository.FloorRepository
	Apartments repository.ApartmentRepository
	Stats      repository.StatsRepository
}

// NewRepositoriesForTest creates every postgres repository with test database and logger
func NewRepositoriesForTest(db *sqlx.DB, logger *zap.Logger) Repositories {
	pgDB := NewDBForTest(db, logger)
	return Repositories{
		Buildings:  postgres.NewBuildingRepository(pgDB),
		FloorPlans: postgres.NewFloorPlanRepository(pgDB),
		Floors:     postgres.NewFloorRepository(pgDB),
		Apartments: postgres.NewApartmentRepository(pgDB),
		Stats:      postgres.NewStatsRepository(pgDB, logger),
	}
}
