package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/pkg/errors"
)

const floorPlanColumns = `
	id, building_id, name, rooms, area_sq_m, price, image, created_at, updated_at
`

type floorPlanRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFloorPlanRepository(db *DB) repository.FloorPlanRepository {
	return &floorPlanRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *floorPlanRepository) ListByBuilding(ctx context.Context, buildingID int64) ([]*domain.FloorPlan, error) {
	query := `SELECT ` + floorPlanColumns + ` FROM floor_plans WHERE building_id = $1 ORDER BY rooms, id`

	plans := make([]*domain.FloorPlan, 0)
	if err := r.db.SelectContext(ctx, &plans, query, buildingID); err != nil {
		r.logger.Error("Failed to list floor plans", zap.Int64("building_id", buildingID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return plans, nil
}

func (r *floorPlanRepository) GetByID(ctx context.Context, id int64) (*domain.FloorPlan, error) {
	query := `SELECT ` + floorPlanColumns + ` FROM floor_plans WHERE id = $1`

	var plan domain.FloorPlan
	err := r.db.GetContext(ctx, &plan, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrFloorPlanNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get floor plan", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &plan, nil
}

func (r *floorPlanRepository) Create(ctx context.Context, p *domain.FloorPlan) error {
	query := `
		INSERT INTO floor_plans (building_id, name, rooms, area_sq_m, price, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		p.BuildingID, p.Name, p.Rooms, p.AreaSqM, p.Price, p.Image,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errors.ErrBuildingNotFound
		}
		r.logger.Error("Failed to create floor plan", zap.Int64("building_id", p.BuildingID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *floorPlanRepository) Update(ctx context.Context, p *domain.FloorPlan) error {
	query := `
		UPDATE floor_plans
		SET name = $2, rooms = $3, area_sq_m = $4, price = $5, image = $6, updated_at = now()
		WHERE id = $1
		RETURNING building_id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID, p.Name, p.Rooms, p.AreaSqM, p.Price, p.Image,
	).Scan(&p.BuildingID, &p.CreatedAt, &p.UpdatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrFloorPlanNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update floor plan", zap.Int64("id", p.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *floorPlanRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM floor_plans WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			// планировка ещё привязана к квартирам
			return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"reason": "floor plan is used by apartments",
			})
		}
		r.logger.Error("Failed to delete floor plan", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return expectAffected(res, errors.ErrFloorPlanNotFound)
}
