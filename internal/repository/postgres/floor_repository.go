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

const floorColumns = `id, building_id, number, image, image_width, image_height, paths`

type floorRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFloorRepository(db *DB) repository.FloorRepository {
	return &floorRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *floorRepository) ListByBuilding(ctx context.Context, buildingID int64) ([]*domain.Floor, error) {
	query := `SELECT ` + floorColumns + ` FROM floors WHERE building_id = $1 ORDER BY number`

	floors := make([]*domain.Floor, 0)
	if err := r.db.SelectContext(ctx, &floors, query, buildingID); err != nil {
		r.logger.Error("Failed to list floors", zap.Int64("building_id", buildingID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return floors, nil
}

func (r *floorRepository) GetByID(ctx context.Context, buildingID, floorID int64) (*domain.Floor, error) {
	query := `SELECT ` + floorColumns + ` FROM floors WHERE building_id = $1 AND id = $2`

	var floor domain.Floor
	err := r.db.GetContext(ctx, &floor, query, buildingID, floorID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrFloorNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get floor",
			zap.Int64("building_id", buildingID),
			zap.Int64("floor_id", floorID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &floor, nil
}

func (r *floorRepository) Upsert(ctx context.Context, f *domain.Floor) error {
	query := `
		INSERT INTO floors (building_id, number, image, image_width, image_height, paths)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (building_id, number) DO UPDATE
		SET image = EXCLUDED.image,
			image_width = EXCLUDED.image_width,
			image_height = EXCLUDED.image_height,
			paths = EXCLUDED.paths
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		f.BuildingID, f.Number, f.Image, f.ImageWidth, f.ImageHeight, f.Paths,
	).Scan(&f.ID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errors.ErrBuildingNotFound
		}
		r.logger.Error("Failed to upsert floor",
			zap.Int64("building_id", f.BuildingID),
			zap.Int("number", f.Number),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *floorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM floors WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete floor", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return expectAffected(res, errors.ErrFloorNotFound)
}
