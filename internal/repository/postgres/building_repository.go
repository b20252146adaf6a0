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

const buildingColumns = `
	id, name, slug, address, description, cover_image, cover_width, cover_height,
	floors, created_at, updated_at
`

type buildingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBuildingRepository(db *DB) repository.BuildingRepository {
	return &buildingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *buildingRepository) List(ctx context.Context) ([]*domain.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings ORDER BY id`

	buildings := make([]*domain.Building, 0)
	if err := r.db.SelectContext(ctx, &buildings, query); err != nil {
		r.logger.Error("Failed to list buildings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return buildings, nil
}

func (r *buildingRepository) GetByID(ctx context.Context, id int64) (*domain.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *buildingRepository) GetBySlug(ctx context.Context, slug string) (*domain.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *buildingRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Building, error) {
	var building domain.Building
	err := r.db.GetContext(ctx, &building, query, arg)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrBuildingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get building", zap.Any("key", arg), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &building, nil
}

func (r *buildingRepository) Create(ctx context.Context, b *domain.Building) error {
	query := `
		INSERT INTO buildings (name, slug, address, description, cover_image, cover_width, cover_height, floors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		b.Name, b.Slug, b.Address, b.Description, b.CoverImage, b.CoverWidth, b.CoverHeight, b.Floors,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return errors.ErrDuplicateSlug
		}
		r.logger.Error("Failed to create building", zap.String("slug", b.Slug), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *buildingRepository) Update(ctx context.Context, b *domain.Building) error {
	query := `
		UPDATE buildings
		SET name = $2, slug = $3, address = $4, description = $5,
			cover_image = $6, cover_width = $7, cover_height = $8, floors = $9, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		b.ID, b.Name, b.Slug, b.Address, b.Description, b.CoverImage, b.CoverWidth, b.CoverHeight, b.Floors,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrBuildingNotFound
	}
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return errors.ErrDuplicateSlug
		}
		r.logger.Error("Failed to update building", zap.Int64("id", b.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *buildingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM buildings WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete building", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return expectAffected(res, errors.ErrBuildingNotFound)
}

// expectAffected возвращает notFound, если запрос не затронул ни одной строки
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if n == 0 {
		return notFound
	}
	return nil
}
