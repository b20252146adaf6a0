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

const apartmentColumns = `
	id, building_id, floor_id, floor_plan_id, number, status, area_sq_m, price,
	mobile_paths, desktop_paths, created_at, updated_at
`

type apartmentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewApartmentRepository(db *DB) repository.ApartmentRepository {
	return &apartmentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *apartmentRepository) ListByFloor(ctx context.Context, buildingID, floorID int64) ([]*domain.Apartment, error) {
	query := `
		SELECT ` + apartmentColumns + `
		FROM apartments
		WHERE building_id = $1 AND floor_id = $2
		ORDER BY number
	`

	apartments := make([]*domain.Apartment, 0)
	if err := r.db.SelectContext(ctx, &apartments, query, buildingID, floorID); err != nil {
		r.logger.Error("Failed to list apartments",
			zap.Int64("building_id", buildingID),
			zap.Int64("floor_id", floorID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return apartments, nil
}

func (r *apartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments WHERE id = $1`

	var apartment domain.Apartment
	err := r.db.GetContext(ctx, &apartment, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrApartmentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get apartment", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &apartment, nil
}

func (r *apartmentRepository) Create(ctx context.Context, a *domain.Apartment) error {
	query := `
		INSERT INTO apartments (
			building_id, floor_id, floor_plan_id, number, status,
			area_sq_m, price, mobile_paths, desktop_paths
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		a.BuildingID, a.FloorID, a.FloorPlanID, a.Number, a.Status,
		a.AreaSqM, a.Price, a.MobilePaths, a.DesktopPaths,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return r.translateWriteError("create", a, err)
	}
	return nil
}

func (r *apartmentRepository) Update(ctx context.Context, a *domain.Apartment) error {
	query := `
		UPDATE apartments
		SET floor_plan_id = $2, number = $3, status = $4, area_sq_m = $5, price = $6,
			mobile_paths = $7, desktop_paths = $8, updated_at = now()
		WHERE id = $1
		RETURNING building_id, floor_id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		a.ID, a.FloorPlanID, a.Number, a.Status, a.AreaSqM, a.Price,
		a.MobilePaths, a.DesktopPaths,
	).Scan(&a.BuildingID, &a.FloorID, &a.CreatedAt, &a.UpdatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.ErrApartmentNotFound
	}
	if err != nil {
		return r.translateWriteError("update", a, err)
	}
	return nil
}

func (r *apartmentRepository) translateWriteError(op string, a *domain.Apartment, err error) error {
	switch pgErrorCode(err) {
	case pgForeignKeyViolation:
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "unknown building, floor or floor plan",
		})
	case pgUniqueViolation:
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"number": "apartment number already exists on this floor",
		})
	}
	r.logger.Error("Failed to "+op+" apartment",
		zap.Int64("floor_id", a.FloorID),
		zap.String("number", a.Number),
		zap.Error(err))
	return errors.ErrDatabaseError
}

// UpdateStatus меняет статус в одной транзакции, чтобы вернуть предыдущее значение
func (r *apartmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApartmentStatus) (domain.ApartmentStatus, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return domain.StatusUnknown, errors.ErrDatabaseError
	}
	defer tx.Rollback() //nolint:errcheck

	var old domain.ApartmentStatus
	err = tx.GetContext(ctx, &old, `SELECT status FROM apartments WHERE id = $1 FOR UPDATE`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return domain.StatusUnknown, errors.ErrApartmentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to lock apartment", zap.Int64("id", id), zap.Error(err))
		return domain.StatusUnknown, errors.ErrDatabaseError
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE apartments SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error("Failed to update apartment status",
			zap.Int64("id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return domain.StatusUnknown, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit status update", zap.Int64("id", id), zap.Error(err))
		return domain.StatusUnknown, errors.ErrDatabaseError
	}
	return old, nil
}

func (r *apartmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM apartments WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete apartment", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return expectAffected(res, errors.ErrApartmentNotFound)
}

// GetFloorListing возвращает планировки этажа, у каждой - сам этаж и её квартиры на нём
func (r *apartmentRepository) GetFloorListing(ctx context.Context, buildingID, floorID int64) (*domain.FloorListing, error) {
	var floor domain.Floor
	err := r.db.GetContext(ctx, &floor,
		`SELECT `+floorColumns+` FROM floors WHERE building_id = $1 AND id = $2`,
		buildingID, floorID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrFloorNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get listing floor", zap.Int64("floor_id", floorID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	plansQuery := `
		SELECT DISTINCT fp.id, fp.building_id, fp.name, fp.rooms, fp.area_sq_m, fp.price,
			fp.image, fp.created_at, fp.updated_at
		FROM floor_plans fp
		JOIN apartments a ON a.floor_plan_id = fp.id
		WHERE a.building_id = $1 AND a.floor_id = $2
		ORDER BY fp.rooms, fp.id
	`
	var plans []domain.FloorPlan
	if err := r.db.SelectContext(ctx, &plans, plansQuery, buildingID, floorID); err != nil {
		r.logger.Error("Failed to list floor plans for listing", zap.Int64("floor_id", floorID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	apartments, err := r.ListByFloor(ctx, buildingID, floorID)
	if err != nil {
		return nil, err
	}

	return buildFloorListing(floor, plans, apartments), nil
}

// buildFloorListing раскладывает квартиры этажа по планировкам
func buildFloorListing(floor domain.Floor, plans []domain.FloorPlan, apartments []*domain.Apartment) *domain.FloorListing {
	byPlan := make(map[int64][]domain.Apartment, len(plans))
	for _, a := range apartments {
		byPlan[a.FloorPlanID] = append(byPlan[a.FloorPlanID], *a)
	}

	listing := &domain.FloorListing{
		BuildingID: floor.BuildingID,
		FloorID:    floor.ID,
		FloorPlans: make([]domain.FloorPlanWithFloors, 0, len(plans)),
	}
	for _, plan := range plans {
		listing.FloorPlans = append(listing.FloorPlans, domain.FloorPlanWithFloors{
			FloorPlan: plan,
			Floors: []domain.FloorWithApartments{{
				Floor:      floor,
				Apartments: byPlan[plan.ID],
			}},
		})
	}
	return listing
}
