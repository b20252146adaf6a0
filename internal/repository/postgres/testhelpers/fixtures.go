package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
)

// Fixture - идентификаторы созданных тестовых данных
type Fixture struct {
	BuildingID  int64
	FloorID     int64
	FloorPlanID int64
	// ApartmentIDs по номеру квартиры
	ApartmentIDs map[string]int64
}

// SeedBuilding creates one building with a floor, two floor plans and three apartments
func SeedBuilding(ctx context.Context, db *sql.DB, slug string) (*Fixture, error) {
	fx := &Fixture{ApartmentIDs: make(map[string]int64)}

	err := db.QueryRowContext(ctx,
		`INSERT INTO buildings (name, slug, floors) VALUES ($1, $2, 12) RETURNING id`,
		"Корпус "+slug, slug).Scan(&fx.BuildingID)
	if err != nil {
		return nil, fmt.Errorf("seed building: %w", err)
	}

	err = db.QueryRowContext(ctx, `
		INSERT INTO floors (building_id, number, image_width, image_height, paths)
		VALUES ($1, 3, 1920, 1080, '100,100,300,100,300,200,100,200')
		RETURNING id`, fx.BuildingID).Scan(&fx.FloorID)
	if err != nil {
		return nil, fmt.Errorf("seed floor: %w", err)
	}

	var studioID int64
	err = db.QueryRowContext(ctx, `
		INSERT INTO floor_plans (building_id, name, rooms, area_sq_m, price)
		VALUES ($1, 'Студия', 0, 28.5, 5200000) RETURNING id`, fx.BuildingID).Scan(&studioID)
	if err != nil {
		return nil, fmt.Errorf("seed floor plan: %w", err)
	}
	fx.FloorPlanID = studioID

	var twoRoomID int64
	err = db.QueryRowContext(ctx, `
		INSERT INTO floor_plans (building_id, name, rooms, area_sq_m, price)
		VALUES ($1, '2К', 2, 61.0, 11400000) RETURNING id`, fx.BuildingID).Scan(&twoRoomID)
	if err != nil {
		return nil, fmt.Errorf("seed floor plan: %w", err)
	}

	apartments := []struct {
		number string
		planID int64
		status string
		paths  string
	}{
		{"301", studioID, "available", "100,100,300,100,300,200,100,200"},
		{"302", studioID, "sold", "300,100,500,100,500,200,300,200"},
		{"303", twoRoomID, "reserved", "500,100,800,100,800,300,500,300"},
	}
	for _, a := range apartments {
		var id int64
		err = db.QueryRowContext(ctx, `
			INSERT INTO apartments (building_id, floor_id, floor_plan_id, number, status, desktop_paths, mobile_paths)
			VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
			fx.BuildingID, fx.FloorID, a.planID, a.number, a.status, a.paths).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed apartment %s: %w", a.number, err)
		}
		fx.ApartmentIDs[a.number] = id
	}

	return fx, nil
}
