package domain

import "time"

// BoundingBox - прямоугольник в экранных координатах
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width ширина прямоугольника
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height высота прямоугольника
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// InventoryStats представляет сводку по квартирам
type InventoryStats struct {
	Buildings   int                     `json:"buildings"`
	Apartments  int                     `json:"apartments"`
	ByStatus    map[ApartmentStatus]int `json:"by_status"`
	ByBuilding  []BuildingInventory     `json:"by_building"`
	LastUpdated time.Time               `json:"last_updated"`
}

// BuildingInventory статистика по одному корпусу
type BuildingInventory struct {
	BuildingID int64  `json:"building_id" db:"building_id"`
	Name       string `json:"name" db:"name"`
	Available  int    `json:"available" db:"available"`
	Reserved   int    `json:"reserved" db:"reserved"`
	Sold       int    `json:"sold" db:"sold"`
}

// Total - всего квартир в корпусе
func (b BuildingInventory) Total() int {
	return b.Available + b.Reserved + b.Sold
}
