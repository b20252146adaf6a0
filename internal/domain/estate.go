package domain

import "time"

// Building - жилой комплекс/корпус
type Building struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Address     *string   `json:"address,omitempty" db:"address"`
	Description *string   `json:"description,omitempty" db:"description"`
	CoverImage  *string   `json:"cover_image,omitempty" db:"cover_image"`
	CoverWidth  float64   `json:"cover_width" db:"cover_width"`
	CoverHeight float64   `json:"cover_height" db:"cover_height"`
	Floors      int       `json:"floors" db:"floors"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CoverSize - исходный размер фасада, на котором размечены этажи
func (b *Building) CoverSize() Size {
	return Size{Width: b.CoverWidth, Height: b.CoverHeight}
}

// FloorPlan - планировка квартиры
type FloorPlan struct {
	ID         int64     `json:"id" db:"id"`
	BuildingID int64     `json:"building_id" db:"building_id"`
	Name       string    `json:"name" db:"name"`
	Rooms      int       `json:"rooms" db:"rooms"`
	AreaSqM    float64   `json:"area_sq_m" db:"area_sq_m"`
	Price      float64   `json:"price" db:"price"`
	Image      *string   `json:"image,omitempty" db:"image"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Floor - этаж корпуса с подложкой для выбора квартир
type Floor struct {
	ID          int64   `json:"id" db:"id"`
	BuildingID  int64   `json:"building_id" db:"building_id"`
	Number      int     `json:"number" db:"number"`
	Image       *string `json:"image,omitempty" db:"image"`
	ImageWidth  float64 `json:"image_width" db:"image_width"`
	ImageHeight float64 `json:"image_height" db:"image_height"`
	// Paths - контур этажа на фасаде корпуса, "x1,y1,x2,y2,..."
	Paths string `json:"paths" db:"paths"`
}

// ImageSize - исходный размер подложки этажа
func (f *Floor) ImageSize() Size {
	return Size{Width: f.ImageWidth, Height: f.ImageHeight}
}

// Apartment - квартира на этаже
type Apartment struct {
	ID           int64           `json:"id" db:"id"`
	BuildingID   int64           `json:"building_id" db:"building_id"`
	FloorID      int64           `json:"floor_id" db:"floor_id"`
	FloorPlanID  int64           `json:"floor_plan_id" db:"floor_plan_id"`
	Number       string          `json:"number" db:"number"`
	Status       ApartmentStatus `json:"status" db:"status"`
	AreaSqM      float64         `json:"area_sq_m" db:"area_sq_m"`
	Price        float64         `json:"price" db:"price"`
	MobilePaths  string          `json:"mobile_paths" db:"mobile_paths"`
	DesktopPaths string          `json:"desktop_paths" db:"desktop_paths"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// Paths возвращает контур для нужной раскладки
func (a *Apartment) Paths(variant Variant) string {
	if variant == VariantMobile {
		return a.MobilePaths
	}
	return a.DesktopPaths
}

// Variant - раскладка подложки (десктоп/мобильная)
type Variant string

const (
	VariantDesktop Variant = "desktop"
	VariantMobile  Variant = "mobile"
)

// FloorWithApartments - этаж вместе с квартирами
type FloorWithApartments struct {
	Floor
	Apartments []Apartment `json:"apartments"`
}

// FloorPlanWithFloors - планировка и этажи, на которых она встречается
type FloorPlanWithFloors struct {
	FloorPlan
	Floors []FloorWithApartments `json:"floors"`
}

// FloorListing - вложенный ответ листинга квартир этажа
type FloorListing struct {
	BuildingID int64                 `json:"building_id"`
	FloorID    int64                 `json:"floor_id"`
	FloorPlans []FloorPlanWithFloors `json:"floor_plans"`
}
