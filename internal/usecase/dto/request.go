package dto

// BuildingRequest - создание/обновление корпуса
type BuildingRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Slug        string  `json:"slug" validate:"required,min=1,max=100"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
	CoverWidth  float64 `json:"cover_width" validate:"gte=0"`
	CoverHeight float64 `json:"cover_height" validate:"gte=0"`
	Floors      int     `json:"floors" validate:"gte=0,lte=200"`
}

// FloorPlanRequest - создание/обновление планировки
type FloorPlanRequest struct {
	BuildingID int64   `json:"building_id" validate:"required,gt=0"`
	Name       string  `json:"name" validate:"required,max=200"`
	Rooms      int     `json:"rooms" validate:"gte=0,lte=20"`
	AreaSqM    float64 `json:"area_sq_m" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"gte=0"`
	Image      *string `json:"image,omitempty"`
}

// FloorRequest - этаж корпуса; ключ - (building_id, number)
type FloorRequest struct {
	Number      int     `json:"number" validate:"required"`
	Image       *string `json:"image,omitempty"`
	ImageWidth  float64 `json:"image_width" validate:"required,gt=0"`
	ImageHeight float64 `json:"image_height" validate:"required,gt=0"`
	Paths       string  `json:"paths" validate:"omitempty,coords"`
}

// ApartmentRequest - создание/обновление квартиры
type ApartmentRequest struct {
	BuildingID   int64   `json:"building_id" validate:"required,gt=0"`
	FloorID      int64   `json:"floor_id" validate:"required,gt=0"`
	FloorPlanID  int64   `json:"floor_plan_id" validate:"required,gt=0"`
	Number       string  `json:"number" validate:"required,max=20"`
	Status       string  `json:"status" validate:"omitempty,apartment_status"`
	AreaSqM      float64 `json:"area_sq_m" validate:"gte=0"`
	Price        float64 `json:"price" validate:"gte=0"`
	MobilePaths  string  `json:"mobile_paths" validate:"omitempty,coords"`
	DesktopPaths string  `json:"desktop_paths" validate:"omitempty,coords"`
}

// UpdateStatusRequest - смена статуса квартиры
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,apartment_status"`
}

// OverlayQuery - размер и смещение отрисованной подложки на клиенте
type OverlayQuery struct {
	Width   float64 `query:"width" json:"width" validate:"required,gt=0"`
	Height  float64 `query:"height" json:"height" validate:"required,gt=0"`
	OffsetX float64 `query:"offset_x" json:"offset_x"`
	OffsetY float64 `query:"offset_y" json:"offset_y"`
	Variant string  `query:"variant" json:"variant" validate:"omitempty,oneof=desktop mobile"`
}

// HitTestRequest - попадание точки в область слоя.
// Без building_id проверяется карта комплекса, без floor_id - фасад корпуса.
type HitTestRequest struct {
	OverlayQuery
	BuildingID int64   `json:"building_id" validate:"gte=0"`
	FloorID    int64   `json:"floor_id" validate:"gte=0"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// SelectionActionRequest - переход состояния выбора
type SelectionActionRequest struct {
	Type string `json:"type" validate:"required,oneof=set_building set_floor set_apartment hover clear_hover reset"`
	ID   *int64 `json:"id,omitempty" validate:"omitempty,gt=0"`
}

// PaymentRequest - расчёт рассрочки; при apartment_id цена берётся из квартиры
type PaymentRequest struct {
	ApartmentID        int64   `json:"apartment_id" validate:"gte=0"`
	Price              float64 `json:"price" validate:"gte=0"`
	DownPaymentPercent float64 `json:"down_payment_percent" validate:"gte=0,lte=100"`
	Months             int     `json:"months" validate:"required,gt=0,lte=360"`
}
