package dto

import (
	"github.com/floorplan-service/internal/calculator"
	"github.com/floorplan-service/internal/domain"
	"github.com/floorplan-service/internal/overlay"
)

// OverlayResponse - отмасштабированные области слоя
type OverlayResponse struct {
	Level        domain.Level `json:"level"`
	Image        string       `json:"image,omitempty"`
	OriginalSize domain.Size  `json:"original_size"`
	RenderedSize domain.Size  `json:"rendered_size"`
	// Ready - false, пока неизвестен исходный размер подложки
	Ready  bool          `json:"ready"`
	Scale  overlay.Scale `json:"scale"`
	Shapes []ShapeView   `json:"shapes"`
	// Skipped - области, которые нельзя отрисовать
	Skipped []SkippedRegion `json:"skipped,omitempty"`
	// DebounceMS - сколько клиент ждёт после последнего ресайза перед новым запросом слоя
	DebounceMS int64 `json:"debounce_ms"`
}

// ShapeView - фигура вместе с готовым CSS clip-path
type ShapeView struct {
	overlay.Shape
	ClipPath string `json:"clip_path"`
}

// NewShapeView дополняет фигуру clip-path
func NewShapeView(s overlay.Shape) ShapeView {
	return ShapeView{Shape: s, ClipPath: s.ClipPath()}
}

// SkippedRegion - область, пропущенная при отрисовке
type SkippedRegion struct {
	RegionID int64  `json:"region_id"`
	Reason   string `json:"reason"`
}

// HitTestResponse - результат попадания
type HitTestResponse struct {
	Level domain.Level `json:"level"`
	Hit   bool         `json:"hit"`
	Shape *ShapeView   `json:"shape,omitempty"`
}

// PaymentResponse - график рассрочки
type PaymentResponse struct {
	ApartmentID int64               `json:"apartment_id,omitempty"`
	Price       float64             `json:"price"`
	Schedule    calculator.Schedule `json:"schedule"`
}
