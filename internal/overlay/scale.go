package overlay

import (
	"math"

	"github.com/floorplan-service/internal/domain"
)

// Scale - коэффициенты перевода из исходных координат в экранные
type Scale struct {
	X       float64 `json:"scale_x"`
	Y       float64 `json:"scale_y"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// ScaleCoordinate переводит точку в экранные координаты
func ScaleCoordinate(c domain.Coordinate, scaleX, scaleY, offsetX, offsetY float64) domain.Coordinate {
	return domain.Coordinate{
		X: c.X*scaleX + offsetX,
		Y: c.Y*scaleY + offsetY,
	}
}

// NewScale считает коэффициенты по исходному и отрисованному размеру.
// Возвращает false, пока любой из размеров неизвестен: отрисовка откладывается.
func NewScale(rendered, original domain.Size, offset domain.Coordinate) (Scale, bool) {
	if !original.Known() || !rendered.Known() {
		return Scale{}, false
	}

	s := Scale{
		X:       rendered.Width / original.Width,
		Y:       rendered.Height / original.Height,
		OffsetX: offset.X,
		OffsetY: offset.Y,
	}
	return s, s.Valid()
}

// Valid - оба коэффициента конечны и положительны
func (s Scale) Valid() bool {
	return finitePositive(s.X) && finitePositive(s.Y) &&
		!math.IsNaN(s.OffsetX) && !math.IsInf(s.OffsetX, 0) &&
		!math.IsNaN(s.OffsetY) && !math.IsInf(s.OffsetY, 0)
}

// Apply масштабирует одну точку
func (s Scale) Apply(c domain.Coordinate) domain.Coordinate {
	return ScaleCoordinate(c, s.X, s.Y, s.OffsetX, s.OffsetY)
}

// ApplyAll масштабирует контур, сохраняя порядок вершин
func (s Scale) ApplyAll(coords []domain.Coordinate) []domain.Coordinate {
	out := make([]domain.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = s.Apply(c)
	}
	return out
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
