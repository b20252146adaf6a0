package domain

// Coordinate - точка в пиксельных координатах исходного изображения
type Coordinate struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size - размеры изображения в пикселях
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Known сообщает, что оба измерения уже известны
func (s Size) Known() bool {
	return s.Width > 0 && s.Height > 0
}

// Region - кликабельная область (здание, этаж или квартира) поверх изображения.
// Порядок Coords задаёт контур полигона и не меняется.
type Region struct {
	ID     int64           `json:"id"`
	Label  string          `json:"label"`
	Coords []Coordinate    `json:"coords"`
	Status ApartmentStatus `json:"status,omitempty"`
}

// Level - уровень иерархии выбора
type Level string

const (
	LevelBuilding  Level = "building"
	LevelFloor     Level = "floor"
	LevelApartment Level = "apartment"
)
