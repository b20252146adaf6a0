package domain

// SiteMap - статичная карта комплекса с контурами корпусов
type SiteMap struct {
	Image     string       `json:"image" yaml:"image"`
	Width     float64      `json:"width" yaml:"width"`
	Height    float64      `json:"height" yaml:"height"`
	Buildings []SiteRegion `json:"buildings" yaml:"buildings"`
}

// SiteRegion - контур корпуса на карте комплекса
type SiteRegion struct {
	BuildingID int64  `json:"building_id" yaml:"building_id"`
	Label      string `json:"label" yaml:"label"`
	// Paths - "x1,y1,x2,y2,..." в координатах исходной картинки
	Paths string `json:"paths" yaml:"paths"`
}

// ImageSize - исходный размер подложки
func (m *SiteMap) ImageSize() Size {
	return Size{Width: m.Width, Height: m.Height}
}
