package overlay

import (
	"math"
	"strconv"
	"strings"

	"github.com/floorplan-service/internal/domain"
)

// Shape - отмасштабированная область, готовая к отрисовке
type Shape struct {
	RegionID int64                  `json:"region_id"`
	Label    string                 `json:"label"`
	Status   domain.ApartmentStatus `json:"status,omitempty"`
	Points   []domain.Coordinate    `json:"points"`
	BBox     domain.BoundingBox     `json:"bbox"`
	Centroid domain.Coordinate      `json:"centroid"`
}

// Render строит фигуры для всех отрисовываемых областей.
// При невалидном масштабе кадр пропускается целиком, области с <3 вершинами
// пропускаются молча. Порядок результата совпадает с порядком отрисовки.
func Render(regions []domain.Region, scale Scale) []Shape {
	if !scale.Valid() {
		return nil
	}

	shapes := make([]Shape, 0, len(regions))
	for _, r := range regions {
		if len(r.Coords) < MinPolygonPoints {
			continue
		}

		points := scale.ApplyAll(r.Coords)
		shapes = append(shapes, Shape{
			RegionID: r.ID,
			Label:    r.Label,
			Status:   r.Status,
			Points:   points,
			BBox:     BoundingBoxOf(points),
			Centroid: Centroid(points),
		})
	}
	return shapes
}

// Centroid - среднее арифметическое вершин (не центр масс площади)
func Centroid(points []domain.Coordinate) domain.Coordinate {
	if len(points) == 0 {
		return domain.Coordinate{}
	}

	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return domain.Coordinate{X: sx / n, Y: sy / n}
}

// BoundingBoxOf возвращает описывающий прямоугольник
func BoundingBoxOf(points []domain.Coordinate) domain.BoundingBox {
	if len(points) == 0 {
		return domain.BoundingBox{}
	}

	bb := domain.BoundingBox{
		MinX: points[0].X, MinY: points[0].Y,
		MaxX: points[0].X, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		bb.MinX = math.Min(bb.MinX, p.X)
		bb.MinY = math.Min(bb.MinY, p.Y)
		bb.MaxX = math.Max(bb.MaxX, p.X)
		bb.MaxY = math.Max(bb.MaxY, p.Y)
	}
	return bb
}

// ClipPath - CSS clip-path для элемента, растянутого на всю подложку
func (s Shape) ClipPath() string {
	var b strings.Builder
	b.WriteString("polygon(")
	for i, p := range s.Points {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatPx(p.X))
		b.WriteByte(' ')
		b.WriteString(formatPx(p.Y))
	}
	b.WriteByte(')')
	return b.String()
}

// edgeEpsilon - допуск попадания на ребро в экранных пикселях
const edgeEpsilon = 1e-9

// Contains - попадание точки в полигон (even-odd).
// Граница входит в область: точка на ребре или вершине попадает.
// Точка внутри описывающего прямоугольника, но вне контура, не попадает.
func (s Shape) Contains(p domain.Coordinate) bool {
	if p.X < s.BBox.MinX || p.X > s.BBox.MaxX || p.Y < s.BBox.MinY || p.Y > s.BBox.MaxY {
		return false
	}

	inside := false
	n := len(s.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := s.Points[i], s.Points[j]
		if onSegment(p, a, b) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func onSegment(p, a, b domain.Coordinate) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if math.Abs(cross) > edgeEpsilon*math.Max(1, math.Hypot(b.X-a.X, b.Y-a.Y)) {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-edgeEpsilon && p.X <= math.Max(a.X, b.X)+edgeEpsilon &&
		p.Y >= math.Min(a.Y, b.Y)-edgeEpsilon && p.Y <= math.Max(a.Y, b.Y)+edgeEpsilon
}

// HitTest ищет верхнюю фигуру под точкой: выигрывает нарисованная последней
func HitTest(shapes []Shape, p domain.Coordinate) (Shape, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].Contains(p) {
			return shapes[i], true
		}
	}
	return Shape{}, false
}

func formatPx(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "px"
}
