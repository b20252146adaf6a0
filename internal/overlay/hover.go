package overlay

import (
	"sync"

	"github.com/floorplan-service/internal/domain"
)

// SelectFunc вызывается при выборе области: клик на десктопе или тап на мобильном
type SelectFunc func(regionID int64, label string)

// HoverState - единственный слот наведённой области
type HoverState struct {
	id  int64
	set bool
}

// Enter делает область наведённой, вытесняя предыдущую
func (h *HoverState) Enter(id int64) {
	h.id, h.set = id, true
}

// Leave сбрасывает наведение, только если id всё ещё текущий.
// Так переход указателя между соседними областями не гасит новую.
func (h *HoverState) Leave(id int64) {
	if h.set && h.id == id {
		h.id, h.set = 0, false
	}
}

// Clear сбрасывает наведение безусловно
func (h *HoverState) Clear() {
	h.id, h.set = 0, false
}

// Current возвращает наведённую область
func (h *HoverState) Current() (int64, bool) {
	return h.id, h.set
}

// Layer - интерактивный слой областей поверх одной подложки.
// События для областей, которых нет среди отрисованных фигур, игнорируются.
type Layer struct {
	mu       sync.Mutex
	shapes   []Shape
	byID     map[int64]int
	hover    HoverState
	onSelect SelectFunc
}

// NewLayer создаёт слой из отрисованных фигур
func NewLayer(shapes []Shape, onSelect SelectFunc) *Layer {
	l := &Layer{onSelect: onSelect}
	l.SetShapes(shapes)
	return l
}

// SetShapes заменяет фигуры после пересчёта масштаба.
// Наведение сохраняется, если область всё ещё отрисована.
func (l *Layer) SetShapes(shapes []Shape) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.shapes = shapes
	l.byID = make(map[int64]int, len(shapes))
	for i, s := range shapes {
		l.byID[s.RegionID] = i
	}
	if id, ok := l.hover.Current(); ok {
		if _, drawn := l.byID[id]; !drawn {
			l.hover.Clear()
		}
	}
}

// Shapes возвращает текущие фигуры
func (l *Layer) Shapes() []Shape {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shapes
}

// Hovered возвращает наведённую область
func (l *Layer) Hovered() (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hover.Current()
}

// PointerEnter - указатель вошёл в область
func (l *Layer) PointerEnter(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.byID[id]; ok {
		l.hover.Enter(id)
	}
}

// PointerLeave - указатель покинул область
func (l *Layer) PointerLeave(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hover.Leave(id)
}

// PointerMove переводит движение указателя в enter/leave по попаданию.
// Возвращает наведённую область после движения.
func (l *Layer) PointerMove(p domain.Coordinate) (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	hit, ok := HitTest(l.shapes, p)
	if !ok {
		l.hover.Clear()
		return 0, false
	}
	l.hover.Enter(hit.RegionID)
	return hit.RegionID, true
}

// Click - клик по области на десктопе
func (l *Layer) Click(id int64) bool {
	return l.activate(id, false)
}

// Tap - тап на мобильном: сразу наводит и выбирает область
func (l *Layer) Tap(id int64) bool {
	return l.activate(id, true)
}

// TapAt - тап по экранной точке
func (l *Layer) TapAt(p domain.Coordinate) (Shape, bool) {
	l.mu.Lock()
	hit, ok := HitTest(l.shapes, p)
	l.mu.Unlock()
	if !ok {
		return Shape{}, false
	}
	l.Tap(hit.RegionID)
	return hit, true
}

// ClickAt - клик по экранной точке
func (l *Layer) ClickAt(p domain.Coordinate) (Shape, bool) {
	l.mu.Lock()
	hit, ok := HitTest(l.shapes, p)
	l.mu.Unlock()
	if !ok {
		return Shape{}, false
	}
	l.Click(hit.RegionID)
	return hit, true
}

func (l *Layer) activate(id int64, hover bool) bool {
	l.mu.Lock()
	idx, ok := l.byID[id]
	if !ok {
		l.mu.Unlock()
		return false
	}
	if hover {
		l.hover.Enter(id)
	}
	shape := l.shapes[idx]
	onSelect := l.onSelect
	l.mu.Unlock()

	if onSelect != nil {
		onSelect(shape.RegionID, shape.Label)
	}
	return true
}
