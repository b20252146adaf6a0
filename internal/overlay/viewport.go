package overlay

import (
	"sync"
	"time"

	"github.com/floorplan-service/internal/domain"
)

// DefaultDebounce - окно склейки событий ресайза
const DefaultDebounce = 100 * time.Millisecond

// Viewport отслеживает размеры подложки и пересчитывает масштаб.
// Пересчёт откладывается на окно Debounce после последнего события
// (load картинки, ресайз контейнера, смена client size) и не выполняется,
// пока неизвестен исходный размер и не было ни одного замера.
// После Close отложенный пересчёт не запускается.
type Viewport struct {
	mu       sync.Mutex
	debounce time.Duration
	onChange func(Scale)

	original domain.Size
	rendered domain.Size
	offset   domain.Coordinate

	scale  Scale
	ready  bool
	timer  *time.Timer
	gen    uint64
	closed bool
}

// NewViewport создаёт вьюпорт; onChange вызывается с каждым новым масштабом.
// Если после валидного кадра замер стал невалидным, onChange получает
// нулевой Scale: Render по нему возвращает пустой набор фигур.
func NewViewport(debounce time.Duration, onChange func(Scale)) *Viewport {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Viewport{
		debounce: debounce,
		onChange: onChange,
	}
}

// ImageLoaded - картинка загрузилась, известен её натуральный размер
func (v *Viewport) ImageLoaded(natural domain.Size) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.original = natural
	v.scheduleLocked()
}

// Resize - новый замер отрисованной картинки и её смещения в контейнере
func (v *Viewport) Resize(rendered domain.Size, offset domain.Coordinate) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rendered = rendered
	v.offset = offset
	v.scheduleLocked()
}

// Scale возвращает последний посчитанный масштаб
func (v *Viewport) Scale() (Scale, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scale, v.ready
}

// Ready - области можно рисовать
func (v *Viewport) Ready() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ready
}

// Close снимает отложенный пересчёт
func (v *Viewport) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.gen++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}

func (v *Viewport) scheduleLocked() {
	if v.closed {
		return
	}
	if v.timer != nil {
		v.timer.Stop()
	}
	v.gen++
	gen := v.gen
	v.timer = time.AfterFunc(v.debounce, func() { v.recompute(gen) })
}

func (v *Viewport) recompute(gen uint64) {
	v.mu.Lock()
	if v.closed || gen != v.gen {
		v.mu.Unlock()
		return
	}
	v.timer = nil

	scale, ok := NewScale(v.rendered, v.original, v.offset)
	if !ok {
		wasReady := v.ready
		v.scale = Scale{}
		v.ready = false
		onChange := v.onChange
		v.mu.Unlock()

		// кадр стал невалидным: подписчик снимает отрисованные области
		if wasReady && onChange != nil {
			onChange(Scale{})
		}
		return
	}
	v.scale = scale
	v.ready = true
	onChange := v.onChange
	v.mu.Unlock()

	if onChange != nil {
		onChange(scale)
	}
}
