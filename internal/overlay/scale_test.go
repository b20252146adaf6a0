package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floorplan-service/internal/domain"
)

func TestScaleCoordinate(t *testing.T) {
	got := ScaleCoordinate(domain.Coordinate{X: 100, Y: 50}, 0.5, 2, 10, -5)
	assert.Equal(t, domain.Coordinate{X: 60, Y: 95}, got)
}

func TestNewScale(t *testing.T) {
	t.Run("half size", func(t *testing.T) {
		s, ok := NewScale(
			domain.Size{Width: 960, Height: 540},
			domain.Size{Width: 1920, Height: 1080},
			domain.Coordinate{},
		)
		assert.True(t, ok)
		assert.Equal(t, 0.5, s.X)
		assert.Equal(t, 0.5, s.Y)
	})

	t.Run("original unknown defers rendering", func(t *testing.T) {
		_, ok := NewScale(domain.Size{Width: 960, Height: 540}, domain.Size{}, domain.Coordinate{})
		assert.False(t, ok)
	})

	t.Run("not measured yet", func(t *testing.T) {
		_, ok := NewScale(domain.Size{}, domain.Size{Width: 1920, Height: 1080}, domain.Coordinate{})
		assert.False(t, ok)
	})

	t.Run("resize scales proportionally", func(t *testing.T) {
		original := domain.Size{Width: 1920, Height: 1080}
		before, _ := NewScale(domain.Size{Width: 1200, Height: 675}, original, domain.Coordinate{})
		after, _ := NewScale(domain.Size{Width: 800, Height: 450}, original, domain.Coordinate{})

		assert.InDelta(t, before.X*(800.0/1200.0), after.X, 1e-12)
		assert.InDelta(t, before.Y*(450.0/675.0), after.Y, 1e-12)
	})
}

func TestScale_Valid(t *testing.T) {
	assert.True(t, Scale{X: 1, Y: 0.25}.Valid())
	assert.False(t, Scale{X: 0, Y: 1}.Valid())
	assert.False(t, Scale{X: 1, Y: -1}.Valid())
	assert.False(t, Scale{X: math.Inf(1), Y: 1}.Valid())
	assert.False(t, Scale{X: math.NaN(), Y: 1}.Valid())
	assert.False(t, Scale{X: 1, Y: 1, OffsetX: math.NaN()}.Valid())
}
