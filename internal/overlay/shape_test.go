package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorplan-service/internal/domain"
)

func square(id int64, x, y, size float64) domain.Region {
	return domain.Region{
		ID:    id,
		Label: "sq",
		Coords: []domain.Coordinate{
			{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size},
		},
	}
}

func TestRender_HalfScaleScenario(t *testing.T) {
	scale, ok := NewScale(
		domain.Size{Width: 960, Height: 540},
		domain.Size{Width: 1920, Height: 1080},
		domain.Coordinate{},
	)
	require.True(t, ok)

	shapes := Render([]domain.Region{square(1, 0, 0, 100)}, scale)
	require.Len(t, shapes, 1)

	assert.Equal(t, domain.BoundingBox{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50}, shapes[0].BBox)
	assert.Equal(t, "polygon(0px 0px, 50px 0px, 50px 50px, 0px 50px)", shapes[0].ClipPath())
}

func TestRender_BoundingBoxMatchesScaledInput(t *testing.T) {
	region := domain.Region{
		ID: 3,
		Coords: []domain.Coordinate{
			{X: 12, Y: 40}, {X: 300, Y: 7}, {X: 250, Y: 410}, {X: 33, Y: 199}, {X: 140, Y: 120},
		},
	}
	scale := Scale{X: 0.37, Y: 1.9, OffsetX: 4, OffsetY: 11}

	shapes := Render([]domain.Region{region}, scale)
	require.Len(t, shapes, 1)

	want := domain.BoundingBox{
		MinX: 12*0.37 + 4, MaxX: 300*0.37 + 4,
		MinY: 7*1.9 + 11, MaxY: 410*1.9 + 11,
	}
	got := shapes[0].BBox
	assert.InDelta(t, want.MinX, got.MinX, 1e-9)
	assert.InDelta(t, want.MaxX, got.MaxX, 1e-9)
	assert.InDelta(t, want.MinY, got.MinY, 1e-9)
	assert.InDelta(t, want.MaxY, got.MaxY, 1e-9)
}

func TestRender_SkipsUnrenderable(t *testing.T) {
	twoPoints := domain.Region{ID: 2, Coords: []domain.Coordinate{{X: 0, Y: 0}, {X: 10, Y: 10}}}

	t.Run("regions with fewer than three points", func(t *testing.T) {
		shapes := Render([]domain.Region{square(1, 0, 0, 10), twoPoints}, Scale{X: 1, Y: 1})
		require.Len(t, shapes, 1)
		assert.Equal(t, int64(1), shapes[0].RegionID)
	})

	t.Run("invalid scale skips frame", func(t *testing.T) {
		for _, s := range []Scale{{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: math.Inf(1)}} {
			assert.Empty(t, Render([]domain.Region{square(1, 0, 0, 10)}, s))
		}
	})
}

func TestCentroid_IsVertexMean(t *testing.T) {
	// L-образный невыпуклый контур с неравномерной выборкой вершин
	points := []domain.Coordinate{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 10}, {X: 10, Y: 10},
		{X: 10, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 50}, {X: 0, Y: 25},
	}

	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	want := domain.Coordinate{X: sx / 8, Y: sy / 8}

	assert.Equal(t, want, Centroid(points))

	shapes := Render([]domain.Region{{ID: 1, Coords: points}}, Scale{X: 2, Y: 3})
	require.Len(t, shapes, 1)
	assert.InDelta(t, want.X*2, shapes[0].Centroid.X, 1e-9)
	assert.InDelta(t, want.Y*3, shapes[0].Centroid.Y, 1e-9)
}

func TestShape_Contains(t *testing.T) {
	triangle := Render([]domain.Region{{
		ID:     1,
		Coords: []domain.Coordinate{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}},
	}}, Scale{X: 1, Y: 1})[0]

	assert.True(t, triangle.Contains(domain.Coordinate{X: 10, Y: 10}))
	// внутри описывающего прямоугольника, но вне контура
	assert.False(t, triangle.Contains(domain.Coordinate{X: 90, Y: 90}))
	assert.False(t, triangle.Contains(domain.Coordinate{X: 150, Y: 10}))
}

func TestShape_ContainsBoundary(t *testing.T) {
	scale, ok := NewScale(
		domain.Size{Width: 960, Height: 540},
		domain.Size{Width: 1920, Height: 1080},
		domain.Coordinate{},
	)
	require.True(t, ok)
	shape := Render([]domain.Region{square(1, 0, 0, 100)}, scale)[0]

	tests := []struct {
		name string
		p    domain.Coordinate
		want bool
	}{
		{"top left corner", domain.Coordinate{X: 0, Y: 0}, true},
		{"bottom right corner", domain.Coordinate{X: 50, Y: 50}, true},
		{"right edge", domain.Coordinate{X: 50, Y: 20}, true},
		{"bottom edge", domain.Coordinate{X: 25, Y: 50}, true},
		{"just outside right edge", domain.Coordinate{X: 50.01, Y: 20}, false},
		{"just outside bottom edge", domain.Coordinate{X: 25, Y: 50.01}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shape.Contains(tt.p))
		})
	}

	// гипотенуза треугольника тоже граница
	triangle := Render([]domain.Region{{
		ID:     2,
		Coords: []domain.Coordinate{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}},
	}}, Scale{X: 1, Y: 1})[0]
	assert.True(t, triangle.Contains(domain.Coordinate{X: 50, Y: 50}))
	assert.False(t, triangle.Contains(domain.Coordinate{X: 50.5, Y: 50.5}))
}

func TestHitTest_LastDrawnWins(t *testing.T) {
	shapes := Render([]domain.Region{
		square(1, 0, 0, 100),
		square(2, 50, 50, 100),
	}, Scale{X: 1, Y: 1})

	hit, ok := HitTest(shapes, domain.Coordinate{X: 75, Y: 75})
	require.True(t, ok)
	assert.Equal(t, int64(2), hit.RegionID)

	hit, ok = HitTest(shapes, domain.Coordinate{X: 25, Y: 25})
	require.True(t, ok)
	assert.Equal(t, int64(1), hit.RegionID)

	_, ok = HitTest(shapes, domain.Coordinate{X: 200, Y: 10})
	assert.False(t, ok)
}
