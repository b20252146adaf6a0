package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorplan-service/internal/domain"
)

func TestParseCoords(t *testing.T) {
	t.Run("even list", func(t *testing.T) {
		coords, err := ParseCoords("10,20,30,40,50,60")
		require.NoError(t, err)
		assert.Equal(t, []domain.Coordinate{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 60}}, coords)
	})

	t.Run("odd list drops dangling value", func(t *testing.T) {
		coords, err := ParseCoords("10,20,30")
		require.NoError(t, err)
		assert.Equal(t, []domain.Coordinate{{X: 10, Y: 20}}, coords)
	})

	t.Run("whitespace and decimals", func(t *testing.T) {
		coords, err := ParseCoords(" 1.5, 2 ,3.25,4 ")
		require.NoError(t, err)
		assert.Equal(t, []domain.Coordinate{{X: 1.5, Y: 2}, {X: 3.25, Y: 4}}, coords)
	})

	t.Run("empty string", func(t *testing.T) {
		coords, err := ParseCoords("")
		require.NoError(t, err)
		assert.Empty(t, coords)
	})

	t.Run("non numeric token", func(t *testing.T) {
		_, err := ParseCoords("10,20,abc,40")
		require.Error(t, err)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 2, parseErr.Position)
		assert.Equal(t, "abc", parseErr.Token)
		assert.Equal(t, "not a number", parseErr.Reason)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := ParseCoords("10,,20")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 1, parseErr.Position)
	})

	t.Run("infinite token", func(t *testing.T) {
		_, err := ParseCoords("10,Inf,20,30")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "not finite", parseErr.Reason)
	})
}

func TestParseRegion(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		region, err := ParseRegion(7, "12", "0,0,100,0,100,100,0,100", domain.StatusAvailable)
		require.NoError(t, err)
		assert.Equal(t, int64(7), region.ID)
		assert.Equal(t, "12", region.Label)
		assert.Len(t, region.Coords, 4)
		assert.Equal(t, domain.StatusAvailable, region.Status)
	})

	t.Run("odd string rejected as too few", func(t *testing.T) {
		_, err := ParseRegion(1, "1", "10,20,30", domain.StatusAvailable)
		assert.ErrorIs(t, err, ErrTooFewCoords)
	})

	t.Run("two coordinates rejected", func(t *testing.T) {
		_, err := ParseRegion(1, "1", "0,0,10,10", domain.StatusAvailable)
		assert.ErrorIs(t, err, ErrTooFewCoords)
	})

	t.Run("dangling value on long list rejected", func(t *testing.T) {
		_, err := ParseRegion(1, "1", "0,0,10,0,10,10,5", domain.StatusAvailable)
		assert.ErrorIs(t, err, ErrOddValueCount)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ParseRegion(1, "1", "0,0,x,0,10,10", domain.StatusAvailable)
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestFormatCoords(t *testing.T) {
	coords := []domain.Coordinate{{X: 10, Y: 20.5}, {X: 30, Y: 40}}
	assert.Equal(t, "10,20.5,30,40", FormatCoords(coords))

	parsed, err := ParseCoords(FormatCoords(coords))
	require.NoError(t, err)
	assert.Equal(t, coords, parsed)
}
