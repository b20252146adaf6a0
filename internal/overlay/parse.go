package overlay

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/floorplan-service/internal/domain"
)

// MinPolygonPoints - минимальное число вершин отрисовываемой области
const MinPolygonPoints = 3

var (
	// ErrTooFewCoords - в контуре меньше трёх вершин
	ErrTooFewCoords = errors.New("polygon requires at least 3 coordinates")

	// ErrOddValueCount - у последней вершины нет пары
	ErrOddValueCount = errors.New("coordinate list has an odd number of values")
)

// ParseError описывает некорректный токен в строке координат
type ParseError struct {
	Input    string
	Position int
	Token    string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("coords: token %d (%q): %s", e.Position, e.Token, e.Reason)
}

// ParseCoords разбирает плоский список "x1,y1,x2,y2,..." в вершины.
// Пустая строка даёт пустой список. Значение без пары отбрасывается,
// поэтому "10,20,30" превращается в одну вершину.
func ParseCoords(s string) ([]domain.Coordinate, error) {
	values, err := parseValues(s)
	if err != nil {
		return nil, err
	}
	return pairUp(values), nil
}

// ParseRegion собирает область из сырой строки и отклоняет контуры,
// которые нельзя отрисовать.
func ParseRegion(id int64, label, raw string, status domain.ApartmentStatus) (domain.Region, error) {
	values, err := parseValues(raw)
	if err != nil {
		return domain.Region{}, err
	}

	coords := pairUp(values)
	if len(coords) < MinPolygonPoints {
		return domain.Region{}, fmt.Errorf("region %d: %w (got %d)", id, ErrTooFewCoords, len(coords))
	}
	if len(values)%2 != 0 {
		return domain.Region{}, fmt.Errorf("region %d: %w", id, ErrOddValueCount)
	}

	return domain.Region{
		ID:     id,
		Label:  label,
		Coords: coords,
		Status: status,
	}, nil
}

// FormatCoords - обратное преобразование для админки
func FormatCoords(coords []domain.Coordinate) string {
	parts := make([]string, 0, len(coords)*2)
	for _, c := range coords {
		parts = append(parts,
			strconv.FormatFloat(c.X, 'f', -1, 64),
			strconv.FormatFloat(c.Y, 'f', -1, 64),
		)
	}
	return strings.Join(parts, ",")
}

func parseValues(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ParseError{Input: s, Position: i, Token: tok, Reason: "not a number"}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Input: s, Position: i, Token: tok, Reason: "not finite"}
		}
		values = append(values, v)
	}
	return values, nil
}

func pairUp(values []float64) []domain.Coordinate {
	coords := make([]domain.Coordinate, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		coords = append(coords, domain.Coordinate{X: values[i], Y: values[i+1]})
	}
	return coords
}
