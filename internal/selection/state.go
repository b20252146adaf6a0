// Package selection - состояние выбора корпус → этаж → квартира.
//
// Переходы описаны чистой функцией Reduce. Единственное правило иерархии:
// изменение выбора на уровне сбрасывает все уровни ниже и наведение.
package selection

import (
	"errors"
	"fmt"

	"github.com/floorplan-service/internal/domain"
)

var (
	ErrNoParentSelection = errors.New("parent level is not selected")
	ErrUnknownAction     = errors.New("unknown selection action")
	ErrMissingID         = errors.New("action requires an id")
)

// State - выбранные и наведённая области
type State struct {
	BuildingID  *int64 `json:"building_id"`
	FloorID     *int64 `json:"floor_id"`
	ApartmentID *int64 `json:"apartment_id"`
	HoveredID   *int64 `json:"hovered_id"`
}

// ActionType - тип перехода
type ActionType string

const (
	ActionSetBuilding  ActionType = "set_building"
	ActionSetFloor     ActionType = "set_floor"
	ActionSetApartment ActionType = "set_apartment"
	ActionHover        ActionType = "hover"
	ActionClearHover   ActionType = "clear_hover"
	ActionReset        ActionType = "reset"
)

// Action - переход состояния. ID == nil у set_* снимает выбор уровня.
type Action struct {
	Type ActionType `json:"type" validate:"required,oneof=set_building set_floor set_apartment hover clear_hover reset"`
	ID   *int64     `json:"id,omitempty"`
}

func SetBuilding(id int64) Action  { return Action{Type: ActionSetBuilding, ID: &id} }
func SetFloor(id int64) Action     { return Action{Type: ActionSetFloor, ID: &id} }
func SetApartment(id int64) Action { return Action{Type: ActionSetApartment, ID: &id} }
func Hover(id int64) Action        { return Action{Type: ActionHover, ID: &id} }
func ClearHover() Action           { return Action{Type: ActionClearHover} }
func Reset() Action                { return Action{Type: ActionReset} }

var levelOf = map[ActionType]domain.Level{
	ActionSetBuilding:  domain.LevelBuilding,
	ActionSetFloor:     domain.LevelFloor,
	ActionSetApartment: domain.LevelApartment,
}

// Reduce применяет переход и возвращает новое состояние; исходное не меняется
func Reduce(s State, a Action) (State, error) {
	switch a.Type {
	case ActionReset:
		return State{}, nil

	case ActionHover:
		if a.ID == nil {
			return s, ErrMissingID
		}
		s.HoveredID = ptr(*a.ID)
		return s, nil

	case ActionClearHover:
		s.HoveredID = nil
		return s, nil

	case ActionSetBuilding, ActionSetFloor, ActionSetApartment:
		level := levelOf[a.Type]
		if a.ID != nil && !s.hasParent(level) {
			return s, fmt.Errorf("%s: %w", level, ErrNoParentSelection)
		}
		if equal(s.slot(level), a.ID) {
			return s, nil
		}
		s = s.clearFrom(level)
		if a.ID != nil {
			s.set(level, *a.ID)
		}
		return s, nil
	}

	return s, fmt.Errorf("%q: %w", a.Type, ErrUnknownAction)
}

// ActiveLevel - уровень, на котором сейчас выбирают
func (s State) ActiveLevel() domain.Level {
	switch {
	case s.BuildingID == nil:
		return domain.LevelBuilding
	case s.FloorID == nil:
		return domain.LevelFloor
	default:
		return domain.LevelApartment
	}
}

func (s State) hasParent(level domain.Level) bool {
	switch level {
	case domain.LevelFloor:
		return s.BuildingID != nil
	case domain.LevelApartment:
		return s.FloorID != nil
	}
	return true
}

func (s State) slot(level domain.Level) *int64 {
	switch level {
	case domain.LevelBuilding:
		return s.BuildingID
	case domain.LevelFloor:
		return s.FloorID
	default:
		return s.ApartmentID
	}
}

func (s *State) set(level domain.Level, id int64) {
	switch level {
	case domain.LevelBuilding:
		s.BuildingID = ptr(id)
	case domain.LevelFloor:
		s.FloorID = ptr(id)
	case domain.LevelApartment:
		s.ApartmentID = ptr(id)
	}
}

// clearFrom сбрасывает уровень и всех потомков
func (s State) clearFrom(level domain.Level) State {
	s.HoveredID = nil
	switch level {
	case domain.LevelBuilding:
		s.BuildingID = nil
		fallthrough
	case domain.LevelFloor:
		s.FloorID = nil
		fallthrough
	case domain.LevelApartment:
		s.ApartmentID = nil
	}
	return s
}

func equal(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func ptr(v int64) *int64 {
	return &v
}
