package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain/repository"
	"github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/selection"
	"github.com/floorplan-service/internal/usecase/dto"
)

// SelectionUseCase - сессии выбора корпус → этаж → квартира
type SelectionUseCase struct {
	store         *selection.Store
	buildingRepo  repository.BuildingRepository
	floorRepo     repository.FloorRepository
	apartmentRepo repository.ApartmentRepository
	logger        *zap.Logger
}

// NewSelectionUseCase создает новый экземпляр SelectionUseCase
func NewSelectionUseCase(
	store *selection.Store,
	buildingRepo repository.BuildingRepository,
	floorRepo repository.FloorRepository,
	apartmentRepo repository.ApartmentRepository,
	logger *zap.Logger,
) *SelectionUseCase {
	return &SelectionUseCase{
		store:         store,
		buildingRepo:  buildingRepo,
		floorRepo:     floorRepo,
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

func (uc *SelectionUseCase) Create(ctx context.Context) (*selection.Session, error) {
	session, err := uc.store.Create(ctx)
	if err != nil {
		uc.logger.Error("Failed to create selection session", zap.Error(err))
		return nil, errors.ErrCacheError
	}
	return session, nil
}

func (uc *SelectionUseCase) Get(ctx context.Context, rawID string) (*selection.Session, error) {
	id, err := parseSessionID(rawID)
	if err != nil {
		return nil, err
	}

	session, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, uc.translate(err)
	}
	return session, nil
}

// Dispatch проверяет, что выбираемая область существует и подходит по иерархии,
// затем применяет переход к сессии
func (uc *SelectionUseCase) Dispatch(ctx context.Context, rawID string, req *dto.SelectionActionRequest) (*selection.Session, error) {
	id, err := parseSessionID(rawID)
	if err != nil {
		return nil, err
	}

	action := selection.Action{Type: selection.ActionType(req.Type), ID: req.ID}

	if action.ID != nil {
		session, err := uc.store.Get(ctx, id)
		if err != nil {
			return nil, uc.translate(err)
		}
		if err := uc.checkTarget(ctx, session.State, action); err != nil {
			return nil, err
		}
	}

	session, err := uc.store.Dispatch(ctx, id, action)
	if err != nil {
		return nil, uc.translate(err)
	}
	return session, nil
}

// checkTarget - выбираемая область принадлежит выбранному родителю
func (uc *SelectionUseCase) checkTarget(ctx context.Context, state selection.State, action selection.Action) error {
	switch action.Type {
	case selection.ActionSetBuilding:
		_, err := uc.buildingRepo.GetByID(ctx, *action.ID)
		return err

	case selection.ActionSetFloor:
		if state.BuildingID == nil {
			return nil // Reduce вернёт ErrNoParentSelection
		}
		_, err := uc.floorRepo.GetByID(ctx, *state.BuildingID, *action.ID)
		return err

	case selection.ActionSetApartment:
		if state.FloorID == nil {
			return nil
		}
		apartment, err := uc.apartmentRepo.GetByID(ctx, *action.ID)
		if err != nil {
			return err
		}
		if apartment.FloorID != *state.FloorID {
			return errors.ErrInvalidSelection.WithDetails(map[string]interface{}{
				"reason": "apartment is not on the selected floor",
			})
		}
		if !apartment.Status.IsSelectable() {
			return errors.ErrInvalidSelection.WithDetails(map[string]interface{}{
				"reason": "apartment is " + string(apartment.Status),
			})
		}

	case selection.ActionHover:
		return uc.checkHover(ctx, state, *action.ID)
	}
	return nil
}

// checkHover - наводить можно только на область активного слоя.
// Проданные квартиры наводятся: подсказка показывается, выбор запрещён.
func (uc *SelectionUseCase) checkHover(ctx context.Context, state selection.State, id int64) error {
	switch {
	case state.FloorID != nil:
		apartment, err := uc.apartmentRepo.GetByID(ctx, id)
		if err != nil {
			return hoverMiss(err, "apartment")
		}
		if apartment.FloorID != *state.FloorID {
			return errors.ErrInvalidSelection.WithDetails(map[string]interface{}{
				"reason": "hovered apartment is not on the selected floor",
			})
		}

	case state.BuildingID != nil:
		if _, err := uc.floorRepo.GetByID(ctx, *state.BuildingID, id); err != nil {
			return hoverMiss(err, "floor")
		}

	default:
		if _, err := uc.buildingRepo.GetByID(ctx, id); err != nil {
			return hoverMiss(err, "building")
		}
	}
	return nil
}

// hoverMiss - отсутствующая область активного слоя это ошибка выбора, а не 404
func hoverMiss(err error, level string) error {
	if stderrors.Is(err, errors.ErrBuildingNotFound) ||
		stderrors.Is(err, errors.ErrFloorNotFound) ||
		stderrors.Is(err, errors.ErrApartmentNotFound) {
		return errors.ErrInvalidSelection.WithDetails(map[string]interface{}{
			"reason": "hovered " + level + " is not in the active layer",
		})
	}
	return err
}

func (uc *SelectionUseCase) translate(err error) error {
	var appErr *errors.AppError
	switch {
	case stderrors.As(err, &appErr):
		return err
	case stderrors.Is(err, selection.ErrSessionNotFound):
		return errors.ErrSelectionNotFound
	case stderrors.Is(err, selection.ErrNoParentSelection),
		stderrors.Is(err, selection.ErrMissingID),
		stderrors.Is(err, selection.ErrUnknownAction):
		return errors.ErrInvalidSelection.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	uc.logger.Error("Selection store failed", zap.Error(err))
	return errors.ErrCacheError
}

func parseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "must be a UUID",
		})
	}
	return id, nil
}
