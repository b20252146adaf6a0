package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	apperrors "github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/selection"
	"github.com/floorplan-service/internal/usecase"
	"github.com/floorplan-service/internal/usecase/dto"
)

type selectionFixture struct {
	uc         *usecase.SelectionUseCase
	buildings  *MockBuildingRepository
	floors     *MockFloorRepository
	apartments *MockApartmentRepository
}

func newSelectionFixture() *selectionFixture {
	logger := zap.NewNop()
	f := &selectionFixture{
		buildings:  &MockBuildingRepository{},
		floors:     &MockFloorRepository{},
		apartments: &MockApartmentRepository{},
	}
	store := selection.NewStore(newMemoryCache(), time.Hour, logger)
	f.uc = usecase.NewSelectionUseCase(store, f.buildings, f.floors, f.apartments, logger)
	return f
}

func action(t string, id int64) *dto.SelectionActionRequest {
	return &dto.SelectionActionRequest{Type: t, ID: &id}
}

func TestSelectionUseCase_FullPath(t *testing.T) {
	ctx := context.Background()
	f := newSelectionFixture()

	f.buildings.On("GetByID", ctx, int64(1)).Return(&domain.Building{ID: 1}, nil)
	f.floors.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.Floor{ID: 3, BuildingID: 1}, nil)
	f.apartments.On("GetByID", ctx, int64(7)).
		Return(&domain.Apartment{ID: 7, FloorID: 3, Status: domain.StatusAvailable}, nil)

	session, err := f.uc.Create(ctx)
	require.NoError(t, err)
	id := session.ID.String()

	_, err = f.uc.Dispatch(ctx, id, action("set_building", 1))
	require.NoError(t, err)
	_, err = f.uc.Dispatch(ctx, id, action("set_floor", 3))
	require.NoError(t, err)
	session, err = f.uc.Dispatch(ctx, id, action("set_apartment", 7))
	require.NoError(t, err)

	assert.Equal(t, "apartment", session.Level)
	require.NotNil(t, session.State.ApartmentID)
	assert.Equal(t, int64(7), *session.State.ApartmentID)

	// смена корпуса сбрасывает этаж и квартиру
	f.buildings.On("GetByID", ctx, int64(2)).Return(&domain.Building{ID: 2}, nil)
	session, err = f.uc.Dispatch(ctx, id, action("set_building", 2))
	require.NoError(t, err)
	assert.Nil(t, session.State.FloorID)
	assert.Nil(t, session.State.ApartmentID)

	stored, err := f.uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, session.State, stored.State)
}

func TestSelectionUseCase_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("floor without building", func(t *testing.T) {
		f := newSelectionFixture()
		session, err := f.uc.Create(ctx)
		require.NoError(t, err)

		_, err = f.uc.Dispatch(ctx, session.ID.String(), action("set_floor", 3))
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
	})

	t.Run("unknown building", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(9)).Return(nil, apperrors.ErrBuildingNotFound)
		session, err := f.uc.Create(ctx)
		require.NoError(t, err)

		_, err = f.uc.Dispatch(ctx, session.ID.String(), action("set_building", 9))
		assert.ErrorIs(t, err, apperrors.ErrBuildingNotFound)
	})

	t.Run("sold apartment", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(1)).Return(&domain.Building{ID: 1}, nil)
		f.floors.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.Floor{ID: 3}, nil)
		f.apartments.On("GetByID", ctx, int64(8)).
			Return(&domain.Apartment{ID: 8, FloorID: 3, Status: domain.StatusSold}, nil)

		session, err := f.uc.Create(ctx)
		require.NoError(t, err)
		id := session.ID.String()
		_, err = f.uc.Dispatch(ctx, id, action("set_building", 1))
		require.NoError(t, err)
		_, err = f.uc.Dispatch(ctx, id, action("set_floor", 3))
		require.NoError(t, err)

		_, err = f.uc.Dispatch(ctx, id, action("set_apartment", 8))
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)

		stored, err := f.uc.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, stored.State.ApartmentID)
	})

	t.Run("apartment on another floor", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(1)).Return(&domain.Building{ID: 1}, nil)
		f.floors.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.Floor{ID: 3}, nil)
		f.apartments.On("GetByID", ctx, int64(8)).
			Return(&domain.Apartment{ID: 8, FloorID: 4, Status: domain.StatusAvailable}, nil)

		session, err := f.uc.Create(ctx)
		require.NoError(t, err)
		id := session.ID.String()
		_, _ = f.uc.Dispatch(ctx, id, action("set_building", 1))
		_, _ = f.uc.Dispatch(ctx, id, action("set_floor", 3))

		_, err = f.uc.Dispatch(ctx, id, action("set_apartment", 8))
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newSelectionFixture()
		_, err := f.uc.Get(ctx, uuid.NewString())
		assert.ErrorIs(t, err, apperrors.ErrSelectionNotFound)
	})

	t.Run("malformed session id", func(t *testing.T) {
		f := newSelectionFixture()
		_, err := f.uc.Get(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestSelectionUseCase_Hover(t *testing.T) {
	ctx := context.Background()

	t.Run("building on site map", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(5)).Return(&domain.Building{ID: 5}, nil)

		session, err := f.uc.Create(ctx)
		require.NoError(t, err)

		session, err = f.uc.Dispatch(ctx, session.ID.String(), action("hover", 5))
		require.NoError(t, err)
		require.NotNil(t, session.State.HoveredID)
		assert.Equal(t, int64(5), *session.State.HoveredID)

		session, err = f.uc.Dispatch(ctx, session.ID.String(), &dto.SelectionActionRequest{Type: "clear_hover"})
		require.NoError(t, err)
		assert.Nil(t, session.State.HoveredID)
	})

	t.Run("unknown building", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrBuildingNotFound)

		session, err := f.uc.Create(ctx)
		require.NoError(t, err)

		_, err = f.uc.Dispatch(ctx, session.ID.String(), action("hover", 99))
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)

		stored, err := f.uc.Get(ctx, session.ID.String())
		require.NoError(t, err)
		assert.Nil(t, stored.State.HoveredID)
	})

	t.Run("floor of another building", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(1)).Return(&domain.Building{ID: 1}, nil)
		f.floors.On("GetByID", ctx, int64(1), int64(40)).Return(nil, apperrors.ErrFloorNotFound)

		session, err := f.uc.Create(ctx)
		require.NoError(t, err)
		id := session.ID.String()
		_, err = f.uc.Dispatch(ctx, id, action("set_building", 1))
		require.NoError(t, err)

		_, err = f.uc.Dispatch(ctx, id, action("hover", 40))
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
	})

	t.Run("apartment on another floor", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(1)).Return(&domain.Building{ID: 1}, nil)
		f.floors.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.Floor{ID: 3}, nil)
		f.apartments.On("GetByID", ctx, int64(8)).
			Return(&domain.Apartment{ID: 8, FloorID: 4, Status: domain.StatusAvailable}, nil)

		session, err := f.uc.Create(ctx)
		require.NoError(t, err)
		id := session.ID.String()
		_, err = f.uc.Dispatch(ctx, id, action("set_building", 1))
		require.NoError(t, err)
		_, err = f.uc.Dispatch(ctx, id, action("set_floor", 3))
		require.NoError(t, err)

		_, err = f.uc.Dispatch(ctx, id, action("hover", 8))
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
	})

	t.Run("sold apartment on the floor", func(t *testing.T) {
		f := newSelectionFixture()
		f.buildings.On("GetByID", ctx, int64(1)).Return(&domain.Building{ID: 1}, nil)
		f.floors.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.Floor{ID: 3}, nil)
		f.apartments.On("GetByID", ctx, int64(9)).
			Return(&domain.Apartment{ID: 9, FloorID: 3, Status: domain.StatusSold}, nil)

		session, err := f.uc.Create(ctx)
		require.NoError(t, err)
		id := session.ID.String()
		_, err = f.uc.Dispatch(ctx, id, action("set_building", 1))
		require.NoError(t, err)
		_, err = f.uc.Dispatch(ctx, id, action("set_floor", 3))
		require.NoError(t, err)

		session, err = f.uc.Dispatch(ctx, id, action("hover", 9))
		require.NoError(t, err)
		require.NotNil(t, session.State.HoveredID)
		assert.Equal(t, int64(9), *session.State.HoveredID)
	})
}
