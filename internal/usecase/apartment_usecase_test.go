package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain"
	apperrors "github.com/floorplan-service/internal/pkg/errors"
	"github.com/floorplan-service/internal/usecase"
)

const listingTTL = 5 * time.Minute

func newApartmentUseCase(
	repo *MockApartmentRepository,
	stream *MockStreamRepository,
	cache *MockCacheRepository,
) *usecase.ApartmentUseCase {
	logger := zap.NewNop()
	listing := usecase.NewListingCache(cache, listingTTL, logger)
	return usecase.NewApartmentUseCase(repo, stream, listing, logger)
}

func sampleListing() *domain.FloorListing {
	return &domain.FloorListing{
		BuildingID: 1,
		FloorID:    3,
		FloorPlans: []domain.FloorPlanWithFloors{{
			FloorPlan: domain.FloorPlan{ID: 10, BuildingID: 1, Name: "Студия"},
			Floors: []domain.FloorWithApartments{{
				Floor: domain.Floor{ID: 3, BuildingID: 1, Number: 3, ImageWidth: 1920, ImageHeight: 1080},
				Apartments: []domain.Apartment{{
					ID:           7,
					BuildingID:   1,
					FloorID:      3,
					FloorPlanID:  10,
					Number:       "301",
					Status:       domain.StatusAvailable,
					DesktopPaths: "100,100,300,100,300,200,100,200",
					MobilePaths:  "10,10,30,10,30,20",
				}},
			}},
		}},
	}
}

func TestApartmentUseCase_GetFloorListing(t *testing.T) {
	ctx := context.Background()
	key := usecase.ListingCacheKey(1, 3)

	t.Run("cache hit skips database", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, &MockStreamRepository{}, cache)

		data, err := json.Marshal(sampleListing())
		require.NoError(t, err)
		cache.On("Get", ctx, key).Return(data, nil).Once()

		listing, err := uc.GetFloorListing(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, "301", listing.FloorPlans[0].Floors[0].Apartments[0].Number)
		repo.AssertNotCalled(t, "GetFloorListing", mock.Anything, mock.Anything, mock.Anything)
		cache.AssertExpectations(t)
	})

	t.Run("cache miss loads and caches", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, &MockStreamRepository{}, cache)

		cache.On("Get", ctx, key).Return(nil, nil).Once()
		repo.On("GetFloorListing", ctx, int64(1), int64(3)).Return(sampleListing(), nil).Once()
		cache.On("Set", ctx, key, mock.Anything, listingTTL).Return(nil).Once()

		listing, err := uc.GetFloorListing(ctx, 1, 3)
		require.NoError(t, err)
		assert.Len(t, listing.FloorPlans, 1)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, &MockStreamRepository{}, cache)

		cache.On("Get", ctx, key).Return(nil, errors.New("connection refused")).Once()
		repo.On("GetFloorListing", ctx, int64(1), int64(3)).Return(sampleListing(), nil).Once()
		cache.On("Set", ctx, key, mock.Anything, listingTTL).Return(errors.New("connection refused")).Once()

		listing, err := uc.GetFloorListing(ctx, 1, 3)
		require.NoError(t, err)
		assert.NotNil(t, listing)
	})

	t.Run("missing floor", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, &MockStreamRepository{}, cache)

		cache.On("Get", ctx, key).Return(nil, nil).Once()
		repo.On("GetFloorListing", ctx, int64(1), int64(3)).Return(nil, apperrors.ErrFloorNotFound).Once()

		_, err := uc.GetFloorListing(ctx, 1, 3)
		assert.ErrorIs(t, err, apperrors.ErrFloorNotFound)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApartmentUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	key := usecase.ListingCacheKey(1, 3)
	sold := &domain.Apartment{ID: 7, BuildingID: 1, FloorID: 3, Status: domain.StatusSold}

	t.Run("unknown status is rejected", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		uc := newApartmentUseCase(repo, &MockStreamRepository{}, &MockCacheRepository{})

		_, err := uc.UpdateStatus(ctx, 7, "demolished")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("change publishes event and drops listing", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		stream := &MockStreamRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, stream, cache)

		repo.On("UpdateStatus", ctx, int64(7), domain.StatusSold).Return(domain.StatusReserved, nil).Once()
		repo.On("GetByID", ctx, int64(7)).Return(sold, nil).Once()
		cache.On("Delete", ctx, key).Return(nil).Once()
		stream.On("PublishToStream", ctx, domain.StreamApartmentStatus,
			mock.MatchedBy(func(e *domain.ApartmentStatusChangedEvent) bool {
				return e.ApartmentID == 7 &&
					e.FloorID == 3 &&
					e.OldStatus == domain.StatusReserved &&
					e.NewStatus == domain.StatusSold
			}),
		).Return(nil).Once()

		apartment, err := uc.UpdateStatus(ctx, 7, "sold")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSold, apartment.Status)
		repo.AssertExpectations(t)
		stream.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("alias is accepted", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		stream := &MockStreamRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, stream, cache)

		reserved := &domain.Apartment{ID: 7, BuildingID: 1, FloorID: 3, Status: domain.StatusReserved}
		repo.On("UpdateStatus", ctx, int64(7), domain.StatusReserved).Return(domain.StatusAvailable, nil).Once()
		repo.On("GetByID", ctx, int64(7)).Return(reserved, nil).Once()
		cache.On("Delete", ctx, key).Return(nil).Once()
		stream.On("PublishToStream", ctx, domain.StreamApartmentStatus, mock.Anything).Return(nil).Once()

		_, err := uc.UpdateStatus(ctx, 7, "booked")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("same status publishes nothing", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		stream := &MockStreamRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, stream, cache)

		repo.On("UpdateStatus", ctx, int64(7), domain.StatusSold).Return(domain.StatusSold, nil).Once()
		repo.On("GetByID", ctx, int64(7)).Return(sold, nil).Once()
		cache.On("Delete", ctx, key).Return(nil).Once()

		_, err := uc.UpdateStatus(ctx, 7, "sold")
		require.NoError(t, err)
		stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure keeps the update", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		stream := &MockStreamRepository{}
		cache := &MockCacheRepository{}
		uc := newApartmentUseCase(repo, stream, cache)

		repo.On("UpdateStatus", ctx, int64(7), domain.StatusSold).Return(domain.StatusAvailable, nil).Once()
		repo.On("GetByID", ctx, int64(7)).Return(sold, nil).Once()
		cache.On("Delete", ctx, key).Return(nil).Once()
		stream.On("PublishToStream", ctx, domain.StreamApartmentStatus, mock.Anything).
			Return(errors.New("stream unavailable")).Once()

		apartment, err := uc.UpdateStatus(ctx, 7, "sold")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSold, apartment.Status)
	})

	t.Run("missing apartment", func(t *testing.T) {
		repo := &MockApartmentRepository{}
		uc := newApartmentUseCase(repo, &MockStreamRepository{}, &MockCacheRepository{})

		repo.On("UpdateStatus", ctx, int64(99), domain.StatusSold).
			Return(domain.StatusUnknown, apperrors.ErrApartmentNotFound).Once()

		_, err := uc.UpdateStatus(ctx, 99, "sold")
		assert.ErrorIs(t, err, apperrors.ErrApartmentNotFound)
	})
}

func TestApartmentUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &MockApartmentRepository{}
	cache := &MockCacheRepository{}
	uc := newApartmentUseCase(repo, &MockStreamRepository{}, cache)

	repo.On("GetByID", ctx, int64(7)).
		Return(&domain.Apartment{ID: 7, BuildingID: 1, FloorID: 3}, nil).Once()
	repo.On("Delete", ctx, int64(7)).Return(nil).Once()
	cache.On("Delete", ctx, usecase.ListingCacheKey(1, 3)).Return(nil).Once()

	require.NoError(t, uc.Delete(ctx, 7))
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
