package search_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/valueobject"
	"github.com/Antivenom-Brazil/antivenom-app/internal/mocks"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/search"
)

func TestService_Search(t *testing.T) {
	t.Run("returns nearest centers with default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		ctx := context.Background()
		centerRepo.EXPECT().ListAll(ctx).Return(testCenters(), nil)

		results, err := svc.Search(ctx, search.Input{
			Latitude:  spOrigin.Latitude,
			Longitude: spOrigin.Longitude,
		})

		require.NoError(t, err)
		require.Len(t, results, 5)
		assert.Equal(t, "sp", results[0].Center.ID)
	})

	t.Run("end-to-end scenario with limit one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		ctx := context.Background()
		centers := []entity.Center{
			{ID: "A", Coordinate: valueobject.Coordinate{Latitude: -23.5505, Longitude: -46.6333}, SerumTypes: []string{"X"}},
			{ID: "B", Coordinate: valueobject.Coordinate{Latitude: -22.9068, Longitude: -43.1729}, SerumTypes: []string{"Y"}},
		}
		centerRepo.EXPECT().ListAll(ctx).Return(centers, nil)

		limit := 1
		results, err := svc.Search(ctx, search.Input{
			Latitude:  -23.5505,
			Longitude: -46.6333,
			Limit:     &limit,
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "A", results[0].Center.ID)
		assert.Zero(t, results[0].DistanceKm)
		assert.Equal(t, "0 m", results[0].DistanceLabel)
	})

	t.Run("invalid origin yields ErrInvalidLocation without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		results, err := svc.Search(context.Background(), search.Input{Latitude: 200, Longitude: 0})

		assert.Nil(t, results)
		assert.ErrorIs(t, err, domain.ErrInvalidLocation)
	})

	t.Run("nan origin yields ErrInvalidLocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		_, err := svc.Search(context.Background(), search.Input{Latitude: math.NaN(), Longitude: 0})

		assert.ErrorIs(t, err, domain.ErrInvalidLocation)
	})

	t.Run("empty store yields ErrNoData even with a valid origin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		ctx := context.Background()
		centerRepo.EXPECT().ListAll(ctx).Return([]entity.Center{}, nil)

		results, err := svc.Search(ctx, search.Input{Latitude: -23.5505, Longitude: -46.6333})

		assert.Nil(t, results)
		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("store failure is classified as ErrNoData", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		ctx := context.Background()
		centerRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("connection refused"))

		_, err := svc.Search(ctx, search.Input{Latitude: -23.5505, Longitude: -46.6333})

		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("tight radius is an empty success, not a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		ctx := context.Background()
		centerRepo.EXPECT().ListAll(ctx).Return(testCenters()[2:], nil) // nearest ~357 km away

		radius := 1.0
		results, err := svc.Search(ctx, search.Input{
			Latitude:    spOrigin.Latitude,
			Longitude:   spOrigin.Longitude,
			MaxRadiusKm: &radius,
		})

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("corrupted store record is classified as ErrComputation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		ctx := context.Background()
		centers := []entity.Center{
			{ID: "bad", Coordinate: valueobject.Coordinate{Latitude: math.NaN(), Longitude: 0}},
		}
		centerRepo.EXPECT().ListAll(ctx).Return(centers, nil)

		results, err := svc.Search(ctx, search.Input{Latitude: -23.5505, Longitude: -46.6333})

		assert.Nil(t, results)
		assert.ErrorIs(t, err, domain.ErrComputation)
	})

	t.Run("passes filters through to ranking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		centerRepo := mocks.NewMockCenterRepository(ctrl)
		svc := search.NewService(centerRepo)

		ctx := context.Background()
		centerRepo.EXPECT().ListAll(ctx).Return(testCenters(), nil)

		results, err := svc.Search(ctx, search.Input{
			Latitude:  spOrigin.Latitude,
			Longitude: spOrigin.Longitude,
			UF:        "MG",
			SerumType: "Antilaquético",
		})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "bh", results[0].Center.ID)
	})
}
