package fueling_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rafaelbdn/autolog/internal/fueling"
)

func validParams() fueling.CreateParams {
	return fueling.CreateParams{
		Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Mileage:      10400,
		FuelType:     fueling.FuelGasoline,
		VolumeLiters: 40,
		CostPerLiter: 5.50,
		TotalCost:    220,
		Station:      "Posto Central",
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		mutate    func(p *fueling.CreateParams)
		setupMock func(m *fueling.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *fueling.MockRepository) {
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *fueling.Record) error {
						rec.ID = uuid.New()
						rec.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "InvalidFuelType",
			mutate:  func(p *fueling.CreateParams) { p.FuelType = "Querosene" },
			wantErr: fueling.ErrInvalidFuelType,
		},
		{
			name:    "ZeroMileage",
			mutate:  func(p *fueling.CreateParams) { p.Mileage = 0 },
			wantErr: fueling.ErrInvalidMileage,
		},
		{
			name:    "ZeroVolume",
			mutate:  func(p *fueling.CreateParams) { p.VolumeLiters = 0 },
			wantErr: fueling.ErrInvalidVolume,
		},
		{
			name: "RepoError",
			setupMock: func(m *fueling.MockRepository) {
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := fueling.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			params := validParams()
			if tt.mutate != nil {
				tt.mutate(&params)
			}

			svc := fueling.NewService(repo)
			got, err := svc.Create(context.Background(), uuid.New(), uuid.New(), params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, params.Mileage, got.Mileage)
			assert.Equal(t, params.FuelType, got.FuelType)
		})
	}
}

func TestService_CreateBatch(t *testing.T) {
	userID := uuid.New()
	vehicleID := uuid.New()

	t.Run("AllValidCreatesAll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := fueling.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *fueling.Record) error {
				rec.ID = uuid.New()
				return nil
			}).
			Times(3)

		svc := fueling.NewService(repo)

		params := []fueling.CreateParams{validParams(), validParams(), validParams()}
		created, err := svc.CreateBatch(context.Background(), userID, vehicleID, params)

		require.NoError(t, err)
		assert.Len(t, created, 3)
	})

	t.Run("AnyInvalidParamCreatesNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No CreateRecord expectation: validation runs up front.
		repo := fueling.NewMockRepository(ctrl)
		svc := fueling.NewService(repo)

		bad := validParams()
		bad.VolumeLiters = 0

		created, err := svc.CreateBatch(context.Background(), userID, vehicleID, []fueling.CreateParams{validParams(), bad})

		assert.ErrorIs(t, err, fueling.ErrInvalidVolume)
		assert.Nil(t, created)
	})

	t.Run("MidBatchFailureReturnsCreatedPrefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := fueling.NewMockRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().
				CreateRecord(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, rec *fueling.Record) error {
					rec.ID = uuid.New()
					return nil
				}),
			repo.EXPECT().
				CreateRecord(gomock.Any(), gomock.Any()).
				Return(errors.New("db error")),
		)

		svc := fueling.NewService(repo)

		params := []fueling.CreateParams{validParams(), validParams(), validParams()}
		created, err := svc.CreateBatch(context.Background(), userID, vehicleID, params)

		require.Error(t, err)
		assert.Len(t, created, 1)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := fueling.NewMockRepository(ctrl)
	svc := fueling.NewService(repo)

	rec := &fueling.Record{
		ID:           uuid.New(),
		Mileage:      10400,
		FuelType:     fueling.FuelEthanol,
		VolumeLiters: 38,
	}

	repo.EXPECT().UpdateRecord(gomock.Any(), rec).Return(nil)
	require.NoError(t, svc.Update(context.Background(), rec))

	rec.Mileage = 0
	assert.ErrorIs(t, svc.Update(context.Background(), rec), fueling.ErrInvalidMileage)
}
