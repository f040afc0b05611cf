package vehicle_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rafaelbdn/autolog/internal/vehicle"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    vehicle.CreateParams
		setupMock func(m *vehicle.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: vehicle.CreateParams{Model: "Fiat Argo", Year: 2021, Plate: "ABC1D23"},
			setupMock: func(m *vehicle.MockRepository) {
				m.EXPECT().
					CreateVehicle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, v *vehicle.Vehicle) error {
						v.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "MissingModel",
			params:  vehicle.CreateParams{Year: 2021},
			wantErr: vehicle.ErrMissingModel,
		},
		{
			name:    "ImplausibleYear",
			params:  vehicle.CreateParams{Model: "Fiat Argo", Year: 1850},
			wantErr: vehicle.ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := vehicle.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := vehicle.NewService(repo)
			got, err := svc.Create(context.Background(), uuid.New(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.params.Model, got.Model)
		})
	}
}

func TestService_SetActive(t *testing.T) {
	userID := uuid.New()
	vehicleID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := vehicle.NewMockRepository(ctrl)
		repo.EXPECT().
			GetVehicle(gomock.Any(), userID, vehicleID).
			Return(&vehicle.Vehicle{ID: vehicleID, UserID: userID}, nil)
		repo.EXPECT().
			SetActiveVehicle(gomock.Any(), userID, &vehicleID).
			Return(nil)

		svc := vehicle.NewService(repo)
		require.NoError(t, svc.SetActive(context.Background(), userID, vehicleID))
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := vehicle.NewMockRepository(ctrl)
		repo.EXPECT().
			GetVehicle(gomock.Any(), userID, vehicleID).
			Return(nil, vehicle.ErrNotFound)

		svc := vehicle.NewService(repo)
		assert.ErrorIs(t, svc.SetActive(context.Background(), userID, vehicleID), vehicle.ErrNotFound)
	})
}
