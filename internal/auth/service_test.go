package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafaelbdn/autolog/internal/auth"
)

const testSecret = "test-secret"

func hashOf(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *auth.User) error {
			user.ID = uuid.New()
			return nil
		})

	svc := auth.NewService(repo, testSecret, time.Hour)

	user, err := svc.Register(context.Background(), auth.RegisterParams{
		Email:    "  Rafael@Example.COM ",
		Password: "hunter22",
		Name:     "Rafael",
	})

	require.NoError(t, err)
	assert.Equal(t, "rafael@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
}

func TestService_Login(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		password  string
		setupMock func(t *testing.T, m *auth.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			password: "hunter22",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "rafael@example.com").
					Return(&auth.User{
						ID:           userID,
						Email:        "rafael@example.com",
						PasswordHash: hashOf(t, "hunter22"),
					}, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "wrong",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "rafael@example.com").
					Return(&auth.User{
						ID:           userID,
						Email:        "rafael@example.com",
						PasswordHash: hashOf(t, "hunter22"),
					}, nil)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "UnknownEmail",
			password: "hunter22",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "rafael@example.com").
					Return(nil, auth.ErrNotFound)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			tt.setupMock(t, repo)

			svc := auth.NewService(repo, testSecret, time.Hour)

			token, user, err := svc.Login(context.Background(), "Rafael@Example.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.NotEmpty(t, token)

			// The token must resolve back to the same user.
			gotID, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID, gotID)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(&auth.User{
			ID:           userID,
			Email:        "rafael@example.com",
			PasswordHash: hashOf(t, "hunter22"),
		}, nil).
		AnyTimes()

	svc := auth.NewService(repo, testSecret, time.Hour)

	token, _, err := svc.Login(context.Background(), "rafael@example.com", "hunter22")
	require.NoError(t, err)

	t.Run("BearerPrefixStripped", func(t *testing.T) {
		gotID, err := svc.ValidateToken("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := auth.NewService(repo, "other-secret", time.Hour)

		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := auth.NewService(repo, testSecret, -time.Minute)

		expiredToken, _, err := expired.Login(context.Background(), "rafael@example.com", "hunter22")
		require.NoError(t, err)

		_, err = expired.ValidateToken(expiredToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
