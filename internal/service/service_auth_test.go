// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/donate-hub/internal/config"
	"github.com/MKhiriev/donate-hub/internal/logger"
	"github.com/MKhiriev/donate-hub/internal/mock"
	"github.com/MKhiriev/donate-hub/internal/store"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "donate-hub-test",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost

	return svc, users
}

func hashed(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_RegisterUser(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "ann@example.com", u.Email)
			assert.Equal(t, models.RoleDonor, u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")))
			u.ID = uuid.New()
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "  Ann@Example.com ",
		FullName: "Ann",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestAuthService_RegisterUser_PlatformAdminEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, config.App{
		TokenSignKey:        "test-sign-key",
		TokenIssuer:         "donate-hub-test",
		TokenDuration:       time.Hour,
		PlatformAdminEmails: []string{" Root@Donate.example "},
	}, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			u.ID = uuid.New()
			return u, nil
		}).Times(2)

	admin, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email: "root@donate.example", FullName: "Root", Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RolePlatformAdmin, admin.Role)

	donor, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email: "someone@donate.example", FullName: "Someone", Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleDonor, donor.Role)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	svc, users := newTestAuthService(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.io", Password: "s3cretpass"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: " "})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	stored := models.User{ID: userID, Email: "ann@example.com", PasswordHash: hashed(t, "s3cretpass"), Role: models.RoleDonor}

	tests := []struct {
		name     string
		password string
		findErr  error
		wantErr  error
	}{
		{name: "correct password", password: "s3cretpass"},
		{name: "wrong password", password: "nope-nope", wantErr: ErrWrongPassword},
		{name: "unknown email", password: "s3cretpass", findErr: store.ErrNoUserWasFound, wantErr: ErrWrongPassword},
		{name: "storage failure", password: "s3cretpass", findErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestAuthService(t)
			users.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, tt.findErr)

			user, err := svc.Login(context.Background(), models.LoginRequest{Email: "ANN@example.com", Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	user := models.User{ID: uuid.New(), Role: models.RoleTenantAdmin}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, models.RoleTenantAdmin, parsed.Role)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")

	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}

func TestAuthService_CreateToken_NilUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_GetUser(t *testing.T) {
	svc, users := newTestAuthService(t)
	id := uuid.New()
	users.EXPECT().FindUserByID(gomock.Any(), id).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(context.Background(), id)

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
